package cleanup

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radarpautas/radar/ent"
	"github.com/radarpautas/radar/ent/fetchattempt"
	"github.com/radarpautas/radar/ent/snapshot"
	"github.com/radarpautas/radar/pkg/config"
	"github.com/radarpautas/radar/pkg/database"
	testdb "github.com/radarpautas/radar/test/database"
)

func seedSource(t *testing.T, client *database.Client) *ent.Source {
	t.Helper()
	src, err := client.Source.Create().
		SetDomain("exemplo.gov.br").
		SetName("Fonte").
		SetProfile(map[string]interface{}{}).
		Save(context.Background())
	require.NoError(t, err)
	return src
}

func seedSnapshot(t *testing.T, client *database.Client, sourceID, n int, fetchedAt time.Time) {
	t.Helper()
	_, err := client.Snapshot.Create().
		SetSourceID(sourceID).
		SetURL(fmt.Sprintf("https://exemplo.gov.br/%d", n)).
		SetFetchedAt(fetchedAt).
		SetBody([]byte("corpo")).
		SetContentHash(fmt.Sprintf("hash%d", n)).
		SetSnapshotHash(fmt.Sprintf("snap%d", n)).
		Save(context.Background())
	require.NoError(t, err)
}

func seedAttempt(t *testing.T, client *database.Client, sourceID int, createdAt time.Time) {
	t.Helper()
	_, err := client.FetchAttempt.Create().
		SetSourceID(sourceID).
		SetURL("https://exemplo.gov.br/feed").
		SetStatusCode(200).
		SetPool(string(config.PoolFast)).
		SetCreatedAt(createdAt).
		Save(context.Background())
	require.NoError(t, err)
}

func TestRunAllEnforcesRetention(t *testing.T) {
	client := testdb.NewTestClient(t)
	src := seedSource(t, client)
	ctx := context.Background()

	now := time.Now().UTC()
	seedSnapshot(t, client, src.ID, 1, now.Add(-20*24*time.Hour))
	seedSnapshot(t, client, src.ID, 2, now.Add(-time.Hour))
	seedAttempt(t, client, src.ID, now.Add(-10*24*time.Hour))
	seedAttempt(t, client, src.ID, now.Add(-time.Minute))

	svc := NewService(client, DefaultConfig())
	svc.runAll(ctx)

	snaps, err := client.Snapshot.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, snaps, 1)
	assert.Equal(t, "snap2", snaps[0].SnapshotHash)

	attempts, err := client.FetchAttempt.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, attempts)

	t.Run("sweep is idempotent", func(t *testing.T) {
		svc.runAll(ctx)
		remaining, err := client.Snapshot.Query().
			Where(snapshot.ContentHash("hash2")).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, remaining)
		kept, err := client.FetchAttempt.Query().
			Where(fetchattempt.StatusCode(200)).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, kept)
	})
}

func TestStartStop(t *testing.T) {
	client := testdb.NewTestClient(t)
	seedSource(t, client)

	cfg := DefaultConfig()
	cfg.Interval = time.Hour

	svc := NewService(client, cfg)
	svc.Start(context.Background())
	svc.Start(context.Background()) // duplicate start is a no-op
	svc.Stop()
}
