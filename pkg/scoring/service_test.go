package scoring

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radarpautas/radar/ent"
	entevent "github.com/radarpautas/radar/ent/event"
	"github.com/radarpautas/radar/ent/eventscore"
	"github.com/radarpautas/radar/ent/eventstate"
	"github.com/radarpautas/radar/pkg/database"
	"github.com/radarpautas/radar/pkg/queue"
	testdb "github.com/radarpautas/radar/test/database"
)

type scoreFixture struct {
	t      *testing.T
	svc    *Service
	client *database.Client
	queues *queue.Queues
}

func newScoreFixture(t *testing.T) *scoreFixture {
	t.Helper()
	client := testdb.NewTestClient(t)
	queues := queue.NewQueues(16)
	return &scoreFixture{t: t, svc: NewService(client, queues), client: client, queues: queues}
}

func (f *scoreFixture) createSource(name string, tier int, official bool) *ent.Source {
	f.t.Helper()
	src, err := f.client.Source.Create().
		SetDomain(name + ".exemplo.br").
		SetName(name).
		SetTier(tier).
		SetIsOfficial(official).
		SetProfile(map[string]interface{}{}).
		Save(context.Background())
	require.NoError(f.t, err)
	return src
}

func (f *scoreFixture) linkDoc(eventID int, src *ent.Source, n int, seenAt time.Time) {
	f.t.Helper()
	ctx := context.Background()
	doc, err := f.client.Document.Create().
		SetSourceID(src.ID).
		SetURL(fmt.Sprintf("https://%s/%d", src.Domain, n)).
		SetCleanText("texto").
		SetContentHash(fmt.Sprintf("%s-%d", src.Name, n)).
		Save(ctx)
	require.NoError(f.t, err)
	_, err = f.client.EventDoc.Create().
		SetEventID(eventID).
		SetDocID(doc.ID).
		SetSourceID(src.ID).
		SetSeenAt(seenAt).
		Save(ctx)
	require.NoError(f.t, err)
}

func TestHandlePersistsScores(t *testing.T) {
	f := newScoreFixture(t)
	ctx := context.Background()

	src := f.createSource("fonte", 3, false)
	ev, err := f.client.Event.Create().
		SetStatus(entevent.StatusHydrating).
		Save(ctx)
	require.NoError(t, err)
	f.linkDoc(ev.ID, src, 1, time.Now().UTC())

	require.NoError(t, f.svc.Handle(ctx, queue.ScoreTask{EventID: ev.ID}))

	score, err := f.client.EventScore.Query().
		Where(eventscore.EventID(ev.ID)).
		Only(ctx)
	require.NoError(t, err)

	// Single unverified tier-3 source, fresh: 10 + tier 2 + velocity 3.47
	// + diversity 3 + impact 0.4 - trust 7, with ~no decay.
	assert.InDelta(t, 11.87, score.ScorePlantao, 0.3)
	assert.Greater(t, score.ScoreOceanoAzul, 0.0)
	assert.Contains(t, score.ReasonsJSON["plantao"], ReasonPlantaoTrustPenalty)
	assert.Contains(t, score.ReasonsJSON["oceano_azul"], ReasonOceanoCoverageLag)

	reloaded, err := f.client.Event.Get(ctx, ev.ID)
	require.NoError(t, err)
	assert.InDelta(t, score.ScorePlantao, reloaded.ScorePlantao, 0.001)

	// HYDRATING stays HYDRATING: no effective change, no alert.
	assert.Equal(t, entevent.StatusHydrating, reloaded.Status)
	assert.Zero(t, f.queues.Alerts.Depth())

	t.Run("recompute overwrites in place", func(t *testing.T) {
		require.NoError(t, f.svc.Handle(ctx, queue.ScoreTask{EventID: ev.ID}))
		count, err := f.client.EventScore.Query().
			Where(eventscore.EventID(ev.ID)).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})
}

func TestHandleQuarantinesColdMultiSourceEvents(t *testing.T) {
	f := newScoreFixture(t)
	ctx := context.Background()

	ev, err := f.client.Event.Create().
		SetStatus(entevent.StatusHydrating).
		SetFirstSeenAt(time.Now().UTC().Add(-4 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	stale := time.Now().UTC().Add(-4 * time.Hour)
	f.linkDoc(ev.ID, f.createSource("fonte-a", 3, false), 1, stale)
	f.linkDoc(ev.ID, f.createSource("fonte-b", 3, false), 2, stale)

	require.NoError(t, f.svc.Handle(ctx, queue.ScoreTask{EventID: ev.ID}))

	reloaded, err := f.client.Event.Get(ctx, ev.ID)
	require.NoError(t, err)
	assert.Equal(t, entevent.StatusQuarantine, reloaded.Status)

	history, err := f.client.EventState.Query().
		Where(eventstate.EventID(ev.ID)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "SCORE_QUARANTINE_HEURISTIC", history[0].StatusReason)

	// The effective state change dispatches an alert task.
	assert.Equal(t, 1, f.queues.Alerts.Depth())
}

func TestHandleSkipsTombstonesAndMissingEvents(t *testing.T) {
	f := newScoreFixture(t)
	ctx := context.Background()

	canonical, err := f.client.Event.Create().
		SetStatus(entevent.StatusHot).
		Save(ctx)
	require.NoError(t, err)
	tombstone, err := f.client.Event.Create().
		SetStatus(entevent.StatusMerged).
		SetCanonicalEventID(canonical.ID).
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, f.svc.Handle(ctx, queue.ScoreTask{EventID: tombstone.ID}))
	require.NoError(t, f.svc.Handle(ctx, queue.ScoreTask{EventID: 999999}))

	count, err := f.client.EventScore.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}
