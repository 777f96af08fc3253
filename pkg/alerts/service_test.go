package alerts

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radarpautas/radar/ent/alert"
	entevent "github.com/radarpautas/radar/ent/event"
	"github.com/radarpautas/radar/pkg/database"
	"github.com/radarpautas/radar/pkg/queue"
	testdb "github.com/radarpautas/radar/test/database"
)

func setupAlertService(t *testing.T) (*Service, *database.Client, *time.Time) {
	t.Helper()
	client := testdb.NewTestClient(t)
	now := time.Now().UTC()
	svc := &Service{
		db:       client,
		cooldown: 5 * time.Minute,
		now:      func() time.Time { return now },
	}
	return svc, client, &now
}

func sentAlerts(t *testing.T, client *database.Client, eventID int) int {
	t.Helper()
	n, err := client.Alert.Query().
		Where(alert.EventID(eventID), alert.Status("SENT")).
		Count(context.Background())
	require.NoError(t, err)
	return n
}

func TestHandleAlert(t *testing.T) {
	svc, client, now := setupAlertService(t)
	ctx := context.Background()

	ev, err := client.Event.Create().
		SetStatus(entevent.StatusHot).
		Save(ctx)
	require.NoError(t, err)

	task := queue.AlertTask{
		EventID: ev.ID,
		Plantao: queue.ScorePayload{Score: 72, Reasons: []string{"FRESH_30M"}},
		Oceano:  queue.ScorePayload{Score: 40, Reasons: []string{"OFFICIAL_SOURCE"}},
	}

	t.Run("first alert is sent", func(t *testing.T) {
		require.NoError(t, svc.Handle(ctx, task))
		assert.Equal(t, 1, sentAlerts(t, client, ev.ID))
	})

	t.Run("repeat inside cooldown is suppressed", func(t *testing.T) {
		changed := task
		changed.Plantao.Score = 95 // different band, still inside cooldown
		require.NoError(t, svc.Handle(ctx, changed))
		assert.Equal(t, 1, sentAlerts(t, client, ev.ID))
	})

	t.Run("same hash after cooldown is still suppressed", func(t *testing.T) {
		*now = now.Add(10 * time.Minute)
		require.NoError(t, svc.Handle(ctx, task))
		assert.Equal(t, 1, sentAlerts(t, client, ev.ID))
	})

	t.Run("new band after cooldown is sent", func(t *testing.T) {
		*now = now.Add(20 * time.Minute)
		changed := task
		changed.Plantao.Score = 95
		require.NoError(t, svc.Handle(ctx, changed))
		assert.Equal(t, 2, sentAlerts(t, client, ev.ID))
	})

	t.Run("missing event is suppressed without error", func(t *testing.T) {
		missing := task
		missing.EventID = 999999
		require.NoError(t, svc.Handle(ctx, missing))
		assert.Zero(t, sentAlerts(t, client, 999999))
	})
}
