package state

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radarpautas/radar/ent"
	entevent "github.com/radarpautas/radar/ent/event"
	"github.com/radarpautas/radar/ent/eventstate"
	"github.com/radarpautas/radar/pkg/config"
	"github.com/radarpautas/radar/pkg/database"
	testdb "github.com/radarpautas/radar/test/database"
)

func createEvent(t *testing.T, client *database.Client, status entevent.Status) *ent.Event {
	t.Helper()
	ev, err := client.Event.Create().
		SetStatus(status).
		Save(context.Background())
	require.NoError(t, err)
	return ev
}

func statusHistory(t *testing.T, client *database.Client, eventID int) []*ent.EventState {
	t.Helper()
	rows, err := client.EventState.Query().
		Where(eventstate.EventID(eventID)).
		Order(ent.Asc(eventstate.FieldID)).
		All(context.Background())
	require.NoError(t, err)
	return rows
}

func TestTransition(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	t.Run("appends history and materializes status", func(t *testing.T) {
		ev := createEvent(t, client, entevent.StatusHydrating)

		tx, err := client.Tx(ctx)
		require.NoError(t, err)
		changed, err := Transition(ctx, tx, ev.ID, entevent.StatusHot, ReasonScoreHot)
		require.NoError(t, err)
		require.NoError(t, tx.Commit())
		assert.True(t, changed)

		reloaded, err := client.Event.Get(ctx, ev.ID)
		require.NoError(t, err)
		assert.Equal(t, entevent.StatusHot, reloaded.Status)

		history := statusHistory(t, client, ev.ID)
		require.Len(t, history, 1)
		assert.Equal(t, eventstate.StatusHot, history[0].Status)
		assert.Equal(t, ReasonScoreHot, history[0].StatusReason)
	})

	t.Run("same status is a no-op", func(t *testing.T) {
		ev := createEvent(t, client, entevent.StatusHot)

		tx, err := client.Tx(ctx)
		require.NoError(t, err)
		changed, err := Transition(ctx, tx, ev.ID, entevent.StatusHot, ReasonScoreRecompute)
		require.NoError(t, err)
		require.NoError(t, tx.Commit())

		assert.False(t, changed)
		assert.Empty(t, statusHistory(t, client, ev.ID))
	})

	t.Run("missing event returns not found", func(t *testing.T) {
		tx, err := client.Tx(ctx)
		require.NoError(t, err)
		_, err = Transition(ctx, tx, 999999, entevent.StatusHot, ReasonScoreHot)
		assert.True(t, ent.IsNotFound(err))
		_ = tx.Rollback()
	})
}

func TestMaintainerTick(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	cfg := &config.AppConfig{
		SLOFastPath:   30 * time.Minute,
		QuarantineTTL: 12 * time.Hour,
		Queue:         config.DefaultQueueConfig(),
	}
	m := NewMaintainer(client, cfg)

	t.Run("hydration timeout moves to partial enrich", func(t *testing.T) {
		stale, err := client.Event.Create().
			SetStatus(entevent.StatusHydrating).
			SetFirstSeenAt(time.Now().UTC().Add(-time.Hour)).
			Save(ctx)
		require.NoError(t, err)
		fresh, err := client.Event.Create().
			SetStatus(entevent.StatusHydrating).
			SetFirstSeenAt(time.Now().UTC().Add(-5 * time.Minute)).
			Save(ctx)
		require.NoError(t, err)

		require.NoError(t, m.Tick(ctx))

		reloaded, err := client.Event.Get(ctx, stale.ID)
		require.NoError(t, err)
		assert.Equal(t, entevent.StatusPartialEnrich, reloaded.Status)

		history := statusHistory(t, client, stale.ID)
		require.Len(t, history, 1)
		assert.Equal(t, ReasonHydrationTimeout, history[0].StatusReason)

		untouched, err := client.Event.Get(ctx, fresh.ID)
		require.NoError(t, err)
		assert.Equal(t, entevent.StatusHydrating, untouched.Status)
	})

	t.Run("quarantine TTL moves to expired", func(t *testing.T) {
		stale, err := client.Event.Create().
			SetStatus(entevent.StatusQuarantine).
			SetUpdatedAt(time.Now().UTC().Add(-13 * time.Hour)).
			Save(ctx)
		require.NoError(t, err)

		require.NoError(t, m.Tick(ctx))

		reloaded, err := client.Event.Get(ctx, stale.ID)
		require.NoError(t, err)
		assert.Equal(t, entevent.StatusExpired, reloaded.Status)

		history := statusHistory(t, client, stale.ID)
		require.Len(t, history, 1)
		assert.Equal(t, ReasonQuarantineExpired, history[0].StatusReason)
	})
}
