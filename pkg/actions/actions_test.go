package actions

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radarpautas/radar/ent"
	entevent "github.com/radarpautas/radar/ent/event"
	"github.com/radarpautas/radar/ent/eventdoc"
	"github.com/radarpautas/radar/ent/feedbackevent"
	"github.com/radarpautas/radar/pkg/config"
	"github.com/radarpautas/radar/pkg/database"
	"github.com/radarpautas/radar/pkg/queue"
	"github.com/radarpautas/radar/pkg/state"
	testdb "github.com/radarpautas/radar/test/database"
)

func setupService(t *testing.T) (*Service, *database.Client, *queue.Queues) {
	t.Helper()
	client := testdb.NewTestClient(t)
	queues := queue.NewQueues(16)
	cfg := &config.AppConfig{SLOFastPath: 30 * time.Minute}
	return NewService(client, queues, cfg), client, queues
}

func createTestEvent(t *testing.T, client *database.Client, status entevent.Status) *ent.Event {
	t.Helper()
	ev, err := client.Event.Create().
		SetStatus(status).
		Save(context.Background())
	require.NoError(t, err)
	return ev
}

func feedbackCount(t *testing.T, client *database.Client, eventID int) int {
	t.Helper()
	n, err := client.FeedbackEvent.Query().
		Where(feedbackevent.EventID(eventID)).
		Count(context.Background())
	require.NoError(t, err)
	return n
}

func TestApplySimpleActions(t *testing.T) {
	svc, client, _ := setupService(t)
	ctx := context.Background()

	tests := []struct {
		action     feedbackevent.Action
		wantStatus entevent.Status
	}{
		{feedbackevent.ActionIgnore, entevent.StatusIgnored},
		{feedbackevent.ActionSnooze, entevent.StatusQuarantine},
		{feedbackevent.ActionPautar, entevent.StatusHot},
	}
	for _, tt := range tests {
		t.Run(string(tt.action), func(t *testing.T) {
			ev := createTestEvent(t, client, entevent.StatusPartialEnrich)

			res, err := svc.Apply(ctx, Request{EventID: ev.ID, Action: tt.action, Actor: "editor@exemplo"})
			require.NoError(t, err)
			assert.Equal(t, ev.ID, res.EventID)
			assert.True(t, res.StateChanged)

			reloaded, err := client.Event.Get(ctx, ev.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, reloaded.Status)
			assert.Equal(t, 1, feedbackCount(t, client, ev.ID))
		})
	}
}

func TestApplyBlockedStillLogsFeedback(t *testing.T) {
	svc, client, _ := setupService(t)
	ctx := context.Background()

	t.Run("pautar on hydrating inside SLO", func(t *testing.T) {
		ev := createTestEvent(t, client, entevent.StatusHydrating)

		_, err := svc.Apply(ctx, Request{EventID: ev.ID, Action: feedbackevent.ActionPautar})
		var blocked *state.BlockedError
		require.ErrorAs(t, err, &blocked)
		assert.Equal(t, state.BlockHydrating, blocked.Code)

		// Refusal is durable in the editorial log; status is untouched.
		assert.Equal(t, 1, feedbackCount(t, client, ev.ID))
		reloaded, err := client.Event.Get(ctx, ev.ID)
		require.NoError(t, err)
		assert.Equal(t, entevent.StatusHydrating, reloaded.Status)
	})

	t.Run("merge on tombstone", func(t *testing.T) {
		target := createTestEvent(t, client, entevent.StatusHot)
		ev, err := client.Event.Create().
			SetStatus(entevent.StatusMerged).
			SetCanonicalEventID(target.ID).
			Save(ctx)
		require.NoError(t, err)

		_, err = svc.Apply(ctx, Request{
			EventID:       ev.ID,
			Action:        feedbackevent.ActionMerge,
			TargetEventID: target.ID,
		})
		var blocked *state.BlockedError
		require.ErrorAs(t, err, &blocked)
		assert.Equal(t, state.BlockMergedTombstone, blocked.Code)
		assert.Equal(t, 1, feedbackCount(t, client, ev.ID))
	})

	t.Run("ignore on expired", func(t *testing.T) {
		ev := createTestEvent(t, client, entevent.StatusExpired)

		_, err := svc.Apply(ctx, Request{EventID: ev.ID, Action: feedbackevent.ActionIgnore})
		// IGNORE has its own narrower gate: terminal-but-not-merged events
		// can still be ignored explicitly.
		require.NoError(t, err)
	})
}

func TestApplyMerge(t *testing.T) {
	svc, client, queues := setupService(t)
	ctx := context.Background()

	src, err := client.Source.Create().
		SetDomain("exemplo.gov.br").
		SetName("Fonte").
		SetProfile(map[string]interface{}{}).
		Save(ctx)
	require.NoError(t, err)

	newDoc := func(n int) int {
		doc, err := client.Document.Create().
			SetSourceID(src.ID).
			SetURL(fmt.Sprintf("https://exemplo.gov.br/%d", n)).
			SetCleanText("texto").
			SetContentHash(fmt.Sprintf("h%d", n)).
			Save(ctx)
		require.NoError(t, err)
		return doc.ID
	}
	link := func(eventID, docID int, primary bool) {
		_, err := client.EventDoc.Create().
			SetEventID(eventID).
			SetDocID(docID).
			SetSourceID(src.ID).
			SetIsPrimary(primary).
			Save(ctx)
		require.NoError(t, err)
	}

	from := createTestEvent(t, client, entevent.StatusPartialEnrich)
	to := createTestEvent(t, client, entevent.StatusHot)
	link(from.ID, newDoc(1), true)
	link(to.ID, newDoc(2), true)

	res, err := svc.Apply(ctx, Request{
		EventID:       from.ID,
		Action:        feedbackevent.ActionMerge,
		TargetEventID: to.ID,
		Actor:         "editor@exemplo",
	})
	require.NoError(t, err)
	assert.Equal(t, to.ID, res.CanonicalEventID)

	absorbed, err := client.Event.Get(ctx, from.ID)
	require.NoError(t, err)
	require.NotNil(t, absorbed.CanonicalEventID)
	assert.Equal(t, to.ID, *absorbed.CanonicalEventID)

	// The canonical event is queued for rescoring.
	require.Equal(t, 1, queues.Score.Depth())

	t.Run("missing target is a bad request", func(t *testing.T) {
		ev := createTestEvent(t, client, entevent.StatusHot)
		_, err := svc.Apply(ctx, Request{EventID: ev.ID, Action: feedbackevent.ActionMerge})
		assert.ErrorIs(t, err, ErrBadRequest)
	})

	t.Run("nonexistent target is not found", func(t *testing.T) {
		ev := createTestEvent(t, client, entevent.StatusHot)
		_, err := svc.Apply(ctx, Request{
			EventID:       ev.ID,
			Action:        feedbackevent.ActionMerge,
			TargetEventID: 999999,
		})
		assert.True(t, ent.IsNotFound(err))
	})

	t.Run("self merge is a bad request", func(t *testing.T) {
		ev := createTestEvent(t, client, entevent.StatusHot)
		_, err := svc.Apply(ctx, Request{
			EventID:       ev.ID,
			Action:        feedbackevent.ActionMerge,
			TargetEventID: ev.ID,
		})
		assert.ErrorIs(t, err, ErrBadRequest)
	})
}

func TestApplySplit(t *testing.T) {
	svc, client, queues := setupService(t)
	ctx := context.Background()

	src, err := client.Source.Create().
		SetDomain("exemplo.gov.br").
		SetName("Fonte").
		SetProfile(map[string]interface{}{}).
		Save(ctx)
	require.NoError(t, err)

	ev := createTestEvent(t, client, entevent.StatusHot)
	docIDs := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		doc, err := client.Document.Create().
			SetSourceID(src.ID).
			SetURL(fmt.Sprintf("https://exemplo.gov.br/s%d", i)).
			SetCleanText("texto").
			SetContentHash(fmt.Sprintf("s%d", i)).
			Save(ctx)
		require.NoError(t, err)
		docIDs = append(docIDs, doc.ID)
		_, err = client.EventDoc.Create().
			SetEventID(ev.ID).
			SetDocID(doc.ID).
			SetSourceID(src.ID).
			SetIsPrimary(i == 0).
			Save(ctx)
		require.NoError(t, err)
	}

	res, err := svc.Apply(ctx, Request{
		EventID: ev.ID,
		Action:  feedbackevent.ActionSplit,
		DocIDs:  docIDs[2:],
	})
	require.NoError(t, err)
	require.NotZero(t, res.NewEventID)

	moved, err := client.EventDoc.Query().
		Where(eventdoc.EventID(res.NewEventID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, moved)

	// Both sides are queued for rescoring.
	assert.Equal(t, 2, queues.Score.Depth())

	t.Run("invalid selection is a bad request", func(t *testing.T) {
		_, err := svc.Apply(ctx, Request{
			EventID: ev.ID,
			Action:  feedbackevent.ActionSplit,
			DocIDs:  []int{999999},
		})
		assert.ErrorIs(t, err, ErrBadRequest)
	})
}

// An action whose target status the event already holds is accepted (the
// feedback row is logged) but reports no state change.
func TestApplyNoOpReportsNoStateChange(t *testing.T) {
	svc, client, _ := setupService(t)
	ctx := context.Background()

	ev := createTestEvent(t, client, entevent.StatusHot)

	res, err := svc.Apply(ctx, Request{EventID: ev.ID, Action: feedbackevent.ActionPautar, Actor: "editor@exemplo"})
	require.NoError(t, err)
	assert.False(t, res.StateChanged)
	assert.Equal(t, 1, feedbackCount(t, client, ev.ID))

	// No history row is written for the no-op.
	reloaded, err := client.Event.Get(ctx, ev.ID)
	require.NoError(t, err)
	assert.Equal(t, entevent.StatusHot, reloaded.Status)
}

func TestApplyUnknownEvent(t *testing.T) {
	svc, _, _ := setupService(t)
	_, err := svc.Apply(context.Background(), Request{EventID: 999999, Action: feedbackevent.ActionIgnore})
	assert.True(t, ent.IsNotFound(err))
}
