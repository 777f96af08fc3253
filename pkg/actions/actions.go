// Package actions is the editorial action service: one entry point per event
// for IGNORE, SNOOZE, PAUTAR, MERGE and SPLIT. Every request writes a
// FeedbackEvent row before any gating or mutation, so the editorial log is
// complete even for refused actions.
package actions

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/radarpautas/radar/ent"
	entevent "github.com/radarpautas/radar/ent/event"
	"github.com/radarpautas/radar/ent/feedbackevent"
	"github.com/radarpautas/radar/pkg/config"
	"github.com/radarpautas/radar/pkg/database"
	"github.com/radarpautas/radar/pkg/merge"
	"github.com/radarpautas/radar/pkg/queue"
	"github.com/radarpautas/radar/pkg/state"
)

// ErrBadRequest covers malformed action payloads (missing target, bad doc
// list). The HTTP layer maps it to 400.
var ErrBadRequest = errors.New("invalid action payload")

// Request is one editorial action against an event.
type Request struct {
	EventID int
	Action  feedbackevent.Action
	Actor   string
	// TargetEventID is the canonical event for MERGE.
	TargetEventID int
	// DocIDs is the subset to carve out for SPLIT.
	DocIDs []int
}

// Result reports what an accepted action produced.
type Result struct {
	EventID int `json:"event_id"`
	// StateChanged is false when the action was an accepted no-op, e.g.
	// PAUTAR on an already-HOT event or a repeated MERGE.
	StateChanged bool `json:"state_changed"`
	// NewEventID is set by SPLIT.
	NewEventID int `json:"new_event_id,omitempty"`
	// CanonicalEventID is set by MERGE.
	CanonicalEventID int `json:"canonical_event_id,omitempty"`
}

// Service applies editorial actions.
type Service struct {
	db     *database.Client
	queues *queue.Queues
	cfg    *config.AppConfig
	now    func() time.Time
}

// NewService wires the editorial action service.
func NewService(db *database.Client, queues *queue.Queues, cfg *config.AppConfig) *Service {
	return &Service{db: db, queues: queues, cfg: cfg, now: time.Now}
}

// Apply runs one action in a single transaction: feedback row, gating, then
// the state mutation. Gated refusals surface as *state.BlockedError with the
// feedback row already committed.
func (s *Service) Apply(ctx context.Context, req Request) (*Result, error) {
	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, err
	}

	ev, err := tx.Event.Get(ctx, req.EventID)
	if err != nil {
		_ = tx.Rollback()
		return nil, err
	}
	if err := s.logFeedback(ctx, tx, req); err != nil {
		_ = tx.Rollback()
		return nil, err
	}

	result, err := s.apply(ctx, tx, ev, req)
	if err != nil {
		var blocked *state.BlockedError
		if errors.As(err, &blocked) {
			// The feedback row survives a refused action.
			if cerr := tx.Commit(); cerr != nil {
				return nil, cerr
			}
			return nil, err
		}
		_ = tx.Rollback()
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	s.rescore(result)
	slog.Info("Editorial action applied",
		"event_id", req.EventID,
		"action", req.Action,
		"actor", req.Actor)
	return result, nil
}

func (s *Service) logFeedback(ctx context.Context, tx *ent.Tx, req Request) error {
	payload := map[string]interface{}{}
	if req.TargetEventID != 0 {
		payload["target_event_id"] = req.TargetEventID
	}
	if len(req.DocIDs) > 0 {
		payload["doc_ids"] = req.DocIDs
	}
	create := tx.FeedbackEvent.Create().
		SetEventID(req.EventID).
		SetAction(req.Action)
	if req.Actor != "" {
		create.SetActor(req.Actor)
	}
	if len(payload) > 0 {
		create.SetPayloadJSON(payload)
	}
	_, err := create.Save(ctx)
	return err
}

func (s *Service) apply(ctx context.Context, tx *ent.Tx, ev *ent.Event, req Request) (*Result, error) {
	now := s.now().UTC()

	switch req.Action {
	case feedbackevent.ActionIgnore, feedbackevent.ActionSnooze:
		if ev.CanonicalEventID != nil || ev.Status == entevent.StatusMerged {
			return nil, &state.BlockedError{Code: state.BlockMergedTombstone, EventID: ev.ID}
		}
	default:
		if err := state.CheckActionAllowed(ev, s.cfg.SLOFastPath, now); err != nil {
			return nil, err
		}
	}

	switch req.Action {
	case feedbackevent.ActionIgnore:
		changed, err := state.Transition(ctx, tx, ev.ID, entevent.StatusIgnored, state.ReasonEditorialIgnore)
		return &Result{EventID: ev.ID, StateChanged: changed}, err

	case feedbackevent.ActionSnooze:
		changed, err := state.Transition(ctx, tx, ev.ID, entevent.StatusQuarantine, state.ReasonEditorialSnooze)
		return &Result{EventID: ev.ID, StateChanged: changed}, err

	case feedbackevent.ActionPautar:
		changed, err := state.Transition(ctx, tx, ev.ID, entevent.StatusHot, state.ReasonEditorialPautar)
		return &Result{EventID: ev.ID, StateChanged: changed}, err

	case feedbackevent.ActionMerge:
		return s.applyMerge(ctx, tx, ev, req, now)

	case feedbackevent.ActionSplit:
		newID, err := merge.Split(ctx, tx, ev.ID, req.DocIDs)
		if errors.Is(err, merge.ErrInvalidSplit) {
			return nil, fmt.Errorf("%w: %v", ErrBadRequest, err)
		}
		if err != nil {
			return nil, err
		}
		return &Result{EventID: ev.ID, NewEventID: newID, StateChanged: true}, nil
	}
	return nil, fmt.Errorf("%w: unknown action %q", ErrBadRequest, req.Action)
}

func (s *Service) applyMerge(ctx context.Context, tx *ent.Tx, ev *ent.Event, req Request, now time.Time) (*Result, error) {
	if req.TargetEventID == 0 {
		return nil, fmt.Errorf("%w: target_event_id is required", ErrBadRequest)
	}
	if req.TargetEventID == ev.ID {
		return nil, fmt.Errorf("%w: cannot merge an event into itself", ErrBadRequest)
	}
	// A missing target surfaces as ent's not-found, same as a missing event.
	target, err := tx.Event.Get(ctx, req.TargetEventID)
	if err != nil {
		return nil, err
	}
	if err := state.CheckActionAllowed(target, s.cfg.SLOFastPath, now); err != nil {
		return nil, err
	}

	evidence := map[string]interface{}{"actor": req.Actor}
	if _, err := merge.Merge(ctx, tx, ev.ID, target.ID, state.ReasonEditorialMerge, evidence); err != nil {
		if errors.Is(err, merge.ErrIdempotent) {
			return &Result{EventID: ev.ID, CanonicalEventID: target.ID}, nil
		}
		return nil, err
	}
	return &Result{EventID: ev.ID, CanonicalEventID: target.ID, StateChanged: true}, nil
}

// rescore schedules score recomputation for whatever events the action
// touched.
func (s *Service) rescore(result *Result) {
	ids := []int{}
	if result.CanonicalEventID != 0 {
		ids = append(ids, result.CanonicalEventID)
	} else if result.NewEventID != 0 {
		ids = append(ids, result.EventID, result.NewEventID)
	}
	for _, id := range ids {
		if err := s.queues.Score.TryEnqueue(queue.ScoreTask{EventID: id}); err != nil {
			slog.Warn("Score task dropped, queue full", "event_id", id)
		}
	}
}
