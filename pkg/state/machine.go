// Package state owns event status transitions: the append-only EventState
// history, the maintenance timeouts and the editorial action gating.
package state

import (
	"context"

	"github.com/radarpautas/radar/ent"
	entevent "github.com/radarpautas/radar/ent/event"
	"github.com/radarpautas/radar/ent/eventstate"
	"github.com/radarpautas/radar/pkg/metrics"
)

// Stable transition reason codes.
const (
	ReasonEventCreated       = "EVENT_CREATED"
	ReasonHydrationTimeout   = "HYDRATION_TIMEOUT_FAST"
	ReasonQuarantineExpired  = "QUARANTINE_TTL_EXPIRED"
	ReasonScoreQuarantine    = "SCORE_QUARANTINE_HEURISTIC"
	ReasonScoreHot           = "SCORE_THRESHOLD_HOT"
	ReasonScoreRecompute     = "SCORE_RECOMPUTE"
	ReasonHardAnchorMatch    = "HARD_ANCHOR_MATCH"
	ReasonEditorialMerge     = "EDITORIAL_MERGE"
	ReasonEditorialIgnore    = "EDITORIAL_IGNORE"
	ReasonEditorialSnooze    = "EDITORIAL_SNOOZE"
	ReasonEditorialPautar    = "EDITORIAL_PAUTAR"
	ReasonSplitCreated       = "EDITORIAL_SPLIT_CREATED"
	ReasonSplitSourceUpdated = "EDITORIAL_SPLIT_SOURCE_UPDATED"
)

// IsTerminal reports whether a status accepts no further transitions.
func IsTerminal(status entevent.Status) bool {
	switch status {
	case entevent.StatusMerged, entevent.StatusIgnored, entevent.StatusExpired:
		return true
	}
	return false
}

// Transition moves an event to a new status inside the caller's transaction:
// one appended EventState row plus the materialized Event.status. A no-op
// transition (same status) appends nothing and reports changed=false.
func Transition(ctx context.Context, tx *ent.Tx, eventID int, to entevent.Status, reason string) (changed bool, err error) {
	ev, err := tx.Event.Get(ctx, eventID)
	if err != nil {
		return false, err
	}
	if ev.Status == to {
		return false, nil
	}

	if _, err := tx.Event.UpdateOneID(eventID).SetStatus(to).Save(ctx); err != nil {
		return false, err
	}
	if _, err := tx.EventState.Create().
		SetEventID(eventID).
		SetStatus(eventstate.Status(to)).
		SetStatusReason(reason).
		Save(ctx); err != nil {
		return false, err
	}

	metrics.StateTransitions.WithLabelValues(string(to)).Inc()
	return true, nil
}
