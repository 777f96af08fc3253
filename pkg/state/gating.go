package state

import (
	"fmt"
	"time"

	"github.com/radarpautas/radar/ent"
	entevent "github.com/radarpautas/radar/ent/event"
)

// Stable action-gating block codes, returned verbatim in 409 bodies.
const (
	BlockMergedTombstone = "ACTION_BLOCKED_MERGED_TOMBSTONE"
	BlockIgnored         = "ACTION_BLOCKED_IGNORED"
	BlockExpired         = "ACTION_BLOCKED_EXPIRED"
	BlockHydrating       = "ACTION_BLOCKED_HYDRATING"
)

// BlockedError is a refused editorial action; Code is machine-readable.
type BlockedError struct {
	Code    string
	EventID int
}

func (e *BlockedError) Error() string {
	return fmt.Sprintf("action blocked on event %d: %s", e.EventID, e.Code)
}

// CheckActionAllowed gates the mutating editorial actions (MERGE, SPLIT,
// PAUTAR): blocked on tombstones, terminal editorial states, and events still
// hydrating inside the fast-path SLO. The caller never mutates state when an
// error is returned.
func CheckActionAllowed(ev *ent.Event, sloFast time.Duration, now time.Time) error {
	if ev.CanonicalEventID != nil || ev.Status == entevent.StatusMerged {
		return &BlockedError{Code: BlockMergedTombstone, EventID: ev.ID}
	}
	switch ev.Status {
	case entevent.StatusIgnored:
		return &BlockedError{Code: BlockIgnored, EventID: ev.ID}
	case entevent.StatusExpired:
		return &BlockedError{Code: BlockExpired, EventID: ev.ID}
	case entevent.StatusHydrating:
		if now.Before(ev.FirstSeenAt.Add(sloFast)) {
			return &BlockedError{Code: BlockHydrating, EventID: ev.ID}
		}
	}
	return nil
}
