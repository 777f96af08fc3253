package merge

import (
	"context"
	"errors"
	"fmt"

	"github.com/radarpautas/radar/ent"
	entevent "github.com/radarpautas/radar/ent/event"
	"github.com/radarpautas/radar/ent/eventdoc"
	"github.com/radarpautas/radar/pkg/state"
)

// ErrInvalidSplit covers every rejected split request: empty selection,
// unknown doc ids, or a selection that would empty the source event.
var ErrInvalidSplit = errors.New("SplitInvalid")

// Split moves a proper subset of the source event's docs onto a fresh
// PARTIAL_ENRICH event inside the caller's transaction and re-elects the
// primary on both sides. Returns the new event's id.
func Split(ctx context.Context, tx *ent.Tx, sourceEventID int, docIDs []int) (int, error) {
	if len(docIDs) == 0 {
		return 0, fmt.Errorf("%w: no doc ids", ErrInvalidSplit)
	}

	src, err := tx.Event.Get(ctx, sourceEventID)
	if err != nil {
		return 0, err
	}
	if src.CanonicalEventID != nil {
		return 0, fmt.Errorf("%w: event %d is a tombstone", ErrInvalidSplit, sourceEventID)
	}

	links, err := tx.EventDoc.Query().
		Where(eventdoc.EventID(sourceEventID)).
		All(ctx)
	if err != nil {
		return 0, err
	}
	if len(links) < 2 {
		return 0, fmt.Errorf("%w: event %d has fewer than 2 docs", ErrInvalidSplit, sourceEventID)
	}

	byDoc := make(map[int]*ent.EventDoc, len(links))
	for _, link := range links {
		byDoc[link.DocID] = link
	}
	moving := make([]*ent.EventDoc, 0, len(docIDs))
	seen := make(map[int]struct{}, len(docIDs))
	for _, id := range docIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		link, ok := byDoc[id]
		if !ok {
			return 0, fmt.Errorf("%w: doc %d is not linked to event %d", ErrInvalidSplit, id, sourceEventID)
		}
		moving = append(moving, link)
	}
	if len(moving) == len(links) {
		return 0, fmt.Errorf("%w: selection would empty event %d", ErrInvalidSplit, sourceEventID)
	}

	first, last := moving[0].SeenAt, moving[0].SeenAt
	for _, link := range moving[1:] {
		if link.SeenAt.Before(first) {
			first = link.SeenAt
		}
		if link.SeenAt.After(last) {
			last = link.SeenAt
		}
	}

	create := tx.Event.Create().
		SetStatus(entevent.StatusPartialEnrich).
		SetFirstSeenAt(first).
		SetLastSeenAt(last)
	if src.Lane != "" {
		create.SetLane(src.Lane)
	}
	fresh, err := create.Save(ctx)
	if err != nil {
		return 0, err
	}

	for _, link := range moving {
		if _, err := tx.EventDoc.UpdateOne(link).
			SetEventID(fresh.ID).
			SetIsPrimary(false).
			Save(ctx); err != nil {
			return 0, err
		}
	}
	if err := reelectPrimary(ctx, tx, fresh.ID); err != nil {
		return 0, err
	}
	if err := reelectPrimary(ctx, tx, sourceEventID); err != nil {
		return 0, err
	}

	if err := appendState(ctx, tx, fresh.ID, entevent.StatusPartialEnrich, state.ReasonSplitCreated); err != nil {
		return 0, err
	}
	if err := appendState(ctx, tx, sourceEventID, src.Status, state.ReasonSplitSourceUpdated); err != nil {
		return 0, err
	}
	return fresh.ID, nil
}

// reelectPrimary clears every primary flag on the event and promotes the
// oldest (seen_at, doc_id) link.
func reelectPrimary(ctx context.Context, tx *ent.Tx, eventID int) error {
	if _, err := tx.EventDoc.Update().
		Where(eventdoc.EventID(eventID), eventdoc.IsPrimary(true)).
		SetIsPrimary(false).
		Save(ctx); err != nil {
		return err
	}
	return promoteOldest(ctx, tx, eventID)
}
