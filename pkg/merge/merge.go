// Package merge folds colliding events into a canonical one and splits
// wrongly-clustered ones. Merges are tombstone-based: the absorbed event
// stays addressable and redirects to its canonical successor.
package merge

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/radarpautas/radar/ent"
	entevent "github.com/radarpautas/radar/ent/event"
	"github.com/radarpautas/radar/ent/eventdoc"
	"github.com/radarpautas/radar/ent/eventscore"
	"github.com/radarpautas/radar/ent/eventstate"
	"github.com/radarpautas/radar/ent/mergeaudit"
	"github.com/radarpautas/radar/pkg/metrics"
	"github.com/radarpautas/radar/pkg/state"
)

// ErrIdempotent marks a merge skipped by an idempotence guard: the work is
// already done and retrying is harmless.
var ErrIdempotent = errors.New("MergeIdempotent")

// Result summarizes one merge.
type Result struct {
	MovedDocs   int
	DedupedDocs int
}

// Merge absorbs event fromID into canonical toID inside the caller's
// transaction. Guards: self-merge, an already-set tombstone pointer and a
// repeated (from, to, reason) audit row all return ErrIdempotent.
func Merge(ctx context.Context, tx *ent.Tx, fromID, toID int, reason string, evidence map[string]interface{}) (*Result, error) {
	if fromID == toID {
		return nil, ErrIdempotent
	}

	from, err := tx.Event.Get(ctx, fromID)
	if err != nil {
		return nil, err
	}
	if from.CanonicalEventID != nil {
		return nil, ErrIdempotent
	}
	to, err := tx.Event.Get(ctx, toID)
	if err != nil {
		return nil, err
	}
	if to.CanonicalEventID != nil {
		return nil, fmt.Errorf("merge target %d is a tombstone", toID)
	}

	dup, err := tx.MergeAudit.Query().
		Where(
			mergeaudit.FromEventID(fromID),
			mergeaudit.ToEventID(toID),
			mergeaudit.ReasonCode(reason),
		).
		Exist(ctx)
	if err != nil {
		return nil, err
	}
	if dup {
		return nil, ErrIdempotent
	}

	res, err := reassignDocs(ctx, tx, fromID, toID)
	if err != nil {
		return nil, err
	}
	if err := foldAttributes(ctx, tx, from, to); err != nil {
		return nil, err
	}
	if err := foldScores(ctx, tx, fromID, toID); err != nil {
		return nil, err
	}

	if _, err := tx.Event.UpdateOneID(fromID).SetCanonicalEventID(toID).Save(ctx); err != nil {
		return nil, err
	}
	if _, err := state.Transition(ctx, tx, fromID, entevent.StatusMerged, reason); err != nil {
		return nil, err
	}

	audit := map[string]interface{}{
		"moved_docs":   res.MovedDocs,
		"deduped_docs": res.DedupedDocs,
	}
	for k, v := range evidence {
		audit[k] = v
	}
	if _, err := tx.MergeAudit.Create().
		SetFromEventID(fromID).
		SetToEventID(toID).
		SetReasonCode(reason).
		SetEvidenceJSON(audit).
		Save(ctx); err != nil {
		return nil, err
	}

	metrics.Merges.WithLabelValues(reason).Inc()
	return res, nil
}

// reassignDocs repoints the absorbed event's docs, deduping links the
// canonical event already has and keeping exactly one primary.
func reassignDocs(ctx context.Context, tx *ent.Tx, fromID, toID int) (*Result, error) {
	toLinks, err := tx.EventDoc.Query().
		Where(eventdoc.EventID(toID)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	toDocs := make(map[int]struct{}, len(toLinks))
	hasPrimary := false
	for _, link := range toLinks {
		toDocs[link.DocID] = struct{}{}
		if link.IsPrimary {
			hasPrimary = true
		}
	}

	fromLinks, err := tx.EventDoc.Query().
		Where(eventdoc.EventID(fromID)).
		Order(ent.Asc(eventdoc.FieldSeenAt), ent.Asc(eventdoc.FieldDocID)).
		All(ctx)
	if err != nil {
		return nil, err
	}

	res := &Result{}
	for _, link := range fromLinks {
		if _, exists := toDocs[link.DocID]; exists {
			if err := tx.EventDoc.DeleteOne(link).Exec(ctx); err != nil {
				return nil, err
			}
			res.DedupedDocs++
			continue
		}
		update := tx.EventDoc.UpdateOne(link).SetEventID(toID)
		if link.IsPrimary {
			if hasPrimary {
				update.SetIsPrimary(false)
			} else {
				hasPrimary = true
			}
		}
		if _, err := update.Save(ctx); err != nil {
			return nil, err
		}
		toDocs[link.DocID] = struct{}{}
		res.MovedDocs++
	}

	if !hasPrimary {
		if err := promoteOldest(ctx, tx, toID); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// promoteOldest elects the oldest (seen_at, doc_id) link as primary.
func promoteOldest(ctx context.Context, tx *ent.Tx, eventID int) error {
	oldest, err := tx.EventDoc.Query().
		Where(eventdoc.EventID(eventID)).
		Order(ent.Asc(eventdoc.FieldSeenAt), ent.Asc(eventdoc.FieldDocID)).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil
	}
	if err != nil {
		return err
	}
	_, err = tx.EventDoc.UpdateOne(oldest).SetIsPrimary(true).Save(ctx)
	return err
}

// foldAttributes widens the canonical event's window and fills gaps without
// overwriting anything it already has.
func foldAttributes(ctx context.Context, tx *ent.Tx, from, to *ent.Event) error {
	update := tx.Event.UpdateOneID(to.ID)

	if from.FirstSeenAt.Before(to.FirstSeenAt) {
		update.SetFirstSeenAt(from.FirstSeenAt)
	}
	if from.LastSeenAt.After(to.LastSeenAt) {
		update.SetLastSeenAt(from.LastSeenAt)
	}
	if to.Summary == "" && from.Summary != "" {
		update.SetSummary(from.Summary)
	}
	if to.Lane == "" && from.Lane != "" {
		update.SetLane(from.Lane)
	}
	flags := slices.Clone(to.FlagsJSON)
	for _, f := range from.FlagsJSON {
		if !slices.Contains(flags, f) {
			flags = append(flags, f)
		}
	}
	update.SetFlagsJSON(flags)
	if from.ScorePlantao > to.ScorePlantao {
		update.SetScorePlantao(from.ScorePlantao)
	}

	_, err := update.Save(ctx)
	return err
}

// foldScores takes per-score maxima; reasons are copied only when the
// canonical event has none of its own.
func foldScores(ctx context.Context, tx *ent.Tx, fromID, toID int) error {
	fromScore, err := tx.EventScore.Query().Where(eventscore.EventID(fromID)).Only(ctx)
	if ent.IsNotFound(err) {
		return nil
	}
	if err != nil {
		return err
	}

	toScore, err := tx.EventScore.Query().Where(eventscore.EventID(toID)).Only(ctx)
	if ent.IsNotFound(err) {
		_, err = tx.EventScore.Create().
			SetEventID(toID).
			SetScorePlantao(fromScore.ScorePlantao).
			SetScoreOceanoAzul(fromScore.ScoreOceanoAzul).
			SetReasonsJSON(fromScore.ReasonsJSON).
			Save(ctx)
		return err
	}
	if err != nil {
		return err
	}

	update := tx.EventScore.UpdateOne(toScore)
	if fromScore.ScorePlantao > toScore.ScorePlantao {
		update.SetScorePlantao(fromScore.ScorePlantao)
	}
	if fromScore.ScoreOceanoAzul > toScore.ScoreOceanoAzul {
		update.SetScoreOceanoAzul(fromScore.ScoreOceanoAzul)
	}
	if len(toScore.ReasonsJSON) == 0 && len(fromScore.ReasonsJSON) > 0 {
		update.SetReasonsJSON(fromScore.ReasonsJSON)
	}
	_, err = update.Save(ctx)
	return err
}

// appendState writes an EventState row without requiring a status change
// (split bookkeeping on the source side).
func appendState(ctx context.Context, tx *ent.Tx, eventID int, status entevent.Status, reason string) error {
	_, err := tx.EventState.Create().
		SetEventID(eventID).
		SetStatus(eventstate.Status(status)).
		SetStatusReason(reason).
		Save(ctx)
	return err
}
