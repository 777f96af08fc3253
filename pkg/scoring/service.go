package scoring

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/radarpautas/radar/ent"
	"github.com/radarpautas/radar/ent/docevidencefeature"
	entevent "github.com/radarpautas/radar/ent/event"
	"github.com/radarpautas/radar/ent/eventdoc"
	"github.com/radarpautas/radar/ent/eventscore"
	"github.com/radarpautas/radar/ent/source"
	"github.com/radarpautas/radar/pkg/database"
	"github.com/radarpautas/radar/pkg/metrics"
	"github.com/radarpautas/radar/pkg/queue"
	"github.com/radarpautas/radar/pkg/state"
)

const velocityWindow = 30 * time.Minute

// draftScoreThreshold triggers the drafting collaborator once an event is HOT.
const draftScoreThreshold = 50.0

// Service is the score worker.
type Service struct {
	db     *database.Client
	queues *queue.Queues
	now    func() time.Time
}

// NewService wires the scoring engine.
func NewService(db *database.Client, queues *queue.Queues) *Service {
	return &Service{db: db, queues: queues, now: time.Now}
}

// Handle recomputes both scores for one event, persists them, derives flags,
// proposes a state and dispatches alert/draft tasks on effective change.
func (s *Service) Handle(ctx context.Context, task queue.ScoreTask) error {
	tx, err := s.db.Tx(ctx)
	if err != nil {
		return err
	}
	result, err := s.score(ctx, tx, task.EventID)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("scoring event %d: %w", task.EventID, err)
	}
	if result == nil {
		_ = tx.Rollback()
		return nil
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	metrics.EventScores.WithLabelValues("SCORE_PLANTAO", result.lane).Observe(result.plantao.Score)
	metrics.EventScores.WithLabelValues("SCORE_OCEANO_AZUL", result.lane).Observe(result.oceano.Score)

	if result.stateChanged {
		alert := queue.AlertTask{EventID: task.EventID, Plantao: result.plantao, Oceano: result.oceano}
		if err := s.queues.Alerts.TryEnqueue(alert); err != nil {
			slog.Warn("Alert task dropped, queue full", "event_id", task.EventID)
		}
	}
	if result.hot && result.plantao.Score > draftScoreThreshold {
		if err := s.queues.Draft.TryEnqueue(queue.DraftTask{EventID: task.EventID}); err != nil {
			slog.Warn("Draft task dropped, queue full", "event_id", task.EventID)
		}
	}
	return nil
}

type scoreResult struct {
	lane         string
	plantao      queue.ScorePayload
	oceano       queue.ScorePayload
	stateChanged bool
	hot          bool
}

func (s *Service) score(ctx context.Context, tx *ent.Tx, eventID int) (*scoreResult, error) {
	ev, err := tx.Event.Get(ctx, eventID)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	// Tombstones are never re-scored; the canonical event carries the score.
	if ev.CanonicalEventID != nil {
		return nil, nil
	}

	agg, err := s.aggregate(ctx, tx, ev)
	if err != nil {
		return nil, err
	}

	plantaoScore, plantaoReasons := Plantao(agg)
	oceanoScore, oceanoReasons := Oceano(agg)

	if err := s.persistScore(ctx, tx, eventID, plantaoScore, oceanoScore, plantaoReasons, oceanoReasons); err != nil {
		return nil, err
	}

	update := tx.Event.UpdateOneID(eventID).SetScorePlantao(plantaoScore)

	flags := slices.Clone(ev.FlagsJSON)
	if UnverifiedViral(agg.Velocity, agg.SourceCount) {
		if !slices.Contains(flags, FlagUnverifiedViral) {
			flags = append(flags, FlagUnverifiedViral)
			metrics.UnverifiedViralEvents.WithLabelValues(laneOf(ev)).Inc()
		}
	} else if i := slices.Index(flags, FlagUnverifiedViral); i >= 0 {
		flags = slices.Delete(flags, i, i+1)
	}
	update.SetFlagsJSON(flags)
	if _, err := update.Save(ctx); err != nil {
		return nil, err
	}

	candidate, reason := proposeState(ev.Status, plantaoScore, agg.SourceCount)
	changed := false
	if candidate != "" {
		changed, err = state.Transition(ctx, tx, eventID, candidate, reason)
		if err != nil {
			return nil, err
		}
	}

	return &scoreResult{
		lane:         laneOf(ev),
		plantao:      queue.ScorePayload{Score: plantaoScore, Reasons: plantaoReasons},
		oceano:       queue.ScorePayload{Score: oceanoScore, Reasons: oceanoReasons},
		stateChanged: changed,
		hot:          candidate == entevent.StatusHot,
	}, nil
}

// aggregate collects the per-event inputs of both formulas.
func (s *Service) aggregate(ctx context.Context, tx *ent.Tx, ev *ent.Event) (Aggregates, error) {
	now := s.now().UTC()
	agg := Aggregates{HighestTier: 3}

	links, err := tx.EventDoc.Query().
		Where(eventdoc.EventID(ev.ID)).
		All(ctx)
	if err != nil {
		return agg, err
	}

	sourceIDs := make(map[int]struct{})
	docIDs := make([]int, 0, len(links))
	for _, link := range links {
		sourceIDs[link.SourceID] = struct{}{}
		docIDs = append(docIDs, link.DocID)
		if now.Sub(link.SeenAt) <= velocityWindow {
			agg.Velocity++
		}
	}
	agg.SourceCount = len(sourceIDs)

	if len(sourceIDs) > 0 {
		ids := make([]int, 0, len(sourceIDs))
		for id := range sourceIDs {
			ids = append(ids, id)
		}
		rows, err := tx.Source.Query().
			Where(source.IDIn(ids...)).
			Select(source.FieldTier, source.FieldIsOfficial).
			All(ctx)
		if err != nil {
			return agg, err
		}
		for _, row := range rows {
			if row.Tier < agg.HighestTier {
				agg.HighestTier = row.Tier
			}
			if row.Tier == 1 {
				agg.HasTier1 = true
			}
			if row.IsOfficial {
				agg.HasOfficial = true
			}
		}
	}

	if len(docIDs) > 0 {
		evidence, err := tx.DocEvidenceFeature.Query().
			Where(docevidencefeature.DocIDIn(docIDs...)).
			All(ctx)
		if err != nil {
			return agg, err
		}
		for _, row := range evidence {
			if row.EvidenceScore > agg.MaxEvidence {
				agg.MaxEvidence = row.EvidenceScore
			}
			if row.HasPdf {
				agg.HasPDFEvidence = true
			}
		}
	}

	age := now.Sub(ev.FirstSeenAt)
	agg.AgeHours = age.Hours()
	agg.DeriveHeuristics(age.Minutes())
	return agg, nil
}

func (s *Service) persistScore(ctx context.Context, tx *ent.Tx, eventID int, plantao, oceano float64, plantaoReasons, oceanoReasons []string) error {
	reasons := map[string][]string{
		"plantao":     plantaoReasons,
		"oceano_azul": oceanoReasons,
	}
	existing, err := tx.EventScore.Query().
		Where(eventscore.EventID(eventID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		_, err = tx.EventScore.Create().
			SetEventID(eventID).
			SetScorePlantao(plantao).
			SetScoreOceanoAzul(oceano).
			SetReasonsJSON(reasons).
			Save(ctx)
		return err
	}
	if err != nil {
		return err
	}
	_, err = tx.EventScore.UpdateOne(existing).
		SetScorePlantao(plantao).
		SetScoreOceanoAzul(oceano).
		SetReasonsJSON(reasons).
		Save(ctx)
	return err
}

// proposeState maps a fresh score to a candidate status; empty means no
// proposal.
func proposeState(current entevent.Status, scorePlantao float64, sourceCount int) (entevent.Status, string) {
	switch {
	case Quarantine(scorePlantao, sourceCount):
		return entevent.StatusQuarantine, state.ReasonScoreQuarantine
	case scorePlantao >= HotThreshold:
		return entevent.StatusHot, state.ReasonScoreHot
	case current == entevent.StatusNew || current == entevent.StatusHydrating:
		return entevent.StatusHydrating, state.ReasonScoreRecompute
	}
	return "", ""
}

func laneOf(ev *ent.Event) string {
	if ev.Lane == "" {
		return "geral"
	}
	return ev.Lane
}
