// Package alerts persists deduplicated notifications for effective state
// transitions. Routing is a single internal channel; spam control is a
// per-event cooldown plus a hash over the score bands and reason arrays, so a
// recomputation that lands in the same band stays silent.
package alerts

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/radarpautas/radar/ent"
	"github.com/radarpautas/radar/ent/eventalertstate"
	"github.com/radarpautas/radar/pkg/config"
	"github.com/radarpautas/radar/pkg/database"
	"github.com/radarpautas/radar/pkg/metrics"
	"github.com/radarpautas/radar/pkg/queue"
)

// Service is the alert worker.
type Service struct {
	db       *database.Client
	cooldown time.Duration
	now      func() time.Time
}

// NewService wires the alert stage.
func NewService(db *database.Client, cfg *config.AppConfig) *Service {
	return &Service{db: db, cooldown: cfg.AlertCooldown, now: time.Now}
}

// Hash derives the alert dedupe key: SHA-256 over the event id, both reason
// arrays and both scores bucketed into bands of 5. Map marshaling in Go sorts
// keys, which keeps the key deterministic.
func Hash(eventID int, plantao, oceano queue.ScorePayload) string {
	payload := map[string]interface{}{
		"event_id":        eventID,
		"plantao_reasons": reasonsOrEmpty(plantao.Reasons),
		"oceano_reasons":  reasonsOrEmpty(oceano.Reasons),
		"plantao_band":    int(plantao.Score) / 5,
		"oceano_band":     int(oceano.Score) / 5,
	}
	raw, _ := json.Marshal(payload)
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}

func reasonsOrEmpty(reasons []string) []string {
	if reasons == nil {
		return []string{}
	}
	return reasons
}

// Handle evaluates one alert task: suppressed inside the cooldown window or
// when the dedupe hash repeats, persisted as a SENT internal alert otherwise.
func (s *Service) Handle(ctx context.Context, task queue.AlertTask) error {
	now := s.now().UTC()
	hash := Hash(task.EventID, task.Plantao, task.Oceano)
	log := slog.With("event_id", task.EventID)

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return err
	}
	sent, why, err := s.deliver(ctx, tx, task, hash, now)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("alert for event %d: %w", task.EventID, err)
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	if sent {
		metrics.AlertsSent.Inc()
		log.Info("Alert sent", "alert_hash", hash)
	} else {
		metrics.AlertsSuppressed.WithLabelValues(why).Inc()
		log.Info("Alert suppressed", "why", why)
	}
	return nil
}

func (s *Service) deliver(ctx context.Context, tx *ent.Tx, task queue.AlertTask, hash string, now time.Time) (sent bool, why string, err error) {
	if _, err := tx.Event.Get(ctx, task.EventID); ent.IsNotFound(err) {
		return false, "event_missing", nil
	} else if err != nil {
		return false, "", err
	}

	st, err := tx.EventAlertState.Query().
		Where(eventalertstate.EventID(task.EventID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		st, err = tx.EventAlertState.Create().
			SetEventID(task.EventID).
			Save(ctx)
	}
	if err != nil {
		return false, "", err
	}

	if st.CooldownUntil != nil && st.CooldownUntil.After(now) {
		return false, "cooldown", nil
	}
	if st.LastAlertHash == hash {
		return false, "duplicate", nil
	}

	payload := map[string]interface{}{
		"event_id":     task.EventID,
		"plantao":      task.Plantao,
		"oceano":       task.Oceano,
		"generated_at": now.Format(time.RFC3339),
	}
	if _, err := tx.Alert.Create().
		SetEventID(task.EventID).
		SetChannel("internal").
		SetStatus("SENT").
		SetAlertHash(hash).
		SetPayloadJSON(payload).
		Save(ctx); err != nil {
		return false, "", err
	}

	if _, err := tx.EventAlertState.UpdateOne(st).
		SetLastAlertHash(hash).
		SetLastAlertAt(now).
		SetCooldownUntil(now.Add(s.cooldown)).
		Save(ctx); err != nil {
		return false, "", err
	}
	return true, "", nil
}
