package state

import (
	"context"
	"log/slog"
	"sync"
	"time"

	entevent "github.com/radarpautas/radar/ent/event"
	"github.com/radarpautas/radar/pkg/config"
	"github.com/radarpautas/radar/pkg/database"
)

// Maintainer is the periodic state-maintenance job: hydration timeouts and
// quarantine TTLs. A missed tick is caught up by the next one.
type Maintainer struct {
	db  *database.Client
	cfg *config.AppConfig

	tick     time.Duration
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	started  bool
}

// NewMaintainer creates the maintenance job.
func NewMaintainer(db *database.Client, cfg *config.AppConfig) *Maintainer {
	return &Maintainer{
		db:     db,
		cfg:    cfg,
		tick:   cfg.Queue.MaintenanceTick,
		stopCh: make(chan struct{}),
	}
}

// Start launches the maintenance loop.
func (m *Maintainer) Start(ctx context.Context) {
	if m.started {
		return
	}
	m.started = true
	m.wg.Add(1)
	go m.run(ctx)
	slog.Info("State maintenance started", "tick", m.tick)
}

// Stop halts the loop and waits for an in-flight tick.
func (m *Maintainer) Stop() {
	m.stopOnce.Do(func() { close(m.stopCh) })
	m.wg.Wait()
	slog.Info("State maintenance stopped")
}

func (m *Maintainer) run(ctx context.Context) {
	defer m.wg.Done()
	ticker := time.NewTicker(m.tick)
	defer ticker.Stop()

	for {
		select {
		case <-m.stopCh:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := m.Tick(ctx); err != nil {
				slog.Error("State maintenance tick failed", "error", err)
			}
		}
	}
}

// Tick applies the timeout and TTL rules once.
func (m *Maintainer) Tick(ctx context.Context) error {
	now := time.Now().UTC()

	if err := m.expireHydrating(ctx, now); err != nil {
		return err
	}
	return m.expireQuarantine(ctx, now)
}

// expireHydrating moves events stuck in HYDRATING past the fast-path SLO to
// PARTIAL_ENRICH.
func (m *Maintainer) expireHydrating(ctx context.Context, now time.Time) error {
	cutoff := now.Add(-m.cfg.SLOFastPath)
	stuck, err := m.db.Event.Query().
		Where(
			entevent.StatusEQ(entevent.StatusHydrating),
			entevent.FirstSeenAtLT(cutoff),
		).
		IDs(ctx)
	if err != nil {
		return err
	}
	for _, id := range stuck {
		if err := m.transition(ctx, id, entevent.StatusPartialEnrich, ReasonHydrationTimeout); err != nil {
			slog.Error("Hydration timeout transition failed", "event_id", id, "error", err)
		}
	}
	return nil
}

// expireQuarantine moves quarantined events past the TTL to EXPIRED.
func (m *Maintainer) expireQuarantine(ctx context.Context, now time.Time) error {
	cutoff := now.Add(-m.cfg.QuarantineTTL)
	stuck, err := m.db.Event.Query().
		Where(
			entevent.StatusEQ(entevent.StatusQuarantine),
			entevent.UpdatedAtLT(cutoff),
		).
		IDs(ctx)
	if err != nil {
		return err
	}
	for _, id := range stuck {
		if err := m.transition(ctx, id, entevent.StatusExpired, ReasonQuarantineExpired); err != nil {
			slog.Error("Quarantine expiry transition failed", "event_id", id, "error", err)
		}
	}
	return nil
}

func (m *Maintainer) transition(ctx context.Context, eventID int, to entevent.Status, reason string) error {
	tx, err := m.db.Tx(ctx)
	if err != nil {
		return err
	}
	if _, err := Transition(ctx, tx, eventID, to, reason); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
