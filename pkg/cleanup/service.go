// Package cleanup provides data retention sweeps for the crawl history.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/radarpautas/radar/ent/fetchattempt"
	"github.com/radarpautas/radar/ent/snapshot"
	"github.com/radarpautas/radar/pkg/database"
)

// Config sets the retention windows.
type Config struct {
	// SnapshotRetention bounds how long raw snapshot bodies are kept.
	SnapshotRetention time.Duration

	// AttemptRetention bounds the fetch attempt log.
	AttemptRetention time.Duration

	// Interval is the sweep cadence.
	Interval time.Duration
}

// DefaultConfig returns the built-in retention defaults.
func DefaultConfig() Config {
	return Config{
		SnapshotRetention: 14 * 24 * time.Hour,
		AttemptRetention:  7 * 24 * time.Hour,
		Interval:          time.Hour,
	}
}

// Service periodically enforces retention policies:
//   - Deletes snapshot rows (and their raw bodies) past the retention window
//   - Prunes old fetch attempt rows
//
// All operations are idempotent and safe to run from multiple replicas.
type Service struct {
	db     *database.Client
	config Config

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(db *database.Client, cfg Config) *Service {
	return &Service{
		db:     db,
		config: cfg,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"snapshot_retention", s.config.SnapshotRetention,
		"attempt_retention", s.config.AttemptRetention,
		"interval", s.config.Interval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	s.pruneSnapshots(ctx)
	s.pruneAttempts(ctx)
}

func (s *Service) pruneSnapshots(ctx context.Context) {
	cutoff := time.Now().UTC().Add(-s.config.SnapshotRetention)
	count, err := s.db.Snapshot.Delete().
		Where(snapshot.FetchedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		slog.Error("Retention: snapshot prune failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: pruned old snapshots", "count", count)
	}
}

func (s *Service) pruneAttempts(ctx context.Context) {
	cutoff := time.Now().UTC().Add(-s.config.AttemptRetention)
	count, err := s.db.FetchAttempt.Delete().
		Where(fetchattempt.CreatedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		slog.Error("Retention: fetch attempt prune failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: pruned old fetch attempts", "count", count)
	}
}
