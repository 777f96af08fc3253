// Package scheduler turns per-source cadences into due fetch work. One tick
// reads the enabled catalog, compares each source's cadence against its
// latest fetch attempt and dispatches tasks to the strategy pools.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/radarpautas/radar/ent"
	"github.com/radarpautas/radar/ent/fetchattempt"
	"github.com/radarpautas/radar/ent/source"
	"github.com/radarpautas/radar/pkg/config"
	"github.com/radarpautas/radar/pkg/database"
	"github.com/radarpautas/radar/pkg/metrics"
	"github.com/radarpautas/radar/pkg/queue"
)

// cronLookback bounds how far back a cron reference can reach when a source
// has never been fetched.
const cronLookback = 24 * time.Hour

// Scheduler is the orchestrator loop.
type Scheduler struct {
	db     *database.Client
	queues *queue.Queues
	now    func() time.Time

	tick     time.Duration
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	started  bool
}

// New creates the scheduler.
func New(db *database.Client, queues *queue.Queues, cfg *config.AppConfig) *Scheduler {
	return &Scheduler{
		db:     db,
		queues: queues,
		now:    time.Now,
		tick:   cfg.Queue.SchedulerTick,
		stopCh: make(chan struct{}),
	}
}

// Start launches the scheduling loop.
func (s *Scheduler) Start(ctx context.Context) {
	if s.started {
		return
	}
	s.started = true
	s.wg.Add(1)
	go s.run(ctx)
	slog.Info("Scheduler started", "tick", s.tick)
}

// Stop halts the loop and waits for an in-flight tick.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
	s.wg.Wait()
	slog.Info("Scheduler stopped")
}

func (s *Scheduler) run(ctx context.Context) {
	defer s.wg.Done()
	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopCh:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.Tick(ctx); err != nil {
				slog.Error("Scheduler tick failed", "error", err)
			}
		}
	}
}

// Tick dispatches one fetch task per due source. A source with an invalid
// profile is skipped with a log line and never wedges the others.
func (s *Scheduler) Tick(ctx context.Context) error {
	now := s.now().UTC()

	rows, err := s.db.Source.Query().
		Where(source.Enabled(true)).
		All(ctx)
	if err != nil {
		return err
	}

	dispatched := 0
	for _, row := range rows {
		profile, err := config.ParseProfile(row.Name, row.Profile)
		if err != nil {
			slog.Warn("Source profile invalid, skipping",
				"source_id", row.ID,
				"source", row.Name,
				"error", err)
			continue
		}
		denormalize(profile, row)

		lastAt, err := s.lastAttemptAt(ctx, row.ID)
		if err != nil {
			return err
		}
		due, err := isDue(profile.Cadence, lastAt, now)
		if err != nil {
			slog.Warn("Cadence evaluation failed", "source_id", row.ID, "error", err)
			continue
		}
		if !due {
			continue
		}

		task := queue.FetchTask{Profile: profile}
		if err := s.queues.FetchFor(profile.Pool).TryEnqueue(task); err != nil {
			slog.Warn("Fetch task dropped, queue full",
				"source_id", row.ID,
				"pool", profile.Pool)
			continue
		}
		metrics.ScheduledFetches.WithLabelValues(string(profile.Pool)).Inc()
		dispatched++
	}

	if dispatched > 0 {
		slog.Info("Fetches dispatched", "count", dispatched, "sources", len(rows))
	}
	return nil
}

// denormalize carries the catalog attributes on the profile so downstream
// workers never re-read the source row.
func denormalize(p *config.SourceProfile, row *ent.Source) {
	p.SourceID = row.ID
	p.Domain = row.Domain
	p.Name = row.Name
	p.Tier = row.Tier
	p.IsOfficial = row.IsOfficial
	if p.Language == "" || p.Language == "pt-BR" {
		p.Language = row.Language
	}
}

// lastAttemptAt returns the creation time of the source's most recent fetch
// attempt; nil when it has never been fetched.
func (s *Scheduler) lastAttemptAt(ctx context.Context, sourceID int) (*time.Time, error) {
	last, err := s.db.FetchAttempt.Query().
		Where(fetchattempt.SourceID(sourceID)).
		Order(ent.Desc(fetchattempt.FieldCreatedAt)).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	at := last.CreatedAt
	return &at, nil
}

// isDue evaluates a cadence against the last attempt time. Interval cadences
// fire when the interval has elapsed (or never fetched); cron cadences fire
// when the next occurrence after the reference is in the past.
func isDue(c config.Cadence, lastAt *time.Time, now time.Time) (bool, error) {
	if c.IntervalSeconds > 0 {
		if lastAt == nil {
			return true, nil
		}
		return now.Sub(*lastAt) >= time.Duration(c.IntervalSeconds)*time.Second, nil
	}

	schedule, err := cron.ParseStandard(c.Cron)
	if err != nil {
		return false, err
	}
	ref := now.Add(-cronLookback)
	if lastAt != nil && lastAt.After(ref) {
		ref = *lastAt
	}
	return !schedule.Next(ref).After(now), nil
}
