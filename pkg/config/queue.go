package config

import "time"

// QueueConfig sizes the in-process worker pools, one per typed queue.
type QueueConfig struct {
	// FetchFastWorkers, FetchRenderWorkers and FetchDeepWorkers size the
	// strategy-specific fetch pools.
	FetchFastWorkers   int
	FetchRenderWorkers int
	FetchDeepWorkers   int

	// ExtractFastWorkers and ExtractDeepWorkers size the extraction pools.
	ExtractFastWorkers int
	ExtractDeepWorkers int

	// OrganizeWorkers, ScoreWorkers, AlertWorkers and DraftWorkers size the
	// downstream pipeline pools.
	OrganizeWorkers int
	ScoreWorkers    int
	AlertWorkers    int
	DraftWorkers    int

	// QueueCapacity is the buffered capacity of each typed queue.
	QueueCapacity int

	// TaskTimeout bounds one task execution.
	TaskTimeout time.Duration

	// GracefulShutdownTimeout is the max time to wait for in-flight tasks
	// during shutdown.
	GracefulShutdownTimeout time.Duration

	// SchedulerTick is the orchestrator cadence.
	SchedulerTick time.Duration

	// MaintenanceTick drives state timeout/TTL sweeps.
	MaintenanceTick time.Duration

	// CanonicalizeTick drives cross-event strong-anchor folding.
	CanonicalizeTick time.Duration
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		FetchFastWorkers:        8,
		FetchRenderWorkers:      2,
		FetchDeepWorkers:        2,
		ExtractFastWorkers:      4,
		ExtractDeepWorkers:      2,
		OrganizeWorkers:         4,
		ScoreWorkers:            4,
		AlertWorkers:            2,
		DraftWorkers:            1,
		QueueCapacity:           1024,
		TaskTimeout:             5 * time.Minute,
		GracefulShutdownTimeout: 30 * time.Second,
		SchedulerTick:           60 * time.Second,
		MaintenanceTick:         30 * time.Second,
		CanonicalizeTick:        120 * time.Second,
	}
}

func (q *QueueConfig) loadFromEnv() error {
	var err error
	if q.FetchFastWorkers, err = intEnv("FETCH_FAST_WORKERS", q.FetchFastWorkers); err != nil {
		return err
	}
	if q.FetchRenderWorkers, err = intEnv("FETCH_RENDER_WORKERS", q.FetchRenderWorkers); err != nil {
		return err
	}
	if q.FetchDeepWorkers, err = intEnv("FETCH_DEEP_WORKERS", q.FetchDeepWorkers); err != nil {
		return err
	}
	if q.ExtractFastWorkers, err = intEnv("EXTRACT_FAST_WORKERS", q.ExtractFastWorkers); err != nil {
		return err
	}
	if q.ExtractDeepWorkers, err = intEnv("EXTRACT_DEEP_WORKERS", q.ExtractDeepWorkers); err != nil {
		return err
	}
	if q.OrganizeWorkers, err = intEnv("ORGANIZE_WORKERS", q.OrganizeWorkers); err != nil {
		return err
	}
	if q.ScoreWorkers, err = intEnv("SCORE_WORKERS", q.ScoreWorkers); err != nil {
		return err
	}
	if q.AlertWorkers, err = intEnv("ALERT_WORKERS", q.AlertWorkers); err != nil {
		return err
	}
	if q.DraftWorkers, err = intEnv("DRAFT_WORKERS", q.DraftWorkers); err != nil {
		return err
	}
	if q.QueueCapacity, err = intEnv("QUEUE_CAPACITY", q.QueueCapacity); err != nil {
		return err
	}
	return nil
}
