package queue

import (
	"context"
	"errors"

	"github.com/radarpautas/radar/pkg/config"
	"github.com/radarpautas/radar/pkg/metrics"
)

// ErrQueueFull indicates a best-effort enqueue was dropped.
var ErrQueueFull = errors.New("queue full")

// Queue is one bounded typed task channel.
type Queue[T any] struct {
	name string
	ch   chan T
}

// NewQueue creates a named queue with the given buffered capacity.
func NewQueue[T any](name string, capacity int) *Queue[T] {
	return &Queue[T]{
		name: name,
		ch:   make(chan T, capacity),
	}
}

// Name returns the queue name used in metrics.
func (q *Queue[T]) Name() string { return q.name }

// Depth returns the current buffered task count.
func (q *Queue[T]) Depth() int { return len(q.ch) }

// Enqueue blocks until the task is accepted or ctx is done.
func (q *Queue[T]) Enqueue(ctx context.Context, task T) error {
	select {
	case q.ch <- task:
		metrics.QueueDepth.WithLabelValues(q.name).Set(float64(len(q.ch)))
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// TryEnqueue is the non-blocking variant; a full queue returns ErrQueueFull.
func (q *Queue[T]) TryEnqueue(task T) error {
	select {
	case q.ch <- task:
		metrics.QueueDepth.WithLabelValues(q.name).Set(float64(len(q.ch)))
		return nil
	default:
		return ErrQueueFull
	}
}

// TryDequeue is the non-blocking receive; ok is false when the queue is
// empty.
func (q *Queue[T]) TryDequeue() (T, bool) {
	select {
	case task := <-q.ch:
		metrics.QueueDepth.WithLabelValues(q.name).Set(float64(len(q.ch)))
		return task, true
	default:
		var zero T
		return zero, false
	}
}

// Queues bundles every typed queue of the pipeline.
type Queues struct {
	FetchFast   *Queue[FetchTask]
	FetchRender *Queue[FetchTask]
	FetchDeep   *Queue[FetchTask]
	ExtractFast *Queue[ExtractTask]
	ExtractDeep *Queue[ExtractTask]
	Organize    *Queue[OrganizeTask]
	Score       *Queue[ScoreTask]
	Alerts      *Queue[AlertTask]
	Draft       *Queue[DraftTask]
}

// NewQueues creates the full queue set with a shared per-queue capacity.
func NewQueues(capacity int) *Queues {
	return &Queues{
		FetchFast:   NewQueue[FetchTask]("fetch_fast", capacity),
		FetchRender: NewQueue[FetchTask]("fetch_render", capacity),
		FetchDeep:   NewQueue[FetchTask]("fetch_deep", capacity),
		ExtractFast: NewQueue[ExtractTask]("extract_fast", capacity),
		ExtractDeep: NewQueue[ExtractTask]("extract_deep", capacity),
		Organize:    NewQueue[OrganizeTask]("organize", capacity),
		Score:       NewQueue[ScoreTask]("score", capacity),
		Alerts:      NewQueue[AlertTask]("alerts", capacity),
		Draft:       NewQueue[DraftTask]("draft", capacity),
	}
}

// FetchFor routes a fetch task to the queue of its pool.
func (q *Queues) FetchFor(pool config.Pool) *Queue[FetchTask] {
	switch pool {
	case config.PoolHeavyRender:
		return q.FetchRender
	case config.PoolDeepExtract:
		return q.FetchDeep
	default:
		return q.FetchFast
	}
}

// ExtractFor routes an extract task: deep for DEEP_EXTRACT pools and PDF
// payloads, fast otherwise.
func (q *Queues) ExtractFor(pool config.Pool, payloadKind string) *Queue[ExtractTask] {
	if pool == config.PoolDeepExtract || payloadKind == "pdf_base64" {
		return q.ExtractDeep
	}
	return q.ExtractFast
}

// Depths snapshots the buffered depth of every queue (metrics probe).
func (q *Queues) Depths() map[string]int {
	return map[string]int{
		q.FetchFast.Name():   q.FetchFast.Depth(),
		q.FetchRender.Name(): q.FetchRender.Depth(),
		q.FetchDeep.Name():   q.FetchDeep.Depth(),
		q.ExtractFast.Name(): q.ExtractFast.Depth(),
		q.ExtractDeep.Name(): q.ExtractDeep.Depth(),
		q.Organize.Name():    q.Organize.Depth(),
		q.Score.Name():       q.Score.Depth(),
		q.Alerts.Name():      q.Alerts.Depth(),
		q.Draft.Name():       q.Draft.Depth(),
	}
}
