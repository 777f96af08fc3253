package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// Handler processes one task. Returned errors are logged and counted; they
// never crash the pool.
type Handler[T any] func(ctx context.Context, task T) error

// Pool runs a fixed set of workers consuming one typed queue.
type Pool[T any] struct {
	name        string
	queue       *Queue[T]
	handler     Handler[T]
	workerCount int
	taskTimeout time.Duration

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	started  bool
}

// NewPool creates a worker pool over queue.
func NewPool[T any](name string, q *Queue[T], workerCount int, taskTimeout time.Duration, handler Handler[T]) *Pool[T] {
	return &Pool[T]{
		name:        name,
		queue:       q,
		handler:     handler,
		workerCount: workerCount,
		taskTimeout: taskTimeout,
		stopCh:      make(chan struct{}),
	}
}

// Start spawns the worker goroutines. It is safe to call multiple times;
// subsequent calls are no-ops.
func (p *Pool[T]) Start(ctx context.Context) {
	if p.started {
		slog.Warn("Worker pool already started, ignoring duplicate Start call", "pool", p.name)
		return
	}
	p.started = true

	slog.Info("Starting worker pool", "pool", p.name, "worker_count", p.workerCount)
	for i := 0; i < p.workerCount; i++ {
		workerID := fmt.Sprintf("%s-worker-%d", p.name, i)
		p.wg.Add(1)
		go p.run(ctx, workerID)
	}
}

// Stop signals all workers to stop and waits for in-flight tasks to finish.
func (p *Pool[T]) Stop() {
	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()
	slog.Info("Worker pool stopped", "pool", p.name)
}

func (p *Pool[T]) run(ctx context.Context, workerID string) {
	defer p.wg.Done()

	log := slog.With("worker_id", workerID, "pool", p.name)
	log.Info("Worker started")

	for {
		select {
		case <-p.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		case task := <-p.queue.ch:
			p.process(ctx, log, task)
		}
	}
}

func (p *Pool[T]) process(ctx context.Context, log *slog.Logger, task T) {
	taskCtx, cancel := context.WithTimeout(ctx, p.taskTimeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			log.Error("Task panicked", "panic", r)
		}
	}()

	if err := p.handler(taskCtx, task); err != nil {
		log.Error("Task failed", "error", err)
	}
}
