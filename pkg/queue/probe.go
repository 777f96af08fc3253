package queue

import (
	"context"
	"sync"
	"time"

	"github.com/radarpautas/radar/pkg/metrics"
)

const probeTick = 15 * time.Second

// DepthProbe periodically publishes every queue depth as a gauge, so depths
// are visible even when nothing is being enqueued.
type DepthProbe struct {
	queues *Queues

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	started  bool
}

// NewDepthProbe creates a probe over the full queue set.
func NewDepthProbe(queues *Queues) *DepthProbe {
	return &DepthProbe{
		queues: queues,
		stopCh: make(chan struct{}),
	}
}

// Start launches the probe loop. Duplicate calls are no-ops.
func (p *DepthProbe) Start(ctx context.Context) {
	if p.started {
		return
	}
	p.started = true
	p.wg.Add(1)
	go p.run(ctx)
}

// Stop halts the probe loop.
func (p *DepthProbe) Stop() {
	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()
}

func (p *DepthProbe) run(ctx context.Context) {
	defer p.wg.Done()

	ticker := time.NewTicker(probeTick)
	defer ticker.Stop()

	for {
		select {
		case <-p.stopCh:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			for name, depth := range p.queues.Depths() {
				metrics.QueueDepth.WithLabelValues(name).Set(float64(depth))
			}
		}
	}
}
