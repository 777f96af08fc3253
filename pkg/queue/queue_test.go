package queue

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radarpautas/radar/pkg/config"
)

func TestTryEnqueueFullQueue(t *testing.T) {
	q := NewQueue[int]("test", 2)

	require.NoError(t, q.TryEnqueue(1))
	require.NoError(t, q.TryEnqueue(2))
	assert.ErrorIs(t, q.TryEnqueue(3), ErrQueueFull)
	assert.Equal(t, 2, q.Depth())
}

func TestEnqueueHonorsContext(t *testing.T) {
	q := NewQueue[int]("test", 1)
	require.NoError(t, q.TryEnqueue(1))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := q.Enqueue(ctx, 2)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestFetchForRouting(t *testing.T) {
	qs := NewQueues(4)

	tests := []struct {
		pool config.Pool
		want *Queue[FetchTask]
	}{
		{config.PoolFast, qs.FetchFast},
		{config.PoolHeavyRender, qs.FetchRender},
		{config.PoolDeepExtract, qs.FetchDeep},
		{config.Pool(""), qs.FetchFast},
	}
	for _, tt := range tests {
		assert.Same(t, tt.want, qs.FetchFor(tt.pool), "pool %q", tt.pool)
	}
}

func TestExtractForRouting(t *testing.T) {
	qs := NewQueues(4)

	assert.Same(t, qs.ExtractDeep, qs.ExtractFor(config.PoolDeepExtract, "text"))
	assert.Same(t, qs.ExtractDeep, qs.ExtractFor(config.PoolFast, "pdf_base64"))
	assert.Same(t, qs.ExtractFast, qs.ExtractFor(config.PoolFast, "text"))
	assert.Same(t, qs.ExtractFast, qs.ExtractFor(config.PoolHeavyRender, "text"))
}

func TestDepthsCoversEveryQueue(t *testing.T) {
	qs := NewQueues(4)
	require.NoError(t, qs.Organize.TryEnqueue(OrganizeTask{URL: "https://a/1"}))

	depths := qs.Depths()
	assert.Len(t, depths, 9)
	assert.Equal(t, 1, depths["organize"])
	assert.Equal(t, 0, depths["fetch_fast"])
}

func TestPoolProcessesTasks(t *testing.T) {
	q := NewQueue[int]("test", 16)
	var sum atomic.Int64
	var wg sync.WaitGroup
	wg.Add(10)

	pool := NewPool("test", q, 3, time.Second, func(ctx context.Context, task int) error {
		defer wg.Done()
		sum.Add(int64(task))
		return nil
	})
	pool.Start(context.Background())
	defer pool.Stop()

	for i := 1; i <= 10; i++ {
		require.NoError(t, q.TryEnqueue(i))
	}
	wg.Wait()
	assert.Equal(t, int64(55), sum.Load())
}

func TestPoolSurvivesPanicAndError(t *testing.T) {
	q := NewQueue[string]("test", 16)
	var processed atomic.Int64
	var wg sync.WaitGroup
	wg.Add(3)

	pool := NewPool("test", q, 1, time.Second, func(ctx context.Context, task string) error {
		defer wg.Done()
		switch task {
		case "panic":
			processed.Add(1)
			panic("boom")
		case "error":
			processed.Add(1)
			return assert.AnError
		default:
			processed.Add(1)
			return nil
		}
	})
	pool.Start(context.Background())
	defer pool.Stop()

	require.NoError(t, q.TryEnqueue("panic"))
	require.NoError(t, q.TryEnqueue("error"))
	require.NoError(t, q.TryEnqueue("ok"))
	wg.Wait()
	assert.Equal(t, int64(3), processed.Load())
}

func TestPoolStopWaitsForWorkers(t *testing.T) {
	q := NewQueue[int]("test", 1)
	done := make(chan struct{})

	pool := NewPool("test", q, 1, time.Second, func(ctx context.Context, task int) error {
		close(done)
		return nil
	})
	pool.Start(context.Background())
	require.NoError(t, q.TryEnqueue(1))

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("task never processed")
	}
	pool.Stop()

	// Duplicate Start after Stop is a no-op.
	pool.Start(context.Background())
	pool.Stop()
}
