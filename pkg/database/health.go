package database

import (
	"context"
	"time"
)

// PoolHealth is the snapshot of the shared PostgreSQL pool that the /health
// endpoint exposes. The API and the pipeline workers draw from the same pool,
// so a saturated pool surfaces here before fetch latencies do.
type PoolHealth struct {
	Status      string `json:"status"`
	PingMs      int64  `json:"ping_ms"`
	PoolInUse   int    `json:"pool_in_use"`
	PoolIdle    int    `json:"pool_idle"`
	PoolMax     int    `json:"pool_max"`
	PoolWaiters int64  `json:"pool_waiters"`
	PoolWaitMs  int64  `json:"pool_wait_ms"`
}

// Pool health tiers.
const (
	PoolUp       = "up"
	PoolDegraded = "degraded"
	PoolDown     = "down"
)

// Health pings the pool and classifies it: "down" when the ping fails,
// "degraded" when every connection is in use (workers queue behind the API),
// "up" otherwise.
func (c *Client) Health(ctx context.Context) (*PoolHealth, error) {
	start := time.Now()
	if err := c.db.PingContext(ctx); err != nil {
		return &PoolHealth{
			Status: PoolDown,
			PingMs: time.Since(start).Milliseconds(),
		}, err
	}

	stats := c.db.Stats()
	h := &PoolHealth{
		Status:      PoolUp,
		PingMs:      time.Since(start).Milliseconds(),
		PoolInUse:   stats.InUse,
		PoolIdle:    stats.Idle,
		PoolMax:     stats.MaxOpenConnections,
		PoolWaiters: stats.WaitCount,
		PoolWaitMs:  stats.WaitDuration.Milliseconds(),
	}
	if stats.MaxOpenConnections > 0 && stats.InUse >= stats.MaxOpenConnections {
		h.Status = PoolDegraded
	}
	return h, nil
}
