// Package cache holds the ephemeral shared counters: rate-limit buckets,
// per-domain in-flight counters, circuit-breaker state and yield history
// rings. Redis is authoritative; failures degrade to a per-process in-memory
// fallback guarded by a circuit breaker, best-effort and never blocking.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sony/gobreaker"
)

// Cache is the shared counter store.
type Cache struct {
	rdb      *redis.Client
	breaker  *gobreaker.CircuitBreaker
	fallback *memStore
}

// New connects to Redis at redisURL. A connection failure is not fatal: the
// cache starts degraded on the in-memory fallback and recovers when Redis
// returns.
func New(redisURL string) (*Cache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	c := &Cache{
		rdb:      redis.NewClient(opts),
		fallback: newMemStore(),
	}
	c.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "redis",
		Timeout: 15 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(_ string, from, to gobreaker.State) {
			slog.Warn("Cache breaker state change", "from", from.String(), "to", to.String())
		},
	})

	pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := c.rdb.Ping(pingCtx).Err(); err != nil {
		slog.Warn("Redis unreachable, starting on in-memory fallback", "error", err)
	}
	return c, nil
}

// Close releases the Redis connection.
func (c *Cache) Close() error {
	return c.rdb.Close()
}

// exec runs a Redis operation through the breaker; on failure the fallback
// closure runs against the in-memory store.
func (c *Cache) exec(op func() (interface{}, error), fallback func() interface{}) interface{} {
	out, err := c.breaker.Execute(op)
	if err != nil {
		return fallback()
	}
	return out
}

// IncrWithTTL atomically increments key and sets its TTL on first touch.
// Used for minute-keyed rate-limit buckets.
func (c *Cache) IncrWithTTL(ctx context.Context, key string, ttl time.Duration) int64 {
	out := c.exec(func() (interface{}, error) {
		pipe := c.rdb.TxPipeline()
		incr := pipe.Incr(ctx, key)
		pipe.ExpireNX(ctx, key, ttl)
		if _, err := pipe.Exec(ctx); err != nil {
			return nil, err
		}
		return incr.Val(), nil
	}, func() interface{} {
		return c.fallback.incr(key, ttl)
	})
	return out.(int64)
}

// Decr decrements key, flooring at the fallback when Redis is down. Used to
// release per-domain concurrency slots.
func (c *Cache) Decr(ctx context.Context, key string) {
	c.exec(func() (interface{}, error) {
		return nil, c.rdb.Decr(ctx, key).Err()
	}, func() interface{} {
		c.fallback.decr(key)
		return nil
	})
}

// SetEx stores a string value with a TTL (circuit-breaker open flags).
func (c *Cache) SetEx(ctx context.Context, key, value string, ttl time.Duration) {
	c.exec(func() (interface{}, error) {
		return nil, c.rdb.SetEx(ctx, key, value, ttl).Err()
	}, func() interface{} {
		c.fallback.set(key, value, ttl)
		return nil
	})
}

// Exists reports whether key is present.
func (c *Cache) Exists(ctx context.Context, key string) bool {
	out := c.exec(func() (interface{}, error) {
		n, err := c.rdb.Exists(ctx, key).Result()
		return n > 0, err
	}, func() interface{} {
		return c.fallback.exists(key)
	})
	return out.(bool)
}

// Del removes keys.
func (c *Cache) Del(ctx context.Context, keys ...string) {
	c.exec(func() (interface{}, error) {
		return nil, c.rdb.Del(ctx, keys...).Err()
	}, func() interface{} {
		for _, k := range keys {
			c.fallback.del(k)
		}
		return nil
	})
}

// PushRing appends an entry to a bounded ring list, trims it to maxLen and
// refreshes its TTL. Used for per-source yield history.
func (c *Cache) PushRing(ctx context.Context, key, entry string, maxLen int64, ttl time.Duration) {
	c.exec(func() (interface{}, error) {
		pipe := c.rdb.TxPipeline()
		pipe.RPush(ctx, key, entry)
		pipe.LTrim(ctx, key, -maxLen, -1)
		pipe.Expire(ctx, key, ttl)
		_, err := pipe.Exec(ctx)
		return nil, err
	}, func() interface{} {
		c.fallback.pushRing(key, entry, int(maxLen), ttl)
		return nil
	})
}

// Ring returns the full contents of a ring list, oldest first.
func (c *Cache) Ring(ctx context.Context, key string) []string {
	out := c.exec(func() (interface{}, error) {
		return c.rdb.LRange(ctx, key, 0, -1).Result()
	}, func() interface{} {
		return c.fallback.ring(key)
	})
	entries, _ := out.([]string)
	return entries
}
