package fetch

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/radarpautas/radar/pkg/cache"
	"github.com/radarpautas/radar/pkg/config"
)

const (
	breakerFailTTL   = 300 * time.Second
	breakerOpenTTL   = 120 * time.Second
	breakerThreshold = 5
	rateBucketTTL    = 90 * time.Second
)

// Limiter enforces the preflight guardrails over the shared cache: circuit
// breaker, per-source per-minute rate limit and per-domain concurrency cap.
type Limiter struct {
	cache *cache.Cache
}

// NewLimiter creates a limiter over the shared cache.
func NewLimiter(c *cache.Cache) *Limiter {
	return &Limiter{cache: c}
}

func rateKey(sourceID int, now time.Time) string {
	return fmt.Sprintf("radar:rl:source:%d:%s", sourceID, now.UTC().Format("200601021504"))
}

func concurrencyKey(host string) string {
	return "radar:concurrency:" + host
}

func failsKey(sourceID int) string {
	return fmt.Sprintf("radar:cb:source:%d:fails", sourceID)
}

func openKey(sourceID int) string {
	return fmt.Sprintf("radar:cb:source:%d:open", sourceID)
}

// Acquire runs the preflight checks in order (circuit, rate, concurrency).
// On success the per-domain slot is held and the caller must Release(host)
// when the request finishes, whatever the outcome.
func (l *Limiter) Acquire(ctx context.Context, p *config.SourceProfile, host string) error {
	if l.cache.Exists(ctx, openKey(p.SourceID)) {
		return classified(ClassCircuitOpen, nil)
	}

	if n := l.cache.IncrWithTTL(ctx, rateKey(p.SourceID, time.Now()), rateBucketTTL); n > int64(p.Limits.RatePerMin) {
		return classified(ClassRateLimited, fmt.Errorf("%d > %d/min", n, p.Limits.RatePerMin))
	}

	ttl := time.Duration(p.Limits.TimeoutS+5) * time.Second
	if n := l.cache.IncrWithTTL(ctx, concurrencyKey(host), ttl); n > int64(p.Limits.DomainConcurrency) {
		l.cache.Decr(ctx, concurrencyKey(host))
		return classified(ClassConcurrency, fmt.Errorf("%d > %d in flight", n, p.Limits.DomainConcurrency))
	}
	return nil
}

// Release returns the per-domain concurrency slot.
func (l *Limiter) Release(ctx context.Context, host string) {
	l.cache.Decr(ctx, concurrencyKey(host))
}

// RecordSuccess resets the source's breaker failure counter.
func (l *Limiter) RecordSuccess(ctx context.Context, sourceID int) {
	l.cache.Del(ctx, failsKey(sourceID))
}

// RecordFailure counts one failure and opens the breaker at the threshold.
func (l *Limiter) RecordFailure(ctx context.Context, sourceID int) {
	fails := l.cache.IncrWithTTL(ctx, failsKey(sourceID), breakerFailTTL)
	if fails >= breakerThreshold {
		l.cache.SetEx(ctx, openKey(sourceID), strconv.FormatInt(fails, 10), breakerOpenTTL)
	}
}
