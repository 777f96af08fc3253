package fetch

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radarpautas/radar/pkg/cache"
	"github.com/radarpautas/radar/pkg/config"
)

func newTestLimiter(t *testing.T) (*Limiter, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c, err := cache.New("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return NewLimiter(c), mr
}

func limiterProfile(sourceID, ratePerMin, concurrency int) *config.SourceProfile {
	return &config.SourceProfile{
		SourceID: sourceID,
		Limits: config.Limits{
			RatePerMin:        ratePerMin,
			DomainConcurrency: concurrency,
			TimeoutS:          30,
			MaxBytes:          1 << 20,
		},
	}
}

// Exactly rate_per_min acquisitions succeed within a minute; the next one is
// classified RateLimited.
func TestLimiterRateBoundary(t *testing.T) {
	l, _ := newTestLimiter(t)
	ctx := context.Background()
	p := limiterProfile(1, 2, 10)

	require.NoError(t, l.Acquire(ctx, p, "exemplo.gov.br"))
	l.Release(ctx, "exemplo.gov.br")
	require.NoError(t, l.Acquire(ctx, p, "exemplo.gov.br"))
	l.Release(ctx, "exemplo.gov.br")

	err := l.Acquire(ctx, p, "exemplo.gov.br")
	require.Error(t, err)
	assert.Equal(t, ClassRateLimited, Classify(err))
}

func TestLimiterDomainConcurrency(t *testing.T) {
	l, _ := newTestLimiter(t)
	ctx := context.Background()
	p := limiterProfile(2, 100, 2)

	require.NoError(t, l.Acquire(ctx, p, "exemplo.gov.br"))
	require.NoError(t, l.Acquire(ctx, p, "exemplo.gov.br"))

	err := l.Acquire(ctx, p, "exemplo.gov.br")
	require.Error(t, err)
	assert.Equal(t, ClassConcurrency, Classify(err))

	// A rejected acquire must not leak the slot it probed.
	l.Release(ctx, "exemplo.gov.br")
	require.NoError(t, l.Acquire(ctx, p, "exemplo.gov.br"))

	// Other domains are unaffected.
	require.NoError(t, l.Acquire(ctx, p, "outra.gov.br"))
}

func TestLimiterCircuitBreaker(t *testing.T) {
	l, _ := newTestLimiter(t)
	ctx := context.Background()
	p := limiterProfile(3, 100, 10)

	for i := 0; i < 4; i++ {
		l.RecordFailure(ctx, p.SourceID)
	}
	require.NoError(t, l.Acquire(ctx, p, "exemplo.gov.br"), "breaker stays closed below the threshold")
	l.Release(ctx, "exemplo.gov.br")

	l.RecordFailure(ctx, p.SourceID)

	err := l.Acquire(ctx, p, "exemplo.gov.br")
	require.Error(t, err)
	assert.Equal(t, ClassCircuitOpen, Classify(err))
}

func TestLimiterBreakerResetsOnSuccess(t *testing.T) {
	l, _ := newTestLimiter(t)
	ctx := context.Background()
	p := limiterProfile(4, 100, 10)

	for i := 0; i < 4; i++ {
		l.RecordFailure(ctx, p.SourceID)
	}
	l.RecordSuccess(ctx, p.SourceID)

	// The counter restarted; four more failures do not reach the threshold.
	for i := 0; i < 4; i++ {
		l.RecordFailure(ctx, p.SourceID)
	}
	assert.NoError(t, l.Acquire(ctx, p, "exemplo.gov.br"))
}

func TestLimiterBreakerHalfOpenAfterTTL(t *testing.T) {
	l, mr := newTestLimiter(t)
	ctx := context.Background()
	p := limiterProfile(5, 100, 10)

	for i := 0; i < 5; i++ {
		l.RecordFailure(ctx, p.SourceID)
	}
	require.Error(t, l.Acquire(ctx, p, "exemplo.gov.br"))

	// After the open TTL the source is allowed again.
	mr.FastForward(121 * time.Second)
	assert.NoError(t, l.Acquire(ctx, p, "exemplo.gov.br"))
}
