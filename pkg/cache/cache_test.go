package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c, err := New("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c, mr
}

func TestIncrWithTTL(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	assert.Equal(t, int64(1), c.IncrWithTTL(ctx, "k", time.Minute))
	assert.Equal(t, int64(2), c.IncrWithTTL(ctx, "k", time.Minute))
	assert.Equal(t, int64(3), c.IncrWithTTL(ctx, "k", time.Minute))

	// TTL is set once and the bucket disappears when it elapses.
	mr.FastForward(61 * time.Second)
	assert.Equal(t, int64(1), c.IncrWithTTL(ctx, "k", time.Minute))
}

func TestDecrReleasesSlot(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	c.IncrWithTTL(ctx, "slots", time.Minute)
	c.IncrWithTTL(ctx, "slots", time.Minute)
	c.Decr(ctx, "slots")
	assert.Equal(t, int64(2), c.IncrWithTTL(ctx, "slots", time.Minute))
}

func TestSetExExistsDel(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	assert.False(t, c.Exists(ctx, "flag"))
	c.SetEx(ctx, "flag", "1", 30*time.Second)
	assert.True(t, c.Exists(ctx, "flag"))

	mr.FastForward(31 * time.Second)
	assert.False(t, c.Exists(ctx, "flag"))

	c.SetEx(ctx, "flag", "1", 30*time.Second)
	c.Del(ctx, "flag")
	assert.False(t, c.Exists(ctx, "flag"))
}

func TestPushRingBounded(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	for _, entry := range []string{"a", "b", "c", "d", "e"} {
		c.PushRing(ctx, "ring", entry, 3, time.Hour)
	}
	assert.Equal(t, []string{"c", "d", "e"}, c.Ring(ctx, "ring"))
}

func TestRingMissingKey(t *testing.T) {
	c, _ := newTestCache(t)
	assert.Empty(t, c.Ring(context.Background(), "nope"))
}

// When Redis goes away mid-flight the cache keeps serving counters from the
// in-memory fallback instead of failing the fetch preflight.
func TestFallbackWhenRedisDown(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	mr.Close()

	// The breaker needs a few consecutive failures before it opens; every call
	// still answers from the fallback.
	var last int64
	for i := 0; i < 5; i++ {
		last = c.IncrWithTTL(ctx, "k", time.Minute)
	}
	assert.Equal(t, int64(5), last)

	c.SetEx(ctx, "flag", "1", time.Minute)
	assert.True(t, c.Exists(ctx, "flag"))
}
