package fetch

import (
	"context"
	"encoding/base64"
	"net"
	"net/http"
	"net/http/httptest"
	"net/netip"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radarpautas/radar/ent/fetchattempt"
	"github.com/radarpautas/radar/pkg/cache"
	"github.com/radarpautas/radar/pkg/config"
	"github.com/radarpautas/radar/pkg/database"
	"github.com/radarpautas/radar/pkg/queue"
	testdb "github.com/radarpautas/radar/test/database"
)

type fetchFixture struct {
	t      *testing.T
	svc    *Service
	client *database.Client
	queues *queue.Queues
	srcID  int
}

// newFetchFixture wires the service against a local HTTP server: the guard
// resolves every hostname to a public address and the transport dials the
// test listener instead.
func newFetchFixture(t *testing.T, handler http.Handler) *fetchFixture {
	t.Helper()

	client := testdb.NewTestClient(t)
	mr := miniredis.RunT(t)
	c, err := cache.New("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	src, err := client.Source.Create().
		SetDomain("noticias.example.com.br").
		SetName("Fonte").
		SetProfile(map[string]interface{}{}).
		Save(context.Background())
	require.NoError(t, err)

	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	queues := queue.NewQueues(16)
	svc := NewService(client, queues, NewLimiter(c))
	svc.retryDelay = time.Millisecond
	svc.guard.lookup = func(ctx context.Context, host string) ([]netip.Addr, error) {
		return []netip.Addr{netip.MustParseAddr("200.160.2.3")}, nil
	}
	svc.httpClient.Transport = &http.Transport{
		DialContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
			var d net.Dialer
			return d.DialContext(ctx, network, ts.Listener.Addr().String())
		},
	}

	return &fetchFixture{t: t, svc: svc, client: client, queues: queues, srcID: src.ID}
}

func (f *fetchFixture) profile(strategy config.Strategy, pool config.Pool, endpoints map[string]string) *config.SourceProfile {
	return &config.SourceProfile{
		Strategy:  strategy,
		Pool:      pool,
		Endpoints: endpoints,
		Limits: config.Limits{
			RatePerMin:        100,
			DomainConcurrency: 4,
			TimeoutS:          5,
			MaxBytes:          1 << 20,
		},
		SourceID: f.srcID,
		Domain:   "noticias.example.com.br",
		Name:     "Fonte",
		Tier:     2,
	}
}

func (f *fetchFixture) attemptCount(class *string, status int) int {
	f.t.Helper()
	q := f.client.FetchAttempt.Query().Where(fetchattempt.StatusCode(status))
	if class != nil {
		q = q.Where(fetchattempt.ErrorClass(*class))
	}
	n, err := q.Count(context.Background())
	require.NoError(f.t, err)
	return n
}

func TestHandleSuccessAndConditional(t *testing.T) {
	f := newFetchFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("If-None-Match") == `"v1"` {
			w.WriteHeader(http.StatusNotModified)
			return
		}
		w.Header().Set("ETag", `"v1"`)
		_, _ = w.Write([]byte("<rss>conteudo</rss>"))
	}))
	ctx := context.Background()

	p := f.profile(config.StrategyFeed, config.PoolFast, map[string]string{
		"feed": "http://noticias.example.com.br/feed",
	})

	require.NoError(t, f.svc.Handle(ctx, queue.FetchTask{Profile: p}))

	snaps, err := f.client.Snapshot.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, snaps, 1)
	assert.Equal(t, "http://noticias.example.com.br/feed", snaps[0].URL)
	assert.Equal(t, []byte("<rss>conteudo</rss>"), snaps[0].Body)

	assert.Equal(t, 1, f.attemptCount(nil, 200))
	require.Equal(t, 1, f.queues.ExtractFast.Depth())

	task, ok := f.queues.ExtractFast.TryDequeue()
	require.True(t, ok)
	assert.Equal(t, PayloadKindText, task.PayloadKind)
	assert.Equal(t, snaps[0].ID, task.Meta.SnapshotID)
	assert.Equal(t, snaps[0].ContentHash, task.ContentHash)

	t.Run("second fetch sends validators and gets 304", func(t *testing.T) {
		require.NoError(t, f.svc.Handle(ctx, queue.FetchTask{Profile: p}))

		count, err := f.client.Snapshot.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
		assert.Equal(t, 1, f.attemptCount(nil, http.StatusNotModified))
		assert.Zero(t, f.queues.ExtractFast.Depth())
	})
}

func TestHandleErrorStatusOpensBreaker(t *testing.T) {
	f := newFetchFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	ctx := context.Background()

	p := f.profile(config.StrategyFeed, config.PoolFast, map[string]string{
		"feed": "http://noticias.example.com.br/feed",
	})

	for i := 0; i < breakerThreshold; i++ {
		require.NoError(t, f.svc.Handle(ctx, queue.FetchTask{Profile: p}))
	}
	httpClass := ClassHTTPStatus
	assert.Equal(t, breakerThreshold, f.attemptCount(&httpClass, http.StatusServiceUnavailable))

	// Breaker is open: the next attempt is blocked before the request leaves.
	require.NoError(t, f.svc.Handle(ctx, queue.FetchTask{Profile: p}))
	openClass := ClassCircuitOpen
	assert.Equal(t, 1, f.attemptCount(&openClass, 0))

	count, err := f.client.Snapshot.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestHandleGuardBlockLeavesNoTrace(t *testing.T) {
	f := newFetchFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request must not reach the server")
	}))
	ctx := context.Background()

	p := f.profile(config.StrategyFeed, config.PoolFast, map[string]string{
		"feed": "http://localhost/feed",
	})
	require.NoError(t, f.svc.Handle(ctx, queue.FetchTask{Profile: p}))

	count, err := f.client.FetchAttempt.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Zero(t, f.queues.ExtractFast.Depth())
}

func TestHandlePDFPayload(t *testing.T) {
	raw := []byte("%PDF-1.4 conteudo binario")
	f := newFetchFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write(raw)
	}))
	ctx := context.Background()

	p := f.profile(config.StrategyPDF, config.PoolDeepExtract, map[string]string{
		"latest": "http://noticias.example.com.br/diario.pdf",
	})
	require.NoError(t, f.svc.Handle(ctx, queue.FetchTask{Profile: p}))

	require.Equal(t, 1, f.queues.ExtractDeep.Depth())
	task, ok := f.queues.ExtractDeep.TryDequeue()
	require.True(t, ok)
	assert.Equal(t, PayloadKindPDF, task.PayloadKind)

	decoded, err := base64.StdEncoding.DecodeString(string(task.Body))
	require.NoError(t, err)
	assert.Equal(t, raw, decoded)

	// The snapshot stores the base64 form as well.
	snaps, err := f.client.Snapshot.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, snaps, 1)
	assert.Equal(t, base64.StdEncoding.EncodeToString(raw), string(snaps[0].Body))
}

func TestHandleDropsTasksWithoutEndpoint(t *testing.T) {
	f := newFetchFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ctx := context.Background()

	t.Run("missing source id", func(t *testing.T) {
		require.NoError(t, f.svc.Handle(ctx, queue.FetchTask{Profile: &config.SourceProfile{}}))
	})

	t.Run("no endpoint for strategy", func(t *testing.T) {
		p := f.profile(config.StrategyFeed, config.PoolFast, map[string]string{})
		require.NoError(t, f.svc.Handle(ctx, queue.FetchTask{Profile: p}))
	})

	count, err := f.client.FetchAttempt.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestRetryable(t *testing.T) {
	for class, want := range map[string]bool{
		ClassTimeout:     true,
		ClassDNS:         true,
		ClassConnect:     true,
		ClassTLS:         true,
		ClassHTTPStatus:  false,
		ClassRateLimited: false,
		ClassCircuitOpen: false,
	} {
		assert.Equal(t, want, retryable(class), class)
	}
}
