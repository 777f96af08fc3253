package fetch

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/netip"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radarpautas/radar/pkg/config"
)

// openGuard resolves everything to a public address so httptest's loopback
// listener is reachable in tests.
func openGuard() *Guard {
	return &Guard{lookup: func(context.Context, string) ([]netip.Addr, error) {
		return []netip.Addr{netip.MustParseAddr("93.184.216.34")}, nil
	}}
}

func newTestService() *Service {
	return &Service{httpClient: &http.Client{}}
}

func httpProfile(strategy config.Strategy, maxBytes int64) *config.SourceProfile {
	return &config.SourceProfile{
		SourceID: 1,
		Strategy: strategy,
		Limits:   config.Limits{TimeoutS: 5, MaxBytes: maxBytes},
	}
}

func TestDoHTTPSetsConditionalHeaders(t *testing.T) {
	var gotETag, gotModified, gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotETag = r.Header.Get("If-None-Match")
		gotModified = r.Header.Get("If-Modified-Since")
		gotUA = r.Header.Get("User-Agent")
		w.WriteHeader(http.StatusNotModified)
	}))
	defer srv.Close()

	s := newTestService()
	cond := conditional{ETag: `"abc"`, LastModified: "Mon, 02 Jan 2006 15:04:05 GMT"}
	resp, err := s.doHTTP(context.Background(), httpProfile(config.StrategyFeed, 1<<20), srv.URL, cond)
	require.NoError(t, err)

	assert.Equal(t, http.StatusNotModified, resp.StatusCode)
	assert.Equal(t, `"abc"`, gotETag)
	assert.Equal(t, "Mon, 02 Jan 2006 15:04:05 GMT", gotModified)
	assert.Equal(t, config.InstitutionalUA, gotUA)
}

func TestDoHTTPMaxBytesBoundary(t *testing.T) {
	body := strings.Repeat("a", 100)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, body)
	}))
	defer srv.Close()

	s := newTestService()

	// A body of exactly max_bytes is accepted.
	resp, err := s.doHTTP(context.Background(), httpProfile(config.StrategyHTML, 100), srv.URL, conditional{})
	require.NoError(t, err)
	assert.Len(t, resp.Body, 100)

	// One byte over the limit is rejected with MaxBytesExceeded.
	_, err = s.doHTTP(context.Background(), httpProfile(config.StrategyHTML, 99), srv.URL, conditional{})
	require.Error(t, err)
	assert.Equal(t, ClassMaxBytes, Classify(err))
}

func TestDoHTTPSPAAPIRequestContract(t *testing.T) {
	var gotMethod, gotBody, gotHeader string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		data, _ := io.ReadAll(r.Body)
		gotBody = string(data)
		gotHeader = r.Header.Get("X-Requested-With")
		_, _ = io.WriteString(w, `{"items":[]}`)
	}))
	defer srv.Close()

	p := httpProfile(config.StrategySPAAPI, 1<<20)
	p.Metadata.SPAAPIRequest = &config.SPAAPIRequest{
		Method:  "post",
		Body:    `{"page":1}`,
		Headers: map[string]string{"X-Requested-With": "XMLHttpRequest"},
	}

	s := newTestService()
	resp, err := s.doHTTP(context.Background(), p, srv.URL, conditional{})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, `{"page":1}`, gotBody)
	assert.Equal(t, "XMLHttpRequest", gotHeader)
}

func TestDoHTTPProfileHeaders(t *testing.T) {
	var gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
		_, _ = io.WriteString(w, "ok")
	}))
	defer srv.Close()

	p := httpProfile(config.StrategyAPI, 1<<20)
	p.Headers = map[string]string{"Accept": "application/json"}

	s := newTestService()
	_, err := s.doHTTP(context.Background(), p, srv.URL, conditional{})
	require.NoError(t, err)
	assert.Equal(t, "application/json", gotAccept)
}

func TestRedirectsGoThroughGuard(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "http://169.254.169.254/latest/meta-data", http.StatusFound)
	}))
	defer srv.Close()

	client := newHTTPClient(openGuard())
	resp, err := client.Get(srv.URL)
	if err == nil {
		_ = resp.Body.Close()
	}
	require.Error(t, err)
	assert.Contains(t, err.Error(), "blocked target")
}

func TestReadBounded(t *testing.T) {
	data, err := readBounded(strings.NewReader("hello"), 5)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), data)

	_, err = readBounded(strings.NewReader("hello!"), 5)
	require.Error(t, err)
	assert.Equal(t, ClassMaxBytes, Classify(err))
}

func TestStatusClass(t *testing.T) {
	assert.Equal(t, "2xx", statusClass(200))
	assert.Equal(t, "3xx", statusClass(304))
	assert.Equal(t, "4xx", statusClass(404))
	assert.Equal(t, "5xx", statusClass(503))
	assert.Equal(t, "error", statusClass(0))
}

func TestHostOf(t *testing.T) {
	assert.Equal(t, "exemplo.gov.br", hostOf("https://exemplo.gov.br:8443/a/b"))
	assert.Equal(t, "exemplo.gov.br", hostOf("http://exemplo.gov.br/x"))
}
