package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validFeedBlob() map[string]interface{} {
	return map[string]interface{}{
		"strategy":  "FEED",
		"endpoints": map[string]interface{}{"feed": "https://exemplo.gov.br/rss"},
		"cadence":   map[string]interface{}{"interval_seconds": 300},
	}
}

func TestParseProfileValid(t *testing.T) {
	p, err := ParseProfile("cgu", validFeedBlob())
	require.NoError(t, err)

	assert.Equal(t, StrategyFeed, p.Strategy)
	assert.Equal(t, PoolFast, p.Pool)
	assert.Equal(t, 300, p.Cadence.IntervalSeconds)

	// Defaults fill in.
	assert.Equal(t, 10, p.Limits.RatePerMin)
	assert.Equal(t, 2, p.Limits.DomainConcurrency)
	assert.Equal(t, 30, p.Limits.TimeoutS)
	assert.Equal(t, int64(5<<20), p.Limits.MaxBytes)
	assert.Equal(t, 24, p.Observability.WindowH)
	assert.Equal(t, "pt-BR", p.Language)
	assert.Equal(t, 3, p.Tier)
}

func TestParseProfileIgnoresUnknownFields(t *testing.T) {
	blob := validFeedBlob()
	blob["legacy_field"] = "whatever"
	_, err := ParseProfile("cgu", blob)
	assert.NoError(t, err)
}

func TestParseProfilePoolDefaults(t *testing.T) {
	tests := []struct {
		strategy string
		endpoint string
		pool     Pool
	}{
		{"FEED", "feed", PoolFast},
		{"HTML", "latest", PoolFast},
		{"API", "api", PoolFast},
		{"SPA_API", "api", PoolHeavyRender},
		{"SPA_HEADLESS", "latest", PoolHeavyRender},
		{"PDF", "latest", PoolDeepExtract},
	}
	for _, tt := range tests {
		t.Run(tt.strategy, func(t *testing.T) {
			blob := map[string]interface{}{
				"strategy":  tt.strategy,
				"endpoints": map[string]interface{}{tt.endpoint: "https://exemplo.gov.br/x"},
				"cadence":   map[string]interface{}{"interval_seconds": 60},
			}
			p, err := ParseProfile("s", blob)
			require.NoError(t, err)
			assert.Equal(t, tt.pool, p.Pool)
		})
	}
}

func TestParseProfileErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(map[string]interface{})
		field  string
	}{
		{
			name:   "unknown strategy",
			mutate: func(b map[string]interface{}) { b["strategy"] = "SCRAPE" },
			field:  "strategy",
		},
		{
			name: "spa headless on fast pool",
			mutate: func(b map[string]interface{}) {
				b["strategy"] = "SPA_HEADLESS"
				b["pool"] = "FAST"
				b["endpoints"] = map[string]interface{}{"latest": "https://exemplo.gov.br/x"}
			},
			field: "pool",
		},
		{
			name: "pdf on fast pool",
			mutate: func(b map[string]interface{}) {
				b["strategy"] = "PDF"
				b["pool"] = "FAST"
				b["endpoints"] = map[string]interface{}{"latest": "https://exemplo.gov.br/x"}
			},
			field: "pool",
		},
		{
			name:   "no endpoints",
			mutate: func(b map[string]interface{}) { b["endpoints"] = map[string]interface{}{} },
			field:  "endpoints",
		},
		{
			name: "non http endpoint",
			mutate: func(b map[string]interface{}) {
				b["endpoints"] = map[string]interface{}{"feed": "ftp://exemplo.gov.br/rss"}
			},
			field: "endpoints.feed",
		},
		{
			name: "endpoint key does not match strategy",
			mutate: func(b map[string]interface{}) {
				b["endpoints"] = map[string]interface{}{"dashboard": "https://exemplo.gov.br/x"}
			},
			field: "endpoints",
		},
		{
			name:   "no cadence",
			mutate: func(b map[string]interface{}) { b["cadence"] = map[string]interface{}{} },
			field:  "cadence",
		},
		{
			name: "both cadences",
			mutate: func(b map[string]interface{}) {
				b["cadence"] = map[string]interface{}{"interval_seconds": 60, "cron": "*/5 * * * *"}
			},
			field: "cadence",
		},
		{
			name: "malformed cron",
			mutate: func(b map[string]interface{}) {
				b["cadence"] = map[string]interface{}{"cron": "not a cron"}
			},
			field: "cadence.cron",
		},
		{
			name: "items_path not dotted",
			mutate: func(b map[string]interface{}) {
				b["metadata"] = map[string]interface{}{
					"api_contract": map[string]interface{}{"items_path": "data..items"},
				}
			},
			field: "metadata.api_contract.items_path",
		},
		{
			name: "empty text field entry",
			mutate: func(b map[string]interface{}) {
				b["metadata"] = map[string]interface{}{
					"api_contract": map[string]interface{}{"text_fields": []interface{}{"body", " "}},
				}
			},
			field: "metadata.api_contract.text_fields",
		},
		{
			name: "headless capture without url_contains",
			mutate: func(b map[string]interface{}) {
				b["metadata"] = map[string]interface{}{
					"headless_capture": map[string]interface{}{"max_captures": 3},
				}
			},
			field: "metadata.headless_capture.url_contains",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blob := validFeedBlob()
			tt.mutate(blob)
			_, err := ParseProfile("fonte", blob)
			require.Error(t, err)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, "fonte", verr.ID)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestSelectEndpoint(t *testing.T) {
	tests := []struct {
		name      string
		strategy  Strategy
		endpoints map[string]string
		expected  string
		ok        bool
	}{
		{
			name:      "feed prefers feed",
			strategy:  StrategyFeed,
			endpoints: map[string]string{"feed": "https://a/rss", "api": "https://a/api"},
			expected:  "https://a/rss",
			ok:        true,
		},
		{
			name:      "api prefers api",
			strategy:  StrategyAPI,
			endpoints: map[string]string{"feed": "https://a/rss", "api": "https://a/api"},
			expected:  "https://a/api",
			ok:        true,
		},
		{
			name:      "pdf prefers latest",
			strategy:  StrategyPDF,
			endpoints: map[string]string{"latest": "https://a/doc.pdf", "feed": "https://a/rss"},
			expected:  "https://a/doc.pdf",
			ok:        true,
		},
		{
			name:      "falls through preference order",
			strategy:  StrategyFeed,
			endpoints: map[string]string{"api": "https://a/api"},
			expected:  "https://a/api",
			ok:        true,
		},
		{
			name:      "no usable endpoint",
			strategy:  StrategyFeed,
			endpoints: map[string]string{"dashboard": "https://a/dash"},
			ok:        false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := SourceProfile{Strategy: tt.strategy, Endpoints: tt.endpoints}
			got, ok := p.SelectEndpoint()
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestProfileBlobRoundTrip(t *testing.T) {
	p, err := ParseProfile("cgu", validFeedBlob())
	require.NoError(t, err)

	again, err := ParseProfile("cgu", p.Blob())
	require.NoError(t, err)
	assert.Equal(t, p, again)
}
