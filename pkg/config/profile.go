package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/robfig/cron/v3"
)

// Strategy selects the fetch/extract pipeline variant for a source.
type Strategy string

// Strategies.
const (
	StrategyFeed        Strategy = "FEED"
	StrategyHTML        Strategy = "HTML"
	StrategyAPI         Strategy = "API"
	StrategySPAAPI      Strategy = "SPA_API"
	StrategySPAHeadless Strategy = "SPA_HEADLESS"
	StrategyPDF         Strategy = "PDF"
)

// Pool is a worker class with shared capacity.
type Pool string

// Pools.
const (
	PoolFast        Pool = "FAST"
	PoolHeavyRender Pool = "HEAVY_RENDER"
	PoolDeepExtract Pool = "DEEP_EXTRACT"
)

// Cadence specifies exactly one of a fixed interval or a 5-field cron
// expression.
type Cadence struct {
	IntervalSeconds int    `json:"interval_seconds,omitempty"`
	Cron            string `json:"cron,omitempty"`
}

// Limits bounds one source's fetch behavior.
type Limits struct {
	RatePerMin        int   `json:"rate_per_min,omitempty"`
	DomainConcurrency int   `json:"domain_concurrency,omitempty"`
	TimeoutS          int   `json:"timeout_s,omitempty"`
	MaxBytes          int64 `json:"max_bytes,omitempty"`
}

// Observability configures the per-source yield baselines.
type Observability struct {
	WindowH         int    `json:"window_h,omitempty"`
	BaselineRolling bool   `json:"baseline_rolling,omitempty"`
	CalendarProfile string `json:"calendar_profile,omitempty"`
}

// APIContract describes how to walk a JSON API response into items.
type APIContract struct {
	ItemsPath          string   `json:"items_path,omitempty"`
	TextFields         []string `json:"text_fields,omitempty"`
	TitleFields        []string `json:"title_fields,omitempty"`
	URLFields          []string `json:"url_fields,omitempty"`
	CanonicalURLFields []string `json:"canonical_url_fields,omitempty"`
	AuthorFields       []string `json:"author_fields,omitempty"`
	LangFields         []string `json:"lang_fields,omitempty"`
	PublishedFields    []string `json:"published_fields,omitempty"`
	ModifiedFields     []string `json:"modified_fields,omitempty"`
}

// SPAAPIRequest customizes the HTTP request of the SPA_API strategy.
type SPAAPIRequest struct {
	Method  string            `json:"method,omitempty"`
	Body    string            `json:"body,omitempty"`
	Headers map[string]string `json:"headers,omitempty"`
}

// HeadlessCapture configures XHR JSON capture during headless navigation.
type HeadlessCapture struct {
	URLContains string `json:"url_contains"`
	MaxCaptures int    `json:"max_captures,omitempty"`
	MaxBytes    int64  `json:"max_bytes,omitempty"`
}

// Metadata carries the strategy-specific contracts.
type Metadata struct {
	APIContract     *APIContract     `json:"api_contract,omitempty"`
	SPAAPIRequest   *SPAAPIRequest   `json:"spa_api_request,omitempty"`
	HeadlessCapture *HeadlessCapture `json:"headless_capture,omitempty"`
}

// SourceProfile is the validated crawler configuration of one source,
// embedded as a JSON blob on the catalog row. Unknown fields in the blob are
// ignored.
type SourceProfile struct {
	Strategy      Strategy          `json:"strategy"`
	Pool          Pool              `json:"pool,omitempty"`
	Endpoints     map[string]string `json:"endpoints"`
	Headers       map[string]string `json:"headers,omitempty"`
	Cadence       Cadence           `json:"cadence"`
	Limits        Limits            `json:"limits,omitempty"`
	Observability Observability     `json:"observability,omitempty"`
	Metadata      Metadata          `json:"metadata,omitempty"`

	// Denormalized catalog attributes, carried on every task so downstream
	// workers never re-read the source row.
	SourceID   int    `json:"source_id,omitempty"`
	Domain     string `json:"domain,omitempty"`
	Name       string `json:"name,omitempty"`
	Tier       int    `json:"tier,omitempty"`
	IsOfficial bool   `json:"is_official,omitempty"`
	Language   string `json:"language,omitempty"`
	Lane       string `json:"lane,omitempty"`
	Scope      string `json:"scope,omitempty"`
}

var dottedPathRe = regexp.MustCompile(`^[A-Za-z0-9_-]+(\.[A-Za-z0-9_-]+)*$`)

// ParseProfile decodes and validates a profile blob from a catalog row.
func ParseProfile(sourceName string, blob map[string]interface{}) (*SourceProfile, error) {
	raw, err := json.Marshal(blob)
	if err != nil {
		return nil, NewValidationError("profile", sourceName, "", fmt.Errorf("%w: %v", ErrInvalidProfile, err))
	}
	var p SourceProfile
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, NewValidationError("profile", sourceName, "", fmt.Errorf("%w: %v", ErrInvalidProfile, err))
	}
	p.applyDefaults()
	if err := p.Validate(sourceName); err != nil {
		return nil, err
	}
	return &p, nil
}

func (p *SourceProfile) applyDefaults() {
	if p.Pool == "" {
		switch p.Strategy {
		case StrategySPAAPI, StrategySPAHeadless:
			p.Pool = PoolHeavyRender
		case StrategyPDF:
			p.Pool = PoolDeepExtract
		default:
			p.Pool = PoolFast
		}
	}
	if p.Limits.RatePerMin <= 0 {
		p.Limits.RatePerMin = 10
	}
	if p.Limits.DomainConcurrency <= 0 {
		p.Limits.DomainConcurrency = 2
	}
	if p.Limits.TimeoutS <= 0 {
		p.Limits.TimeoutS = 30
	}
	if p.Limits.MaxBytes <= 0 {
		p.Limits.MaxBytes = 5 << 20
	}
	if p.Observability.WindowH <= 0 {
		p.Observability.WindowH = 24
	}
	if p.Language == "" {
		p.Language = "pt-BR"
	}
	if p.Tier < 1 || p.Tier > 3 {
		p.Tier = 3
	}
}

// Validate enforces the profile invariants: valid endpoints, exactly one
// cadence, fixed strategy/pool pairings and well-formed metadata contracts.
func (p *SourceProfile) Validate(sourceName string) error {
	switch p.Strategy {
	case StrategyFeed, StrategyHTML, StrategyAPI, StrategySPAAPI, StrategySPAHeadless, StrategyPDF:
	default:
		return NewValidationError("profile", sourceName, "strategy",
			fmt.Errorf("%w: %q", ErrInvalidValue, p.Strategy))
	}

	switch p.Strategy {
	case StrategySPAAPI, StrategySPAHeadless:
		if p.Pool != PoolHeavyRender {
			return NewValidationError("profile", sourceName, "pool",
				fmt.Errorf("%w: strategy %s requires pool %s", ErrInvalidValue, p.Strategy, PoolHeavyRender))
		}
	case StrategyPDF:
		if p.Pool != PoolDeepExtract {
			return NewValidationError("profile", sourceName, "pool",
				fmt.Errorf("%w: strategy %s requires pool %s", ErrInvalidValue, p.Strategy, PoolDeepExtract))
		}
	case StrategyFeed:
		if p.Pool != PoolFast {
			return NewValidationError("profile", sourceName, "pool",
				fmt.Errorf("%w: strategy %s requires pool %s", ErrInvalidValue, p.Strategy, PoolFast))
		}
	default:
		if p.Pool != PoolFast && p.Pool != PoolHeavyRender && p.Pool != PoolDeepExtract {
			return NewValidationError("profile", sourceName, "pool",
				fmt.Errorf("%w: %q", ErrInvalidValue, p.Pool))
		}
	}

	if len(p.Endpoints) == 0 {
		return NewValidationError("profile", sourceName, "endpoints", ErrMissingRequiredField)
	}
	for key, endpoint := range p.Endpoints {
		u, err := url.Parse(endpoint)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return NewValidationError("profile", sourceName, "endpoints."+key,
				fmt.Errorf("%w: %q is not a valid http(s) URL", ErrInvalidValue, endpoint))
		}
	}
	if !p.hasMatchingEndpoint() {
		return NewValidationError("profile", sourceName, "endpoints",
			fmt.Errorf("%w: no endpoint key among %v for strategy %s",
				ErrInvalidValue, EndpointPreference(p.Strategy), p.Strategy))
	}

	hasInterval := p.Cadence.IntervalSeconds > 0
	hasCron := strings.TrimSpace(p.Cadence.Cron) != ""
	if hasInterval == hasCron {
		return NewValidationError("profile", sourceName, "cadence",
			fmt.Errorf("%w: exactly one of interval_seconds or cron is required", ErrInvalidValue))
	}
	if hasCron {
		if _, err := cron.ParseStandard(p.Cadence.Cron); err != nil {
			return NewValidationError("profile", sourceName, "cadence.cron",
				fmt.Errorf("%w: %v", ErrInvalidValue, err))
		}
	}

	if c := p.Metadata.APIContract; c != nil {
		if c.ItemsPath != "" && !dottedPathRe.MatchString(c.ItemsPath) {
			return NewValidationError("profile", sourceName, "metadata.api_contract.items_path",
				fmt.Errorf("%w: %q is not a dotted path", ErrInvalidValue, c.ItemsPath))
		}
		for field, list := range map[string][]string{
			"text_fields":      c.TextFields,
			"url_fields":       c.URLFields,
			"title_fields":     c.TitleFields,
			"published_fields": c.PublishedFields,
			"modified_fields":  c.ModifiedFields,
		} {
			for _, entry := range list {
				if strings.TrimSpace(entry) == "" {
					return NewValidationError("profile", sourceName, "metadata.api_contract."+field,
						fmt.Errorf("%w: empty entry", ErrInvalidValue))
				}
			}
		}
	}
	if c := p.Metadata.HeadlessCapture; c != nil && strings.TrimSpace(c.URLContains) == "" {
		return NewValidationError("profile", sourceName, "metadata.headless_capture.url_contains",
			ErrMissingRequiredField)
	}

	return nil
}

func (p *SourceProfile) hasMatchingEndpoint() bool {
	for _, key := range EndpointPreference(p.Strategy) {
		if _, ok := p.Endpoints[key]; ok {
			return true
		}
	}
	return false
}

// EndpointPreference is the per-strategy endpoint key selection order.
func EndpointPreference(s Strategy) []string {
	switch s {
	case StrategyAPI, StrategySPAAPI:
		return []string{"api", "latest", "feed"}
	case StrategyPDF:
		return []string{"latest", "feed", "api"}
	default:
		return []string{"feed", "latest", "api"}
	}
}

// SelectEndpoint picks the fetch URL for the profile's strategy; ok is false
// when no preferred endpoint is configured.
func (p *SourceProfile) SelectEndpoint() (string, bool) {
	for _, key := range EndpointPreference(p.Strategy) {
		if u, ok := p.Endpoints[key]; ok && u != "" {
			return u, true
		}
	}
	return "", false
}

// Blob re-encodes the profile to the JSON map persisted on the catalog row.
func (p *SourceProfile) Blob() map[string]interface{} {
	raw, _ := json.Marshal(p)
	var out map[string]interface{}
	_ = json.Unmarshal(raw, &out)
	return out
}
