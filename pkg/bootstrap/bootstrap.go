// Package bootstrap converts the legacy YAML catalog into validated source
// rows. It is a one-shot collaborator invoked at startup when CATALOG_PATH is
// set; existing rows are never overwritten.
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/radarpautas/radar/pkg/config"
	"github.com/radarpautas/radar/pkg/database"
	"github.com/radarpautas/radar/pkg/taxonomy"
)

// catalog is the legacy YAML layout.
type catalog struct {
	Sources []legacySource `yaml:"sources"`
}

type legacySource struct {
	Name     string `yaml:"name"`
	URL      string `yaml:"url"`
	Type     string `yaml:"type"`
	Editoria string `yaml:"editoria"`
	Priority string `yaml:"priority"`
}

var priorityTiers = map[string]int{"S0": 1, "S1": 2, "S2": 3}

var cadenceByTier = map[int]int{1: 600, 2: 1800, 3: 3600}

// Run loads the catalog file and inserts every source not yet present, keyed
// by endpoint URL. It returns the number of rows created.
func Run(ctx context.Context, db *database.Client, path string) (int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("reading catalog %s: %w", path, err)
	}
	var cat catalog
	if err := yaml.Unmarshal(raw, &cat); err != nil {
		return 0, fmt.Errorf("parsing catalog %s: %w", path, err)
	}
	slog.Info("Bootstrapping catalog", "path", path, "sources", len(cat.Sources))

	known, err := existingEndpoints(ctx, db)
	if err != nil {
		return 0, err
	}

	created := 0
	for _, legacy := range cat.Sources {
		endpoint := strings.TrimSpace(legacy.URL)
		if legacy.Name == "" || endpoint == "" {
			continue
		}
		if _, dup := known[endpoint]; dup {
			continue
		}

		profile, domain, official, class, group := convert(legacy)
		if err := profile.Validate(legacy.Name); err != nil {
			slog.Warn("Catalog source invalid, skipping", "source", legacy.Name, "error", err)
			continue
		}

		if _, err := db.Source.Create().
			SetDomain(domain).
			SetName(legacy.Name).
			SetTier(profile.Tier).
			SetIsOfficial(official).
			SetProfile(profile.Blob()).
			SetSourceClass(class).
			SetEditorialGroup(group).
			Save(ctx); err != nil {
			return created, fmt.Errorf("seeding source %s: %w", legacy.Name, err)
		}
		known[endpoint] = struct{}{}
		created++
	}

	slog.Info("Catalog bootstrap finished", "created", created)
	return created, nil
}

// convert maps one legacy row to a validated profile plus the denormalized
// catalog columns.
func convert(legacy legacySource) (*config.SourceProfile, string, bool, string, string) {
	tier, ok := priorityTiers[legacy.Priority]
	if !ok {
		tier = 3
	}

	strategy := config.StrategyHTML
	endpointKey := "latest"
	if strings.EqualFold(legacy.Type, "rss") {
		strategy = config.StrategyFeed
		endpointKey = "feed"
	}

	domain := "unknown"
	if u, err := url.Parse(strings.TrimSpace(legacy.URL)); err == nil && u.Hostname() != "" {
		domain = strings.ToLower(u.Hostname())
	}

	class := taxonomy.InferSourceClass(legacy.Name, legacy.URL, "")
	group := taxonomy.InferSourceGroup(legacy.Name, legacy.URL, class, "")
	official := strings.Contains(domain, ".gov.br") ||
		strings.Contains(domain, ".leg.br") ||
		strings.Contains(domain, ".jus.br") ||
		class == "primary"

	profile := &config.SourceProfile{
		Strategy:  strategy,
		Pool:      config.PoolFast,
		Endpoints: map[string]string{endpointKey: strings.TrimSpace(legacy.URL)},
		Headers:   map[string]string{"User-Agent": config.InstitutionalUA},
		Cadence:   config.Cadence{IntervalSeconds: cadenceByTier[tier]},
		Limits:    config.Limits{RatePerMin: 10},
		Observability: config.Observability{
			WindowH:         24,
			BaselineRolling: true,
			CalendarProfile: "business_hours_br",
		},
		Domain:     domain,
		Name:       legacy.Name,
		Tier:       tier,
		IsOfficial: official,
		Language:   "pt-BR",
		Lane:       strings.ToLower(strings.TrimSpace(legacy.Editoria)),
	}
	return profile, domain, official, class, group
}

// existingEndpoints collects every endpoint URL already in the catalog so the
// bootstrap stays idempotent across restarts.
func existingEndpoints(ctx context.Context, db *database.Client) (map[string]struct{}, error) {
	rows, err := db.Source.Query().All(ctx)
	if err != nil {
		return nil, err
	}
	known := make(map[string]struct{})
	for _, row := range rows {
		endpoints, ok := row.Profile["endpoints"].(map[string]interface{})
		if !ok {
			continue
		}
		for _, v := range endpoints {
			if s, ok := v.(string); ok && s != "" {
				known[strings.TrimSpace(s)] = struct{}{}
			}
		}
	}
	return known, nil
}
