package bootstrap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radarpautas/radar/pkg/config"
)

func TestConvertRSSSource(t *testing.T) {
	legacy := legacySource{
		Name:     "Agência Câmara",
		URL:      " https://www.camara.leg.br/noticias/rss ",
		Type:     "rss",
		Editoria: "Política",
		Priority: "S0",
	}

	profile, domain, official, class, group := convert(legacy)
	require.NoError(t, profile.Validate(legacy.Name))

	assert.Equal(t, config.StrategyFeed, profile.Strategy)
	assert.Equal(t, config.PoolFast, profile.Pool)
	assert.Equal(t, "https://www.camara.leg.br/noticias/rss", profile.Endpoints["feed"])
	assert.Equal(t, config.InstitutionalUA, profile.Headers["User-Agent"])
	assert.Equal(t, 600, profile.Cadence.IntervalSeconds) // tier 1
	assert.Equal(t, 1, profile.Tier)
	assert.Equal(t, "politica", profile.Lane)
	assert.Equal(t, "www.camara.leg.br", domain)
	assert.True(t, official)
	assert.Equal(t, "primary", class)
	assert.NotEmpty(t, group)
}

func TestConvertHTMLSource(t *testing.T) {
	legacy := legacySource{
		Name:     "Portal de Notícias",
		URL:      "https://www.exemplo.com.br/ultimas",
		Type:     "html",
		Priority: "S2",
	}

	profile, domain, official, _, _ := convert(legacy)
	require.NoError(t, profile.Validate(legacy.Name))

	assert.Equal(t, config.StrategyHTML, profile.Strategy)
	assert.Equal(t, "https://www.exemplo.com.br/ultimas", profile.Endpoints["latest"])
	assert.Equal(t, 3600, profile.Cadence.IntervalSeconds) // tier 3
	assert.Equal(t, 3, profile.Tier)
	assert.Equal(t, "www.exemplo.com.br", domain)
	assert.False(t, official)
}

func TestConvertUnknownPriorityDefaultsToTier3(t *testing.T) {
	profile, _, _, _, _ := convert(legacySource{
		Name:     "Fonte",
		URL:      "https://exemplo.org/x",
		Priority: "S9",
	})
	assert.Equal(t, 3, profile.Tier)
}

func TestConvertOfficialByDomainSuffix(t *testing.T) {
	tests := []struct {
		url      string
		official bool
	}{
		{"https://www.gov.br/cgu/noticias", true},
		{"https://portal.stf.jus.br/rss", true},
		{"https://senado.leg.br/rss", true},
		{"https://www.folha.uol.com.br/poder", false},
	}
	for _, tt := range tests {
		_, _, official, _, _ := convert(legacySource{Name: "x", URL: tt.url})
		assert.Equal(t, tt.official, official, "url %s", tt.url)
	}
}
