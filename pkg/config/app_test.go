package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/radar")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost/radar", cfg.DatabaseURL)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, 60*time.Second, cfg.SLOFastPath)
	assert.Equal(t, 120*time.Second, cfg.SLORenderPath)
	assert.Equal(t, 300*time.Second, cfg.SLODeepPath)
	assert.Equal(t, 900*time.Second, cfg.QuarantineTTL)
	assert.Equal(t, 300*time.Second, cfg.AlertCooldown)
	assert.Equal(t, 8, cfg.Queue.FetchFastWorkers)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/radar")
	t.Setenv("APP_ENV", "production")
	t.Setenv("APP_CORS_ORIGINS", "https://newsroom.example.com, https://editor.example.com")
	t.Setenv("SLO_FAST_PATH_S", "90")
	t.Setenv("QUARANTINE_TTL_S", "600")
	t.Setenv("FETCH_FAST_WORKERS", "16")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, []string{"https://newsroom.example.com", "https://editor.example.com"}, cfg.CORSOrigins)
	assert.Equal(t, 90*time.Second, cfg.SLOFastPath)
	assert.Equal(t, 600*time.Second, cfg.QuarantineTTL)
	assert.Equal(t, 16, cfg.Queue.FetchFastWorkers)
}

func TestLoadMissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := Load()
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "DATABASE_URL", verr.Field)
}

func TestLoadInvalidSeconds(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/radar")
	t.Setenv("ALERT_COOLDOWN_S", "soon")

	_, err := Load()
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "ALERT_COOLDOWN_S", verr.Field)
}

func TestSLOForPool(t *testing.T) {
	cfg := &AppConfig{
		SLOFastPath:   60 * time.Second,
		SLORenderPath: 120 * time.Second,
		SLODeepPath:   300 * time.Second,
	}
	assert.Equal(t, 60*time.Second, cfg.SLOForPool(PoolFast))
	assert.Equal(t, 120*time.Second, cfg.SLOForPool(PoolHeavyRender))
	assert.Equal(t, 300*time.Second, cfg.SLOForPool(PoolDeepExtract))
}
