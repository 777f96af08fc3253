// Package config loads and validates the application environment and the
// per-source crawler profiles. Configuration is data, not code: profiles
// arrive as JSON blobs on catalog rows and are validated on read.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// InstitutionalUA identifies the crawler on every outbound request.
const InstitutionalUA = "RadarHardNews/1.0 (Institutional; newsroom monitoring)"

// AppConfig is the process-wide configuration read from the environment.
type AppConfig struct {
	DatabaseURL string
	RedisURL    string
	Env         string
	CORSOrigins []string
	CatalogPath string
	HTTPPort    string

	SLOFastPath   time.Duration
	SLORenderPath time.Duration
	SLODeepPath   time.Duration
	QuarantineTTL time.Duration
	AlertCooldown time.Duration

	Queue *QueueConfig
}

// Load reads AppConfig from the environment, applying defaults. It returns a
// precise per-field error on the first invalid value.
func Load() (*AppConfig, error) {
	cfg := &AppConfig{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisURL:    getEnvOrDefault("REDIS_URL", "redis://localhost:6379/0"),
		Env:         getEnvOrDefault("APP_ENV", "development"),
		CatalogPath: os.Getenv("CATALOG_PATH"),
		HTTPPort:    getEnvOrDefault("HTTP_PORT", "8080"),
		Queue:       DefaultQueueConfig(),
	}

	if origins := os.Getenv("APP_CORS_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORSOrigins = append(cfg.CORSOrigins, o)
			}
		}
	}

	var err error
	if cfg.SLOFastPath, err = secondsEnv("SLO_FAST_PATH_S", 60); err != nil {
		return nil, err
	}
	if cfg.SLORenderPath, err = secondsEnv("SLO_RENDER_PATH_S", 120); err != nil {
		return nil, err
	}
	if cfg.SLODeepPath, err = secondsEnv("SLO_DEEP_PATH_S", 300); err != nil {
		return nil, err
	}
	if cfg.QuarantineTTL, err = secondsEnv("QUARANTINE_TTL_S", 900); err != nil {
		return nil, err
	}
	if cfg.AlertCooldown, err = secondsEnv("ALERT_COOLDOWN_S", 300); err != nil {
		return nil, err
	}
	if err := cfg.Queue.loadFromEnv(); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *AppConfig) validate() error {
	if c.DatabaseURL == "" {
		return NewValidationError("app", "env", "DATABASE_URL", ErrMissingRequiredField)
	}
	if c.SLOFastPath <= 0 {
		return NewValidationError("app", "env", "SLO_FAST_PATH_S", ErrInvalidValue)
	}
	if c.QuarantineTTL <= 0 {
		return NewValidationError("app", "env", "QUARANTINE_TTL_S", ErrInvalidValue)
	}
	if c.AlertCooldown <= 0 {
		return NewValidationError("app", "env", "ALERT_COOLDOWN_S", ErrInvalidValue)
	}
	return nil
}

// SLOForPool maps a worker pool to its hydration SLO.
func (c *AppConfig) SLOForPool(pool Pool) time.Duration {
	switch pool {
	case PoolHeavyRender:
		return c.SLORenderPath
	case PoolDeepExtract:
		return c.SLODeepPath
	default:
		return c.SLOFastPath
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func secondsEnv(key string, defaultSeconds int) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return time.Duration(defaultSeconds) * time.Second, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, NewValidationError("app", "env", key, fmt.Errorf("%w: %q", ErrInvalidValue, raw))
	}
	return time.Duration(n) * time.Second, nil
}

func intEnv(key string, defaultVal int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultVal, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, NewValidationError("app", "env", key, fmt.Errorf("%w: %q", ErrInvalidValue, raw))
	}
	return n, nil
}
