package config_test

import (
	"testing"
	"time"

	"github.com/olegmenkov/access-finder/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMustLoad_Defaults(t *testing.T) {
	cfg := config.MustLoad()

	require.NotNil(t, cfg)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, 8081, cfg.Port)
	assert.Equal(t, ":8080", cfg.APIAddr)
	assert.Equal(t, "nominatim", cfg.ProviderType)
	assert.Equal(t, "Москва, Россия", cfg.CityHint)
	assert.Equal(t, "ru", cfg.CountryCodes)
	assert.Equal(t, 5000, cfg.RadiusMeters)
	assert.Equal(t, 5, cfg.ResultLimit)
	assert.Equal(t, 5, cfg.EnrichWorkers)
	assert.Equal(t, "memory", cfg.SessionBackend)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
}

func TestMustLoad_Overrides(t *testing.T) {
	t.Setenv("FINDER_ENV", "local")
	t.Setenv("FINDER_HEALTH_PORT", "9090")
	t.Setenv("FINDER_API_ADDR", ":9000")
	t.Setenv("FINDER_PROVIDER_TYPE", "google")
	t.Setenv("FINDER_PROVIDER_KEY", "AIzaTestKey")
	t.Setenv("FINDER_CITY_HINT", "Санкт-Петербург, Россия")
	t.Setenv("FINDER_COUNTRY_CODES", "ru,by")
	t.Setenv("FINDER_RADIUS_METERS", "1200")
	t.Setenv("FINDER_RESULT_LIMIT", "3")
	t.Setenv("FINDER_ENRICH_WORKERS", "10")
	t.Setenv("FINDER_SESSION_BACKEND", "redis")
	t.Setenv("FINDER_SESSION_TTL", "30m")
	t.Setenv("FINDER_REDIS_ADDR", "redis:6379")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_USERNAME", "finder")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "finder")

	cfg := config.MustLoad()

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, ":9000", cfg.APIAddr)
	assert.Equal(t, "google", cfg.ProviderType)
	assert.Equal(t, "AIzaTestKey", cfg.APIKey)
	assert.Equal(t, "Санкт-Петербург, Россия", cfg.CityHint)
	assert.Equal(t, "ru,by", cfg.CountryCodes)
	assert.Equal(t, 1200, cfg.RadiusMeters)
	assert.Equal(t, 3, cfg.ResultLimit)
	assert.Equal(t, 10, cfg.EnrichWorkers)
	assert.Equal(t, "redis", cfg.SessionBackend)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, "redis:6379", cfg.RedisAddr)
	assert.Equal(t, config.PostgresConfig{
		Host:     "db",
		Port:     "5433",
		User:     "finder",
		Password: "secret",
		Name:     "finder",
	}, cfg.Database)
}

func TestMustLoad_Panics(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		want  string
	}{
		{
			name:  "invalid monitoring port",
			key:   "FINDER_HEALTH_PORT",
			value: "not-a-port",
			want:  "failed to parse port for monitoring server from configuration",
		},
		{
			name:  "invalid radius",
			key:   "FINDER_RADIUS_METERS",
			value: "five kilometers",
			want:  "failed to parse search radius from configuration, must be an integer",
		},
		{
			name:  "invalid result limit",
			key:   "FINDER_RESULT_LIMIT",
			value: "many",
			want:  "failed to parse result limit from configuration, must be an integer",
		},
		{
			name:  "invalid worker count",
			key:   "FINDER_ENRICH_WORKERS",
			value: "1.5",
			want:  "failed to parse enrichment workers from configuration, must be an integer",
		},
		{
			name:  "invalid session TTL",
			key:   "FINDER_SESSION_TTL",
			value: "eventually",
			want:  "failed to parse session TTL from configuration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			assert.PanicsWithValue(t, tt.want, func() { config.MustLoad() })
		})
	}
}
