package config

import (
	"testing"
	"time"

	"github.com/coursepage/site/internal/locale"
	"github.com/coursepage/site/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"SERVER_PORT", "LOG_LEVEL", "CORS_ALLOWED_ORIGINS",
		"SUPPORTED_LOCALES", "DEFAULT_LOCALE", "RESERVED_PREFIXES",
		"CONTENT_API_URL", "CONTENT_API_PLATFORM_HEADER", "CONTENT_API_PLATFORM", "CONTENT_API_TIMEOUT",
		"CACHE_REVALIDATE", "CACHE_STALE_GRACE", "CACHE_REDIS_ADDR", "CACHE_REDIS_PASSWORD", "CACHE_REDIS_DB",
		"RATE_LIMIT_PER_MINUTE", "STATIC_DIR",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, []models.Locale{models.LocaleEnglish, models.LocaleBengali}, cfg.Locales.Supported)
	assert.Equal(t, models.LocaleBengali, cfg.Locales.Default)
	assert.Equal(t, locale.DefaultReservedPrefixes, cfg.Locales.ReservedPrefixes)
	assert.Equal(t, defaultContentAPIURL, cfg.ContentAPI.URL)
	assert.Equal(t, "X-TENMS-SOURCE-PLATFORM", cfg.ContentAPI.PlatformHeader)
	assert.Equal(t, "web", cfg.ContentAPI.Platform)
	assert.Equal(t, 10*time.Second, cfg.ContentAPI.Timeout)
	assert.Equal(t, time.Hour, cfg.Cache.Revalidate)
	assert.Equal(t, time.Hour, cfg.Cache.StaleGrace)
	assert.Empty(t, cfg.Cache.RedisAddr)
	assert.Equal(t, 300, cfg.RateLimit.RequestsPerMinute)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("SUPPORTED_LOCALES", "en, bn, en")
	t.Setenv("DEFAULT_LOCALE", "en")
	t.Setenv("CONTENT_API_TIMEOUT", "3s")
	t.Setenv("CACHE_REVALIDATE", "15m")
	t.Setenv("CACHE_REDIS_ADDR", "localhost:6379")
	t.Setenv("CACHE_REDIS_DB", "2")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, []models.Locale{"en", "bn"}, cfg.Locales.Supported)
	assert.Equal(t, models.LocaleEnglish, cfg.Locales.Default)
	assert.Equal(t, 3*time.Second, cfg.ContentAPI.Timeout)
	assert.Equal(t, 15*time.Minute, cfg.Cache.Revalidate)
	assert.Equal(t, "localhost:6379", cfg.Cache.RedisAddr)
	assert.Equal(t, 2, cfg.Cache.RedisDB)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "invalid port", key: "SERVER_PORT", value: "abc"},
		{name: "invalid timeout", key: "CONTENT_API_TIMEOUT", value: "soon"},
		{name: "zero timeout", key: "CONTENT_API_TIMEOUT", value: "0s"},
		{name: "invalid revalidate", key: "CACHE_REVALIDATE", value: "1 hour"},
		{name: "malformed locale", key: "SUPPORTED_LOCALES", value: "en,not a tag"},
		{name: "default outside supported", key: "DEFAULT_LOCALE", value: "fr"},
		{name: "relative reserved prefix", key: "RESERVED_PREFIXES", value: "api"},
		{name: "invalid redis db", key: "CACHE_REDIS_DB", value: "one"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			cfg, err := Load()
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}
