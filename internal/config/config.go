// Package config provides configuration for the application
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/coursepage/site/internal/locale"
	"github.com/coursepage/site/internal/models"
	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

const defaultContentAPIURL = "https://api.10minuteschool.com/discovery-service/api/v1/products/ielts-course"

// Config holds all configuration for the application
type Config struct {
	Server     ServerConfig
	Logging    LoggingConfig
	CORS       CORSConfig
	Locales    LocaleConfig
	ContentAPI ContentAPIConfig
	Cache      CacheConfig
	RateLimit  RateLimitConfig
	StaticDir  string
}

// ServerConfig holds server settings
type ServerConfig struct {
	Port int
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level string
}

// CORSConfig holds CORS settings for the JSON API
type CORSConfig struct {
	AllowedOrigins []string
}

// LocaleConfig holds the supported locales and the redirect rules
type LocaleConfig struct {
	Supported        []models.Locale
	Default          models.Locale
	ReservedPrefixes []string
}

// ContentAPIConfig holds the content API endpoint settings
type ContentAPIConfig struct {
	URL            string
	PlatformHeader string
	Platform       string
	Timeout        time.Duration
}

// CacheConfig holds the revalidation cache settings
type CacheConfig struct {
	Revalidate    time.Duration
	StaleGrace    time.Duration
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// RateLimitConfig holds per-IP rate limiting settings
type RateLimitConfig struct {
	RequestsPerMinute int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (optional)
	_ = godotenv.Load()

	cfg := &Config{}
	var err error

	// Server configuration
	if cfg.Server.Port, err = getInt("SERVER_PORT", 8080); err != nil {
		return nil, err
	}

	// Logging configuration
	cfg.Logging.Level = getString("LOG_LEVEL", "info")

	// CORS configuration
	cfg.CORS.AllowedOrigins = getList("CORS_ALLOWED_ORIGINS")
	if len(cfg.CORS.AllowedOrigins) == 0 {
		// Default to allow all origins if not specified (for development)
		cfg.CORS.AllowedOrigins = []string{"*"}
	}

	// Locale configuration
	if cfg.Locales, err = loadLocales(); err != nil {
		return nil, err
	}

	// Content API configuration
	cfg.ContentAPI.URL = getString("CONTENT_API_URL", defaultContentAPIURL)
	cfg.ContentAPI.PlatformHeader = getString("CONTENT_API_PLATFORM_HEADER", "X-TENMS-SOURCE-PLATFORM")
	cfg.ContentAPI.Platform = getString("CONTENT_API_PLATFORM", "web")
	if cfg.ContentAPI.Timeout, err = getDuration("CONTENT_API_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.ContentAPI.Timeout <= 0 {
		return nil, fmt.Errorf("CONTENT_API_TIMEOUT must be positive")
	}

	// Cache configuration
	if cfg.Cache.Revalidate, err = getDuration("CACHE_REVALIDATE", time.Hour); err != nil {
		return nil, err
	}
	if cfg.Cache.StaleGrace, err = getDuration("CACHE_STALE_GRACE", time.Hour); err != nil {
		return nil, err
	}
	cfg.Cache.RedisAddr = os.Getenv("CACHE_REDIS_ADDR")
	cfg.Cache.RedisPassword = os.Getenv("CACHE_REDIS_PASSWORD")
	if cfg.Cache.RedisDB, err = getInt("CACHE_REDIS_DB", 0); err != nil {
		return nil, err
	}

	// Rate limit configuration
	if cfg.RateLimit.RequestsPerMinute, err = getInt("RATE_LIMIT_PER_MINUTE", 300); err != nil {
		return nil, err
	}

	cfg.StaticDir = os.Getenv("STATIC_DIR")

	return cfg, nil
}

// loadLocales parses SUPPORTED_LOCALES and DEFAULT_LOCALE and checks that
// every entry is a well-formed language tag.
func loadLocales() (LocaleConfig, error) {
	lc := LocaleConfig{}

	raw := getList("SUPPORTED_LOCALES")
	if len(raw) == 0 {
		lc.Supported = append(lc.Supported, models.DefaultLocales...)
	}
	for _, s := range raw {
		if _, err := language.Parse(s); err != nil {
			return lc, fmt.Errorf("invalid SUPPORTED_LOCALES entry %q: %w", s, err)
		}
		l := models.Locale(s)
		if !l.In(lc.Supported) {
			lc.Supported = append(lc.Supported, l)
		}
	}

	lc.Default = models.Locale(getString("DEFAULT_LOCALE", string(models.LocaleBengali)))
	if !lc.Default.In(lc.Supported) {
		return lc, fmt.Errorf("DEFAULT_LOCALE %q is not in SUPPORTED_LOCALES", lc.Default)
	}

	lc.ReservedPrefixes = getList("RESERVED_PREFIXES")
	if len(lc.ReservedPrefixes) == 0 {
		lc.ReservedPrefixes = append(lc.ReservedPrefixes, locale.DefaultReservedPrefixes...)
	}
	for _, p := range lc.ReservedPrefixes {
		if !strings.HasPrefix(p, "/") {
			return lc, fmt.Errorf("invalid RESERVED_PREFIXES entry %q: must start with /", p)
		}
	}

	return lc, nil
}

func getString(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func getInt(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getDuration(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

// getList parses a comma-separated variable, dropping empty entries
func getList(key string) []string {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
