// Package config provides centralized configuration loaded once from
// environment variables at startup. The resulting struct is immutable and
// passed by reference into each component.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Active provider identifiers.
const (
	ProviderPrimaryStats = "primary_stats"
	ProviderAltStats     = "alt_stats"
)

// DefaultPrimaryBaseURL is the known SportMonks Cricket API root used when
// SPORTMONKS_BASE is unset.
const DefaultPrimaryBaseURL = "https://cricket.sportmonks.com/api/v2.0"

// DefaultNewsFeeds are the RSS sources polled by the news endpoint.
var DefaultNewsFeeds = []string{
	"https://www.espncricinfo.com/rss/content/story/feeds/0.xml",
	"https://www.icc-cricket.com/rss/news",
}

// Config holds all process-wide settings. A missing credential is not a
// startup error — it becomes a runtime failure only when an endpoint that
// needs it is actually invoked.
type Config struct {
	// Active provider selection
	Provider string // primary_stats | alt_stats

	// Primary stats provider (query-token auth)
	PrimaryAPIKey  string
	PrimaryBaseURL string

	// Alternate stats provider (header-pair auth)
	RapidAPIHost string
	RapidAPIKey  string

	// Social search
	TwitterBearerToken string

	// News feeds
	NewsFeeds []string

	// API server
	APIHost string
	APIPort int

	// Rate limiting
	RateLimitEnabled  bool
	RateLimitRequests int
	RateLimitWindow   time.Duration
}

// Load reads configuration from environment variables with sensible
// defaults. Any provider value other than alt_stats selects the primary
// provider.
func Load() (*Config, error) {
	provider := strings.ToLower(envOr("CRICKET_API_PROVIDER", ProviderPrimaryStats))
	if provider != ProviderAltStats {
		provider = ProviderPrimaryStats
	}

	return &Config{
		Provider: provider,

		PrimaryAPIKey:  envOr("CRICKET_API_KEY", ""),
		PrimaryBaseURL: envOr("SPORTMONKS_BASE", DefaultPrimaryBaseURL),

		RapidAPIHost: envOr("RAPIDAPI_HOST", ""),
		RapidAPIKey:  envOr("RAPIDAPI_KEY", ""),

		TwitterBearerToken: envOr("X_BEARER_TOKEN", ""),

		NewsFeeds: envList("CRICKET_NEWS_FEEDS", DefaultNewsFeeds),

		APIHost: envOr("API_HOST", "0.0.0.0"),
		APIPort: envInt("API_PORT", envInt("PORT", 8000)),

		RateLimitEnabled:  envBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequests: envInt("RATE_LIMIT_REQUESTS", 100),
		RateLimitWindow:   time.Duration(envInt("RATE_LIMIT_WINDOW", 60)) * time.Second,
	}, nil
}

// AnyProviderConfigured reports whether at least one stats provider
// credential is present. Used by the status probe.
func (c *Config) AnyProviderConfigured() bool {
	return c.PrimaryAPIKey != "" || c.RapidAPIKey != ""
}

// --------------------------------------------------------------------------
// Env helpers
// --------------------------------------------------------------------------

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envList(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return fallback
}
