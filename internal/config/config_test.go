package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ProviderPrimaryStats, cfg.Provider)
	assert.Equal(t, DefaultPrimaryBaseURL, cfg.PrimaryBaseURL)
	assert.Equal(t, "0.0.0.0", cfg.APIHost)
	assert.Equal(t, 8000, cfg.APIPort)
	assert.Equal(t, DefaultNewsFeeds, cfg.NewsFeeds)
	assert.True(t, cfg.RateLimitEnabled)
	assert.Equal(t, 60*time.Second, cfg.RateLimitWindow)
	assert.False(t, cfg.AnyProviderConfigured())
}

func TestLoad_ProviderSelection(t *testing.T) {
	t.Run("alt stats", func(t *testing.T) {
		t.Setenv("CRICKET_API_PROVIDER", "ALT_STATS")
		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, ProviderAltStats, cfg.Provider)
	})

	t.Run("unknown value falls back to primary", func(t *testing.T) {
		t.Setenv("CRICKET_API_PROVIDER", "somethingelse")
		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, ProviderPrimaryStats, cfg.Provider)
	})
}

func TestLoad_Credentials(t *testing.T) {
	t.Setenv("CRICKET_API_KEY", "sm-token")
	t.Setenv("RAPIDAPI_HOST", "cricbuzz-cricket.p.rapidapi.com")
	t.Setenv("RAPIDAPI_KEY", "ra-key")
	t.Setenv("X_BEARER_TOKEN", "x-token")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "sm-token", cfg.PrimaryAPIKey)
	assert.Equal(t, "cricbuzz-cricket.p.rapidapi.com", cfg.RapidAPIHost)
	assert.Equal(t, "ra-key", cfg.RapidAPIKey)
	assert.Equal(t, "x-token", cfg.TwitterBearerToken)
	assert.True(t, cfg.AnyProviderConfigured())
}

func TestLoad_PortFallsBackToPORT(t *testing.T) {
	t.Setenv("PORT", "9001")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9001, cfg.APIPort)

	t.Setenv("API_PORT", "9002")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, 9002, cfg.APIPort)
}

func TestEnvList(t *testing.T) {
	t.Setenv("CRICKET_NEWS_FEEDS", " https://a.example.com/rss , ,https://b.example.com/rss")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://a.example.com/rss", "https://b.example.com/rss"}, cfg.NewsFeeds)
}
