// Package handler provides HTTP handlers for all API endpoints.
// Every endpoint is a stateless on-demand fetch-and-transform: handlers
// invoke the active provider client or an external service, pass the result
// through the matching normalizer, and shape the response envelope. Nothing
// is persisted or cached.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/pitchside/cricket-data/internal/api/respond"
	"github.com/pitchside/cricket-data/internal/config"
	"github.com/pitchside/cricket-data/internal/external"
	"github.com/pitchside/cricket-data/internal/provider"
	"github.com/pitchside/cricket-data/internal/provider/cricbuzz"
	"github.com/pitchside/cricket-data/internal/provider/sportmonks"
)

// Handler holds shared dependencies for all endpoint handlers.
type Handler struct {
	cfg      *config.Config
	matches  provider.MatchProvider
	rankings *external.RankingsService
	news     *external.NewsService
	twitter  *external.TwitterService
	logger   *slog.Logger
}

// New creates a Handler with shared dependencies. The active match provider
// is selected here, once, from configuration — endpoints never branch on the
// provider identifier again.
func New(cfg *config.Config, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}

	var matches provider.MatchProvider
	switch cfg.Provider {
	case config.ProviderAltStats:
		matches = cricbuzz.New(cricbuzz.Config{
			Host:   cfg.RapidAPIHost,
			APIKey: cfg.RapidAPIKey,
			Logger: logger,
		})
	default:
		matches = sportmonks.New(sportmonks.Config{
			BaseURL:  cfg.PrimaryBaseURL,
			APIToken: cfg.PrimaryAPIKey,
			Logger:   logger,
		})
	}

	return &Handler{
		cfg:      cfg,
		matches:  matches,
		rankings: external.NewRankingsService(logger),
		news:     external.NewNewsService(cfg.NewsFeeds, logger),
		twitter:  external.NewTwitterService(cfg.TwitterBearerToken, logger),
		logger:   logger,
	}
}

// Root serves API info at /.
// @Summary API root info
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"message":  "Cricket Backend Running",
		"provider": h.cfg.Provider,
	})
}

// Hello serves the static greeting at /api/hello.
// @Summary Static greeting
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/hello [get]
func (h *Handler) Hello(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"message": "Hello from the backend API!",
	})
}

// Status serves the health/status probe at /test.
// @Summary Status probe
// @Description Reports backend status, whether any provider credential is configured, the active provider, and the current unix timestamp.
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /test [get]
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	externalAPI := "⚠️ Not Configured"
	if h.cfg.AnyProviderConfigured() {
		externalAPI = "✅ Configured"
	}
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"backend":      "✅ Running",
		"external_api": externalAPI,
		"provider":     h.cfg.Provider,
		"time":         time.Now().Unix(),
	})
}
