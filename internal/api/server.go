// Package api wires the HTTP surface: router, middleware stack, and routes.
package api

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	corslib "github.com/rs/cors"

	"github.com/pitchside/cricket-data/internal/api/handler"
	"github.com/pitchside/cricket-data/internal/config"
)

// NewRouter creates and configures the Chi router with all middleware and
// routes.
func NewRouter(cfg *config.Config, logger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// --- Middleware stack ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(TimingMiddleware)
	r.Use(middleware.Compress(5)) // gzip

	// CORS: any origin, any method, any header, credentials allowed. The
	// origin func echoes the caller so credentialed requests work.
	c := corslib.New(corslib.Options{
		AllowOriginFunc:  func(origin string) bool { return true },
		AllowedMethods:   []string{"GET", "HEAD", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})
	r.Use(c.Handler)

	// Rate limiting
	if cfg.RateLimitEnabled {
		r.Use(RateLimitMiddleware(cfg.RateLimitRequests, cfg.RateLimitWindow))
	}

	// --- Handler dependencies ---
	h := handler.New(cfg, logger)

	// --- Routes ---

	r.Get("/", h.Root)
	r.Get("/test", h.Status)

	// Swagger UI over the embedded OpenAPI document.
	mountDocs(r)

	r.Route("/api", func(r chi.Router) {
		r.Get("/hello", h.Hello)

		r.Get("/matches", h.ListMatches)
		r.Get("/match/{match_id}", h.MatchDetail)

		r.Get("/rankings", h.GetRankings)
		r.Get("/news", h.GetNews)
		r.Get("/trending-players", h.GetTrendingPlayers)
		r.Get("/tweets", h.SearchTweets)
	})

	return r
}
