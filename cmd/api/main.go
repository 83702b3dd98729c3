// Command api is the cricket data aggregation API server.
//
// Usage:
//
//	cricket-api
//	cricket-api --port 8080 --provider alt_stats
//	API_PORT=8080 cricket-api
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/pitchside/cricket-data/internal/api"
	"github.com/pitchside/cricket-data/internal/config"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	// Load .env if present
	_ = godotenv.Load(".env")

	var (
		port     int
		provider string
	)

	root := &cobra.Command{
		Use:   "cricket-api",
		Short: "Read-only cricket data aggregation proxy",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			// Flags override environment.
			if cmd.Flags().Changed("port") {
				cfg.APIPort = port
			}
			if cmd.Flags().Changed("provider") {
				if provider != config.ProviderPrimaryStats && provider != config.ProviderAltStats {
					return fmt.Errorf("provider must be %q or %q", config.ProviderPrimaryStats, config.ProviderAltStats)
				}
				cfg.Provider = provider
			}
			return run(cfg, logger)
		},
	}
	root.Flags().IntVar(&port, "port", 8000, "listening port")
	root.Flags().StringVar(&provider, "provider", "", "active stats provider (primary_stats | alt_stats)")

	if err := root.Execute(); err != nil {
		logger.Error("Startup failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	// Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	router := api.NewRouter(cfg, logger)

	addr := fmt.Sprintf("%s:%d", cfg.APIHost, cfg.APIPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting Cricket Data API",
			"addr", addr,
			"provider", cfg.Provider,
			"docs", fmt.Sprintf("http://localhost:%d/docs/", cfg.APIPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	logger.Info("Shutting down...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown error", "error", err)
	}
	logger.Info("Server stopped")
	return nil
}
