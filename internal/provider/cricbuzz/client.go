// Package cricbuzz implements the alternate stats provider: the Cricbuzz
// API served through the RapidAPI marketplace.
//
// RapidAPI auth is a header pair (X-RapidAPI-Key + X-RapidAPI-Host) rather
// than a query token.
package cricbuzz

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/pitchside/cricket-data/internal/provider"
)

// DefaultBaseURL is the RapidAPI-hosted Cricbuzz API root.
const DefaultBaseURL = "https://cricbuzz-cricket.p.rapidapi.com"

const (
	requestTimeout    = 15 * time.Second
	requestsPerMinute = 300
)

// Config holds client construction options. Host and APIKey may be empty;
// fetches then fail with a not-configured error before any network I/O.
type Config struct {
	BaseURL    string
	Host       string
	APIKey     string
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// Client is the HTTP client for RapidAPI Cricbuzz endpoints.
type Client struct {
	httpClient *http.Client
	baseURL    string
	host       string
	apiKey     string
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// New creates a Cricbuzz client with rate limiting.
func New(cfg Config) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: requestTimeout}
	}
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		host:       cfg.Host,
		apiKey:     cfg.APIKey,
		limiter:    rate.NewLimiter(rate.Limit(float64(requestsPerMinute)/60.0), requestsPerMinute),
		logger:     logger,
	}
}

// fetch performs a single authenticated GET request. Single attempt, no
// retries.
func (c *Client) fetch(ctx context.Context, path string, params url.Values) (json.RawMessage, error) {
	if c.apiKey == "" || c.host == "" {
		return nil, provider.NotConfigured("RAPIDAPI_KEY or RAPIDAPI_HOST not configured")
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, provider.Unreachable(err)
	}

	u := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, provider.Unreachable(err)
	}
	req.Header.Set("X-RapidAPI-Key", c.apiKey)
	req.Header.Set("X-RapidAPI-Host", c.host)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("cricbuzz request failed", "path", path, "error", err)
		return nil, provider.Unreachable(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, provider.Unreachable(err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("cricbuzz non-success status", "path", path, "status", resp.StatusCode)
		return nil, provider.Upstream(resp.StatusCode, body)
	}

	return body, nil
}
