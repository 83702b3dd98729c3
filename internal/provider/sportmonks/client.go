// Package sportmonks implements the primary stats provider: the SportMonks
// Cricket API.
//
// SportMonks uses token-based auth (api_token query parameter) and
// include-based nested relationships.
package sportmonks

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

// DefaultBaseURL is the SportMonks Cricket API root.
const DefaultBaseURL = "https://cricket.sportmonks.com/api/v2.0"

const (
	requestTimeout    = 15 * time.Second
	requestsPerMinute = 300
)

// Config holds client construction options. APIToken may be empty; fetches
// then fail with a not-configured error before any network I/O.
type Config struct {
	BaseURL    string
	APIToken   string
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// Client is the HTTP client for SportMonks Cricket endpoints.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiToken   string
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// New creates a SportMonks client with rate limiting.
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
		apiToken:   cfg.APIToken,
		limiter:    rate.NewLimiter(rate.Limit(float64(requestsPerMinute)/60.0), requestsPerMinute),
		logger:     logger,
	}
}

// fetch performs a single authenticated GET request. No retries are
// performed; callers receive a typed failure instead of waiting longer.
func (c *Client) fetch(ctx context.Context, path string, params url.Values) (json.RawMessage, error) {
	if c.apiToken == "" {
		return nil, provider.NotConfigured("CRICKET_API_KEY not set for SportMonks")
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, provider.Unreachable(err)
	}

	if params == nil {
		params = url.Values{}
	}
	params.Set("api_token", c.apiToken)

	u := c.baseURL + "/" + strings.TrimLeft(path, "/") + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, provider.Unreachable(err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("sportmonks request failed", "path", path, "error", err)
		return nil, provider.Unreachable(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, provider.Unreachable(err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("sportmonks non-success status", "path", path, "status", resp.StatusCode)
		return nil, provider.Upstream(resp.StatusCode, body)
	}

	return body, nil
}
