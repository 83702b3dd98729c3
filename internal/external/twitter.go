package external

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/pitchside/cricket-data/internal/provider"
)

// ---------------------------------------------------------------------------
// Constants
// ---------------------------------------------------------------------------

const (
	twitterBaseURL        = "https://api.twitter.com/2"
	twitterTimeout        = 15 * time.Second
	tweetSearchMaxResults = 10
	tweetFields           = "created_at,public_metrics"
)

// ---------------------------------------------------------------------------
// Tweet — normalized output
// ---------------------------------------------------------------------------

// Tweet is a normalized search result. Metrics is the raw engagement
// key→count mapping as reported by the API.
type Tweet struct {
	ID        string         `json:"id"`
	Text      string         `json:"text"`
	CreatedAt string         `json:"created_at"`
	Metrics   map[string]int `json:"metrics"`
}

// ---------------------------------------------------------------------------
// TwitterService — recent search client
// ---------------------------------------------------------------------------

// TwitterService performs authenticated recent-search calls against the X
// API v2.
type TwitterService struct {
	bearerToken string
	baseURL     string
	httpClient  *http.Client
	logger      *slog.Logger
}

// NewTwitterService creates a twitter service. bearerToken may be empty;
// callers check IsConfigured and degrade to a soft note instead of failing.
func NewTwitterService(bearerToken string, logger *slog.Logger) *TwitterService {
	if logger == nil {
		logger = slog.Default()
	}
	return &TwitterService{
		bearerToken: bearerToken,
		baseURL:     twitterBaseURL,
		httpClient:  &http.Client{Timeout: twitterTimeout},
		logger:      logger,
	}
}

// IsConfigured reports whether a bearer token is set.
func (s *TwitterService) IsConfigured() bool { return s.bearerToken != "" }

// SearchRecent performs one authenticated recent-search call (max 10
// results). A non-success upstream status propagates with its code and body.
func (s *TwitterService) SearchRecent(ctx context.Context, query string) ([]Tweet, error) {
	if !s.IsConfigured() {
		return nil, provider.NotConfigured("X_BEARER_TOKEN not configured")
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("tweet.fields", tweetFields)
	params.Set("max_results", strconv.Itoa(tweetSearchMaxResults))

	u := s.baseURL + "/tweets/search/recent?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, provider.Unreachable(err)
	}
	req.Header.Set("Authorization", "Bearer "+s.bearerToken)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.logger.Warn("tweet search failed", "error", err)
		return nil, provider.Unreachable(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, provider.Unreachable(err)
	}

	if resp.StatusCode != http.StatusOK {
		s.logger.Warn("tweet search non-success status", "status", resp.StatusCode)
		return nil, provider.Upstream(resp.StatusCode, body)
	}

	var apiResp struct {
		Data []struct {
			ID            string         `json:"id"`
			Text          string         `json:"text"`
			CreatedAt     string         `json:"created_at"`
			PublicMetrics map[string]int `json:"public_metrics"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, provider.Unreachable(err)
	}

	tweets := make([]Tweet, 0, len(apiResp.Data))
	for _, t := range apiResp.Data {
		metrics := t.PublicMetrics
		if metrics == nil {
			metrics = map[string]int{}
		}
		tweets = append(tweets, Tweet{
			ID:        t.ID,
			Text:      t.Text,
			CreatedAt: t.CreatedAt,
			Metrics:   metrics,
		})
	}
	return tweets, nil
}
