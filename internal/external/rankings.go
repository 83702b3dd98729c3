package external

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"
)

// ---------------------------------------------------------------------------
// Constants
// ---------------------------------------------------------------------------

// iccBaseURL is the public ICC rankings endpoint. Rankings deliberately
// ignore the active-provider configuration and always query this source.
const iccBaseURL = "https://www.icc-cricket.com/iccrankings/api"

const rankingsTimeout = 15 * time.Second

// PlayerCategories are the three ranked player disciplines. The result
// always carries all of them, empty when a sub-request fails.
var PlayerCategories = []string{"batting", "bowling", "allrounder"}

// Formats accepted by the rankings endpoint.
const (
	FormatTest = "test"
	FormatODI  = "odi"
	FormatT20  = "t20"
)

// ValidFormat reports whether s is a supported rankings format.
func ValidFormat(s string) bool {
	return s == FormatTest || s == FormatODI || s == FormatT20
}

// ---------------------------------------------------------------------------
// RankingsResult — canonical shape
// ---------------------------------------------------------------------------

// RankingsResult carries provider-native ranking rows. Lists are empty, never
// null, when a sub-request fails — total success is not required.
type RankingsResult struct {
	Format  string                       `json:"format"`
	Teams   []json.RawMessage            `json:"teams"`
	Players map[string][]json.RawMessage `json:"players"`
}

// ---------------------------------------------------------------------------
// RankingsService
// ---------------------------------------------------------------------------

// RankingsService queries the public ICC rankings source.
type RankingsService struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewRankingsService creates a rankings service against the public ICC
// endpoint.
func NewRankingsService(logger *slog.Logger) *RankingsService {
	if logger == nil {
		logger = slog.Default()
	}
	return &RankingsService{
		baseURL:    iccBaseURL,
		httpClient: &http.Client{Timeout: rankingsTimeout},
		logger:     logger,
	}
}

// GetRankings fetches the team list and the three player categories for one
// format. The four sub-requests are independent and issued concurrently; any
// sub-request that does not return success yields an empty list for its slot
// rather than an aggregate failure.
func (s *RankingsService) GetRankings(ctx context.Context, format string) *RankingsResult {
	result := &RankingsResult{
		Format:  format,
		Teams:   []json.RawMessage{},
		Players: make(map[string][]json.RawMessage, len(PlayerCategories)),
	}

	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		rows := s.fetchRows(ctx, fmt.Sprintf("%s/%s/men/teams", s.baseURL, format))
		mu.Lock()
		result.Teams = rows
		mu.Unlock()
	}()

	for _, cat := range PlayerCategories {
		wg.Add(1)
		go func(cat string) {
			defer wg.Done()
			rows := s.fetchRows(ctx, fmt.Sprintf("%s/%s/men/%s", s.baseURL, format, cat))
			mu.Lock()
			result.Players[cat] = rows
			mu.Unlock()
		}(cat)
	}

	wg.Wait()
	return result
}

// fetchRows returns the ranking rows at u, or an empty list on any failure.
func (s *RankingsService) fetchRows(ctx context.Context, u string) []json.RawMessage {
	rows := []json.RawMessage{}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return rows
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.logger.Warn("rankings sub-request failed", "url", u, "error", err)
		return rows
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.logger.Warn("rankings sub-request non-success", "url", u, "status", resp.StatusCode)
		return rows
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return rows
	}

	if err := json.Unmarshal(body, &rows); err != nil || rows == nil {
		s.logger.Warn("rankings payload not a list", "url", u, "error", err)
		return []json.RawMessage{}
	}
	return rows
}
