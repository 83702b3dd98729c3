package cricbuzz

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pitchside/cricket-data/internal/provider"
)

// Match list categories map to distinct Cricbuzz mcenter resources.
var listPaths = map[provider.MatchType]string{
	provider.MatchTypeLive:      "matches/v1/live",
	provider.MatchTypeUpcoming:  "matches/v1/upcoming",
	provider.MatchTypeCompleted: "matches/v1/recent",
}

// ListMatches fetches one match category and normalizes each record into the
// canonical summary shape.
func (c *Client) ListMatches(ctx context.Context, matchType provider.MatchType) ([]provider.MatchSummary, error) {
	path, ok := listPaths[matchType]
	if !ok {
		return nil, fmt.Errorf("unsupported match type %q", matchType)
	}

	raw, err := c.fetch(ctx, path, nil)
	if err != nil {
		return nil, err
	}

	items, err := matchItems(raw)
	if err != nil {
		return nil, fmt.Errorf("decode %s response: %w", path, err)
	}

	matches := make([]provider.MatchSummary, 0, len(items))
	for _, m := range items {
		matches = append(matches, NormalizeMatch(m, matchType))
	}
	return matches, nil
}

// MatchDetail fetches the full match center payload, passed through as-is.
func (c *Client) MatchDetail(ctx context.Context, matchID string) (json.RawMessage, error) {
	return c.fetch(ctx, "mcenter/v1/"+matchID, nil)
}

// matchItems extracts the match list from the payload. The list usually
// lives under "matches", but some hosts return a bare array.
func matchItems(raw json.RawMessage) ([]map[string]any, error) {
	var envelope struct {
		Matches []map[string]any `json:"matches"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Matches != nil {
		return envelope.Matches, nil
	}

	var items []map[string]any
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// NormalizeMatch maps one Cricbuzz match record into the canonical
// MatchSummary. Missing team1/team2/venueInfo objects become null fields,
// never errors.
func NormalizeMatch(m map[string]any, matchType provider.MatchType) provider.MatchSummary {
	team1 := provider.Object(m, "team1")
	team2 := provider.Object(m, "team2")
	venue := provider.Object(m, "venueInfo")

	status := provider.FirstString(m, "matchState", "status")
	if status == "" {
		status = string(matchType)
	}

	return provider.MatchSummary{
		ID:     provider.FirstValue(m, "matchId", "id"),
		Status: strings.ToUpper(status),
		Note:   provider.StringField(m, "seriesName"),
		LocalTeam: provider.TeamRef{
			Name: provider.StringField(team1, "teamName"),
			Code: provider.StringField(team1, "teamSName"),
		},
		VisitorTeam: provider.TeamRef{
			Name: provider.StringField(team2, "teamName"),
			Code: provider.StringField(team2, "teamSName"),
		},
		Venue: provider.VenueRef{
			Name: provider.StringField(venue, "ground"),
			City: provider.StringField(venue, "city"),
		},
		StartingAt: m["startTime"],
	}
}
