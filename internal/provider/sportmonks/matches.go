package sportmonks

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/pitchside/cricket-data/internal/provider"
)

// Match list categories map to distinct SportMonks resources.
var listPaths = map[provider.MatchType]string{
	provider.MatchTypeLive:      "livescores",
	provider.MatchTypeUpcoming:  "fixtures",
	provider.MatchTypeCompleted: "fixtures/finished",
}

const listIncludes = "localteam,visitorteam,venue,season"

// detailIncludes requests the full relation set for a single fixture:
// commentary balls, scoreboards, lineups, and award relations.
const detailIncludes = "localteam,visitorteam,venue," +
	"runs,batting,bowling,manofmatch,manofseries," +
	"lineup,balls,scoreboards"

// ListMatches fetches one match category and normalizes each record into the
// canonical summary shape.
func (c *Client) ListMatches(ctx context.Context, matchType provider.MatchType) ([]provider.MatchSummary, error) {
	path, ok := listPaths[matchType]
	if !ok {
		return nil, fmt.Errorf("unsupported match type %q", matchType)
	}

	params := url.Values{}
	params.Set("include", listIncludes)

	raw, err := c.fetch(ctx, path, params)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Data []map[string]any `json:"data"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", path, err)
	}

	matches := make([]provider.MatchSummary, 0, len(payload.Data))
	for _, m := range payload.Data {
		matches = append(matches, NormalizeMatch(m, matchType))
	}
	return matches, nil
}

// MatchDetail fetches the full fixture payload. The response is passed
// through as-is; consumers handle the nested structure directly.
func (c *Client) MatchDetail(ctx context.Context, matchID string) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("include", detailIncludes)
	return c.fetch(ctx, "fixtures/"+matchID, params)
}

// NormalizeMatch maps one SportMonks fixture record into the canonical
// MatchSummary. Missing nested objects become null fields, never errors.
func NormalizeMatch(m map[string]any, matchType provider.MatchType) provider.MatchSummary {
	localteam := provider.Object(m, "localteam")
	visitorteam := provider.Object(m, "visitorteam")
	venue := provider.Object(m, "venue")

	status := provider.FirstString(m, "status")
	if status == "" {
		status = string(matchType)
	}

	return provider.MatchSummary{
		ID:     m["id"],
		Status: strings.ToUpper(status),
		Note:   provider.StringField(m, "note"),
		Runs:   m["runs"],
		// SportMonks keys the league/season association as season_id.
		LeagueID: m["season_id"],
		LocalTeam: provider.TeamRef{
			ID:   localteam["id"],
			Name: provider.StringField(localteam, "name"),
			Code: provider.StringField(localteam, "code"),
		},
		VisitorTeam: provider.TeamRef{
			ID:   visitorteam["id"],
			Name: provider.StringField(visitorteam, "name"),
			Code: provider.StringField(visitorteam, "code"),
		},
		Venue: provider.VenueRef{
			Name: provider.StringField(venue, "name"),
			City: provider.StringField(venue, "city"),
		},
		StartingAt: m["starting_at"],
	}
}
