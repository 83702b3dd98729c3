package cricbuzz

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pitchside/cricket-data/internal/provider"
)

func TestNormalizeMatch_MissingVenueInfoYieldsNullVenue(t *testing.T) {
	record := map[string]any{
		"matchId":    float64(1001),
		"matchState": "inprogress",
		"seriesName": "Asia Cup",
	}

	m := NormalizeMatch(record, provider.MatchTypeLive)

	assert.Equal(t, float64(1001), m.ID)
	assert.Equal(t, "INPROGRESS", m.Status)
	assert.Nil(t, m.Venue.Name)
	assert.Nil(t, m.Venue.City)

	data, err := json.Marshal(m)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	venue, ok := out["venue"].(map[string]any)
	require.True(t, ok)
	assert.Nil(t, venue["name"])
	assert.Nil(t, venue["city"])
}

func TestNormalizeMatch_FieldMapping(t *testing.T) {
	record := map[string]any{
		"matchId":    float64(2002),
		"status":     "Complete",
		"seriesName": "The Ashes",
		"team1":      map[string]any{"teamName": "Australia", "teamSName": "AUS"},
		"team2":      map[string]any{"teamName": "England", "teamSName": "ENG"},
		"venueInfo":  map[string]any{"ground": "MCG", "city": "Melbourne"},
		"startTime":  "1767225600000",
	}

	m := NormalizeMatch(record, provider.MatchTypeCompleted)

	assert.Equal(t, "COMPLETE", m.Status)
	require.NotNil(t, m.Note)
	assert.Equal(t, "The Ashes", *m.Note)
	require.NotNil(t, m.LocalTeam.Name)
	assert.Equal(t, "Australia", *m.LocalTeam.Name)
	require.NotNil(t, m.LocalTeam.Code)
	assert.Equal(t, "AUS", *m.LocalTeam.Code)
	require.NotNil(t, m.VisitorTeam.Name)
	assert.Equal(t, "England", *m.VisitorTeam.Name)
	require.NotNil(t, m.Venue.Name)
	assert.Equal(t, "MCG", *m.Venue.Name)
	assert.Equal(t, "1767225600000", m.StartingAt)
}

func TestNormalizeMatch_StatusPrecedence(t *testing.T) {
	// matchState wins over status; both absent falls back to the category.
	m := NormalizeMatch(map[string]any{"matchState": "stumps", "status": "done"}, provider.MatchTypeLive)
	assert.Equal(t, "STUMPS", m.Status)

	m = NormalizeMatch(map[string]any{"status": "done"}, provider.MatchTypeLive)
	assert.Equal(t, "DONE", m.Status)

	m = NormalizeMatch(map[string]any{}, provider.MatchTypeUpcoming)
	assert.Equal(t, "UPCOMING", m.Status)
}

func TestNormalizeMatch_IDFallsBackToID(t *testing.T) {
	m := NormalizeMatch(map[string]any{"id": float64(7)}, provider.MatchTypeLive)
	assert.Equal(t, float64(7), m.ID)
}

func TestListMatches_PathHeadersAndEnvelope(t *testing.T) {
	cases := map[provider.MatchType]string{
		provider.MatchTypeLive:      "/matches/v1/live",
		provider.MatchTypeUpcoming:  "/matches/v1/upcoming",
		provider.MatchTypeCompleted: "/matches/v1/recent",
	}

	for matchType, wantPath := range cases {
		t.Run(string(matchType), func(t *testing.T) {
			var gotPath, gotKey, gotHost string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				gotKey = r.Header.Get("X-RapidAPI-Key")
				gotHost = r.Header.Get("X-RapidAPI-Host")
				w.Write([]byte(`{"matches":[{"matchId":1,"matchState":"live"}]}`))
			}))
			defer srv.Close()

			c := New(Config{
				BaseURL:    srv.URL,
				Host:       "cricbuzz-cricket.p.rapidapi.com",
				APIKey:     "rapid-key",
				HTTPClient: srv.Client(),
			})
			matches, err := c.ListMatches(context.Background(), matchType)

			require.NoError(t, err)
			require.Len(t, matches, 1)
			assert.Equal(t, wantPath, gotPath)
			assert.Equal(t, "rapid-key", gotKey)
			assert.Equal(t, "cricbuzz-cricket.p.rapidapi.com", gotHost)
		})
	}
}

func TestListMatches_BareArrayPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"matchId":1},{"matchId":2}]`))
	}))
	defer srv.Close()

	c := New(Config{BaseURL: srv.URL, Host: "h", APIKey: "k", HTTPClient: srv.Client()})
	matches, err := c.ListMatches(context.Background(), provider.MatchTypeLive)

	require.NoError(t, err)
	assert.Len(t, matches, 2)
}

func TestFetch_NotConfiguredWhenEitherCredentialMissing(t *testing.T) {
	for name, cfg := range map[string]Config{
		"no key":  {Host: "h"},
		"no host": {APIKey: "k"},
	} {
		t.Run(name, func(t *testing.T) {
			c := New(cfg)
			_, err := c.ListMatches(context.Background(), provider.MatchTypeLive)

			var perr *provider.Error
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, provider.KindNotConfigured, perr.Kind)
			assert.Equal(t, http.StatusNotImplemented, perr.Status)
		})
	}
}

func TestMatchDetail_HitsMCenterAndPassesPayloadThrough(t *testing.T) {
	const payload = `{"matchHeader":{"matchId":5},"scoreCard":[]}`

	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(payload))
	}))
	defer srv.Close()

	c := New(Config{BaseURL: srv.URL, Host: "h", APIKey: "k", HTTPClient: srv.Client()})
	raw, err := c.MatchDetail(context.Background(), "5")

	require.NoError(t, err)
	assert.Equal(t, "/mcenter/v1/5", gotPath)
	assert.JSONEq(t, payload, string(raw))
}
