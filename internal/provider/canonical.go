// Package provider defines the canonical data types that all upstream
// providers normalize into, the capability interfaces endpoint handlers are
// written against, and the typed failure taxonomy for upstream calls.
//
// Adding a new stats provider means implementing MatchLister and
// MatchDetailer against these types. The handlers and response envelopes
// never change.
package provider

// TeamRef is a canonical reference to one side of a match. Fields the
// upstream omits stay null rather than failing normalization.
type TeamRef struct {
	ID   any     `json:"id"`
	Name *string `json:"name"`
	Code *string `json:"code"`
}

// VenueRef is a canonical match venue reference.
type VenueRef struct {
	Name *string `json:"name"`
	City *string `json:"city"`
}

// MatchSummary is the canonical match card returned by the list endpoint.
// ID, Runs, LeagueID, and StartingAt are pass-through values in the active
// provider's native encoding; no timezone or type normalization is applied.
type MatchSummary struct {
	ID          any      `json:"id"`
	Status      string   `json:"status"`
	Note        *string  `json:"note"`
	Runs        any      `json:"runs,omitempty"`
	LeagueID    any      `json:"league_id,omitempty"`
	LocalTeam   TeamRef  `json:"localteam"`
	VisitorTeam TeamRef  `json:"visitorteam"`
	Venue       VenueRef `json:"venue"`
	StartingAt  any      `json:"starting_at"`
}

// TrendingPlayer is a curated player record. Not sourced from any live
// provider.
type TrendingPlayer struct {
	Name    string `json:"name"`
	Country string `json:"country"`
	Handle  string `json:"handle"`
	Image   string `json:"image"`
}
