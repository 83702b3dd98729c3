package provider

import (
	"context"
	"encoding/json"
)

// MatchType is a logical match list category. Each provider maps it to its
// own resource path.
type MatchType string

const (
	MatchTypeLive      MatchType = "live"
	MatchTypeUpcoming  MatchType = "upcoming"
	MatchTypeCompleted MatchType = "completed"
)

// ParseMatchType validates a match type query value. Empty input defaults to
// live.
func ParseMatchType(s string) (MatchType, bool) {
	switch MatchType(s) {
	case "":
		return MatchTypeLive, true
	case MatchTypeLive, MatchTypeUpcoming, MatchTypeCompleted:
		return MatchType(s), true
	default:
		return "", false
	}
}

// MatchLister fetches and normalizes a match list for one category.
type MatchLister interface {
	ListMatches(ctx context.Context, matchType MatchType) ([]MatchSummary, error)
}

// MatchDetailer fetches the full match payload for one match id. The shape
// is provider-native and passed through unnormalized; consumers depend on
// the richer nested structure.
type MatchDetailer interface {
	MatchDetail(ctx context.Context, matchID string) (json.RawMessage, error)
}

// MatchProvider is the capability set a stats provider must implement. The
// active implementation is selected once at startup from configuration.
type MatchProvider interface {
	MatchLister
	MatchDetailer
}
