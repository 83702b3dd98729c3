package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMatchType(t *testing.T) {
	mt, ok := ParseMatchType("")
	assert.True(t, ok)
	assert.Equal(t, MatchTypeLive, mt, "empty type defaults to live")

	for _, valid := range []string{"live", "upcoming", "completed"} {
		mt, ok := ParseMatchType(valid)
		assert.True(t, ok)
		assert.Equal(t, MatchType(valid), mt)
	}

	_, ok = ParseMatchType("finished")
	assert.False(t, ok)
	_, ok = ParseMatchType("LIVE")
	assert.False(t, ok)
}

func TestStringField(t *testing.T) {
	m := map[string]any{"name": "India", "id": float64(1), "note": nil}

	got := StringField(m, "name")
	require.NotNil(t, got)
	assert.Equal(t, "India", *got)

	assert.Nil(t, StringField(m, "id"), "non-string values yield nil")
	assert.Nil(t, StringField(m, "note"))
	assert.Nil(t, StringField(m, "absent"))
	assert.Nil(t, StringField(nil, "name"))
}

func TestObject(t *testing.T) {
	m := map[string]any{
		"venue": map[string]any{"city": "Mumbai"},
		"runs":  []any{},
	}

	venue := Object(m, "venue")
	require.NotNil(t, venue)
	assert.Equal(t, "Mumbai", venue["city"])

	assert.Nil(t, Object(m, "runs"), "non-object values yield nil")
	assert.Nil(t, Object(m, "absent"))
	assert.Nil(t, Object(nil, "venue"))

	// Accessors over a nil object stay null-safe.
	assert.Nil(t, StringField(Object(m, "absent"), "city"))
}

func TestFirstString(t *testing.T) {
	m := map[string]any{"matchState": "stumps", "status": "done", "empty": ""}

	assert.Equal(t, "stumps", FirstString(m, "matchState", "status"))
	assert.Equal(t, "done", FirstString(m, "missing", "status"))
	assert.Equal(t, "done", FirstString(m, "empty", "status"), "empty strings are skipped")
	assert.Equal(t, "", FirstString(m, "missing"))
}

func TestFirstValue(t *testing.T) {
	m := map[string]any{"matchId": float64(10), "id": float64(20), "null": nil}

	assert.Equal(t, float64(10), FirstValue(m, "matchId", "id"))
	assert.Equal(t, float64(20), FirstValue(m, "missing", "id"))
	assert.Equal(t, float64(20), FirstValue(m, "null", "id"), "null values are skipped")
	assert.Nil(t, FirstValue(m, "missing"))
}

func TestErrorKinds(t *testing.T) {
	err := NotConfigured("key missing")
	assert.Equal(t, 501, err.Status)
	assert.Contains(t, err.Error(), "not_configured")

	err = Upstream(403, []byte("denied"))
	assert.Equal(t, 403, err.Status)
	assert.Equal(t, "denied", err.Body)

	err = Unreachable(assert.AnError)
	assert.Equal(t, 500, err.Status)
	assert.Equal(t, KindUnreachable, err.Kind)
}
