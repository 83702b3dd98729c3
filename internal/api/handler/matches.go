package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pitchside/cricket-data/internal/api/respond"
	"github.com/pitchside/cricket-data/internal/provider"
)

// ListMatches returns simplified match cards for one list category.
// @Summary List matches
// @Description Returns normalized match summaries for the requested category from the active provider.
// @Tags matches
// @Produce json
// @Param type query string false "Match list category" Enums(live, upcoming, completed) default(live)
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} respond.ErrorResponse
// @Failure 501 {object} respond.ErrorResponse
// @Router /api/matches [get]
func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	matchType, ok := provider.ParseMatchType(r.URL.Query().Get("type"))
	if !ok {
		respond.WriteError(w, http.StatusBadRequest, "BAD_REQUEST",
			"type must be 'live', 'upcoming', or 'completed'")
		return
	}

	matches, err := h.matches.ListMatches(r.Context(), matchType)
	if err != nil {
		respond.WriteUpstreamFailure(w, err)
		return
	}

	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"type":    string(matchType),
		"matches": matches,
	})
}

// MatchDetail returns the provider-native detail payload for one match:
// commentary, scoreboards, lineups. Deliberately not normalized — consumers
// depend on the richer nested shape of the active provider.
// @Summary Match detail
// @Tags matches
// @Produce json
// @Param match_id path string true "Match ID"
// @Success 200 {object} map[string]interface{}
// @Failure 501 {object} respond.ErrorResponse
// @Router /api/match/{match_id} [get]
func (h *Handler) MatchDetail(w http.ResponseWriter, r *http.Request) {
	matchID := chi.URLParam(r, "match_id")

	raw, err := h.matches.MatchDetail(r.Context(), matchID)
	if err != nil {
		respond.WriteUpstreamFailure(w, err)
		return
	}

	respond.WriteRawJSON(w, http.StatusOK, raw)
}
