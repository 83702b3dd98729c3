package handler

import (
	"net/http"

	"github.com/pitchside/cricket-data/internal/api/respond"
	"github.com/pitchside/cricket-data/internal/external"
)

// SearchTweets returns recent tweets matching a query. A missing bearer
// token is a soft, non-error condition: the response carries an empty list
// and an explanatory note with status 200.
// @Summary Tweet search
// @Tags tweets
// @Produce json
// @Param query query string true "Handle or search query"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} respond.ErrorResponse
// @Router /api/tweets [get]
func (h *Handler) SearchTweets(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		respond.WriteError(w, http.StatusBadRequest, "BAD_REQUEST",
			"query parameter is required")
		return
	}

	if !h.twitter.IsConfigured() {
		respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
			"tweets": []external.Tweet{},
			"note":   "X_BEARER_TOKEN not configured",
		})
		return
	}

	tweets, err := h.twitter.SearchRecent(r.Context(), query)
	if err != nil {
		respond.WriteUpstreamFailure(w, err)
		return
	}

	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"tweets": tweets,
	})
}
