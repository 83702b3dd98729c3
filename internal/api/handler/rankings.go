package handler

import (
	"net/http"

	"github.com/pitchside/cricket-data/internal/api/respond"
	"github.com/pitchside/cricket-data/internal/external"
)

// GetRankings returns ICC team and player rankings for one format.
// Rankings always query the fixed public ICC source, independent of the
// active-provider configuration. Partial results are the norm: a failed
// sub-request yields an empty list, never an aggregate failure.
// @Summary ICC rankings
// @Tags rankings
// @Produce json
// @Param format query string false "Match format" Enums(test, odi, t20) default(odi)
// @Success 200 {object} external.RankingsResult
// @Failure 400 {object} respond.ErrorResponse
// @Router /api/rankings [get]
func (h *Handler) GetRankings(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = external.FormatODI
	}
	if !external.ValidFormat(format) {
		respond.WriteError(w, http.StatusBadRequest, "BAD_REQUEST",
			"format must be 'test', 'odi', or 't20'")
		return
	}

	respond.WriteJSONObject(w, http.StatusOK, h.rankings.GetRankings(r.Context(), format))
}
