package handler

import (
	"net/http"

	"github.com/pitchside/cricket-data/internal/api/respond"
)

// GetNews returns the latest cricket news from the configured RSS feeds.
// A feed that fails is skipped silently; the endpoint never fails wholesale
// due to one feed's outage.
// @Summary Latest news
// @Tags news
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/news [get]
func (h *Handler) GetNews(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"items": h.news.LatestNews(r.Context()),
	})
}
