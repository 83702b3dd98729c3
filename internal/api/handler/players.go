package handler

import (
	"net/http"

	"github.com/pitchside/cricket-data/internal/api/respond"
	"github.com/pitchside/cricket-data/internal/provider"
)

// trendingPlayers is the curated trending list. No upstream call is made;
// in production this would be derived from API popularity or stats.
var trendingPlayers = []provider.TrendingPlayer{
	{Name: "Virat Kohli", Country: "India", Handle: "imVkohli", Image: "https://pbs.twimg.com/profile_images/1390384696942200832/0B8zW0gq_400x400.jpg"},
	{Name: "Joe Root", Country: "England", Handle: "root66", Image: "https://pbs.twimg.com/profile_images/1334100239247923202/0YfYxQyW_400x400.jpg"},
	{Name: "Babar Azam", Country: "Pakistan", Handle: "babarazam258", Image: "https://pbs.twimg.com/profile_images/1674019404247615488/1jWkQd2w_400x400.jpg"},
	{Name: "Kane Williamson", Country: "New Zealand", Handle: "", Image: ""},
	{Name: "Pat Cummins", Country: "Australia", Handle: "patcummins30", Image: ""},
}

// GetTrendingPlayers returns the curated trending player list.
// @Summary Trending players
// @Tags players
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/trending-players [get]
func (h *Handler) GetTrendingPlayers(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"players": trendingPlayers,
	})
}
