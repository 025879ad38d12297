package api

import "net/http"

// RatingsDependencies exposes the full rating timelines.
type RatingsDependencies interface {
	Ratings() map[string][]float64
}

// RatingsHandler handles GET /ratings.
type RatingsHandler struct {
	deps RatingsDependencies
}

// NewRatingsHandler creates a new ratings handler.
func NewRatingsHandler(deps RatingsDependencies) *RatingsHandler {
	return &RatingsHandler{deps: deps}
}

// HandleGetRatings returns every team's timeline, seed first.
func (h *RatingsHandler) HandleGetRatings(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.Ratings())
}
