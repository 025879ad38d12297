// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/okian/hoopelo/internal/domain/types"
)

// TeamDependencies defines the interface for single-team lookups.
type TeamDependencies interface {
	History(ctx context.Context, team string) (types.History, error)
	Rank(ctx context.Context, team string) (Entry, error)
}

// TeamHandler handles team requests.
type TeamHandler struct {
	deps TeamDependencies
}

// NewTeamHandler creates a new team handler.
func NewTeamHandler(deps TeamDependencies) *TeamHandler {
	return &TeamHandler{deps: deps}
}

type teamResponse struct {
	Entry
	Aliases []string  `json:"aliases,omitempty"`
	Ratings []float64 `json:"ratings"`
}

// HandleGetTeam handles GET /teams/{name} requests. Historical names are
// resolved to their current franchise.
func (h *TeamHandler) HandleGetTeam(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	raw := strings.TrimPrefix(r.URL.EscapedPath(), "/teams/")
	name, err := url.PathUnescape(raw)
	if err != nil || strings.TrimSpace(name) == "" {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}

	history, err := h.deps.History(r.Context(), name)
	if err != nil {
		h.fail(w, err)
		return
	}
	entry, err := h.deps.Rank(r.Context(), history.Team)
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, teamResponse{
		Entry:   entry,
		Aliases: history.Aliases,
		Ratings: history.Ratings,
	})
}

func (h *TeamHandler) fail(w http.ResponseWriter, err error) {
	if isNotFound(err) {
		writeError(w, http.StatusNotFound, "not_found", err)
		return
	}
	writeError(w, http.StatusInternalServerError, "internal_error", err)
}
