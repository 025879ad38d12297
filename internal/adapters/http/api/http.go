// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"

	repository "github.com/okian/hoopelo/internal/adapters/repository"
	app "github.com/okian/hoopelo/internal/app"
	"github.com/okian/hoopelo/internal/domain/types"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to the engine.
type Dependencies interface {
	StandingsDependencies
	TeamDependencies
	RatingsDependencies
}

// Entry mirrors the read shape returned by standings queries.
type Entry = types.Entry

// Server wires HTTP routes for the read API.
type Server struct {
	healthHandler    *HealthHandler
	standingsHandler *StandingsHandler
	teamHandler      *TeamHandler
	ratingsHandler   *RatingsHandler
	metricsHandler   http.Handler
}

// NewServer creates a new API server with all handlers. Metrics are served
// from registry; maxLimit caps GET /standings?limit.
func NewServer(deps Dependencies, registry *prometheus.Registry, maxLimit int) *Server {
	return &Server{
		healthHandler:    NewHealthHandler(),
		standingsHandler: NewStandingsHandler(deps, maxLimit),
		teamHandler:      NewTeamHandler(deps),
		ratingsHandler:   NewRatingsHandler(deps),
		metricsHandler:   newMetricsHandler(registry),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.Handle("/metrics", s.metricsHandler)
	mux.HandleFunc("/standings", MetricsMiddleware(s.standingsHandler.HandleGetStandings, "standings"))
	mux.HandleFunc("/teams/", MetricsMiddleware(s.teamHandler.HandleGetTeam, "teams"))
	mux.HandleFunc("/ratings", MetricsMiddleware(s.ratingsHandler.HandleGetRatings, "ratings"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// isNotFound reports whether err names a team the engine does not track.
func isNotFound(err error) bool {
	return errors.Is(err, app.ErrUnknownEntity) ||
		errors.Is(err, repository.ErrNotFound) ||
		errors.Is(err, ErrNotFound)
}
