// Package metrics provides Prometheus metrics for the hoopelo rating engine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Default histogram layouts.
var (
	defaultDeltaBuckets   = []float64{-20, -15, -10, -5, -2, 0, 2, 5, 10, 15, 20, 30} //nolint:gochecknoglobals // bucket layout
	defaultLatencyBuckets = []float64{0.5, 1, 2, 5, 10, 25, 50, 100, 250, 500}      //nolint:gochecknoglobals // bucket layout
)

// Manager owns every collector of the service on a single registry.
type Manager struct {
	namespace      string
	subsystem      string
	deltaBuckets   []float64
	latencyBuckets []float64
	registry       *prometheus.Registry

	// Engine metrics
	matchesProcessed prometheus.Counter
	matchesSkipped   prometheus.Counter
	unknownEntities  prometheus.Counter
	invalidOutcomes  prometheus.Counter
	floorClamps      prometheus.Counter
	ratingDelta      prometheus.Histogram
	teamRating       *prometheus.GaugeVec
	teamStreak       *prometheus.GaugeVec
	totalTeams       prometheus.Gauge

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager()
}

// NewManager creates a metrics manager. Without WithPrometheusRegistry it
// registers on a fresh registry so default Go collectors stay out.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:      "hoopelo",
		subsystem:      "elo",
		deltaBuckets:   defaultDeltaBuckets,
		latencyBuckets: defaultLatencyBuckets,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.registry == nil {
		m.registry = prometheus.NewRegistry()
	}

	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.matchesProcessed = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "matches_processed_total",
		Help:      "Total number of match records folded into the ratings",
	})

	m.matchesSkipped = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "matches_skipped_total",
		Help:      "Total number of match records skipped in lenient mode",
	})

	m.unknownEntities = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "unknown_entities_total",
		Help:      "Total number of records naming a team outside the canonical set",
	})

	m.invalidOutcomes = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "invalid_outcomes_total",
		Help:      "Total number of records rejected for a non-binary outcome",
	})

	m.floorClamps = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "floor_clamps_total",
		Help:      "Total number of ratings raised to the floor",
	})

	m.ratingDelta = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "rating_delta",
		Help:      "Per-side rating change of each processed match",
		Buckets:   m.deltaBuckets,
	})

	m.teamRating = auto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "team_rating",
		Help:      "Latest rating of each team",
	}, []string{"team"})

	m.teamStreak = auto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "team_win_streak",
		Help:      "Current consecutive wins of each team",
	}, []string{"team"})

	m.totalTeams = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "total_teams",
		Help:      "Number of teams tracked by the engine",
	})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total number of HTTP requests by endpoint and method",
	}, []string{"endpoint", "method", "status_code"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "request_duration_milliseconds",
		Help:      "HTTP request duration in milliseconds",
		Buckets:   m.latencyBuckets,
	}, []string{"endpoint", "method", "status_code"})
}

// Registry returns the registry the manager's collectors live on.
func (m *Manager) Registry() *prometheus.Registry { return m.registry }

// RecordMatchProcessed increments the processed matches counter.
func (m *Manager) RecordMatchProcessed() { m.matchesProcessed.Inc() }

// RecordMatchSkipped increments the skipped matches counter.
func (m *Manager) RecordMatchSkipped() { m.matchesSkipped.Inc() }

// RecordUnknownEntity increments the unknown team counter.
func (m *Manager) RecordUnknownEntity() { m.unknownEntities.Inc() }

// RecordInvalidOutcome increments the invalid outcome counter.
func (m *Manager) RecordInvalidOutcome() { m.invalidOutcomes.Inc() }

// RecordFloorClamp increments the floor clamp counter.
func (m *Manager) RecordFloorClamp() { m.floorClamps.Inc() }

// RecordRatingDelta observes one side's rating change.
func (m *Manager) RecordRatingDelta(delta float64) { m.ratingDelta.Observe(delta) }

// UpdateTeam sets a team's latest rating and streak.
func (m *Manager) UpdateTeam(team string, rating float64, streak int) {
	m.teamRating.WithLabelValues(team).Set(rating)
	m.teamStreak.WithLabelValues(team).Set(float64(streak))
}

// UpdateTotalTeams sets the number of tracked teams.
func (m *Manager) UpdateTotalTeams(count int) { m.totalTeams.Set(float64(count)) }

// RecordHTTPRequest records an HTTP request and its duration.
func (m *Manager) RecordHTTPRequest(endpoint, method, statusCode string, durationMs float64) {
	m.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
	m.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// Default returns the process-wide manager.
func Default() *Manager {
	return globalManager
}

// RecordHTTPRequest records an HTTP request on the process-wide manager.
func RecordHTTPRequest(endpoint, method, statusCode string, durationMs float64) {
	globalManager.RecordHTTPRequest(endpoint, method, statusCode, durationMs)
}

// GetRegistry returns the registry of the process-wide manager.
func GetRegistry() *prometheus.Registry {
	return globalManager.registry
}
