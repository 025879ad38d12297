package service

import (
	"github.com/okian/hoopelo/pkg/logger"
	"github.com/okian/hoopelo/pkg/metrics"
)

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithLogger sets a custom logger for the engine.
func WithLogger(l logger.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithMetrics sets the metrics manager the engine reports to.
func WithMetrics(m *metrics.Manager) Option {
	return func(e *Engine) {
		if m != nil {
			e.metrics = m
		}
	}
}

// WithKFactor sets the maximum base adjustment per match.
func WithKFactor(k float64) Option {
	return func(e *Engine) {
		if k > 0 {
			e.kFactor = k
		}
	}
}

// WithStreakBase sets the win-streak bonus multiplier.
func WithStreakBase(base float64) Option {
	return func(e *Engine) {
		if base >= 1 {
			e.streakBase = base
		}
	}
}

// WithSeedRating sets every team's starting rating.
func WithSeedRating(seed float64) Option {
	return func(e *Engine) {
		if seed >= 0 {
			e.seed = seed
		}
	}
}

// WithLenient makes Run skip and log records that cannot be processed
// instead of aborting.
func WithLenient(lenient bool) Option {
	return func(e *Engine) {
		e.lenient = lenient
	}
}

// WithExpectedMatches pre-sizes each timeline for n games per team.
func WithExpectedMatches(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.expectedMatches = n
		}
	}
}
