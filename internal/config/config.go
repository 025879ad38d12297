// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - External errors must be wrapped with this package's sentinel kinds.
package config

import (
	"fmt"

	"github.com/okian/hoopelo/internal/domain/rating"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":9080".
	Addr string `koanf:"addr"`

	// FeedPath points at the CSV match feed to replay.
	FeedPath string `koanf:"feed_path"`

	// DedupeFeed drops repeated games from overlapping scrapes.
	DedupeFeed bool `koanf:"dedupe_feed"`

	// KFactor is the maximum base adjustment per match.
	KFactor float64 `koanf:"k_factor"`

	// StreakBase is the multiplier of the win-streak bonus.
	StreakBase float64 `koanf:"streak_base"`

	// SeedRating is every team's starting rating.
	SeedRating float64 `koanf:"seed_rating"`

	// Lenient skips records naming unknown teams instead of aborting the run.
	Lenient bool `koanf:"lenient"`

	// ExpectedMatches pre-sizes each team's timeline.
	ExpectedMatches int `koanf:"expected_matches"`

	// MaxStandingsLimit caps GET /standings?limit.
	MaxStandingsLimit int `koanf:"max_standings_limit"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:          "info",
		Addr:              ":9080",
		FeedPath:          "data/games.csv",
		KFactor:           rating.DefaultKFactor,
		StreakBase:        rating.DefaultStreakBase,
		SeedRating:        rating.DefaultSeed,
		Lenient:           false,
		ExpectedMatches:   82,
		MaxStandingsLimit: 30,
	}
}

// Validate reports the first setting the engine cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("addr must not be empty: %w", ErrInvalidConfig)
	case c.KFactor <= 0:
		return fmt.Errorf("k_factor must be positive, got %v: %w", c.KFactor, ErrInvalidConfig)
	case c.StreakBase < 1:
		return fmt.Errorf("streak_base must be at least 1, got %v: %w", c.StreakBase, ErrInvalidConfig)
	case c.SeedRating < 0:
		return fmt.Errorf("seed_rating must not be negative, got %v: %w", c.SeedRating, ErrInvalidConfig)
	case c.ExpectedMatches < 0:
		return fmt.Errorf("expected_matches must not be negative, got %d: %w", c.ExpectedMatches, ErrInvalidConfig)
	case c.MaxStandingsLimit < 1:
		return fmt.Errorf("max_standings_limit must be positive, got %d: %w", c.MaxStandingsLimit, ErrInvalidConfig)
	}
	return nil
}
