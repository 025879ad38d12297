// Package service runs the rating simulation: it folds an ordered match
// feed into per-team rating timelines and exposes read access to them.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	repository "github.com/okian/hoopelo/internal/adapters/repository"
	"github.com/okian/hoopelo/internal/domain/identity"
	"github.com/okian/hoopelo/internal/domain/model"
	"github.com/okian/hoopelo/internal/domain/rating"
	"github.com/okian/hoopelo/internal/domain/types"
	"github.com/okian/hoopelo/pkg/logger"
	"github.com/okian/hoopelo/pkg/metrics"
)

// Side is one team's result within a processed match.
type Side struct {
	Team    string
	Before  float64
	After   float64
	Streak  int
	Bonus   float64
	Clamped bool
}

// Result describes one processed match.
type Result struct {
	Winner Side
	Loser  Side
}

// Summary describes one Run.
type Summary struct {
	RunID     string
	Processed int
	Skipped   int
	Clamped   int
}

// Engine is the simulation driver. It owns its rating store outright and
// has no internal locking: one goroutine drives it, and reads must not
// overlap a Run.
type Engine struct {
	store *repository.RatingStore
	rater *rating.Rater

	kFactor         float64
	streakBase      float64
	seed            float64
	lenient         bool
	expectedMatches int

	logger  logger.Logger
	metrics *metrics.Manager
}

// New builds an engine with every canonical team seeded.
func New(opts ...Option) *Engine {
	e := &Engine{
		kFactor:    rating.DefaultKFactor,
		streakBase: rating.DefaultStreakBase,
		seed:       rating.DefaultSeed,
		logger:     logger.Nop(),
		metrics:    metrics.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}

	e.rater = rating.NewRater(
		rating.WithKFactor(e.kFactor),
		rating.WithStreakBase(e.streakBase),
	)
	e.store = repository.NewRatingStore(identity.Teams(),
		repository.WithSeed(e.seed),
		repository.WithCapacity(e.expectedMatches),
	)

	e.metrics.UpdateTotalTeams(e.store.Count(context.Background()))
	for _, team := range identity.Teams() {
		e.metrics.UpdateTeam(team, e.store.Seed(), 0)
	}
	return e
}

// Lenient reports whether Run skips failing records.
func (e *Engine) Lenient() bool { return e.lenient }

// Process folds a single match into the ratings. Nothing is mutated when
// an error is returned.
func (e *Engine) Process(ctx context.Context, m model.Match) (Result, error) {
	if err := m.Validate(); err != nil {
		switch {
		case errors.Is(err, model.ErrInvalidOutcome):
			e.metrics.RecordInvalidOutcome()
			return Result{}, fmt.Errorf("%w: %v", ErrInvalidOutcome, err)
		case errors.Is(err, model.ErrMissingTeam):
			e.metrics.RecordUnknownEntity()
			return Result{}, fmt.Errorf("%w: %v", ErrUnknownEntity, err)
		}
		return Result{}, err
	}

	rawWinner, rawLoser := m.Winner()
	winner := identity.Resolve(rawWinner)
	loser := identity.Resolve(rawLoser)
	for _, team := range [...]string{winner, loser} {
		if !identity.IsCanonical(team) {
			e.metrics.RecordUnknownEntity()
			return Result{}, fmt.Errorf("%w: %q", ErrUnknownEntity, team)
		}
	}
	if winner == loser {
		return Result{}, fmt.Errorf("%w: %q", ErrSelfMatch, winner)
	}

	// Streaks move first so a third straight win is already rewarded in
	// this match. The loser's bonus is therefore always zero.
	winStreak, err := e.store.RecordWin(winner)
	if err != nil {
		return Result{}, err
	}
	if err := e.store.RecordLoss(loser); err != nil {
		return Result{}, err
	}
	loseStreak, err := e.store.Streak(loser)
	if err != nil {
		return Result{}, err
	}

	winBefore, err := e.store.Latest(winner)
	if err != nil {
		return Result{}, err
	}
	loseBefore, err := e.store.Latest(loser)
	if err != nil {
		return Result{}, err
	}

	winOut, err := e.rater.Rate(winBefore, rating.Expected(winBefore, loseBefore), 1, winStreak)
	if err != nil {
		return Result{}, err
	}
	loseOut, err := e.rater.Rate(loseBefore, rating.Expected(loseBefore, winBefore), 0, loseStreak)
	if err != nil {
		return Result{}, err
	}

	if err := e.store.Append(winner, winOut.Rating); err != nil {
		return Result{}, err
	}
	if err := e.store.Append(loser, loseOut.Rating); err != nil {
		return Result{}, err
	}

	res := Result{
		Winner: Side{Team: winner, Before: winBefore, After: winOut.Rating, Streak: winStreak, Bonus: winOut.Bonus, Clamped: winOut.Clamped},
		Loser:  Side{Team: loser, Before: loseBefore, After: loseOut.Rating, Streak: loseStreak, Bonus: loseOut.Bonus, Clamped: loseOut.Clamped},
	}
	e.report(ctx, res)
	return res, nil
}

func (e *Engine) report(ctx context.Context, res Result) {
	e.metrics.RecordMatchProcessed()
	for _, s := range [...]Side{res.Winner, res.Loser} {
		e.metrics.RecordRatingDelta(s.After - s.Before)
		e.metrics.UpdateTeam(s.Team, s.After, s.Streak)
		if s.Clamped {
			e.metrics.RecordFloorClamp()
			e.logger.Debug(ctx, "rating clamped at floor",
				logger.String("team", s.Team),
				logger.Float64("before", s.Before),
			)
		}
	}
}

// Run processes matches strictly in order. In strict mode the first
// failing record aborts the run and the error carries its feed position;
// in lenient mode failing records are logged and skipped whole.
func (e *Engine) Run(ctx context.Context, matches []model.Match) (Summary, error) {
	sum := Summary{RunID: uuid.NewString()}
	log := e.logger.With(logger.String("run_id", sum.RunID))
	log.Info(ctx, "simulation started",
		logger.Int("matches", len(matches)),
		logger.Bool("lenient", e.lenient),
	)

	for i, m := range matches {
		res, err := e.Process(ctx, m)
		if err != nil {
			if !e.lenient {
				log.Error(ctx, "simulation aborted",
					logger.Int("position", i),
					logger.Int("processed", sum.Processed),
					logger.Error(err),
				)
				return sum, fmt.Errorf("match %d (%s at %s): %w", i, m.Visitor, m.Home, err)
			}
			sum.Skipped++
			e.metrics.RecordMatchSkipped()
			log.Warn(ctx, "skipping match",
				logger.Int("position", i),
				logger.String("visitor", m.Visitor),
				logger.String("home", m.Home),
				logger.Error(err),
			)
			continue
		}
		sum.Processed++
		if res.Winner.Clamped {
			sum.Clamped++
		}
		if res.Loser.Clamped {
			sum.Clamped++
		}
	}

	log.Info(ctx, "simulation finished",
		logger.Int("processed", sum.Processed),
		logger.Int("skipped", sum.Skipped),
		logger.Int("clamped", sum.Clamped),
	)
	return sum, nil
}

// Ratings returns a copy of every team's rating timeline, seed first.
func (e *Engine) Ratings() map[string][]float64 {
	return e.store.Timelines()
}

// Streak returns the current win streak of the team raw resolves to.
func (e *Engine) Streak(raw string) (int, error) {
	n, err := e.store.Streak(identity.Resolve(raw))
	if errors.Is(err, repository.ErrNotFound) {
		return 0, fmt.Errorf("%w: %q", ErrUnknownEntity, raw)
	}
	return n, err
}

// History returns the rating timeline of the team raw resolves to.
func (e *Engine) History(_ context.Context, raw string) (types.History, error) {
	team := identity.Resolve(raw)
	tl, err := e.store.Timeline(team)
	if errors.Is(err, repository.ErrNotFound) {
		return types.History{}, fmt.Errorf("%w: %q", ErrUnknownEntity, raw)
	}
	if err != nil {
		return types.History{}, err
	}
	return types.History{
		Team:    team,
		Aliases: identity.Aliases(team),
		Ratings: tl,
	}, nil
}

// TopN returns the n highest-rated teams.
func (e *Engine) TopN(ctx context.Context, n int) ([]types.Entry, error) {
	entries, err := e.store.TopN(ctx, n)
	if err != nil {
		return nil, err
	}
	out := make([]types.Entry, len(entries))
	for i, entry := range entries {
		out[i] = toEntry(entry)
	}
	return out, nil
}

// Rank returns the standings row of the team raw resolves to.
func (e *Engine) Rank(ctx context.Context, raw string) (types.Entry, error) {
	entry, err := e.store.Rank(ctx, identity.Resolve(raw))
	if errors.Is(err, repository.ErrNotFound) {
		return types.Entry{}, fmt.Errorf("%w: %q", ErrUnknownEntity, raw)
	}
	if err != nil {
		return types.Entry{}, err
	}
	return toEntry(entry), nil
}

func toEntry(e repository.Entry) types.Entry {
	return types.Entry{
		Rank:   e.Rank,
		Team:   e.Team,
		Rating: e.Rating,
		Streak: e.Streak,
		Games:  e.Games,
	}
}
