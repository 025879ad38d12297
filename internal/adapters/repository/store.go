// Package repository holds per-team rating timelines and win streaks.
package repository

import (
	"context"
	"fmt"
	"sort"

	"github.com/okian/hoopelo/internal/domain/rating"
)

// Entry represents a standings row.
type Entry struct {
	Rank   int
	Team   string
	Rating float64
	Streak int
	Games  int
}

// RatingStore owns the append-only rating timeline and the win streak of
// every team. The team set is fixed at construction.
//
// A RatingStore is not safe for concurrent use; it belongs to exactly one
// simulation at a time.
type RatingStore struct {
	timelines map[string][]float64
	streaks   map[string]int
	seed      float64
	capacity  int
}

// NewRatingStore seeds every team with a one-element timeline and a zero streak.
func NewRatingStore(teams []string, opts ...Option) *RatingStore {
	s := &RatingStore{
		seed:     rating.DefaultSeed,
		capacity: 1,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.timelines = make(map[string][]float64, len(teams))
	s.streaks = make(map[string]int, len(teams))
	for _, team := range teams {
		tl := make([]float64, 1, s.capacity)
		tl[0] = s.seed
		s.timelines[team] = tl
		s.streaks[team] = 0
	}
	return s
}

// Seed returns the starting rating of every timeline.
func (s *RatingStore) Seed() float64 { return s.seed }

// Has reports whether team is tracked.
func (s *RatingStore) Has(team string) bool {
	_, ok := s.timelines[team]
	return ok
}

// Latest returns the most recent rating of team.
func (s *RatingStore) Latest(team string) (float64, error) {
	tl, ok := s.timelines[team]
	if !ok {
		return 0, fmt.Errorf("%q: %w", team, ErrNotFound)
	}
	return tl[len(tl)-1], nil
}

// Append adds the next rating to team's timeline.
func (s *RatingStore) Append(team string, value float64) error {
	tl, ok := s.timelines[team]
	if !ok {
		return fmt.Errorf("%q: %w", team, ErrNotFound)
	}
	s.timelines[team] = append(tl, value)
	return nil
}

// Streak returns the current consecutive-win count of team.
func (s *RatingStore) Streak(team string) (int, error) {
	n, ok := s.streaks[team]
	if !ok {
		return 0, fmt.Errorf("%q: %w", team, ErrNotFound)
	}
	return n, nil
}

// RecordWin extends team's streak by one and returns the new length.
func (s *RatingStore) RecordWin(team string) (int, error) {
	n, ok := s.streaks[team]
	if !ok {
		return 0, fmt.Errorf("%q: %w", team, ErrNotFound)
	}
	n++
	s.streaks[team] = n
	return n, nil
}

// RecordLoss resets team's streak.
func (s *RatingStore) RecordLoss(team string) error {
	if _, ok := s.streaks[team]; !ok {
		return fmt.Errorf("%q: %w", team, ErrNotFound)
	}
	s.streaks[team] = 0
	return nil
}

// Timeline returns a copy of team's rating history, seed first.
func (s *RatingStore) Timeline(team string) ([]float64, error) {
	tl, ok := s.timelines[team]
	if !ok {
		return nil, fmt.Errorf("%q: %w", team, ErrNotFound)
	}
	out := make([]float64, len(tl))
	copy(out, tl)
	return out, nil
}

// Timelines returns a deep copy of every team's rating history.
func (s *RatingStore) Timelines() map[string][]float64 {
	out := make(map[string][]float64, len(s.timelines))
	for team, tl := range s.timelines {
		cp := make([]float64, len(tl))
		copy(cp, tl)
		out[team] = cp
	}
	return out
}

// Count returns the number of tracked teams.
func (s *RatingStore) Count(_ context.Context) int {
	return len(s.timelines)
}

// TopN returns the n best teams by latest rating. Ties are broken by name.
func (s *RatingStore) TopN(_ context.Context, n int) ([]Entry, error) {
	if n < 1 {
		return nil, fmt.Errorf("limit %d: %w", n, ErrInvalidLimit)
	}
	all := s.standings()
	if n > len(all) {
		n = len(all)
	}
	return all[:n], nil
}

// Rank returns the standings row of team.
func (s *RatingStore) Rank(_ context.Context, team string) (Entry, error) {
	if !s.Has(team) {
		return Entry{}, fmt.Errorf("%q: %w", team, ErrNotFound)
	}
	for _, e := range s.standings() {
		if e.Team == team {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("%q: %w", team, ErrNotFound)
}

// standings orders every team by latest rating desc, then name asc.
func (s *RatingStore) standings() []Entry {
	out := make([]Entry, 0, len(s.timelines))
	for team, tl := range s.timelines {
		out = append(out, Entry{
			Team:   team,
			Rating: tl[len(tl)-1],
			Streak: s.streaks[team],
			Games:  len(tl) - 1,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Rating != out[j].Rating {
			return out[i].Rating > out[j].Rating
		}
		return out[i].Team < out[j].Team
	})
	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}
