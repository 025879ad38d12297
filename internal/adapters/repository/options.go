// Package repository holds per-team rating timelines and win streaks.
package repository

// Option applies a configuration option to the RatingStore.
type Option func(*RatingStore)

// WithSeed sets the rating every timeline starts from.
func WithSeed(seed float64) Option {
	return func(s *RatingStore) {
		if seed >= 0 {
			s.seed = seed
		}
	}
}

// WithCapacity pre-sizes each timeline for the expected number of games.
func WithCapacity(games int) Option {
	return func(s *RatingStore) {
		if games > 0 {
			s.capacity = games + 1
		}
	}
}
