package rating

// Option applies a configuration option to the Rater.
type Option func(*Rater)

// WithKFactor sets the maximum base adjustment per match.
func WithKFactor(k float64) Option {
	return func(r *Rater) {
		if k > 0 {
			r.k = k
		}
	}
}

// WithStreakBase sets the multiplier used by the win-streak bonus.
func WithStreakBase(base float64) Option {
	return func(r *Rater) {
		if base >= 1 {
			r.streakBase = base
		}
	}
}

// WithFloor sets the lowest rating a team can be left with.
func WithFloor(floor float64) Option {
	return func(r *Rater) {
		r.floor = floor
	}
}
