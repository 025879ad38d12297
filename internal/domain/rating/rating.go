// Package rating implements the Elo expected-outcome model and the
// streak-aware update rule.
package rating

import (
	"fmt"
	"math"
)

// Rating model constants.
const (
	DefaultSeed       = 1200.0
	DefaultKFactor    = 20.0
	DefaultStreakBase = 1.1
	DefaultFloor      = 0.0
	// StreakThreshold is the first streak length that earns a bonus.
	StreakThreshold = 3
	// Scale is the rating gap at which the stronger side is ten times as likely to win.
	Scale = 400.0
)

// Expected returns the probability that a side rated a beats a side rated b.
func Expected(a, b float64) float64 {
	qa := math.Pow(10, a/Scale)
	qb := math.Pow(10, b/Scale)
	return qa / (qa + qb)
}

// StreakBonus returns the additive bonus earned by a win streak of the
// given length: zero below StreakThreshold, base^(streak-2) - 1 from there.
func StreakBonus(streak int, base float64) float64 {
	if streak < StreakThreshold {
		return 0
	}
	return math.Pow(base, float64(streak-2)) - 1
}

// Update applies the Elo adjustment plus bonus to orig and clamps the
// result at floor. The second return reports whether the clamp fired.
func Update(orig, expected, actual, k, bonus, floor float64) (float64, bool) {
	next := orig + k*(actual-expected) + bonus
	if next < floor {
		return floor, true
	}
	return next, false
}

// Outcome is the delta for one side of one match.
type Outcome struct {
	Rating  float64
	Delta   float64
	Bonus   float64
	Clamped bool
}

// Rater holds the tunables of the update rule.
type Rater struct {
	k          float64
	streakBase float64
	floor      float64
}

// NewRater creates a Rater with default k-factor, streak base and floor.
func NewRater(opts ...Option) *Rater {
	r := &Rater{
		k:          DefaultKFactor,
		streakBase: DefaultStreakBase,
		floor:      DefaultFloor,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// KFactor returns the configured k-factor.
func (r *Rater) KFactor() float64 { return r.k }

// StreakBase returns the configured streak multiplier.
func (r *Rater) StreakBase() float64 { return r.streakBase }

// Rate computes the next rating for one side. actual must be 0 or 1 and
// streak is the side's counter after the current match was recorded.
func (r *Rater) Rate(orig, expected float64, actual, streak int) (Outcome, error) {
	if actual != 0 && actual != 1 {
		return Outcome{}, fmt.Errorf("actual score %d: %w", actual, ErrInvalidOutcome)
	}
	bonus := StreakBonus(streak, r.streakBase)
	next, clamped := Update(orig, expected, float64(actual), r.k, bonus, r.floor)
	return Outcome{
		Rating:  next,
		Delta:   next - orig,
		Bonus:   bonus,
		Clamped: clamped,
	}, nil
}
