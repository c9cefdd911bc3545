// SPDX-License-Identifier: MIT

package rating

import (
	"fmt"
	"math"

	"github.com/katalvlaran/trueskill/gaussian"
)

// DefaultConservativeMultiplier is the number of standard deviations
// subtracted from the mean by ConservativeRating.
const DefaultConservativeMultiplier = 3.0

// Rating is an immutable skill belief: mean μ and standard deviation σ.
// A zero ConservativeMultiplier stands for DefaultConservativeMultiplier, so
// a literal Rating{Mean: 25, StandardDeviation: 8} behaves like NewRating.
type Rating struct {
	Mean                   float64
	StandardDeviation      float64
	ConservativeMultiplier float64
}

// NewRating returns a rating with the default conservative multiplier of 3.
func NewRating(mean, standardDeviation float64) Rating {
	return NewRatingWithMultiplier(mean, standardDeviation, DefaultConservativeMultiplier)
}

// NewRatingWithMultiplier returns a rating with a custom conservative multiplier.
func NewRatingWithMultiplier(mean, standardDeviation, multiplier float64) Rating {
	return Rating{Mean: mean, StandardDeviation: standardDeviation, ConservativeMultiplier: multiplier}
}

// Variance returns σ².
func (r Rating) Variance() float64 { return r.StandardDeviation * r.StandardDeviation }

// ConservativeRating returns μ − k·σ, a skill the player very likely exceeds.
func (r Rating) ConservativeRating() float64 {
	k := r.ConservativeMultiplier
	if k == 0 {
		k = DefaultConservativeMultiplier
	}

	return r.Mean - k*r.StandardDeviation
}

// Distribution returns the rating as a Gaussian belief.
func (r Rating) Distribution() gaussian.Distribution {
	return gaussian.New(r.Mean, r.StandardDeviation)
}

// Validate rejects a non-finite mean and a non-finite or non-positive σ.
func (r Rating) Validate() error {
	if math.IsNaN(r.Mean) || math.IsInf(r.Mean, 0) {
		return fmt.Errorf("mean %v: %w", r.Mean, ErrInvalidRating)
	}
	if !(r.StandardDeviation > 0) || math.IsInf(r.StandardDeviation, 0) {
		return fmt.Errorf("standard deviation %v: %w", r.StandardDeviation, ErrInvalidRating)
	}

	return nil
}

// String renders "μ=25.0000, σ=8.3333".
func (r Rating) String() string {
	return fmt.Sprintf("μ=%.4f, σ=%.4f", r.Mean, r.StandardDeviation)
}

// PartialUpdate moves a prior towards a full posterior by the fraction pct,
// interpolating in precision form. pct = 1 returns the posterior and pct = 0
// the prior. The prior's conservative multiplier is kept.
//
// Implementation:
//   - Stage 1: convert both ratings into precision and precision-mean.
//   - Stage 2: p' = p_prior + pct·(p_post − p_prior), same for the precision mean.
//   - Stage 3: convert back to (μ, σ).
func PartialUpdate(prior, posterior Rating, pct float64) Rating {
	priorDist := prior.Distribution()
	postDist := posterior.Distribution()

	precision := priorDist.Precision() + pct*(postDist.Precision()-priorDist.Precision())
	precisionMean := priorDist.PrecisionMean() + pct*(postDist.PrecisionMean()-priorDist.PrecisionMean())
	partial := gaussian.FromPrecisionMean(precisionMean, precision)

	return NewRatingWithMultiplier(partial.Mean(), partial.StandardDeviation(), prior.ConservativeMultiplier)
}
