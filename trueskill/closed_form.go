// SPDX-License-Identifier: MIT

package trueskill

import (
	"math"

	"github.com/katalvlaran/trueskill/gaussian"
	"github.com/katalvlaran/trueskill/rating"
)

// outcome is a match result from one side's point of view.
type outcome int

const (
	lose outcome = -1
	draw outcome = 0
	win  outcome = 1
)

// outcomeOf returns team i's result in a two-team match.
func outcomeOf(i, winner int, isDraw bool) outcome {
	switch {
	case isDraw:
		return draw
	case i == winner:
		return win
	default:
		return lose
	}
}

// moments returns the truncated-Gaussian corrections v and w for a side
// whose aggregate mean is self against other, plus the sign its mean moves
// in. Decisive results are measured from the winner's side; draws from the
// side being updated.
func (o outcome) moments(self, other, drawMargin, c float64) (v, w, sign float64) {
	switch o {
	case draw:
		t := self - other
		return gaussian.VWithinMarginScaled(t, drawMargin, c), gaussian.WWithinMarginScaled(t, drawMargin, c), 1
	case win:
		t := self - other
		return gaussian.VExceedsMarginScaled(t, drawMargin, c), gaussian.WExceedsMarginScaled(t, drawMargin, c), 1
	default:
		t := other - self
		return gaussian.VExceedsMarginScaled(t, drawMargin, c), gaussian.WExceedsMarginScaled(t, drawMargin, c), -1
	}
}

// closedFormUpdate moves one rating given the match-level corrections.
//
//	μ' = μ + sign·(σ²+τ²)/c·v
//	σ' = √((σ²+τ²)·(1 − w·(σ²+τ²)/c²))
func closedFormUpdate(gameInfo rating.GameInfo, r rating.Rating, v, w, sign, c float64) rating.Rating {
	varianceWithDynamics := r.Variance() + gameInfo.DynamicsFactor*gameInfo.DynamicsFactor
	mean := r.Mean + sign*(varianceWithDynamics/c)*v
	stddev := math.Sqrt(varianceWithDynamics * (1 - w*varianceWithDynamics/(c*c)))

	return rating.NewRatingWithMultiplier(mean, stddev, r.ConservativeMultiplier)
}

// drawQuality is the closed-form probability of a draw between two sides
// with n players in total:
//
//	√(nβ²/(nβ²+Σσ²)) · exp(−Δμ²/(2(nβ²+Σσ²)))
func drawQuality(n int, beta, varianceSum, meanDelta float64) float64 {
	nBetaSquared := float64(n) * beta * beta
	denominator := nBetaSquared + varianceSum

	return math.Sqrt(nBetaSquared/denominator) * math.Exp(-meanDelta*meanDelta/(2*denominator))
}
