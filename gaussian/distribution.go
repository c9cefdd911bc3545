// SPDX-License-Identifier: MIT

package gaussian

import (
	"fmt"
	"math"
)

// logSqrt2Pi is log(√(2π)), shared by the normalisation constants.
var logSqrt2Pi = math.Log(math.Sqrt(2 * math.Pi))

// Distribution is an immutable normal distribution N(μ, σ²) that also carries
// its precision-form parameters. The zero value is the flat distribution.
type Distribution struct {
	mean          float64
	stddev        float64
	variance      float64
	precision     float64
	precisionMean float64
}

// New returns N(mean, stddev²). stddev must be positive.
func New(mean, stddev float64) Distribution {
	variance := stddev * stddev

	return Distribution{
		mean:          mean,
		stddev:        stddev,
		variance:      variance,
		precision:     1 / variance,
		precisionMean: mean / variance,
	}
}

// FromPrecisionMean builds a distribution from its precision-form parameters.
// A zero precision yields Flat regardless of precisionMean.
//
// Implementation:
//   - Stage 1: precision == 0 short-circuits to the flat distribution.
//   - Stage 2: mean = precisionMean/precision, variance = 1/precision.
func FromPrecisionMean(precisionMean, precision float64) Distribution {
	if precision == 0 {
		return Flat()
	}
	variance := 1 / precision

	return Distribution{
		mean:          precisionMean / precision,
		stddev:        math.Sqrt(variance),
		variance:      variance,
		precision:     precision,
		precisionMean: precisionMean,
	}
}

// Flat returns the uninformative distribution: precision 0, mean 0 and an
// infinite variance. It is the identity of Mul and Div.
func Flat() Distribution {
	return Distribution{
		stddev:   math.Inf(1),
		variance: math.Inf(1),
	}
}

// Mean returns μ.
func (d Distribution) Mean() float64 { return d.mean }

// StandardDeviation returns σ.
func (d Distribution) StandardDeviation() float64 { return d.stddev }

// Variance returns σ².
func (d Distribution) Variance() float64 { return d.variance }

// Precision returns 1/σ².
func (d Distribution) Precision() float64 { return d.precision }

// PrecisionMean returns μ/σ².
func (d Distribution) PrecisionMean() float64 { return d.precisionMean }

// IsFlat reports whether d carries no information.
func (d Distribution) IsFlat() bool { return d.precision == 0 }

// NormalizationConstant is 1/(σ√(2π)); zero for the flat distribution.
func (d Distribution) NormalizationConstant() float64 {
	if d.IsFlat() {
		return 0
	}

	return 1 / (math.Sqrt(2*math.Pi) * d.stddev)
}

// At evaluates the density of d at x.
func (d Distribution) At(x float64) float64 {
	return AtWith(x, d.mean, d.stddev)
}

// String renders μ and σ with four decimals.
func (d Distribution) String() string {
	return fmt.Sprintf("μ=%.4f, σ=%.4f", d.mean, d.stddev)
}

// Mul returns the (unnormalised) product of two densities, which is again
// Gaussian: precisions and precision means add.
func Mul(a, b Distribution) Distribution {
	return FromPrecisionMean(a.precisionMean+b.precisionMean, a.precision+b.precision)
}

// Div returns the quotient a/b. Dividing by the flat distribution is the
// identity.
func Div(a, b Distribution) Distribution {
	if b.IsFlat() && b.precisionMean == 0 {
		return a
	}

	return FromPrecisionMean(a.precisionMean-b.precisionMean, a.precision-b.precision)
}

// AbsoluteDifference measures how far apart two beliefs are:
// max(|Δ precisionMean|, √|Δ precision|). The factor graph uses it as the
// convergence signal of a message update.
func AbsoluteDifference(a, b Distribution) float64 {
	return math.Max(
		math.Abs(a.precisionMean-b.precisionMean),
		math.Sqrt(math.Abs(a.precision-b.precision)),
	)
}

// LogProductNormalization returns the log of the normalising constant of
// a·b. Flat operands contribute nothing and yield 0.
func LogProductNormalization(a, b Distribution) float64 {
	if a.IsFlat() || b.IsFlat() {
		return 0
	}
	varianceSum := a.variance + b.variance
	meanDiff := a.mean - b.mean

	return -logSqrt2Pi - math.Log(varianceSum)/2 - meanDiff*meanDiff/(2*varianceSum)
}

// LogRatioNormalization returns the log of the normalising constant of
// numerator/denominator. Flat operands yield 0.
//
// Errors:
//   - ErrNonPositiveVarianceDifference when var(denominator) ≤ var(numerator).
func LogRatioNormalization(numerator, denominator Distribution) (float64, error) {
	if numerator.IsFlat() || denominator.IsFlat() {
		return 0, nil
	}
	varianceDiff := denominator.variance - numerator.variance
	if varianceDiff <= 0 {
		return 0, fmt.Errorf("LogRatioNormalization(%s / %s): %w",
			numerator, denominator, ErrNonPositiveVarianceDifference)
	}
	meanDiff := numerator.mean - denominator.mean

	return math.Log(denominator.variance) + logSqrt2Pi -
		math.Log(varianceDiff)/2 + meanDiff*meanDiff/(2*varianceDiff), nil
}
