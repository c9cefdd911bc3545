// SPDX-License-Identifier: MIT

package gaussian

import "math"

const (
	// negInvSqrt2 is −1/√2, the argument scale of Φ(x) = ½·erfc(−x/√2).
	negInvSqrt2 = -0.707106781186547524400844362104

	// twoOverSqrtPi is 2/√π, the derivative scale of erfc.
	twoOverSqrtPi = 1.12837916709551257

	// inverseSaturation is returned by the inverse erfc outside (0, 2).
	inverseSaturation = 100.0

	// newtonRefinements is the number of correction steps applied to the
	// rational initial guess of the inverse erfc.
	newtonRefinements = 2
)

// erfcCoefficients is the Chebyshev expansion of erfc on t = 2/(2+|x|),
// accurate to about 1e-16 relative error.
var erfcCoefficients = [28]float64{
	-1.3026537197817094, 6.4196979235649026e-1,
	1.9476473204185836e-2, -9.561514786808631e-3, -9.46595344482036e-4,
	3.66839497852761e-4, 4.2523324806907e-5, -2.0278578112534e-5,
	-1.624290004647e-6, 1.303655835580e-6, 1.5626441722e-8, -8.5238095915e-8,
	6.529054439e-9, 5.059343495e-9, -9.91364156e-10, -2.27365122e-10,
	9.6467911e-11, 2.394038e-12, -6.886027e-12, 8.94487e-13, 3.13092e-13,
	-1.12708e-13, 3.81e-16, 7.106e-15, -1.523e-15, -9.4e-17, 1.21e-16, -2.8e-17,
}

// At is the standard normal density φ(x).
func At(x float64) float64 {
	return AtWith(x, 0, 1)
}

// AtWith is the density of N(mean, stddev²) at x.
func AtWith(x, mean, stddev float64) float64 {
	d := x - mean
	return math.Exp(-d*d/(2*stddev*stddev)) / (stddev * math.Sqrt(2*math.Pi))
}

// CumulativeTo is the standard normal CDF Φ(x).
func CumulativeTo(x float64) float64 {
	return 0.5 * ErrorFunctionCumulativeTo(negInvSqrt2*x)
}

// ErrorFunctionCumulativeTo is the complementary error function erfc(x),
// evaluated with Clenshaw's recurrence over erfcCoefficients.
//
// Implementation:
//   - Stage 1: map |x| onto t = 2/(2+|x|) and ty = 4t−2 ∈ (−2, 2].
//   - Stage 2: Clenshaw recurrence from the highest coefficient down to index 1.
//   - Stage 3: reflect through erfc(−x) = 2 − erfc(x) for negative x.
func ErrorFunctionCumulativeTo(x float64) float64 {
	z := math.Abs(x)
	t := 2.0 / (2.0 + z)
	ty := 4*t - 2

	var d, dd float64
	for j := len(erfcCoefficients) - 1; j > 0; j-- {
		d, dd = ty*d-dd+erfcCoefficients[j], d
	}
	ans := t * math.Exp(-z*z+0.5*(erfcCoefficients[0]+ty*d)-dd)
	if x < 0 {
		return 2.0 - ans
	}

	return ans
}

// InverseErrorFunctionCumulativeTo inverts erfc. Arguments at or beyond the
// domain edges saturate: p ≥ 2 returns −100 and p ≤ 0 returns +100.
//
// Implementation:
//   - Stage 1: fold p into (0, 1] and take a rational initial guess.
//   - Stage 2: two Newton refinements against ErrorFunctionCumulativeTo.
//   - Stage 3: unfold the sign.
func InverseErrorFunctionCumulativeTo(p float64) float64 {
	if p >= 2 {
		return -inverseSaturation
	}
	if p <= 0 {
		return inverseSaturation
	}

	pp := p
	if p >= 1 {
		pp = 2 - p
	}
	t := math.Sqrt(-2 * math.Log(pp/2))
	x := -0.70711 * ((2.30753+t*0.27061)/(1+t*(0.99229+t*0.04481)) - t)
	for j := 0; j < newtonRefinements; j++ {
		e := ErrorFunctionCumulativeTo(x) - pp
		x += e / (twoOverSqrtPi*math.Exp(-x*x) - x*e)
	}
	if p < 1 {
		return x
	}

	return -x
}

// InverseCumulativeTo is the quantile function of N(mean, stddev²).
func InverseCumulativeTo(x, mean, stddev float64) float64 {
	return mean - math.Sqrt2*stddev*InverseErrorFunctionCumulativeTo(2*x)
}

// DrawMargin converts a draw probability into the performance-difference
// margin ε inside which a game counts as drawn: ε = Φ⁻¹((p+1)/2)·√2·β.
func DrawMargin(drawProbability, beta float64) float64 {
	return InverseCumulativeTo(0.5*(drawProbability+1), 0, 1) * math.Sqrt2 * beta
}
