// SPDX-License-Identifier: MIT

// Package gaussian implements the one-dimensional Gaussian algebra and the
// truncated-Gaussian numerics that drive TrueSkill rating updates.
//
// What & Why:
//
//	A belief about a player's skill is a normal distribution. Message passing
//	multiplies and divides such beliefs all the time, so Distribution keeps the
//	precision form (precision = 1/σ², precisionMean = μ/σ²) next to the usual
//	mean/standard deviation: products and quotients become plain additions and
//	subtractions of the two precision-form parameters.
//
//	A precision of zero is the flat (uninformative) distribution returned by
//	Flat. It is a valid value: every factor-graph variable starts out flat
//	before priors are injected. All operations branch on it explicitly instead
//	of relying on IEEE division by zero.
//
// Numerics:
//
//	– CumulativeTo     standard normal CDF via a 28-term Chebyshev erfc.
//	– InverseCumulativeTo Newton-refined inverse CDF (±100 saturation at the edges).
//	– DrawMargin       ε = Φ⁻¹((p+1)/2)·√2·β.
//	– V/W functions    first and second truncated moments for the
//	                   "exceeds margin" (win) and "within margin" (draw) cases.
//
// Errors (sentinel):
//
//	– ErrNonPositiveVarianceDifference from LogRatioNormalization.
//
// Complexity:
//
//	Every function is O(1); the erfc series costs 27 multiply-adds.
package gaussian
