// SPDX-License-Identifier: MIT

package gaussian

import "math"

// tailFloor is the smallest CDF mass the V/W functions divide by. Below it
// they switch to their asymptotic forms.
const tailFloor = 2.222758749e-162

// VExceedsMargin is the additive mean correction of a Gaussian truncated to
// t > ε: φ(t−ε)/Φ(t−ε). Deep in the lower tail it degrades to ε − t.
func VExceedsMargin(t, epsilon float64) float64 {
	denominator := CumulativeTo(t - epsilon)
	if denominator < tailFloor {
		return -t + epsilon
	}

	return At(t-epsilon) / denominator
}

// VExceedsMarginScaled is VExceedsMargin(t/c, ε/c).
func VExceedsMarginScaled(t, epsilon, c float64) float64 {
	return VExceedsMargin(t/c, epsilon/c)
}

// WExceedsMargin is the multiplicative variance correction matching
// VExceedsMargin: v·(v + t − ε). Under tail underflow it is 1 for t < 0 and 0
// otherwise.
func WExceedsMargin(t, epsilon float64) float64 {
	denominator := CumulativeTo(t - epsilon)
	if denominator < tailFloor {
		if t < 0 {
			return 1
		}
		return 0
	}
	v := VExceedsMargin(t, epsilon)

	return v * (v + t - epsilon)
}

// WExceedsMarginScaled is WExceedsMargin(t/c, ε/c).
func WExceedsMarginScaled(t, epsilon, c float64) float64 {
	return WExceedsMargin(t/c, epsilon/c)
}

// VWithinMargin is the mean correction of a Gaussian truncated to |t| ≤ ε,
// used for draws. The result carries the sign of t.
func VWithinMargin(t, epsilon float64) float64 {
	absT := math.Abs(t)
	denominator := CumulativeTo(epsilon-absT) - CumulativeTo(-epsilon-absT)
	if denominator < tailFloor {
		if t < 0 {
			return -t - epsilon
		}
		return -t + epsilon
	}
	numerator := At(-epsilon-absT) - At(epsilon-absT)
	if t < 0 {
		return -numerator / denominator
	}

	return numerator / denominator
}

// VWithinMarginScaled is VWithinMargin(t/c, ε/c).
func VWithinMarginScaled(t, epsilon, c float64) float64 {
	return VWithinMargin(t/c, epsilon/c)
}

// WWithinMargin is the variance correction matching VWithinMargin. It is 1
// under tail underflow.
func WWithinMargin(t, epsilon float64) float64 {
	absT := math.Abs(t)
	denominator := CumulativeTo(epsilon-absT) - CumulativeTo(-epsilon-absT)
	if denominator < tailFloor {
		return 1
	}
	v := VWithinMargin(absT, epsilon)

	return v*v + ((epsilon-absT)*At(epsilon-absT)-(-epsilon-absT)*At(-epsilon-absT))/denominator
}

// WWithinMarginScaled is WWithinMargin(t/c, ε/c).
func WWithinMarginScaled(t, epsilon, c float64) float64 {
	return WWithinMargin(t/c, epsilon/c)
}
