// SPDX-License-Identifier: MIT

package gaussian_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/trueskill/gaussian"
)

func TestVExceedsMargin(t *testing.T) {
	// φ(0)/Φ(0) = 2/√(2π)
	require.InDelta(t, 2/math.Sqrt(2*math.Pi), gaussian.VExceedsMargin(0, 0), errorTolerance)

	for _, x := range []float64{-4, -1, 0.3, 2} {
		want := distuv.UnitNormal.Prob(x-0.5) / distuv.UnitNormal.CDF(x-0.5)
		require.InDelta(t, want, gaussian.VExceedsMargin(x, 0.5), 1e-9, "t=%v", x)
	}

	// deep lower tail switches to the asymptote ε − t
	require.Equal(t, 41.0, gaussian.VExceedsMargin(-40, 1))
}

func TestWExceedsMargin(t *testing.T) {
	v := gaussian.VExceedsMargin(0, 0)
	require.InDelta(t, v*v, gaussian.WExceedsMargin(0, 0), errorTolerance)

	for _, x := range []float64{-3, -0.5, 0, 1.5, 4} {
		w := gaussian.WExceedsMargin(x, 0.74)
		require.Greater(t, w, 0.0)
		require.Less(t, w, 1.0)
	}

	require.Equal(t, 1.0, gaussian.WExceedsMargin(-40, 0))
}

func TestVWithinMargin(t *testing.T) {
	require.Zero(t, gaussian.VWithinMargin(0, 0.74))

	// odd in t
	require.InDelta(t, -gaussian.VWithinMargin(1.2, 0.74), gaussian.VWithinMargin(-1.2, 0.74), errorTolerance)

	// asymptotic branches keep the sign convention
	require.Equal(t, -39.0, gaussian.VWithinMargin(40, 1))
	require.Equal(t, 39.0, gaussian.VWithinMargin(-40, 1))
}

func TestWWithinMargin(t *testing.T) {
	for _, x := range []float64{-2, -0.3, 0, 0.3, 2} {
		w := gaussian.WWithinMargin(x, 0.74)
		require.Greater(t, w, 0.0)
		require.Less(t, w, 1.0)
	}
	// even in t
	require.InDelta(t, gaussian.WWithinMargin(1.1, 0.5), gaussian.WWithinMargin(-1.1, 0.5), errorTolerance)

	require.Equal(t, 1.0, gaussian.WWithinMargin(40, 1))
}

func TestScaledVariantsDivideBothArguments(t *testing.T) {
	const c = 2.5
	require.Equal(t, gaussian.VExceedsMargin(1.2, 0.4), gaussian.VExceedsMarginScaled(3, 1, c))
	require.Equal(t, gaussian.WExceedsMargin(1.2, 0.4), gaussian.WExceedsMarginScaled(3, 1, c))
	require.Equal(t, gaussian.VWithinMargin(1.2, 0.4), gaussian.VWithinMarginScaled(3, 1, c))
	require.Equal(t, gaussian.WWithinMargin(1.2, 0.4), gaussian.WWithinMarginScaled(3, 1, c))
}
