// SPDX-License-Identifier: MIT

package gaussian_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/trueskill/gaussian"
)

func TestCumulativeTo(t *testing.T) {
	require.InDelta(t, 0.691462, gaussian.CumulativeTo(0.5), errorTolerance)
	require.InDelta(t, 0.5, gaussian.CumulativeTo(0), 1e-15)
}

func TestAt(t *testing.T) {
	require.InDelta(t, 0.352065, gaussian.At(0.5), errorTolerance)
	require.InDelta(t, 1/math.Sqrt(2*math.Pi), gaussian.At(0), 1e-15)
}

// TestCumulativeToMatchesGonum compares the Chebyshev CDF with an
// independent implementation over a grid that includes both tails.
func TestCumulativeToMatchesGonum(t *testing.T) {
	for x := -8.0; x <= 8.0; x += 0.25 {
		want := distuv.UnitNormal.CDF(x)
		require.InDelta(t, want, gaussian.CumulativeTo(x), 1e-12, "x=%v", x)
		require.InDelta(t, distuv.UnitNormal.Prob(x), gaussian.At(x), 1e-12, "x=%v", x)
	}
}

func TestErrorFunctionCumulativeTo(t *testing.T) {
	for _, x := range []float64{-3, -1.5, -0.2, 0, 0.2, 1, 2.5, 6} {
		require.InDelta(t, math.Erfc(x), gaussian.ErrorFunctionCumulativeTo(x), 1e-13, "x=%v", x)
	}
}

func TestInverseErrorFunctionCumulativeToSaturates(t *testing.T) {
	require.Equal(t, 100.0, gaussian.InverseErrorFunctionCumulativeTo(0))
	require.Equal(t, 100.0, gaussian.InverseErrorFunctionCumulativeTo(-0.5))
	require.Equal(t, -100.0, gaussian.InverseErrorFunctionCumulativeTo(2))
	require.Equal(t, -100.0, gaussian.InverseErrorFunctionCumulativeTo(3))
}

// TestInverseCumulativeToMatchesGonum checks the Newton-refined quantile.
func TestInverseCumulativeToMatchesGonum(t *testing.T) {
	for p := 0.01; p < 1; p += 0.01 {
		want := distuv.UnitNormal.Quantile(p)
		require.InDelta(t, want, gaussian.InverseCumulativeTo(p, 0, 1), 1e-8, "p=%v", p)
	}

	n := distuv.Normal{Mu: 25, Sigma: 25.0 / 3}
	require.InDelta(t, n.Quantile(0.8), gaussian.InverseCumulativeTo(0.8, 25, 25.0/3), 1e-7)
}

func TestDrawMargin(t *testing.T) {
	beta := 25.0 / 6

	cases := []struct {
		name        string
		probability float64
		want        float64
	}{
		{"ten percent", 0.10, 0.74046637542690541},
		{"quarter", 0.25, 1.87760059883033},
		{"third", 0.33, 2.5111010132487492},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.InDelta(t, tc.want, gaussian.DrawMargin(tc.probability, beta), errorTolerance)
		})
	}

	require.InDelta(t, 0.0, gaussian.DrawMargin(0, beta), 1e-12)
}
