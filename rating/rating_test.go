// SPDX-License-Identifier: MIT

package rating_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trueskill/rating"
)

func TestDefaultGameInfo(t *testing.T) {
	gi := rating.DefaultGameInfo()
	require.NoError(t, gi.Validate())
	assert.InDelta(t, 25.0, gi.InitialMean, 1e-12)
	assert.InDelta(t, 25.0/3, gi.InitialStandardDeviation, 1e-12)
	assert.InDelta(t, 25.0/6, gi.Beta, 1e-12)
	assert.InDelta(t, 25.0/300, gi.DynamicsFactor, 1e-12)
	assert.InDelta(t, 0.10, gi.DrawProbability, 1e-12)

	r := gi.DefaultRating()
	assert.Equal(t, rating.NewRating(25, 25.0/3), r)
}

func TestGameInfoValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*rating.GameInfo)
	}{
		{"nan mean", func(g *rating.GameInfo) { g.InitialMean = math.NaN() }},
		{"infinite mean", func(g *rating.GameInfo) { g.InitialMean = math.Inf(1) }},
		{"zero sigma", func(g *rating.GameInfo) { g.InitialStandardDeviation = 0 }},
		{"negative beta", func(g *rating.GameInfo) { g.Beta = -1 }},
		{"negative tau", func(g *rating.GameInfo) { g.DynamicsFactor = -0.1 }},
		{"draw above one", func(g *rating.GameInfo) { g.DrawProbability = 1.5 }},
		{"draw below zero", func(g *rating.GameInfo) { g.DrawProbability = -0.01 }},
		{"infinite beta", func(g *rating.GameInfo) { g.Beta = math.Inf(1) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gi := rating.DefaultGameInfo()
			tc.mutate(&gi)
			err := gi.Validate()
			require.Error(t, err)
			require.True(t, errors.Is(err, rating.ErrInvalidGameInfo))
		})
	}
}

func TestNewGameInfo(t *testing.T) {
	gi, err := rating.NewGameInfo(1200, 400, 200, 4, 0.03)
	require.NoError(t, err)
	assert.Equal(t, 200.0, gi.Beta)

	// zero dynamics and zero draw probability are legal
	_, err = rating.NewGameInfo(25, 8, 4, 0, 0)
	require.NoError(t, err)

	_, err = rating.NewGameInfo(25, 8, 4, 0, 2)
	require.ErrorIs(t, err, rating.ErrInvalidGameInfo)
}

func TestRatingDerivedValues(t *testing.T) {
	r := rating.NewRating(25, 25.0/3)
	assert.InDelta(t, 0.0, r.ConservativeRating(), 1e-12)
	assert.InDelta(t, 625.0/9, r.Variance(), 1e-12)
	assert.Equal(t, "μ=25.0000, σ=8.3333", r.String())

	custom := rating.NewRatingWithMultiplier(30, 2, 2)
	assert.InDelta(t, 26.0, custom.ConservativeRating(), 1e-12)

	literal := rating.Rating{Mean: 30, StandardDeviation: 2}
	assert.InDelta(t, 24.0, literal.ConservativeRating(), 1e-12)

	d := r.Distribution()
	assert.InDelta(t, r.Mean, d.Mean(), 1e-12)
	assert.InDelta(t, r.StandardDeviation, d.StandardDeviation(), 1e-12)
}

func TestRatingValidate(t *testing.T) {
	require.NoError(t, rating.NewRating(0, 1).Validate())
	require.ErrorIs(t, rating.NewRating(math.NaN(), 1).Validate(), rating.ErrInvalidRating)
	require.ErrorIs(t, rating.NewRating(1, 0).Validate(), rating.ErrInvalidRating)
	require.ErrorIs(t, rating.NewRating(1, math.NaN()).Validate(), rating.ErrInvalidRating)
	require.ErrorIs(t, rating.NewRating(1, math.Inf(1)).Validate(), rating.ErrInvalidRating)
}

func TestPartialUpdate(t *testing.T) {
	prior := rating.NewRating(25, 25.0/3)
	posterior := rating.NewRating(29.39583, 7.17148)

	full := rating.PartialUpdate(prior, posterior, 1)
	assert.InDelta(t, posterior.Mean, full.Mean, 1e-9)
	assert.InDelta(t, posterior.StandardDeviation, full.StandardDeviation, 1e-9)

	none := rating.PartialUpdate(prior, posterior, 0)
	assert.InDelta(t, prior.Mean, none.Mean, 1e-9)
	assert.InDelta(t, prior.StandardDeviation, none.StandardDeviation, 1e-9)

	// halfway in precision form, not in (μ, σ)
	half := rating.PartialUpdate(prior, posterior, 0.5)
	pPrior := 1 / prior.Variance()
	pPost := 1 / posterior.Variance()
	wantPrecision := (pPrior + pPost) / 2
	wantPrecisionMean := (prior.Mean*pPrior + posterior.Mean*pPost) / 2
	assert.InDelta(t, wantPrecisionMean/wantPrecision, half.Mean, 1e-9)
	assert.InDelta(t, math.Sqrt(1/wantPrecision), half.StandardDeviation, 1e-9)
	assert.Greater(t, half.Mean, prior.Mean)
	assert.Less(t, half.Mean, posterior.Mean)
}
