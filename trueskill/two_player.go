// SPDX-License-Identifier: MIT

package trueskill

import (
	"math"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/trueskill/gaussian"
	"github.com/katalvlaran/trueskill/rating"
)

// TwoPlayerCalculator rates head-to-head matches in closed form.
// It accepts exactly two teams of exactly one player and ignores partial
// play and partial update.
type TwoPlayerCalculator struct {
	calculatorBase
}

// NewTwoPlayerCalculator returns a calculator configured by opts.
func NewTwoPlayerCalculator(opts ...Option) *TwoPlayerCalculator {
	return &TwoPlayerCalculator{calculatorBase{
		name:      "two-player",
		supported: NoOptions,
		teams:     rating.Exactly(2),
		players:   rating.Exactly(1),
		opts:      buildOptions(opts),
	}}
}

// CalculateNewRatings implements SkillCalculator.
//
//	c² = σ₁² + σ₂² + 2β²
//
// τ enters only through each player's own variance.
func (c *TwoPlayerCalculator) CalculateNewRatings(gameInfo rating.GameInfo, teams []*rating.Team, ranks []int) ([]rating.Result, error) {
	if err := c.validateMatch(gameInfo, teams, ranks); err != nil {
		return nil, err
	}
	winner, _, isDraw := teamPair(ranks)
	players := [2]rating.Member{teams[0].Members()[0], teams[1].Members()[0]}

	drawMargin := gaussian.DrawMargin(gameInfo.DrawProbability, gameInfo.Beta)
	cc := math.Sqrt(players[0].Rating.Variance() + players[1].Rating.Variance() + 2*gameInfo.Beta*gameInfo.Beta)

	results := make([]rating.Result, 2)
	for i, self := range players {
		other := players[1-i]
		v, w, sign := outcomeOf(i, winner, isDraw).moments(self.Rating.Mean, other.Rating.Mean, drawMargin, cc)
		results[i] = rating.Result{
			Player: self.Player,
			Rating: closedFormUpdate(gameInfo, self.Rating, v, w, sign, cc),
		}
	}

	c.logger().WithFields(logrus.Fields{
		"draw": isDraw,
		"c":    cc,
	}).Debug("rated match")

	return results, nil
}

// CalculateMatchQuality implements SkillCalculator.
func (c *TwoPlayerCalculator) CalculateMatchQuality(gameInfo rating.GameInfo, teams []*rating.Team) (float64, error) {
	if err := c.validateRoster(gameInfo, teams); err != nil {
		return 0, err
	}
	a := teams[0].Members()[0].Rating
	b := teams[1].Members()[0].Rating

	return drawQuality(2, gameInfo.Beta, a.Variance()+b.Variance(), a.Mean-b.Mean), nil
}
