// SPDX-License-Identifier: MIT

package trueskill

import (
	"math"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/trueskill/gaussian"
	"github.com/katalvlaran/trueskill/rating"
)

// TwoTeamCalculator rates two teams of any size in closed form. Team skill
// is the plain sum of member skills, so partial play is not supported.
type TwoTeamCalculator struct {
	calculatorBase
}

// NewTwoTeamCalculator returns a calculator configured by opts.
func NewTwoTeamCalculator(opts ...Option) *TwoTeamCalculator {
	return &TwoTeamCalculator{calculatorBase{
		name:      "two-team",
		supported: NoOptions,
		teams:     rating.Exactly(2),
		players:   rating.AtLeast(1),
		opts:      buildOptions(opts),
	}}
}

// CalculateNewRatings implements SkillCalculator.
//
// Implementation:
//   - Stage 1: c² = Σσ² over both teams + n·β², n the total player count.
//   - Stage 2: v and w from the difference of team mean sums.
//   - Stage 3: every member moves by its own σ²+τ² share of the correction.
func (c *TwoTeamCalculator) CalculateNewRatings(gameInfo rating.GameInfo, teams []*rating.Team, ranks []int) ([]rating.Result, error) {
	if err := c.validateMatch(gameInfo, teams, ranks); err != nil {
		return nil, err
	}
	winner, _, isDraw := teamPair(ranks)
	n := playerCount(teams)

	drawMargin := gaussian.DrawMargin(gameInfo.DrawProbability, gameInfo.Beta)
	cc := math.Sqrt(teams[0].StandardDeviationSquaredSum() + teams[1].StandardDeviationSquaredSum() +
		float64(n)*gameInfo.Beta*gameInfo.Beta)

	results := make([]rating.Result, 0, n)
	for i, self := range teams {
		other := teams[1-i]
		v, w, sign := outcomeOf(i, winner, isDraw).moments(self.MeanSum(), other.MeanSum(), drawMargin, cc)
		for _, m := range self.Members() {
			results = append(results, rating.Result{
				Player: m.Player,
				Rating: closedFormUpdate(gameInfo, m.Rating, v, w, sign, cc),
			})
		}
	}

	c.logger().WithFields(logrus.Fields{
		"players": n,
		"draw":    isDraw,
		"c":       cc,
	}).Debug("rated match")

	return results, nil
}

// CalculateMatchQuality implements SkillCalculator.
func (c *TwoTeamCalculator) CalculateMatchQuality(gameInfo rating.GameInfo, teams []*rating.Team) (float64, error) {
	if err := c.validateRoster(gameInfo, teams); err != nil {
		return 0, err
	}
	varianceSum := teams[0].StandardDeviationSquaredSum() + teams[1].StandardDeviationSquaredSum()

	return drawQuality(playerCount(teams), gameInfo.Beta, varianceSum, teams[0].MeanSum()-teams[1].MeanSum()), nil
}
