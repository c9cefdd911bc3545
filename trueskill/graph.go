// SPDX-License-Identifier: MIT

package trueskill

import (
	"fmt"
	"math"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/trueskill/factorgraph"
	"github.com/katalvlaran/trueskill/rating"
)

// factorGraph is the layered graph of one match. Teams and ranks are in
// rank order.
type factorGraph struct {
	ctx    *graphContext
	priors *priorToSkillsLayer
	layers []factorgraph.Layer
}

func newFactorGraph(gameInfo rating.GameInfo, teams []*rating.Team, ranks []int, opts Options, logger logrus.FieldLogger) *factorGraph {
	ctx := &graphContext{
		arena:    factorgraph.NewArena(),
		gameInfo: gameInfo,
		opts:     opts,
		logger:   logger,
	}
	priors := newPriorToSkillsLayer(ctx, teams)

	return &factorGraph{
		ctx:    ctx,
		priors: priors,
		layers: []factorgraph.Layer{
			priors,
			newSkillsToPerformancesLayer(ctx),
			newPerformancesToTeamPerformancesLayer(ctx),
			newIteratedTeamDifferencesInnerLayer(ctx,
				newTeamPerformancesToDifferencesLayer(ctx),
				newTeamDifferencesComparisonLayer(ctx, ranks)),
		},
	}
}

// build wires every layer to the outputs of the one before it.
func (g *factorGraph) build() error {
	if err := factorgraph.BuildLayers(g.layers...); err != nil {
		return err
	}
	g.ctx.logger.WithFields(logrus.Fields{
		"variables": g.ctx.arena.Len(),
		"factors":   len(factorgraph.CollectFactors(g.layers...)),
	}).Debug("factor graph built")

	return nil
}

// run visits the full schedule once.
func (g *factorGraph) run() error {
	delta, err := factorgraph.FullSchedule("full schedule", g.layers...).Visit()
	if err != nil {
		return err
	}
	g.ctx.logger.WithField("delta", delta).Trace("full schedule visited")

	return nil
}

// posteriors reads the skill marginals back, one group per team in rank
// order. A player with a partial update share below one only moves that
// share of the way from their input rating.
func (g *factorGraph) posteriors() [][]rating.Result {
	outputs := g.priors.Outputs()
	groups := make([][]rating.Result, len(outputs))
	for t, skills := range outputs {
		members := g.priors.teams[t].Members()
		groups[t] = lo.Map(skills, func(id factorgraph.VariableID, i int) rating.Result {
			v := g.ctx.arena.Variable(id)
			prior := members[i].Rating
			posterior := rating.NewRatingWithMultiplier(v.Value.Mean(), v.Value.StandardDeviation(), prior.ConservativeMultiplier)
			if pct := rating.PartialUpdatePercentage(v.Key); pct < 1 {
				posterior = rating.PartialUpdate(prior, posterior, pct)
			}

			return rating.Result{Player: v.Key, Rating: posterior}
		})
	}

	return groups
}

// probabilityOfRanking is exp of the log normalisation of the whole graph.
func (g *factorGraph) probabilityOfRanking() (float64, error) {
	logZ, err := factorgraph.CollectFactors(g.layers...).LogNormalization()
	if err != nil {
		return 0, err
	}

	return math.Exp(logZ), nil
}

// FactorGraphCalculator rates any number of teams of any size by message
// passing. It supports partial play and partial update.
type FactorGraphCalculator struct {
	calculatorBase
}

// NewFactorGraphCalculator returns a calculator configured by opts.
func NewFactorGraphCalculator(opts ...Option) *FactorGraphCalculator {
	return &FactorGraphCalculator{calculatorBase{
		name:      "factor-graph",
		supported: PartialPlay | PartialUpdate,
		teams:     rating.AtLeast(2),
		players:   rating.AtLeast(1),
		opts:      buildOptions(opts),
	}}
}

// CalculateNewRatings implements SkillCalculator.
//
// Implementation:
//   - Stage 1: stable-sort teams by rank.
//   - Stage 2: build the graph and visit its schedule.
//   - Stage 3: read the skill marginals and restore input order.
//
// Errors:
//   - ErrRankCount, ErrUnsupportedTeams and the rating validation errors.
//   - factorgraph.ErrNotConverged when the inner loop hits its cap.
//   - ErrDegenerateComparison for outcomes with no remaining variance.
func (c *FactorGraphCalculator) CalculateNewRatings(gameInfo rating.GameInfo, teams []*rating.Team, ranks []int) ([]rating.Result, error) {
	g, order, err := c.solve(gameInfo, teams, ranks)
	if err != nil {
		return nil, err
	}

	byInput := make([][]rating.Result, len(teams))
	for sorted, group := range g.posteriors() {
		byInput[order[sorted]] = group
	}

	return lo.Flatten(byInput), nil
}

// CalculateRankingProbability returns the probability of the observed
// ranking under the current ratings, as estimated by the converged graph.
func (c *FactorGraphCalculator) CalculateRankingProbability(gameInfo rating.GameInfo, teams []*rating.Team, ranks []int) (float64, error) {
	g, _, err := c.solve(gameInfo, teams, ranks)
	if err != nil {
		return 0, err
	}
	p, err := g.probabilityOfRanking()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", c.name, err)
	}

	return p, nil
}

// CalculateMatchQuality implements SkillCalculator.
func (c *FactorGraphCalculator) CalculateMatchQuality(gameInfo rating.GameInfo, teams []*rating.Team) (float64, error) {
	if err := c.validateRoster(gameInfo, teams); err != nil {
		return 0, err
	}
	quality, err := matchQuality(gameInfo, teams)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", c.name, err)
	}

	return quality, nil
}

// solve validates, builds and runs the graph of one match. order maps rank
// position to input index.
func (c *FactorGraphCalculator) solve(gameInfo rating.GameInfo, teams []*rating.Team, ranks []int) (*factorGraph, []int, error) {
	if err := c.validateMatch(gameInfo, teams, ranks); err != nil {
		return nil, nil, err
	}
	order := rating.RankOrder(ranks)
	sortedTeams, sortedRanks, err := rating.SortByRank(teams, ranks)
	if err != nil {
		return nil, nil, err
	}

	logger := c.logger().WithFields(logrus.Fields{
		"teams":   len(teams),
		"players": playerCount(teams),
	})
	g := newFactorGraph(gameInfo, sortedTeams, sortedRanks, c.opts, logger)
	if err := g.build(); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", c.name, err)
	}
	if err := g.run(); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", c.name, err)
	}
	logger.Debug("rated match")

	return g, order, nil
}
