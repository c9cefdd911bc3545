// SPDX-License-Identifier: MIT

package trueskill

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/trueskill/factorgraph"
	"github.com/katalvlaran/trueskill/gaussian"
	"github.com/katalvlaran/trueskill/rating"
)

// graphContext is shared by the layers of one graph.
type graphContext struct {
	arena    *factorgraph.Arena
	gameInfo rating.GameInfo
	opts     Options
	logger   logrus.FieldLogger
}

// stepsAt returns one Step per factor, all at message index.
func stepsAt[F factorgraph.Factor](name string, factors []F, index int) factorgraph.Schedule {
	steps := make([]factorgraph.Schedule, len(factors))
	for i, f := range factors {
		steps[i] = factorgraph.NewStep(fmt.Sprintf("%s@%d", f.Name(), index), f, index)
	}

	return factorgraph.NewSequence(name, steps...)
}

// priorToSkillsLayer creates one skill variable per player, seeded with
// the player's rating widened by τ². It has no inputs; teams stand in for
// them.
type priorToSkillsLayer struct {
	*factorgraph.LayerBase
	ctx     *graphContext
	teams   []*rating.Team
	factors []*priorFactor
}

func newPriorToSkillsLayer(ctx *graphContext, teams []*rating.Team) *priorToSkillsLayer {
	return &priorToSkillsLayer{LayerBase: factorgraph.NewLayerBase("prior to skills"), ctx: ctx, teams: teams}
}

// Build implements factorgraph.Layer.
func (l *priorToSkillsLayer) Build() error {
	tauSquared := l.ctx.gameInfo.DynamicsFactor * l.ctx.gameInfo.DynamicsFactor
	for _, team := range l.teams {
		members := team.Members()
		group := make([]factorgraph.VariableID, len(members))
		for i, m := range members {
			skill := l.ctx.arena.NewKeyed(fmt.Sprintf("%v's skill", m.Player), gaussian.Flat(), m.Player)
			f := newPriorFactor(l.ctx.arena, skill, m.Rating.Mean, m.Rating.Variance()+tauSquared)
			l.factors = append(l.factors, f)
			l.AddFactor(f)
			group[i] = skill
		}
		l.AddOutput(group...)
	}

	return nil
}

// PriorSchedule implements factorgraph.Layer.
func (l *priorToSkillsLayer) PriorSchedule() factorgraph.Schedule {
	return stepsAt("all priors", l.factors, 0)
}

// skillsToPerformancesLayer adds β² of noise to every skill.
type skillsToPerformancesLayer struct {
	*factorgraph.LayerBase
	ctx     *graphContext
	factors []*likelihoodFactor
}

func newSkillsToPerformancesLayer(ctx *graphContext) *skillsToPerformancesLayer {
	return &skillsToPerformancesLayer{LayerBase: factorgraph.NewLayerBase("skills to performances"), ctx: ctx}
}

// Build implements factorgraph.Layer.
func (l *skillsToPerformancesLayer) Build() error {
	if err := l.RequireInputs(); err != nil {
		return err
	}
	betaSquared := l.ctx.gameInfo.Beta * l.ctx.gameInfo.Beta
	for _, skills := range l.Inputs() {
		group := make([]factorgraph.VariableID, len(skills))
		for i, skill := range skills {
			v := l.ctx.arena.Variable(skill)
			performance := l.ctx.arena.NewKeyed(fmt.Sprintf("%v's performance", v.Key), gaussian.Flat(), v.Key)
			f := newLikelihoodFactor(l.ctx.arena, performance, skill, betaSquared)
			l.factors = append(l.factors, f)
			l.AddFactor(f)
			group[i] = performance
		}
		l.AddOutput(group...)
	}

	return nil
}

// PriorSchedule implements factorgraph.Layer.
func (l *skillsToPerformancesLayer) PriorSchedule() factorgraph.Schedule {
	return stepsAt("all skill to performance sending", l.factors, 0)
}

// PosteriorSchedule implements factorgraph.Layer.
func (l *skillsToPerformancesLayer) PosteriorSchedule() factorgraph.Schedule {
	return stepsAt("all skill to performance receiving", l.factors, 1)
}

// performancesToTeamPerformancesLayer sums each team's performances,
// weighted by partial play, into one team performance.
type performancesToTeamPerformancesLayer struct {
	*factorgraph.LayerBase
	ctx     *graphContext
	factors []*weightedSumFactor
}

func newPerformancesToTeamPerformancesLayer(ctx *graphContext) *performancesToTeamPerformancesLayer {
	return &performancesToTeamPerformancesLayer{
		LayerBase: factorgraph.NewLayerBase("performances to team performances"),
		ctx:       ctx,
	}
}

// Build implements factorgraph.Layer.
func (l *performancesToTeamPerformancesLayer) Build() error {
	if err := l.RequireInputs(); err != nil {
		return err
	}
	for i, performances := range l.Inputs() {
		weights := make([]float64, len(performances))
		for k, id := range performances {
			weights[k] = rating.PartialPlayPercentage(l.ctx.arena.Variable(id).Key)
		}
		team := l.ctx.arena.New(fmt.Sprintf("team %d performance", i+1), gaussian.Flat())
		f := newWeightedSumFactor(l.ctx.arena, team, performances, weights)
		l.factors = append(l.factors, f)
		l.AddFactor(f)
		l.AddOutput(team)
	}

	return nil
}

// PriorSchedule implements factorgraph.Layer.
func (l *performancesToTeamPerformancesLayer) PriorSchedule() factorgraph.Schedule {
	return stepsAt("all player performances to team performance", l.factors, 0)
}

// PosteriorSchedule sends every team performance back to each member.
func (l *performancesToTeamPerformancesLayer) PosteriorSchedule() factorgraph.Schedule {
	var steps []factorgraph.Schedule
	for _, f := range l.factors {
		for i := 1; i < f.NumMessages(); i++ {
			steps = append(steps, factorgraph.NewStep(fmt.Sprintf("%s@%d", f.Name(), i), f, i))
		}
	}

	return factorgraph.NewSequence("all team performances to player performances", steps...)
}

// teamPerformancesToDifferencesLayer links adjacent teams, in rank order,
// through difference = stronger − weaker.
type teamPerformancesToDifferencesLayer struct {
	*factorgraph.LayerBase
	ctx     *graphContext
	factors []*weightedSumFactor
}

func newTeamPerformancesToDifferencesLayer(ctx *graphContext) *teamPerformancesToDifferencesLayer {
	return &teamPerformancesToDifferencesLayer{
		LayerBase: factorgraph.NewLayerBase("team performances to performance differences"),
		ctx:       ctx,
	}
}

// Build implements factorgraph.Layer.
func (l *teamPerformancesToDifferencesLayer) Build() error {
	if err := l.RequireInputs(); err != nil {
		return err
	}
	inputs := l.Inputs()
	for i := 0; i < len(inputs)-1; i++ {
		stronger, weaker := inputs[i][0], inputs[i+1][0]
		difference := l.ctx.arena.New(fmt.Sprintf("team %d - team %d performance difference", i+1, i+2), gaussian.Flat())
		f := newWeightedSumFactor(l.ctx.arena, difference, []factorgraph.VariableID{stronger, weaker}, []float64{1, -1})
		l.factors = append(l.factors, f)
		l.AddFactor(f)
		l.AddOutput(difference)
	}

	return nil
}

// teamDifferencesComparisonLayer observes every difference: greater than
// the draw margin for distinct ranks, within it for equal ranks.
type teamDifferencesComparisonLayer struct {
	*factorgraph.LayerBase
	ctx     *graphContext
	ranks   []int
	factors []factorgraph.Factor
}

func newTeamDifferencesComparisonLayer(ctx *graphContext, ranks []int) *teamDifferencesComparisonLayer {
	return &teamDifferencesComparisonLayer{
		LayerBase: factorgraph.NewLayerBase("team differences comparison"),
		ctx:       ctx,
		ranks:     ranks,
	}
}

// Build implements factorgraph.Layer.
func (l *teamDifferencesComparisonLayer) Build() error {
	if err := l.RequireInputs(); err != nil {
		return err
	}
	epsilon := gaussian.DrawMargin(l.ctx.gameInfo.DrawProbability, l.ctx.gameInfo.Beta)
	for i, group := range l.Inputs() {
		var f factorgraph.Factor
		if l.ranks[i] == l.ranks[i+1] {
			f = newWithinFactor(l.ctx.arena, group[0], epsilon)
		} else {
			f = newGreaterThanFactor(l.ctx.arena, group[0], epsilon)
		}
		l.factors = append(l.factors, f)
		l.AddFactor(f)
	}

	return nil
}

// iteratedTeamDifferencesInnerLayer wraps the difference and comparison
// layers and owns the schedule that passes messages along the chain of
// differences.
type iteratedTeamDifferencesInnerLayer struct {
	*factorgraph.LayerBase
	ctx         *graphContext
	differences *teamPerformancesToDifferencesLayer
	comparisons *teamDifferencesComparisonLayer
}

func newIteratedTeamDifferencesInnerLayer(ctx *graphContext, differences *teamPerformancesToDifferencesLayer, comparisons *teamDifferencesComparisonLayer) *iteratedTeamDifferencesInnerLayer {
	return &iteratedTeamDifferencesInnerLayer{
		LayerBase:   factorgraph.NewLayerBase("iterated team differences inner layer"),
		ctx:         ctx,
		differences: differences,
		comparisons: comparisons,
	}
}

// Build implements factorgraph.Layer.
func (l *iteratedTeamDifferencesInnerLayer) Build() error {
	if err := l.RequireInputs(); err != nil {
		return err
	}
	l.differences.SetInputs(l.Inputs())
	if err := l.differences.Build(); err != nil {
		return fmt.Errorf("%s: %w", l.differences.Name(), err)
	}
	l.comparisons.SetInputs(l.differences.Outputs())
	if err := l.comparisons.Build(); err != nil {
		return fmt.Errorf("%s: %w", l.comparisons.Name(), err)
	}
	for _, f := range l.differences.Factors() {
		l.AddFactor(f)
	}
	for _, f := range l.comparisons.Factors() {
		l.AddFactor(f)
	}

	return nil
}

// PriorSchedule implements factorgraph.Layer.
//
// Two teams: one difference, one comparison, then send the result to both
// team performances. More teams: loop a forward sweep (each comparison
// pushes onto the weaker team) and a backward sweep (each comparison pushes
// onto the stronger team) until the largest change falls below the
// convergence threshold, then finish the two ends of the chain.
func (l *iteratedTeamDifferencesInnerLayer) PriorSchedule() factorgraph.Schedule {
	diffs := l.differences.factors
	comps := l.comparisons.factors
	last := len(diffs) - 1

	var body factorgraph.Schedule
	if len(diffs) == 1 {
		body = factorgraph.NewSequence("inner schedule",
			factorgraph.NewStep("team difference@0", diffs[0], 0),
			factorgraph.NewStep("comparison@0", comps[0], 0),
		)
	} else {
		var forward, backward []factorgraph.Schedule
		for i := 0; i < last; i++ {
			forward = append(forward, factorgraph.NewSequence(fmt.Sprintf("forward %d", i),
				factorgraph.NewStep("team difference@0", diffs[i], 0),
				factorgraph.NewStep("comparison@0", comps[i], 0),
				factorgraph.NewStep("team difference@2", diffs[i], 2),
			))
		}
		for i := 0; i < last; i++ {
			j := last - i
			backward = append(backward, factorgraph.NewSequence(fmt.Sprintf("backward %d", j),
				factorgraph.NewStep("team difference@0", diffs[j], 0),
				factorgraph.NewStep("comparison@0", comps[j], 0),
				factorgraph.NewStep("team difference@1", diffs[j], 1),
			))
		}
		body = factorgraph.NewLoop("inner loop",
			factorgraph.NewSequence("forward and backward",
				factorgraph.NewSequence("forward", forward...),
				factorgraph.NewSequence("backward", backward...),
			),
			l.ctx.opts.ConvergenceThreshold,
			factorgraph.WithMaxIterations(l.ctx.opts.MaxIterations),
			factorgraph.WithLoopLogger(l.ctx.logger),
		)
	}

	return factorgraph.NewSequence("inner schedule",
		body,
		factorgraph.NewStep("team difference 1 to stronger team", diffs[0], 1),
		factorgraph.NewStep("team difference n to weaker team", diffs[last], 2),
	)
}
