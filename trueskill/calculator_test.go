// SPDX-License-Identifier: MIT

package trueskill_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/trueskill/factorgraph"
	"github.com/katalvlaran/trueskill/rating"
	"github.com/katalvlaran/trueskill/trueskill"
)

func TestTwoPlayerCalculator(t *testing.T) {
	runGolden(t, trueskill.NewTwoPlayerCalculator(), twoPlayerCases)
}

func TestTwoTeamCalculator(t *testing.T) {
	calc := trueskill.NewTwoTeamCalculator()
	runGolden(t, calc, twoPlayerCases)
	runGolden(t, calc, twoTeamCases)
}

func TestFactorGraphCalculator(t *testing.T) {
	calc := trueskill.NewFactorGraphCalculator()
	runGolden(t, calc, twoPlayerCases)
	runGolden(t, calc, twoTeamCases)
	runGolden(t, calc, multiTeamCases)
}

// CalculatorSuite covers the contract shared by every calculator.
type CalculatorSuite struct {
	suite.Suite
	calculators map[string]trueskill.SkillCalculator
	gameInfo    rating.GameInfo
}

func TestCalculatorSuite(t *testing.T) {
	suite.Run(t, new(CalculatorSuite))
}

func (s *CalculatorSuite) SetupTest() {
	s.calculators = map[string]trueskill.SkillCalculator{
		"two-player":   trueskill.NewTwoPlayerCalculator(),
		"two-team":     trueskill.NewTwoTeamCalculator(),
		"factor-graph": trueskill.NewFactorGraphCalculator(),
	}
	s.gameInfo = rating.DefaultGameInfo()
}

func (s *CalculatorSuite) duel() []*rating.Team {
	return []*rating.Team{
		rating.NewTeamWith("alice", s.gameInfo.DefaultRating()),
		rating.NewTeamWith("bob", rating.NewRating(30, 6)),
	}
}

func (s *CalculatorSuite) TestRankCountMismatch() {
	for name, calc := range s.calculators {
		_, err := calc.CalculateNewRatings(s.gameInfo, s.duel(), []int{1})
		require.ErrorIs(s.T(), err, trueskill.ErrRankCount, name)
	}
}

func (s *CalculatorSuite) TestInvalidGameInfo() {
	bad := s.gameInfo
	bad.Beta = 0
	for name, calc := range s.calculators {
		_, err := calc.CalculateNewRatings(bad, s.duel(), []int{1, 2})
		require.ErrorIs(s.T(), err, rating.ErrInvalidGameInfo, name)
		_, err = calc.CalculateMatchQuality(bad, s.duel())
		require.ErrorIs(s.T(), err, rating.ErrInvalidGameInfo, name)
	}
}

func (s *CalculatorSuite) TestInvalidRating() {
	teams := []*rating.Team{
		rating.NewTeamWith("alice", rating.NewRating(25, 0)),
		rating.NewTeamWith("bob", s.gameInfo.DefaultRating()),
	}
	for name, calc := range s.calculators {
		_, err := calc.CalculateNewRatings(s.gameInfo, teams, []int{1, 2})
		require.ErrorIs(s.T(), err, rating.ErrInvalidRating, name)
	}
}

func (s *CalculatorSuite) TestDrawWithoutDrawProbability() {
	noDraws := s.gameInfo
	noDraws.DrawProbability = 0
	for name, calc := range s.calculators {
		_, err := calc.CalculateNewRatings(noDraws, s.duel(), []int{1, 1})
		require.ErrorIs(s.T(), err, trueskill.ErrImpossibleDraw, name)

		results, err := calc.CalculateNewRatings(noDraws, s.duel(), []int{1, 2})
		require.NoError(s.T(), err, name)
		require.Greater(s.T(), results[0].Rating.Mean, 25.0, name)
	}
}

func (s *CalculatorSuite) TestNilTeam() {
	teams := []*rating.Team{rating.NewTeamWith("alice", s.gameInfo.DefaultRating()), nil}
	for name, calc := range s.calculators {
		_, err := calc.CalculateNewRatings(s.gameInfo, teams, []int{1, 2})
		require.ErrorIs(s.T(), err, trueskill.ErrUnsupportedTeams, name)
		require.ErrorIs(s.T(), err, rating.ErrNilTeam, name)
	}
}

func (s *CalculatorSuite) TestTeamAndPlayerRanges() {
	three := append(s.duel(), rating.NewTeamWith("carol", s.gameInfo.DefaultRating()))
	pair := []*rating.Team{
		rating.NewTeam().Add("alice", s.gameInfo.DefaultRating()).Add("dave", s.gameInfo.DefaultRating()),
		rating.NewTeamWith("bob", s.gameInfo.DefaultRating()),
	}
	empty := []*rating.Team{rating.NewTeam(), rating.NewTeamWith("bob", s.gameInfo.DefaultRating())}

	_, err := s.calculators["two-player"].CalculateNewRatings(s.gameInfo, three, []int{1, 2, 3})
	require.ErrorIs(s.T(), err, rating.ErrTeamCount)
	_, err = s.calculators["two-team"].CalculateMatchQuality(s.gameInfo, three)
	require.ErrorIs(s.T(), err, rating.ErrTeamCount)
	_, err = s.calculators["two-player"].CalculateNewRatings(s.gameInfo, pair, []int{1, 2})
	require.ErrorIs(s.T(), err, rating.ErrPlayerCount)
	require.ErrorIs(s.T(), err, trueskill.ErrUnsupportedTeams)

	for name, calc := range s.calculators {
		_, err = calc.CalculateNewRatings(s.gameInfo, empty, []int{1, 2})
		require.ErrorIs(s.T(), err, rating.ErrPlayerCount, name)
		_, err = calc.CalculateNewRatings(s.gameInfo, s.duel()[:1], []int{1})
		require.ErrorIs(s.T(), err, rating.ErrTeamCount, name)
	}
}

func (s *CalculatorSuite) TestResultsFollowInputOrder() {
	for name, calc := range s.calculators {
		forward, err := calc.CalculateNewRatings(s.gameInfo, s.duel(), []int{2, 1})
		require.NoError(s.T(), err, name)
		require.Equal(s.T(), "alice", forward[0].Player, name)
		require.Equal(s.T(), "bob", forward[1].Player, name)

		// bob won, so the same match listed winner first gives the same ratings
		duel := s.duel()
		swapped, err := calc.CalculateNewRatings(s.gameInfo, []*rating.Team{duel[1], duel[0]}, []int{1, 2})
		require.NoError(s.T(), err, name)
		requireResults(s.T(), []rating.Result{forward[1], forward[0]}, swapped, 1e-9)

		require.Greater(s.T(), forward[1].Rating.Mean, 30.0, name)
		require.Less(s.T(), forward[0].Rating.Mean, 25.0, name)
	}
}

func (s *CalculatorSuite) TestQualityAgreesAcrossCalculators() {
	teams := []*rating.Team{
		rating.NewTeam().Add("a", rating.NewRating(27, 5)).Add("b", rating.NewRating(22, 7)),
		rating.NewTeam().Add("c", rating.NewRating(31, 3)).Add("d", rating.NewRating(18, 8)).Add("e", rating.NewRating(24, 2)),
	}
	twoTeam, err := s.calculators["two-team"].CalculateMatchQuality(s.gameInfo, teams)
	require.NoError(s.T(), err)
	graph, err := s.calculators["factor-graph"].CalculateMatchQuality(s.gameInfo, teams)
	require.NoError(s.T(), err)
	require.InDelta(s.T(), twoTeam, graph, 1e-9)

	duel := s.duel()
	twoPlayer, err := s.calculators["two-player"].CalculateMatchQuality(s.gameInfo, duel)
	require.NoError(s.T(), err)
	graph, err = s.calculators["factor-graph"].CalculateMatchQuality(s.gameInfo, duel)
	require.NoError(s.T(), err)
	require.InDelta(s.T(), twoPlayer, graph, 1e-9)
}

func (s *CalculatorSuite) TestSupportedOptions() {
	require.Equal(s.T(), trueskill.NoOptions, s.calculators["two-player"].SupportedOptions())
	require.False(s.T(), s.calculators["two-team"].IsSupported(trueskill.PartialPlay))

	graph := s.calculators["factor-graph"]
	require.True(s.T(), graph.IsSupported(trueskill.PartialPlay))
	require.True(s.T(), graph.IsSupported(trueskill.PartialPlay|trueskill.PartialUpdate))
	require.True(s.T(), graph.IsSupported(trueskill.NoOptions))
}

func (s *CalculatorSuite) TestOptionPanics() {
	require.Panics(s.T(), func() { trueskill.WithConvergenceThreshold(0) })
	require.Panics(s.T(), func() { trueskill.WithConvergenceThreshold(math.NaN()) })
	require.Panics(s.T(), func() { trueskill.WithMaxIterations(0) })
	require.NotPanics(s.T(), func() { trueskill.WithLogger(nil) })
}

func (s *CalculatorSuite) TestNonConvergence() {
	calc := trueskill.NewFactorGraphCalculator(trueskill.WithMaxIterations(1))
	teams := []*rating.Team{
		rating.NewTeamWith("a", s.gameInfo.DefaultRating()),
		rating.NewTeamWith("b", s.gameInfo.DefaultRating()),
		rating.NewTeamWith("c", s.gameInfo.DefaultRating()),
	}
	results, err := calc.CalculateNewRatings(s.gameInfo, teams, []int{1, 2, 3})
	require.ErrorIs(s.T(), err, factorgraph.ErrNotConverged)
	require.Nil(s.T(), results)

	// two teams never loop
	_, err = calc.CalculateNewRatings(s.gameInfo, teams[:2], []int{1, 2})
	require.NoError(s.T(), err)
}
