// SPDX-License-Identifier: MIT

package trueskill

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/trueskill/rating"
)

// SupportedOptions is a bit set of optional player capabilities a
// calculator honours.
type SupportedOptions uint8

const (
	// PartialPlay weights a player's performance by the share of the match
	// they took part in.
	PartialPlay SupportedOptions = 1 << iota

	// PartialUpdate applies only a share of the computed rating change.
	PartialUpdate

	// NoOptions is the empty set.
	NoOptions SupportedOptions = 0
)

// SkillCalculator rates matches.
//
// ranks are per team, lower is better, equal ranks are draws. Results come
// back in input order: team by team, member by member.
type SkillCalculator interface {
	CalculateNewRatings(gameInfo rating.GameInfo, teams []*rating.Team, ranks []int) ([]rating.Result, error)
	CalculateMatchQuality(gameInfo rating.GameInfo, teams []*rating.Team) (float64, error)
	SupportedOptions() SupportedOptions
	IsSupported(option SupportedOptions) bool
}

// calculatorBase holds what every calculator shares: the roster it accepts,
// its capabilities and its options.
type calculatorBase struct {
	name      string
	supported SupportedOptions
	teams     rating.Range
	players   rating.Range
	opts      Options
}

// SupportedOptions implements SkillCalculator.
func (c *calculatorBase) SupportedOptions() SupportedOptions { return c.supported }

// IsSupported reports whether every bit of option is supported.
func (c *calculatorBase) IsSupported(option SupportedOptions) bool {
	return c.supported&option == option
}

// validateMatch checks the inputs of CalculateNewRatings.
func (c *calculatorBase) validateMatch(gameInfo rating.GameInfo, teams []*rating.Team, ranks []int) error {
	if len(teams) != len(ranks) {
		return fmt.Errorf("%s: %d teams, %d ranks: %w", c.name, len(teams), len(ranks), ErrRankCount)
	}
	if err := c.validateRoster(gameInfo, teams); err != nil {
		return err
	}
	if gameInfo.DrawProbability == 0 {
		if tied := lo.FindDuplicates(ranks); len(tied) > 0 {
			return fmt.Errorf("%s: rank %d shared: %w", c.name, tied[0], ErrImpossibleDraw)
		}
	}

	return nil
}

// validateRoster checks game parameters, team and player counts and every
// member rating.
func (c *calculatorBase) validateRoster(gameInfo rating.GameInfo, teams []*rating.Team) error {
	if err := gameInfo.Validate(); err != nil {
		return fmt.Errorf("%s: %w", c.name, err)
	}
	if err := rating.ValidateTeams(teams, c.teams, c.players); err != nil {
		return fmt.Errorf("%s: %w: %w", c.name, ErrUnsupportedTeams, err)
	}
	for i, team := range teams {
		for _, m := range team.Members() {
			if err := m.Rating.Validate(); err != nil {
				return fmt.Errorf("%s: team %d player %v: %w", c.name, i, m.Player, err)
			}
		}
	}

	return nil
}

// logger returns the configured logger tagged with the calculator name.
func (c *calculatorBase) logger() logrus.FieldLogger {
	return c.opts.Logger.WithField("calculator", c.name)
}

// teamPair resolves a two-team match into winner and loser in rank order
// and reports whether it was a draw. winner and loser are input indices.
func teamPair(ranks []int) (winner, loser int, draw bool) {
	order := rating.RankOrder(ranks)

	return order[0], order[1], ranks[order[0]] == ranks[order[1]]
}

// playerCount is the number of members across teams.
func playerCount(teams []*rating.Team) int {
	n := 0
	for _, t := range teams {
		n += t.Size()
	}

	return n
}
