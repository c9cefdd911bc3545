// SPDX-License-Identifier: MIT

package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/trueskill/rating"
	"github.com/katalvlaran/trueskill/trueskill"
)

// Root builds the command tree.
func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "trueskill",
		Short: "Rate matches and predict match quality with TrueSkill",
		Args:  cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if cmd.Flag("trace").Changed {
				logrus.SetLevel(logrus.TraceLevel)
			}
		},
	}

	root.PersistentFlags().BoolP("trace", "t", false, "Show Trace Information")
	root.PersistentFlags().StringP("config", "c", "", "YAML file with game parameters")
	root.PersistentFlags().StringP("engine", "e", engineFactorGraph, "Calculator: factorgraph, two-team or two-player")

	root.AddCommand(Rate())
	root.AddCommand(Quality())
	root.AddCommand(Probability())

	return root
}

// session is what every subcommand needs before it can calculate.
type session struct {
	config Config
	calc   trueskill.SkillCalculator
	teams  []*rating.Team
	ranks  []int
}

// newSession loads configuration, picks the engine and reads the match
// named by the --file flag.
func newSession(cmd *cobra.Command) (*session, error) {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("engine") {
		cfg.Engine, _ = cmd.Flags().GetString("engine")
	}

	calc, err := NewCalculator(cfg.Engine, trueskill.WithLogger(logrus.StandardLogger()))
	if err != nil {
		return nil, err
	}

	matchPath, _ := cmd.Flags().GetString("file")
	match, err := ReadMatch(matchPath)
	if err != nil {
		return nil, err
	}
	teams, ranks, err := match.Roster(cfg.Game)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"engine": cfg.Engine,
		"teams":  len(teams),
	}).Debug("match loaded")

	return &session{config: cfg, calc: calc, teams: teams, ranks: ranks}, nil
}

// addMatchFlag registers the required --file flag.
func addMatchFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("file", "f", "", "YAML match file")
	_ = cmd.MarkFlagRequired("file")
}
