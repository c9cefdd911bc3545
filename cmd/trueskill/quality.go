// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/trueskill/trueskill"
)

// Quality predicts how evenly matched the teams are.
func Quality() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quality",
		Short: "Compute the match quality (draw probability) of a match",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd)
			if err != nil {
				return err
			}
			quality, err := s.calc.CalculateMatchQuality(s.config.Game, s.teams)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "match quality: %.4f\n", quality)
			return err
		},
	}
	addMatchFlag(cmd)

	return cmd
}

// ErrNoRankingProbability indicates an engine that cannot estimate the
// probability of a ranking.
var ErrNoRankingProbability = errors.New("trueskill: engine does not compute ranking probabilities")

// Probability estimates how likely the recorded ranking was.
func Probability() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "probability",
		Short: "Compute the probability of the recorded ranking (factorgraph engine)",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd)
			if err != nil {
				return err
			}
			graph, ok := s.calc.(*trueskill.FactorGraphCalculator)
			if !ok {
				return fmt.Errorf("%s: %w", s.config.Engine, ErrNoRankingProbability)
			}
			p, err := graph.CalculateRankingProbability(s.config.Game, s.teams, s.ranks)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "ranking probability: %.4f\n", p)
			return err
		},
	}
	addMatchFlag(cmd)

	return cmd
}
