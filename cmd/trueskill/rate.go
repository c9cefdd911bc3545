// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/trueskill/rating"
)

// ErrUnknownOutput indicates an --output value other than text or yaml.
var ErrUnknownOutput = errors.New("trueskill: unknown output format")

// ratedPlayer is one row of rate's output.
type ratedPlayer struct {
	ID           string  `yaml:"id"`
	Mean         float64 `yaml:"mean"`
	SD           float64 `yaml:"sd"`
	Conservative float64 `yaml:"conservative"`
}

// Rate computes new ratings for a match.
func Rate() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rate",
		Short: "Compute updated ratings for a finished match",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd)
			if err != nil {
				return err
			}
			results, err := s.calc.CalculateNewRatings(s.config.Game, s.teams, s.ranks)
			if err != nil {
				return err
			}

			rows := lo.Map(results, func(r rating.Result, _ int) ratedPlayer {
				return ratedPlayer{
					ID:           fmt.Sprint(r.Player),
					Mean:         r.Rating.Mean,
					SD:           r.Rating.StandardDeviation,
					Conservative: r.Rating.ConservativeRating(),
				}
			})

			output, _ := cmd.Flags().GetString("output")
			return writeRatings(cmd.OutOrStdout(), output, rows)
		},
	}

	addMatchFlag(cmd)
	cmd.Flags().StringP("output", "o", "text", "Output format: text or yaml")

	return cmd
}

func writeRatings(w io.Writer, format string, rows []ratedPlayer) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(map[string][]ratedPlayer{"ratings": rows})
	case "text":
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "PLAYER\tMEAN\tSD\tCONSERVATIVE")
		for _, row := range rows {
			fmt.Fprintf(tw, "%s\t%.4f\t%.4f\t%.4f\n", row.ID, row.Mean, row.SD, row.Conservative)
		}
		return tw.Flush()
	default:
		return fmt.Errorf("%q: %w", format, ErrUnknownOutput)
	}
}
