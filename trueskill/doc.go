// SPDX-License-Identifier: MIT

// Package trueskill computes TrueSkill rating updates and match quality.
//
// Three calculators implement SkillCalculator:
//
//	– TwoPlayerCalculator    closed form, exactly two teams of one player.
//	– TwoTeamCalculator      closed form, exactly two teams of any size.
//	– FactorGraphCalculator  message passing, any number of teams of any
//	                         size, with partial play and partial update.
//
// The factor graph is built fresh for every call from five layers:
//
//	prior → skill → performance → team performance → team difference → comparison
//
// Priors inject each rating (with τ² drift), likelihood factors add β²
// performance noise, weighted sums combine performances into team
// performances (weighted by partial play), then into differences between
// adjacent teams in rank order. A greater-than factor encodes a decisive
// result and a within factor encodes a draw. With two teams the schedule is
// a single forward and backward pass; with more it loops over the chain of
// differences until the largest marginal change drops below the convergence
// threshold, failing with factorgraph.ErrNotConverged at the iteration cap.
//
// Match quality is the probability that the teams draw. FactorGraphCalculator
// evaluates it in matrix form for any number of teams; for two teams it
// reduces to the closed form used by the other calculators.
//
// Options:
//
//	– WithLogger                logrus logger for debug and trace output
//	                            (discarded by default).
//	– WithConvergenceThreshold  loop threshold (default 1e-4).
//	– WithMaxIterations         loop cap (default 300).
//
// Errors (sentinel):
//
//	– ErrRankCount             len(teams) != len(ranks).
//	– ErrUnsupportedTeams      roster outside the calculator's ranges.
//	– ErrImpossibleDraw        tied ranks while DrawProbability is 0.
//	– ErrDegenerateComparison  a comparison factor lost all variance.
//	– plus rating.ErrTeamCount, rating.ErrPlayerCount, rating.ErrNilTeam,
//	  rating.ErrInvalidGameInfo, rating.ErrInvalidRating,
//	  factorgraph.ErrNotConverged, matrix.ErrSingular.
//
// Example usage:
//
//	calc := trueskill.NewFactorGraphCalculator()
//	results, err := calc.CalculateNewRatings(rating.DefaultGameInfo(), teams, []int{1, 2, 2})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Concurrency: calculators are immutable after construction and safe for
// concurrent use; every call allocates its own graph.
package trueskill
