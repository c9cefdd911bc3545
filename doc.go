// SPDX-License-Identifier: MIT

// Package trueskill is a Bayesian skill rating library: every player's skill
// is a Gaussian belief (μ, σ), and match results sharpen and shift those
// beliefs.
//
// 🚀 What is in the box?
//
//	• Closed-form updates for head-to-head and two-team matches
//	• A factor-graph engine for any number of teams of any size
//	• Draws, ties between several teams, partial play and partial update
//	• Match quality (probability of a draw) for matchmaking
//	• Ranking probability from the graph's evidence
//	• A CLI that rates YAML match files
//
// ✨ Why choose it?
//
//   - Stateless – nothing survives a call; calculators are safe to share
//   - Explicit errors – sentinel errors per package, matched with errors.Is
//   - Observable – plug any logrus logger in to trace message passing
//
// Packages:
//
//	gaussian/     Gaussian beliefs in precision form, erfc, v/w corrections
//	rating/       GameInfo, Rating, Player, Team, Range, rank ordering
//	matrix/       small dense linear algebra behind match quality
//	factorgraph/  variables, messages, factors, schedules and layers
//	trueskill/    the three calculators and the rating-specific factors
//	cmd/trueskill command line front end
//	examples/     runnable scenarios
//
// Quick example:
//
//	gi := rating.DefaultGameInfo()
//	teams := []*rating.Team{
//	    rating.NewTeamWith("alice", gi.DefaultRating()),
//	    rating.NewTeamWith("bob", gi.DefaultRating()),
//	}
//	results, _ := trueskill.NewTwoPlayerCalculator().CalculateNewRatings(gi, teams, []int{1, 2})
//	// alice: μ=29.3958, σ=7.1715
//	// bob:   μ=20.6042, σ=7.1715
//
//	go get github.com/katalvlaran/trueskill
package trueskill
