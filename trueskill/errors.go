// SPDX-License-Identifier: MIT

package trueskill

import "errors"

// Sentinel errors returned by the calculators.
var (
	// ErrRankCount indicates that teams and ranks differ in length.
	ErrRankCount = errors.New("trueskill: number of ranks does not match number of teams")

	// ErrUnsupportedTeams indicates a roster the calculator cannot rate. It is
	// joined with rating.ErrTeamCount, rating.ErrPlayerCount or rating.ErrNilTeam.
	ErrUnsupportedTeams = errors.New("trueskill: unsupported teams")

	// ErrImpossibleDraw indicates tied ranks in a game whose draw
	// probability is zero.
	ErrImpossibleDraw = errors.New("trueskill: draw in a game without draws")

	// ErrDegenerateComparison indicates that truncating a team difference
	// removed all of its variance, which only happens when the observed
	// outcome is astronomically unlikely under the current ratings.
	ErrDegenerateComparison = errors.New("trueskill: comparison left no variance")
)
