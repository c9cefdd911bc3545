// SPDX-License-Identifier: MIT

// Package rating holds the value types the TrueSkill calculators consume and
// produce: game parameters, skill ratings, players, teams and rank handling.
//
// What & Why:
//
//	GameInfo carries the five model parameters (initial μ and σ, performance
//	noise β, per-match drift τ, draw probability). Rating is an immutable
//	(μ, σ) pair with a conservative "μ − 3σ" estimate. A Team is an ordered
//	list of (player, rating) members; order matters because it decides how
//	team differences are formed once teams are sorted by rank.
//
//	Players are opaque comparable tokens (PlayerKey). A token may optionally
//	implement PartialPlayer and/or PartialUpdater; missing capabilities count
//	as full participation and full update.
//
// Errors (sentinel):
//
//	– ErrInvalidGameInfo   GameInfo failed validation.
//	– ErrInvalidRating     non-finite mean or non-positive σ.
//	– ErrInvalidPercentage partial play/update outside [0, 1].
//	– ErrLengthMismatch    items and ranks differ in length.
//	– ErrTeamCount         team count outside a calculator's range.
//	– ErrPlayerCount       per-team player count outside a calculator's range.
//	– ErrNilTeam           a nil *Team was supplied.
//	– ErrEmptyRange        a Range whose minimum exceeds its maximum.
//
// Example usage:
//
//	info := rating.DefaultGameInfo()
//	alice := rating.NewPlayer("alice", rating.WithPartialPlay(0.5))
//	team := rating.NewTeam().Add(alice, info.DefaultRating())
package rating
