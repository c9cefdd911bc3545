// SPDX-License-Identifier: MIT

package rating

import "errors"

// Sentinel errors returned by the rating package. Callers match them with
// errors.Is; context is attached with fmt.Errorf("ctx: %w", ErrX).
var (
	// ErrInvalidGameInfo indicates that a GameInfo field failed validation.
	ErrInvalidGameInfo = errors.New("rating: invalid game info")

	// ErrInvalidRating indicates a non-finite mean or a non-positive standard deviation.
	ErrInvalidRating = errors.New("rating: invalid rating")

	// ErrInvalidPercentage indicates a partial play or partial update value outside [0, 1].
	ErrInvalidPercentage = errors.New("rating: percentage must be within [0, 1]")

	// ErrLengthMismatch indicates that items and ranks have different lengths.
	ErrLengthMismatch = errors.New("rating: items and ranks differ in length")

	// ErrTeamCount indicates a number of teams outside the accepted range.
	ErrTeamCount = errors.New("rating: unsupported number of teams")

	// ErrPlayerCount indicates a team size outside the accepted range.
	ErrPlayerCount = errors.New("rating: unsupported number of players on a team")

	// ErrNilTeam indicates that a nil team was supplied.
	ErrNilTeam = errors.New("rating: team is nil")

	// ErrEmptyRange indicates a Range whose lower bound exceeds its upper bound.
	ErrEmptyRange = errors.New("rating: range minimum exceeds maximum")
)
