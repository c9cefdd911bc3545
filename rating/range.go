// SPDX-License-Identifier: MIT

package rating

import (
	"fmt"
	"strconv"
)

// Range is an integer interval whose bounds are both optional. It describes
// how many teams, or players per team, a calculator accepts.
type Range struct {
	min, max       int
	hasMin, hasMax bool
}

// Exactly accepts n only.
func Exactly(n int) Range { return Range{min: n, max: n, hasMin: true, hasMax: true} }

// AtLeast accepts n and anything above.
func AtLeast(n int) Range { return Range{min: n, hasMin: true} }

// AtMost accepts n and anything below.
func AtMost(n int) Range { return Range{max: n, hasMax: true} }

// Unbounded accepts every value.
func Unbounded() Range { return Range{} }

// Inclusive accepts [lo, hi].
//
// Errors:
//   - ErrEmptyRange when lo > hi.
func Inclusive(lo, hi int) (Range, error) {
	if lo > hi {
		return Range{}, fmt.Errorf("[%d, %d]: %w", lo, hi, ErrEmptyRange)
	}

	return Range{min: lo, max: hi, hasMin: true, hasMax: true}, nil
}

// Min returns the lower bound and whether one is set.
func (r Range) Min() (int, bool) { return r.min, r.hasMin }

// Max returns the upper bound and whether one is set.
func (r Range) Max() (int, bool) { return r.max, r.hasMax }

// Contains reports whether v lies inside the range.
func (r Range) Contains(v int) bool {
	if r.hasMin && v < r.min {
		return false
	}
	if r.hasMax && v > r.max {
		return false
	}

	return true
}

// String renders the range in interval notation, "[2, ∞)" for AtLeast(2).
func (r Range) String() string {
	lo, hi := "(-∞", "∞)"
	if r.hasMin {
		lo = "[" + strconv.Itoa(r.min)
	}
	if r.hasMax {
		hi = strconv.Itoa(r.max) + "]"
	}

	return lo + ", " + hi
}

// ValidateTeams checks a match roster against a team-count range and a
// per-team player-count range.
//
// Errors:
//   - ErrTeamCount   len(teams) outside teamRange.
//   - ErrNilTeam     a nil entry in teams.
//   - ErrPlayerCount a team size outside playerRange.
func ValidateTeams(teams []*Team, teamRange, playerRange Range) error {
	if !teamRange.Contains(len(teams)) {
		return fmt.Errorf("%d teams, want %s: %w", len(teams), teamRange, ErrTeamCount)
	}
	for i, t := range teams {
		if t == nil {
			return fmt.Errorf("team %d: %w", i, ErrNilTeam)
		}
		if !playerRange.Contains(t.Size()) {
			return fmt.Errorf("team %d has %d players, want %s: %w", i, t.Size(), playerRange, ErrPlayerCount)
		}
	}

	return nil
}
