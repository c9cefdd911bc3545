// SPDX-License-Identifier: MIT

package rating

import (
	"github.com/samber/lo"
)

// Member is one (player, rating) entry of a Team.
type Member struct {
	Player PlayerKey
	Rating Rating
}

// Team is an ordered collection of members. Order is significant: results
// and match-quality matrices follow it.
type Team struct {
	members []Member
}

// NewTeam returns an empty team.
func NewTeam() *Team {
	return &Team{}
}

// NewTeamWith returns a team holding a single member.
func NewTeamWith(player PlayerKey, r Rating) *Team {
	return NewTeam().Add(player, r)
}

// Add appends a member and returns the team for chaining.
func (t *Team) Add(player PlayerKey, r Rating) *Team {
	t.members = append(t.members, Member{Player: player, Rating: r})
	return t
}

// Members returns a copy of the members in insertion order.
func (t *Team) Members() []Member {
	out := make([]Member, len(t.members))
	copy(out, t.members)

	return out
}

// Size is the number of members.
func (t *Team) Size() int { return len(t.members) }

// MeanSum is Σμ over the members.
func (t *Team) MeanSum() float64 {
	return lo.SumBy(t.members, func(m Member) float64 { return m.Rating.Mean })
}

// StandardDeviationSquaredSum is Σσ² over the members.
func (t *Team) StandardDeviationSquaredSum() float64 {
	return lo.SumBy(t.members, func(m Member) float64 { return m.Rating.Variance() })
}

// Result is one updated rating produced by a calculator.
type Result struct {
	Player PlayerKey
	Rating Rating
}
