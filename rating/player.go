// SPDX-License-Identifier: MIT

package rating

import "fmt"

// MinPartialPlayPercentage is the floor applied to partial play weights so
// that a weighted-sum factor never divides by zero.
const MinPartialPlayPercentage = 0.0001

// PlayerKey identifies a player. Any comparable value works; the engine only
// uses it to hand results back.
type PlayerKey = any

// PartialPlayer is implemented by players that took part in only a share of
// a match. The value lies in [0, 1].
type PartialPlayer interface {
	PartialPlayPercentage() float64
}

// PartialUpdater is implemented by players whose rating should move only a
// share of the computed update. The value lies in [0, 1].
type PartialUpdater interface {
	PartialUpdatePercentage() float64
}

// Player is the stock player token. It supports both capabilities.
//
// The zero value, and a literal such as Player{ID: "alice"}, plays the whole
// match and takes the whole update; only the options below change that.
type Player struct {
	ID            string
	partialPlay   optionalPercentage
	partialUpdate optionalPercentage
}

// optionalPercentage is a percentage whose zero value means 1.
type optionalPercentage struct {
	value float64
	set   bool
}

func (o optionalPercentage) get() float64 {
	if !o.set {
		return 1
	}

	return o.value
}

// PlayerOption configures a Player.
type PlayerOption func(*Player)

// WithPartialPlay sets the share of the match the player took part in.
// Panics with ErrInvalidPercentage outside [0, 1].
func WithPartialPlay(pct float64) PlayerOption {
	mustPercentage(pct)
	return func(p *Player) {
		p.partialPlay = optionalPercentage{value: pct, set: true}
	}
}

// WithPartialUpdate sets the share of the computed update applied to the
// player. Panics with ErrInvalidPercentage outside [0, 1].
func WithPartialUpdate(pct float64) PlayerOption {
	mustPercentage(pct)
	return func(p *Player) {
		p.partialUpdate = optionalPercentage{value: pct, set: true}
	}
}

// mustPercentage panics on values outside [0, 1], the same way option
// constructors elsewhere reject nonsensical configuration.
func mustPercentage(pct float64) {
	if !(pct >= 0 && pct <= 1) {
		panic(fmt.Sprintf("%v: %s", pct, ErrInvalidPercentage.Error()))
	}
}

// NewPlayer returns a fully participating, fully updated player.
func NewPlayer(id string, opts ...PlayerOption) Player {
	p := Player{ID: id}
	for _, opt := range opts {
		opt(&p)
	}

	return p
}

// PartialPlayPercentage implements PartialPlayer.
func (p Player) PartialPlayPercentage() float64 { return p.partialPlay.get() }

// PartialUpdatePercentage implements PartialUpdater.
func (p Player) PartialUpdatePercentage() float64 { return p.partialUpdate.get() }

// String returns the player's ID.
func (p Player) String() string { return p.ID }

// PartialPlayPercentage returns the partial play weight of key: 1 when key
// does not implement PartialPlayer, otherwise its value floored at
// MinPartialPlayPercentage.
func PartialPlayPercentage(key PlayerKey) float64 {
	pp, ok := key.(PartialPlayer)
	if !ok {
		return 1
	}
	pct := pp.PartialPlayPercentage()
	if pct < MinPartialPlayPercentage {
		return MinPartialPlayPercentage
	}

	return pct
}

// PartialUpdatePercentage returns the partial update share of key, or 1
// when key does not implement PartialUpdater.
func PartialUpdatePercentage(key PlayerKey) float64 {
	pu, ok := key.(PartialUpdater)
	if !ok {
		return 1
	}

	return pu.PartialUpdatePercentage()
}
