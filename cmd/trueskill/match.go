// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/trueskill/rating"
)

// ErrEmptyMatch indicates a match file without teams or with an empty team.
var ErrEmptyMatch = errors.New("trueskill: match has no players")

// Match is the on-disk description of one match:
//
//	teams:
//	  - rank: 1
//	    players:
//	      - {id: alice, mean: 25, sd: 8.333, partial_play: 1.0}
type Match struct {
	Teams []TeamSpec `yaml:"teams"`
}

// TeamSpec is one team and its finishing rank.
type TeamSpec struct {
	Rank    int          `yaml:"rank"`
	Players []PlayerSpec `yaml:"players"`
}

// PlayerSpec is one player. Missing mean or sd fall back to the game's
// default rating; missing percentages mean full participation.
type PlayerSpec struct {
	ID            string   `yaml:"id"`
	Mean          *float64 `yaml:"mean"`
	SD            *float64 `yaml:"sd"`
	PartialPlay   *float64 `yaml:"partial_play"`
	PartialUpdate *float64 `yaml:"partial_update"`
}

// ReadMatch decodes the match file at path.
func ReadMatch(path string) (Match, error) {
	f, err := os.Open(path)
	if err != nil {
		return Match{}, fmt.Errorf("failed to open match file: %w", err)
	}
	defer f.Close()

	return DecodeMatch(f)
}

// DecodeMatch decodes a match, rejecting unknown fields.
func DecodeMatch(r io.Reader) (Match, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var m Match
	if err := dec.Decode(&m); err != nil {
		return Match{}, fmt.Errorf("failed to parse match: %w", err)
	}

	return m, nil
}

// Roster converts the match into teams and ranks for a calculator.
func (m Match) Roster(gameInfo rating.GameInfo) ([]*rating.Team, []int, error) {
	if len(m.Teams) == 0 {
		return nil, nil, ErrEmptyMatch
	}
	fallback := gameInfo.DefaultRating()

	teams := make([]*rating.Team, len(m.Teams))
	ranks := make([]int, len(m.Teams))
	for i, entry := range m.Teams {
		if len(entry.Players) == 0 {
			return nil, nil, fmt.Errorf("team %d: %w", i+1, ErrEmptyMatch)
		}
		team := rating.NewTeam()
		for _, p := range entry.Players {
			player, err := p.player()
			if err != nil {
				return nil, nil, fmt.Errorf("team %d: %w", i+1, err)
			}
			r := fallback
			if p.Mean != nil {
				r.Mean = *p.Mean
			}
			if p.SD != nil {
				r.StandardDeviation = *p.SD
			}
			team.Add(player, r)
		}
		teams[i] = team
		ranks[i] = entry.Rank
	}

	return teams, ranks, nil
}

// player builds the rating.Player, checking percentages up front so the
// option constructors never panic on file input.
func (p PlayerSpec) player() (rating.Player, error) {
	var opts []rating.PlayerOption
	for _, pct := range []struct {
		name  string
		value *float64
		opt   func(float64) rating.PlayerOption
	}{
		{"partial_play", p.PartialPlay, rating.WithPartialPlay},
		{"partial_update", p.PartialUpdate, rating.WithPartialUpdate},
	} {
		if pct.value == nil {
			continue
		}
		if !(*pct.value >= 0 && *pct.value <= 1) {
			return rating.Player{}, fmt.Errorf("player %q %s %v: %w", p.ID, pct.name, *pct.value, rating.ErrInvalidPercentage)
		}
		opts = append(opts, pct.opt(*pct.value))
	}

	return rating.NewPlayer(p.ID, opts...), nil
}
