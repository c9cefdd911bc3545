// SPDX-License-Identifier: MIT

// Command trueskill rates matches described in YAML files.
//
//	trueskill rate -f match.yaml
//	trueskill quality -f match.yaml --engine two-team
//	trueskill probability -f match.yaml --config game.yaml
//
// Game parameters default to the library defaults and can be overridden by
// a --config file (game.beta, game.draw_probability, ...) or by environment
// variables such as TRUESKILL_GAME_BETA.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := Root().Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
