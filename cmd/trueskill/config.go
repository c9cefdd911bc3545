// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/trueskill/rating"
	"github.com/katalvlaran/trueskill/trueskill"
)

// Engine names accepted by --engine.
const (
	engineFactorGraph = "factorgraph"
	engineTwoTeam     = "two-team"
	engineTwoPlayer   = "two-player"
)

// envPrefix scopes environment overrides: TRUESKILL_GAME_BETA=4.5.
const envPrefix = "TRUESKILL"

// ErrUnknownEngine indicates an --engine value no calculator answers to.
var ErrUnknownEngine = errors.New("trueskill: unknown engine")

// Config is everything the commands read besides the match itself.
type Config struct {
	Game   rating.GameInfo `mapstructure:"game"`
	Engine string          `mapstructure:"engine"`
}

// LoadConfig layers defaults, the optional YAML file at path and
// TRUESKILL_* environment variables, then validates the game parameters.
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	defaults := rating.DefaultGameInfo()
	v.SetDefault("game.initial_mean", defaults.InitialMean)
	v.SetDefault("game.initial_standard_deviation", defaults.InitialStandardDeviation)
	v.SetDefault("game.beta", defaults.Beta)
	v.SetDefault("game.dynamics_factor", defaults.DynamicsFactor)
	v.SetDefault("game.draw_probability", defaults.DrawProbability)
	v.SetDefault("engine", engineFactorGraph)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	if err := cfg.Game.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// NewCalculator returns the calculator registered under engine.
func NewCalculator(engine string, opts ...trueskill.Option) (trueskill.SkillCalculator, error) {
	switch engine {
	case engineFactorGraph:
		return trueskill.NewFactorGraphCalculator(opts...), nil
	case engineTwoTeam:
		return trueskill.NewTwoTeamCalculator(opts...), nil
	case engineTwoPlayer:
		return trueskill.NewTwoPlayerCalculator(opts...), nil
	default:
		return nil, fmt.Errorf("%q, want one of %s, %s, %s: %w",
			engine, engineFactorGraph, engineTwoTeam, engineTwoPlayer, ErrUnknownEngine)
	}
}
