// SPDX-License-Identifier: MIT

package trueskill

import (
	"io"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/trueskill/factorgraph"
)

// DefaultConvergenceThreshold is the largest marginal change at which the
// multi-team loop counts as converged.
const DefaultConvergenceThreshold = 1e-4

// Options configures a calculator.
//
// Logger               – receives debug/trace output; discarded by default.
// ConvergenceThreshold – loop threshold for three or more teams. Must be > 0.
// MaxIterations        – loop cap for three or more teams. Must be ≥ 1.
type Options struct {
	Logger               logrus.FieldLogger
	ConvergenceThreshold float64
	MaxIterations        int
}

// Option represents a functional option for configuring a calculator.
type Option func(*Options)

// DefaultOptions returns the defaults listed on Options.
func DefaultOptions() Options {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	return Options{
		Logger:               discard,
		ConvergenceThreshold: DefaultConvergenceThreshold,
		MaxIterations:        factorgraph.DefaultMaxIterations,
	}
}

// WithLogger routes calculator logs to logger. A nil logger keeps the default.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(o *Options) {
		if logger != nil {
			o.Logger = logger
		}
	}
}

// WithConvergenceThreshold sets the multi-team loop threshold.
// Panics on a non-positive or NaN threshold.
func WithConvergenceThreshold(threshold float64) Option {
	if !(threshold > 0) || math.IsInf(threshold, 0) {
		panic("trueskill: convergence threshold must be a positive finite number")
	}
	return func(o *Options) {
		o.ConvergenceThreshold = threshold
	}
}

// WithMaxIterations caps the multi-team loop.
// Panics if n < 1.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic("trueskill: max iterations must be positive")
	}
	return func(o *Options) {
		o.MaxIterations = n
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
