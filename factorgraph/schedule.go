// SPDX-License-Identifier: MIT

package factorgraph

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// DefaultMaxIterations caps a Loop when no explicit cap is given.
const DefaultMaxIterations = 300

// Schedule is a plan for visiting messages. Visit runs the plan once and
// returns the largest marginal change it caused.
type Schedule interface {
	Name() string
	Visit() (float64, error)
}

// Step updates a single message of a single factor.
type Step struct {
	name   string
	factor Factor
	index  int
}

// NewStep returns a step that updates message index of factor.
func NewStep(name string, factor Factor, index int) *Step {
	return &Step{name: name, factor: factor, index: index}
}

// Name implements Schedule.
func (s *Step) Name() string { return s.name }

// Visit implements Schedule.
func (s *Step) Visit() (float64, error) {
	delta, err := s.factor.UpdateMessage(s.index)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", s.name, err)
	}

	return delta, nil
}

// Sequence visits its children in order.
type Sequence struct {
	name     string
	children []Schedule
}

// NewSequence returns a sequence over children. Nil children are skipped so
// callers can pass optional sub-schedules directly.
func NewSequence(name string, children ...Schedule) *Sequence {
	kept := make([]Schedule, 0, len(children))
	for _, c := range children {
		if c != nil {
			kept = append(kept, c)
		}
	}

	return &Sequence{name: name, children: kept}
}

// Name implements Schedule.
func (s *Sequence) Name() string { return s.name }

// Len is the number of children.
func (s *Sequence) Len() int { return len(s.children) }

// Visit implements Schedule and returns the maximum child delta.
func (s *Sequence) Visit() (float64, error) {
	var maxDelta float64
	for _, c := range s.children {
		delta, err := c.Visit()
		if err != nil {
			return 0, err
		}
		if delta > maxDelta {
			maxDelta = delta
		}
	}

	return maxDelta, nil
}

// Loop revisits its body until the body's delta is at most maxDelta.
type Loop struct {
	name          string
	body          Schedule
	maxDelta      float64
	maxIterations int
	logger        logrus.FieldLogger
}

// LoopOption configures a Loop.
type LoopOption func(*Loop)

// WithMaxIterations caps the number of body visits.
// Panics if n < 1.
func WithMaxIterations(n int) LoopOption {
	if n < 1 {
		panic("factorgraph: max iterations must be positive")
	}
	return func(l *Loop) {
		l.maxIterations = n
	}
}

// WithLoopLogger routes per-iteration deltas to logger at trace level.
func WithLoopLogger(logger logrus.FieldLogger) LoopOption {
	return func(l *Loop) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// NewLoop returns a loop over body with the given convergence threshold.
func NewLoop(name string, body Schedule, maxDelta float64, opts ...LoopOption) *Loop {
	l := &Loop{
		name:          name,
		body:          body,
		maxDelta:      maxDelta,
		maxIterations: DefaultMaxIterations,
		logger:        discardLogger(),
	}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Name implements Schedule.
func (l *Loop) Name() string { return l.name }

// Visit implements Schedule. The body is visited at least once.
//
// Errors:
//   - ErrNotConverged when maxIterations visits leave the delta above maxDelta.
//   - Any error of the body.
func (l *Loop) Visit() (float64, error) {
	for iteration := 1; ; iteration++ {
		delta, err := l.body.Visit()
		if err != nil {
			return 0, err
		}
		l.logger.WithFields(logrus.Fields{
			"schedule":  l.name,
			"iteration": iteration,
			"delta":     delta,
		}).Trace("loop iteration")

		if delta <= l.maxDelta {
			return delta, nil
		}
		if iteration >= l.maxIterations {
			l.logger.WithFields(logrus.Fields{
				"schedule": l.name,
				"delta":    delta,
			}).Warn("loop hit its iteration cap")

			return delta, fmt.Errorf("%s: delta %g after %d iterations: %w",
				l.name, delta, iteration, ErrNotConverged)
		}
	}
}

// discardLogger returns a logger that writes nowhere.
func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}
