// SPDX-License-Identifier: MIT

package rating

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Library defaults. Everything derives from the initial mean.
const (
	DefaultInitialMean              = 25.0
	DefaultInitialStandardDeviation = DefaultInitialMean / 3
	DefaultBeta                     = DefaultInitialMean / 6
	DefaultDynamicsFactor           = DefaultInitialMean / 300
	DefaultDrawProbability          = 0.10
)

// GameInfo holds the parameters of the rating model for one kind of game.
//
// InitialMean and InitialStandardDeviation describe a new player. Beta is the
// spread of a single performance around the true skill. DynamicsFactor (τ) is
// the skill drift added to every prior before a match. DrawProbability is the
// share of games expected to end in a draw.
type GameInfo struct {
	InitialMean              float64 `validate:"finite" mapstructure:"initial_mean" yaml:"initial_mean"`
	InitialStandardDeviation float64 `validate:"finite,gt=0" mapstructure:"initial_standard_deviation" yaml:"initial_standard_deviation"`
	Beta                     float64 `validate:"finite,gt=0" mapstructure:"beta" yaml:"beta"`
	DynamicsFactor           float64 `validate:"finite,gte=0" mapstructure:"dynamics_factor" yaml:"dynamics_factor"`
	DrawProbability          float64 `validate:"finite,gte=0,lte=1" mapstructure:"draw_probability" yaml:"draw_probability"`
}

// DefaultGameInfo returns the standard TrueSkill parameters:
// μ=25, σ=25/3, β=25/6, τ=25/300 and a 10% draw probability.
func DefaultGameInfo() GameInfo {
	return GameInfo{
		InitialMean:              DefaultInitialMean,
		InitialStandardDeviation: DefaultInitialStandardDeviation,
		Beta:                     DefaultBeta,
		DynamicsFactor:           DefaultDynamicsFactor,
		DrawProbability:          DefaultDrawProbability,
	}
}

// NewGameInfo builds and validates a GameInfo.
func NewGameInfo(initialMean, initialStandardDeviation, beta, dynamicsFactor, drawProbability float64) (GameInfo, error) {
	gi := GameInfo{
		InitialMean:              initialMean,
		InitialStandardDeviation: initialStandardDeviation,
		Beta:                     beta,
		DynamicsFactor:           dynamicsFactor,
		DrawProbability:          drawProbability,
	}
	if err := gi.Validate(); err != nil {
		return GameInfo{}, err
	}

	return gi, nil
}

// DefaultRating is the rating of a player nobody has seen yet.
func (gi GameInfo) DefaultRating() Rating {
	return NewRating(gi.InitialMean, gi.InitialStandardDeviation)
}

// Validate checks every field is finite, σ and β are positive, τ is not
// negative and the draw probability lies in [0, 1].
//
// Errors:
//   - ErrInvalidGameInfo, wrapped with the failing fields.
func (gi GameInfo) Validate() error {
	err := gameInfoValidator().Struct(gi)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrInvalidGameInfo, err)
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fmt.Sprintf("%s=%v fails %q", fe.Field(), fe.Value(), fe.Tag()))
	}

	return fmt.Errorf("%w: %s", ErrInvalidGameInfo, strings.Join(msgs, "; "))
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// gameInfoValidator lazily builds the shared validator with the "finite" rule.
func gameInfoValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		// RegisterValidation only fails on an empty tag or nil func.
		_ = validate.RegisterValidation("finite", validateFinite)
	})

	return validate
}

// validateFinite rejects NaN and ±Inf.
func validateFinite(fl validator.FieldLevel) bool {
	f := fl.Field().Float()
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
