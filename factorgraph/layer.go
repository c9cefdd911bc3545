// SPDX-License-Identifier: MIT

package factorgraph

import "fmt"

// Layer is one stage of a layered factor graph. It reads the output groups
// of the previous layer (one group per team), creates its factors and
// variables in Build, and may contribute schedules for the forward (prior)
// and backward (posterior) passes.
type Layer interface {
	Name() string
	Build() error
	SetInputs(groups [][]VariableID)
	Inputs() [][]VariableID
	Outputs() [][]VariableID
	Factors() []Factor
	PriorSchedule() Schedule
	PosteriorSchedule() Schedule
}

// LayerBase stores inputs, outputs and factors. Concrete layers embed it
// and implement Build plus whichever schedules they contribute; the base
// schedules are nil.
type LayerBase struct {
	name    string
	inputs  [][]VariableID
	outputs [][]VariableID
	factors []Factor
}

// NewLayerBase returns an empty base named name.
func NewLayerBase(name string) *LayerBase {
	return &LayerBase{name: name}
}

// Name implements Layer.
func (l *LayerBase) Name() string { return l.name }

// SetInputs implements Layer.
func (l *LayerBase) SetInputs(groups [][]VariableID) { l.inputs = groups }

// Inputs implements Layer.
func (l *LayerBase) Inputs() [][]VariableID { return l.inputs }

// Outputs implements Layer.
func (l *LayerBase) Outputs() [][]VariableID { return l.outputs }

// Factors implements Layer.
func (l *LayerBase) Factors() []Factor { return l.factors }

// AddFactor registers a factor owned by the layer.
func (l *LayerBase) AddFactor(f Factor) { l.factors = append(l.factors, f) }

// AddOutput appends one output group.
func (l *LayerBase) AddOutput(group ...VariableID) { l.outputs = append(l.outputs, group) }

// RequireInputs returns ErrNoInputs when the layer was given no groups.
func (l *LayerBase) RequireInputs() error {
	if len(l.inputs) == 0 {
		return fmt.Errorf("%s: %w", l.name, ErrNoInputs)
	}

	return nil
}

// PriorSchedule implements Layer; the base has none.
func (l *LayerBase) PriorSchedule() Schedule { return nil }

// PosteriorSchedule implements Layer; the base has none.
func (l *LayerBase) PosteriorSchedule() Schedule { return nil }

// BuildLayers builds layers in order, feeding each layer the outputs of the
// one before it. The first layer keeps whatever inputs it was given.
func BuildLayers(layers ...Layer) error {
	for i, layer := range layers {
		if i > 0 {
			layer.SetInputs(layers[i-1].Outputs())
		}
		if err := layer.Build(); err != nil {
			return fmt.Errorf("build %s: %w", layer.Name(), err)
		}
	}

	return nil
}

// FullSchedule chains every layer's prior schedule in layer order followed
// by every posterior schedule in reverse layer order.
func FullSchedule(name string, layers ...Layer) *Sequence {
	parts := make([]Schedule, 0, 2*len(layers))
	for _, layer := range layers {
		parts = append(parts, layer.PriorSchedule())
	}
	for i := len(layers) - 1; i >= 0; i-- {
		parts = append(parts, layers[i].PosteriorSchedule())
	}

	return NewSequence(name, parts...)
}

// FactorList is a flat view over the factors of a graph.
type FactorList []Factor

// CollectFactors gathers the factors of layers in layer order.
func CollectFactors(layers ...Layer) FactorList {
	var fl FactorList
	for _, layer := range layers {
		fl = append(fl, layer.Factors()...)
	}

	return fl
}

// LogNormalization computes the log probability of the evidence encoded in
// the graph's current messages.
//
// Implementation:
//   - Stage 1: reset every factor's variables to their priors.
//   - Stage 2: send every message of every factor, summing the product
//     normalisations.
//   - Stage 3: add each factor's own log normalisation.
func (fl FactorList) LogNormalization() (float64, error) {
	for _, f := range fl {
		f.ResetMarginals()
	}

	var sumLogZ float64
	for _, f := range fl {
		for i := 0; i < f.NumMessages(); i++ {
			logZ, err := f.SendMessage(i)
			if err != nil {
				return 0, err
			}
			sumLogZ += logZ
		}
	}

	var sumLogS float64
	for _, f := range fl {
		logS, err := f.LogNormalization()
		if err != nil {
			return 0, fmt.Errorf("%s: %w", f.Name(), err)
		}
		sumLogS += logS
	}

	return sumLogZ + sumLogS, nil
}
