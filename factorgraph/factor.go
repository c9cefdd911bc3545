// SPDX-License-Identifier: MIT

package factorgraph

import (
	"fmt"

	"github.com/katalvlaran/trueskill/gaussian"
)

// Message is a factor's latest contribution to one bound variable.
type Message struct {
	Name  string
	Value gaussian.Distribution
}

// Factor is a constraint node. Messages are indexed in binding order.
type Factor interface {
	// Name identifies the factor in logs and errors.
	Name() string

	// NumMessages is the number of bound variables.
	NumMessages() int

	// UpdateMessage recomputes message i together with its variable's
	// marginal and returns how far the marginal moved.
	UpdateMessage(i int) (float64, error)

	// SendMessage multiplies message i into its variable and returns the log
	// normalisation of that product.
	SendMessage(i int) (float64, error)

	// ResetMarginals resets every bound variable to its prior.
	ResetMarginals()

	// LogNormalization is the factor's own contribution to the log
	// probability of the evidence.
	LogNormalization() (float64, error)
}

// FactorBase implements the binding bookkeeping, SendMessage and
// ResetMarginals shared by all Gaussian factors. Concrete factors embed it
// and add UpdateMessage and LogNormalization.
type FactorBase struct {
	name      string
	arena     *Arena
	messages  []Message
	variables []VariableID
}

// NewFactorBase returns a base with no bindings.
func NewFactorBase(name string, arena *Arena) *FactorBase {
	return &FactorBase{name: name, arena: arena}
}

// Bind attaches a variable and creates its flat outgoing message.
func (f *FactorBase) Bind(id VariableID) {
	f.messages = append(f.messages, Message{
		Name:  fmt.Sprintf("message from %s to %s", f.name, f.arena.Variable(id).Name),
		Value: gaussian.Flat(),
	})
	f.variables = append(f.variables, id)
}

// Name implements Factor.
func (f *FactorBase) Name() string { return f.name }

// NumMessages implements Factor.
func (f *FactorBase) NumMessages() int { return len(f.messages) }

// Arena returns the arena the bound variables live in.
func (f *FactorBase) Arena() *Arena { return f.arena }

// Message returns the current value of message i.
func (f *FactorBase) Message(i int) gaussian.Distribution { return f.messages[i].Value }

// SetMessage replaces the value of message i.
func (f *FactorBase) SetMessage(i int, d gaussian.Distribution) { f.messages[i].Value = d }

// VariableID returns the variable bound at i.
func (f *FactorBase) VariableID(i int) VariableID { return f.variables[i] }

// Marginal returns the current value of the variable bound at i.
func (f *FactorBase) Marginal(i int) gaussian.Distribution { return f.arena.Value(f.variables[i]) }

// SetMarginal replaces the value of the variable bound at i.
func (f *FactorBase) SetMarginal(i int, d gaussian.Distribution) { f.arena.SetValue(f.variables[i], d) }

// CheckIndex returns ErrMessageIndex unless 0 ≤ i < NumMessages.
func (f *FactorBase) CheckIndex(i int) error {
	if i < 0 || i >= len(f.messages) {
		return fmt.Errorf("%s: index %d of %d: %w", f.name, i, len(f.messages), ErrMessageIndex)
	}

	return nil
}

// SendMessage implements Factor.
func (f *FactorBase) SendMessage(i int) (float64, error) {
	if err := f.CheckIndex(i); err != nil {
		return 0, err
	}
	marginal := f.Marginal(i)
	msg := f.messages[i].Value
	logZ := gaussian.LogProductNormalization(marginal, msg)
	f.SetMarginal(i, gaussian.Mul(marginal, msg))

	return logZ, nil
}

// ResetMarginals implements Factor.
func (f *FactorBase) ResetMarginals() {
	for _, id := range f.variables {
		f.arena.ResetToPrior(id)
	}
}

// String renders the factor's name.
func (f *FactorBase) String() string { return f.name }
