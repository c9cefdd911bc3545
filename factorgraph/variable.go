// SPDX-License-Identifier: MIT

package factorgraph

import (
	"fmt"

	"github.com/katalvlaran/trueskill/gaussian"
)

// VariableID addresses a Variable inside its Arena.
type VariableID int

// Variable is a named belief. Value is the current marginal; Prior is what
// ResetToPrior restores. A keyed variable also carries the player it
// belongs to, so the final belief can be mapped back to a rating.
type Variable struct {
	Name  string
	Prior gaussian.Distribution
	Value gaussian.Distribution
	Key   any
	Keyed bool
}

// String renders the variable's name and current value.
func (v Variable) String() string {
	return fmt.Sprintf("%s [%s]", v.Name, v.Value)
}

// Arena owns every variable of one calculation.
type Arena struct {
	vars []Variable
}

// NewArena returns an empty arena.
func NewArena() *Arena {
	return &Arena{}
}

// New allocates an unkeyed variable whose value starts at prior.
func (a *Arena) New(name string, prior gaussian.Distribution) VariableID {
	a.vars = append(a.vars, Variable{Name: name, Prior: prior, Value: prior})
	return VariableID(len(a.vars) - 1)
}

// NewKeyed allocates a variable tagged with key.
func (a *Arena) NewKeyed(name string, prior gaussian.Distribution, key any) VariableID {
	a.vars = append(a.vars, Variable{Name: name, Prior: prior, Value: prior, Key: key, Keyed: true})
	return VariableID(len(a.vars) - 1)
}

// Len is the number of allocated variables.
func (a *Arena) Len() int { return len(a.vars) }

// Variable returns a copy of the variable at id. It panics on an unknown
// id, which can only come from a wiring bug.
func (a *Arena) Variable(id VariableID) Variable { return a.vars[id] }

// Value returns the current marginal of id.
func (a *Arena) Value(id VariableID) gaussian.Distribution { return a.vars[id].Value }

// SetValue replaces the marginal of id.
func (a *Arena) SetValue(id VariableID, d gaussian.Distribution) { a.vars[id].Value = d }

// ResetToPrior discards everything the variable has accumulated.
func (a *Arena) ResetToPrior(id VariableID) { a.vars[id].Value = a.vars[id].Prior }
