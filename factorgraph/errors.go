// SPDX-License-Identifier: MIT

package factorgraph

import "errors"

// Sentinel errors returned by the factor-graph primitives.
var (
	// ErrNotConverged indicates that a Loop reached its iteration cap while
	// its last delta was still above the convergence threshold.
	ErrNotConverged = errors.New("factorgraph: schedule did not converge")

	// ErrMessageIndex indicates a message index outside the factor's bindings.
	ErrMessageIndex = errors.New("factorgraph: message index out of range")

	// ErrNoInputs indicates that a layer was built without input groups.
	ErrNoInputs = errors.New("factorgraph: layer has no input variables")
)
