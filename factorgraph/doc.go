// SPDX-License-Identifier: MIT

// Package factorgraph provides the Gaussian message-passing primitives the
// TrueSkill engine is assembled from.
//
// What & Why:
//
//	A factor graph connects belief variables through factors. Each factor owns
//	one outgoing message per bound variable; updating message i divides the
//	variable's marginal by the old message, applies the factor's rule and
//	multiplies the new message back in. The returned change magnitude drives
//	convergence.
//
//	All variables of one calculation live in a single Arena and are addressed
//	by VariableID. Factors hold IDs, never pointers, so the graph has no
//	reference cycles and is dropped wholesale when the calculation returns.
//
// Building blocks:
//
//	– Arena, VariableID   variable storage with per-variable prior and optional key.
//	– Message             a factor's current contribution to one variable.
//	– Factor, FactorBase  the node contract and its shared binding/sending logic.
//	– Schedule            Step, Sequence and Loop: how messages are visited.
//	– Layer, LayerBase    one stage of the graph: input groups in, output groups out.
//	– FactorList          total log normalisation of a graph.
//
// Errors (sentinel):
//
//	– ErrNotConverged  a Loop hit its iteration cap before its delta fell
//	                   below the threshold.
//	– ErrMessageIndex  a message index outside [0, NumMessages).
//	– ErrNoInputs      a layer that needs input groups was built without them.
//
// Concurrency:
//
//	Nothing here is safe for concurrent use. A graph belongs to the single
//	call that built it.
package factorgraph
