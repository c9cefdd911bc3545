// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All kernels return these sentinels (wrapped with an operation tag) and
// tests match them via errors.Is. No kernel panics on user input.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." so logs can be grepped.
// Context is attached at the detection site with fmt.Errorf("ctx: %w", ErrX).
var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add with different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrSingular is returned when a zero pivot is met during LU or inversion.
	ErrSingular = errors.New("matrix: singular matrix")
)
