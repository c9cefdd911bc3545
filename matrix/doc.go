// SPDX-License-Identifier: MIT

// Package matrix provides the small dense linear-algebra toolkit behind
// factor-graph match quality.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 matrix with bounds-checked At/Set.
//   - Constructors for the shapes match quality builds: NewDiagonal
//     (player covariances), NewColumn (player means) and NewFromColumns
//     (the player-to-team assignment matrix).
//   - Kernels: Add, Mul, Transpose, Scale, LU, Inverse, Determinant.
//
// All kernels allocate a fresh result and never mutate their operands.
// Every public surface reports misuse with sentinel errors (see errors.go)
// wrapped with an operation tag, e.g. "Inverse: matrix: singular matrix".
//
// Determinism:
//
//	Loop orders are fixed (row-major i→j→k), so identical inputs always give
//	bit-identical outputs.
//
// Complexity:
//
//	Add/Scale/Transpose O(r·c); Mul O(n·m·p); LU, Inverse and
//	Determinant O(n³).
package matrix
