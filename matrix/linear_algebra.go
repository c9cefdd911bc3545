// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// element-wise addition, multiplication, transpose, scalar
// scaling, LU decomposition, inversion and determinants. All functions
// perform fail-fast validation and return wrapped sentinels on misuse.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial sum value for substitutions and dot products.
const ZeroSum = 0.0

// ZeroPivot is the sentinel for detecting a zero pivot in LU/Inverse routines.
const ZeroPivot = 0.0

// Operation name constants for unified error wrapping.
const (
	opAdd         = "Add"
	opMul         = "Mul"
	opTranspose   = "Transpose"
	opScale       = "Scale"
	opInverse     = "Inverse"
	opLU          = "LU"
	opDeterminant = "Determinant"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Add computes the element-wise sum C = A + B into a fresh Dense.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Allocate result Dense(rows, cols).
//   - Stage 2: Fast-path if both are *Dense - single flat loop 0..n-1.
//     Otherwise, fallback At/Set with fixed i→j order.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
func Add(a, b Matrix) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range res.data {
				res.data[idx] = da.data[idx] + db.data[idx]
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var av, bv float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opAdd, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opAdd, err)
			}
			if err = res.Set(i, j, av+bv); err != nil {
				return nil, matrixErrorf(opAdd, err)
			}
		}
	}

	return res, nil
}

// Mul computes the matrix product C = A × B.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b); allocate C (a.Rows × b.Cols).
//   - Stage 2: *Dense fast path in i→k→j order over flat slices, skipping
//     zero entries of A; otherwise a generic i→j→k triple loop.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(n·m·p), Space O(n·p).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var av, bv, current float64
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// da.data layout: i*aCols + k; db.data layout: k*bCols + j
			for i := 0; i < aRows; i++ {
				rowA, rowR := i*aCols, i*bCols
				for k := 0; k < aCols; k++ {
					av = da.data[rowA+k]
					if av == 0 {
						continue // assignment matrices are mostly zeros
					}
					rowB := k * bCols
					for j := 0; j < bCols; j++ {
						res.data[rowR+j] += av * db.data[rowB+j]
					}
				}
			}

			return res, nil
		}
	}

	for i := 0; i < aRows; i++ {
		for j := 0; j < bCols; j++ {
			current = ZeroSum
			for k := 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if av == 0 {
					continue
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				current += av * bv
			}
			if err = res.Set(i, j, current); err != nil {
				return nil, matrixErrorf(opMul, err)
			}
		}
	}

	return res, nil
}

// Transpose returns Aᵀ as a fresh Dense.
//
// Errors:
//   - ErrNilMatrix.
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	src, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := src.r, src.c
	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	// data[i*cols + j] → res.data[j*rows + i]
	for i := 0; i < rows; i++ {
		base := i * cols
		for j := 0; j < cols; j++ {
			res.data[j*rows+i] = src.data[base+j]
		}
	}

	return res, nil
}

// Scale returns alpha·A as a fresh Dense.
//
// Errors:
//   - ErrNilMatrix; ErrNaNInf for a non-finite alpha.
func Scale(m Matrix, alpha float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	if math.IsNaN(alpha) || math.IsInf(alpha, 0) {
		return nil, matrixErrorf(opScale, ErrNaNInf)
	}
	src, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	res := &Dense{r: src.r, c: src.c, data: make([]float64, len(src.data))}
	for idx, v := range src.data {
		res.data[idx] = alpha * v
	}

	return res, nil
}

// LU performs a Doolittle decomposition A = L·U without pivoting, where L is
// unit lower-triangular and U upper-triangular.
//
// Implementation:
//   - Stage 1: validate square; initialise L's diagonal to 1.
//   - Stage 2: for each i compute row i of U, guard the pivot, then column i of L.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular (zero pivot).
//
// Notes:
//   - Without pivoting a zero leading minor fails even for an invertible
//     matrix. The covariance-like matrices of match quality are symmetric
//     positive definite, for which every leading minor is positive.
func LU(m Matrix) (Matrix, Matrix, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	a, err := toDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	n := a.r
	l, _ := NewDense(n, n)
	u, _ := NewDense(n, n)
	for i := 0; i < n; i++ {
		l.data[i*n+i] = 1.0
	}

	var sum float64
	for i := 0; i < n; i++ {
		base := i * n
		for j := i; j < n; j++ {
			sum = ZeroSum
			for k := 0; k < i; k++ {
				sum += l.data[base+k] * u.data[k*n+j]
			}
			u.data[base+j] = a.data[base+j] - sum
		}

		pivot := u.data[base+i]
		if pivot == ZeroPivot {
			return nil, nil, matrixErrorf(opLU, ErrSingular)
		}

		for j := i + 1; j < n; j++ {
			sum = ZeroSum
			baseJ := j * n
			for k := 0; k < i; k++ {
				sum += l.data[baseJ+k] * u.data[k*n+i]
			}
			l.data[baseJ+i] = (a.data[baseJ+i] - sum) / pivot
		}
	}

	return l, u, nil
}

// Inverse computes A⁻¹ through LU followed by forward and back substitution
// against each unit vector.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Inverse(m Matrix) (Matrix, error) {
	lm, um, err := LU(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	l, u := lm.(*Dense), um.(*Dense)

	n := l.r
	inv, _ := NewDense(n, n)
	y := make([]float64, n) // forward substitution workspace
	x := make([]float64, n) // backward substitution workspace
	var sum float64
	for col := 0; col < n; col++ {
		// L*y = e_col
		for i := 0; i < n; i++ {
			sum = ZeroSum
			base := i * n
			for k := 0; k < i; k++ {
				sum += l.data[base+k] * y[k]
			}
			if i == col {
				y[i] = 1.0 - sum
			} else {
				y[i] = -sum
			}
		}
		// U*x = y
		for i := n - 1; i >= 0; i-- {
			sum = ZeroSum
			base := i * n
			for k := i + 1; k < n; k++ {
				sum += u.data[base+k] * x[k]
			}
			x[i] = (y[i] - sum) / u.data[base+i]
		}
		for i := 0; i < n; i++ {
			inv.data[i*n+col] = x[i]
		}
	}

	return inv, nil
}

// Determinant returns det(A) using Gaussian elimination with partial
// pivoting. A matrix whose elimination meets an exactly zero column returns 0
// rather than an error: singularity is a value here, not a failure.
//
// Implementation:
//   - Stage 1: Clone A into a scratch matrix.
//   - Stage 2: for each column pick the largest |pivot|, swap rows (flipping
//     the sign), eliminate below.
//   - Stage 3: det = sign · Π diag.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
func Determinant(m Matrix) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	src, err := toDense(m)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	n := src.r
	a := src.Clone().(*Dense).data

	det := 1.0
	for k := 0; k < n; k++ {
		p := k
		for i := k + 1; i < n; i++ {
			if math.Abs(a[i*n+k]) > math.Abs(a[p*n+k]) {
				p = i
			}
		}
		if a[p*n+k] == ZeroPivot {
			return 0, nil
		}
		if p != k {
			for j := 0; j < n; j++ {
				a[k*n+j], a[p*n+j] = a[p*n+j], a[k*n+j]
			}
			det = -det
		}

		pivot := a[k*n+k]
		det *= pivot
		for i := k + 1; i < n; i++ {
			f := a[i*n+k] / pivot
			if f == 0 {
				continue
			}
			for j := k; j < n; j++ {
				a[i*n+j] -= f * a[k*n+j]
			}
		}
	}

	return det, nil
}
