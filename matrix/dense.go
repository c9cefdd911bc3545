// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Reject NaN/Inf on Set so non-finite values never enter a kernel.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// error context tags
const (
	ctxAt  = "At"
	ctxSet = "Set"
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices,
// e.g. "Dense.At(3,1): matrix: index out of range".
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int
	data []float64
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix.
//
// Errors:
//   - ErrInvalidDimensions when rows <= 0 or cols <= 0.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewFromRows copies a rectangular slice of rows into a new Dense.
//
// Errors:
//   - ErrInvalidDimensions for an empty input or an empty first row.
//   - ErrDimensionMismatch for ragged rows.
//   - ErrNaNInf for non-finite entries.
func NewFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("NewFromRows: %w", ErrInvalidDimensions)
	}
	m, err := NewDense(len(rows), len(rows[0]))
	if err != nil {
		return nil, fmt.Errorf("NewFromRows: %w", err)
	}
	for i, row := range rows {
		if len(row) != m.c {
			return nil, fmt.Errorf("NewFromRows: row %d has %d values, want %d: %w", i, len(row), m.c, ErrDimensionMismatch)
		}
		for j, v := range row {
			if err = m.Set(i, j, v); err != nil {
				return nil, fmt.Errorf("NewFromRows: %w", err)
			}
		}
	}

	return m, nil
}

// NewFromColumns builds a rows×len(columns) matrix column by column. A column
// shorter than rows is zero-padded at the bottom; a longer one is rejected.
// This is the natural layout for assignment matrices whose columns are
// written one pairing at a time.
//
// Errors:
//   - ErrInvalidDimensions for rows <= 0 or no columns.
//   - ErrDimensionMismatch for a column longer than rows.
//   - ErrNaNInf for non-finite entries.
func NewFromColumns(rows int, columns [][]float64) (*Dense, error) {
	m, err := NewDense(rows, len(columns))
	if err != nil {
		return nil, fmt.Errorf("NewFromColumns: %w", err)
	}
	for j, col := range columns {
		if len(col) > rows {
			return nil, fmt.Errorf("NewFromColumns: column %d has %d values, want <= %d: %w", j, len(col), rows, ErrDimensionMismatch)
		}
		for i, v := range col {
			if err = m.Set(i, j, v); err != nil {
				return nil, fmt.Errorf("NewFromColumns: %w", err)
			}
		}
	}

	return m, nil
}

// NewDiagonal returns the n×n matrix with values on its diagonal.
func NewDiagonal(values []float64) (*Dense, error) {
	n := len(values)
	m, err := NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("NewDiagonal: %w", err)
	}
	for i, v := range values {
		if err = m.Set(i, i, v); err != nil {
			return nil, fmt.Errorf("NewDiagonal: %w", err)
		}
	}

	return m, nil
}

// NewColumn returns the n×1 column vector holding values.
func NewColumn(values []float64) (*Dense, error) {
	m, err := NewDense(len(values), 1)
	if err != nil {
		return nil, fmt.Errorf("NewColumn: %w", err)
	}
	for i, v := range values {
		if err = m.Set(i, 0, v); err != nil {
			return nil, fmt.Errorf("NewColumn: %w", err)
		}
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// indexOf validates (row, col) and returns the flat offset.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the element at (row, col).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set writes v at (row, col). Non-finite values are rejected.
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy.
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// String renders one bracketed row per line, e.g. "[1, 2]\n[3, 4]\n".
func (m *Dense) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteString("[")
		base := i * m.c
		for j := 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%g", m.data[base+j])
		}
		b.WriteString("]\n")
	}

	return b.String()
}

// toDense returns m itself when it is a *Dense, otherwise a Dense copy.
// Used by the O(n³) kernels, which only run on flat storage.
func toDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	d, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	for i := 0; i < d.r; i++ {
		for j := 0; j < d.c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			d.data[i*d.c+j] = v
		}
	}

	return d, nil
}
