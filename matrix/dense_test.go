// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trueskill/matrix"
)

func TestNewDenseValidatesShape(t *testing.T) {
	_, err := matrix.NewDense(0, 3)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDense(2, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Zero(t, v)
}

func TestDenseAtSetBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 0, 4.5))
	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 4.5, v)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)
}

func TestDenseCloneIsDeep(t *testing.T) {
	m, err := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 99))
	v, _ := m.At(0, 0)
	require.Equal(t, 1.0, v)
	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}

func TestConstructors(t *testing.T) {
	d, err := matrix.NewDiagonal([]float64{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, "[1, 0, 0]\n[0, 2, 0]\n[0, 0, 3]\n", d.String())

	col, err := matrix.NewColumn([]float64{5, 6})
	require.NoError(t, err)
	require.Equal(t, 2, col.Rows())
	require.Equal(t, 1, col.Cols())

	// short columns are zero-padded at the bottom
	a, err := matrix.NewFromColumns(3, [][]float64{{1, -1}, {0, 1, -1}})
	require.NoError(t, err)
	require.Equal(t, "[1, 0]\n[-1, 1]\n[0, -1]\n", a.String())

	_, err = matrix.NewFromColumns(1, [][]float64{{1, 2}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewFromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewFromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDiagonal(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}
