// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the cost builders.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvroute/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestNewCost covers shape and value policy, in priority order.
func TestNewCost(t *testing.T) {
	t.Parallel()

	inf := math.Inf(1)
	tests := []struct {
		name string
		rows [][]float64
		opts []matrix.Option
		want error
	}{
		{"empty", [][]float64{}, nil, nil},
		{"nil", nil, nil, nil},
		{"1x1 any diagonal", [][]float64{{5}}, nil, nil},
		{"2 rows of 3", [][]float64{{0, 1, 2}, {0, 1, 2}}, nil, matrix.ErrNonSquare},
		{"jagged", [][]float64{{0, 1}, {1}}, nil, matrix.ErrNonSquare},
		{"negative", [][]float64{{0, -1}, {1, 0}}, nil, matrix.ErrNegativeWeight},
		{"nan diagonal", [][]float64{{math.NaN(), 1}, {1, 0}}, nil, matrix.ErrNaNInf},
		{"inf rejected", [][]float64{{0, inf}, {1, 0}}, nil, matrix.ErrNaNInf},
		{"inf allowed", [][]float64{{0, inf}, {1, 0}}, []matrix.Option{matrix.WithAllowInf()}, nil},
		{"neg inf never allowed", [][]float64{{0, math.Inf(-1)}, {1, 0}}, []matrix.Option{matrix.WithAllowInf()}, matrix.ErrNaNInf},
		{"asymmetric", [][]float64{{0, 1}, {2, 0}}, []matrix.Option{matrix.WithSymmetric(1e-9)}, matrix.ErrAsymmetry},
		{"symmetric", [][]float64{{0, 1}, {1, 0}}, []matrix.Option{matrix.WithSymmetric(1e-9)}, nil},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m, err := matrix.NewCost(tc.rows, tc.opts...)
			if tc.want != nil {
				require.ErrorIs(t, err, tc.want)
				require.Nil(t, m)
				return
			}
			require.NoError(t, err)
			require.Equal(t, len(tc.rows), m.Rows())
			require.Equal(t, m.Rows(), m.Cols())
		})
	}
}

// TestNewCost_DoesNotRetainInput checks the builder copies its input.
func TestNewCost_DoesNotRetainInput(t *testing.T) {
	t.Parallel()

	rows := [][]float64{{0, 3}, {4, 0}}
	m, err := matrix.NewCost(rows)
	require.NoError(t, err)

	rows[0][1] = 100
	v, err := m.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 3.0, v)
}

// TestWithSymmetric_PanicsOnBadEps keeps the programmer-error contract.
func TestWithSymmetric_PanicsOnBadEps(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { matrix.WithSymmetric(-1) })
	require.Panics(t, func() { matrix.WithSymmetric(math.NaN()) })
}

// TestGonumRoundTrip converts through gonum and back.
func TestGonumRoundTrip(t *testing.T) {
	t.Parallel()

	g := mat.NewDense(3, 3, []float64{
		0, 1, 2,
		1, 0, 3,
		2, 3, 0,
	})
	d, err := matrix.FromGonum(g, matrix.WithSymmetric(0))
	require.NoError(t, err)

	v, err := d.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 3.0, v)

	back, err := d.Gonum()
	require.NoError(t, err)
	require.True(t, mat.Equal(g, back))

	_, err = matrix.FromGonum(mat.NewDense(2, 3, nil))
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = matrix.FromGonum(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	empty, err := matrix.NewCost(nil)
	require.NoError(t, err)
	_, err = empty.Gonum()
	require.ErrorIs(t, err, matrix.ErrBadShape)
}
