// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Build cost matrices from raw tables and from gonum matrices.
//   - Apply the numeric policy from options.go once, at construction time.
//
// Contract:
//   - A raw table must be square: len(rows[i]) == len(rows) for every i.
//   - The empty table is a valid 0×0 cost matrix.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Operation name constants for unified error wrapping.
const (
	opNewCost   = "NewCost"
	opFromGonum = "FromGonum"
	opGonum     = "Dense.Gonum"
)

// NewCost copies a square table of edge costs into a fresh *Dense and
// validates it under the given options.
//
// Stage 1 (Shape): reject jagged or rectangular tables with ErrNonSquare.
// Stage 2 (Copy): row-major copy; the input is never retained.
// Stage 3 (Values): ValidateCost, then ValidateSymmetric when requested.
//
// Complexity: O(n²) time and memory.
func NewCost(rows [][]float64, opts ...Option) (*Dense, error) {
	if err := ValidateRows(rows); err != nil {
		return nil, fmt.Errorf("%s: %w", opNewCost, err)
	}

	var (
		n = len(rows)
		d = &Dense{r: n, c: n, data: make([]float64, n*n)}
		i int
	)
	for i = 0; i < n; i++ {
		copy(d.data[i*n:(i+1)*n], rows[i])
	}

	if err := applyPolicy(d, gatherOptions(opts...)); err != nil {
		return nil, fmt.Errorf("%s: %w", opNewCost, err)
	}

	return d, nil
}

// FromGonum copies a square gonum matrix into a cost *Dense.
//
// Complexity: O(n²).
func FromGonum(g mat.Matrix, opts ...Option) (*Dense, error) {
	if g == nil {
		return nil, fmt.Errorf("%s: %w", opFromGonum, ErrNilMatrix)
	}
	r, c := g.Dims()
	if r != c {
		return nil, fmt.Errorf("%s: %dx%d: %w", opFromGonum, r, c, ErrNonSquare)
	}

	var (
		d    = &Dense{r: r, c: c, data: make([]float64, r*c)}
		i, j int
	)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			d.data[i*c+j] = g.At(i, j)
		}
	}

	if err := applyPolicy(d, gatherOptions(opts...)); err != nil {
		return nil, fmt.Errorf("%s: %w", opFromGonum, err)
	}

	return d, nil
}

// Gonum returns a gonum copy of m. gonum has no zero-sized dense matrices,
// so an empty m yields ErrBadShape.
func (m *Dense) Gonum() (*mat.Dense, error) {
	if m.r == 0 || m.c == 0 {
		return nil, fmt.Errorf("%s: %dx%d: %w", opGonum, m.r, m.c, ErrBadShape)
	}
	data := make([]float64, len(m.data))
	copy(data, m.data)

	return mat.NewDense(m.r, m.c, data), nil
}

// applyPolicy runs the value validators selected by o.
func applyPolicy(d *Dense, o Options) error {
	if err := ValidateCost(d, o.allowInf); err != nil {
		return err
	}
	if o.symmetric {
		return ValidateSymmetric(d, o.eps)
	}

	return nil
}
