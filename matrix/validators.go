// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for cost-matrix checks.
//  - Keep builders and solvers minimal by delegating shape/value checks here.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Symmetry check runs O(n²) on the upper triangle only.
//
// Note:
//  - Composite validators follow a fixed sequence (NotNil → Square → values).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
//
// Errors: ErrNilMatrix if nil, ErrNonSquare if not square.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf(fmt.Sprintf("ValidateSquare: %dx%d", m.Rows(), m.Cols()), ErrNonSquare)
	}

	return nil
}

// ValidateRows checks that a raw table is square: every row has exactly
// len(rows) entries. An empty table is square.
//
// Complexity: O(n).
func ValidateRows(rows [][]float64) error {
	n := len(rows)
	for i := range rows {
		if len(rows[i]) != n {
			return validatorErrorf(fmt.Sprintf("ValidateRows: row %d has %d entries, want %d", i, len(rows[i]), n), ErrNonSquare)
		}
	}

	return nil
}

// ValidateCost checks the cost semantics of a square matrix:
//   - NaN anywhere ⇒ ErrNaNInf,
//   - −Inf off-diagonal ⇒ ErrNaNInf; +Inf off-diagonal ⇒ ErrNaNInf unless allowInf,
//   - negative off-diagonal ⇒ ErrNegativeWeight.
//
// Diagonal entries other than NaN are ignored: solvers never read them.
// Assumes ValidateSquare passed.
//
// Complexity: O(n²).
func ValidateCost(m Matrix, allowInf bool) error {
	var (
		n    = m.Rows()
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if v, err = m.At(i, j); err != nil {
				return validatorErrorf("ValidateCost", err)
			}
			if math.IsNaN(v) {
				return validatorErrorf(fmt.Sprintf("ValidateCost: a[%d][%d]", i, j), ErrNaNInf)
			}
			if i == j {
				continue
			}
			if math.IsInf(v, -1) || (math.IsInf(v, 1) && !allowInf) {
				return validatorErrorf(fmt.Sprintf("ValidateCost: a[%d][%d]", i, j), ErrNaNInf)
			}
			if v < 0 {
				return validatorErrorf(fmt.Sprintf("ValidateCost: a[%d][%d]=%g", i, j, v), ErrNegativeWeight)
			}
		}
	}

	return nil
}

// ValidateSymmetric checks |a_ij − a_ji| ≤ tol for all i<j.
// Two +Inf entries are treated as equal. Assumes ValidateSquare passed.
//
// Complexity: O(n²) over the upper triangle.
func ValidateSymmetric(m Matrix, tol float64) error {
	var (
		n        = m.Rows()
		i, j     int
		aij, aji float64
		err      error
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if aij, err = m.At(i, j); err != nil {
				return validatorErrorf("ValidateSymmetric", err)
			}
			if aji, err = m.At(j, i); err != nil {
				return validatorErrorf("ValidateSymmetric", err)
			}
			if aij == aji {
				continue
			}
			if math.Abs(aij-aji) > tol {
				return validatorErrorf(fmt.Sprintf("ValidateSymmetric: a[%d][%d]", i, j), ErrAsymmetry)
			}
		}
	}

	return nil
}
