// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Canonical dense APSP (Floyd–Warshall) with deterministic loop order.
//   - Used as the metric-closure pass before exact path solving.
//
// Contract:
//   - Square matrix; +Inf means “no path”. The diagonal is forced to 0.

package matrix

import (
	"fmt"
	"math"
)

const opFloydWarshall = "FloydWarshall"

// floydWarshallInPlace runs APSP closure on a square *Dense in-place.
//
// Loop order is fixed (k → i → j) for deterministic accumulation.
// Time: O(n^3); Extra space: O(1).
func floydWarshallInPlace(d *Dense) {
	var (
		n            = d.r
		data         = d.data
		k, i, j      int
		baseK, baseI int
		ik, kj, cand float64
	)

	for i = 0; i < n; i++ {
		data[i*n+i] = 0
	}

	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if math.IsInf(ik, 1) {
				continue // no path via k can improve i→j
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if math.IsInf(kj, 1) {
					continue
				}
				cand = ik + kj
				if cand < data[baseI+j] { // strict improvement only
					data[baseI+j] = cand
				}
			}
		}
	}
}

// FloydWarshall computes all-pairs shortest paths in-place on m, so that
// afterwards a[i][j] is the cheapest cost of reaching j from i through any
// intermediate vertices. Entries that stay +Inf are unreachable.
//
// Complexity: Time O(n^3), Extra space O(1).
func FloydWarshall(m Matrix) error {
	if err := ValidateSquare(m); err != nil {
		return fmt.Errorf("%s: %w", opFloydWarshall, err)
	}

	if d, ok := m.(*Dense); ok {
		floydWarshallInPlace(d)

		return nil
	}

	// Generic interface fallback.
	var (
		n             = m.Rows()
		k, i, j       int
		dik, dkj, dij float64
		err           error
	)
	for i = 0; i < n; i++ {
		if err = m.Set(i, i, 0); err != nil {
			return fmt.Errorf("%s: %w", opFloydWarshall, err)
		}
	}
	for k = 0; k < n; k++ {
		for i = 0; i < n; i++ {
			if dik, err = m.At(i, k); err != nil {
				return fmt.Errorf("%s: %w", opFloydWarshall, err)
			}
			if math.IsInf(dik, 1) {
				continue
			}
			for j = 0; j < n; j++ {
				if dkj, err = m.At(k, j); err != nil {
					return fmt.Errorf("%s: %w", opFloydWarshall, err)
				}
				if math.IsInf(dkj, 1) {
					continue
				}
				if dij, err = m.At(i, j); err != nil {
					return fmt.Errorf("%s: %w", opFloydWarshall, err)
				}
				if dik+dkj < dij {
					if err = m.Set(i, j, dik+dkj); err != nil {
						return fmt.Errorf("%s: %w", opFloydWarshall, err)
					}
				}
			}
		}
	}

	return nil
}
