// Package tsp - path utilities shared by the solver, SolveAll and callers.
//
// A path here is an open Hamiltonian path: n entries, no closing vertex.
package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvroute/matrix"
	"github.com/yourbasic/bit"
)

// ValidatePath enforces Hamiltonian-path invariants:
//
//	len(path) == n, path[0] == start, path[n-1] == end,
//	each vertex v∈[0..n-1] appears exactly once.
//
// The empty path is valid for n == 0 regardless of start and end.
//
// Complexity: O(n) time, O(n) bits of space.
func ValidatePath(path []int, n, start, end int) error {
	if len(path) != n {
		return fmt.Errorf("%w: length %d, want %d", ErrInvalidPath, len(path), n)
	}
	if n == 0 {
		return nil
	}
	if path[0] != start || path[n-1] != end {
		return fmt.Errorf("%w: endpoints %d→%d, want %d→%d", ErrInvalidPath, path[0], path[n-1], start, end)
	}

	seen := bit.New()
	for i, v := range path {
		if v < 0 || v >= n {
			return fmt.Errorf("%w: path[%d]=%d, n=%d", ErrIndex, i, v, n)
		}
		if seen.Contains(v) {
			return fmt.Errorf("%w: vertex %d repeated at position %d", ErrInvalidPath, v, i)
		}
		seen.Add(v)
	}

	return nil
}

// PathCost sums dist(path[i], path[i+1]) over consecutive pairs.
// A single-vertex or empty path costs 0. A +Inf edge yields ErrInfeasible.
//
// Complexity: O(len(path)).
func PathCost(dist matrix.Matrix, path []int) (float64, error) {
	if _, err := validateShape(dist); err != nil {
		return 0, err
	}

	var (
		sum float64
		w   float64
		err error
	)
	for i := 0; i+1 < len(path); i++ {
		if w, err = dist.At(path[i], path[i+1]); err != nil {
			return 0, fmt.Errorf("%w: edge %d→%d: %w", ErrIndex, path[i], path[i+1], err)
		}
		if math.IsInf(w, 1) {
			return 0, fmt.Errorf("%w: missing edge %d→%d", ErrInfeasible, path[i], path[i+1])
		}
		sum += w
	}

	return sum, nil
}
