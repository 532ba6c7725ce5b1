// Package tsp - validation shared by the exact solver entry points.
//
// Checks run in a fixed priority order so that the same malformed call
// always reports the same sentinel:
//
//	shape → (n==0 short-circuit) → cost values → indices → (n==1) → endpoints → size.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinels from types.go.
package tsp

import (
	"fmt"

	"github.com/katalvlaran/lvroute/matrix"
)

// validateShape verifies dist is non-nil and square and returns its order.
//
// Complexity: O(1).
func validateShape(dist matrix.Matrix) (int, error) {
	if err := matrix.ValidateSquare(dist); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrShape, err)
	}

	return dist.Rows(), nil
}

// validateQuery runs every check that follows the shape check for an n>0
// instance. It does not handle n==0 (callers short-circuit first).
//
// Complexity: O(n²) for the cost scan.
func validateQuery(dist matrix.Matrix, n, start, end int, o Options) error {
	// +Inf is a legal “no direct edge”; it surfaces later as ErrInfeasible.
	if err := matrix.ValidateCost(dist, true); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCost, err)
	}
	if err := validateVertex("start", start, n); err != nil {
		return err
	}
	if err := validateVertex("end", end, n); err != nil {
		return err
	}
	if n == 1 {
		return nil
	}
	if start == end {
		return fmt.Errorf("%w: start=end=%d, n=%d", ErrClosedPath, start, n)
	}
	if n > o.maxNodes {
		return fmt.Errorf("%w: n=%d, limit %d", ErrTooLarge, n, o.maxNodes)
	}

	return nil
}

// validateVertex verifies v∈[0, n).
//
// Complexity: O(1).
func validateVertex(name string, v, n int) error {
	if v < 0 || v >= n {
		return fmt.Errorf("%w: %s=%d, n=%d", ErrIndex, name, v, n)
	}

	return nil
}
