// Package tsp provides an exact solver for the fixed-endpoint Travelling
// Salesman Path problem on a cost matrix (matrix.Matrix).
//
//   - HeldKarpPath: Held–Karp dynamic program: the cheapest path that
//     starts at start, ends at end and visits every vertex exactly once.
//
//   - Complexity: O(n²·2ⁿ)
//
//   - Memory:     O(n·2ⁿ), capped by WithMaxNodes (DefaultMaxNodes = 20).
//
//   - Supports “missing” edges via math.Inf(1); see WithMetricClosure.
//
//   - MinPathCost: the same solve over a raw [][]float64, cost only.
//
//   - SolveAll: independent queries in parallel, one table per query.
//
//   - ValidatePath / PathCost: check and price a returned path.
//
// Conventions:
//   - n == 0 costs 0 (empty path); n == 1 costs 0 (path [0]).
//   - start == end with n > 1 is a cycle request and fails with ErrClosedPath.
//   - All failures are sentinels from types.go, matched with errors.Is.
//
// Use this package for small instances; each extra vertex doubles both time
// and memory.
package tsp
