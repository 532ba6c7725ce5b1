// Package matrix provides the cost-matrix representation consumed by the
// exact path solvers in package tsp.
//
// The matrix package provides:
//
//   - Matrix, a minimal read/write interface (Rows, Cols, At, Set, Clone).
//   - Dense, a flat row-major implementation; 0×0 is a valid empty table.
//   - NewCost and FromGonum builders that validate shape and cost semantics
//     once, up front: square, no NaN, no negative off-diagonal entries, and
//     +Inf (“no direct edge”) only when WithAllowInf is given.
//   - FloydWarshall, an in-place metric closure for incomplete tables.
//
// Diagonal entries are carried but never read by solvers.
package matrix
