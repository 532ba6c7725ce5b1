package tsp

import (
	"errors"

	"github.com/katalvlaran/lvroute/matrix"
)

// Sentinel errors. Every failure returned by this package matches exactly
// one of them under errors.Is; context is added with fmt.Errorf("...: %w").
// All of them describe a malformed call and are never worth retrying.
var (
	// ErrShape is returned when the cost matrix is nil, not square, or
	// (for raw tables) jagged. It is checked before anything else.
	ErrShape = errors.New("tsp: matrix is not square")

	// ErrIndex is returned when start or end is outside [0, n).
	ErrIndex = errors.New("tsp: vertex index out of range")

	// ErrInfeasible is returned when no Hamiltonian start→end path exists
	// under the given costs (some required edge is +Inf).
	ErrInfeasible = errors.New("tsp: no hamiltonian path between start and end")

	// ErrInvalidCost is returned for NaN, −Inf or negative off-diagonal costs.
	ErrInvalidCost = errors.New("tsp: invalid edge cost")

	// ErrClosedPath is returned when start == end on more than one node:
	// that is a Hamiltonian cycle request, which a path solver does not serve.
	ErrClosedPath = errors.New("tsp: start equals end on a multi-node instance")

	// ErrTooLarge is returned when n exceeds the configured node limit.
	// The DP table needs n·2ⁿ slots; see WithMaxNodes.
	ErrTooLarge = errors.New("tsp: instance exceeds node limit")

	// ErrInvalidPath is returned by ValidatePath for malformed paths.
	ErrInvalidPath = errors.New("tsp: invalid path")
)

// PathResult holds the outcome of an exact path solve.
type PathResult struct {
	// Path is the visiting order. For n ≥ 1, len(Path) == n,
	// Path[0] == start, Path[n-1] == end, and every vertex appears once.
	// For n == 0 it is empty.
	Path []int

	// Cost is the total cost of the consecutive edges of Path.
	Cost float64
}

// Query is one independent solve request: a cost matrix plus endpoints.
type Query struct {
	Dist  matrix.Matrix
	Start int
	End   int
}
