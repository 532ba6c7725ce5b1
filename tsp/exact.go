package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvroute/matrix"
)

// noParent marks a DP slot without a recorded predecessor.
const noParent int8 = -1

// HeldKarpPath returns a minimum-cost path that starts at start, ends at end
// and visits every vertex of dist exactly once, using the Held–Karp
// dynamic program specialised to fixed endpoints (a Hamiltonian path, not
// a cycle).
//
// dist is an n×n cost matrix; dist(i,j) is the cost of moving from i to j.
// Off-diagonal costs must be non-negative; +Inf means “no direct edge”.
// The diagonal is never read.
//
// Degenerate instances:
//   - n == 0: Cost 0 and an empty Path, whatever start and end are.
//   - n == 1: Cost 0 and Path [0]; start and end must both be 0.
//
// Errors (see types.go), in check order: ErrShape, ErrInvalidCost, ErrIndex,
// ErrClosedPath, ErrTooLarge, then ErrInfeasible when no path exists.
//
// State: best(S, j) = cheapest path from start over exactly the vertices of
// S ending at j, stored densely at S*n + j with +Inf meaning “no such state”.
// Subsets are processed by increasing size, and only subsets that exclude
// end are built: the answer reads best(Full\{end}, k) alone.
//
// Time complexity:   O(n² · 2ⁿ)
// Memory complexity: O(n · 2ⁿ), bounded by WithMaxNodes (DefaultMaxNodes).
//
// Each call owns its table, so concurrent calls on a shared, unmodified
// matrix are safe.
func HeldKarpPath(dist matrix.Matrix, start, end int, opts ...Option) (PathResult, error) {
	o := gatherOptions(opts...)

	n, err := validateShape(dist)
	if err != nil {
		return PathResult{}, err
	}
	if n == 0 {
		return PathResult{Path: []int{}}, nil
	}
	if err = validateQuery(dist, n, start, end, o); err != nil {
		return PathResult{}, err
	}
	if n == 1 {
		return PathResult{Path: []int{0}}, nil
	}

	if o.metricClosure {
		dist = dist.Clone()
		if err = matrix.FloydWarshall(dist); err != nil {
			return PathResult{}, fmt.Errorf("tsp: metric closure: %w", err)
		}
	}

	w, err := flatten(dist, n)
	if err != nil {
		return PathResult{}, err
	}

	return heldKarp(w, n, start, end, o.onSubset)
}

// MinPathCost is the raw-table form of HeldKarpPath: it validates that dist
// is square (every row has len(dist) entries) and returns only the optimal
// cost. A jagged or rectangular table fails with ErrShape before any other
// check, even when it is non-empty.
//
// Complexity: as HeldKarpPath.
func MinPathCost(dist [][]float64, start, end int, opts ...Option) (float64, error) {
	if err := matrix.ValidateRows(dist); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrShape, err)
	}

	m, err := matrix.NewCost(dist, matrix.WithAllowInf())
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidCost, err)
	}

	res, err := HeldKarpPath(m, start, end, opts...)
	if err != nil {
		return 0, err
	}

	return res.Cost, nil
}

// flatten copies dist into a row-major slice for the hot loop.
//
// Complexity: O(n²).
func flatten(dist matrix.Matrix, n int) ([]float64, error) {
	w := make([]float64, n*n)
	if d, ok := dist.(*matrix.Dense); ok {
		for i := 0; i < n; i++ {
			copy(w[i*n:(i+1)*n], d.Row(i))
		}

		return w, nil
	}

	var (
		i, j int
		err  error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if w[i*n+j], err = dist.At(i, j); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrShape, err)
			}
		}
	}

	return w, nil
}

// heldKarp runs the DP on a validated n≥2 instance with start≠end.
// trace, when non-nil, observes every subset in the order it is finalised.
func heldKarp(w []float64, n, start, end int, trace func(mask uint)) (PathResult, error) {
	var (
		inf      = math.Inf(1)
		full     = uint(1)<<uint(n) - 1
		startBit = uint(1) << uint(start)
		endBit   = uint(1) << uint(end)
		best     = make([]float64, int(full+1)*n)
		parent   = make([]int8, len(best))
		i, j, k  int
	)
	for i = range best {
		best[i] = inf
		parent[i] = noParent
	}
	best[int(startBit)*n+start] = 0

	// Base case: best({start, k}, k) = cost(start, k).
	for k = 0; k < n; k++ {
		if k == start || k == end {
			continue
		}
		mask := startBit | uint(1)<<uint(k)
		if trace != nil {
			trace(mask)
		}
		if c := w[start*n+k]; !math.IsInf(c, 1) {
			best[int(mask)*n+k] = c
			parent[int(mask)*n+k] = int8(start)
		}
	}

	// Transitions: sizes 3..n-1, each size complete before the next.
	var (
		size       int
		mask, prev uint
		bit        uint
		b, c, cand float64
		minCost    float64
		arg        int8
		pBase      int
	)
	for size = 3; size < n; size++ {
		for mask = firstSubset(size); mask <= full; mask = nextSubset(mask) {
			if mask&startBit == 0 || mask&endBit != 0 {
				continue
			}
			if trace != nil {
				trace(mask)
			}
			for j = 0; j < n; j++ {
				bit = uint(1) << uint(j)
				if j == start || mask&bit == 0 {
					continue
				}
				prev = mask ^ bit
				pBase = int(prev) * n
				minCost, arg = inf, noParent
				for k = 0; k < n; k++ {
					if prev&(uint(1)<<uint(k)) == 0 {
						continue
					}
					if b = best[pBase+k]; math.IsInf(b, 1) {
						continue // unreachable predecessor state
					}
					if c = w[k*n+j]; math.IsInf(c, 1) {
						continue // no edge k→j
					}
					if cand = b + c; cand < minCost {
						minCost, arg = cand, int8(k)
					}
				}
				if arg != noParent {
					best[int(mask)*n+j] = minCost
					parent[int(mask)*n+j] = arg
				}
			}
		}
	}

	// Close on end from every possible last interior vertex.
	var (
		rest     = full ^ endBit
		restBase = int(rest) * n
		total    = inf
		last     = -1
	)
	for k = 0; k < n; k++ {
		if k == end {
			continue
		}
		if b = best[restBase+k]; math.IsInf(b, 1) {
			continue
		}
		if c = w[k*n+end]; math.IsInf(c, 1) {
			continue
		}
		if cand = b + c; cand < total {
			total, last = cand, k
		}
	}
	if last < 0 {
		return PathResult{}, fmt.Errorf("%w: start=%d, end=%d", ErrInfeasible, start, end)
	}

	// Walk parents back from (rest, last) to ({start}, start).
	path := make([]int, n)
	path[n-1] = end
	mask, j = rest, last
	for i = n - 2; i >= 0; i-- {
		path[i] = j
		p := parent[int(mask)*n+j]
		mask ^= uint(1) << uint(j)
		j = int(p)
	}

	return PathResult{Path: path, Cost: total}, nil
}
