// Package tsp_test provides lightweight testing helpers shared across *_test.go
// files in this package: an independent matrix implementation, instance
// generators, and a brute-force oracle.
package tsp_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvroute/matrix"
	"github.com/stretchr/testify/require"
)

const (
	// epsTiny absorbs float summation-order differences between solvers.
	epsTiny = 1e-9

	// seedDet keeps every generated instance reproducible.
	seedDet = int64(42)
)

// knownRows is the 4-node instance whose optimum 2→3→1→0 costs 65.
var knownRows = [][]float64{
	{0, 10, 15, 20},
	{10, 0, 35, 25},
	{15, 35, 0, 30},
	{20, 25, 30, 0},
}

// testDense is a second Matrix implementation, used to make sure the solver
// does not depend on *matrix.Dense internals.
type testDense struct{ a [][]float64 }

var _ matrix.Matrix = testDense{}

func (m testDense) Rows() int { return len(m.a) }
func (m testDense) Cols() int {
	if len(m.a) == 0 {
		return 0
	}

	return len(m.a[0])
}
func (m testDense) At(i, j int) (float64, error) {
	if i < 0 || i >= m.Rows() || j < 0 || j >= m.Cols() {
		return 0, matrix.ErrOutOfRange
	}

	return m.a[i][j], nil
}
func (m testDense) Set(i, j int, v float64) error {
	if i < 0 || i >= m.Rows() || j < 0 || j >= m.Cols() {
		return matrix.ErrOutOfRange
	}
	m.a[i][j] = v

	return nil
}
func (m testDense) Clone() matrix.Matrix {
	cp := make([][]float64, len(m.a))
	for i := range m.a {
		cp[i] = append([]float64(nil), m.a[i]...)
	}

	return testDense{a: cp}
}

// mustCost builds a *matrix.Dense, allowing +Inf as “no edge”.
func mustCost(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewCost(rows, matrix.WithAllowInf())
	require.NoError(t, err)

	return m
}

// randomInts returns an n×n asymmetric matrix with integer costs in [0,100).
// Integer costs keep sums exact, so solver and oracle compare with ==.
func randomInts(rng *rand.Rand, n int) [][]float64 {
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			if i != j {
				rows[i][j] = float64(rng.Intn(100))
			}
		}
	}

	return rows
}

// euclid returns the pairwise distance table of random points in the unit
// square. Such tables are symmetric and satisfy the triangle inequality.
func euclid(rng *rand.Rand, n int) [][]float64 {
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i := 0; i < n; i++ {
		xs[i], ys[i] = rng.Float64(), rng.Float64()
	}
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			rows[i][j] = math.Hypot(xs[i]-xs[j], ys[i]-ys[j])
		}
	}

	return rows
}

// submatrix returns the leading k×k block of rows.
func submatrix(rows [][]float64, k int) [][]float64 {
	out := make([][]float64, k)
	for i := 0; i < k; i++ {
		out[i] = append([]float64(nil), rows[i][:k]...)
	}

	return out
}

// bruteForce enumerates every ordering of the interior vertices and returns
// the cheapest start→end cost, or +Inf if every ordering hits a missing edge.
// It shares no code with the solver.
func bruteForce(rows [][]float64, start, end int) float64 {
	n := len(rows)
	if n == 0 || n == 1 {
		return 0
	}
	mid := make([]int, 0, n-2)
	for v := 0; v < n; v++ {
		if v != start && v != end {
			mid = append(mid, v)
		}
	}

	best := math.Inf(1)
	var permute func(k int)
	permute = func(k int) {
		if k == len(mid) {
			cost, prev := 0.0, start
			for _, v := range mid {
				cost += rows[prev][v]
				prev = v
			}
			cost += rows[prev][end]
			if cost < best {
				best = cost
			}
			return
		}
		for i := k; i < len(mid); i++ {
			mid[k], mid[i] = mid[i], mid[k]
			permute(k + 1)
			mid[k], mid[i] = mid[i], mid[k]
		}
	}
	permute(0)

	return best
}
