package tsp_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvroute/tsp"
	"github.com/stretchr/testify/require"
)

func TestValidatePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		path          []int
		n, start, end int
		want          error
	}{
		{"empty ok", []int{}, 0, 3, 1, nil},
		{"single ok", []int{0}, 1, 0, 0, nil},
		{"full ok", []int{2, 3, 1, 0}, 4, 2, 0, nil},
		{"short", []int{2, 3, 0}, 4, 2, 0, tsp.ErrInvalidPath},
		{"wrong start", []int{3, 2, 1, 0}, 4, 2, 0, tsp.ErrInvalidPath},
		{"wrong end", []int{2, 3, 0, 1}, 4, 2, 0, tsp.ErrInvalidPath},
		{"repeat", []int{2, 3, 3, 0}, 4, 2, 0, tsp.ErrInvalidPath},
		{"out of range", []int{2, 7, 1, 0}, 4, 2, 0, tsp.ErrIndex},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tsp.ValidatePath(tc.path, tc.n, tc.start, tc.end)
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestPathCost(t *testing.T) {
	t.Parallel()

	dist := mustCost(t, knownRows)

	c, err := tsp.PathCost(dist, []int{2, 3, 1, 0})
	require.NoError(t, err)
	require.Equal(t, 65.0, c)

	c, err = tsp.PathCost(dist, []int{1})
	require.NoError(t, err)
	require.Zero(t, c)

	_, err = tsp.PathCost(dist, []int{0, 9})
	require.ErrorIs(t, err, tsp.ErrIndex)

	_, err = tsp.PathCost(nil, []int{0, 1})
	require.ErrorIs(t, err, tsp.ErrShape)

	gap := mustCost(t, [][]float64{{0, math.Inf(1)}, {1, 0}})
	_, err = tsp.PathCost(gap, []int{0, 1})
	require.ErrorIs(t, err, tsp.ErrInfeasible)
}
