package tsp_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvroute/tsp"
	"github.com/stretchr/testify/require"
)

func TestSolveAll_MatchesSequential(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(seedDet))
	shared := mustCost(t, euclid(rng, 9))

	var queries []tsp.Query
	for s := 0; s < 9; s++ {
		for e := 0; e < 9; e++ {
			if s != e {
				queries = append(queries, tsp.Query{Dist: shared, Start: s, End: e})
			}
		}
	}
	queries = append(queries, tsp.Query{Dist: mustCost(t, knownRows), Start: 2, End: 0})

	got, err := tsp.SolveAll(context.Background(), queries, tsp.WithWorkers(4))
	require.NoError(t, err)
	require.Len(t, got, len(queries))

	for i, q := range queries {
		want, err := tsp.HeldKarpPath(q.Dist, q.Start, q.End)
		require.NoError(t, err)
		require.Equal(t, want, got[i], "query %d", i)
	}
	require.Equal(t, 65.0, got[len(got)-1].Cost)
}

func TestSolveAll_FirstErrorWins(t *testing.T) {
	t.Parallel()

	queries := []tsp.Query{
		{Dist: mustCost(t, knownRows), Start: 2, End: 0},
		{Dist: mustCost(t, knownRows), Start: 9, End: 0},
	}
	got, err := tsp.SolveAll(context.Background(), queries, tsp.WithWorkers(1))
	require.ErrorIs(t, err, tsp.ErrIndex)
	require.ErrorContains(t, err, "query 1")
	require.Nil(t, got)
}

func TestSolveAll_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := tsp.SolveAll(ctx, []tsp.Query{{Dist: mustCost(t, knownRows), Start: 2, End: 0}})
	require.ErrorIs(t, err, context.Canceled)
}

func TestSolveAll_Empty(t *testing.T) {
	t.Parallel()

	got, err := tsp.SolveAll(context.Background(), nil)
	require.NoError(t, err)
	require.Empty(t, got)
}
