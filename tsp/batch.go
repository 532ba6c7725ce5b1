// Package tsp - concurrent solving of independent queries.
package tsp

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// SolveAll runs HeldKarpPath for every query with at most WithWorkers
// solves in flight. Results are index-aligned with queries.
//
// Each solve allocates its own DP table, so peak memory is roughly
// workers × n·2ⁿ for the largest instances; lower WithWorkers for big n.
//
// The first failing query cancels the remaining ones and its error is
// returned, wrapped with the query index. ctx is checked before each solve
// starts; a solve already running is not interrupted.
func SolveAll(ctx context.Context, queries []Query, opts ...Option) ([]PathResult, error) {
	o := gatherOptions(opts...)
	out := make([]PathResult, len(queries))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)

	for i := range queries {
		q := queries[i]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := HeldKarpPath(q.Dist, q.Start, q.End, opts...)
			if err != nil {
				return fmt.Errorf("query %d: %w", i, err)
			}
			out[i] = res

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
