package location

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/lvroute/geo"
	"github.com/katalvlaran/lvroute/matrix"
)

// DistanceSource prices the move from a to b, in kilometres.
type DistanceSource interface {
	Distance(ctx context.Context, a, b Record) (float64, error)
}

// DistanceFunc adapts a plain function to DistanceSource.
type DistanceFunc func(ctx context.Context, a, b Record) (float64, error)

// Distance calls f.
func (f DistanceFunc) Distance(ctx context.Context, a, b Record) (float64, error) {
	return f(ctx, a, b)
}

// Haversine is the great-circle DistanceSource.
var Haversine DistanceSource = DistanceFunc(func(_ context.Context, a, b Record) (float64, error) {
	return geo.HaversineKm(a.Point(), b.Point()), nil
})

// CostMatrix builds the n×n matrix of src distances between the records of
// s, with a zero diagonal. Entry (i, j) is src.Distance(s[i], s[j]); a
// source may return +Inf for an unreachable pair.
//
// ctx is checked once per row.
func (s Set) CostMatrix(ctx context.Context, src DistanceSource) (*matrix.Dense, error) {
	n := len(s)
	rows := make([][]float64, n)
	for i := range s {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rows[i] = make([]float64, n)
		for j := range s {
			if i == j {
				continue
			}
			d, err := src.Distance(ctx, s[i], s[j])
			if err != nil {
				return nil, fmt.Errorf("location: distance %s→%s: %w", s[i].Capital, s[j].Capital, err)
			}
			switch {
			case math.IsNaN(d):
				return nil, fmt.Errorf("location: distance %s→%s: %w", s[i].Capital, s[j].Capital, matrix.ErrNaNInf)
			case d < 0:
				return nil, fmt.Errorf("location: distance %s→%s = %g: %w", s[i].Capital, s[j].Capital, d, matrix.ErrNegativeWeight)
			}
			rows[i][j] = d
		}
	}

	return matrix.NewCost(rows, matrix.WithAllowInf())
}
