package geo_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvroute/geo"
	"github.com/stretchr/testify/require"
)

func TestHaversineKm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name             string
		a, b             geo.Point
		wantKm           float64
		tolerancePercent float64
	}{
		{"London to Paris", geo.Point{Lat: 51.5074, Lng: -0.1278}, geo.Point{Lat: 48.8566, Lng: 2.3522}, 343.5, 1},
		{"Des Moines to Olympia", geo.Point{Lat: 41.5909, Lng: -93.6037}, geo.Point{Lat: 47.0379, Lng: -122.9007}, 2392.9, 0.1},
		{"quarter meridian", geo.Point{Lat: 0, Lng: 0}, geo.Point{Lat: 90, Lng: 0}, math.Pi / 2 * geo.EarthRadiusKm, 1e-9},
		{"short hop", geo.Point{Lat: 1.3521, Lng: 103.8198}, geo.Point{Lat: 1.3530, Lng: 103.8198}, 0.1, 5},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := geo.HaversineKm(tc.a, tc.b)
			require.InEpsilon(t, tc.wantKm, got, tc.tolerancePercent/100)
			require.InDelta(t, got, geo.HaversineKm(tc.b, tc.a), 1e-9)
		})
	}
}

func TestHaversineKm_SamePoint(t *testing.T) {
	t.Parallel()

	p := geo.Point{Lat: 41.5909, Lng: -93.6037}
	require.Zero(t, geo.HaversineKm(p, p))
}

func BenchmarkHaversineKm(b *testing.B) {
	a := geo.Point{Lat: 1.3521, Lng: 103.8198}
	c := geo.Point{Lat: 1.2905, Lng: 103.8520}
	for b.Loop() {
		geo.HaversineKm(a, c)
	}
}
