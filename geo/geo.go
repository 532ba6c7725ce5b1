// Package geo provides great-circle distances between latitude/longitude
// points, in kilometres on a spherical Earth.
package geo

import (
	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
)

// EarthRadiusKm is the mean Earth radius used for every distance here.
const EarthRadiusKm = 6371.0

// Point is a WGS84 coordinate in decimal degrees.
type Point struct {
	Lat float64
	Lng float64
}

// Orb returns p in orb's [lon, lat] order.
func (p Point) Orb() orb.Point { return orb.Point{p.Lng, p.Lat} }

// HaversineKm returns the great-circle distance between a and b in km.
//
// orb measures on its equatorial radius, so the result is rescaled to
// EarthRadiusKm. The function is symmetric and zero for equal points.
func HaversineKm(a, b Point) float64 {
	if a == b {
		return 0
	}

	return orbgeo.DistanceHaversine(a.Orb(), b.Orb()) / orb.EarthRadius * EarthRadiusKm
}
