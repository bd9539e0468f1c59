// Package terrain provides simple analytic elevation models for the
// geolocation ray-march. Real deployments supply their own lookup backed by a
// DEM; these models cover tools, tests, and flat-earth fallbacks.
package terrain

import (
	"math"

	"gimbalgeo/pkg/frame"
	"gimbalgeo/pkg/geolocate"
)

// Flat returns an elevation model of a level plane at h meters above the
// ellipsoid.
func Flat(h float64) geolocate.ElevationFunc {
	return func(lat, lon float64) float64 {
		return h
	}
}

// NorthSlope returns an elevation model rising linearly northward from base
// at refLat, with the given gradient in meters of height per meter north.
// Useful for exercising the fine-step search against non-level ground.
func NorthSlope(base, refLat, gradient float64) geolocate.ElevationFunc {
	return func(lat, lon float64) float64 {
		return base + (lat-refLat)*frame.MeanRadius*gradient
	}
}

// Ridge returns an elevation model with a cosine ridge of the given height
// and half-width centered at centerLat, on top of a base plane. The profile
// is smooth, so the coarse-then-fine march can bracket it without cliffs.
func Ridge(base, height, centerLat, halfWidthM float64) geolocate.ElevationFunc {
	return func(lat, lon float64) float64 {
		d := (lat - centerLat) * frame.MeanRadius
		if math.Abs(d) >= halfWidthM {
			return base
		}
		return base + height*0.5*(1+math.Cos(math.Pi*d/halfWidthM))
	}
}
