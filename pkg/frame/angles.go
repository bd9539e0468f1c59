// Package frame provides the coordinate-frame math used by the geolocation
// pipeline: angle wrapping, direction cosine matrices, quaternion and Euler
// conversions, and WGS84 LLA/ECEF/NED transforms.
//
// Conventions: angles are radians, positions are meters, and body-to-nav
// rotations follow the aerospace yaw-pitch-roll (ZYX) ordering.
package frame

import "math"

// MeanRadius is the WGS84 mean earth radius in meters, (2a+b)/3.
const MeanRadius = 6371008.7714

// Deg converts degrees to radians.
func Deg(d float64) float64 {
	return d * (math.Pi / 180.0)
}

// WrapPi wraps an angle into (-pi, pi].
func WrapPi(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// AddAngles returns a+b wrapped into (-pi, pi].
func AddAngles(a, b float64) float64 {
	return WrapPi(a + b)
}

// SubtractAngles returns a-b wrapped into (-pi, pi].
func SubtractAngles(a, b float64) float64 {
	return WrapPi(a - b)
}
