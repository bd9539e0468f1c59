package geolocate

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"gimbalgeo/pkg/frame"
)

// OffsetImageLocation projects a new ground point from an angular deviation
// (a user click) relative to the current image location, assuming the new
// point sits at the same altitude as the current one. ydev is the deviation
// toward camera-right and zdev toward camera-up, both radians.
//
// This is a first-order local approximation on a mean-radius sphere, valid
// for short ranges; it does not follow terrain (see TerrainIntersection) and
// it does not use an ellipsoidal geodesic. It returns false at the poles,
// when the image point is not below the sensor, or when the requested offset
// points at or above the horizon.
func OffsetImageLocation(geo *Telemetry, imagePosLLA frame.LLA, ydev, zdev float64) (frame.LLA, bool) {
	// Local-tangent-plane scaling breaks down at the poles.
	if geo.LLATrig.CosLat == 0 {
		return frame.LLA{}, false
	}

	// Vector from the gimbal to the image location in NED. Altitude and
	// Down have opposite signs.
	ned := r3.Vec{
		X: (imagePosLLA.Lat - geo.Base.Lat) * frame.MeanRadius,
		Y: (imagePosLLA.Lon - geo.Base.Lon) * frame.MeanRadius * geo.LLATrig.CosLat,
		Z: geo.Base.Alt - imagePosLLA.Alt,
	}

	down := ned.Z
	if down <= 0 {
		// Image altitude must be below the gimbal.
		return frame.LLA{}, false
	}

	rng := r3.Norm(ned)

	// Angular deviations become metric deviations at the image range. The
	// camera's native Z axis is positive down, the click's is positive up.
	shift := r3.Vec{
		Y: math.Tan(ydev) * rng,
		Z: -math.Tan(zdev) * rng,
	}

	// Camera frame to NED, then offset the gimbal-to-image vector.
	shift = geo.CameraDCM.Apply(shift)
	ned = r3.Add(ned, shift)

	if ned.Z <= 0 {
		// The offset points above the horizon.
		return frame.LLA{}, false
	}

	// Stretch the vector back onto the original altitude plane.
	ned = r3.Scale(down/ned.Z, ned)

	return frame.LLA{
		Lat: frame.AddAngles(geo.Base.Lat, ned.X/frame.MeanRadius),
		Lon: frame.AddAngles(geo.Base.Lon, ned.Y/(frame.MeanRadius*geo.LLATrig.CosLat)),
		Alt: geo.Base.Alt - ned.Z,
	}, true
}
