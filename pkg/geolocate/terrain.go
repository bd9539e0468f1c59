package geolocate

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"gimbalgeo/pkg/frame"
)

// ElevationFunc returns terrain height above the ellipsoid in meters for a
// latitude/longitude in radians. It must be synchronous and pure for the
// duration of one intersection query.
type ElevationFunc func(lat, lon float64) float64

// Ray-march tuning. The step grows with range so relative resolution stays
// roughly constant, bounded below by the coarse step near the gimbal.
const (
	stepCoarse  = 30.0    // m
	stepFine    = 1.0     // m
	maxDistance = 15000.0 // m, give up beyond this range
)

// TerrainIntersection marches the camera line of sight outward from the
// gimbal against the supplied elevation model and returns the ground
// intersection and its range. Unlike OffsetImageLocation this follows real
// terrain rather than assuming a flat plane at the image altitude.
//
// On failure (no intersection within the maximum search distance) the
// returned position and range are overwritten garbage; callers must check ok
// and never infer validity from the outputs.
func TerrainIntersection(geo *Telemetry, elev ElevationFunc) (pos frame.LLA, rng float64, ok bool) {
	// Unit look vector: camera forward axis rotated to NED, then to ECEF.
	unitNED := geo.CameraDCM.Apply(r3.Vec{X: 1})
	unitECEF := frame.NEDToECEF(unitNED, geo.LLATrig)

	step := stepCoarse
	end := maxDistance

	for rng = step; rng <= end; rng += step {
		p := r3.Add(geo.PosECEF, r3.Scale(rng, unitECEF))
		pos = frame.ECEFToLLA(p)
		ground := elev(pos.Lat, pos.Lon)

		if step != stepFine {
			step = math.Max(stepCoarse, rng*0.01)
		}

		if pos.Alt <= ground {
			if step != stepFine {
				// Back up one step and re-march the last interval
				// finely. The fine window is bounded to one coarse
				// step; a cliff taller than that inside the window
				// can still be missed, which is a known limit of
				// the search.
				rng -= step
				end = rng + step
				step = stepFine
			} else {
				pos.Alt = ground
				return pos, rng, true
			}
		}
	}

	return pos, rng, false
}
