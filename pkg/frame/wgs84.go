package frame

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// WGS84 ellipsoid parameters.
const (
	wgs84A  = 6378137.0        // semi-major axis, meters
	wgs84E2 = 6.69437999014e-3 // first eccentricity squared
)

// LLA is a geodetic position: latitude and longitude in radians, altitude in
// meters above the WGS84 ellipsoid.
type LLA struct {
	Lat float64
	Lon float64
	Alt float64
}

// LLATrig caches the latitude/longitude trig terms of a position so that
// repeated NED/ECEF rotations at the same origin avoid recomputing them.
type LLATrig struct {
	CosLat float64
	SinLat float64
	CosLon float64
	SinLon float64
}

// Trig computes the trig cache for a position.
func (p LLA) Trig() LLATrig {
	sinLat, cosLat := math.Sincos(p.Lat)
	sinLon, cosLon := math.Sincos(p.Lon)
	return LLATrig{CosLat: cosLat, SinLat: sinLat, CosLon: cosLon, SinLon: sinLon}
}

// LLAToECEF converts a geodetic position to an ECEF vector in meters.
func LLAToECEF(p LLA) r3.Vec {
	v, _ := LLAToECEFTrig(p)
	return v
}

// LLAToECEFTrig converts a geodetic position to ECEF and returns the trig
// cache computed along the way.
func LLAToECEFTrig(p LLA) (r3.Vec, LLATrig) {
	t := p.Trig()
	n := wgs84A / math.Sqrt(1-wgs84E2*t.SinLat*t.SinLat)
	return r3.Vec{
		X: (n + p.Alt) * t.CosLat * t.CosLon,
		Y: (n + p.Alt) * t.CosLat * t.SinLon,
		Z: (n*(1-wgs84E2) + p.Alt) * t.SinLat,
	}, t
}

// ECEFToLLA converts an ECEF vector in meters to a geodetic position. The
// latitude is refined iteratively; five iterations converge well below a
// millimeter for positions between the surface and low orbit.
func ECEFToLLA(v r3.Vec) LLA {
	lon := math.Atan2(v.Y, v.X)
	r := math.Hypot(v.X, v.Y)
	lat := math.Atan2(v.Z, r*(1-wgs84E2))
	var alt float64
	for i := 0; i < 5; i++ {
		sinLat := math.Sin(lat)
		n := wgs84A / math.Sqrt(1-wgs84E2*sinLat*sinLat)
		if math.Abs(lat) < math.Pi/4 {
			alt = r/math.Cos(lat) - n
		} else {
			// Near the poles cos(lat) vanishes; solve from Z instead.
			alt = v.Z/sinLat - n*(1-wgs84E2)
		}
		lat = math.Atan2(v.Z, r*(1-wgs84E2*(n/(n+alt))))
	}
	return LLA{Lat: lat, Lon: lon, Alt: alt}
}

// NEDToECEF rotates a local North-East-Down vector at the origin described by
// t into the ECEF frame. Translation is not applied; this rotates deltas and
// velocities, not positions.
func NEDToECEF(v r3.Vec, t LLATrig) r3.Vec {
	return r3.Vec{
		X: -t.SinLat*t.CosLon*v.X - t.SinLon*v.Y - t.CosLat*t.CosLon*v.Z,
		Y: -t.SinLat*t.SinLon*v.X + t.CosLon*v.Y - t.CosLat*t.SinLon*v.Z,
		Z: t.CosLat*v.X - t.SinLat*v.Z,
	}
}

// ECEFToNED rotates an ECEF delta vector into the local North-East-Down frame
// at the origin described by t.
func ECEFToNED(v r3.Vec, t LLATrig) r3.Vec {
	return r3.Vec{
		X: -t.SinLat*t.CosLon*v.X - t.SinLat*t.SinLon*v.Y + t.CosLat*v.Z,
		Y: -t.SinLon*v.X + t.CosLon*v.Y,
		Z: -t.CosLat*t.CosLon*v.X - t.CosLat*t.SinLon*v.Y - t.SinLat*v.Z,
	}
}
