// Package telemetry defines the gimbal telemetry record transmitted by the
// platform and its wire codec. Derived quantities (rotations, ECEF positions,
// image geolocation) live in pkg/geolocate; this package only covers what
// crosses the wire.
package telemetry

import (
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Gimbal axis indices for the output shift array.
const (
	AxisPan = iota
	AxisTilt
)

// Base is the telemetry record as transmitted: platform state, gimbal
// attitude, and the measured line of sight. Angles are radians, positions
// meters, velocities meters/second, timestamps milliseconds.
type Base struct {
	GPSWeek     uint16
	ITOW        uint32 // ms into the GPS week
	LeapSeconds uint8
	SystemTime  uint32 // free-running platform clock, ms

	Lat float64 // geodetic latitude, rad
	Lon float64 // geodetic longitude, rad
	Alt float64 // height above ellipsoid, m

	VelNED     r3.Vec      // platform velocity, North-East-Down m/s
	GimbalQuat quat.Number // gimbal-to-nav attitude

	Pan  float64
	Tilt float64

	// OutputShifts are the per-axis stabilization corrections to subtract
	// from the reported pan/tilt, indexed by AxisPan/AxisTilt.
	OutputShifts [2]float64

	// LOSECEF is the measured line-of-sight vector from the gimbal to the
	// image point, in ECEF-aligned camera components, meters.
	LOSECEF r3.Vec

	Mode   uint8
	Camera uint8
}
