// Package geolocate resolves gimbal telemetry into camera geolocation: the
// ground point the camera is looking at, offset points from user clicks, true
// terrain intersections, and the velocity of the image point derived from a
// short history of camera attitudes.
package geolocate

import (
	"time"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"

	"gimbalgeo/pkg/frame"
	"gimbalgeo/pkg/gpstime"
	"gimbalgeo/pkg/telemetry"
)

// Telemetry is a telemetry record resolved into the frames the geolocation
// math works in. It is built once by Decode and treated as immutable after
// that. All fields are plain values, so copies (including ring buffer slots)
// are safe by assignment.
type Telemetry struct {
	Base telemetry.Base

	// Time is the calendar time decoded from the GPS week and time of week.
	Time time.Time

	// GimbalDCM rotates gimbal-frame vectors into the navigation frame;
	// CameraDCM does the same for camera-frame vectors.
	GimbalDCM frame.DCM
	CameraDCM frame.DCM

	GimbalEuler frame.Euler
	CameraEuler frame.Euler
	CameraQuat  quat.Number

	PosECEF r3.Vec
	VelECEF r3.Vec
	LLATrig frame.LLATrig

	// SlantRange is the length of the measured line-of-sight vector, meters.
	SlantRange float64

	// ImagePosECEF/ImagePosLLA locate the ground point the camera is
	// currently looking at.
	ImagePosECEF r3.Vec
	ImagePosLLA  frame.LLA
}

// Decode resolves a received packet into a Telemetry record. It returns false
// when the packet is not a well-formed core telemetry packet.
func Decode(pkt *telemetry.Packet) (*Telemetry, bool) {
	base, ok := telemetry.DecodeCore(pkt)
	if !ok {
		return nil, false
	}

	geo := &Telemetry{Base: *base}
	geo.Time = gpstime.Calendar(base.GPSWeek, base.ITOW, base.LeapSeconds)

	// Tilt arrives in (-180,180]. Map it into the extended (-270,90] range
	// so that downward-looking tilt is unambiguous against pan.
	tilt := base.Tilt
	if tilt > frame.Deg(90) {
		tilt -= frame.Deg(360)
	}

	pos := frame.LLA{Lat: base.Lat, Lon: base.Lon, Alt: base.Alt}
	geo.PosECEF, geo.LLATrig = frame.LLAToECEFTrig(pos)
	geo.VelECEF = frame.NEDToECEF(base.VelNED, geo.LLATrig)

	geo.GimbalDCM = frame.DCMFromQuat(base.GimbalQuat)
	geo.GimbalEuler = geo.GimbalDCM.Euler()

	// Correct pan/tilt by the stabilization output shifts. The corrected
	// extended-range tilt feeds the rotation composition below; the stored
	// tilt is independently re-wrapped to the compact representation.
	pan := frame.SubtractAngles(base.Pan, base.OutputShifts[telemetry.AxisPan])
	tiltCorr := frame.SubtractAngles(tilt, base.OutputShifts[telemetry.AxisTilt])
	geo.Base.Tilt = frame.WrapPi(tilt)

	// Camera to gimbal, pan applied before tilt. Composing in the other
	// order points the camera somewhere else entirely.
	camToGimbal := frame.DCMFromPanTilt(pan, tiltCorr)
	geo.CameraDCM = geo.GimbalDCM.Mul(camToGimbal)
	geo.CameraQuat = geo.CameraDCM.Quat()
	geo.CameraEuler = geo.CameraDCM.Euler()

	geo.SlantRange = r3.Norm(base.LOSECEF)
	geo.ImagePosECEF = r3.Add(geo.PosECEF, base.LOSECEF)
	geo.ImagePosLLA = frame.ECEFToLLA(geo.ImagePosECEF)

	return geo, true
}

// Form encodes the transmitted portion of a telemetry record into a packet.
// Derived fields are reconstructed by the receiver, not serialized.
func Form(base *telemetry.Base) *telemetry.Packet {
	return telemetry.EncodeCore(base)
}
