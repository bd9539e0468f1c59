package geolocate

import (
	"time"

	"gonum.org/v1/gonum/spatial/r3"
)

// LOSAngularRate estimates the angular rate of the camera line of sight, in
// camera frame (as though gyros were mounted on the camera), rad/s.
//
// It walks backward from the newest buffered record to the first one at least
// minDelta older, then extracts the small-angle rotation vector from the
// skew-symmetric part of the attitude delta between the two camera rotations.
// It returns false when fewer than two records are held or no record is old
// enough.
func LOSAngularRate(buf *Buffer, minDelta time.Duration) (r3.Vec, bool) {
	if buf.Len() < 2 {
		return r3.Vec{}, false
	}

	newest := buf.Newest()
	minMS := int32(minDelta.Milliseconds())

	for age := 1; age < buf.Len(); age++ {
		old := buf.At(age)

		// Unsigned subtraction then signed interpretation keeps this
		// correct across SystemTime wraparound.
		diff := int32(newest.Base.SystemTime - old.Base.SystemTime)
		if diff < minMS {
			continue
		}

		// delta = R_old^T * R_new is the attitude update from old to new.
		// For a small rotation its off-diagonal skew-symmetric terms are
		// the rotation vector components.
		delta := old.CameraDCM.TransposeMul(newest.CameraDCM)
		perSec := 1000.0 / float64(diff)
		return r3.Vec{
			X: 0.5 * (delta[2][1] - delta[1][2]) * perSec,
			Y: 0.5 * (delta[0][2] - delta[2][0]) * perSec,
			Z: 0.5 * (delta[1][0] - delta[0][1]) * perSec,
		}, true
	}

	return r3.Vec{}, false
}

// ImageVelocity estimates the absolute velocity of the image point in NED,
// m/s, treating the line of sight as a rigid arm of the given range: the
// tangential velocity is omega cross r in camera frame, rotated to NED, plus
// the platform's own velocity.
//
// When no angular rate is available it returns the zero vector and false; a
// genuinely motionless image returns the zero vector and true.
func ImageVelocity(buf *Buffer, rangeM float64, minDelta time.Duration) (r3.Vec, bool) {
	rates, ok := LOSAngularRate(buf, minDelta)
	if !ok {
		return r3.Vec{}, false
	}

	newest := buf.Newest()
	vel := r3.Cross(rates, r3.Vec{X: rangeM})
	vel = newest.CameraDCM.Apply(vel)
	return r3.Add(vel, newest.Base.VelNED), true
}
