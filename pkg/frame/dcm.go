package frame

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// DCM is a 3x3 direction cosine matrix mapping body-frame vectors into the
// navigation frame. It is a plain value type with no interior pointers, so
// records containing a DCM copy correctly by assignment.
type DCM [3][3]float64

// Euler holds a roll/pitch/yaw attitude in radians.
type Euler struct {
	Roll  float64
	Pitch float64
	Yaw   float64
}

// Identity returns the identity rotation.
func Identity() DCM {
	return DCM{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// DCMFromQuat builds the body-to-nav DCM for attitude quaternion q.
func DCMFromQuat(q quat.Number) DCM {
	w, x, y, z := q.Real, q.Imag, q.Jmag, q.Kmag
	return DCM{
		{w*w + x*x - y*y - z*z, 2 * (x*y - w*z), 2 * (x*z + w*y)},
		{2 * (x*y + w*z), w*w - x*x + y*y - z*z, 2 * (y*z - w*x)},
		{2 * (x*z - w*y), 2 * (y*z + w*x), w*w - x*x - y*y + z*z},
	}
}

// DCMFromEuler builds the body-to-nav DCM for a ZYX Euler attitude.
func DCMFromEuler(e Euler) DCM {
	sr, cr := math.Sincos(e.Roll)
	sp, cp := math.Sincos(e.Pitch)
	sy, cy := math.Sincos(e.Yaw)
	return DCM{
		{cy * cp, cy*sp*sr - sy*cr, cy*sp*cr + sy*sr},
		{sy * cp, sy*sp*sr + cy*cr, sy*sp*cr - cy*sr},
		{-sp, cp * sr, cp * cr},
	}
}

// DCMFromPanTilt builds the camera-to-gimbal rotation for a pan/tilt mount.
// Pan is applied before tilt, like Euler yaw over pitch, with zero roll.
func DCMFromPanTilt(pan, tilt float64) DCM {
	return DCMFromEuler(Euler{Yaw: pan, Pitch: tilt})
}

// Apply rotates a body-frame vector into the navigation frame.
func (m DCM) Apply(v r3.Vec) r3.Vec {
	return r3.Vec{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// ApplyTranspose rotates a navigation-frame vector into the body frame.
func (m DCM) ApplyTranspose(v r3.Vec) r3.Vec {
	return r3.Vec{
		X: m[0][0]*v.X + m[1][0]*v.Y + m[2][0]*v.Z,
		Y: m[0][1]*v.X + m[1][1]*v.Y + m[2][1]*v.Z,
		Z: m[0][2]*v.X + m[1][2]*v.Y + m[2][2]*v.Z,
	}
}

// Mul returns m*b, composing rotation b followed by m.
func (m DCM) Mul(b DCM) DCM {
	var out DCM
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = m[i][0]*b[0][j] + m[i][1]*b[1][j] + m[i][2]*b[2][j]
		}
	}
	return out
}

// TransposeMul returns m^T * b. Because a DCM is orthonormal, m^T is its
// inverse, so this is the rotation delta taking attitude m to attitude b.
func (m DCM) TransposeMul(b DCM) DCM {
	var out DCM
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = m[0][i]*b[0][j] + m[1][i]*b[1][j] + m[2][i]*b[2][j]
		}
	}
	return out
}

// Roll returns the roll angle of the rotation.
func (m DCM) Roll() float64 {
	return math.Atan2(m[2][1], m[2][2])
}

// Pitch returns the pitch angle of the rotation.
func (m DCM) Pitch() float64 {
	s := -m[2][0]
	if s > 1 {
		s = 1
	} else if s < -1 {
		s = -1
	}
	return math.Asin(s)
}

// Yaw returns the yaw angle of the rotation.
func (m DCM) Yaw() float64 {
	return math.Atan2(m[1][0], m[0][0])
}

// Euler returns the roll/pitch/yaw decomposition of the rotation.
func (m DCM) Euler() Euler {
	return Euler{Roll: m.Roll(), Pitch: m.Pitch(), Yaw: m.Yaw()}
}

// Quat converts the rotation to a unit quaternion using Shepperd's method,
// branching on the largest diagonal term for numerical stability.
func (m DCM) Quat() quat.Number {
	tr := m[0][0] + m[1][1] + m[2][2]
	var q quat.Number
	switch {
	case tr > m[0][0] && tr > m[1][1] && tr > m[2][2]:
		s := math.Sqrt(1+tr) * 2
		q.Real = s / 4
		q.Imag = (m[2][1] - m[1][2]) / s
		q.Jmag = (m[0][2] - m[2][0]) / s
		q.Kmag = (m[1][0] - m[0][1]) / s
	case m[0][0] > m[1][1] && m[0][0] > m[2][2]:
		s := math.Sqrt(1+m[0][0]-m[1][1]-m[2][2]) * 2
		q.Real = (m[2][1] - m[1][2]) / s
		q.Imag = s / 4
		q.Jmag = (m[0][1] + m[1][0]) / s
		q.Kmag = (m[0][2] + m[2][0]) / s
	case m[1][1] > m[2][2]:
		s := math.Sqrt(1+m[1][1]-m[0][0]-m[2][2]) * 2
		q.Real = (m[0][2] - m[2][0]) / s
		q.Imag = (m[0][1] + m[1][0]) / s
		q.Jmag = s / 4
		q.Kmag = (m[1][2] + m[2][1]) / s
	default:
		s := math.Sqrt(1+m[2][2]-m[0][0]-m[1][1]) * 2
		q.Real = (m[1][0] - m[0][1]) / s
		q.Imag = (m[0][2] + m[2][0]) / s
		q.Jmag = (m[1][2] + m[2][1]) / s
		q.Kmag = s / 4
	}
	return q
}
