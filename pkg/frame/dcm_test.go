package frame

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

const tol = 1e-9

func dcmClose(a, b DCM, tol float64) bool {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if math.Abs(a[i][j]-b[i][j]) > tol {
				return false
			}
		}
	}
	return true
}

func TestDCMFromQuatIdentity(t *testing.T) {
	got := DCMFromQuat(quat.Number{Real: 1})
	if !dcmClose(got, Identity(), tol) {
		t.Errorf("identity quaternion produced %v", got)
	}
}

func TestDCMEulerRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		e    Euler
	}{
		{"level north", Euler{}},
		{"yaw only", Euler{Yaw: Deg(45)}},
		{"pitch down", Euler{Pitch: Deg(-30)}},
		{"combined", Euler{Roll: Deg(10), Pitch: Deg(-20), Yaw: Deg(135)}},
		{"negative yaw", Euler{Roll: Deg(-5), Pitch: Deg(15), Yaw: Deg(-170)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := DCMFromEuler(tt.e)
			got := m.Euler()
			if math.Abs(got.Roll-tt.e.Roll) > tol ||
				math.Abs(got.Pitch-tt.e.Pitch) > tol ||
				math.Abs(got.Yaw-tt.e.Yaw) > tol {
				t.Errorf("Euler() = %+v, want %+v", got, tt.e)
			}
		})
	}
}

func TestDCMQuatRoundTrip(t *testing.T) {
	tests := []Euler{
		{},
		{Yaw: Deg(90)},
		{Roll: Deg(170), Pitch: Deg(-45), Yaw: Deg(20)},
		{Roll: Deg(-170), Pitch: Deg(60), Yaw: Deg(-120)},
	}

	for _, e := range tests {
		m := DCMFromEuler(e)
		back := DCMFromQuat(m.Quat())
		if !dcmClose(m, back, 1e-12) {
			t.Errorf("quat round trip for %+v drifted: %v vs %v", e, m, back)
		}
	}
}

func TestDCMApplyTransposeInverts(t *testing.T) {
	m := DCMFromEuler(Euler{Roll: Deg(12), Pitch: Deg(-34), Yaw: Deg(56)})
	v := r3.Vec{X: 1, Y: -2, Z: 3}
	back := m.ApplyTranspose(m.Apply(v))
	if r3.Norm(r3.Sub(back, v)) > tol {
		t.Errorf("ApplyTranspose(Apply(v)) = %v, want %v", back, v)
	}
}

func TestTransposeMulIsRotationDelta(t *testing.T) {
	a := DCMFromEuler(Euler{Yaw: Deg(10)})
	b := DCMFromEuler(Euler{Yaw: Deg(25)})
	delta := a.TransposeMul(b)
	want := DCMFromEuler(Euler{Yaw: Deg(15)})
	if !dcmClose(delta, want, tol) {
		t.Errorf("TransposeMul delta = %v, want %v", delta, want)
	}
}

func TestDCMFromPanTiltMatchesEuler(t *testing.T) {
	m := DCMFromPanTilt(Deg(30), Deg(-40))
	want := DCMFromEuler(Euler{Yaw: Deg(30), Pitch: Deg(-40)})
	if !dcmClose(m, want, tol) {
		t.Errorf("DCMFromPanTilt = %v, want %v", m, want)
	}
}

func TestWrapPi(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{-math.Pi, math.Pi},
		{3 * math.Pi / 2, -math.Pi / 2},
		{-3 * math.Pi / 2, math.Pi / 2},
		{5 * math.Pi, math.Pi},
	}

	for _, tt := range tests {
		if got := WrapPi(tt.in); math.Abs(got-tt.want) > tol {
			t.Errorf("WrapPi(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSubtractAnglesWraps(t *testing.T) {
	// Crossing the +/-180 seam must produce the short-way difference.
	got := SubtractAngles(Deg(-170), Deg(170))
	if math.Abs(got-Deg(20)) > tol {
		t.Errorf("SubtractAngles(-170, 170) = %v deg, want 20", got*180/math.Pi)
	}
}
