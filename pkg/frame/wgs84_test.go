package frame

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestLLAECEFRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		p    LLA
	}{
		{"equator prime meridian", LLA{0, 0, 0}},
		{"mid latitude", LLA{Deg(45), Deg(-120), 1500}},
		{"southern hemisphere", LLA{Deg(-33.9), Deg(151.2), 30}},
		{"high latitude", LLA{Deg(78), Deg(15), 500}},
		{"high altitude", LLA{Deg(37), Deg(-5), 12000}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			back := ECEFToLLA(LLAToECEF(tt.p))
			if math.Abs(back.Lat-tt.p.Lat) > 1e-9 || math.Abs(back.Lon-tt.p.Lon) > 1e-9 {
				t.Errorf("angles drifted: got %+v, want %+v", back, tt.p)
			}
			if math.Abs(back.Alt-tt.p.Alt) > 1e-3 {
				t.Errorf("altitude drifted: got %v, want %v", back.Alt, tt.p.Alt)
			}
		})
	}
}

func TestLLAToECEFKnownPoints(t *testing.T) {
	// At lat=0 lon=0 the ECEF X axis pierces the surface at the semi-major axis.
	v := LLAToECEF(LLA{0, 0, 0})
	if math.Abs(v.X-6378137.0) > 1e-6 || math.Abs(v.Y) > 1e-6 || math.Abs(v.Z) > 1e-6 {
		t.Errorf("equator point = %v", v)
	}

	// At the north pole the position lies on the Z axis at the semi-minor axis.
	v = LLAToECEF(LLA{math.Pi / 2, 0, 0})
	if math.Abs(v.Z-6356752.3142) > 1e-3 || math.Hypot(v.X, v.Y) > 1e-6 {
		t.Errorf("pole point = %v", v)
	}
}

func TestNEDToECEFNorthAtEquator(t *testing.T) {
	// At lat=0 lon=0, local North is +Z, East is +Y, Down is -X in ECEF.
	trig := LLA{0, 0, 0}.Trig()

	north := NEDToECEF(r3.Vec{X: 1}, trig)
	if r3.Norm(r3.Sub(north, r3.Vec{Z: 1})) > 1e-12 {
		t.Errorf("north = %v, want +Z", north)
	}

	east := NEDToECEF(r3.Vec{Y: 1}, trig)
	if r3.Norm(r3.Sub(east, r3.Vec{Y: 1})) > 1e-12 {
		t.Errorf("east = %v, want +Y", east)
	}

	down := NEDToECEF(r3.Vec{Z: 1}, trig)
	if r3.Norm(r3.Sub(down, r3.Vec{X: -1})) > 1e-12 {
		t.Errorf("down = %v, want -X", down)
	}
}

func TestNEDECEFRoundTrip(t *testing.T) {
	trig := LLA{Deg(52.3), Deg(4.9), 0}.Trig()
	v := r3.Vec{X: 12.5, Y: -3.25, Z: 7}
	back := ECEFToNED(NEDToECEF(v, trig), trig)
	if r3.Norm(r3.Sub(back, v)) > 1e-9 {
		t.Errorf("round trip drifted: %v vs %v", back, v)
	}
}
