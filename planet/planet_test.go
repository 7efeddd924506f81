// Copyright 2016 Jeremy Bingham, under the MIT License.
// See the LICENSE file in this repository, or
// http://www.opensource.org/licenses/MIT

package planet

import (
	"math"
	"testing"

	pp "github.com/soniakeys/meeus/v3/planetposition"
	"github.com/soniakeys/unit"
)

// *pp.V87Planet must keep satisfying Positioner.
var _ Positioner = (*pp.V87Planet)(nil)

func TestEarthPosition(t *testing.T) {
	// Earth on 1992 October 13.0 TD
	l, b, r := Earth.Position(2448908.5)
	if math.Abs(l.Deg()-19.907372) > 1e-6 {
		t.Errorf("l = %.7f, want 19.907372", l.Deg())
	}
	if math.Abs(b.Deg()-(-0.000179)) > 1e-6 {
		t.Errorf("b = %.7f, want -0.000179", b.Deg())
	}
	if math.Abs(r-0.99760775) > 1e-8 {
		t.Errorf("r = %.8f, want 0.99760775", r)
	}
}

func TestJupiterPosition(t *testing.T) {
	l, b, r := Jupiter.Position(2448972.50068)
	if math.Abs(l.Deg()-181.882175) > 1e-5 {
		t.Errorf("l = %.6f, want 181.882175", l.Deg())
	}
	if math.Abs(b.Deg()-1.290549) > 1e-5 {
		t.Errorf("b = %.6f, want 1.290549", b.Deg())
	}
	if math.Abs(r-5.446438) > 1e-6 {
		t.Errorf("r = %.6f, want 5.446438", r)
	}
}

func TestJupiterTruncation(t *testing.T) {
	// smallest amplitude kept, per power of τ of the longitude
	cutoff := []float64{100, 20, 100, 5, 1, 1}
	if len(Jupiter.L) != len(cutoff) {
		t.Fatalf("%d longitude series, want %d", len(Jupiter.L), len(cutoff))
	}
	for i, ts := range Jupiter.L {
		for _, tm := range ts {
			if tm.a < cutoff[i] {
				t.Errorf("L%d term %v below amplitude %g", i, tm, cutoff[i])
			}
		}
	}
}

func TestPositionLongitudeRange(t *testing.T) {
	for _, jde := range []float64{-1e6, 0, 2451545, 2488069.5, 1e7} {
		for _, s := range []*Series{Earth, Jupiter} {
			l, _, r := s.Position(jde)
			if l < 0 || l >= 2*math.Pi {
				t.Errorf("%s at %f: l = %f outside [0, 2π)", s.Name, jde, l.Rad())
			}
			if math.IsNaN(r) || math.IsInf(r, 0) {
				t.Errorf("%s at %f: r = %f not finite", s.Name, jde, r)
			}
		}
	}
}

func TestGeocentricRect(t *testing.T) {
	tests := []struct {
		name           string
		l0, b0         unit.Angle
		R              float64
		l, b           unit.Angle
		r              float64
		wantX, wantY   float64
		wantZ, wantDis float64
	}{
		{
			name:  "opposition",
			l0:    0,
			R:     1,
			l:     0,
			r:     5,
			wantX: 4, wantDis: 4,
		},
		{
			name:  "conjunction",
			l0:    unit.AngleFromDeg(180),
			R:     1,
			l:     0,
			r:     5,
			wantX: 6, wantDis: 6,
		},
		{
			name:  "quadrature above the ecliptic",
			l0:    0,
			R:     1,
			l:     unit.AngleFromDeg(90),
			b:     unit.AngleFromDeg(90),
			r:     2,
			wantX: -1, wantZ: 2, wantDis: math.Sqrt(5),
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			x, y, z := GeocentricRect(tc.l0, tc.b0, tc.R, tc.l, tc.b, tc.r)
			if math.Abs(x-tc.wantX) > 1e-12 || math.Abs(y-tc.wantY) > 1e-12 || math.Abs(z-tc.wantZ) > 1e-12 {
				t.Errorf("got (%g, %g, %g), want (%g, %g, %g)", x, y, z, tc.wantX, tc.wantY, tc.wantZ)
			}
			if d := Distance(x, y, z); math.Abs(d-tc.wantDis) > 1e-12 {
				t.Errorf("Distance = %g, want %g", d, tc.wantDis)
			}
		})
	}
}

func TestLightTime(t *testing.T) {
	if got := LightTime(1); math.Abs(got-.0057755183) > 1e-12 {
		t.Errorf("LightTime(1) = %.10f, want 0.0057755183", got)
	}
	if got := LightTime(0); got != 0 {
		t.Errorf("LightTime(0) = %g, want 0", got)
	}
}

func TestEclToEqRectAgree(t *testing.T) {
	// A unit vector along λ, β must map to the same α, δ either way.
	ε := unit.AngleFromDeg(23.4392911)
	sε, cε := ε.Sincos()
	for _, c := range []struct{ λ, β float64 }{{0, 0}, {45, 10}, {181.88, 1.29}, {300, -60}} {
		λ := unit.AngleFromDeg(c.λ)
		β := unit.AngleFromDeg(c.β)
		α1, δ1 := EclToEq(λ, β, sε, cε)
		x := β.Cos() * λ.Cos()
		y := β.Cos() * λ.Sin()
		z := β.Sin()
		α2, δ2 := RectToEq(x, y, z, sε, cε)
		if math.Abs(math.Remainder(float64(α1-α2), 2*math.Pi)) > 1e-12 {
			t.Errorf("λ %g β %g: α %g != %g", c.λ, c.β, α1.Rad(), α2.Rad())
		}
		if math.Abs(float64(δ1-δ2)) > 1e-12 {
			t.Errorf("λ %g β %g: δ %g != %g", c.λ, c.β, δ1.Rad(), δ2.Rad())
		}
	}
}

func TestEclToEqRange(t *testing.T) {
	sε, cε := unit.AngleFromDeg(23.44).Sincos()
	for _, λ := range []float64{0, 90, 179.9, 180.1, 270, 359.9} {
		α, _ := EclToEq(unit.AngleFromDeg(λ), unit.AngleFromDeg(-5), sε, cε)
		if α < 0 || α >= 2*math.Pi {
			t.Errorf("λ %g: α = %f outside [0, 2π)", λ, α.Rad())
		}
	}
}

func TestLoadVSOP87Builtin(t *testing.T) {
	e, j, err := LoadVSOP87("")
	if err != nil {
		t.Fatal(err)
	}
	if e != Positioner(Earth) || j != Positioner(Jupiter) {
		t.Error("empty path should return the compiled series")
	}
}

func TestLoadVSOP87MissingDir(t *testing.T) {
	if _, _, err := LoadVSOP87(t.TempDir()); err == nil {
		t.Error("expected an error loading from an empty directory")
	}
}
