// Copyright 2016 Jeremy Bingham, under the MIT License.
// See the LICENSE file in this repository, or
// http://www.opensource.org/licenses/MIT

// Package jupiter computes the ephemeris for physical observations of
// Jupiter: the planetocentric declinations of the Earth and Sun, the
// longitudes of the central meridian in rotation Systems I and II, and the
// position angle of the rotation axis.
//
// All angles cross the package boundary as unit.Angle, which is always
// radians; use the Deg method for presentation.
package jupiter

import (
	"math"

	"github.com/ctdk/jovian-ephemeris/apparent"
	"github.com/ctdk/jovian-ephemeris/planet"
	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/unit"
)

const (
	// 1950 January 1.0 TD; pole and rotation polynomials count from here
	epoch = 2433282.5

	// light-time passes; two is enough at Jupiter's distance
	lightTimePasses = 2

	// degrees per day, Systems I and II, and their values at epoch
	rate1, rate2 = 877.90003539, 870.27003539
	w1Epoch      = 17.710
	w2Epoch      = 16.838

	// light-time correction to ω, degrees per AU
	lt1, lt2 = 5.07033, 5.02626
)

// Constants particular to Jupiter's orbital motion, in degrees.
var (
	// heliocentric longitude correction, times Δ/r²
	motionCorrection = unit.AngleFromDeg(.01299)
	// amplitude of the aberration of Jupiter's light
	aberration = unit.AngleFromDeg(.005693)
)

// Ephemeris holds the quantities for physical observation of Jupiter at
// one instant.
type Ephemeris struct {
	EarthLat unit.Angle // D_E, planetocentric declination of the Earth
	SunLat   unit.Angle // D_S, planetocentric declination of the Sun
	CM1      unit.Angle // ω1, central meridian longitude, System I, [0, 2π)
	CM2      unit.Angle // ω2, central meridian longitude, System II, [0, 2π)
	AxisPA   unit.Angle // P, position angle of the north pole, not reduced

	Delta     float64 // Earth-Jupiter distance, AU
	Radius    float64 // Sun-Jupiter distance, AU
	LightTime float64 // days
}

// Physical returns the ephemeris of Jupiter for physical observations at
// Julian ephemeris day jde.
//
// ε0 is the mean obliquity of the ecliptic, Δψ and Δε the nutation in
// longitude and in obliquity, all for jde. earth and jupiter supply
// heliocentric positions; the truncated series planet.Earth and
// planet.Jupiter give results to about 0°.01.
//
// Degenerate geometry, Jupiter on the line of sight to the Sun, yields NaN
// or infinite values rather than an error.
func Physical(jde float64, ε0, Δψ, Δε unit.Angle, earth, jupiter planet.Positioner) Ephemeris {
	d := jde - epoch
	T1 := d / base.JulianCentury
	// north pole of Jupiter, mean equinox of date
	α0 := unit.AngleFromDeg(268 + .1061*T1)
	δ0 := unit.AngleFromDeg(64.5 - .0164*T1)

	W1 := unit.PMod(w1Epoch+rate1*d, 360)
	W2 := unit.PMod(w2Epoch+rate2*d, 360)

	// Earth's own light time is ignored
	l0, b0, R := earth.Position(jde)
	l, b, r, Δ, τ := lightTime(jupiter, jde, l0, b0, R)

	l -= motionCorrection * unit.Angle(Δ/(r*r))
	x, y, z := planet.GeocentricRect(l0, b0, R, l, b, r)
	Δ = planet.Distance(x, y, z)

	sε0, cε0 := ε0.Sincos()
	// the Sun as seen from Jupiter
	αs, δs := planet.EclToEq(l, b, sε0, cε0)
	DS := declination(α0, δ0, αs, δs)

	α, δ := planet.RectToEq(x, y, z, sε0, cε0)
	DE := declination(α0, δ0, α, δ)
	ζ := poleAngle(α0, δ0, α, δ)

	C := phaseCorrection(r, Δ, R, l, l0)
	ω1 := unit.PMod(unit.PMod(W1-ζ.Deg()-lt1*Δ, 360)+C, 360)
	ω2 := unit.PMod(unit.PMod(W2-ζ.Deg()-lt2*Δ, 360)+C, 360)

	ε := ε0 + Δε
	α, δ = apparent.Aberration(α, δ, l0, ε, aberration)
	α1, δ1 := nutate(α, δ, Δψ, Δε, ε)
	α01, δ01 := nutate(α0, δ0, Δψ, Δε, ε)

	return Ephemeris{
		EarthLat:  DE,
		SunLat:    DS,
		CM1:       unit.AngleFromDeg(ω1),
		CM2:       unit.AngleFromDeg(ω2),
		AxisPA:    positionAngle(α01, δ01, α1, δ1),
		Delta:     Δ,
		Radius:    r,
		LightTime: τ,
	}
}

// PhysicalTruncated is Physical using the truncated VSOP87 series
// compiled into package planet.
func PhysicalTruncated(jde float64, ε0, Δψ, Δε unit.Angle) Ephemeris {
	return Physical(jde, ε0, Δψ, Δε, planet.Earth, planet.Jupiter)
}

// lightTime returns the heliocentric position of jupiter at the time light
// left it to reach the Earth at jde, with the Earth-Jupiter distance and
// the light time in days. The number of passes is fixed.
func lightTime(jupiter planet.Positioner, jde float64, l0, b0 unit.Angle, R float64) (l, b unit.Angle, r, Δ, τ float64) {
	for i := 0; i < lightTimePasses; i++ {
		l, b, r = jupiter.Position(jde - τ)
		Δ = planet.Distance(planet.GeocentricRect(l0, b0, R, l, b, r))
		τ = planet.LightTime(Δ)
	}
	return
}

// declination returns the planetocentric declination of a body at α, δ
// as seen from a planet whose north pole is at α0, δ0.
func declination(α0, δ0, α, δ unit.Angle) unit.Angle {
	sδ0, cδ0 := δ0.Sincos()
	sδ, cδ := δ.Sincos()
	return unit.Angle(math.Asin(-sδ0*sδ - cδ0*cδ*(α0-α).Cos()))
}

// poleAngle is ζ, used to carry the rotation angles W1, W2 over to the
// meridian facing the Earth.
func poleAngle(α0, δ0, α, δ unit.Angle) unit.Angle {
	sδ0, cδ0 := δ0.Sincos()
	sδ, cδ := δ.Sincos()
	sΔα, cΔα := (α0 - α).Sincos()
	return unit.Angle(math.Atan2(sδ0*cδ*cΔα-sδ*cδ0, cδ*sΔα))
}

// phaseCorrection returns the correction C, in degrees, to the central
// meridian longitudes for the phase: the angle Sun-Jupiter-Earth from the
// sides r, Δ, R, negative when sin(l - l0) < 0.
func phaseCorrection(r, Δ, R float64, l, l0 unit.Angle) float64 {
	C := 57.2958 * (2*r*Δ + R*R - r*r - Δ*Δ) / (4 * r * Δ)
	if (l - l0).Sin() < 0 {
		C = -C
	}
	return C
}

// positionAngle is the position angle at α, δ of the direction to α0, δ0,
// measured from north through east.
func positionAngle(α0, δ0, α, δ unit.Angle) unit.Angle {
	sδ0, cδ0 := δ0.Sincos()
	sδ, cδ := δ.Sincos()
	sΔα, cΔα := (α0 - α).Sincos()
	return unit.Angle(math.Atan2(cδ0*sΔα, sδ0*cδ-cδ0*sδ*cΔα))
}

func nutate(α, δ, Δψ, Δε, ε unit.Angle) (unit.Angle, unit.Angle) {
	Δα, Δδ := apparent.Nutation(α, δ, Δψ, Δε, ε)
	return α + Δα, δ + Δδ
}
