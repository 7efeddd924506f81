// Copyright 2016 Jeremy Bingham, under the MIT License.
// See the LICENSE file in this repository, or
// http://www.opensource.org/licenses/MIT

// Package planet supplies heliocentric positions of the planets and the
// geometry that turns a pair of them into geocentric coordinates.
//
// Positions come either from the truncated VSOP87 series compiled into this
// package (Earth and Jupiter) or from the full VSOP87 files read by
// github.com/soniakeys/meeus/v3/planetposition. Both satisfy Positioner.
package planet

import (
	"math"

	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/meeus/v3/coord"
	"github.com/soniakeys/unit"
)

// Positioner returns the heliocentric ecliptic longitude, latitude and
// radius vector (AU) of a body at the given Julian ephemeris day, referred
// to the mean equinox of date.
//
// *planetposition.V87Planet satisfies Positioner.
type Positioner interface {
	Position(jde float64) (l, b unit.Angle, r float64)
}

// GeocentricRect returns geocentric ecliptic rectangular coordinates, in AU,
// of a body at heliocentric l, b, r as seen from the Earth at heliocentric
// l0, b0, R.
func GeocentricRect(l0, b0 unit.Angle, R float64, l, b unit.Angle, r float64) (x, y, z float64) {
	sl0, cl0 := l0.Sincos()
	sb0, cb0 := b0.Sincos()
	sl, cl := l.Sincos()
	sb, cb := b.Sincos()
	x = r*cb*cl - R*cb0*cl0
	y = r*cb*sl - R*cb0*sl0
	z = r*sb - R*sb0
	return
}

// Distance returns the length of the rectangular vector x, y, z.
func Distance(x, y, z float64) float64 {
	return math.Sqrt(x*x + y*y + z*z)
}

// LightTime returns the time in days for light to travel Δ AU.
func LightTime(Δ float64) float64 {
	return base.LightTime(Δ)
}

// EclToEq converts ecliptic longitude and latitude to right ascension and
// declination for an obliquity given by its sine and cosine.
//
// The right ascension is reduced to [0, 2π).
func EclToEq(λ, β unit.Angle, sε, cε float64) (α, δ unit.Angle) {
	ra, δ := coord.EclToEq(λ, β, sε, cε)
	return unit.Angle(ra), δ
}

// RectToEq converts geocentric ecliptic rectangular coordinates to right
// ascension and declination for an obliquity given by its sine and cosine.
func RectToEq(x, y, z float64, sε, cε float64) (α, δ unit.Angle) {
	u := y*cε - z*sε
	v := y*sε + z*cε
	α = unit.Angle(math.Atan2(u, x))
	δ = unit.Angle(math.Atan2(v, math.Hypot(x, u)))
	return
}
