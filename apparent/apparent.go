// Copyright 2016 Jeremy Bingham, under the MIT License.
// See the LICENSE file in this repository, or
// http://www.opensource.org/licenses/MIT

// Package apparent turns geometric equatorial coordinates into apparent
// ones: first-order corrections for nutation and for the aberration of a
// planet seen from the moving Earth.
//
// All functions take the nutation and obliquity quantities as arguments
// rather than computing them, so callers may supply them from
// github.com/soniakeys/meeus/v3/nutation or any other source.
package apparent

import (
	"github.com/soniakeys/unit"
)

// Nutation returns corrections to right ascension α and declination δ for
// nutation in longitude Δψ and in obliquity Δε, ε being the true obliquity
// of the ecliptic.
//
// The corrections are to be added to α and δ. They are singular at the
// celestial poles, where tan δ is infinite.
func Nutation(α, δ, Δψ, Δε, ε unit.Angle) (Δα, Δδ unit.Angle) {
	sε, cε := ε.Sincos()
	sα, cα := α.Sincos()
	tδ := δ.Tan()
	Δα = Δψ*unit.Angle(cε+sε*sα*tδ) - Δε*unit.Angle(cα*tδ)
	Δδ = Δψ*unit.Angle(sε*cα) + Δε*unit.Angle(sα)
	return
}

// Aberration returns α, δ corrected for the aberration of light from a
// planet, using the differential formula with planet-specific amplitude k.
// l0 is the heliocentric longitude of the Earth and ε the true obliquity.
//
// The amplitude is not the constant of aberration; for Jupiter it is
// 0°.005693.
func Aberration(α, δ, l0, ε, k unit.Angle) (α1, δ1 unit.Angle) {
	sα, cα := α.Sincos()
	sδ, cδ := δ.Sincos()
	sl0, cl0 := l0.Sincos()
	sε, cε := ε.Sincos()
	α1 = α + k*unit.Angle((cα*cl0*cε+sα*sl0)/cδ)
	δ1 = δ + k*unit.Angle(cl0*cε*(sε/cε*cδ-sα*sδ)+cα*sδ*sl0)
	return
}
