// Copyright 2016 Jeremy Bingham, under the MIT License.
// See the LICENSE file in this repository, or
// http://www.opensource.org/licenses/MIT

package jupiter

import (
	"math"

	"github.com/soniakeys/unit"
)

// from http://www.projectpluto.com/grs_form.htm
func meridianCorrection(jd float64) float64 {
	jupMean := unit.AngleFromDeg((jd - 2455636.938) * 360 / 4332.89709)
	eqnCenter := 5.55 * jupMean.Sin()
	angle := unit.AngleFromDeg((jd-2451870.628)*360/398.884 - eqnCenter)
	return 11*angle.Sin() + 5*angle.Cos() - 1.25*jupMean.Cos() - eqnCenter
}

// CM3 returns the longitude of the central meridian in System III, the
// rotation of the magnetosphere that decametric radio sources are fixed
// in. It is reduced to [0, 2π).
func CM3(jd float64) unit.Angle {
	m := unit.PMod(138.41+870.4535567*jd+meridianCorrection(jd), 360)
	return unit.AngleFromDeg(m)
}

// IoPhase returns the orbital phase of Io as used in decametric radio
// forecasts, for Earth-Jupiter distance Δ AU. It is reduced to [0, 2π).
func IoPhase(jd, Δ float64) unit.Angle {
	// snagged the equations for this from
	// https://github.com/akkana/scripts/blob/master/jsjupiter/jupiter.js
	d := jd - 2415020
	v := unit.AngleFromDeg(134.63 + .00111587*d)
	eAnomaly := unit.AngleFromDeg(358.476 + .9856003*d)
	jAnomaly := unit.AngleFromDeg(225.328 + .0830853*d + .33*v.Sin())
	j := unit.AngleFromDeg(221.647 + .9025179*d - .33*v.Sin())
	a := unit.AngleFromDeg(1.916*eAnomaly.Sin() + .020*(2*eAnomaly).Sin())
	b := unit.AngleFromDeg(5.552*jAnomaly.Sin() + .167*(2*jAnomaly).Sin())
	k := j + a - b
	rvE := 1.00014 - .01672*eAnomaly.Cos() - .00014*(2*eAnomaly).Cos()
	ψ := unit.Angle(math.Asin(rvE / Δ * k.Sin()))

	io := unit.AngleFromDeg(84.5506+203.405863*(d-Δ/173)) + ψ - b
	return (io + math.Pi).Mod1()
}
