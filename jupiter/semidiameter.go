// Copyright 2016 Jeremy Bingham, under the MIT License.
// See the LICENSE file in this repository, or
// http://www.opensource.org/licenses/MIT

package jupiter

import (
	"github.com/soniakeys/meeus/v3/semidiameter"
	"github.com/soniakeys/unit"
)

// EqSemidiameter returns the equatorial semidiameter of Jupiter at
// distance Δ AU from the Earth.
func EqSemidiameter(Δ float64) unit.Angle {
	return semidiameter.Semidiameter(semidiameter.JupiterEquatorial, Δ)
}

// PolSemidiameter returns the polar semidiameter of Jupiter at distance
// Δ AU from the Earth.
func PolSemidiameter(Δ float64) unit.Angle {
	return semidiameter.Semidiameter(semidiameter.JupiterPolar, Δ)
}
