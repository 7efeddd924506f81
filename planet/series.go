// Copyright 2016 Jeremy Bingham, under the MIT License.
// See the LICENSE file in this repository, or
// http://www.opensource.org/licenses/MIT

package planet

import (
	"fmt"
	"math"

	"github.com/soniakeys/meeus/v3/base"
	pp "github.com/soniakeys/meeus/v3/planetposition"
	"github.com/soniakeys/unit"
)

// term is one periodic term A cos(B + C τ), A in units of 1e-8 radian or
// 1e-8 AU, B in radians, C in radians per Julian millennium.
type term struct {
	a, b, c float64
}

// Series holds the periodic terms of a truncated VSOP87 theory. Each of L,
// B and R is indexed by the power of τ the summed terms are multiplied by.
type Series struct {
	Name    string
	L, B, R [][]term
}

// Position implements Positioner. l is reduced to [0, 2π).
func (s *Series) Position(jde float64) (l, b unit.Angle, r float64) {
	τ := base.J2000Century(jde) * .1
	l = unit.Angle(sum(s.L, τ)).Mod1()
	b = unit.Angle(sum(s.B, τ))
	r = sum(s.R, τ)
	return
}

func sum(series [][]term, τ float64) float64 {
	var total float64
	tn := 1.
	for _, terms := range series {
		var s float64
		for _, t := range terms {
			s += t.a * math.Cos(t.b+t.c*τ)
		}
		total += s * tn
		tn *= τ
	}
	return total * 1e-8
}

// LoadVSOP87 returns positioners for the Earth and Jupiter. With an empty
// path the truncated series compiled into this package are returned,
// otherwise the full VSOP87B files are read from the directory path.
func LoadVSOP87(path string) (earth, jupiter Positioner, err error) {
	if path == "" {
		return Earth, Jupiter, nil
	}
	e, err := pp.LoadPlanetPath(pp.Earth, path)
	if err != nil {
		return nil, nil, fmt.Errorf("loading VSOP87 Earth from %s: %w", path, err)
	}
	j, err := pp.LoadPlanetPath(pp.Jupiter, path)
	if err != nil {
		return nil, nil, fmt.Errorf("loading VSOP87 Jupiter from %s: %w", path, err)
	}
	return e, j, nil
}
