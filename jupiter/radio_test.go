// Copyright 2016 Jeremy Bingham, under the MIT License.
// See the LICENSE file in this repository, or
// http://www.opensource.org/licenses/MIT

package jupiter

import (
	"math"
	"testing"
)

func TestMeridianCorrectionBounded(t *testing.T) {
	for jd := 2440000.; jd < 2470000; jd += 37.3 {
		if c := meridianCorrection(jd); math.Abs(c) > 11+5+1.25+2*5.55 {
			t.Fatalf("correction at %f = %f°", jd, c)
		}
	}
}

func TestRadioAnglesRange(t *testing.T) {
	for _, jd := range []float64{2415020, 2448972.5, 2457388.5, 2460600.25} {
		if cm := CM3(jd); !(cm >= 0 && cm < 2*math.Pi) {
			t.Errorf("CM3(%f) = %f rad outside [0, 2π)", jd, cm.Rad())
		}
		if io := IoPhase(jd, 5); !(io >= 0 && io < 2*math.Pi) {
			t.Errorf("IoPhase(%f) = %f rad outside [0, 2π)", jd, io.Rad())
		}
	}
}

func TestIoPhaseAdvance(t *testing.T) {
	// Io goes round in about 1.769 days, 203.4° a day
	jd := 2448972.5
	a := IoPhase(jd, 5.66)
	b := IoPhase(jd+.1, 5.66)
	d := math.Mod((b-a).Deg()+360, 360)
	if math.Abs(d-20.34) > .5 {
		t.Errorf("Io moved %f° in 0.1 day, want about 20.34°", d)
	}
}

func TestCM3Rate(t *testing.T) {
	// System III turns 870.536° a day, 87.05° in 0.1 day
	jd := 2448972.5
	d := math.Mod((CM3(jd+.1)-CM3(jd)).Deg()+360, 360)
	if math.Abs(d-87.05) > .2 {
		t.Errorf("CM3 moved %f° in 0.1 day, want about 87.05°", d)
	}
}
