// Copyright 2016 Jeremy Bingham, under the MIT License.
// See the LICENSE file in this repository, or
// http://www.opensource.org/licenses/MIT

package main

import (
	"fmt"
	"log"
	"math"
	"time"

	"github.com/ctdk/jovian-ephemeris/jupiter"
	"github.com/ctdk/jovian-ephemeris/planet"
	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/nutation"
	"github.com/soniakeys/unit"
)

// upper bound on entries in one run
const maxIntervals = 100000

type ephemerisData struct {
	StartTime time.Time
	EndTime   time.Time
	Interval  int
	Source    string
	Intervals []*ephemerisInterval
}

// ephemerisInterval is one line of the ephemeris. Angles are degrees.
type ephemerisInterval struct {
	Instant  time.Time
	JDE      float64
	EarthLat float64
	SunLat   float64
	CM1      float64
	CM2      float64
	CM3      float64
	AxisPA   float64
	Distance float64
	Diameter float64 // equatorial, arcseconds
	IoPhase  float64
}

func compute(j *job, earth, jup planet.Positioner) (*ephemerisData, error) {
	if j.Interval <= 0 || int64(j.Interval) > maxIntervalMinutes {
		return nil, fmt.Errorf("interval of %d minutes out of range", j.Interval)
	}
	step := time.Duration(j.Interval) * time.Minute
	// in days, as Sub saturates after 292 years
	span := julian.TimeToJD(j.End) - julian.TimeToJD(j.Start)
	if n := span * 1440 / float64(j.Interval); n > maxIntervals {
		return nil, fmt.Errorf("%.0f entries requested, more than the limit of %d; lengthen the interval", n, maxIntervals)
	}
	eData := &ephemerisData{
		StartTime: j.Start,
		EndTime:   j.End,
		Interval:  j.Interval,
		Source:    sourceName(j.VSOP87),
	}
	for t := j.Start; t.Before(j.End); t = t.Add(step) {
		ei := entry(j, t, earth, jup)
		if !ei.finite() {
			log.Printf("degenerate geometry at %s, ephemeris is not finite", t.Format(time.RFC3339))
		}
		eData.Intervals = append(eData.Intervals, ei)
	}
	return eData, nil
}

func entry(j *job, t time.Time, earth, jup planet.Positioner) *ephemerisInterval {
	jd := julian.TimeToJD(t)
	jde := j.jde(t)
	Δψ, Δε := nutation.Nutation(jde)
	ε0 := nutation.MeanObliquity(jde)
	e := jupiter.Physical(jde, ε0, Δψ, Δε, earth, jup)
	return &ephemerisInterval{
		Instant:  t,
		JDE:      jde,
		EarthLat: e.EarthLat.Deg(),
		SunLat:   e.SunLat.Deg(),
		CM1:      e.CM1.Deg(),
		CM2:      e.CM2.Deg(),
		CM3:      jupiter.CM3(jd).Deg(),
		AxisPA:   unit.PMod(e.AxisPA.Deg(), 360),
		Distance: e.Delta,
		Diameter: 2 * jupiter.EqSemidiameter(e.Delta).Sec(),
		IoPhase:  jupiter.IoPhase(jd, e.Delta).Deg(),
	}
}

func sourceName(vsop87 string) string {
	if vsop87 == "" {
		return "truncated VSOP87"
	}
	return "VSOP87 " + vsop87
}

func (ei *ephemerisInterval) finite() bool {
	for _, v := range []float64{ei.EarthLat, ei.SunLat, ei.CM1, ei.CM2, ei.CM3, ei.AxisPA, ei.Distance, ei.Diameter, ei.IoPhase} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
