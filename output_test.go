// Copyright 2016 Jeremy Bingham, under the MIT License.
// See the LICENSE file in this repository, or
// http://www.opensource.org/licenses/MIT

package main

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/ctdk/jovian-ephemeris/planet"
)

func testData(t *testing.T) *ephemerisData {
	t.Helper()
	j := newJob(time.Date(1992, 12, 16, 0, 0, 0, 0, time.UTC))
	j.End = j.Start.Add(3 * time.Hour)
	j.DeltaT = "59"
	eData, err := compute(j, planet.Earth, planet.Jupiter)
	if err != nil {
		t.Fatal(err)
	}
	return eData
}

func TestCompute(t *testing.T) {
	eData := testData(t)
	if len(eData.Intervals) != 3 {
		t.Fatalf("%d intervals, want 3", len(eData.Intervals))
	}
	first := eData.Intervals[0]
	// the reference instant of the physical ephemeris, with nutation
	// from the meeus package
	if math.Abs(first.JDE-2448972.50068) > 1e-5 {
		t.Errorf("JDE = %f, want 2448972.50068", first.JDE)
	}
	checks := []struct {
		name      string
		got, want float64
		tol       float64
	}{
		{"D_E", first.EarthLat, -2.48, .01},
		{"D_S", first.SunLat, -2.20, .01},
		{"ω1", first.CM1, 268.07, .01},
		{"ω2", first.CM2, 72.74, .01},
		{"P", first.AxisPA, 24.80, .01},
		{"Δ", first.Distance, 5.6611, .0001},
		{"diameter", first.Diameter, 34.78, .01},
	}
	for _, c := range checks {
		if math.Abs(c.got-c.want) > c.tol {
			t.Errorf("%s = %f, want %f", c.name, c.got, c.want)
		}
	}
	for i, ei := range eData.Intervals {
		if !ei.finite() {
			t.Errorf("interval %d not finite: %+v", i, ei)
		}
		if ei.CM3 < 0 || ei.CM3 >= 360 || ei.IoPhase < 0 || ei.IoPhase >= 360 {
			t.Errorf("interval %d: CM3 %f, Io %f out of range", i, ei.CM3, ei.IoPhase)
		}
	}
	// System II turns about 36.26° an hour
	d := math.Mod(eData.Intervals[1].CM2-first.CM2+360, 360)
	if math.Abs(d-36.26) > .05 {
		t.Errorf("ω2 advanced %f° in an hour", d)
	}
}

func TestComputeLimit(t *testing.T) {
	j := newJob(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC))
	j.End = j.Start.AddDate(100, 0, 0)
	j.Interval = 1
	if _, err := compute(j, planet.Earth, planet.Jupiter); err == nil {
		t.Error("expected the interval limit to be enforced")
	}
}

func TestComputeLongInterval(t *testing.T) {
	j := newJob(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC))
	j.Interval = 153722868
	if _, err := compute(j, planet.Earth, planet.Jupiter); err == nil {
		t.Error("expected an interval overflowing time.Duration to be refused")
	}
	j.Interval = 153722867
	eData, err := compute(j, planet.Earth, planet.Jupiter)
	if err != nil {
		t.Fatal(err)
	}
	if len(eData.Intervals) != 1 {
		t.Errorf("%d intervals, want 1", len(eData.Intervals))
	}
}

func TestComputeLimitLongSpan(t *testing.T) {
	// longer than a time.Duration can hold
	j := newJob(time.Date(1000, 1, 1, 0, 0, 0, 0, time.UTC))
	j.End = time.Date(3000, 1, 1, 0, 0, 0, 0, time.UTC)
	j.Interval = 3 * 1440
	if _, err := compute(j, planet.Earth, planet.Jupiter); err == nil {
		t.Error("expected the interval limit to be enforced")
	}
}

func TestFinite(t *testing.T) {
	ei := &ephemerisInterval{Distance: 5}
	if !ei.finite() {
		t.Error("zero interval reported not finite")
	}
	ei.IoPhase = math.NaN()
	if ei.finite() {
		t.Error("NaN Io phase reported finite")
	}
	ei.IoPhase = 0
	ei.Diameter = math.Inf(1)
	if ei.finite() {
		t.Error("infinite diameter reported finite")
	}
}

func TestOutputJSON(t *testing.T) {
	eData := testData(t)
	var b bytes.Buffer
	if err := outputJSON(&b, eData); err != nil {
		t.Fatal(err)
	}
	var back ephemerisData
	if err := json.Unmarshal(b.Bytes(), &back); err != nil {
		t.Fatal(err)
	}
	if len(back.Intervals) != len(eData.Intervals) {
		t.Fatalf("%d intervals decoded, want %d", len(back.Intervals), len(eData.Intervals))
	}
	if back.Intervals[0].CM2 != eData.Intervals[0].CM2 {
		t.Errorf("CM2 %f decoded as %f", eData.Intervals[0].CM2, back.Intervals[0].CM2)
	}
}

func TestOutputText(t *testing.T) {
	eData := testData(t)
	var b bytes.Buffer
	if err := outputText(&b, eData); err != nil {
		t.Fatal(err)
	}
	out := b.String()
	for _, want := range []string{
		"Ephemeris for Physical Observations of Jupiter",
		"truncated VSOP87",
		"every 60 minutes",
		"Dec 16",
		"-2.48",
		"72.74",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q:\n%s", want, out)
		}
	}
	// header, rule, one line per interval
	lines := strings.Split(out, "\n")
	var rows int
	for _, l := range lines {
		if strings.HasPrefix(l, "351 ") {
			rows++
		}
	}
	if rows != len(eData.Intervals) {
		t.Errorf("%d data rows, want %d", rows, len(eData.Intervals))
	}
}
