// Copyright 2016 Jeremy Bingham, under the MIT License.
// See the LICENSE file in this repository, or
// http://www.opensource.org/licenses/MIT

package main

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/naoina/toml"
	"github.com/soniakeys/meeus/v3/deltat"
	"github.com/soniakeys/meeus/v3/julian"
)

const (
	formatText = "text"
	formatJSON = "json"
)

// largest interval, in minutes, a time.Duration can hold
const maxIntervalMinutes = math.MaxInt64 / int64(time.Minute)

// job is everything needed to produce one ephemeris run. It is read from a
// TOML file with the same keys, lower cased.
type job struct {
	Start    time.Time
	End      time.Time
	Interval int    // minutes
	DeltaT   string // seconds, or "auto"
	VSOP87   string
	Format   string
}

func newJob(start time.Time) *job {
	return &job{
		Start:    start,
		End:      start.Add(24 * time.Hour),
		Interval: 60,
		DeltaT:   "auto",
		Format:   formatText,
	}
}

// loadJob reads a job file over the defaults in def.
func loadJob(path string, def *job) (*job, error) {
	td, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	j := *def
	if err = toml.Unmarshal(td, &j); err != nil {
		return nil, fmt.Errorf("parsing job file %s: %w", path, err)
	}
	// a new start without an end keeps the default span
	if !j.Start.Equal(def.Start) && j.End.Equal(def.End) {
		j.End = j.Start.Add(def.End.Sub(def.Start))
	}
	j.Start = j.Start.UTC()
	j.End = j.End.UTC()
	j.Format = strings.ToLower(j.Format)
	return &j, nil
}

func (j *job) validate() error {
	if j.Start.IsZero() {
		return errors.New("no start time given")
	}
	if !j.End.After(j.Start) {
		return fmt.Errorf("end %s is not after start %s", j.End.Format(time.RFC3339), j.Start.Format(time.RFC3339))
	}
	if j.Interval <= 0 {
		return fmt.Errorf("interval must be positive, got %d minutes", j.Interval)
	}
	if int64(j.Interval) > maxIntervalMinutes {
		return fmt.Errorf("interval of %d minutes is too long, the limit is %d", j.Interval, maxIntervalMinutes)
	}
	if _, _, err := parseDeltaT(j.DeltaT); err != nil {
		return err
	}
	switch j.Format {
	case formatText, formatJSON:
	default:
		return fmt.Errorf("unknown output format %q", j.Format)
	}
	return nil
}

// parseDeltaT parses a ΔT setting. auto is true for "auto" or "".
func parseDeltaT(s string) (sec float64, auto bool, err error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "auto") {
		return 0, true, nil
	}
	sec, err = strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false, fmt.Errorf("bad ΔT %q: %w", s, err)
	}
	if math.IsNaN(sec) || math.IsInf(sec, 0) {
		return 0, false, fmt.Errorf("bad ΔT %q", s)
	}
	return sec, false, nil
}

// jde returns the Julian ephemeris day of the UTC instant t.
func (j *job) jde(t time.Time) float64 {
	jd := julian.TimeToJD(t)
	sec, auto, _ := parseDeltaT(j.DeltaT)
	if auto {
		sec = deltaT(jd)
	}
	return jd + sec/86400
}

// deltaT returns ΔT in seconds. Meeus' table 10.A covers 1620 to 2005 and
// his polynomials (10.1) and (10.2) the years before 1600 and after 2150.
// The remaining spans use the Espenak-Meeus polynomials, which the deltat
// package does not carry.
func deltaT(jd float64) float64 {
	y := 2000 + (jd-2451545)/365.25
	switch {
	case y < 948:
		return float64(deltat.PolyBefore948(y))
	case y < 1600:
		return float64(deltat.Poly948to1600(y))
	case y < 1620:
		t := y - 1600
		return 120 + t*(-.9808+t*(-.01532+t/7129))
	case y < 2005:
		return float64(deltat.Interp10A(jd))
	case y < 2050:
		t := y - 2000
		return 62.92 + t*(.32217+t*.005589)
	case y < 2150:
		u := (y - 1820) / 100
		return -20 + 32*u*u - .5628*(2150-y)
	}
	return float64(deltat.PolyAfter2000(y))
}
