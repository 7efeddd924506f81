// Computes the ephemeris for physical observations of Jupiter over a span of
// time, with the System III meridian and Io phase radio observers use.
//
// Copyright 2016 Jeremy Bingham, under the MIT License.
// See the LICENSE file in this repository, or
// http://www.opensource.org/licenses/MIT

/*
jovian-ephemeris prints, for a series of instants, the quantities needed to
observe the disk of Jupiter: the planetocentric declinations of the Earth and
the Sun, the longitudes of the central meridian in Systems I, II and III, the
position angle of the rotation axis, the Earth-Jupiter distance, the apparent
equatorial diameter, and the phase of Io.

Positions come from truncated VSOP87 series built into the program, good to
about 0.01°. For full accuracy obtain the VSOP87 files (an archive is located
at ftp://cdsarc.u-strasbg.fr/pub/cats/VI%2F81/), place them in a directory,
and either set the environment variable VSOP87 to that directory or pass it
with -vsop87.

    Usage of ./jovian-ephemeris:
      -deltat string
            ΔT in seconds, or "auto" to interpolate it from tables (default "auto")
      -duration duration
            Duration (in golang ParseDuration format) from the start time to calculate the ephemeris (default 24h0m0s)
      -interval int
            Interval in minutes between ephemeris entries (default 60)
      -job string
            Optional TOML job file supplying any of the other settings
      -json
            Print the ephemeris as JSON
      -start-time string
            Start time (in RFC 3339 format) of the ephemeris (defaults to now)
      -vsop87 string
            Directory of VSOP87 files; the built-in series are used when empty
      -version
            Print version number and exit.

A job file looks like

    start = 1992-12-16T00:00:00Z
    end = 1992-12-17T00:00:00Z
    interval = 30
    deltat = "59"
    format = "json"

Flags given on the command line override the job file.

License

Copyright 2016, Jeremy Bingham, under the terms of the MIT License.

*/
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ctdk/jovian-ephemeris/planet"
)

const version string = "0.2.0"

func main() {
	jobFile := flag.String("job", "", "Optional TOML job file supplying any of the other settings")
	startTime := flag.String("start-time", "", "Start time (in RFC 3339 format) of the ephemeris (defaults to now)")
	dur := flag.Duration("duration", 24*time.Hour, "Duration (in golang ParseDuration format) from the start time to calculate the ephemeris")
	interval := flag.Int("interval", 60, "Interval in minutes between ephemeris entries")
	deltaT := flag.String("deltat", "auto", "ΔT in seconds, or \"auto\" to interpolate it from tables")
	vsop87 := flag.String("vsop87", os.Getenv("VSOP87"), "Directory of VSOP87 files; the built-in series are used when empty")
	asJSON := flag.Bool("json", false, "Print the ephemeris as JSON")
	ver := flag.Bool("version", false, "Print version number and exit.")

	flag.Parse()

	if *ver {
		fmt.Printf("jovian-ephemeris version %s\n", version)
		os.Exit(0)
	}

	j := newJob(time.Now().UTC())
	if *jobFile != "" {
		var err error
		j, err = loadJob(*jobFile, j)
		if err != nil {
			log.Println(err)
			os.Exit(1)
		}
	}
	if j.VSOP87 == "" {
		j.VSOP87 = *vsop87
	}

	var flagErr error
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "start-time":
			t, err := time.Parse(time.RFC3339, *startTime)
			if err != nil {
				flagErr = err
				return
			}
			span := j.End.Sub(j.Start)
			j.Start = t.UTC()
			j.End = j.Start.Add(span)
		case "duration":
			j.End = j.Start.Add(*dur)
		case "interval":
			j.Interval = *interval
		case "deltat":
			j.DeltaT = *deltaT
		case "vsop87":
			j.VSOP87 = *vsop87
		case "json":
			if *asJSON {
				j.Format = formatJSON
			}
		}
	})
	if flagErr != nil {
		log.Println(flagErr)
		os.Exit(1)
	}
	if err := j.validate(); err != nil {
		log.Println(err)
		os.Exit(1)
	}

	earth, jup, err := planet.LoadVSOP87(j.VSOP87)
	if err != nil {
		log.Println(err)
		os.Exit(1)
	}

	eData, err := compute(j, earth, jup)
	if err != nil {
		log.Println(err)
		os.Exit(1)
	}

	if j.Format == formatJSON {
		err = outputJSON(os.Stdout, eData)
	} else {
		err = outputText(os.Stdout, eData)
	}
	if err != nil {
		log.Println(err)
		os.Exit(1)
	}
}
