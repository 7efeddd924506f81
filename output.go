// Copyright 2016 Jeremy Bingham, under the MIT License.
// See the LICENSE file in this repository, or
// http://www.opensource.org/licenses/MIT

package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"text/template"
	"time"

	sexa "github.com/soniakeys/sexagesimal"
	"github.com/soniakeys/unit"
)

type textOutput struct {
	Start    time.Time
	End      time.Time
	Interval int
	Source   string
	Data     string
}

func outputJSON(w io.Writer, eData *ephemerisData) error {
	j, err := json.MarshalIndent(eData, "", "\t")
	if err != nil {
		return err
	}
	_, err = w.Write(append(j, '\n'))
	return err
}

func outputText(out io.Writer, eData *ephemerisData) error {
	// Set the template up first in case anything somehow goes horribly
	// wrong.
	tmpl, err := template.New("textOut").Parse(strings.TrimSpace(textOutputTemplate))
	if err != nil {
		return err
	}

	outData := &textOutput{
		Start:    eData.StartTime,
		End:      eData.EndTime,
		Interval: eData.Interval,
		Source:   eData.Source,
	}

	// the actual data
	var b bytes.Buffer
	bio := bufio.NewWriter(&b)
	w := tabwriter.NewWriter(bio, 1, 8, 1, ' ', 0)

	fmt.Fprintf(w, "DY\tDate\tUTC\tD_E\tD_S\tω1\tω2\tω3\tP\tDist.\tDiam.\tIo°\t\n")
	fmt.Fprintf(w, "--\t----\t---\t---\t---\t--\t--\t--\t-\t-----\t-----\t---\t\n")
	for _, ei := range eData.Intervals {
		fmt.Fprintf(w, "%d\t%s\t%s\t%+.2f\t%+.2f\t%.2f\t%.2f\t%.2f\t%.2f\t%.4f\t%.2s\t%.1f\t\n",
			ei.Instant.YearDay(), ei.Instant.Format("Jan 02"), ei.Instant.Format("15:04"),
			ei.EarthLat, ei.SunLat, ei.CM1, ei.CM2, ei.CM3, ei.AxisPA,
			ei.Distance, sexa.FmtAngle(unit.AngleFromSec(ei.Diameter)), ei.IoPhase)
	}

	w.Flush()
	bio.Flush()
	outData.Data = strings.TrimSpace(b.String())

	return tmpl.Execute(out, outData)
}
