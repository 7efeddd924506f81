// Copyright 2016 Jeremy Bingham, under the MIT License.
// See the LICENSE file in this repository, or
// http://www.opensource.org/licenses/MIT

package main

var textOutputTemplate = `
################################################################################
                Ephemeris for Physical Observations of Jupiter
                    {{.Start}}
                                until:
                    {{.End}}
                every {{.Interval}} minutes, positions from {{.Source}}
################################################################################
{{.Data}}
################################################################################

`
