// Copyright 2016 Jeremy Bingham, under the MIT License.
// See the LICENSE file in this repository, or
// http://www.opensource.org/licenses/MIT

// Package round rounds values for presentation and for comparing against
// published figures.
package round

import "math"

// Digits rounds x to n decimal digits, halves away from zero.
func Digits(x float64, n int) float64 {
	p := math.Pow(10, float64(n))
	return math.Round(x*p) / p
}
