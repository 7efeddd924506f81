// Copyright 2016 Jeremy Bingham, under the MIT License.
// See the LICENSE file in this repository, or
// http://www.opensource.org/licenses/MIT

package round

import (
	"math"
	"testing"
)

func TestDigits(t *testing.T) {
	tests := []struct {
		x    float64
		n    int
		want float64
	}{
		{-2.48464, 2, -2.48},
		{72.73805, 2, 72.74},
		{268.06575, 0, 268},
		{24.801, 2, 24.8},
		{0.5, 0, 1},
		{-0.5, 0, -1},
		{0, 3, 0},
	}
	for _, tc := range tests {
		if got := Digits(tc.x, tc.n); got != tc.want {
			t.Errorf("Digits(%g, %d) = %g, want %g", tc.x, tc.n, got, tc.want)
		}
	}
}

func TestDigitsNonFinite(t *testing.T) {
	if got := Digits(math.NaN(), 2); !math.IsNaN(got) {
		t.Errorf("Digits(NaN) = %g", got)
	}
	if got := Digits(math.Inf(-1), 2); !math.IsInf(got, -1) {
		t.Errorf("Digits(-Inf) = %g", got)
	}
}
