// Copyright 2025 go-special Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package special

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestEn(t *testing.T) {
	tests := []struct {
		n    uint
		x    float64
		want float64
	}{
		// Power series
		{2, 0.1, 7.22545022194020506556e-1},
		{3, 0.499, 2.21931288226629049251e-1},
		{5, 0.25, 1.80166242609999780453e-1},
		{15, 0.499, 4.17685686455425074938e-2},
		// Finite series
		{2, 0.5, 3.26643862324553017730e-1},
		{3, 0.5, 2.21604364275178457369e-1},
		{3, 1.2, 8.39346533418328345615e-2},
		{5, 0.75, 9.58234164228735518738e-2},
		{10, 1.25, 2.75987637473716274325e-2},
		{14, 1.5, 1.52732365454561867042e-2},
		// Taylor series about one
		{15, 0.5, 4.17237480859567591105e-2},
		{20, 1.4, 1.20458019390617838929e-2},
		{20, 1.5, 1.08440385980047132461e-2},
		{30, 0.7, 1.67063483559614250076e-2},
		{50, 1.5, 4.41577258488818728733e-3},
		// Continued fraction
		{20, 1.5000000000000002, 1.08440385980047109669e-2},
		{2, 3, 1.06419250852728307418e-2},
		{10, 5, 4.69104807657811890256e-4},
		{25, 2, 5.18934062999882235262e-3},
		{50, 10, 7.67261550621542109096e-7},
		// Large order
		{51, 0.5, 1.20081072508817344361e-2},
		{60, 1, 6.12959350642334116604e-3},
		{100, 10, 4.16160209262653753898e-7},
		{200, 100, 1.24278091680838824832e-46},
	}

	for _, tt := range tests {
		got := En(tt.n, tt.x)
		if !scalar.EqualWithinRel(got, tt.want, 1e-13) {
			t.Errorf("En(%d, %v) = %v, want %v", tt.n, tt.x, got, tt.want)
		}
	}
}

func TestEnSpecialCases(t *testing.T) {
	assert.True(t, math.IsInf(En(0, 0), 1))
	assert.True(t, math.IsInf(En(1, 0), 1))
	for n := uint(2); n < 100; n++ {
		assert.Equal(t, 1/float64(n-1), En(n, 0), "En(%d, 0)", n)
	}
	for _, n := range []uint{0, 1, 2, 51, 1000} {
		assert.Equal(t, 0.0, En(n, math.Inf(1)), "En(%d, +Inf)", n)
		assert.Equal(t, 0.0, En(n, 800), "En(%d, 800)", n)
		assert.True(t, math.IsNaN(En(n, -1)), "En(%d, -1)", n)
		assert.True(t, math.IsNaN(En(n, math.NaN())), "En(%d, NaN)", n)
	}
}

func TestEnOrderZero(t *testing.T) {
	for _, x := range []float64{1e-10, 0.5, 1, 7.5, 700} {
		assert.Equal(t, math.Exp(-x)/x, En(0, x), "En(0, %v)", x)
	}
}

func TestEnOrderOne(t *testing.T) {
	for _, x := range []float64{1e-10, 0.5, 1, 7.5, 700} {
		assert.Equal(t, E1(x), En(1, x), "En(1, %v)", x)
	}
}

func TestEnRecurrence(t *testing.T) {
	// n E_{n+1}(x) = exp(-x) - x E_n(x), DLMF 8.19.12
	for _, x := range []float64{0.2, 0.75, 1.3, 2, 4.5} {
		for n := uint(1); n < 70; n++ {
			got := float64(n) * En(n+1, x)
			want := math.Exp(-x) - x*En(n, x)
			if !scalar.EqualWithinRel(got, want, 1e-12) {
				t.Errorf("n=%d x=%v: n En(n+1, x) = %v, exp(-x) - x En(n, x) = %v", n, x, got, want)
			}
		}
	}
}

func TestEnBounds(t *testing.T) {
	// 1/(x + n) < exp(x) E_n(x) <= 1/(x + n - 1), DLMF 8.10.3
	for _, x := range []float64{0.3, 1, 2.5, 10, 40} {
		for _, n := range []uint{2, 5, 14, 15, 40, 51, 120} {
			v := math.Exp(x) * En(n, x)
			nf := float64(n)
			assert.Greater(t, v, 1/(x+nf), "En(%d, %v)", n, x)
			assert.LessOrEqual(t, v, 1/(x+nf-1), "En(%d, %v)", n, x)
		}
	}
}
