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
	"gonum.org/v1/gonum/mathext"
)

func TestZeta(t *testing.T) {
	tests := []struct {
		s    float64
		want float64
		tol  float64
	}{
		{0.01, -0.509290714039839925108, 1e-13},
		{0.5, -1.46035450880958681289, 1e-13},
		{0.9, -9.43011401940225237230, 1e-13},
		{1.1, 10.5844484649508098264, 1e-13},
		{1.5, 2.61237534868548834335, 1e-13},
		{2.5, 1.34148725725091717976, 1e-13},
		{3, 1.20205690315959428540, 1e-13},
		{3.5, 1.12673386731705664643, 1e-13},
		{5, 1.03692775514336992633, 1e-13},
		{6.5, 1.01200589988852479610, 1e-13},
		{10, 1.00099457512781808534, 1e-13},
		{20.5, 1.00000067451561816786, 1e-13},
		{40, 1.00000000000090949478, 1e-13},
		{50.5, 1.00000000000000062804, 1e-13},
		{-0.25, -0.320451264228577282790, 1e-12},
		{-0.5, -0.207886224977354566017, 1e-12},
		{-0.99, -8.50001190598195532764e-2, 1e-12},
		{-1, -1.0 / 12, 1e-12},
		{-1.5, -2.54852018898330359495e-2, 1e-12},
		{-2.5, 8.51692877785033054236e-3, 1e-12},
		{-3, 1.0 / 120, 1e-12},
		{-7.5, 3.26903957260022002172e-3, 1e-12},
		{-15, 0.443259803921568627451, 1e-12},
	}

	for _, tt := range tests {
		got := Zeta(tt.s)
		if !scalar.EqualWithinRel(got, tt.want, tt.tol) {
			t.Errorf("Zeta(%v) = %v, want %v", tt.s, got, tt.want)
		}
	}
}

func TestZetaEvenIntegers(t *testing.T) {
	assert.Equal(t, math.Pi*math.Pi/6, Zeta(2))
	assert.True(t, scalar.EqualWithinULP(Zeta(4), math.Pow(math.Pi, 4)/90, 1))
	for s := 6.0; s < 56; s += 2 {
		assert.InEpsilon(t, mathext.Zeta(s, 1), Zeta(s), 1e-14, "Zeta(%v)", s)
	}
}

func TestZetaAgainstHurwitz(t *testing.T) {
	// ζ(s) = ζ(s, 1)
	for s := 1.25; s < 60; s += 1.3 {
		got, want := Zeta(s), mathext.Zeta(s, 1)
		if !scalar.EqualWithinRel(got, want, 1e-12) {
			t.Errorf("Zeta(%v) = %v, mathext.Zeta(%v, 1) = %v", s, got, s, want)
		}
	}
}

func TestZetaSpecialCases(t *testing.T) {
	assert.Equal(t, -0.5, Zeta(0))
	assert.Equal(t, 1.0, Zeta(math.Inf(1)))
	assert.Equal(t, 1.0, Zeta(100))
	for _, s := range []float64{1, math.Inf(-1), math.NaN()} {
		assert.True(t, math.IsNaN(Zeta(s)), "Zeta(%v)", s)
	}
	for _, s := range []float64{-2, -4, -100, -1000} {
		assert.Equal(t, 0.0, Zeta(s), "Zeta(%v)", s)
	}
	assert.True(t, math.IsInf(Zeta(-263), 1))
	assert.True(t, math.IsInf(Zeta(-265), -1))
	assert.False(t, math.IsInf(Zeta(-141), 0))
}

func TestZetaContinuity(t *testing.T) {
	// Neighbouring floats on either side of the region boundaries.
	for _, s := range []float64{-1, 2, 4, 7, 15, 36, 56} {
		lo, hi := math.Nextafter(s, math.Inf(-1)), math.Nextafter(s, math.Inf(1))
		if !scalar.EqualWithinRel(Zeta(lo), Zeta(hi), 1e-12) {
			t.Errorf("Zeta(%v) = %v, Zeta(%v) = %v", lo, Zeta(lo), hi, Zeta(hi))
		}
	}
}
