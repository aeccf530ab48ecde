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

package cmplx

import (
	"math"
	stdcmplx "math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/ajroetker/go-special/special"
)

func TestLoggammaKnownValue(t *testing.T) {
	want := complex(-0.6509231993018563, -0.3016403204675331)
	got := Loggamma(1 + 1i)
	assert.True(t, near(got, want, 1e-13), "Loggamma(1+1i) = %v, want %v", got, want)
	assert.True(t, near(Loggamma(1-1i), stdcmplx.Conj(want), 1e-13))
}

func TestLoggammaPositiveRealAxis(t *testing.T) {
	for _, x := range []float64{1e-10, 0.5, 1, 1.5, 2, 3.25, 7.5, 20, 1e5} {
		got := Loggamma(complex(x, 0))
		assert.Equal(t, special.Lgamma(x), real(got), "Loggamma(%v)", x)
		assert.Equal(t, 0.0, imag(got), "Loggamma(%v)", x)
	}
}

func TestLoggammaNearRealAxis(t *testing.T) {
	// Off the axis the Stirling series takes over; it should agree with
	// the real function to working precision.
	for _, x := range []float64{7.5, 20, 100, 1e4} {
		got := Loggamma(complex(x, 1e-300))
		if !scalar.EqualWithinRel(real(got), special.Lgamma(x), 1e-13) {
			t.Errorf("Loggamma(%v+0i) = %v, want %v", x, got, special.Lgamma(x))
		}
	}
}

func TestLoggammaNegativeRealAxis(t *testing.T) {
	// exp(log Γ(x)) = Γ(x) whichever branch the imaginary part lands on.
	for _, x := range []float64{-0.5, -1.5, -2.5, -3.7, -10.2} {
		got := stdcmplx.Exp(Loggamma(complex(x, 0)))
		want := math.Gamma(x)
		assert.True(t, near(got, complex(want, 0), 1e-12), "exp(Loggamma(%v)) = %v, want %v", x, got, want)
	}
}

func TestLoggammaRecurrence(t *testing.T) {
	// log Γ(z + 1) = log Γ(z) + log(z) on the principal branch.
	xs := []float64{-7.5, -3.3, -0.5, 0.05, 0.3, 1.1, 2.1, 3.5, 6.9, 8}
	ys := []float64{-8, -2.5, -0.3, 0.3, 1, 2.5, 6.5, 10}
	for _, x := range xs {
		for _, y := range ys {
			z := complex(x, y)
			got := Loggamma(z + 1)
			want := Loggamma(z) + stdcmplx.Log(z)
			if !near(got, want, 1e-12) {
				t.Errorf("Loggamma(%v) = %v, want %v", z+1, got, want)
			}
		}
	}
}

func TestLoggammaConjugate(t *testing.T) {
	for _, z := range []complex128{0.5 + 0.5i, -2.3 + 0.7i, 1.05 + 0.1i, 2.1 + 0.05i, 4 + 3i, 30 + 40i, -50 + 1i} {
		assert.Equal(t, stdcmplx.Conj(Loggamma(z)), Loggamma(stdcmplx.Conj(z)), "Loggamma(%v)", z)
	}
}

func TestLoggammaSpecialCases(t *testing.T) {
	for _, z := range []complex128{0, -1, -2, -100, complex(math.NaN(), 1), complex(1, math.NaN())} {
		got := Loggamma(z)
		assert.True(t, math.IsNaN(real(got)) && math.IsNaN(imag(got)), "Loggamma(%v) = %v", z, got)
	}
	assert.Equal(t, complex(0, 0), Loggamma(1))
	assert.Equal(t, complex(0, 0), Loggamma(2))
	assert.False(t, stdcmplx.IsNaN(Loggamma(complex(1e10, 1e10))))
}
