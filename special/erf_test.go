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

func TestErfAgainstStdlib(t *testing.T) {
	for i := -600; i <= 600; i++ {
		x := float64(i) / 100
		if got, want := Erf(x), math.Erf(x); !scalar.EqualWithinAbsOrRel(got, want, 1e-300, 1e-14) {
			t.Errorf("Erf(%v) = %v, want %v", x, got, want)
		}
		if got, want := Erfc(x), math.Erfc(x); !scalar.EqualWithinAbsOrRel(got, want, 1e-300, 1e-14) {
			t.Errorf("Erfc(%v) = %v, want %v", x, got, want)
		}
	}
}

func TestErfcTail(t *testing.T) {
	for _, x := range []float64{6, 10, 15, 20, 25, 26} {
		got, want := Erfc(x), math.Erfc(x)
		if !scalar.EqualWithinRel(got, want, 1e-12) {
			t.Errorf("Erfc(%v) = %v, want %v", x, got, want)
		}
	}
}

func TestErfSpecialCases(t *testing.T) {
	assert.True(t, identical(0, Erf(0)))
	assert.True(t, identical(math.Copysign(0, -1), Erf(math.Copysign(0, -1))))
	assert.Equal(t, 1.0, Erf(math.Inf(1)))
	assert.Equal(t, -1.0, Erf(math.Inf(-1)))
	assert.Equal(t, 1.0, Erf(6))
	assert.True(t, math.IsNaN(Erf(math.NaN())))

	assert.Equal(t, 1.0, Erfc(0))
	assert.Equal(t, 0.0, Erfc(math.Inf(1)))
	assert.Equal(t, 0.0, Erfc(30))
	assert.Equal(t, 2.0, Erfc(math.Inf(-1)))
	assert.Equal(t, 2.0, Erfc(-30))
	assert.True(t, math.IsNaN(Erfc(math.NaN())))
}

func TestErfSmallArguments(t *testing.T) {
	for _, x := range []float64{1e-300, 1e-20, 1e-11, 2e-10, 1e-5} {
		want := 2 / math.Sqrt(math.Pi) * x
		assert.InEpsilon(t, want, Erf(x), 1e-9, "Erf(%v)", x)
		assert.InEpsilon(t, -want, Erf(-x), 1e-9, "Erf(%v)", -x)
	}
}

func TestErfinvRoundTrip(t *testing.T) {
	for i := -999; i <= 999; i++ {
		x := float64(i) / 1000
		got := Erf(Erfinv(x))
		if !scalar.EqualWithinAbs(got, x, 4e-15) {
			t.Errorf("Erf(Erfinv(%v)) = %v", x, got)
		}
	}
}

func TestErfinvAgainstStdlib(t *testing.T) {
	for _, x := range []float64{-0.999, -0.9, -0.5, -0.1, 1e-10, 0.1, 0.25, 0.5, 0.75, 0.9, 0.99, 0.9999} {
		got, want := Erfinv(x), math.Erfinv(x)
		if !scalar.EqualWithinRel(got, want, 1e-13) {
			t.Errorf("Erfinv(%v) = %v, want %v", x, got, want)
		}
	}
}

func TestErfcinvRoundTrip(t *testing.T) {
	for _, x := range []float64{1e-300, 1e-100, 1e-20, 1e-5, 0.01, 0.3, 0.75, 1, 1.25, 1.7, 1.99} {
		got := Erfc(Erfcinv(x))
		if !scalar.EqualWithinRel(got, x, 1e-12) {
			t.Errorf("Erfc(Erfcinv(%v)) = %v", x, got)
		}
	}
}

func TestErfinvSpecialCases(t *testing.T) {
	assert.True(t, identical(0, Erfinv(0)))
	assert.True(t, identical(math.Copysign(0, -1), Erfinv(math.Copysign(0, -1))))
	assert.True(t, math.IsInf(Erfinv(1), 1))
	assert.True(t, math.IsInf(Erfinv(-1), -1))
	for _, x := range []float64{-1.5, 1.0000000000000002, math.Inf(1), math.NaN()} {
		assert.True(t, math.IsNaN(Erfinv(x)), "Erfinv(%v)", x)
	}

	assert.Equal(t, 0.0, Erfcinv(1))
	assert.True(t, math.IsInf(Erfcinv(0), 1))
	assert.True(t, math.IsInf(Erfcinv(2), -1))
	for _, x := range []float64{-0.5, 2.5, math.Inf(-1), math.NaN()} {
		assert.True(t, math.IsNaN(Erfcinv(x)), "Erfcinv(%v)", x)
	}
}
