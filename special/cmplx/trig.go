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

	"github.com/ajroetker/go-special/special"
)

// hyperbolicSplit bounds |πy| for the direct math.Cosh and math.Sinh calls.
// It sits below the overflow point of every math.Exp implementation, and
// past it cosh and |sinh| equal exp(|πy|)/2 to the last bit.
const hyperbolicSplit = 700

// Sinpi computes sin(πz).
//
// For large |Im z| the hyperbolic factors are evaluated as two halves of
// the exponential, so the result stays finite whenever it is representable.
// When it is not, each part is a signed infinity, or a signed zero when the
// real kernel is exactly zero.
func Sinpi(z complex128) complex128 {
	x := real(z)
	piy := math.Pi * imag(z)
	abspiy := math.Abs(piy)
	sinpix := special.Sinpi(x)
	cospix := special.Cospi(x)

	if abspiy <= hyperbolicSplit {
		return complex(sinpix*math.Cosh(piy), cospix*math.Sinh(piy))
	}

	// cosh(y) ~ exp(|y|)/2 and sinh(y) ~ sign(y)*exp(|y|)/2 out here, so
	// scale by the small factor first and multiply by exp(|y|/2) twice.
	exphpiy := math.Exp(abspiy / 2)
	if math.IsInf(exphpiy, 1) {
		coshfac := overflowPart(sinpix, 1)
		sinhfac := overflowPart(cospix, sign(piy))
		return complex(coshfac, sinhfac)
	}

	coshfac := 0.5 * sinpix * exphpiy
	sinhfac := 0.5 * cospix * exphpiy * sign(piy)
	return complex(coshfac*exphpiy, sinhfac*exphpiy)
}

// Cospi computes cos(πz).
//
// Overflow is handled as in Sinpi.
func Cospi(z complex128) complex128 {
	x := real(z)
	piy := math.Pi * imag(z)
	abspiy := math.Abs(piy)
	sinpix := special.Sinpi(x)
	cospix := special.Cospi(x)

	if abspiy <= hyperbolicSplit {
		return complex(cospix*math.Cosh(piy), -sinpix*math.Sinh(piy))
	}

	exphpiy := math.Exp(abspiy / 2)
	if math.IsInf(exphpiy, 1) {
		coshfac := overflowPart(cospix, 1)
		sinhfac := overflowPart(sinpix, -sign(piy))
		return complex(coshfac, sinhfac)
	}

	coshfac := 0.5 * cospix * exphpiy
	sinhfac := -0.5 * sinpix * exphpiy * sign(piy)
	return complex(coshfac*exphpiy, sinhfac*exphpiy)
}

// overflowPart returns f times an infinite hyperbolic factor with sign s,
// keeping f when it is zero so the sign of the zero survives, or NaN.
func overflowPart(f, s float64) float64 {
	if f == 0 || math.IsNaN(f) {
		return f
	}
	return s * math.Copysign(math.Inf(1), f)
}

func sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}
