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

// The gamma function is adapted from Boost, which is:
//
//	Copyright John Maddock 2006-7, 2013-14.
//	Copyright Paul A. Bristow 2007, 2013-14.
//	Copyright Nikhar Agrawal 2013-14
//	Copyright Christopher Kormanyos 2013-14
//
//	Use, modification and distribution are subject to the
//	Boost Software License, Version 1.0.

package special

import (
	"math"

	"github.com/ajroetker/go-special/special/internal/lanczos"
)

// factorials holds (n-1)! = Γ(n) for n = 1..10.
var factorials = []float64{
	1.0,
	1.0,
	2.0,
	6.0,
	24.0,
	120.0,
	720.0,
	5040.0,
	40320.0,
	362880.0,
}

// Gamma computes the Gamma function Γ(x).
//
// Special cases:
//   - Gamma(+Inf) = +Inf
//   - Gamma(x) = NaN for x a non-positive integer, including -Inf
//   - Gamma(NaN) = NaN
//
// Arguments below -20 use the reflection formula, small positive arguments
// use 1/x - γ, and everything else goes through the Lanczos approximation.
func Gamma(x float64) float64 {
	res := 1.0

	if x <= 0 {
		if x == math.Floor(x) {
			return math.NaN()
		}
		if x <= -20 {
			// Γ(x)Γ(-x) = -π/(x sin(πx)), divided in steps so the
			// denominator cannot overflow.
			return -math.Pi / Sinpi(x) / x / Gamma(-x)
		}

		// Recurrence up to (0, 1)
		for x < 0 {
			res /= x
			x++
		}
	}

	switch {
	case x <= 10 && x == math.Floor(x):
		res *= factorials[int(x)-1]
	case x < rootEps:
		res *= 1/x - EulerGamma
	default:
		res *= lanczos.Sum(x)
		xgh := x + lanczos.G - 0.5
		xlogXgh := x * math.Log(xgh)
		if xlogXgh > MaxExp {
			if 0.5*xlogXgh > MaxExp {
				return math.Copysign(math.Inf(1), res)
			}
			// Split the power in two to delay overflow.
			hp := math.Pow(xgh, 0.5*x-0.25)
			res *= hp / math.Exp(xgh)
			res *= hp
		} else {
			res *= math.Pow(xgh, x-0.5) / math.Exp(xgh)
		}
	}

	return res
}
