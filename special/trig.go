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

import "math"

// cospiTaylorRadius is the distance from a zero of cos(πx) inside which the
// Taylor series about that zero is used.
const cospiTaylorRadius = 0.2

// Sinpi computes sin(πx).
//
// The argument is reduced modulo 2 before it is multiplied by π, so the
// result keeps full relative accuracy for large |x| and the zeros at the
// integers are exact.
//
// Special cases:
//   - Sinpi(±0) = ±0
//   - Sinpi(±Inf) = NaN
//   - Sinpi(NaN) = NaN
func Sinpi(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return math.NaN()
	}

	s := 1.0
	if x < 0 {
		x = -x
		s = -1.0
	}

	r := math.Mod(x, 2)
	switch {
	case r < 0.5:
		return s * math.Sin(math.Pi*r)
	case r > 1.5:
		return s * math.Sin(math.Pi*(r-2))
	default:
		return -s * math.Sin(math.Pi*(r-1))
	}
}

// Cospi computes cos(πx).
//
// Near the zeros at the half integers a Taylor series in the exactly
// computed distance to the zero is used.
//
// Special cases:
//   - Cospi(n + 0.5) = +0 for integer n
//   - Cospi(±Inf) = NaN
//   - Cospi(NaN) = NaN
func Cospi(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return math.NaN()
	}

	r := math.Mod(math.Abs(x), 2)
	switch {
	case r == 0.5 || r == 1.5:
		// Don't want to return -0.0
		return 0
	case math.Abs(r-0.5) < cospiTaylorRadius:
		return cospiTaylor(r - 0.5)
	case math.Abs(r-1.5) < cospiTaylorRadius:
		return -cospiTaylor(r - 1.5)
	case r < 1:
		return -math.Sin(math.Pi * (r - 0.5))
	default:
		return math.Sin(math.Pi * (r - 1.5))
	}
}

// cospiTaylor computes cos(π(d + 0.5)) = -sin(πd) from its Taylor series.
func cospiTaylor(d float64) float64 {
	x := math.Pi * d
	xx := x * x
	term := -x
	res := term
	for n := 1; n < 20; n++ {
		term *= -xx / float64((2*n+1)*(2*n))
		res += term
		if math.Abs(term) <= eps*math.Abs(res) {
			break
		}
	}
	return res
}
