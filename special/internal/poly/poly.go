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

// Package poly evaluates polynomials and rational functions with real
// coefficients.
//
// Coefficients are stored highest degree first, i.e. for
//
//	u_n x^n + u_{n-1} x^{n-1} + ... + u_0
//
// coeffs[0] = u_n, coeffs[1] = u_{n-1}, ..., coeffs[n] = u_0.
//
// References:
//   - Knuth, "The Art of Computer Programming, Volume II", section 4.6.4.
//   - Boost, "Polynomial and Rational Function Evaluation".
package poly

import (
	"math"

	"github.com/ajroetker/go-special/special/internal/fma"
)

// Eval evaluates the polynomial at x using Horner's method with a fused
// multiply-add at each step.
func Eval(coeffs []float64, x float64) float64 {
	res := coeffs[0]
	for _, c := range coeffs[1:] {
		res = fma.MulAdd(res, x, c)
	}
	return res
}

// EvalComplex evaluates the polynomial at the complex point z.
//
// It uses equation (3) of Knuth 4.6.4, which works with r = 2*Re(z) and
// s = |z|^2 and only needs real multiply-adds in the loop. coeffs must
// hold at least two entries.
func EvalComplex(coeffs []float64, z complex128) complex128 {
	a := coeffs[0]
	b := coeffs[1]
	x, y := real(z), imag(z)
	r := 2 * x
	s := x*x + y*y

	for _, c := range coeffs[2:] {
		tmp := b
		b = fma.MulAdd(-s, a, c)
		a = fma.MulAdd(r, a, tmp)
	}
	return complex(x*a+b, y*a)
}

// EvalRational evaluates num(x)/denom(x).
//
// For |x| > 1 both polynomials are evaluated in 1/x and the quotient is
// rescaled by x^(deg num - deg denom), which keeps high degree terms from
// overflowing.
func EvalRational(num, denom []float64, x float64) float64 {
	if math.Abs(x) <= 1 {
		return Eval(num, x) / Eval(denom, x)
	}

	y := 1 / x
	n := evalReversed(num, y)
	d := evalReversed(denom, y)

	res := n / d
	if shift := len(num) - len(denom); shift != 0 {
		res *= math.Pow(x, float64(shift))
	}
	return res
}

// evalReversed evaluates the polynomial whose coefficients are coeffs read
// back to front, so the result is P(x)/x^n when y = 1/x.
func evalReversed(coeffs []float64, y float64) float64 {
	last := len(coeffs) - 1
	res := coeffs[last]
	for j := last - 1; j >= 0; j-- {
		res = fma.MulAdd(res, y, coeffs[j])
	}
	return res
}
