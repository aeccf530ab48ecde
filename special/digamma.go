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

// The digamma function is adapted from Cephes:
//
//	Cephes Math Library Release 2.8:  June, 2000
//	Copyright 1984, 1987, 1992, 2000 by Stephen L. Moshier
//
// The rational approximation on [1, 2] is from Boost:
//
//	(C) Copyright John Maddock 2006.
//	Use, modification and distribution are subject to the
//	Boost Software License, Version 1.0.

package special

import (
	"math"

	"github.com/ajroetker/go-special/special/internal/poly"
)

// digammaHarmonic holds H(n-1) - γ = ψ(n) for n = 1..10.
var digammaHarmonic = []float64{
	-0.5772156649015328606065121,
	0.4227843350984671393934879,
	0.9227843350984671393934879,
	1.256117668431800472726821,
	1.506117668431800472726821,
	1.706117668431800472726821,
	1.872784335098467139393488,
	2.015641477955609996536345,
	2.140641477955609996536345,
	2.251752589066721107647456,
}

var digammaAsymp = []float64{
	8.33333333333333333333e-2,
	-2.10927960927960927961e-2,
	7.57575757575757575758e-3,
	-4.16666666666666666667e-3,
	3.96825396825396825397e-3,
	-8.33333333333333333333e-3,
	8.33333333333333333333e-2,
}

var (
	digammaNum = []float64{
		-0.0020713321167745952,
		-0.045251321448739056,
		-0.28919126444774784,
		-0.65031853770896507,
		-0.32555031186804491,
		0.25479851061131551,
	}

	digammaDenom = []float64{
		-0.55789841321675513e-6,
		0.0021284987017821144,
		0.054151797245674225,
		0.43593529692665969,
		1.4606242909763515,
		2.0767117023730469,
		1.0,
	}
)

// Digamma computes the digamma function ψ(x) = Γ'(x)/Γ(x).
//
// Special cases:
//   - Digamma(+Inf) = +Inf
//   - Digamma(±0) = ∓Inf
//   - Digamma(x) = NaN for x a negative integer or -Inf
//   - Digamma(NaN) = NaN
func Digamma(x float64) float64 {
	res := 0.0

	switch {
	case math.IsNaN(x) || math.IsInf(x, 1):
		return x
	case math.IsInf(x, -1):
		return math.NaN()
	case x == 0:
		return math.Copysign(math.Inf(1), -x)
	case x < 0:
		// Argument reduction before evaluating tan(πx).
		r := math.Mod(x, 1)
		if r == 0 {
			return math.NaN()
		}
		pir := math.Pi * r
		// Reflection formula
		res = -math.Pi*math.Cos(pir)/math.Sin(pir) - 1/x
		x = -x
	}

	if x <= 10 {
		if x == math.Floor(x) {
			return res + digammaHarmonic[int(x)-1]
		}
		// Use the recurrence relation to move x into [1, 2].
		if x < 1 {
			res -= 1 / x
			x++
		} else if x < 10 {
			for x > 2 {
				x--
				res += 1 / x
			}
		}
		return res + digammaRational(x)
	}

	// Large x: asymptotic series.
	y := 0.0
	if x < 1e17 {
		z := 1 / (x * x)
		y = z * poly.Eval(digammaAsymp, z)
	}
	return res + math.Log(x) - 0.5/x - y
}

// digammaRational evaluates ψ on [1, 2] as (x - root)(Y + R(x - 1)), where
// root is the positive zero of ψ split into three parts for extra precision.
func digammaRational(x float64) float64 {
	const (
		root1 = 1569415565.0 / 1073741824.0
		root2 = (381566830.0 / 1073741824.0) / 1073741824.0
		root3 = 0.9016312093258695918615325266959189453125e-19
	)
	y := float64(float32(0.99558162689208984))

	g := x - root1
	g -= root2
	g -= root3
	r := poly.Eval(digammaNum, x-1) / poly.Eval(digammaDenom, x-1)

	return g*y + g*r
}
