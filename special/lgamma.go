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

	"github.com/ajroetker/go-special/special/internal/lanczos"
	"github.com/ajroetker/go-special/special/internal/poly"
)

// The rational approximations for lgamma on [1, 4) come from Boost and are:
//
//	(C) Copyright John Maddock 2006.
//	Use, modification and distribution are subject to the
//	Boost Software License, Version 1.0.
var (
	lgamma2To3Num = []float64{
		-0.324588649825948492091e-4,
		-0.541009869215204396339e-3,
		-0.259453563205438108893e-3,
		0.172491608709613993966e-1,
		0.494103151567532234274e-1,
		0.25126649619989678683e-1,
		-0.180355685678449379109e-1,
	}

	lgamma2To3Denom = []float64{
		-0.223352763208617092964e-6,
		0.224936291922115757597e-3,
		0.82130967464889339326e-2,
		0.988504251128010129477e-1,
		0.541391432071720958364e0,
		0.148019669424231326694e1,
		0.196202987197795200688e1,
		0.1e1,
	}

	lgamma1To1_5Num = []float64{
		-0.100346687696279557415e-2,
		-0.240149820648571559892e-1,
		-0.158413586390692192217e0,
		-0.406567124211938417342e0,
		-0.414983358359495381969e0,
		-0.969117530159521214579e-1,
		0.490622454069039543534e-1,
	}

	lgamma1To1_5Denom = []float64{
		0.195768102601107189171e-2,
		0.577039722690451849648e-1,
		0.507137738614363510846e0,
		0.191415588274426679201e1,
		0.348739585360723852576e1,
		0.302349829846463038743e1,
		0.1e1,
	}

	lgamma1_5To2Num = []float64{
		0.431171342679297331241e-3,
		-0.850535976868336437746e-2,
		0.542809694055053558157e-1,
		-0.142440390738631274135e0,
		0.144216267757192309184e0,
		-0.292329721830270012337e-1,
	}

	lgamma1_5To2Denom = []float64{
		-0.827193521891290553639e-6,
		-0.100666795539143372762e-2,
		0.25582797155975869989e-1,
		-0.220095151814995745555e0,
		0.846973248876495016101e0,
		-0.150169356054485044494e1,
		0.1e1,
	}
)

// Lgamma computes log|Γ(x)|.
//
// Unlike math.Lgamma it does not report the sign of Γ(x).
//
// Special cases:
//   - Lgamma(+Inf) = +Inf
//   - Lgamma(-Inf) = NaN
//   - Lgamma(x) = +Inf for x a non-positive integer
//   - Lgamma(NaN) = NaN
func Lgamma(x float64) float64 {
	switch {
	case math.IsNaN(x) || math.IsInf(x, 1):
		return x
	case math.IsInf(x, -1):
		return math.NaN()
	case x <= 0 && x == math.Floor(x):
		return math.Inf(1)
	case x > 0:
		return lgammaPositive(x)
	}

	// Reflection formula, with the logs split since x·sinpi(x) ≈ -πx²
	// underflows for tiny x.
	return logPi - math.Log(-x) - math.Log(math.Abs(Sinpi(x))) - lgammaPositive(-x)
}

// Loggamma computes the principal branch of log(Γ(x)) on the real line.
//
// The principal branch is only real for x > 0; everywhere else the result
// is NaN. See the cmplx package for the extension to the complex plane.
func Loggamma(x float64) float64 {
	if x <= 0 {
		return math.NaN()
	}
	return Lgamma(x)
}

// lgammaPositive evaluates lgamma for x > 0.
//
// On [1, 4) the result is written as (x - a)(x - b)(Y + R(x)) where a, b are
// the zeros at 1 and 2, Y is a constant and R is a minimax rational
// approximation optimised for low absolute error compared to Y.
func lgammaPositive(x float64) float64 {
	switch {
	case x < 2:
		res := 0.0
		if x < 1 {
			// One step of the recurrence relation
			res = -math.Log(x)
			x++
		}
		if x < 1.5 {
			dx := x - 1
			y := float64(float32(0.52815341949462890625))
			r := poly.EvalRational(lgamma1To1_5Num, lgamma1To1_5Denom, dx)
			return res + dx*(x-2)*(y+r)
		}
		dx := 2 - x
		y := float64(float32(0.452017307281494140625))
		r := poly.EvalRational(lgamma1_5To2Num, lgamma1_5To2Denom, dx)
		return res + dx*(1-x)*(y+r)
	case x < 4:
		res := 0.0
		if x > 3 {
			// One step of the recurrence relation
			x--
			res = math.Log(x)
		}
		dx := x - 2
		y := float64(float32(0.158963680267333984375))
		r := poly.EvalRational(lgamma2To3Num, lgamma2To3Denom, dx)
		return res + dx*(x+1)*(y+r)
	default:
		return (x-0.5)*math.Log((x+lanczos.G-0.5)/math.E) +
			math.Log(lanczos.SumExpGScaled(x))
	}
}
