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

// Ported from Boost, which is:
//
//	Copyright John Maddock 2007.
//	Use, modification and distribution are subject to the
//	Boost Software License, Version 1.0.

package special

import (
	"math"

	"github.com/ajroetker/go-special/special/internal/poly"
)

// 0 < x <= 1
var (
	e1PLt1 = []float64{
		-0.000111507792921197858394,
		-0.00399167106081113256961,
		-0.0368031736257943745142,
		-0.245088216639761496153,
		0.0320913665303559189999,
		0.0865197248079397976498,
	}
	e1QLt1 = []float64{
		-0.528611029520217142048e-6,
		0.000131049900798434683324,
		0.00427347600017103698101,
		0.056770677104207528384,
		0.37091387659397013215,
		1.0,
	}
)

// x > 1, in 1/x
var (
	e1PGt1 = []float64{
		-1185.45720315201027667,
		-14751.4895786128450662,
		-54844.4587226402067411,
		-86273.1567711649528784,
		-66598.2652345418633509,
		-27182.6254466733970467,
		-6046.8250112711035463,
		-724.581482791462469795,
		-43.3058660811817946037,
		-0.999999999999998811143,
		-0.121013190657725568138e-18,
	}
	e1QGt1 = []float64{
		-0.776491285282330997549,
		1229.20784182403048905,
		18455.4124737722049515,
		86722.3403467334749201,
		180329.498380501819718,
		192104.047790227984431,
		113057.05869159631492,
		38129.5594484818471461,
		7417.37624454689546708,
		809.193214954550328455,
		45.3058660811801465927,
		1.0,
	}
)

// E1 computes the exponential integral E₁(x) = ∫ₓ^∞ e⁻ᵗ/t dt.
//
// Special cases:
//   - E1(0) = +Inf
//   - E1(x) = 0 once exp(-x) underflows, including E1(+Inf)
//   - E1(x) = NaN if x < 0
//   - E1(NaN) = NaN
func E1(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return x
	case x < 0:
		return math.NaN()
	case x == 0:
		return math.Inf(1)
	case x <= 1:
		y := float64(float32(0.66373538970947265625))
		res := poly.Eval(e1PLt1, x) / poly.Eval(e1QLt1, x)
		res += x - math.Log(x) - y
		return res
	case x < -MinExp:
		recip := 1 / x
		res := 1 + poly.Eval(e1PGt1, recip)/poly.Eval(e1QGt1, recip)
		res *= math.Exp(-x) * recip
		return res
	default:
		return 0
	}
}
