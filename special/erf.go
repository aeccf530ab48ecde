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

// Adapted from Boost, which is:
//
//	(C) Copyright John Maddock 2006.
//	Use, modification and distribution are subject to the
//	Boost Software License, Version 1.0.

package special

import (
	"math"

	"github.com/ajroetker/go-special/special/internal/poly"
)

// erf on [0, 0.5)
var (
	erfP1 = []float64{
		-0.000322780120964605683831,
		-0.00772758345802133288487,
		-0.0509990735146777432841,
		-0.338165134459360935041,
		0.0834305892146531832907,
	}
	erfQ1 = []float64{
		0.000370900071787748000569,
		0.00858571925074406212772,
		0.0875222600142252549554,
		0.455004033050794024546,
		1.0,
	}
)

// erfc on [0.5, 1.5)
var (
	erfP2 = []float64{
		0.00180424538297014223957,
		0.0195049001251218801359,
		0.0888900368967884466578,
		0.191003695796775433986,
		0.178114665841120341155,
		-0.098090592216281240205,
	}
	erfQ2 = []float64{
		0.337511472483094676155e-5,
		0.0113385233577001411017,
		0.12385097467900864233,
		0.578052804889902404909,
		1.42628004845511324508,
		1.84759070983002217845,
		1.0,
	}
)

// erfc on [1.5, 2.5)
var (
	erfP3 = []float64{
		0.000235839115596880717416,
		0.00323962406290842133584,
		0.0175679436311802092299,
		0.04394818964209516296,
		0.0386540375035707201728,
		-0.0243500476207698441272,
	}
	erfQ3 = []float64{
		0.00410369723978904575884,
		0.0563921837420478160373,
		0.325732924782444448493,
		0.982403709157920235114,
		1.53991494948552447182,
		1.0,
	}
)

// erfc on [2.5, 4.5)
var (
	erfP4 = []float64{
		0.113212406648847561139e-4,
		0.000250269961544794627958,
		0.00212825620914618649141,
		0.00840807615555585383007,
		0.0137384425896355332126,
		0.00295276716530971662634,
	}
	erfQ4 = []float64{
		0.000479411269521714493907,
		0.0105982906484876531489,
		0.0958492726301061423444,
		0.442597659481563127003,
		1.04217814166938418171,
		1.0,
	}
)

// erfc on [4.5, 28), in 1/x
var (
	erfP5 = []float64{
		-2.8175401114513378771,
		-3.22729451764143718517,
		-2.5518551727311523996,
		-0.687717681153649930619,
		-0.212652252872804219852,
		0.0175389834052493308818,
		0.00628057170626964891937,
	}
	erfQ5 = []float64{
		5.48409182238641741584,
		13.5064170191802889145,
		22.9367376522880577224,
		15.930646027911794143,
		11.0567237927800161565,
		2.79257750980575282228,
		1.0,
	}
)

// Erf computes the error function.
//
// Special cases:
//   - Erf(±0) = ±0
//   - Erf(±Inf) = ±1
//   - Erf(NaN) = NaN
func Erf(x float64) float64 {
	return erfImpl(x, false)
}

// Erfc computes the complementary error function 1 - Erf(x).
//
// Special cases:
//   - Erfc(+Inf) = 0
//   - Erfc(-Inf) = 2
//   - Erfc(NaN) = NaN
func Erfc(x float64) float64 {
	return erfImpl(x, true)
}

// erfImpl computes erf(x), or erfc(x) when complement is set. Each range
// computes whichever of the two is small there and flips at the end.
func erfImpl(x float64, complement bool) float64 {
	if math.IsNaN(x) {
		return x
	}
	if x < 0 {
		switch {
		case !complement:
			return -erfImpl(-x, false)
		case x < -0.5:
			return 2 - erfImpl(-x, true)
		default:
			return 1 + erfImpl(-x, false)
		}
	}

	var res float64
	switch {
	case x < 0.5:
		// erf
		if x < 1e-10 {
			// Single term of the Taylor series
			res = 1.128379167095512573896159 * x
		} else {
			// Max error found at double precision: 2.961182e-17
			y := float64(float32(1.044948577880859375))
			xx := x * x
			res = x * (y + poly.Eval(erfP1, xx)/poly.Eval(erfQ1, xx))
		}
	case (complement && x < 28) || (!complement && x < 5.8):
		// erfc
		complement = !complement

		var y, r float64
		switch {
		case x < 1.5:
			// Max error found at double precision: 4.841816e-17
			y = float64(float32(0.405935764312744140625))
			r = poly.Eval(erfP2, x-0.5) / poly.Eval(erfQ2, x-0.5)
		case x < 2.5:
			// Max error found at double precision: 6.599585e-18
			y = float64(float32(0.50672817230224609375))
			r = poly.Eval(erfP3, x-1.5) / poly.Eval(erfQ3, x-1.5)
		case x < 4.5:
			// Max error found at double precision: 2.062515e-17
			y = float64(float32(0.5405750274658203125))
			r = poly.Eval(erfP4, x-3.5) / poly.Eval(erfQ4, x-3.5)
		default:
			// Max error found at double precision: 2.997958e-17
			y = float64(float32(0.5579090118408203125))
			r = poly.Eval(erfP5, 1/x) / poly.Eval(erfQ5, 1/x)
		}
		res = (y + r) * (math.Exp(-x*x) / x)
	default:
		// erfc underflows to zero past 28
		res = 0
		complement = !complement
	}

	if complement {
		res = 1 - res
	}
	return res
}
