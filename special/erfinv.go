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
//	(C) Copyright John Maddock 2006.
//	Use, modification and distribution are subject to the
//	Boost Software License, Version 1.0.

package special

import (
	"math"

	"github.com/ajroetker/go-special/special/internal/poly"
)

// p <= 0.5
var (
	erfinvPHalf = []float64{
		-0.00538772965071242932965,
		0.00822687874676915743155,
		0.0219878681111168899165,
		-0.0365637971411762664006,
		-0.0126926147662974029034,
		0.0334806625409744615033,
		-0.00836874819741736770379,
		-0.000508781949658280665617,
	}
	erfinvQHalf = []float64{
		0.000886216390456424707504,
		-0.00233393759374190016776,
		0.0795283687341571680018,
		-0.0527396382340099713954,
		-0.71228902341542847553,
		0.662328840472002992063,
		1.56221558398423026363,
		-1.56574558234175846809,
		-0.970005043303290640362,
		1.0,
	}
)

// q >= 0.25
var (
	erfinvPQuarter = []float64{
		-3.67192254707729348546,
		21.1294655448340526258,
		17.445385985570866523,
		-44.6382324441786960818,
		-18.8510648058714251895,
		17.6447298408374015486,
		8.37050328343119927838,
		0.105264680699391713268,
		-0.202433508355938759655,
	}
	erfinvQQuarter = []float64{
		1.72114765761200282724,
		-22.6436933413139721736,
		10.8268667355460159008,
		48.5609213108739935468,
		-20.1432634680485188801,
		-28.6608180499800029974,
		3.9713437953343869095,
		6.24264124854247537712,
		1.0,
	}
)

// sqrt(-log q) < 3
var (
	erfinvP3 = []float64{
		-0.681149956853776992068e-9,
		0.285225331782217055858e-7,
		-0.679465575181126350155e-6,
		0.00214558995388805277169,
		0.0290157910005329060432,
		0.142869534408157156766,
		0.337785538912035898924,
		0.387079738972604337464,
		0.117030156341995252019,
		-0.163794047193317060787,
		-0.131102781679951906451,
	}
	erfinvQ3 = []float64{
		0.01105924229346489121,
		0.152264338295331783612,
		0.848854343457902036425,
		2.59301921623620271374,
		4.77846592945843778382,
		5.38168345707006855425,
		3.46625407242567245975,
		1.0,
	}
)

// sqrt(-log q) < 6
var (
	erfinvP6 = []float64{
		0.266339227425782031962e-11,
		-0.230404776911882601748e-9,
		0.460469890584317994083e-5,
		0.000157544617424960554631,
		0.00187123492819559223345,
		0.00950804701325919603619,
		0.0185573306514231072324,
		-0.00222426529213447927281,
		-0.0350353787183177984712,
	}
	erfinvQ6 = []float64{
		0.764675292302794483503e-4,
		0.00263861676657015992959,
		0.0341589143670947727934,
		0.220091105764131249824,
		0.762059164553623404043,
		1.3653349817554063097,
		1.0,
	}
)

// sqrt(-log q) < 18
var (
	erfinvP18 = []float64{
		0.99055709973310326855e-16,
		-0.281128735628831791805e-13,
		0.462596163522878599135e-8,
		0.449696789927706453732e-6,
		0.149624783758342370182e-4,
		0.000209386317487588078668,
		0.00105628862152492910091,
		-0.00112951438745580278863,
		-0.0167431005076633737133,
	}
	erfinvQ18 = []float64{
		0.282243172016108031869e-6,
		0.275335474764726041141e-4,
		0.000964011807005165528527,
		0.0160746087093676504695,
		0.138151865749083321638,
		0.591429344886417493481,
		1.0,
	}
)

// sqrt(-log q) >= 18. Boost only needs the larger long double
// coefficients past 44, which float64 never reaches.
var (
	erfinvP44 = []float64{
		-0.116765012397184275695e-17,
		0.145596286718675035587e-11,
		0.411632831190944208473e-9,
		0.396341011304801168516e-7,
		0.162397777342510920873e-5,
		0.254723037413027451751e-4,
		-0.779190719229053954292e-5,
		-0.0024978212791898131227,
	}
	erfinvQ44 = []float64{
		0.509761276599778486139e-9,
		0.144437756628144157666e-6,
		0.145007359818232637924e-4,
		0.000690538265622684595676,
		0.0169410838120975906478,
		0.207123112214422517181,
		1.0,
	}
)

// Erfinv computes the inverse error function.
//
// Special cases:
//   - Erfinv(±0) = ±0
//   - Erfinv(1) = +Inf
//   - Erfinv(-1) = -Inf
//   - Erfinv(x) = NaN if x < -1 or x > 1
//   - Erfinv(NaN) = NaN
func Erfinv(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return x
	case x < -1 || x > 1:
		return math.NaN()
	case x == 1:
		return math.Inf(1)
	case x == -1:
		return math.Inf(-1)
	case x == 0:
		return x
	}

	if x < 0 {
		p := -x
		return -erfInvImpl(p, 1-p)
	}
	return erfInvImpl(x, 1-x)
}

// Erfcinv computes the inverse complementary error function.
//
// Special cases:
//   - Erfcinv(0) = +Inf
//   - Erfcinv(2) = -Inf
//   - Erfcinv(x) = NaN if x < 0 or x > 2
//   - Erfcinv(NaN) = NaN
func Erfcinv(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return x
	case x < 0 || x > 2:
		return math.NaN()
	case x == 0:
		return math.Inf(1)
	case x == 2:
		return math.Inf(-1)
	}

	if x > 1 {
		q := 2 - x
		return -erfInvImpl(1-q, q)
	}
	return erfInvImpl(1-x, x)
}

// erfInvImpl inverts erf given p and its complement q = 1 - p, both in
// (0, 1]. Passing q separately keeps its precision when p is close to one.
func erfInvImpl(p, q float64) float64 {
	if p <= 0.5 {
		y := float64(float32(0.0891314744949340820313))
		g := p * (p + 10)
		r := poly.Eval(erfinvPHalf, p) / poly.Eval(erfinvQHalf, p)
		return g*y + g*r
	}
	if q >= 0.25 {
		y := float64(float32(2.249481201171875))
		g := math.Sqrt(-2 * math.Log(q))
		xs := q - 0.25
		r := poly.Eval(erfinvPQuarter, xs) / poly.Eval(erfinvQQuarter, xs)
		return g / (y + r)
	}

	var y, r float64
	x := math.Sqrt(-math.Log(q))
	switch {
	case x < 3:
		y = float64(float32(0.807220458984375))
		xs := x - 1.125
		r = poly.Eval(erfinvP3, xs) / poly.Eval(erfinvQ3, xs)
	case x < 6:
		y = float64(float32(0.93995571136474609375))
		xs := x - 3
		r = poly.Eval(erfinvP6, xs) / poly.Eval(erfinvQ6, xs)
	case x < 18:
		y = float64(float32(0.98362827301025390625))
		xs := x - 6
		r = poly.Eval(erfinvP18, xs) / poly.Eval(erfinvQ18, xs)
	default:
		y = float64(float32(0.99714565277099609375))
		xs := x - 18
		r = poly.Eval(erfinvP44, xs) / poly.Eval(erfinvQ44, xs)
	}
	return y*x + r*x
}
