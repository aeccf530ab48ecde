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

// 0 < x <= 6, in t = x/3 - 1
var (
	eiP6 = []float64{
		0.2777056254402008721e-6,
		0.798296365679269702435e-5,
		0.000116419523609765200999,
		0.00115478237227804306827,
		0.00726224593341228159561,
		0.0499434773576515260534,
		0.114670926327032002811,
		0.780836076283730801839,
		0.356343618769377415068,
		2.98677224343598593013,
	}
	eiQ6 = []float64{
		-0.138972589601781706598e-4,
		0.000389034007436065401822,
		-0.00504800158663705747345,
		0.0391523431392967238166,
		-0.195114782069495403315,
		0.62215109846016746276,
		-1.17090412365413911947,
		1.0,
	}
)

// 6 < x <= 10, in t = x/2 - 4
var (
	eiP10 = []float64{
		-0.396487648924804510056e-5,
		-0.554086272024881826253e-4,
		-0.000374885917942100256775,
		-0.00247496209592143627977,
		-0.00761224003005476438412,
		-0.0264095520754134848538,
		-0.0349921221823888744966,
		0.00139324086199402804173,
	}
	eiQ10 = []float64{
		0.263649630720255691787e-4,
		0.000402453408512476836472,
		0.00365334190742316650106,
		0.0223851099128506347278,
		0.100128624977313872323,
		0.329061095011767059236,
		0.744625566823272107711,
		1.0,
	}
)

// 10 < x <= 20, in t = x/5 - 3
var (
	eiP20 = []float64{
		-0.138652200349182596186e-4,
		-0.000209750022660200888349,
		-0.00155941947035972031334,
		-0.00720603636917482065907,
		-0.0226059218923777094596,
		-0.0478447572647309671455,
		-0.0652810444222236895772,
		-0.0484607730127134045806,
		-0.00893891094356945667451,
	}
	eiQ20 = []float64{
		0.000159150281166108755531,
		0.00278170769163303669021,
		0.0233458478275769288159,
		0.122537731979686102756,
		0.438873285773088870812,
		1.09601437090337519977,
		1.86232465043073157508,
		1.97017214039061194971,
		1.0,
	}
)

// 20 < x <= 40, in t = x/10 - 3
var (
	eiP40 = []float64{
		-0.113161784705911400295e-9,
		-0.000192178045857733706044,
		-0.00207592267812291726961,
		-0.00994403059883350813295,
		-0.0272050837209380717069,
		-0.0453759383048193402336,
		-0.0449814350482277917716,
		-0.0229930320357982333406,
		-0.00356165148914447597995,
	}
	eiQ40 = []float64{
		0.00488071077519227853585,
		0.0651165455496281337831,
		0.383213198510794507409,
		1.2985244073998398643,
		2.75088464344293083595,
		3.6599610090072393012,
		2.84354408840148561131,
		1.0,
	}
)

// x > 40, in 1/x
var (
	eiPGt40 = []float64{
		-38703.1431362056714134,
		18932.0850014925993025,
		-2516.35323679844256203,
		94.7365094537197236011,
		0.19029710559486576682,
		-0.0130653381347656243849,
	}
	eiQGt40 = []float64{
		8297.16296356518409347,
		54738.2833147775537106,
		-70126.245140396567133,
		22329.1459489893079041,
		-2354.56211323420194283,
		61.9733592849439884145,
		1.0,
	}
)

// exp40 is e⁴⁰.
const exp40 = 2.3538526683701998541e17

// Ei computes the exponential integral Ei(x), the Cauchy principal value
// of ∫₋∞ˣ eᵗ/t dt. For x > 0, E1(x) = -Ei(-x).
//
// Special cases:
//   - Ei(0) = -Inf
//   - Ei(+Inf) = +Inf
//   - Ei(-Inf) = -0
//   - Ei(NaN) = NaN
func Ei(x float64) float64 {
	switch {
	case x < 0:
		return -E1(-x)
	case x == 0:
		return math.Inf(-1)
	case math.IsNaN(x):
		return x
	}

	switch {
	case x <= 6:
		const (
			// The positive root of Ei split in two, and rounded.
			r1 = 0.37250741078136662132
			r2 = 0.13140183414386028201e-16
			r  = 0.37250741078136663446
		)
		t := x/3 - 1
		res := poly.Eval(eiP6, t) / poly.Eval(eiQ6, t)
		t = (x - r1) - r2
		res *= t
		if math.Abs(t) < 0.1 {
			res += math.Log1p(t / r)
		} else {
			res += math.Log(x / r)
		}
		return res
	case x <= 10:
		y := float64(float32(1.158985137939453125))
		t := x/2 - 4
		res := y + poly.Eval(eiP10, t)/poly.Eval(eiQ10, t)
		res *= math.Exp(x) / x
		return res + x
	case x <= 20:
		y := float64(float32(1.0869731903076171875))
		t := x/5 - 3
		res := y + poly.Eval(eiP20, t)/poly.Eval(eiQ20, t)
		res *= math.Exp(x) / x
		return res + x
	case x <= 40:
		y := float64(float32(1.03937530517578125))
		t := x/10 - 3
		res := y + poly.Eval(eiP40, t)/poly.Eval(eiQ40, t)
		res *= math.Exp(x) / x
		return res + x
	}

	y := float64(float32(1.013065338134765625))
	t := 1 / x
	res := y + poly.Eval(eiPGt40, t)/poly.Eval(eiQGt40, t)
	if x < 41 {
		res *= math.Exp(x) / x
	} else {
		// Avoid premature overflow.
		if x-40 > MaxExp {
			return math.Inf(1)
		}
		res *= (math.Exp(x-40) / x) * exp40
	}
	return res + x
}
