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

	"github.com/ajroetker/go-special/special/internal/fma"
	"github.com/ajroetker/go-special/special/internal/poly"
)

// Region boundaries for En.
const (
	enLargeOrder     = 50  // above this the large order expansion is used
	enTaylorOrder    = 15  // orders from here to enLargeOrder expand about x = 1
	enSmallX         = 0.5 // below this the power series is used
	enLargeX         = 1.5 // above this the continued fraction is used
	enMaxSeriesTerms = 100
	enMaxConvergents = 200
)

// enAsymp[k] is the polynomial A_k(λ) of DLMF 8.20.2, highest degree first.
var enAsymp = [][]float64{
	{1},
	{1},
	{-2, 1},
	{6, -8, 1},
	{-24, 58, -22, 1},
	{120, -444, 328, -52, 1},
	{-720, 3708, -4400, 1452, -114, 1},
	{5040, -33984, 58140, -32120, 5610, -240, 1},
	{-40320, 341136, -785304, 644020, -195800, 19950, -494, 1},
	{362880, -3733920, 11026296, -12440064, 5765500, -1062500, 67260, -1004, 1},
	{
		-3628800, 44339040, -162186912, 238904904, -155357384,
		44765000, -5326160, 218848, -2026, 1,
	},
	{
		39916800, -568356480, 2507481216, -4642163952, 4002695088,
		-1648384304, 314369720, -25243904, 695038, -4072, 1,
	},
	{
		-479001600, 7827719040, -40788301824, 92199790224, -101180433024,
		56041398784, -15548960784, 2051482776, -114876376, 2170626, -8166, 1,
	},
}

// enPsi[n] is ψ(n). Index 0 is never read.
var enPsi = []float64{
	math.NaN(),
	-0.57721566490153286061,
	0.42278433509846713939,
	0.92278433509846713939,
	1.2561176684318004727,
	1.5061176684318004727,
	1.7061176684318004727,
	1.8727843350984671394,
	2.0156414779556099965,
	2.1406414779556099965,
	2.2517525890667211076,
	2.3517525890667211076,
	2.4426616799758120167,
	2.5259950133091453501,
	2.6029180902322222731,
	2.6743466616607937017,
	2.7410133283274603684,
	2.8035133283274603684,
	2.8623368577392250743,
	2.9178924132947806298,
	2.9705239922421490509,
	3.0205239922421490509,
	3.0681430398611966699,
	3.1135975853157421245,
	3.1570758461853073419,
	3.1987425128519740085,
	3.2387425128519740085,
	3.2772040513135124701,
	3.3142410883505495071,
	3.3499553740648352214,
	3.3844381326855248766,
	3.4177714660188582099,
	3.4500295305349872422,
	3.4812795305349872422,
	3.5115825608380175452,
	3.5409943255438998981,
	3.5695657541153284696,
	3.5973435318931062473,
	3.6243705589201332744,
	3.6506863483938174849,
	3.6763273740348431259,
	3.7013273740348431259,
	3.7257176179372821503,
	3.7495271417468059598,
	3.7727829557002943319,
	3.7955102284275670592,
	3.8177324506497892814,
	3.8394715810845718901,
	3.8607481768292527412,
	3.8815815101625860745,
	3.901989673427892197,
}

// enAtOne[n] is E_n(1).
var enAtOne = []float64{
	3.678794411714423215955e-1,
	2.193839343955202736772e-1,
	1.484955067759220479184e-1,
	1.096919671977601368386e-1,
	8.606249132456072825231e-2,
	7.045423746172039833580e-2,
	5.948504074194438465194e-2,
	5.139906673824965615726e-2,
	4.521148206188466649118e-2,
	4.033349488869470688804e-2,
	3.639399403141640163416e-2,
	3.314854471400259199614e-2,
	3.043008149613088450904e-2,
	2.812077997294261975721e-2,
	2.613528163065382321833e-2,
	2.441029711005632131266e-2,
	2.289794293742573335219e-2,
	2.156134363962603676521e-2,
	2.037165279598919322531e-2,
	1.930598824308072935390e-2,
	1.834597120675587327587e-2,
	1.747667349823432241598e-2,
	1.668584607967657138950e-2,
	1.596334523144389773664e-2,
	1.530069982347819234169e-2,
	1.469078088949850538558e-2,
	1.412754641127775264840e-2,
	1.360584210616017572874e-2,
	1.312124440982526466173e-2,
	1.266993559862918060478e-2,
	1.224860364044183244796e-2,
	1.185436125103334963825e-2,
	1.148467999743254748249e-2,
	1.113733628668780544103e-2,
	1.081036681468953079256e-2,
	1.050203159872802325891e-2,
	1.021078313064897995247e-2,
	9.935240501133148378974e-3,
	9.674167585684031708555e-3,
	9.426454568046270786499e-3,
	9.191102220599898738693e-3,
	8.967208473771060571421e-3,
	8.753956895065152707905e-3,
	8.550606768485170687800e-3,
	8.356484520999003509482e-3,
	8.170976287510075411046e-3,
	7.993521441865161026322e-3,
	7.823606950642981751504e-3,
	7.660762430229773188171e-3,
	7.504555807108594758487e-3,
	7.354589497231300547695e-3,
}

// enFactorials[k] is k!.
var enFactorials = []float64{
	1,
	1,
	2,
	6,
	24,
	120,
	720,
	5040,
	40320,
	362880,
	3628800,
	39916800,
	479001600,
	6227020800,
}

// En computes the generalized exponential integral
//
//	E_n(x) = x^(n-1) ∫ₓ^∞ e⁻ᵗ/tⁿ dt
//
// for integer order n >= 0 and real x >= 0.
//
// Special cases:
//   - En(1, x) = E1(x)
//   - En(0, 0) = +Inf
//   - En(n, 0) = 1/(n-1) for n >= 2
//   - En(0, x) = exp(-x)/x
//   - En(n, x) = 0 once exp(-x) underflows, including En(n, +Inf)
//   - En(n, x) = NaN if x < 0
//   - En(n, NaN) = NaN
func En(n uint, x float64) float64 {
	switch {
	case n == 1:
		return E1(x)
	case math.IsNaN(x):
		return x
	case x < 0:
		return math.NaN()
	case x == 0:
		if n == 0 {
			return math.Inf(1)
		}
		return 1 / float64(n-1)
	case n == 0:
		return math.Exp(-x) / x
	case x > -MinExp:
		// E_n(x) < exp(-x), DLMF 8.19.21.
		return 0
	case n > enLargeOrder:
		return enLargeOrderSeries(n, x)
	case x < enSmallX:
		return enPowerSeries(n, x)
	case x <= enLargeX && n < enTaylorOrder:
		return enFiniteSeries(n, x)
	case x <= enLargeX:
		return enTaylorAboutOne(n, x)
	default:
		return enContinuedFraction(n, x)
	}
}

// enContinuedFraction evaluates DLMF 8.19.17.
func enContinuedFraction(n uint, x float64) float64 {
	nf := float64(n)

	// Start with k = 1.
	akm2, akm1 := 1.0, 1.0
	bkm2, bkm1 := x, x+nf
	xkm1 := akm1 / bkm1
	xk := xkm1
	for k := 2; k < enMaxConvergents; k++ {
		var a, b float64
		if k%2 == 0 {
			a = 0.5 * float64(k)
			b = x
		} else {
			a = nf + 0.5*float64(k-1)
			b = 1
		}
		ak := b*akm1 + a*akm2
		bk := b*bkm1 + a*bkm2
		xk = ak / bk
		if math.Abs(xk-xkm1) < math.Abs(xk)*eps {
			break
		}
		akm2, akm1 = akm1, ak
		bkm2, bkm1 = bkm1, bk
		xkm1 = xk
	}
	return math.Exp(-x) * xk
}

// enPowerSeries evaluates DLMF 8.19.8. n must be in [2, 50].
func enPowerSeries(n uint, x float64) float64 {
	negX := -x
	xk := 0.0
	yk := 1.0
	pk := 1 - float64(n)
	sk := 1 / pk
	for i := 0; i < enMaxSeriesTerms; i++ {
		pk++
		xk++
		yk *= negX / xk
		if pk == 0 {
			// The k = n - 1 term lives in the logarithm.
			continue
		}
		term := yk / pk
		sk += term
		if math.Abs(term) < eps*math.Abs(sk) {
			break
		}
	}
	return math.Pow(negX, float64(n-1))*(enPsi[n]-math.Log(x))/Gamma(float64(n)) - sk
}

// enFiniteSeries evaluates the closed form DLMF 8.19.7
//
//	E_n(x) = [(-x)^(n-1) E_1(x) + e^(-x) Σ_{k=0}^{n-2} (n-2-k)! (-x)^k] / (n-1)!
//
// for 2 <= n < 15.
func enFiniteSeries(n uint, x float64) float64 {
	m := int(n) - 2
	acc := 1.0 // 0!
	for k := m - 1; k >= 0; k-- {
		acc = fma.MulAdd(acc, -x, enFactorials[m-k])
	}
	res := math.Pow(-x, float64(n-1))*E1(x) + math.Exp(-x)*acc
	return res / enFactorials[n-1]
}

// enTaylorAboutOne sums E_n(1+h) = Σ_k (-h)^k/k! E_(n-k)(1), using
// dE_n/dx = -E_(n-1). The series stops at E_0.
func enTaylorAboutOne(n uint, x float64) float64 {
	h := x - 1
	fac := 1.0
	res := enAtOne[n]
	for k := 1; k <= int(n); k++ {
		fac *= -h / float64(k)
		term := fac * enAtOne[int(n)-k]
		res += term
		if math.Abs(term) <= eps*math.Abs(res) {
			break
		}
	}
	return res
}

// enLargeOrderSeries evaluates the large order expansion DLMF 8.20(ii) in
// λ = x/n.
func enLargeOrderSeries(n uint, x float64) float64 {
	nf := float64(n)
	lambda := x / nf
	multiplier := 1 / nf / (lambda + 1) / (lambda + 1)

	expfac := math.Exp(-lambda*nf) / (lambda + 1) / nf
	if expfac == 0 {
		return 0
	}

	// A_0 = A_1 = 1. The A_k have zeros (A_2(1/2) = 0), so a small term
	// does not bound the tail; every term is summed.
	fac := multiplier
	res := 1 + fac
	for k := 2; k < len(enAsymp); k++ {
		fac *= multiplier
		res += fac * poly.Eval(enAsymp[k], lambda)
	}
	return expfac * res
}
