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

// The implementation for positive arguments is taken from Boost, which is:
//
//	Copyright John Maddock 2007, 2014.
//	Use, modification and distribution are subject to the
//	Boost Software License, Version 1.0.

package special

import (
	"math"

	"github.com/ajroetker/go-special/special/internal/lanczos"
	"github.com/ajroetker/go-special/special/internal/poly"
)

// zetaEvenIntegers[n] is ζ(2n).
var zetaEvenIntegers = []float64{
	-0.5,
	1.6449340668482264365,
	1.0823232337111381915,
	1.0173430619844491397,
	1.0040773561979443394,
	1.0009945751278180853,
	1.0002460865533080483,
	1.0000612481350587048,
	1.0000152822594086519,
	1.0000038172932649998,
	1.0000009539620338728,
	1.0000002384505027277,
	1.0000000596081890513,
	1.0000000149015548284,
	1.0000000037253340248,
	1.0000000009313274324,
	1.0000000002328311834,
	1.0000000000582077209,
	1.0000000000145519219,
	1.0000000000036379795,
	1.0000000000009094948,
	1.0000000000002273737,
	1.0000000000000568434,
	1.0000000000000142109,
	1.0000000000000035527,
	1.0000000000000008882,
	1.000000000000000222,
	1.0000000000000000555,
}

// s < 1
var (
	zetaP1 = []float64{
		-0.933241270357061460782e-5,
		0.000451534528645796438704,
		-0.00320912498879085894856,
		0.0557616214776046784287,
		-0.49092470516353571651,
		0.24339294433593750202,
	}
	zetaQ1 = []float64{
		-0.101855788418564031874e-4,
		0.00024978985622317935355,
		-0.00413421406552171059003,
		0.0419676223309986037706,
		-0.279960334310344432495,
		1,
	}
)

// 1 <= s <= 2
var (
	zetaP2 = []float64{
		0.110108440976732897969e-4,
		0.000249606367151877175456,
		0.00390252087072843288378,
		0.0417364673988216497593,
		0.243210646940107164097,
		0.577215664901532860516,
	}
	zetaQ2 = []float64{
		0.10991819782396112081e-4,
		0.000255784226140488490982,
		0.00434930582085826330659,
		0.043460910607305495864,
		0.295201277126631761737,
		1.0,
	}
)

// 2 < s <= 4
var (
	zetaP4 = []float64{
		0.328032510000383084155e-5,
		0.769875101573654070925e-4,
		0.00097541770457391752726,
		0.0128677673534519952905,
		0.0445163473292365591906,
		-0.0537258300023595030676,
	}
	zetaQ4 = []float64{
		0.236276623974978646399e-7,
		0.106951867532057341359e-4,
		0.000270776703956336357707,
		0.00479039708573558490716,
		0.0487798431291407621462,
		0.33383194553034051422,
		1.0,
	}
)

// 4 < s <= 7
var (
	zetaP7 = []float64{
		-0.229257310594893932383e-4,
		-0.00701721240549802377623,
		-0.138448617995741530935,
		-0.939260435377109939261,
		-2.60013301809475665334,
		-2.49710190602259410021,
	}
	zetaQ7 = []float64{
		-0.1129200113474947419e-9,
		0.718833729365459760664e-8,
		-0.234055487025287216506e-6,
		0.493409563927590008943e-5,
		-0.36910273311764618902e-4,
		0.0106117950976845084417,
		0.15739599649558626358,
		0.706039025937745133628,
		1.0,
	}
)

// 7 < s < 15
var (
	zetaP15 = []float64{
		0.139348932445324888343e-5,
		0.639949204213164496988e-4,
		0.00115140923889178742086,
		-0.000189204758260076688518,
		-0.211407134874412820099,
		-1.89197364881972536382,
		-4.78558028495135619286,
	}
	zetaQ15 = []float64{
		0.699841545204845636531e-12,
		-0.833378440625385520576e-10,
		0.471001264003076486547e-8,
		-0.21750464515767984778e-5,
		-0.743743682899933180415e-4,
		-0.00117592765334434471562,
		0.00873370754492288653669,
		0.244345337378188557777,
		1.0,
	}
)

// 15 <= s < 36
var (
	zetaP36 = []float64{
		-0.821465709095465524192e-8,
		-0.785523633796723466968e-6,
		-0.382529323507967522614e-4,
		-0.00119459173416968685689,
		-0.0251156064655346341766,
		-0.347728266539245787271,
		-2.85827219671106697179,
		-10.3948950573308896825,
	}
	zetaQ36 = []float64{
		0.222609483627352615142e-14,
		0.118507153474022900583e-7,
		0.955561123065693483991e-6,
		0.408507746266039256231e-4,
		0.00111079638102485921877,
		0.0195687657317205033485,
		0.208196333572671890965,
		1.0,
	}
)

// Zeta computes the Riemann zeta function ζ(s).
//
// Special cases:
//   - Zeta(1) = NaN
//   - Zeta(+Inf) = 1
//   - Zeta(-Inf) = NaN
//   - Zeta(-2n) = 0 for positive integer n
//   - Zeta(NaN) = NaN
//
// Negative arguments use the functional equation. Past about -260 the
// result overflows to an infinity whose sign alternates with the odd
// integers.
func Zeta(s float64) float64 {
	switch {
	case math.IsNaN(s):
		return s
	case s == 1:
		return math.NaN()
	case math.Abs(s) < rootEps:
		// Taylor series
		return -0.5 - log2PiOver2*s
	case s > 0:
		if s < 56 {
			halfS := s / 2
			if halfS == math.Trunc(halfS) {
				return zetaEvenIntegers[int(halfS)]
			}
		}
		return zetaPositive(s)
	case math.IsInf(s, -1):
		return math.NaN()
	case s > -1:
		return zetaBetweenNegativeOneAndZero(s)
	}

	halfS := s / 2
	if halfS == math.Floor(halfS) {
		// Trivial zero
		return 0
	}
	return zetaNegative(s)
}

// zetaBetweenOneAndTwo evaluates ζ(1 - sc) for 1 <= 1 - sc <= 2.
func zetaBetweenOneAndTwo(sc float64) float64 {
	res := poly.Eval(zetaP2, -sc) / poly.Eval(zetaQ2, -sc)
	res += 1 / -sc
	return res
}

func zetaPositive(s float64) float64 {
	switch {
	case s < 1:
		sc := 1 - s
		res := poly.Eval(zetaP1, sc) / poly.Eval(zetaQ1, sc)
		res -= float64(float32(1.2433929443359375))
		res += sc
		res /= sc
		return res
	case s <= 2:
		return zetaBetweenOneAndTwo(1 - s)
	case s <= 4:
		sc := 1 - s
		sm2 := s - 2
		y := float64(float32(0.6986598968505859375))
		res := poly.Eval(zetaP4, sm2) / poly.Eval(zetaQ4, sm2)
		res += y + 1/-sc
		return res
	case s <= 7:
		sm4 := s - 4
		return 1 + math.Exp(poly.Eval(zetaP7, sm4)/poly.Eval(zetaQ7, sm4))
	case s < 15:
		sm7 := s - 7
		return 1 + math.Exp(poly.Eval(zetaP15, sm7)/poly.Eval(zetaQ15, sm7))
	case s < 36:
		sm15 := s - 15
		return 1 + math.Exp(poly.Eval(zetaP36, sm15)/poly.Eval(zetaQ36, sm15))
	case s < 56:
		return 1 + math.Pow(2, -s)
	default:
		return 1
	}
}

func zetaBetweenNegativeOneAndZero(s float64) float64 {
	// 1 - (1 + (-s)) = s, so the shifted argument is exact.
	sc := s
	s = -s
	return -2 * math.Pow(twoPi, -s-1) *
		Sinpi(0.5*s) *
		s * Gamma(s) *
		zetaBetweenOneAndTwo(sc)
}

// zetaNegative evaluates the functional equation for s <= -1 with the
// Lanczos approximation standing in for Γ(1 - s).
func zetaNegative(s float64) float64 {
	s = -s
	base := (s + lanczos.G + 0.5) / twoPiE
	fac := math.Pow(base, s+0.5)
	overflowed := math.IsInf(fac, 1)
	if overflowed {
		// Take the square root of the large factor and apply it twice
		// after the small factors.
		fac = math.Pow(base, 0.5*(s+0.5))
	}

	res := (-sqrt2OverPi *
		Sinpi(0.5*s) *
		lanczos.SumExpGScaled(1+s) *
		zetaPositive(1+s)) * fac

	if overflowed {
		return res * fac
	}
	return res
}
