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

package cmplx

import (
	"math"
	stdcmplx "math/cmplx"

	"github.com/ajroetker/go-special/special"
	"github.com/ajroetker/go-special/special/internal/poly"
)

const (
	twoPi       = 6.283185307179586476925284
	logPi       = 1.144729885849400174143426
	log2PiOver2 = 0.91893853320467274178 // log(2π)/2
)

const (
	// Stirling's series is used for Re z > loggammaSmallX or
	// |Im z| > loggammaSmallY.
	loggammaSmallX = 7
	loggammaSmallY = 7

	loggammaTaylorRadius = 0.2
)

// loggammaStirling holds B₂ₙ/(2n(2n - 1)) for the Bernoulli numbers B₂ₙ,
// highest order first.
var loggammaStirling = []float64{
	-2.955065359477124183e-2, 6.4102564102564102564e-3,
	-1.9175269175269175269e-3, 8.4175084175084175084e-4,
	-5.952380952380952381e-4, 7.9365079365079365079e-4,
	-2.7777777777777777778e-3, 8.3333333333333333333e-2,
}

// loggammaTaylor holds the coefficients of
//
//	loggamma(z + 1) = -γz + ζ(2)z²/2 - ζ(3)z³/3 + ...
//
// divided by z, highest order first.
var loggammaTaylor = []float64{
	-4.3478266053040259361e-2, 4.5454556293204669442e-2,
	-4.7619070330142227991e-2, 5.000004769810169364e-2,
	-5.2631679379616660734e-2, 5.5555767627403611102e-2,
	-5.8823978658684582339e-2, 6.2500955141213040742e-2,
	-6.6668705882420468033e-2, 7.1432946295361336059e-2,
	-7.6932516411352191473e-2, 8.3353840546109004025e-2,
	-9.0954017145829042233e-2, 1.0009945751278180853e-1,
	-1.1133426586956469049e-1, 1.2550966952474304242e-1,
	-1.4404989676884611812e-1, 1.6955717699740818995e-1,
	-2.0738555102867398527e-1, 2.7058080842778454788e-1,
	-4.0068563438653142847e-1, 8.2246703342411321824e-1,
	-5.7721566490153286061e-1,
}

// Loggamma computes the principal branch of log(Γ(z)).
//
// It agrees with special.Lgamma on the positive real axis and is
// continuous everywhere except across the cut on the negative real axis.
// Unlike the logarithm of Γ(z) the imaginary part is not reduced to
// (-π, π].
//
// Special cases:
//   - Loggamma(z) = NaN+NaNi if either part of z is NaN
//   - Loggamma(-n) = NaN+NaNi for integer n >= 0
//
// See Hare, "Computing the Principal Branch of log-Gamma", Journal of
// Algorithms, 1997.
func Loggamma(z complex128) complex128 {
	x, y := real(z), imag(z)
	switch {
	case math.IsNaN(x) || math.IsNaN(y):
		return complex(math.NaN(), math.NaN())
	case y == 0 && x <= 0 && x == math.Floor(x):
		return complex(math.NaN(), math.NaN())
	case y == 0 && x > 0:
		return complex(special.Lgamma(x), y)
	case x > loggammaSmallX || math.Abs(y) > loggammaSmallY:
		return loggammaStirlingSeries(z)
	case stdcmplx.Abs(z-1) <= loggammaTaylorRadius:
		return loggammaTaylorSeries(z)
	case stdcmplx.Abs(z-2) <= loggammaTaylorRadius:
		// Recurrence relation and the Taylor series around 1
		return stdcmplx.Log(z-1) + loggammaTaylorSeries(z-1)
	case x < 0.1:
		// Reflection formula; see Proposition 3.1 in Hare.
		tmp := math.Copysign(twoPi, y) * math.Floor(0.5*x+0.25)
		return complex(logPi, tmp) - stdcmplx.Log(Sinpi(z)) - Loggamma(1-z)
	case !math.Signbit(y):
		return loggammaRecurrence(z)
	default:
		return stdcmplx.Conj(loggammaRecurrence(stdcmplx.Conj(z)))
	}
}

// loggammaStirlingSeries evaluates Stirling's series, (1.1) in Hare.
func loggammaStirlingSeries(z complex128) complex128 {
	rz := 1 / z
	rzz := rz / z
	return (z-0.5)*stdcmplx.Log(z) - z + log2PiOver2 +
		rz*poly.EvalComplex(loggammaStirling, rzz)
}

// loggammaRecurrence shifts z up until Stirling's series applies. Each time
// the running product crosses the negative real axis from above, the
// logarithm of the product drops a branch, which the 2πi terms restore.
// See Proposition 2.2 in Hare.
func loggammaRecurrence(z complex128) complex128 {
	signflips := 0
	sb := false
	shiftprod := z

	z += 1
	for real(z) <= loggammaSmallX {
		shiftprod *= z
		nsb := math.Signbit(imag(shiftprod))
		if nsb && !sb {
			signflips++
		}
		sb = nsb
		z += 1
	}
	return loggammaStirlingSeries(z) - stdcmplx.Log(shiftprod) -
		complex(0, float64(signflips)*twoPi)
}

// loggammaTaylorSeries evaluates the Taylor series of loggamma about 1.
func loggammaTaylorSeries(z complex128) complex128 {
	z -= 1
	return z * poly.EvalComplex(loggammaTaylor, z)
}
