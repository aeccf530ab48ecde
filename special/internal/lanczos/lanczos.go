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

// Package lanczos implements the Lanczos approximation used by the gamma,
// log-gamma and zeta kernels.
//
// The coefficients are Boost's lanczos13m53, which is optimised for 53 bit
// doubles and is accurate to about 1.2e-17 relative. They are:
//
//	Copyright John Maddock 2006.
//	Use, modification and distribution are subject to the
//	Boost Software License, Version 1.0.
package lanczos

import "github.com/ajroetker/go-special/special/internal/poly"

// G is the Lanczos shift g.
const G = 6.024680040776729583740234375

// sumNum, sumExpGScaledNum and sumDenom are stored highest degree first.
// sumDenom is x(x+1)...(x+11).
var (
	sumNum = []float64{
		2.506628274631000270164908177133837338626,
		210.8242777515793458725097339207133627117,
		8071.672002365816210638002902272250613822,
		186056.2653952234950402949897160456992822,
		2876370.628935372441225409051620849613599,
		31426415.58540019438061423162831820536287,
		248874557.8620541565114603864132294232163,
		1439720407.311721673663223072794912393972,
		6039542586.35202800506429164430729792107,
		17921034426.03720969991975575445893111267,
		35711959237.35566804944018545154716670596,
		42919803642.64909876895789904700198885093,
		23531376880.41075968857200767445163675473,
	}

	sumExpGScaledNum = []float64{
		0.006061842346248906525783753964555936883222,
		0.5098416655656676188125178644804694509993,
		19.51992788247617482847860966235652136208,
		449.9445569063168119446858607650988409623,
		6955.999602515376140356310115515198987526,
		75999.29304014542649875303443598909137092,
		601859.6171681098786670226533699352302507,
		3481712.15498064590882071018964774556468,
		14605578.08768506808414169982791359218571,
		43338889.32467613834773723740590533316085,
		86363131.28813859145546927288977868422342,
		103794043.1163445451906271053616070238554,
		56906521.91347156388090791033559122686859,
	}

	sumDenom = []float64{
		1,
		66,
		1925,
		32670,
		357423,
		2637558,
		13339535,
		45995730,
		105258076,
		150917976,
		120543840,
		39916800,
		0,
	}
)

// Sum returns the Lanczos sum L(x), with
//
//	Γ(x) = L(x) (x + g - 0.5)^(x - 0.5) / exp(x + g - 0.5).
func Sum(x float64) float64 {
	return poly.EvalRational(sumNum, sumDenom, x)
}

// SumExpGScaled returns L(x)/exp(g), with
//
//	Γ(x) = SumExpGScaled(x) ((x + g - 0.5)/e)^(x - 0.5).
func SumExpGScaled(x float64) float64 {
	return poly.EvalRational(sumExpGScaledNum, sumDenom, x)
}
