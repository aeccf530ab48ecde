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

//go:generate go run ../cmd/special limits -o limits_gen.go --package special

// =============================================================================
// Constants shared by the kernels
// =============================================================================

// Numbers related to π
const (
	twoPi       = 6.283185307179586476925284
	logPi       = 1.144729885849400174143426
	log2PiOver2 = 0.91893853320467274178  // log(2π)/2
	sqrt2OverPi = 0.79788456080286535588  // √(2/π)
	twoPiE      = 17.07946844534713413093 // 2πe
)

// EulerGamma is the Euler-Mascheroni constant γ.
const EulerGamma = 0.57721566490153286060651209008240243

// Limits
const (
	eps     = 2.220446049250313e-16   // Machine epsilon
	rootEps = 1.490116119384765625e-8 // √ε
)
