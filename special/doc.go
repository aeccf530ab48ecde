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

// Package special provides special functions of a real float64 argument.
//
// Every function is a scalar kernel built from minimax polynomial and
// rational approximations over disjoint sub-ranges of its argument, with
// coefficients taken from Boost and Cephes. See package cmplx for the
// complex128 versions of Sinpi, Cospi and Loggamma.
//
// # Functions
//
// Trigonometric functions at multiples of π:
//   - Sinpi(x) - sin(πx)
//   - Cospi(x) - cos(πx)
//
// Gamma and related functions:
//   - Gamma(x) - Γ(x)
//   - Lgamma(x) - log|Γ(x)|
//   - Loggamma(x) - log(Γ(x)), NaN for x <= 0
//   - Digamma(x) - ψ(x) = Γ'(x)/Γ(x)
//
// Error functions:
//   - Erf(x), Erfc(x) - error function and its complement
//   - Erfinv(x), Erfcinv(x) - their inverses
//
// Riemann zeta:
//   - Zeta(s) - ζ(s)
//
// Exponential integrals:
//   - E1(x) - E₁(x)
//   - Ei(x) - Ei(x)
//   - En(n, x) - E_n(x) for integer n >= 0
//
// # Special values
//
// No function panics or returns an error. Poles, domain errors and
// overflow are reported as NaN, a signed infinity or a signed zero, the
// same way the math package does. This relies on Go never trapping
// floating-point exceptions: invalid operations, division by zero and
// overflow always produce their IEEE 754 default results.
//
// # Concurrency
//
// All functions are pure and safe for concurrent use. Coefficient tables
// are never modified after package initialization.
//
// # Fused multiply-add
//
// Polynomials are evaluated with Horner's rule using math.FMA. Setting
// SPECIAL_NO_FMA=1 in the environment switches to an unfused multiply-add,
// which changes results in the last bit.
package special
