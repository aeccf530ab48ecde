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

// Package cmplx provides special functions of a complex128 argument.
//
// It extends package special to the complex plane the same way the
// standard library's math/cmplx extends math:
//   - Sinpi(z) - sin(πz)
//   - Cospi(z) - cos(πz)
//   - Loggamma(z) - the principal branch of log(Γ(z)), with a single
//     branch cut on the negative real axis
//
// NaN in either part of the argument gives NaN in both parts of the
// result for Loggamma. Sinpi and Cospi propagate NaN part by part.
package cmplx
