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

import "github.com/ajroetker/go-special/special/internal/fma"

// FMAMode reports how the polynomial kernels carry out multiply-add on this
// machine: "hardware" or "software" for a fused operation, "unfused" when
// SPECIAL_NO_FMA is set.
func FMAMode() string {
	return fma.CurrentMode().String()
}
