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

// Package fma provides the fused multiply-add used by every polynomial
// kernel in go-special, and reports how it is carried out on this machine.
//
// math.FMA is correctly rounded on every Go target: it compiles to a single
// instruction where the CPU has one and falls back to an exact software
// emulation otherwise. The error bounds quoted by the special functions
// assume a fused operation. Setting SPECIAL_NO_FMA replaces it with an
// ordinary multiply followed by an add, which is faster on CPUs without
// hardware FMA but changes results in the last bit.
package fma

import (
	"math"

	"github.com/kelseyhightower/envconfig"
)

// Mode describes how MulAdd is evaluated.
type Mode int

const (
	// ModeSoftware indicates a fused operation emulated in software.
	ModeSoftware Mode = iota

	// ModeHardware indicates a fused operation executed by the CPU.
	ModeHardware

	// ModeUnfused indicates x*y rounded before z is added (SPECIAL_NO_FMA).
	ModeUnfused
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeSoftware:
		return "software"
	case ModeHardware:
		return "hardware"
	case ModeUnfused:
		return "unfused"
	default:
		return "unknown"
	}
}

// Config holds the environment settings read at init.
type Config struct {
	NoFMA bool `envconfig:"SPECIAL_NO_FMA" default:"false"`
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}

// currentMode is set by init and never changes afterwards.
var currentMode Mode

func init() {
	if NoFMAEnv() {
		currentMode = ModeUnfused
		return
	}
	if hasHardwareFMA() {
		currentMode = ModeHardware
	} else {
		currentMode = ModeSoftware
	}
}

// NoFMAEnv reports whether the SPECIAL_NO_FMA environment variable is set.
// Any non-empty value that does not parse as a bool counts as set.
func NoFMAEnv() bool {
	cfg, err := LoadConfig()
	if err != nil {
		return true
	}
	return cfg.NoFMA
}

// CurrentMode returns the mode MulAdd uses.
func CurrentMode() Mode {
	return currentMode
}

// MulAdd computes x*y + z.
func MulAdd(x, y, z float64) float64 {
	if currentMode == ModeUnfused {
		// The explicit conversion stops the compiler from fusing.
		return float64(x*y) + z
	}
	return math.FMA(x, y, z)
}
