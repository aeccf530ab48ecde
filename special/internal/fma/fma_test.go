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

package fma

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModeString(t *testing.T) {
	tests := []struct {
		mode Mode
		want string
	}{
		{ModeSoftware, "software"},
		{ModeHardware, "hardware"},
		{ModeUnfused, "unfused"},
		{Mode(42), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.mode.String())
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("SPECIAL_NO_FMA", "true")
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.True(t, cfg.NoFMA)
	assert.True(t, NoFMAEnv())

	t.Setenv("SPECIAL_NO_FMA", "0")
	cfg, err = LoadConfig()
	require.NoError(t, err)
	assert.False(t, cfg.NoFMA)
	assert.False(t, NoFMAEnv())

	// Unparseable values count as set.
	t.Setenv("SPECIAL_NO_FMA", "please")
	_, err = LoadConfig()
	assert.Error(t, err)
	assert.True(t, NoFMAEnv())
}

func TestMulAddSingleRounding(t *testing.T) {
	if CurrentMode() == ModeUnfused {
		t.Skip("SPECIAL_NO_FMA is set")
	}

	// (1 + 2^-30)^2 - 1 needs the 2^-60 term, which an unfused
	// multiply rounds away.
	x := 1 + math.Ldexp(1, -30)
	got := MulAdd(x, x, -1)
	want := math.Ldexp(1, -29) + math.Ldexp(1, -60)
	assert.Equal(t, want, got)
}

func TestMulAddExactValues(t *testing.T) {
	tests := []struct {
		x, y, z float64
		want    float64
	}{
		{2, 3, 4, 10},
		{-2, 3, 4, -2},
		{0.5, 0.5, 0, 0.25},
		{math.Inf(1), 2, 1, math.Inf(1)},
	}

	for _, tt := range tests {
		got := MulAdd(tt.x, tt.y, tt.z)
		if got != tt.want {
			t.Errorf("MulAdd(%v, %v, %v) = %v, want %v", tt.x, tt.y, tt.z, got, tt.want)
		}
	}
	assert.True(t, math.IsNaN(MulAdd(math.Inf(1), 0, 1)))
}
