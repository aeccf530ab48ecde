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

package main

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-special/special"
)

func TestFindOverflow(t *testing.T) {
	// The assembly Exp on some platforms overflows slightly before
	// log(MaxFloat64), so only the boundary itself is checked.
	tests := []struct {
		name string
		f    func(float64) float64
	}{
		{"exp", math.Exp},
		{"cosh", math.Cosh},
		{"sinh", math.Sinh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := findOverflow(tt.f, 709, 711)
			require.NoError(t, err)
			assert.False(t, math.IsInf(tt.f(got), 0), "f(%v) = %v", got, tt.f(got))
			next := math.Nextafter(got, math.Inf(1))
			assert.True(t, math.IsInf(tt.f(next), 1), "f(%v) = %v", next, tt.f(next))
			assert.LessOrEqual(t, got, math.Log(math.MaxFloat64))
			assert.Greater(t, got, 709.0)
		})
	}
}

func TestFindUnderflow(t *testing.T) {
	got, err := findUnderflow(math.Exp, -800, -700)
	require.NoError(t, err)
	assert.NotZero(t, math.Exp(got))
	assert.Zero(t, math.Exp(math.Nextafter(got, math.Inf(-1))))
	assert.InDelta(t, special.MinExp, got, 1e-3)
}

func TestFindBadBracket(t *testing.T) {
	_, err := findOverflow(math.Exp, 800, 900)
	assert.Error(t, err)
	_, err = findOverflow(math.Exp, 0, 1)
	assert.Error(t, err)
	_, err = findUnderflow(math.Exp, -700, -600)
	assert.Error(t, err)
}

func TestSearchLimits(t *testing.T) {
	limits, err := searchLimits(context.Background(), limitSearches)
	require.NoError(t, err)
	require.Len(t, limits, len(limitSearches))
	for i, l := range limits {
		s := limitSearches[i]
		assert.Equal(t, s.Name, l.Name)
		assert.NotZero(t, l.Value)
		if s.Underflow {
			assert.NotZero(t, s.F(l.Value), "%s", s.Name)
		} else {
			assert.False(t, math.IsInf(s.F(l.Value), 0), "%s", s.Name)
			assert.True(t, math.IsInf(s.F(math.Nextafter(l.Value, math.Inf(1))), 1), "%s", s.Name)
		}
	}

	bad := []limitSearch{{Name: "Broken", F: math.Exp, Lo: 0, Hi: 1}}
	_, err = searchLimits(context.Background(), bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Broken")
}

func TestRenderLimits(t *testing.T) {
	limits := []limit{
		{Name: "MaxExp", Doc: "MaxExp is big.", Value: 709.782712893384},
		{Name: "MinExp", Doc: "MinExp is small.", Value: -745.1332191019411},
	}
	src, err := renderLimits("special", limits)
	require.NoError(t, err)

	want := `// Code generated by "special limits"; DO NOT EDIT.

package special

// Platform limits of the Go math package, found by bisection and polished
// with math.Nextafter.
const (
	// MaxExp is big.
	MaxExp = 709.782712893384

	// MinExp is small.
	MinExp = -745.1332191019411
)
`
	assert.Equal(t, want, string(src))
}

func TestLimitsCommand(t *testing.T) {
	out, err := runCmd(t, "limits")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "// Code generated"))
	for _, s := range limitSearches {
		assert.Contains(t, out, s.Name+" = ")
	}

	path := filepath.Join(t.TempDir(), "limits_gen.go")
	out, err = runCmd(t, "limits", "-o", path, "--package", "limits")
	require.NoError(t, err)
	assert.Empty(t, out)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "package limits\n")

	_, err = runCmd(t, "limits", "-o", filepath.Join(t.TempDir(), "missing", "limits_gen.go"))
	assert.Error(t, err)
}
