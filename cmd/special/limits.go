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
	"bytes"
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/imports"
)

// limit is one generated constant.
type limit struct {
	Name  string
	Doc   string
	Value float64
}

// limitSearch describes how to find a limit: f changes behavior somewhere
// in the bracket [Lo, Hi].
type limitSearch struct {
	Name      string
	Doc       string
	F         func(float64) float64
	Lo, Hi    float64
	Underflow bool
}

var limitSearches = []limitSearch{
	{
		Name: "MaxExp",
		Doc:  "MaxExp is the largest float64 x for which math.Exp(x) is finite.",
		F:    math.Exp,
		Lo:   709,
		Hi:   711,
	},
	{
		Name:      "MinExp",
		Doc:       "MinExp is the smallest float64 x for which math.Exp(x) is nonzero.",
		F:         math.Exp,
		Lo:        -800,
		Hi:        -700,
		Underflow: true,
	},
}

// bisectTolerance is where bisection stops and math.Nextafter takes over.
const bisectTolerance = 1e-12

func newLimitsCmd(a *app) *cobra.Command {
	var (
		output  string
		pkgName string
	)
	cmd := &cobra.Command{
		Use:   "limits",
		Short: "Regenerate the overflow and underflow limits of the math package",
		Long: "Search for the arguments at which math.Exp overflows and underflows on this\n" +
			"platform, and write them as Go constants.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			limits, err := searchLimits(cmd.Context(), limitSearches)
			if err != nil {
				return err
			}
			for _, l := range limits {
				a.log.Info("found limit", zap.String("name", l.Name), zap.Float64("value", l.Value))
			}

			src, err := renderLimits(pkgName, limits)
			if err != nil {
				return err
			}
			if output == "" {
				_, err = cmd.OutOrStdout().Write(src)
				return errors.Wrap(err, "writing limits")
			}
			if err := os.WriteFile(output, src, 0o644); err != nil {
				return errors.Wrapf(err, "writing %s", output)
			}
			a.log.Info("wrote limits file", zap.String("path", output))
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&pkgName, "package", "special", "package name of the generated file")
	return cmd
}

// searchLimits runs every search concurrently and returns the limits in the
// order of searches.
func searchLimits(ctx context.Context, searches []limitSearch) ([]limit, error) {
	limits := make([]limit, len(searches))
	g, ctx := errgroup.WithContext(ctx)
	for i, s := range searches {
		i, s := i, s
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			var (
				v   float64
				err error
			)
			if s.Underflow {
				v, err = findUnderflow(s.F, s.Lo, s.Hi)
			} else {
				v, err = findOverflow(s.F, s.Lo, s.Hi)
			}
			if err != nil {
				return errors.Wrapf(err, "searching %s", s.Name)
			}
			limits[i] = limit{Name: s.Name, Doc: s.Doc, Value: v}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return limits, nil
}

// findOverflow returns the largest x for which f(x) is finite, given that
// f(lo) is finite, f(hi) is +Inf and f is increasing in between.
func findOverflow(f func(float64) float64, lo, hi float64) (float64, error) {
	if math.IsInf(f(lo), 1) || !math.IsInf(f(hi), 1) {
		return 0, errors.Errorf("[%v, %v] does not bracket the overflow", lo, hi)
	}
	for hi-lo >= bisectTolerance {
		mid := 0.5 * (lo + hi)
		if math.IsInf(f(mid), 1) {
			hi = mid
		} else {
			lo = mid
		}
	}
	for {
		next := math.Nextafter(lo, math.Inf(1))
		if math.IsInf(f(next), 1) {
			return lo, nil
		}
		lo = next
	}
}

// findUnderflow returns the smallest x for which f(x) is nonzero, given
// that f(lo) is zero, f(hi) is not and f is increasing in between.
func findUnderflow(f func(float64) float64, lo, hi float64) (float64, error) {
	if f(lo) != 0 || f(hi) == 0 {
		return 0, errors.Errorf("[%v, %v] does not bracket the underflow", lo, hi)
	}
	for hi-lo >= bisectTolerance {
		mid := 0.5 * (lo + hi)
		if f(mid) != 0 {
			hi = mid
		} else {
			lo = mid
		}
	}
	for {
		prev := math.Nextafter(hi, math.Inf(-1))
		if f(prev) == 0 {
			return hi, nil
		}
		hi = prev
	}
}

// renderLimits returns the formatted source of the generated limits file.
func renderLimits(pkgName string, limits []limit) ([]byte, error) {
	var buf bytes.Buffer
	writeLimits(&buf, pkgName, limits)
	opts := &imports.Options{Comments: true, TabIndent: true, TabWidth: 8, FormatOnly: true}
	src, err := imports.Process("limits_gen.go", buf.Bytes(), opts)
	if err != nil {
		return nil, errors.Wrap(err, "formatting generated limits")
	}
	return src, nil
}

func writeLimits(w io.Writer, pkgName string, limits []limit) {
	fmt.Fprintf(w, "// Code generated by \"special limits\"; DO NOT EDIT.\n\n")
	fmt.Fprintf(w, "package %s\n\n", pkgName)
	fmt.Fprintf(w, "// Platform limits of the Go math package, found by bisection and polished\n")
	fmt.Fprintf(w, "// with math.Nextafter.\n")
	fmt.Fprintf(w, "const (\n")
	for i, l := range limits {
		if i > 0 {
			fmt.Fprintf(w, "\n")
		}
		fmt.Fprintf(w, "\t// %s\n", l.Doc)
		fmt.Fprintf(w, "\t%s = %s\n", l.Name, strconv.FormatFloat(l.Value, 'g', -1, 64))
	}
	fmt.Fprintf(w, ")\n")
}
