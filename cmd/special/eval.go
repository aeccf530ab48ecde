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
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ajroetker/go-special/special"
	"github.com/ajroetker/go-special/special/cmplx"
)

var realFuncs = map[string]func(float64) float64{
	"sinpi":    special.Sinpi,
	"cospi":    special.Cospi,
	"gamma":    special.Gamma,
	"lgamma":   special.Lgamma,
	"loggamma": special.Loggamma,
	"digamma":  special.Digamma,
	"erf":      special.Erf,
	"erfc":     special.Erfc,
	"erfinv":   special.Erfinv,
	"erfcinv":  special.Erfcinv,
	"zeta":     special.Zeta,
	"e1":       special.E1,
	"ei":       special.Ei,
}

var complexFuncs = map[string]func(complex128) complex128{
	"sinpi":    cmplx.Sinpi,
	"cospi":    cmplx.Cospi,
	"loggamma": cmplx.Loggamma,
}

// evalOptions holds the flags of the eval command.
type evalOptions struct {
	complex bool
	order   uint
}

func newEvalCmd(a *app) *cobra.Command {
	var opts evalOptions
	cmd := &cobra.Command{
		Use:   "eval <func> <arg>...",
		Short: "Evaluate a special function at each argument",
		Long: "Evaluate a special function at each argument and print one line per argument.\n\n" +
			"Real functions: " + strings.Join(funcNames(realFuncs), ", ") + ", en.\n" +
			"Complex functions (--complex): " + strings.Join(funcNames(complexFuncs), ", ") + ".\n" +
			"Arguments accept nan, inf and -inf; complex arguments use the 1+2i syntax.\n" +
			"Flags go before the function name.",
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a.log.Debug("evaluating",
				zap.String("func", args[0]),
				zap.Int("args", len(args)-1),
				zap.Bool("complex", opts.complex))
			lines, err := evaluate(args[0], args[1:], opts)
			if err != nil {
				return err
			}
			for _, line := range lines {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}
	// Negative arguments must not be mistaken for flags.
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().BoolVar(&opts.complex, "complex", false, "evaluate the complex form of sinpi, cospi or loggamma")
	cmd.Flags().UintVar(&opts.order, "order", 1, "order n of en")
	return cmd
}

// evaluate applies the function called name to every argument and returns
// one "name(arg) = value" line per argument.
func evaluate(name string, args []string, opts evalOptions) ([]string, error) {
	name = strings.ToLower(name)

	if opts.complex {
		f, ok := complexFuncs[name]
		if !ok {
			return nil, errors.Errorf("no complex function %q, want one of %s",
				name, strings.Join(funcNames(complexFuncs), ", "))
		}
		zs, err := parseAll(args, parseComplex)
		if err != nil {
			return nil, err
		}
		return lo.Map(zs, func(z complex128, _ int) string {
			return fmt.Sprintf("%s(%s) = %s", name, formatComplex(z), formatComplex(f(z)))
		}), nil
	}

	if name == "en" {
		xs, err := parseAll(args, parseFloat)
		if err != nil {
			return nil, err
		}
		return lo.Map(xs, func(x float64, _ int) string {
			return fmt.Sprintf("en(%d, %s) = %s", opts.order, formatFloat(x), formatFloat(special.En(opts.order, x)))
		}), nil
	}

	f, ok := realFuncs[name]
	if !ok {
		return nil, errors.Errorf("unknown function %q, want one of %s",
			name, strings.Join(append(funcNames(realFuncs), "en"), ", "))
	}
	xs, err := parseAll(args, parseFloat)
	if err != nil {
		return nil, err
	}
	return lo.Map(xs, func(x float64, _ int) string {
		return fmt.Sprintf("%s(%s) = %s", name, formatFloat(x), formatFloat(f(x)))
	}), nil
}

func funcNames[F any](funcs map[string]F) []string {
	names := lo.Keys(funcs)
	slices.Sort(names)
	return names
}

func parseAll[T any](args []string, parse func(string) (T, error)) ([]T, error) {
	values := make([]T, 0, len(args))
	for _, arg := range args {
		v, err := parse(arg)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

func parseFloat(s string) (float64, error) {
	x, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "parsing argument %q", s)
	}
	return x, nil
}

func parseComplex(s string) (complex128, error) {
	z, err := strconv.ParseComplex(s, 128)
	if err != nil {
		return 0, errors.Wrapf(err, "parsing complex argument %q", s)
	}
	return z, nil
}

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}

func formatComplex(z complex128) string {
	return strings.Trim(strconv.FormatComplex(z, 'g', -1, 128), "()")
}
