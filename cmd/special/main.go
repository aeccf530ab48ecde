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

// Command special evaluates the special functions from the command line and
// regenerates the platform limits compiled into package special.
//
// Usage:
//
//	special eval gamma 0.5 4.5
//	special eval --complex loggamma 1+1i -2.5
//	special eval --order 3 en 0.25 2
//	special limits -o limits_gen.go --package special
//	special info
//
// Or via go:generate in package special:
//
//	//go:generate go run ../cmd/special limits -o limits_gen.go --package special
//
// Logging goes to stderr and is configured by SPECIAL_LOG_LEVEL and
// SPECIAL_LOG_DEV, or by the --log-level and --log-dev flags.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries the state shared by all subcommands.
type app struct {
	log *zap.Logger

	logLevel string
	logDev   bool
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "special",
		Short:         "Evaluate special functions and regenerate their platform limits",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = a.logLevel
			}
			if cmd.Flags().Changed("log-dev") {
				cfg.LogDev = a.logDev
			}

			log, err := newLogger(cfg.LogLevel, cfg.LogDev)
			if err != nil {
				return err
			}
			a.log = log
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	flags.BoolVar(&a.logDev, "log-dev", false, "human readable development logging")

	cmd.AddCommand(
		newEvalCmd(a),
		newLimitsCmd(a),
		newInfoCmd(a))
	return cmd
}

func main() {
	a := &app{log: zap.NewNop()}
	err := newRootCmd(a).Execute()
	if err != nil {
		a.log.Error("command failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	_ = a.log.Sync()
	if err != nil {
		os.Exit(1)
	}
}
