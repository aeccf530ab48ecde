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
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

// Config holds the settings read from the environment. Command line flags
// take precedence over it.
type Config struct {
	LogLevel string `envconfig:"SPECIAL_LOG_LEVEL" default:"info"`
	LogDev   bool   `envconfig:"SPECIAL_LOG_DEV" default:"false"`
}

func loadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return cfg, errors.Wrap(err, "reading environment")
	}
	return cfg, nil
}
