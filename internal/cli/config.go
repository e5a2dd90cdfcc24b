// Copyright 2026 The Augur Authors. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"augur.tools/augur/internal/checkers/closeleak"
	"augur.tools/augur/internal/checkers/nilfield"
	"augur.tools/augur/internal/config"
	"augur.tools/augur/internal/run"
)

// Config is the YAML configuration of the augur command.
type Config struct {
	// Checkers enables or disables individual checkers by name. Checkers not
	// mentioned keep their default.
	Checkers map[string]bool `yaml:"checkers"`

	// Generated includes generated files in the analysis.
	Generated bool `yaml:"generated"`
}

// LoadConfig reads a YAML config file. A missing path yields the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("can't read config %q: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("can't parse config %q: %w", path, err)
	}

	for name := range cfg.Checkers {
		if name != nilfield.Name && name != closeleak.Name {
			return nil, fmt.Errorf("config %q: unknown checker %q", path, name)
		}
	}

	return cfg, nil
}

// Options resolves the configuration into runtime options.
func (c *Config) Options() *run.Options {
	r := run.DefaultOptions()

	if enabled, ok := c.Checkers[nilfield.Name]; ok {
		r.Checkers.Set(config.NilFieldChecker, enabled)
	}

	if enabled, ok := c.Checkers[closeleak.Name]; ok {
		r.Checkers.Set(config.CloseLeakChecker, enabled)
	}

	r.Behavior.Set(config.IncludeGenerated, c.Generated)

	return r
}
