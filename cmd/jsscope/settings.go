// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"fillmore-labs.com/jsscope/internal/config"
	"fillmore-labs.com/jsscope/internal/run"
)

// Settings represents the configuration file of jsscope.
type Settings struct {
	// Prefix is the prefix of generated names.
	Prefix *string `yaml:"prefix,omitempty"`
	// Jobs limits the number of files analyzed concurrently.
	Jobs *int `yaml:"jobs,omitempty"`
	// Format selects the report format, text or json.
	Format *run.Format `yaml:"format,omitempty"`
	// AllOccurrences reports every occurrence of a global.
	AllOccurrences *bool `yaml:"all-occurrences,omitempty"`
	// Generated includes generated and minified files.
	Generated *bool `yaml:"generated,omitempty"`
	// HTML analyzes inline scripts of HTML documents.
	HTML *bool `yaml:"html,omitempty"`
	// Color highlights text output.
	Color *bool `yaml:"color,omitempty"`
}

// Options converts [Settings] into a list of [run.Option].
// It applies settings only when explicitly set (non-nil).
func (s Settings) Options() run.OptionList {
	var opts run.OptionList

	opts = appendOption(opts, s.Prefix, run.WithPrefix)
	opts = appendOption(opts, s.Jobs, run.WithJobs)
	opts = appendOption(opts, s.Format, run.WithFormat)
	opts = appendOption(opts, s.AllOccurrences, withBehavior(config.AllOccurrences))
	opts = appendOption(opts, s.Generated, withBehavior(config.IncludeGenerated))
	opts = appendOption(opts, s.HTML, withBehavior(config.HTMLScripts))
	opts = appendOption(opts, s.Color, withBehavior(config.Color))

	return opts
}

// appendOption appends a non-nil setting to a [run.Option] list.
func appendOption[T any](opts run.OptionList, value *T, constructor func(T) run.Option) run.OptionList {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}

func withBehavior(flag config.Behavior) func(bool) run.Option {
	return func(enabled bool) run.Option { return run.WithBehavior(flag, enabled) }
}

// loadSettings reads a YAML configuration file. Unknown keys are rejected.
func loadSettings(name string) (Settings, error) {
	var s Settings

	data, err := os.ReadFile(name)
	if err != nil {
		return s, err
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return s, fmt.Errorf("config %s: %w", name, err)
	}

	return s, nil
}
