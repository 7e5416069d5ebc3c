// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
	"reflect"
	"testing"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"fillmore-labs.com/jsscope/internal/config"
	"fillmore-labs.com/jsscope/internal/run"
)

const allSettings = `
prefix: _gen
jobs: 2
format: json
all-occurrences: true
generated: false
html: false
color: true
`

func TestSettings(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		name     string
		settings string
		want     int
	}{
		{"all", allSettings, reflect.TypeFor[Settings]().NumField()},
		{"some", "jobs: 1\n", 1},
		{"none", `{}`, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			dec := yaml.NewDecoder(bytes.NewReader([]byte(tc.settings)))
			dec.KnownFields(true)

			var s Settings
			if err := dec.Decode(&s); err != nil {
				t.Fatalf("Can't decode settings: %v", err)
			}

			if got := s.Options(); len(got) != tc.want {
				t.Errorf("Got %d options: %s, want %d", len(got), got.LogValue(), tc.want)
			}
		})
	}
}

func TestSettingsApplied(t *testing.T) {
	t.Parallel()

	var s Settings
	if err := yaml.Unmarshal([]byte(allSettings), &s); err != nil {
		t.Fatalf("Can't decode settings: %v", err)
	}

	o := run.New(s.Options()...)

	if got, want := o.Prefix, "_gen"; got != want {
		t.Errorf("Prefix = %q, want %q", got, want)
	}

	if got, want := o.Jobs, 2; got != want {
		t.Errorf("Jobs = %d, want %d", got, want)
	}

	if got, want := o.Format, run.JSON; got != want {
		t.Errorf("Format = %v, want %v", got, want)
	}

	want := config.NewBitMask(config.AllOccurrences, config.Color)
	if got := o.Behavior; got != want {
		t.Errorf("Behavior = %v, want %v", got, want)
	}
}

func TestFlagValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		initial config.Behavior
		args    []string
		want    bool
	}{
		{
			name:    "Enable",
			initial: config.Color,
			args:    []string{"--all-occurrences"},
			want:    true,
		},
		{
			name:    "EnableExplicit",
			initial: config.Color,
			args:    []string{"--all-occurrences=on"},
			want:    true,
		},
		{
			name:    "Disable",
			initial: config.AllOccurrences,
			args:    []string{"--all-occurrences=false"},
			want:    false,
		},
		{
			name:    "Unchanged",
			initial: config.AllOccurrences,
			args:    nil,
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			flags := config.NewBitMask(tt.initial)

			fs := pflag.NewFlagSet("test", pflag.ContinueOnError)

			const value = config.AllOccurrences
			boolVar(fs, &flags, value, "all-occurrences", "report every occurrence")

			if err := fs.Parse(tt.args); err != nil {
				t.Fatalf("Parse failed: %v", err)
			}

			if got := flags.Enabled(value); got != tt.want {
				t.Errorf("AllOccurrences enabled = %t, want %t", got, tt.want)
			}

			if got, want := flags.Enabled(config.Color), tt.initial == config.Color; got != want {
				t.Errorf("Color enabled = %t, want %t", got, want)
			}
		})
	}
}

func TestFlagValueInvalid(t *testing.T) {
	t.Parallel()

	var flags config.BitMask[config.Behavior]

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.SetOutput(&bytes.Buffer{})
	boolVar(fs, &flags, config.Color, "color", "highlight output")

	if err := fs.Parse([]string{"--color=maybe"}); err == nil {
		t.Error("Parse succeeded, want error")
	}

	if got, want := fs.Lookup("color").Value.String(), "false"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
