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

package config_test

import (
	"slices"
	"testing"

	. "fillmore-labs.com/jsscope/internal/config"
)

func TestBitMask(t *testing.T) {
	t.Parallel()

	b := NewBitMask(AllOccurrences, Color)

	tests := [...]struct {
		flag Behavior
		want bool
	}{
		{AllOccurrences, true},
		{IncludeGenerated, false},
		{HTMLScripts, false},
		{Color, true},
	}

	for _, tt := range tests {
		if got := b.Enabled(tt.flag); got != tt.want {
			t.Errorf("Enabled(%v) = %t, want %t", tt.flag, got, tt.want)
		}
	}

	b.Set(Color, false)
	b.Set(HTMLScripts, true)

	if got, want := slices.Collect(b.Flags()), []Behavior{AllOccurrences, HTMLScripts}; !slices.Equal(got, want) {
		t.Errorf("Flags() = %v, want %v", got, want)
	}
}

func TestDefaultBehavior(t *testing.T) {
	t.Parallel()

	b := DefaultBehavior()

	if !b.Enabled(HTMLScripts) {
		t.Error("HTML scripts are disabled by default")
	}

	if b.Enabled(AllOccurrences | IncludeGenerated | Color) {
		t.Errorf("Unexpected default flags %v", slices.Collect(b.Flags()))
	}
}

func TestBehaviorString(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		flag Behavior
		want string
	}{
		{AllOccurrences, "AllOccurrences"},
		{IncludeGenerated, "IncludeGenerated"},
		{HTMLScripts, "HTMLScripts"},
		{Color, "Color"},
		{Behavior(3), "Behavior(3)"},
	}

	for _, tt := range tests {
		if got := tt.flag.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
