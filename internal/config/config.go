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

package config

//go:generate go tool stringer -type=Behavior

// Behavior represents reporting options of the command line tool.
type Behavior uint8

const (
	// AllOccurrences reports every occurrence of a global, not only the first.
	AllOccurrences Behavior = 1 << iota

	// IncludeGenerated includes generated and minified files.
	IncludeGenerated

	// HTMLScripts analyzes the inline scripts of HTML documents.
	HTMLScripts

	// Color highlights text output.
	Color
)

// DefaultBehavior returns the behavior of the command line tool without configuration.
func DefaultBehavior() BitMask[Behavior] {
	return NewBitMask(HTMLScripts)
}
