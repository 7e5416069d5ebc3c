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

package scope_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"fillmore-labs.com/jsscope/internal/testsource"
)

func TestGlobals(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name string
		src  string
		want []string
	}{
		{"single", `a;`, []string{"a"}},
		{"declared", `var a; a;`, nil},
		{"mixed", `var a; a; b;`, []string{"b"}},
		{"call", `foo(bar);`, []string{"foo", "bar"}},
		{"duplicates", `a; b; a;`, []string{"a", "b"}},
		{"members", `a.b.c;`, []string{"a"}},
		{"object", `x = { a: b };`, []string{"x", "b"}},
		{"function_scope", `function f(a) { return a + b; }`, []string{"b"}},
		{"block_scope", `{ let a; } a;`, []string{"a"}},
		{"hoisted", `{ var a; } a;`, nil},
		{"arguments", `function f() { return arguments; }`, nil},
		{"arrow_arguments", `x = () => arguments;`, []string{"x", "arguments"}},
		{"arguments_in_arrow_in_function", `function f() { return () => arguments; }`, nil},
		{"assignment_pattern", `({a: b} = c);`, []string{"b", "c"}},
		{"class", `class A extends B { m() { return C; } }`, []string{"B", "C"}},
		{"recursive_function_expression", `x = function f() { f(); };`, []string{"x"}},
		{"label", `a: for (;;) { break a; }`, nil},
		{"catch", `try {} catch (e) { e; f; }`, []string{"f"}},
		{"typeof", `typeof window;`, []string{"window"}},
		{"block_function", `if (c) { function f() {} } f();`, []string{"c"}},
		{"block_function_strict", `"use strict"; if (c) { function f() {} } f();`, []string{"c", "f"}},
		{"new_target", `function F() { return new.target; }`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, tree := testsource.Parse(t, tt.src)

			var got []string
			for _, id := range tree.Globals() {
				got = append(got, id.Name)
			}

			if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Globals(%q) mismatch (-want +got):\n%s", tt.src, diff)
			}
		})
	}
}

func TestGlobalOccurrences(t *testing.T) {
	t.Parallel()

	_, tree := testsource.Parse(t, `a; b; a;`)

	var got []string
	for o := range tree.GlobalOccurrences() {
		got = append(got, o.Ident.Name)
	}

	if diff := cmp.Diff([]string{"a", "b", "a"}, got); diff != "" {
		t.Errorf("GlobalOccurrences mismatch (-want +got):\n%s", diff)
	}
}
