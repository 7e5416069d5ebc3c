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

package parse_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"fillmore-labs.com/jsscope/jsast"
	. "fillmore-labs.com/jsscope/parse"
)

func TestProgram(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name string
		src  string
		want string
	}{
		{
			name: "var",
			src:  `var a = 1, b;`,
			want: `var a = 1, b;`,
		},
		{
			name: "function",
			src:  `function f(a, b = 2, ...c) { return a + b * c; }`,
			want: "function f(a, b = 2, ...c) {\n  return a + b * c;\n}",
		},
		{
			name: "sequence",
			src:  `x = (a, b);`,
			want: `x = (a, b);`,
		},
		{
			name: "destructuring_assignment",
			src:  `({a, b: c} = d);`,
			want: `({a, b: c} = d);`,
		},
		{
			name: "for",
			src:  `for (let i = 0; i < n; i++) {}`,
			want: `for (let i = 0; i < n; i++) {}`,
		},
		{
			name: "new_call_callee",
			src:  `new (f())();`,
			want: `new (f())();`,
		},
		{
			name: "class",
			src:  `class A extends B { constructor() { super(); } }`,
			want: "class A extends B {\n  constructor() {\n    super();\n  }\n}",
		},
		{
			name: "label",
			src:  `label: for (;;) { break label; }`,
			want: "label: for (;;) {\n  break label;\n}",
		},
		{
			name: "try",
			src:  `try { f(); } catch (e) { g(e); } finally { h(); }`,
			want: "try {\n  f();\n} catch (e) {\n  g(e);\n} finally {\n  h();\n}",
		},
		{
			name: "object",
			src:  `x = { a, b: 1, [c]: 2, m() {} };`,
			want: `x = { a, b: 1, [c]: 2, m() {} };`,
		},
		{
			name: "arrow_object_body",
			src:  `f = (a) => ({ a });`,
			want: `f = (a) => ({ a });`,
		},
		{
			name: "template",
			src:  "t = `a${b}c`;",
			want: "t = `a${b}c`;",
		},
		{
			name: "unary",
			src:  `x = -(-y);`,
			want: `x = - -y;`,
		},
		{
			name: "typeof",
			src:  `x = typeof y === "string";`,
			want: `x = typeof y === "string";`,
		},
		{
			name: "precedence",
			src:  `x = (a + b) * c;`,
			want: `x = (a + b) * c;`,
		},
		{
			name: "exponent",
			src:  `x = a ** b ** c;`,
			want: `x = a ** b ** c;`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			prog, err := Program("test.js", tt.src)
			if err != nil {
				t.Fatalf("Program(%q) failed: %v", tt.src, err)
			}

			if diff := cmp.Diff(tt.want, jsast.Print(prog)); diff != "" {
				t.Errorf("Print(Program(%q)) mismatch (-want +got):\n%s", tt.src, diff)
			}
		})
	}
}

func TestDirectives(t *testing.T) {
	t.Parallel()

	prog, err := Program("test.js", `"use strict"; 'use asm'; x; "not a directive";`)
	if err != nil {
		t.Fatalf("Program failed: %v", err)
	}

	var got []string

	for _, s := range prog.Body {
		if es, ok := s.(*jsast.ExpressionStatement); ok {
			got = append(got, es.Directive)
		}
	}

	want := []string{"use strict", "use asm", "", ""}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Directives mismatch (-want +got):\n%s", diff)
	}
}

func TestBlockHasNoDirectives(t *testing.T) {
	t.Parallel()

	prog, err := Program("test.js", `{ "use strict"; }`)
	if err != nil {
		t.Fatalf("Program failed: %v", err)
	}

	block := prog.Body[0].(*jsast.BlockStatement)
	if got := block.Body[0].(*jsast.ExpressionStatement).Directive; got != "" {
		t.Errorf("Directive = %q, want none", got)
	}
}

func TestProgramErrors(t *testing.T) {
	t.Parallel()

	if _, err := Program("test.js", `var = ;`); err == nil {
		t.Error("Expected syntax error")
	}

	_, err := Program("test.js", "x;\n  1 = 2;")
	if err == nil {
		t.Fatal("Expected syntax error")
	}

	if errors.Is(err, ErrUnsupported) {
		t.Errorf("Program error = %v, want a syntax error", err)
	}

	if !strings.Contains(err.Error(), "test.js") {
		t.Errorf("Error %q does not name the file", err)
	}
}

func TestMetaProperty(t *testing.T) {
	t.Parallel()

	const src = "function F() { return new.target; }"

	f, err := ParseFile("test.js", src)
	if err != nil {
		t.Fatalf("ParseFile(%q) failed: %v", src, err)
	}

	if got, want := jsast.Print(f.Program), "function F() {\n  return new.target;\n}"; got != want {
		t.Errorf("Print() = %q, want %q", got, want)
	}

	got := make(map[string]string)
	for id, pos := range f.Positions {
		got[id.Name] = pos.String()
	}

	want := map[string]string{"F": "1:10", "new": "1:23", "target": "1:27"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Positions mismatch (-want +got):\n%s", diff)
	}
}

func TestExpression(t *testing.T) {
	t.Parallel()

	e, err := Expression("Object.prototype.hasOwnProperty")
	if err != nil {
		t.Fatalf("Expression failed: %v", err)
	}

	if diff := cmp.Diff(jsast.Print(jsast.Path("Object.prototype.hasOwnProperty")), jsast.Print(e)); diff != "" {
		t.Errorf("Expression mismatch (-want +got):\n%s", diff)
	}

	if _, err := Expression("a; b"); err == nil {
		t.Error("Expected error for multiple statements")
	}
}

func TestParseFilePositions(t *testing.T) {
	t.Parallel()

	f, err := ParseFile("test.js", "var a;\n  b.c;\nd;")
	if err != nil {
		t.Fatalf("ParseFile failed: %v", err)
	}

	got := make(map[string]string)
	for id, pos := range f.Positions {
		got[id.Name] = pos.String()
	}

	want := map[string]string{"a": "1:5", "b": "2:3", "c": "2:5", "d": "3:1"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Positions mismatch (-want +got):\n%s", diff)
	}

	if got, want := f.Name, "test.js"; got != want {
		t.Errorf("Name = %q, want %q", got, want)
	}
}
