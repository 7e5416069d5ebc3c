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
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"fillmore-labs.com/jsscope/internal/testsource"
	"fillmore-labs.com/jsscope/jsast"
	. "fillmore-labs.com/jsscope/scope"
)

func TestKinds(t *testing.T) {
	t.Parallel()

	const src = `function f() {
  { }
  for (;;) {}
  switch (x) {}
  try {} catch (e) {}
}
x = class C {};
y = (a) => a;`

	_, tree := testsource.Parse(t, src)

	var got []Kind
	for id := range ID(tree.Len()) {
		got = append(got, tree.Kind(id))
	}

	want := []Kind{Program, Function, Block, For, Block, Switch, Block, Catch, Class, Function}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Kinds mismatch (-want +got):\n%s", diff)
	}

	if got, want := tree.Parent(tree.Root()), Invalid; got != want {
		t.Errorf("Parent(Root) = %v, want %v", got, want)
	}

	for id := ID(1); int(id) < tree.Len(); id++ {
		if p := tree.Parent(id); !tree.Valid(p) || p >= id {
			t.Errorf("Parent(%d) = %d, want a preceding scope", id, p)
		}
	}
}

func TestDeclarations(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name  string
		src   string
		scope int
		want  []string
	}{
		{"program", `var a, b; let c; const d = 1; function e() {} class F {}`, 0, []string{"F", "a", "b", "c", "d", "e"}},
		{"hoisted_var", `{ var a; let b; }`, 0, []string{"a"}},
		{"block_let", `{ var a; let b; }`, 1, []string{"b"}},
		{"block_function", `{ function f() {} }`, 1, []string{"f"}},
		{"block_function_var", `{ function f() {} }`, 0, []string{"f"}},
		{"block_function_strict", `"use strict"; { function f() {} }`, 0, nil},
		{"block_function_strict_function", `function g() { "use strict"; { function f() {} } }`, 1, nil},
		{"block_function_method", `class A { m() { { function f() {} } } }`, 1, nil},
		{"block_function_sloppy_function", `function g() { { function f() {} } }`, 1, []string{"f"}},
		{"parameters", `function f(a, {b, c: [d]}, ...e) { var g; }`, 1, []string{"a", "b", "d", "e", "g"}},
		{"function_expression_name", `x = function f() {};`, 1, []string{"f"}},
		{"function_expression_outer", `x = function f() {};`, 0, nil},
		{"class_expression_name", `x = class C {};`, 1, []string{"C"}},
		{"catch", `try {} catch (e) { var v; let w; }`, 2, []string{"e", "w"}},
		{"catch_hoisted", `try {} catch (e) { var v; }`, 0, []string{"v"}},
		{"for_let", `for (let i = 0; i < 1; i++) {}`, 1, []string{"i"}},
		{"for_var", `for (var i = 0; i < 1; i++) {}`, 0, []string{"i"}},
		{"for_of_const", `for (const x of xs) {}`, 1, []string{"x"}},
		{"switch", `switch (a) { case 1: let b; }`, 1, []string{"b"}},
		{"assignment_pattern", `[a, b] = c;`, 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, tree := testsource.Parse(t, tt.src)

			if diff := cmp.Diff(tt.want, tree.Names(ID(tt.scope)), cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Names(%d) mismatch (-want +got):\n%s", tt.scope, diff)
			}
		})
	}
}

func TestStrict(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name  string
		src   string
		scope int
		want  bool
	}{
		{"sloppy", `x;`, 0, false},
		{"program", `"use strict"; x;`, 0, true},
		{"late_directive", `x; "use strict";`, 0, false},
		{"function", `function f() { "use strict"; }`, 1, true},
		{"function_outer", `function f() { "use strict"; }`, 0, false},
		{"inherited", `"use strict"; function f() {}`, 1, true},
		{"inherited_block", `"use strict"; { let a; }`, 1, true},
		{"method", `class A { m() {} }`, 1, true},
		{"arrow", `x = () => 1;`, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, tree := testsource.Parse(t, tt.src)

			if got := tree.Strict(ID(tt.scope)); got != tt.want {
				t.Errorf("Strict(%d) = %t, want %t", tt.scope, got, tt.want)
			}
		})
	}
}

func TestImportsDeclared(t *testing.T) {
	t.Parallel()

	prog := &jsast.Program{Body: []jsast.Stmt{
		&jsast.ImportDeclaration{
			Specifiers: []jsast.Node{
				&jsast.ImportDefaultSpecifier{Local: jsast.Ident("a")},
				&jsast.ImportSpecifier{Imported: jsast.Ident("x"), Local: jsast.Ident("b")},
			},
			Source: jsast.String("mod"),
		},
	}}

	tree := Analyze(prog)

	if diff := cmp.Diff([]string{"a", "b"}, tree.Names(tree.Root())); diff != "" {
		t.Errorf("Names mismatch (-want +got):\n%s", diff)
	}

	if !tree.Strict(tree.Root()) {
		t.Error("Module code is not strict")
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	_, tree := testsource.Parse(t, `var a; function f() { var a; { let b; IT; } }`)
	_, s := testsource.Find(t, tree, testsource.IT)

	if got, want := tree.Kind(s), Block; got != want {
		t.Fatalf("Kind(IT) = %v, want %v", got, want)
	}

	fn := tree.Parent(s)

	tests := [...]struct {
		name  string
		want  ID
		found bool
	}{
		{"a", fn, true},
		{"b", s, true},
		{"f", tree.Root(), true},
		{"c", Invalid, false},
	}

	for _, tt := range tests {
		got, ok := tree.Resolve(s, tt.name)
		if got != tt.want || ok != tt.found {
			t.Errorf("Resolve(%q) = %v, %t, want %v, %t", tt.name, got, ok, tt.want, tt.found)
		}
	}

	if got, ok := tree.Shadowing(fn, "a"); got != tree.Root() || !ok {
		t.Errorf("Shadowing(a) = %v, %t, want %v, true", got, ok, tree.Root())
	}

	if _, ok := tree.Shadowing(s, "b"); ok {
		t.Error("Shadowing(b) found a shadowed declaration")
	}

	if got, want := tree.FunctionScope(s), fn; got != want {
		t.Errorf("FunctionScope = %v, want %v", got, want)
	}

	if got, want := slices.Collect(tree.Chain(s)), []ID{s, fn, tree.Root()}; !slices.Equal(got, want) {
		t.Errorf("Chain = %v, want %v", got, want)
	}
}

func TestScopeOf(t *testing.T) {
	t.Parallel()

	prog, tree := testsource.Parse(t, `function f() {}`)

	fn := prog.Body[0]

	id, ok := tree.ScopeOf(fn)
	if !ok {
		t.Fatal("Function declaration has no scope")
	}

	if got, want := tree.Anchor(id), jsast.Node(fn); got != want {
		t.Errorf("Anchor = %v, want %v", got, want)
	}

	if got := slices.Collect(tree.Children(tree.Root())); !slices.Equal(got, []ID{id}) {
		t.Errorf("Children(Root) = %v, want [%v]", got, id)
	}
}

func TestDeclare(t *testing.T) {
	t.Parallel()

	_, tree := testsource.Parse(t, `a;`)

	if !tree.IsFree(tree.Root(), "b") {
		t.Fatal("b is not free before declaration")
	}

	tree.Declare(tree.Root(), "b")

	if tree.IsFree(tree.Root(), "b") {
		t.Error("b is free after declaration")
	}
}
