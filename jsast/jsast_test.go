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


package jsast_test

import (
	"slices"
	"testing"

	. "fillmore-labs.com/jsscope/jsast"
	"github.com/google/go-cmp/cmp"
)

func TestPrint(t *testing.T) {
	t.Parallel()

	a, b, c := Ident("a"), Ident("b"), Ident("c")

	tests := [...]struct {
		name string
		node Node
		want string
	}{
		{"declaration", Declare("var", Ident("a"), Number(1)), "var a = 1;"},
		{"let_without_init", Declare("let", Ident("a"), nil), "let a;"},
		{"grouping", &BinaryExpression{Operator: "*", Left: &BinaryExpression{Operator: "+", Left: a, Right: b}, Right: c}, "(a + b) * c"},
		{"left_associative", &BinaryExpression{Operator: "-", Left: a, Right: &BinaryExpression{Operator: "-", Left: b, Right: c}}, "a - (b - c)"},
		{"right_associative", &BinaryExpression{Operator: "**", Left: a, Right: &BinaryExpression{Operator: "**", Left: b, Right: c}}, "a ** b ** c"},
		{"object_statement", ExprStmt(&ObjectExpression{}), "({});"},
		{"number_member", Member(Number(1), "toString"), "(1).toString"},
		{"quote", String("a\"b\n"), `"a\"b\n"`},
		{"double_negation", &UnaryExpression{Operator: "-", Argument: &UnaryExpression{Operator: "-", Argument: a}}, "- -a"},
		{"typeof", &UnaryExpression{Operator: "typeof", Argument: a}, "typeof a"},
		{"path", Path("Object.prototype.hasOwnProperty"), "Object.prototype.hasOwnProperty"},
		{"call", Call(Member(a, "call"), This(), Null(), Bool(true)), "a.call(this, null, true)"},
		{"index", Index(a, String("b")), `a["b"]`},
		{"array", Array(a, b), "[a, b]"},
		{"new_call", &NewExpression{Callee: Call(a)}, "new (a())()"},
		{
			"function",
			&FunctionDeclaration{ID: Ident("f"), Params: []Pattern{a}, Body: &BlockStatement{Body: []Stmt{&ReturnStatement{Argument: a}}}},
			"function f(a) {\n  return a;\n}",
		},
		{
			"dangling_else",
			&IfStatement{Test: a, Consequent: &IfStatement{Test: b, Consequent: ExprStmt(c)}, Alternate: ExprStmt(a)},
			"if (a) {\n  if (b) c;\n} else a;",
		},
		{"program", &Program{Body: []Stmt{ExprStmt(a), ExprStmt(b)}}, "a;\nb;"},
		{"empty_block", &BlockStatement{}, "{}"},
		{"new_target", &MetaProperty{Meta: Ident("new"), Property: Ident("target")}, "new.target"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Print(tt.node); got != tt.want {
				t.Errorf("Print() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestChildren(t *testing.T) {
	t.Parallel()

	a, b := Ident("a"), Ident("b")
	call := Call(Ident("f"), a, b)

	var edges []Edge
	for ch := range Children(call) {
		edges = append(edges, ch.Edge)
	}

	if diff := cmp.Diff([]Edge{CallExpression_Callee, CallExpression_Arguments, CallExpression_Arguments}, edges); diff != "" {
		t.Errorf("Children() mismatch (-want +got):\n%s", diff)
	}
}

func TestChildrenHoles(t *testing.T) {
	t.Parallel()

	arr := &ArrayExpression{Elements: []Expr{Ident("a"), nil, Ident("b")}}

	var indices []int
	for ch := range Children(arr) {
		indices = append(indices, ch.Index)
	}

	if diff := cmp.Diff([]int{0, 2}, indices); diff != "" {
		t.Errorf("Children() indices mismatch (-want +got):\n%s", diff)
	}
}

func TestChildrenShorthand(t *testing.T) {
	t.Parallel()

	a := Ident("a")
	prop := &Property{Key: a, Value: a, Kind: "init", Shorthand: true}

	var got []Child
	for ch := range Children(prop) {
		got = append(got, ch)
	}

	if len(got) != 2 || got[0].Node != got[1].Node {
		t.Fatalf("Children(shorthand) = %v, want key and value of the same node", got)
	}

	if got, want := got[0].Edge, Property_Key; got != want {
		t.Errorf("First edge = %v, want %v", got, want)
	}
}

func TestReplace(t *testing.T) {
	t.Parallel()

	a, b := Ident("a"), Ident("b")
	call := Call(Ident("f"), a)

	if !Replace(call, a, b) {
		t.Fatal("Replace() = false, want true")
	}

	if got, want := Print(call), "f(b)"; got != want {
		t.Errorf("Print() = %q, want %q", got, want)
	}

	if Replace(call, a, b) {
		t.Error("Replace() of a removed child = true, want false")
	}

	if Replace(ExprStmt(b), b, &EmptyStatement{}) {
		t.Error("Replace() of an expression with a statement = true, want false")
	}
}

func TestReplaceShorthand(t *testing.T) {
	t.Parallel()

	a := Ident("a")
	prop := &Property{Key: a, Value: a, Kind: "init", Shorthand: true}
	obj := &ObjectExpression{Properties: []Node{prop}}

	if !Replace(prop, a, Ident("x")) {
		t.Fatal("Replace() = false, want true")
	}

	if got, want := Print(ExprStmt(obj)), "({ a: x });"; got != want {
		t.Errorf("Print() = %q, want %q", got, want)
	}
}

func TestPreorder(t *testing.T) {
	t.Parallel()

	prog := &Program{Body: []Stmt{
		ExprStmt(&BinaryExpression{Operator: "+", Left: Ident("a"), Right: Ident("b")}),
		ExprStmt(Ident("c")),
	}}

	var names []string

	for c := range Preorder(prog) {
		if id, ok := c.Node().(*Identifier); ok {
			names = append(names, id.Name)
		}
	}

	if diff := cmp.Diff([]string{"a", "b", "c"}, names); diff != "" {
		t.Errorf("Preorder() mismatch (-want +got):\n%s", diff)
	}
}

func TestCursor(t *testing.T) {
	t.Parallel()

	b := Ident("b")
	stmt := ExprStmt(Call(Ident("f"), Ident("a"), b))
	prog := &Program{Body: []Stmt{stmt}}

	for c := range Preorder(prog) {
		if c.Node() != b {
			continue
		}

		if edge, index := c.ParentEdge(); edge != CallExpression_Arguments || index != 1 {
			t.Errorf("ParentEdge() = %v, %d, want %v, 1", edge, index, CallExpression_Arguments)
		}

		var parents []Node
		for a := range c.Ancestors() {
			parents = append(parents, a.Node())
		}

		if len(parents) != 3 || parents[1] != stmt || parents[2] != prog {
			t.Errorf("Ancestors() = %v, want call, statement and program", parents)
		}

		if !c.Replace(Ident("x")) {
			t.Fatal("Cursor.Replace() = false, want true")
		}
	}

	if got, want := Print(prog), "f(a, x);"; got != want {
		t.Errorf("Print() = %q, want %q", got, want)
	}
}

func TestInspectSkip(t *testing.T) {
	t.Parallel()

	fn := &FunctionExpression{Body: &BlockStatement{Body: []Stmt{ExprStmt(Ident("inner"))}}}
	prog := &Program{Body: []Stmt{ExprStmt(fn), ExprStmt(Ident("outer"))}}

	var names []string

	Inspect(prog, func(c *Cursor) bool {
		switch n := c.Node().(type) {
		case *FunctionExpression:
			return false

		case *Identifier:
			names = append(names, n.Name)
		}

		return true
	})

	if !slices.Equal(names, []string{"outer"}) {
		t.Errorf("Inspect() visited %v, want [outer]", names)
	}
}

func TestEdgeNames(t *testing.T) {
	t.Parallel()

	if got, want := VariableDeclarator_ID.ParentName(), "VariableDeclarator"; got != want {
		t.Errorf("ParentName() = %q, want %q", got, want)
	}

	if got, want := VariableDeclarator_ID.FieldName(), "ID"; got != want {
		t.Errorf("FieldName() = %q, want %q", got, want)
	}

	if got := Invalid.FieldName(); got != "" {
		t.Errorf("Invalid.FieldName() = %q, want empty", got)
	}
}
