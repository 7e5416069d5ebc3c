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

	"fillmore-labs.com/jsscope/internal/testsource"
	"fillmore-labs.com/jsscope/jsast"
	. "fillmore-labs.com/jsscope/scope"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name string
		src  string
		want Role
	}{
		{"var_declaration", `var IT;`, Binding},
		{"let_declaration", `let IT = 1;`, Binding},
		{"statement", `IT;`, Reference},
		{"member_object", `IT.foo;`, Reference},
		{"member_property", `foo.IT;`, Neither},
		{"computed_member_property", `foo[IT];`, Reference},
		{"parameter", `function foo(IT) {}`, Binding},
		{"arrow_parameter", `(IT) => 1;`, Binding},
		{"default_value", `function foo(a = IT) {}`, Reference},
		{"catch_parameter", `try {} catch (IT) {}`, Binding},
		{"argument", `foo(IT);`, Reference},
		{"property_key", `({IT: 1});`, Neither},
		{"computed_property_key", `({[IT]: 1});`, Reference},
		{"property_value", `({a: IT});`, Reference},
		{"shorthand_property_key", `({IT});`, Neither},
		{"label", `IT: for (;;) { break IT; }`, Neither},
		{"label_body", `a: IT;`, Reference},
		{"label_same_name", `IT: IT;`, Neither},
		{"class_declaration", `class IT {}`, Binding},
		{"class_expression", `(class IT {});`, Binding},
		{"method_key", `class A { IT() {} }`, Neither},
		{"function_declaration", `function IT() {}`, Binding},
		{"function_expression", `(function IT() {});`, Binding},
		{"superclass", `class A extends IT {}`, Reference},
		{"object_pattern_key", `var {IT} = o;`, Neither},
		{"object_pattern_value_declaration", `var {a: IT} = o;`, Binding},
		{"object_pattern_assignment", `({a: IT} = o);`, Reference},
		{"array_pattern_declaration", `var [a, IT] = o;`, Binding},
		{"array_pattern_assignment", `[a, IT] = o;`, Reference},
		{"rest_declaration", `var [...IT] = o;`, Binding},
		{"pattern_default_value", `var {a = IT} = o;`, Reference},
		{"for_in_declaration", `for (var IT in o);`, Binding},
		{"for_in_assignment", `for (IT in o);`, Reference},
		{"assignment", `IT = 1;`, Reference},
		{"update", `IT++;`, Reference},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, tree := testsource.Parse(t, tt.src)
			o, _ := testsource.Find(t, tree, testsource.IT)

			if got := Classify(o); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.src, got, tt.want)
			}

			if got, want := o.IsReference(), tt.want == Reference; got != want {
				t.Errorf("IsReference(%q) = %t, want %t", tt.src, got, want)
			}
		})
	}
}

func TestClassifyModules(t *testing.T) {
	t.Parallel()

	str := jsast.String("mod")

	tests := [...]struct {
		name string
		stmt jsast.Stmt
		want Role
	}{
		{
			name: "import_specifier",
			stmt: &jsast.ImportDeclaration{
				Specifiers: []jsast.Node{&jsast.ImportSpecifier{Imported: jsast.Ident("a"), Local: jsast.Ident(testsource.IT)}},
				Source:     str,
			},
			want: Neither,
		},
		{
			name: "import_default",
			stmt: &jsast.ImportDeclaration{
				Specifiers: []jsast.Node{&jsast.ImportDefaultSpecifier{Local: jsast.Ident(testsource.IT)}},
				Source:     str,
			},
			want: Neither,
		},
		{
			name: "import_namespace",
			stmt: &jsast.ImportDeclaration{
				Specifiers: []jsast.Node{&jsast.ImportNamespaceSpecifier{Local: jsast.Ident(testsource.IT)}},
				Source:     str,
			},
			want: Neither,
		},
		{
			name: "export_default",
			stmt: &jsast.ExportDefaultDeclaration{Declaration: jsast.Ident(testsource.IT)},
			want: Reference,
		},
		{
			name: "export_local",
			stmt: &jsast.ExportNamedDeclaration{
				Specifiers: []*jsast.ExportSpecifier{{Local: jsast.Ident(testsource.IT), Exported: jsast.Ident("b")}},
			},
			want: Reference,
		},
		{
			name: "export_exported",
			stmt: &jsast.ExportNamedDeclaration{
				Specifiers: []*jsast.ExportSpecifier{{Local: jsast.Ident("a"), Exported: jsast.Ident(testsource.IT)}},
			},
			want: Neither,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tree := Analyze(&jsast.Program{Body: []jsast.Stmt{tt.stmt}})
			o, _ := testsource.Find(t, tree, testsource.IT)

			if got := Classify(o); got != tt.want {
				t.Errorf("Classify(%s) = %v, want %v", jsast.Print(tt.stmt), got, tt.want)
			}
		})
	}
}

func TestShorthandSlots(t *testing.T) {
	t.Parallel()

	_, tree := testsource.Parse(t, `({IT});`)

	var roles []Role

	for o := range tree.Occurrences(tree.Root()) {
		if o.Ident.Name == testsource.IT {
			roles = append(roles, o.Role())
		}
	}

	if len(roles) != 2 || roles[0] != Neither || roles[1] != Reference {
		t.Errorf("Roles of shorthand property = %v, want [Neither Reference]", roles)
	}
}

func TestLabelSlots(t *testing.T) {
	t.Parallel()

	_, tree := testsource.Parse(t, `IT: IT;`)

	var roles []Role

	for o := range tree.Occurrences(tree.Root()) {
		if o.Ident.Name == testsource.IT {
			roles = append(roles, o.Role())
		}
	}

	if len(roles) != 2 || roles[0] != Neither || roles[1] != Reference {
		t.Errorf("Roles of label and body = %v, want [Neither Reference]", roles)
	}
}

func TestMetaPropertySlots(t *testing.T) {
	t.Parallel()

	_, tree := testsource.Parse(t, `function F() { return new.target; }`)

	roles := make(map[string]Role)

	for o := range tree.Occurrences(tree.Root()) {
		roles[o.Ident.Name] = Classify(o)
	}

	for _, name := range [...]string{"new", "target"} {
		if got, ok := roles[name]; !ok || got != Neither {
			t.Errorf("Classify(%s) = %v, want %v", name, got, Neither)
		}
	}
}

func TestIsReferenceTo(t *testing.T) {
	t.Parallel()

	_, tree := testsource.Parse(t, `IT;`)
	o, _ := testsource.Find(t, tree, testsource.IT)

	if !o.IsReferenceTo(testsource.IT) {
		t.Errorf("IsReferenceTo(%q) = false, want true", testsource.IT)
	}

	if o.IsReferenceTo("a") {
		t.Error(`IsReferenceTo("a") = true, want false`)
	}
}
