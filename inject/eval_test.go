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

package inject_test

import (
	"testing"

	"github.com/dop251/goja"

	. "fillmore-labs.com/jsscope/inject"
	"fillmore-labs.com/jsscope/internal/testsource"
	"fillmore-labs.com/jsscope/jsast"
	"fillmore-labs.com/jsscope/scope"
)

func TestEvaluate(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name  string
		src   string
		build func(in *Injector, id scope.ID, it *jsast.Identifier) (*jsast.CallExpression, error)
		check func(tb testing.TB, v goja.Value)
	}{
		{
			name: "has_own_property",
			src:  `var IT = {is: 1, hasOwnProperty: null}; IT;`,
			build: func(in *Injector, id scope.ID, it *jsast.Identifier) (*jsast.CallExpression, error) {
				return in.CallHasOwnProperty(id, it, "is")
			},
			check: func(tb testing.TB, v goja.Value) {
				tb.Helper()

				if !v.ToBoolean() {
					tb.Errorf("Got %v, want true", v)
				}
			},
		},
		{
			name: "get_own_property_descriptor",
			src:  `var IT = {is: 2}; IT.value;`,
			build: func(in *Injector, id scope.ID, it *jsast.Identifier) (*jsast.CallExpression, error) {
				return in.CallGetOwnPropertyDescriptor(id, it, "is")
			},
			check: func(tb testing.TB, v goja.Value) {
				tb.Helper()

				if got, want := v.ToInteger(), int64(2); got != want {
					tb.Errorf("Got %d, want %d", got, want)
				}
			},
		},
		{
			name: "get_prototype_of",
			src:  `var IT = []; Array.prototype === IT;`,
			build: func(in *Injector, id scope.ID, it *jsast.Identifier) (*jsast.CallExpression, error) {
				return in.CallGetPrototypeOf(id, it)
			},
			check: func(tb testing.TB, v goja.Value) {
				tb.Helper()

				if !v.ToBoolean() {
					tb.Errorf("Got %v, want true", v)
				}
			},
		},
		{
			name: "array_slice",
			src:  `var IT = [1, 2, 3, 4]; JSON.stringify(IT);`,
			build: func(in *Injector, id scope.ID, it *jsast.Identifier) (*jsast.CallExpression, error) {
				return in.CallArraySlice(id, it, jsast.Number(1), jsast.Number(3))
			},
			check: func(tb testing.TB, v goja.Value) {
				tb.Helper()

				if got, want := v.String(), "[2,3]"; got != want {
					tb.Errorf("Got %s, want %s", got, want)
				}
			},
		},
		{
			name: "function_bind_list",
			src:  `function IT(a, b) { return this.x + a + b; } var o = {x: 1}; IT(3);`,
			build: func(in *Injector, id scope.ID, it *jsast.Identifier) (*jsast.CallExpression, error) {
				return in.CallFunctionBind(id, it, jsast.Ident("o"), ArgList{jsast.Number(2)})
			},
			check: func(tb testing.TB, v goja.Value) {
				tb.Helper()

				if got, want := v.ToInteger(), int64(6); got != want {
					tb.Errorf("Got %d, want %d", got, want)
				}
			},
		},
		{
			name: "function_bind_array",
			src:  `function IT(a, b) { return this.x + a + b; } var o = {x: 1}, args = [2]; IT(3);`,
			build: func(in *Injector, id scope.ID, it *jsast.Identifier) (*jsast.CallExpression, error) {
				return in.CallFunctionBind(id, it, jsast.Ident("o"), ArgArray{jsast.Ident("args")})
			},
			check: func(tb testing.TB, v goja.Value) {
				tb.Helper()

				if got, want := v.ToInteger(), int64(6); got != want {
					tb.Errorf("Got %d, want %d", got, want)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			prog, tree := testsource.Parse(t, tt.src)
			in := New(tree)

			replaceIT(t, tree, func(id scope.ID, it *jsast.Identifier) (jsast.Expr, error) {
				return tt.build(in, id, it)
			})

			src := jsast.Print(prog)

			v, err := goja.New().RunString(src)
			if err != nil {
				t.Fatalf("Failed to run %q: %v", src, err)
			}

			tt.check(t, v)
		})
	}
}
