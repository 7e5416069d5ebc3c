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

// Package testsource provides utilities for parsing and analyzing JavaScript
// source fragments in tests.
//
// Fragments mark the position of interest with the identifier [IT]; [Find]
// locates it together with the scope it is located in.
package testsource

import (
	"testing"

	"fillmore-labs.com/jsscope/jsast"
	"fillmore-labs.com/jsscope/parse"
	"fillmore-labs.com/jsscope/scope"
)

// IT is the marker identifier used by test fragments.
const IT = "IT"

// Parse parses a JavaScript source fragment and analyzes its scopes.
func Parse(tb testing.TB, src string) (*jsast.Program, *scope.Tree) {
	tb.Helper()

	const filename = "test.js"

	prog, err := parse.Program(filename, src)
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	return prog, scope.Analyze(prog)
}

// Find returns the first occurrence of name in the program and the scope it
// is located in.
func Find(tb testing.TB, tree *scope.Tree, name string) (scope.Occurrence, scope.ID) {
	tb.Helper()

	for o, s := range tree.Occurrences(tree.Root()) {
		if o.Ident.Name == name {
			return o, s
		}
	}

	tb.Fatalf("Can't find %s", name)

	return scope.Occurrence{}, scope.Invalid
}

// FindStatement returns the statement of the program body containing the
// first occurrence of name, with its scope.
func FindStatement(tb testing.TB, tree *scope.Tree, name string) (*jsast.Cursor, scope.ID) {
	tb.Helper()

	_, s := Find(tb, tree, name)

	for c := range jsast.Preorder(tree.Program()) {
		id, ok := c.Node().(*jsast.Identifier)
		if !ok || id.Name != name {
			continue
		}

		for a := range c.Ancestors() {
			if _, ok := a.Node().(jsast.Stmt); ok {
				return a, s
			}
		}
	}

	tb.Fatalf("Can't find statement containing %s", name)

	return nil, scope.Invalid
}
