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

package scope

import (
	"iter"

	"fillmore-labs.com/jsscope/jsast"
)

// Globals returns the free references of the program: references whose name
// is declared nowhere on their scope chain. Each name is reported once, at its
// first occurrence.
func (t *Tree) Globals() []*jsast.Identifier {
	var (
		globals []*jsast.Identifier
		seen    = make(map[string]struct{})
	)

	for o := range t.GlobalOccurrences() {
		name := o.Ident.Name
		if _, ok := seen[name]; ok {
			continue
		}

		seen[name] = struct{}{}
		globals = append(globals, o.Ident)
	}

	return globals
}

// GlobalOccurrences yields every free reference of the program in source order.
func (t *Tree) GlobalOccurrences() iter.Seq[Occurrence] {
	return func(yield func(Occurrence) bool) {
		for o, s := range t.Occurrences(t.Root()) {
			if !o.IsReference() || t.bound(s, o.Ident.Name) {
				continue
			}

			if !yield(o) {
				return
			}
		}
	}
}

// bound reports whether name resolves from scope s, counting the implicit
// arguments binding of non-arrow functions.
func (t *Tree) bound(s ID, name string) bool {
	if _, ok := t.Resolve(s, name); ok {
		return true
	}

	if name != "arguments" {
		return false
	}

	for s := range t.Chain(s) {
		switch t.scopes[s].anchor.(type) {
		case *jsast.FunctionDeclaration, *jsast.FunctionExpression:
			return true
		}
	}

	return false
}
