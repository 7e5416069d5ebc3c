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

// Package scope analyzes the lexical scopes of a JavaScript program.
//
// [Analyze] builds a [Tree] of scopes for a [jsast.Program]. The tree answers
// whether an identifier occurrence is a binding or a reference ([Classify]),
// whether a name is still available in a scope ([Tree.IsFree]) and which names
// are used without declaration ([Tree.Globals]).
//
// Scopes are records in an arena addressed by [ID] handles. A record knows its
// parent, the node it is anchored to and the names declared in it; children
// are found by walking the anchor node.
package scope

import (
	"iter"
	"maps"
	"slices"

	"fillmore-labs.com/jsscope/jsast"
)

// ID is a handle of a scope in a [Tree].
type ID int32

// Invalid is the parent of the program scope.
const Invalid ID = -1

//go:generate go tool stringer -type=Kind

// Kind is the syntactic construct introducing a scope.
type Kind uint8

const (
	// Program is the top-level scope.
	Program Kind = iota

	// Function is the scope of a function, arrow function or class static block.
	Function

	// Catch is the scope of a catch clause, holding the parameter and the body.
	Catch

	// Block is the scope of a block statement.
	Block

	// For is the scope of a for, for-in or for-of head.
	For

	// Switch is the scope of the cases of a switch statement.
	Switch

	// Class is the scope holding the name of a named class expression.
	Class
)

// Tree is the scope tree of a program.
//
// A Tree is not safe for concurrent mutation.
type Tree struct {
	program *jsast.Program
	scopes  []record
	byNode  map[jsast.Node]ID
}

type record struct {
	kind     Kind
	parent   ID
	anchor   jsast.Node
	declared map[string]struct{}
	strict   bool

	// shared caches identifiers of shared injections by key.
	shared map[string]*jsast.Identifier

	// sharedDecls and plainDecls are the declarations injected into this scope.
	sharedDecls []jsast.Stmt
	plainDecls  []jsast.Stmt
}

// Program returns the analyzed program.
func (t *Tree) Program() *jsast.Program { return t.program }

// Root returns the program scope.
func (t *Tree) Root() ID { return 0 }

// Len returns the number of scopes.
func (t *Tree) Len() int { return len(t.scopes) }

// Valid reports whether id denotes a scope of this tree.
func (t *Tree) Valid(id ID) bool { return id >= 0 && int(id) < len(t.scopes) }

// Kind returns the kind of the scope.
func (t *Tree) Kind(id ID) Kind { return t.scopes[id].kind }

// Parent returns the enclosing scope, [Invalid] for the program scope.
func (t *Tree) Parent(id ID) ID { return t.scopes[id].parent }

// Anchor returns the node introducing the scope.
func (t *Tree) Anchor(id ID) jsast.Node { return t.scopes[id].anchor }

// ScopeOf returns the scope introduced by node n.
func (t *Tree) ScopeOf(n jsast.Node) (ID, bool) {
	id, ok := t.byNode[n]

	return id, ok
}

// Declares reports whether name is declared in the scope itself.
func (t *Tree) Declares(id ID, name string) bool {
	_, ok := t.scopes[id].declared[name]

	return ok
}

// Names returns the names declared in the scope, sorted.
func (t *Tree) Names(id ID) []string {
	return slices.Sorted(maps.Keys(t.scopes[id].declared))
}

// Declare adds name to the declared names of the scope.
//
// Callers removing declarations from the tree are responsible for the
// bookkeeping; stale names make the scope overly conservative, never unsafe.
func (t *Tree) Declare(id ID, name string) {
	r := &t.scopes[id]
	if r.declared == nil {
		r.declared = make(map[string]struct{})
	}

	r.declared[name] = struct{}{}
}

// Chain yields the scope and its ancestors up to the program scope, innermost first.
func (t *Tree) Chain(id ID) iter.Seq[ID] {
	return func(yield func(ID) bool) {
		for s := id; s != Invalid; s = t.scopes[s].parent {
			if !yield(s) {
				return
			}
		}
	}
}

// Children yields the scopes directly enclosed by the scope, in source order.
func (t *Tree) Children(id ID) iter.Seq[ID] {
	return func(yield func(ID) bool) {
		for i := id + 1; int(i) < len(t.scopes); i++ {
			if t.scopes[i].parent == id && !yield(i) {
				return
			}
		}
	}
}

// Resolve finds the scope declaring name, walking outward from id.
func (t *Tree) Resolve(id ID, name string) (ID, bool) {
	for s := range t.Chain(id) {
		if t.Declares(s, name) {
			return s, true
		}
	}

	return Invalid, false
}

// Shadowing returns the nearest enclosing scope declaring a name that the
// scope itself redeclares.
func (t *Tree) Shadowing(id ID, name string) (ID, bool) {
	if !t.Declares(id, name) {
		return Invalid, false
	}

	return t.Resolve(t.scopes[id].parent, name)
}

// FunctionScope returns the nearest function or program scope enclosing id,
// which receives hoisted var declarations.
func (t *Tree) FunctionScope(id ID) ID {
	for s := range t.Chain(id) {
		switch t.scopes[s].kind {
		case Program, Function:
			return s
		}
	}

	return t.Root()
}

// Strict reports whether the code of the scope is strict mode code.
func (t *Tree) Strict(id ID) bool { return t.scopes[id].strict }

// Shared returns the identifier cached for a shared injection under key.
func (t *Tree) Shared(id ID, key string) (*jsast.Identifier, bool) {
	ident, ok := t.scopes[id].shared[key]

	return ident, ok
}

// StoreShared caches the identifier of a shared injection under key.
func (t *Tree) StoreShared(id ID, key string, ident *jsast.Identifier) {
	r := &t.scopes[id]
	if r.shared == nil {
		r.shared = make(map[string]*jsast.Identifier)
	}

	r.shared[key] = ident
}

// Injected returns the declarations injected into the scope: shared
// declarations first, then plain ones.
func (t *Tree) Injected(id ID) (shared, plain []jsast.Stmt) {
	r := &t.scopes[id]

	return r.sharedDecls, r.plainDecls
}

// SetInjected records the declarations injected into the scope.
func (t *Tree) SetInjected(id ID, shared, plain []jsast.Stmt) {
	r := &t.scopes[id]
	r.sharedDecls, r.plainDecls = shared, plain
}

func (t *Tree) newScope(kind Kind, parent ID, anchor jsast.Node) ID {
	id := ID(len(t.scopes))
	strict := parent != Invalid && t.scopes[parent].strict || useStrict(anchor)
	t.scopes = append(t.scopes, record{kind: kind, parent: parent, anchor: anchor, strict: strict})
	t.byNode[anchor] = id

	return id
}

// useStrict reports whether the body of anchor starts strict mode code: a
// "use strict" directive, or module syntax at the top level.
func useStrict(anchor jsast.Node) bool {
	var body []jsast.Stmt

	switch n := anchor.(type) {
	case *jsast.Program:
		for _, s := range n.Body {
			switch s.(type) {
			case *jsast.ImportDeclaration, *jsast.ExportNamedDeclaration, *jsast.ExportDefaultDeclaration:
				return true
			}
		}

		body = n.Body

	case *jsast.FunctionDeclaration:
		body = n.Body.Body

	case *jsast.FunctionExpression:
		body = n.Body.Body

	case *jsast.ArrowFunctionExpression:
		b, ok := n.Body.(*jsast.BlockStatement)
		if !ok {
			return false
		}

		body = b.Body

	default:
		return false
	}

	for _, s := range body {
		e, ok := s.(*jsast.ExpressionStatement)
		if !ok || e.Directive == "" {
			return false
		}

		if e.Directive == "use strict" {
			return true
		}
	}

	return false
}
