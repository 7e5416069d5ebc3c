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
	"slices"

	"fillmore-labs.com/jsscope/jsast"
)

// frame is a node visited by [Tree.walk] with its scope context.
type frame struct {
	node    jsast.Node
	parent  *frame
	edge    jsast.Edge
	scope   ID // the scope the node is located in
	pattern PatternKind
	hoist   bool // bindings below go to the function scope
}

func (f *frame) occurrence() (Occurrence, bool) {
	id, ok := f.node.(*jsast.Identifier)
	if !ok {
		return Occurrence{}, false
	}

	var parent jsast.Node
	if f.parent != nil {
		parent = f.parent.node
	}

	return Occurrence{Ident: id, Parent: parent, Edge: f.edge, Pattern: f.pattern}, true
}

// outside reports whether a child reached through edge is located in the
// scope enclosing its parent's scope: the name of a declaration and the
// discriminant of a switch are not part of the scope they introduce.
func outside(edge jsast.Edge) bool {
	switch edge {
	case jsast.FunctionDeclaration_ID,
		jsast.ClassDeclaration_ID,
		jsast.SwitchStatement_Discriminant:
		return true

	default:
		return false
	}
}

// walk visits the anchor of scope id and all nodes below it in preorder,
// using an explicit stack. The scopes of nodes are found through the scopes
// registered for their ancestors, so visit may register a scope for the node
// it is called with.
func (t *Tree) walk(id ID, visit func(f *frame) bool) {
	start := &frame{node: t.scopes[id].anchor, scope: t.scopes[id].parent}
	t.walkFrom(start, visit)
}

func (t *Tree) walkFrom(start *frame, visit func(f *frame) bool) {
	stack := []*frame{start}

	var children []*frame

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !visit(f) {
			continue
		}

		inner := f.scope
		if s, ok := t.byNode[f.node]; ok {
			inner = s
		}

		children = children[:0]
		for c := range jsast.Children(f.node) {
			child := &frame{
				node:    c.Node,
				parent:  f,
				edge:    c.Edge,
				scope:   inner,
				pattern: nextPattern(f.pattern, c.Edge),
			}

			if outside(c.Edge) {
				child.scope = f.scope
			}

			switch c.Edge {
			case jsast.VariableDeclarator_ID:
				if f.parent != nil {
					decl, ok := f.parent.node.(*jsast.VariableDeclaration)
					child.hoist = ok && decl.Kind == "var"
				}

			case jsast.ObjectPattern_Properties,
				jsast.Property_Value,
				jsast.ArrayPattern_Elements,
				jsast.RestElement_Argument,
				jsast.AssignmentPattern_Left:
				child.hoist = f.hoist
			}

			children = append(children, child)
		}

		slices.Reverse(children)
		stack = append(stack, children...)
	}
}

// Occurrences yields the identifier occurrences below the anchor of scope id
// in source order, together with the scope each occurrence is located in.
func (t *Tree) Occurrences(id ID) iter.Seq2[Occurrence, ID] {
	return func(yield func(Occurrence, ID) bool) {
		done := false

		t.walk(id, func(f *frame) bool {
			if done {
				return false
			}

			if o, ok := f.occurrence(); ok && !yield(o, f.scope) {
				done = true
			}

			return !done
		})
	}
}
