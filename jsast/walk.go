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

package jsast

import (
	"iter"
	"slices"
)

// Cursor is a position in a traversal: a node together with its parent and
// the slot it occupies there.
type Cursor struct {
	node     Node
	parent   *Cursor
	edge     Edge
	index    int
	replaced bool
}

// Node returns the node at the cursor.
func (c *Cursor) Node() Node { return c.node }

// Parent returns the cursor of the parent node, nil at the root.
func (c *Cursor) Parent() *Cursor { return c.parent }

// ParentNode returns the parent node, nil at the root.
func (c *Cursor) ParentNode() Node {
	if c.parent == nil {
		return nil
	}

	return c.parent.node
}

// ParentEdge returns the slot the node occupies in its parent and the index
// within list fields (-1 otherwise).
func (c *Cursor) ParentEdge() (Edge, int) { return c.edge, c.index }

// Ancestors yields the cursors of the enclosing nodes, innermost first.
func (c *Cursor) Ancestors() iter.Seq[*Cursor] {
	return func(yield func(*Cursor) bool) {
		for p := c.parent; p != nil; p = p.parent {
			if !yield(p) {
				return
			}
		}
	}
}

// Replace substitutes the node at the cursor with n in the parent node.
//
// The slot is located by node identity, so statements inserted before the
// node since it was visited do not affect the replacement. The subtree of the
// replacement is not visited.
func (c *Cursor) Replace(n Node) bool {
	if c.parent == nil || !Replace(c.parent.node, c.node, n) {
		return false
	}

	c.node, c.replaced = n, true

	return true
}

// Inspect traverses the tree rooted at root in depth-first preorder, calling f
// for each node. If f returns false, the children of that node are skipped.
//
// Traversal uses an explicit stack, so deeply nested trees do not grow the
// call stack.
func Inspect(root Node, f func(c *Cursor) bool) {
	if root == nil {
		return
	}

	stack := []*Cursor{{node: root, index: -1}}

	var children []*Cursor

	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !f(c) || c.replaced {
			continue
		}

		children = children[:0]
		for ch := range Children(c.node) {
			children = append(children, &Cursor{node: ch.Node, parent: c, edge: ch.Edge, index: ch.Index})
		}

		slices.Reverse(children)
		stack = append(stack, children...)
	}
}

// Preorder yields the cursors of all nodes of the tree rooted at root in
// depth-first preorder.
func Preorder(root Node) iter.Seq[*Cursor] {
	return func(yield func(*Cursor) bool) {
		done := false

		Inspect(root, func(c *Cursor) bool {
			if done {
				return false
			}

			if !yield(c) {
				done = true
				return false
			}

			return true
		})
	}
}
