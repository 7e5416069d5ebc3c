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

package astutil

import (
	"iter"

	"fillmore-labs.com/jsscope/jsast"
)

// DeclaredNames yields the identifiers bound by a binding pattern, in source
// order. Default values and computed keys are not part of the target and are skipped.
func DeclaredNames(p jsast.Node) iter.Seq[*jsast.Identifier] {
	return func(yield func(*jsast.Identifier) bool) {
		stack := []jsast.Node{p}

		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			switch n := n.(type) {
			case *jsast.Identifier:
				if !yield(n) {
					return
				}

			case *jsast.ObjectPattern:
				for i := len(n.Properties) - 1; i >= 0; i-- {
					switch prop := n.Properties[i].(type) {
					case *jsast.Property:
						stack = append(stack, prop.Value)

					case *jsast.RestElement:
						stack = append(stack, prop.Argument)
					}
				}

			case *jsast.ArrayPattern:
				for i := len(n.Elements) - 1; i >= 0; i-- {
					if n.Elements[i] != nil {
						stack = append(stack, n.Elements[i])
					}
				}

			case *jsast.AssignmentPattern:
				stack = append(stack, n.Left)

			case *jsast.RestElement:
				stack = append(stack, n.Argument)
			}
		}
	}
}

// DeclarationNames yields all identifiers declared by a variable declaration.
func DeclarationNames(d *jsast.VariableDeclaration) iter.Seq[*jsast.Identifier] {
	return func(yield func(*jsast.Identifier) bool) {
		for _, decl := range d.Declarations {
			for id := range DeclaredNames(decl.ID) {
				if !yield(id) {
					return
				}
			}
		}
	}
}
