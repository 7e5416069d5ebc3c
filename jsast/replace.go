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

// Replace substitutes the child old of parent with n. The slot is found by
// node identity, not by position.
//
// It reports false when old is not a child of parent or n does not fit the
// slot (for example a statement in an expression slot).
func Replace(parent, old, n Node) bool {
	if old == nil || n == nil {
		return false
	}

	switch p := parent.(type) {
	// keep-sorted start newline_separated=yes
	case *ArrayExpression:
		return swapIn(p.Elements, old, n)

	case *ArrayPattern:
		return swapIn(p.Elements, old, n)

	case *ArrowFunctionExpression:
		return swapIn(p.Params, old, n) || swap(&p.Body, old, n)

	case *AssignmentExpression:
		return swap(&p.Left, old, n) || swap(&p.Right, old, n)

	case *AssignmentPattern:
		return swap(&p.Left, old, n) || swap(&p.Right, old, n)

	case *AwaitExpression:
		return swap(&p.Argument, old, n)

	case *BinaryExpression:
		return swap(&p.Left, old, n) || swap(&p.Right, old, n)

	case *BlockStatement:
		return swapIn(p.Body, old, n)

	case *CallExpression:
		return swap(&p.Callee, old, n) || swapIn(p.Arguments, old, n)

	case *CatchClause:
		return swap(&p.Param, old, n) || swap(&p.Body, old, n)

	case *ClassDeclaration:
		return swap(&p.SuperClass, old, n) || swapIn(p.Body, old, n)

	case *ClassExpression:
		return swap(&p.SuperClass, old, n) || swapIn(p.Body, old, n)

	case *ConditionalExpression:
		return swap(&p.Test, old, n) || swap(&p.Consequent, old, n) || swap(&p.Alternate, old, n)

	case *DoWhileStatement:
		return swap(&p.Body, old, n) || swap(&p.Test, old, n)

	case *ExportDefaultDeclaration:
		return swap(&p.Declaration, old, n)

	case *ExportNamedDeclaration:
		return swap(&p.Declaration, old, n)

	case *ExpressionStatement:
		return swap(&p.Expression, old, n)

	case *ForInStatement:
		return swap(&p.Left, old, n) || swap(&p.Right, old, n) || swap(&p.Body, old, n)

	case *ForOfStatement:
		return swap(&p.Left, old, n) || swap(&p.Right, old, n) || swap(&p.Body, old, n)

	case *ForStatement:
		return swap(&p.Init, old, n) || swap(&p.Test, old, n) || swap(&p.Update, old, n) || swap(&p.Body, old, n)

	case *FunctionDeclaration:
		return swapIn(p.Params, old, n) || swap(&p.Body, old, n)

	case *FunctionExpression:
		return swapIn(p.Params, old, n) || swap(&p.Body, old, n)

	case *IfStatement:
		return swap(&p.Test, old, n) || swap(&p.Consequent, old, n) || swap(&p.Alternate, old, n)

	case *LabeledStatement:
		return swap(&p.Body, old, n)

	case *MemberExpression:
		return swap(&p.Object, old, n) || swap(&p.Property, old, n)

	case *MethodDefinition:
		return swap(&p.Key, old, n) || swap(&p.Value, old, n)

	case *NewExpression:
		return swap(&p.Callee, old, n) || swapIn(p.Arguments, old, n)

	case *ObjectExpression:
		return swapIn(p.Properties, old, n)

	case *ObjectPattern:
		return swapIn(p.Properties, old, n)

	case *Program:
		return swapIn(p.Body, old, n)

	case *Property:
		return swapProperty(p, old, n)

	case *PropertyDefinition:
		return swap(&p.Key, old, n) || swap(&p.Value, old, n)

	case *RestElement:
		return swap(&p.Argument, old, n)

	case *ReturnStatement:
		return swap(&p.Argument, old, n)

	case *SequenceExpression:
		return swapIn(p.Expressions, old, n)

	case *SpreadElement:
		return swap(&p.Argument, old, n)

	case *StaticBlock:
		return swapIn(p.Body, old, n)

	case *SwitchCase:
		return swap(&p.Test, old, n) || swapIn(p.Consequent, old, n)

	case *SwitchStatement:
		return swap(&p.Discriminant, old, n)

	case *TaggedTemplateExpression:
		return swap(&p.Tag, old, n)

	case *TemplateLiteral:
		return swapIn(p.Expressions, old, n)

	case *ThrowStatement:
		return swap(&p.Argument, old, n)

	case *TryStatement:
		return swap(&p.Block, old, n) || swap(&p.Finalizer, old, n)

	case *UnaryExpression:
		return swap(&p.Argument, old, n)

	case *UpdateExpression:
		return swap(&p.Argument, old, n)

	case *VariableDeclarator:
		return swap(&p.ID, old, n) || swap(&p.Init, old, n)

	case *WhileStatement:
		return swap(&p.Test, old, n) || swap(&p.Body, old, n)

	case *WithStatement:
		return swap(&p.Object, old, n) || swap(&p.Body, old, n)

	case *YieldExpression:
		return swap(&p.Argument, old, n)

		// keep-sorted end
	}

	return false
}

// swap replaces *slot with n when *slot is old and n has the slot's type.
func swap[T Node](slot *T, old, n Node) bool {
	if Node(*slot) != old {
		return false
	}

	v, ok := n.(T)
	if !ok {
		return false
	}

	*slot = v

	return true
}

// swapIn replaces the element old of list with n.
func swapIn[T Node](list []T, old, n Node) bool {
	for i := range list {
		if swap(&list[i], old, n) {
			return true
		}
	}

	return false
}

// swapProperty keeps shorthand properties consistent: replacing the shared
// key and value node turns the property into a keyed one.
func swapProperty(p *Property, old, n Node) bool {
	if p.Shorthand && Node(p.Key) == old && p.Value == old {
		if _, ok := n.(Expr); !ok {
			return false
		}

		p.Value, p.Shorthand = n, false

		return true
	}

	return swap(&p.Key, old, n) || swap(&p.Value, old, n)
}
