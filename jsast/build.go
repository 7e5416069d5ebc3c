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
	"strconv"
	"strings"
)

// Ident returns a new identifier node.
func Ident(name string) *Identifier { return &Identifier{Name: name} }

// String returns a string literal.
func String(s string) *Literal { return &Literal{Kind: LitString, Value: s} }

// Number returns a numeric literal.
func Number(f float64) *Literal {
	return &Literal{Kind: LitNumber, Value: strconv.FormatFloat(f, 'g', -1, 64)}
}

// Bool returns true or false.
func Bool(b bool) *Literal { return &Literal{Kind: LitBoolean, Value: strconv.FormatBool(b)} }

// Null returns the null literal.
func Null() *Literal { return &Literal{Kind: LitNull, Value: "null"} }

// This returns a this expression.
func This() *ThisExpression { return &ThisExpression{} }

// Member returns object.name.
func Member(object Expr, name string) *MemberExpression {
	return &MemberExpression{Object: object, Property: Ident(name)}
}

// Index returns object[property].
func Index(object, property Expr) *MemberExpression {
	return &MemberExpression{Object: object, Property: property, Computed: true}
}

// Path returns the member chain for a dotted path like "Object.prototype.hasOwnProperty".
func Path(dotted string) Expr {
	head, rest, more := strings.Cut(dotted, ".")

	var e Expr = Ident(head)
	for more {
		head, rest, more = strings.Cut(rest, ".")
		e = Member(e, head)
	}

	return e
}

// Call returns callee(args...).
func Call(callee Expr, args ...Expr) *CallExpression {
	return &CallExpression{Callee: callee, Arguments: args}
}

// Array returns [elements...].
func Array(elements ...Expr) *ArrayExpression {
	return &ArrayExpression{Elements: elements}
}

// ExprStmt wraps an expression into a statement.
func ExprStmt(e Expr) *ExpressionStatement {
	return &ExpressionStatement{Expression: e}
}

// Declare returns a single-declarator declaration kind id = init; init may be nil.
func Declare(kind string, id Pattern, init Expr) *VariableDeclaration {
	return &VariableDeclaration{
		Kind:         kind,
		Declarations: []*VariableDeclarator{{ID: id, Init: init}},
	}
}
