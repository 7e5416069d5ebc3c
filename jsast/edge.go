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

import "strings"

//go:generate go tool stringer -type=Edge

// Edge identifies the slot of a parent node a child occupies, named
// ParentType_Field. Together with the parent node it is the structural
// context of an occurrence.
type Edge uint8

const (
	Invalid Edge = iota
	Program_Body
	TemplateLiteral_Expressions
	TaggedTemplateExpression_Tag
	TaggedTemplateExpression_Quasi
	ArrayExpression_Elements
	ObjectExpression_Properties
	Property_Key
	Property_Value
	SpreadElement_Argument
	FunctionExpression_ID
	FunctionExpression_Params
	FunctionExpression_Body
	ArrowFunctionExpression_Params
	ArrowFunctionExpression_Body
	ClassExpression_ID
	ClassExpression_SuperClass
	ClassExpression_Body
	UnaryExpression_Argument
	UpdateExpression_Argument
	BinaryExpression_Left
	BinaryExpression_Right
	AssignmentExpression_Left
	AssignmentExpression_Right
	ConditionalExpression_Test
	ConditionalExpression_Consequent
	ConditionalExpression_Alternate
	CallExpression_Callee
	CallExpression_Arguments
	NewExpression_Callee
	NewExpression_Arguments
	MemberExpression_Object
	MemberExpression_Property
	MetaProperty_Meta
	MetaProperty_Property
	SequenceExpression_Expressions
	YieldExpression_Argument
	AwaitExpression_Argument
	ObjectPattern_Properties
	ArrayPattern_Elements
	AssignmentPattern_Left
	AssignmentPattern_Right
	RestElement_Argument
	MethodDefinition_Key
	MethodDefinition_Value
	PropertyDefinition_Key
	PropertyDefinition_Value
	StaticBlock_Body
	ExpressionStatement_Expression
	BlockStatement_Body
	WithStatement_Object
	WithStatement_Body
	ReturnStatement_Argument
	LabeledStatement_Label
	LabeledStatement_Body
	BreakStatement_Label
	ContinueStatement_Label
	IfStatement_Test
	IfStatement_Consequent
	IfStatement_Alternate
	SwitchStatement_Discriminant
	SwitchStatement_Cases
	SwitchCase_Test
	SwitchCase_Consequent
	ThrowStatement_Argument
	TryStatement_Block
	TryStatement_Handler
	TryStatement_Finalizer
	CatchClause_Param
	CatchClause_Body
	WhileStatement_Test
	WhileStatement_Body
	DoWhileStatement_Body
	DoWhileStatement_Test
	ForStatement_Init
	ForStatement_Test
	ForStatement_Update
	ForStatement_Body
	ForInStatement_Left
	ForInStatement_Right
	ForInStatement_Body
	ForOfStatement_Left
	ForOfStatement_Right
	ForOfStatement_Body
	FunctionDeclaration_ID
	FunctionDeclaration_Params
	FunctionDeclaration_Body
	VariableDeclaration_Declarations
	VariableDeclarator_ID
	VariableDeclarator_Init
	ClassDeclaration_ID
	ClassDeclaration_SuperClass
	ClassDeclaration_Body
	ImportDeclaration_Specifiers
	ImportDeclaration_Source
	ImportSpecifier_Imported
	ImportSpecifier_Local
	ImportDefaultSpecifier_Local
	ImportNamespaceSpecifier_Local
	ExportDefaultDeclaration_Declaration
	ExportNamedDeclaration_Declaration
	ExportNamedDeclaration_Specifiers
	ExportNamedDeclaration_Source
	ExportSpecifier_Local
	ExportSpecifier_Exported
)

// FieldName returns the name of the parent field, e.g. "ID" for [VariableDeclarator_ID].
func (e Edge) FieldName() string {
	if e == Invalid {
		return ""
	}

	s := e.String()
	_, field, _ := strings.Cut(s, "_")

	return field
}

// ParentName returns the parent node type name, e.g. "VariableDeclarator" for [VariableDeclarator_ID].
func (e Edge) ParentName() string {
	if e == Invalid {
		return ""
	}

	s := e.String()
	parent, _, _ := strings.Cut(s, "_")

	return parent
}
