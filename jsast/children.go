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

import "iter"

// Child is a direct child of a node together with the slot it occupies.
type Child struct {
	Edge  Edge
	Index int // position in a list field, -1 for single-valued fields
	Node  Node
}

// Children yields the direct children of n in source order. Absent optional
// children and array holes are skipped.
//
// In a shorthand [Property] the key and value are the same node, which is
// yielded twice: once through [Property_Key] and once through [Property_Value].
func Children(n Node) iter.Seq[Child] {
	return func(yield func(Child) bool) {
		eachChild(n, emitter(yield))
	}
}

type emitter func(Child) bool

func (y emitter) one(e Edge, n Node) bool {
	if n == nil {
		return true
	}

	return y(Child{Edge: e, Index: -1, Node: n})
}

func many[T Node](y emitter, e Edge, l []T) bool {
	for i, c := range l {
		if Node(c) == nil {
			continue
		}

		if !y(Child{Edge: e, Index: i, Node: c}) {
			return false
		}
	}

	return true
}

func ident(id *Identifier) Node {
	if id == nil {
		return nil
	}

	return id
}

func block(b *BlockStatement) Node {
	if b == nil {
		return nil
	}

	return b
}

func literal(l *Literal) Node {
	if l == nil {
		return nil
	}

	return l
}

func eachChild(n Node, y emitter) {
	switch n := n.(type) {
	// keep-sorted start newline_separated=yes
	case *ArrayExpression:
		_ = many(y, ArrayExpression_Elements, n.Elements)

	case *ArrayPattern:
		_ = many(y, ArrayPattern_Elements, n.Elements)

	case *ArrowFunctionExpression:
		_ = many(y, ArrowFunctionExpression_Params, n.Params) &&
			y.one(ArrowFunctionExpression_Body, n.Body)

	case *AssignmentExpression:
		_ = y.one(AssignmentExpression_Left, n.Left) &&
			y.one(AssignmentExpression_Right, n.Right)

	case *AssignmentPattern:
		_ = y.one(AssignmentPattern_Left, n.Left) &&
			y.one(AssignmentPattern_Right, n.Right)

	case *AwaitExpression:
		_ = y.one(AwaitExpression_Argument, n.Argument)

	case *BinaryExpression:
		_ = y.one(BinaryExpression_Left, n.Left) &&
			y.one(BinaryExpression_Right, n.Right)

	case *BlockStatement:
		_ = many(y, BlockStatement_Body, n.Body)

	case *BreakStatement:
		_ = y.one(BreakStatement_Label, ident(n.Label))

	case *CallExpression:
		_ = y.one(CallExpression_Callee, n.Callee) &&
			many(y, CallExpression_Arguments, n.Arguments)

	case *CatchClause:
		_ = y.one(CatchClause_Param, n.Param) &&
			y.one(CatchClause_Body, block(n.Body))

	case *ClassDeclaration:
		_ = y.one(ClassDeclaration_ID, ident(n.ID)) &&
			y.one(ClassDeclaration_SuperClass, n.SuperClass) &&
			many(y, ClassDeclaration_Body, n.Body)

	case *ClassExpression:
		_ = y.one(ClassExpression_ID, ident(n.ID)) &&
			y.one(ClassExpression_SuperClass, n.SuperClass) &&
			many(y, ClassExpression_Body, n.Body)

	case *ConditionalExpression:
		_ = y.one(ConditionalExpression_Test, n.Test) &&
			y.one(ConditionalExpression_Consequent, n.Consequent) &&
			y.one(ConditionalExpression_Alternate, n.Alternate)

	case *ContinueStatement:
		_ = y.one(ContinueStatement_Label, ident(n.Label))

	case *DoWhileStatement:
		_ = y.one(DoWhileStatement_Body, n.Body) &&
			y.one(DoWhileStatement_Test, n.Test)

	case *ExportDefaultDeclaration:
		_ = y.one(ExportDefaultDeclaration_Declaration, n.Declaration)

	case *ExportNamedDeclaration:
		_ = y.one(ExportNamedDeclaration_Declaration, n.Declaration) &&
			many(y, ExportNamedDeclaration_Specifiers, n.Specifiers) &&
			y.one(ExportNamedDeclaration_Source, literal(n.Source))

	case *ExportSpecifier:
		_ = y.one(ExportSpecifier_Local, ident(n.Local)) &&
			y.one(ExportSpecifier_Exported, ident(n.Exported))

	case *ExpressionStatement:
		_ = y.one(ExpressionStatement_Expression, n.Expression)

	case *ForInStatement:
		_ = y.one(ForInStatement_Left, n.Left) &&
			y.one(ForInStatement_Right, n.Right) &&
			y.one(ForInStatement_Body, n.Body)

	case *ForOfStatement:
		_ = y.one(ForOfStatement_Left, n.Left) &&
			y.one(ForOfStatement_Right, n.Right) &&
			y.one(ForOfStatement_Body, n.Body)

	case *ForStatement:
		_ = y.one(ForStatement_Init, n.Init) &&
			y.one(ForStatement_Test, n.Test) &&
			y.one(ForStatement_Update, n.Update) &&
			y.one(ForStatement_Body, n.Body)

	case *FunctionDeclaration:
		_ = y.one(FunctionDeclaration_ID, ident(n.ID)) &&
			many(y, FunctionDeclaration_Params, n.Params) &&
			y.one(FunctionDeclaration_Body, block(n.Body))

	case *FunctionExpression:
		_ = y.one(FunctionExpression_ID, ident(n.ID)) &&
			many(y, FunctionExpression_Params, n.Params) &&
			y.one(FunctionExpression_Body, block(n.Body))

	case *IfStatement:
		_ = y.one(IfStatement_Test, n.Test) &&
			y.one(IfStatement_Consequent, n.Consequent) &&
			y.one(IfStatement_Alternate, n.Alternate)

	case *ImportDeclaration:
		_ = many(y, ImportDeclaration_Specifiers, n.Specifiers) &&
			y.one(ImportDeclaration_Source, literal(n.Source))

	case *ImportDefaultSpecifier:
		_ = y.one(ImportDefaultSpecifier_Local, ident(n.Local))

	case *ImportNamespaceSpecifier:
		_ = y.one(ImportNamespaceSpecifier_Local, ident(n.Local))

	case *ImportSpecifier:
		_ = y.one(ImportSpecifier_Imported, ident(n.Imported)) &&
			y.one(ImportSpecifier_Local, ident(n.Local))

	case *LabeledStatement:
		_ = y.one(LabeledStatement_Label, ident(n.Label)) &&
			y.one(LabeledStatement_Body, n.Body)

	case *MemberExpression:
		_ = y.one(MemberExpression_Object, n.Object) &&
			y.one(MemberExpression_Property, n.Property)

	case *MetaProperty:
		_ = y.one(MetaProperty_Meta, ident(n.Meta)) &&
			y.one(MetaProperty_Property, ident(n.Property))

	case *MethodDefinition:
		var value Node
		if n.Value != nil {
			value = n.Value
		}

		_ = y.one(MethodDefinition_Key, n.Key) &&
			y.one(MethodDefinition_Value, value)

	case *NewExpression:
		_ = y.one(NewExpression_Callee, n.Callee) &&
			many(y, NewExpression_Arguments, n.Arguments)

	case *ObjectExpression:
		_ = many(y, ObjectExpression_Properties, n.Properties)

	case *ObjectPattern:
		_ = many(y, ObjectPattern_Properties, n.Properties)

	case *Program:
		_ = many(y, Program_Body, n.Body)

	case *Property:
		_ = y.one(Property_Key, n.Key) &&
			y.one(Property_Value, n.Value)

	case *PropertyDefinition:
		_ = y.one(PropertyDefinition_Key, n.Key) &&
			y.one(PropertyDefinition_Value, n.Value)

	case *RestElement:
		_ = y.one(RestElement_Argument, n.Argument)

	case *ReturnStatement:
		_ = y.one(ReturnStatement_Argument, n.Argument)

	case *SequenceExpression:
		_ = many(y, SequenceExpression_Expressions, n.Expressions)

	case *SpreadElement:
		_ = y.one(SpreadElement_Argument, n.Argument)

	case *StaticBlock:
		_ = many(y, StaticBlock_Body, n.Body)

	case *SwitchCase:
		_ = y.one(SwitchCase_Test, n.Test) &&
			many(y, SwitchCase_Consequent, n.Consequent)

	case *SwitchStatement:
		_ = y.one(SwitchStatement_Discriminant, n.Discriminant) &&
			many(y, SwitchStatement_Cases, n.Cases)

	case *TaggedTemplateExpression:
		var quasi Node
		if n.Quasi != nil {
			quasi = n.Quasi
		}

		_ = y.one(TaggedTemplateExpression_Tag, n.Tag) &&
			y.one(TaggedTemplateExpression_Quasi, quasi)

	case *TemplateLiteral:
		_ = many(y, TemplateLiteral_Expressions, n.Expressions)

	case *ThrowStatement:
		_ = y.one(ThrowStatement_Argument, n.Argument)

	case *TryStatement:
		var handler Node
		if n.Handler != nil {
			handler = n.Handler
		}

		_ = y.one(TryStatement_Block, block(n.Block)) &&
			y.one(TryStatement_Handler, handler) &&
			y.one(TryStatement_Finalizer, block(n.Finalizer))

	case *UnaryExpression:
		_ = y.one(UnaryExpression_Argument, n.Argument)

	case *UpdateExpression:
		_ = y.one(UpdateExpression_Argument, n.Argument)

	case *VariableDeclaration:
		_ = many(y, VariableDeclaration_Declarations, n.Declarations)

	case *VariableDeclarator:
		_ = y.one(VariableDeclarator_ID, n.ID) &&
			y.one(VariableDeclarator_Init, n.Init)

	case *WhileStatement:
		_ = y.one(WhileStatement_Test, n.Test) &&
			y.one(WhileStatement_Body, n.Body)

	case *WithStatement:
		_ = y.one(WithStatement_Object, n.Object) &&
			y.one(WithStatement_Body, n.Body)

	case *YieldExpression:
		_ = y.one(YieldExpression_Argument, n.Argument)

		// keep-sorted end
	}
}
