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

// Node is implemented by all syntax tree nodes.
type Node interface{ node() }

// Expr is implemented by all expression nodes.
type Expr interface {
	Node
	expr()
}

// Stmt is implemented by all statement and declaration nodes.
type Stmt interface {
	Node
	stmt()
}

// Pattern is implemented by nodes that can appear as a binding or assignment target.
type Pattern interface {
	Node
	pattern()
}

// LitKind is the kind of a [Literal].
type LitKind uint8

const (
	// LitString is a string literal; Value holds the decoded string.
	LitString LitKind = iota
	// LitNumber is a numeric literal; Value holds the source text.
	LitNumber
	// LitBoolean is true or false.
	LitBoolean
	// LitNull is the null literal.
	LitNull
	// LitRegExp is a regular expression literal; Value holds the source text.
	LitRegExp
)

// ----------------------------------------------------------------------------
// Program

// Program is the root of a parsed script or module.
type Program struct {
	Body []Stmt
}

// ----------------------------------------------------------------------------
// Expressions and patterns

type (
	// Identifier is a name. Identity is pointer identity: two occurrences of the
	// same name are distinct nodes.
	Identifier struct {
		Name string
	}

	// PrivateIdentifier is a #name in a class body or member access.
	PrivateIdentifier struct {
		Name string
	}

	// Literal is a string, number, boolean, null or regular expression literal.
	Literal struct {
		Kind  LitKind
		Value string
	}

	// TemplateLiteral is a `template ${expr}` literal. Quasis holds the raw text
	// segments, len(Quasis) == len(Expressions)+1.
	TemplateLiteral struct {
		Quasis      []string
		Expressions []Expr
	}

	// TaggedTemplateExpression is tag`template`.
	TaggedTemplateExpression struct {
		Tag   Expr
		Quasi *TemplateLiteral
	}

	// ThisExpression is this.
	ThisExpression struct{}

	// Super is the super keyword in calls and member expressions.
	Super struct{}

	// ArrayExpression is [a, , b]. Holes are nil.
	ArrayExpression struct {
		Elements []Expr
	}

	// ObjectExpression is {a: 1, ...b}. Properties are *Property or *SpreadElement.
	ObjectExpression struct {
		Properties []Node
	}

	// Property is a member of an object literal or object pattern.
	// In shorthand properties Key and Value are the same *Identifier node.
	Property struct {
		Key       Expr
		Value     Node // Expr in literals, Pattern in patterns
		Kind      string
		Computed  bool
		Shorthand bool
		Method    bool
	}

	// SpreadElement is ...expr in arrays, calls and object literals.
	SpreadElement struct {
		Argument Expr
	}

	// FunctionExpression is a function literal, possibly named.
	FunctionExpression struct {
		ID        *Identifier
		Params    []Pattern
		Body      *BlockStatement
		Async     bool
		Generator bool
	}

	// ArrowFunctionExpression is (params) => body.
	ArrowFunctionExpression struct {
		Params []Pattern
		Body   Node // *BlockStatement or Expr
		Async  bool
	}

	// ClassExpression is a class literal, possibly named.
	ClassExpression struct {
		ID         *Identifier
		SuperClass Expr
		Body       []Node
	}

	// UnaryExpression is a prefix operator application (!x, typeof x, delete x).
	UnaryExpression struct {
		Operator string
		Argument Expr
	}

	// UpdateExpression is ++x, x++, --x or x--.
	UpdateExpression struct {
		Operator string
		Prefix   bool
		Argument Expr
	}

	// BinaryExpression is a binary or logical operator application.
	BinaryExpression struct {
		Operator string
		Left     Expr
		Right    Expr
	}

	// AssignmentExpression is target op= value.
	AssignmentExpression struct {
		Operator string
		Left     Pattern
		Right    Expr
	}

	// ConditionalExpression is test ? consequent : alternate.
	ConditionalExpression struct {
		Test       Expr
		Consequent Expr
		Alternate  Expr
	}

	// CallExpression is callee(arguments).
	CallExpression struct {
		Callee    Expr
		Arguments []Expr
		Optional  bool
	}

	// NewExpression is new callee(arguments).
	NewExpression struct {
		Callee    Expr
		Arguments []Expr
	}

	// MemberExpression is object.property or object[property].
	MemberExpression struct {
		Object   Expr
		Property Expr
		Computed bool
		Optional bool
	}

	// MetaProperty is new.target or import.meta.
	MetaProperty struct {
		Meta     *Identifier
		Property *Identifier
	}

	// SequenceExpression is a, b, c.
	SequenceExpression struct {
		Expressions []Expr
	}

	// YieldExpression is yield argument or yield* argument.
	YieldExpression struct {
		Argument Expr
		Delegate bool
	}

	// AwaitExpression is await argument.
	AwaitExpression struct {
		Argument Expr
	}

	// ObjectPattern is {a, b: c, ...rest} in a binding or assignment target.
	// Properties are *Property or *RestElement.
	ObjectPattern struct {
		Properties []Node
	}

	// ArrayPattern is [a, , b] in a binding or assignment target. Holes are nil.
	ArrayPattern struct {
		Elements []Pattern
	}

	// AssignmentPattern is target = default.
	AssignmentPattern struct {
		Left  Pattern
		Right Expr
	}

	// RestElement is ...target in a pattern or parameter list.
	RestElement struct {
		Argument Pattern
	}
)

// ----------------------------------------------------------------------------
// Class members

type (
	// MethodDefinition is a method, getter, setter or constructor in a class body.
	MethodDefinition struct {
		Key      Expr
		Value    *FunctionExpression
		Kind     string
		Computed bool
		Static   bool
	}

	// PropertyDefinition is a class field.
	PropertyDefinition struct {
		Key      Expr
		Value    Expr
		Computed bool
		Static   bool
	}

	// StaticBlock is static { ... } in a class body.
	StaticBlock struct {
		Body []Stmt
	}
)

// ----------------------------------------------------------------------------
// Statements

type (
	// ExpressionStatement is an expression followed by a semicolon.
	// Directive is set for prologue directives like "use strict".
	ExpressionStatement struct {
		Expression Expr
		Directive  string
	}

	// BlockStatement is { ... }.
	BlockStatement struct {
		Body []Stmt
	}

	// EmptyStatement is a lone semicolon.
	EmptyStatement struct{}

	// DebuggerStatement is debugger.
	DebuggerStatement struct{}

	// WithStatement is with (object) body.
	WithStatement struct {
		Object Expr
		Body   Stmt
	}

	// ReturnStatement is return argument.
	ReturnStatement struct {
		Argument Expr
	}

	// LabeledStatement is label: body.
	LabeledStatement struct {
		Label *Identifier
		Body  Stmt
	}

	// BreakStatement is break label.
	BreakStatement struct {
		Label *Identifier
	}

	// ContinueStatement is continue label.
	ContinueStatement struct {
		Label *Identifier
	}

	// IfStatement is if (test) consequent else alternate.
	IfStatement struct {
		Test       Expr
		Consequent Stmt
		Alternate  Stmt
	}

	// SwitchStatement is switch (discriminant) { cases }.
	SwitchStatement struct {
		Discriminant Expr
		Cases        []*SwitchCase
	}

	// SwitchCase is a case or default clause. Test is nil for default.
	SwitchCase struct {
		Test       Expr
		Consequent []Stmt
	}

	// ThrowStatement is throw argument.
	ThrowStatement struct {
		Argument Expr
	}

	// TryStatement is try block catch handler finally finalizer.
	TryStatement struct {
		Block     *BlockStatement
		Handler   *CatchClause
		Finalizer *BlockStatement
	}

	// CatchClause is catch (param) body. Param is nil for an optional catch binding.
	CatchClause struct {
		Param Pattern
		Body  *BlockStatement
	}

	// WhileStatement is while (test) body.
	WhileStatement struct {
		Test Expr
		Body Stmt
	}

	// DoWhileStatement is do body while (test).
	DoWhileStatement struct {
		Body Stmt
		Test Expr
	}

	// ForStatement is for (init; test; update) body.
	// Init is a *VariableDeclaration, an Expr or nil.
	ForStatement struct {
		Init   Node
		Test   Expr
		Update Expr
		Body   Stmt
	}

	// ForInStatement is for (left in right) body.
	// Left is a *VariableDeclaration or a Pattern.
	ForInStatement struct {
		Left  Node
		Right Expr
		Body  Stmt
	}

	// ForOfStatement is for (left of right) body.
	ForOfStatement struct {
		Left  Node
		Right Expr
		Body  Stmt
		Await bool
	}

	// FunctionDeclaration is a named function statement.
	FunctionDeclaration struct {
		ID        *Identifier
		Params    []Pattern
		Body      *BlockStatement
		Async     bool
		Generator bool
	}

	// VariableDeclaration is var, let or const with one or more declarators.
	VariableDeclaration struct {
		Kind         string
		Declarations []*VariableDeclarator
	}

	// VariableDeclarator is a single id = init in a [VariableDeclaration].
	VariableDeclarator struct {
		ID   Pattern
		Init Expr
	}

	// ClassDeclaration is a named class statement.
	ClassDeclaration struct {
		ID         *Identifier
		SuperClass Expr
		Body       []Node
	}
)

// ----------------------------------------------------------------------------
// Modules

type (
	// ImportDeclaration is import specifiers from source.
	// Specifiers are *ImportSpecifier, *ImportDefaultSpecifier or *ImportNamespaceSpecifier.
	ImportDeclaration struct {
		Specifiers []Node
		Source     *Literal
	}

	// ImportSpecifier is {imported as local}. Imported and Local may be the same node.
	ImportSpecifier struct {
		Imported *Identifier
		Local    *Identifier
	}

	// ImportDefaultSpecifier is the default binding of an import.
	ImportDefaultSpecifier struct {
		Local *Identifier
	}

	// ImportNamespaceSpecifier is * as local.
	ImportNamespaceSpecifier struct {
		Local *Identifier
	}

	// ExportDefaultDeclaration is export default declaration.
	// Declaration is an Expr, *FunctionDeclaration or *ClassDeclaration.
	ExportDefaultDeclaration struct {
		Declaration Node
	}

	// ExportNamedDeclaration is export declaration or export {specifiers} from source.
	ExportNamedDeclaration struct {
		Declaration Stmt
		Specifiers  []*ExportSpecifier
		Source      *Literal
	}

	// ExportSpecifier is local as exported. Local and Exported may be the same node.
	ExportSpecifier struct {
		Local    *Identifier
		Exported *Identifier
	}
)

// ----------------------------------------------------------------------------
// Marker methods

func (*Program) node()                  {}
func (*Identifier) node()               {}
func (*PrivateIdentifier) node()        {}
func (*Literal) node()                  {}
func (*TemplateLiteral) node()          {}
func (*TaggedTemplateExpression) node() {}
func (*ThisExpression) node()           {}
func (*Super) node()                    {}
func (*ArrayExpression) node()          {}
func (*ObjectExpression) node()         {}
func (*Property) node()                 {}
func (*SpreadElement) node()            {}
func (*FunctionExpression) node()       {}
func (*ArrowFunctionExpression) node()  {}
func (*ClassExpression) node()          {}
func (*UnaryExpression) node()          {}
func (*UpdateExpression) node()         {}
func (*BinaryExpression) node()         {}
func (*AssignmentExpression) node()     {}
func (*ConditionalExpression) node()    {}
func (*CallExpression) node()           {}
func (*NewExpression) node()            {}
func (*MemberExpression) node()         {}
func (*MetaProperty) node()             {}
func (*SequenceExpression) node()       {}
func (*YieldExpression) node()          {}
func (*AwaitExpression) node()          {}
func (*ObjectPattern) node()            {}
func (*ArrayPattern) node()             {}
func (*AssignmentPattern) node()        {}
func (*RestElement) node()              {}
func (*MethodDefinition) node()         {}
func (*PropertyDefinition) node()       {}
func (*StaticBlock) node()              {}
func (*ExpressionStatement) node()      {}
func (*BlockStatement) node()           {}
func (*EmptyStatement) node()           {}
func (*DebuggerStatement) node()        {}
func (*WithStatement) node()            {}
func (*ReturnStatement) node()          {}
func (*LabeledStatement) node()         {}
func (*BreakStatement) node()           {}
func (*ContinueStatement) node()        {}
func (*IfStatement) node()              {}
func (*SwitchStatement) node()          {}
func (*SwitchCase) node()               {}
func (*ThrowStatement) node()           {}
func (*TryStatement) node()             {}
func (*CatchClause) node()              {}
func (*WhileStatement) node()           {}
func (*DoWhileStatement) node()         {}
func (*ForStatement) node()             {}
func (*ForInStatement) node()           {}
func (*ForOfStatement) node()           {}
func (*FunctionDeclaration) node()      {}
func (*VariableDeclaration) node()      {}
func (*VariableDeclarator) node()       {}
func (*ClassDeclaration) node()         {}
func (*ImportDeclaration) node()        {}
func (*ImportSpecifier) node()          {}
func (*ImportDefaultSpecifier) node()   {}
func (*ImportNamespaceSpecifier) node() {}
func (*ExportDefaultDeclaration) node() {}
func (*ExportNamedDeclaration) node()   {}
func (*ExportSpecifier) node()          {}

func (*Identifier) expr()               {}
func (*PrivateIdentifier) expr()        {}
func (*Literal) expr()                  {}
func (*TemplateLiteral) expr()          {}
func (*TaggedTemplateExpression) expr() {}
func (*ThisExpression) expr()           {}
func (*Super) expr()                    {}
func (*ArrayExpression) expr()          {}
func (*ObjectExpression) expr()         {}
func (*SpreadElement) expr()            {}
func (*FunctionExpression) expr()       {}
func (*ArrowFunctionExpression) expr()  {}
func (*ClassExpression) expr()          {}
func (*UnaryExpression) expr()          {}
func (*UpdateExpression) expr()         {}
func (*BinaryExpression) expr()         {}
func (*AssignmentExpression) expr()     {}
func (*ConditionalExpression) expr()    {}
func (*CallExpression) expr()           {}
func (*NewExpression) expr()            {}
func (*MemberExpression) expr()         {}
func (*MetaProperty) expr()             {}
func (*SequenceExpression) expr()       {}
func (*YieldExpression) expr()          {}
func (*AwaitExpression) expr()          {}

func (*ExpressionStatement) stmt()      {}
func (*BlockStatement) stmt()           {}
func (*EmptyStatement) stmt()           {}
func (*DebuggerStatement) stmt()        {}
func (*WithStatement) stmt()            {}
func (*ReturnStatement) stmt()          {}
func (*LabeledStatement) stmt()         {}
func (*BreakStatement) stmt()           {}
func (*ContinueStatement) stmt()        {}
func (*IfStatement) stmt()              {}
func (*SwitchStatement) stmt()          {}
func (*ThrowStatement) stmt()           {}
func (*TryStatement) stmt()             {}
func (*WhileStatement) stmt()           {}
func (*DoWhileStatement) stmt()         {}
func (*ForStatement) stmt()             {}
func (*ForInStatement) stmt()           {}
func (*ForOfStatement) stmt()           {}
func (*FunctionDeclaration) stmt()      {}
func (*VariableDeclaration) stmt()      {}
func (*ClassDeclaration) stmt()         {}
func (*ImportDeclaration) stmt()        {}
func (*ExportDefaultDeclaration) stmt() {}
func (*ExportNamedDeclaration) stmt()   {}

func (*Identifier) pattern()        {}
func (*MemberExpression) pattern()  {}
func (*ObjectPattern) pattern()     {}
func (*ArrayPattern) pattern()      {}
func (*AssignmentPattern) pattern() {}
func (*RestElement) pattern()       {}
