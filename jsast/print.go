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
	"fmt"
	"strings"
	"unicode/utf8"
)

// Print renders a node as JavaScript source in a compact, normalized layout:
// one statement per line, two-space indentation and only the parentheses
// required by operator precedence.
//
// Printing the same tree always yields the same text, which makes the output
// suitable for comparing trees in tests.
func Print(n Node) string {
	var p printer
	p.node(n)

	return p.String()
}

// Operator precedence, from loosest to tightest binding.
const (
	precLowest = iota
	precSequence
	precAssign
	precConditional
	precNullish
	precOr
	precAnd
	precBitOr
	precBitXor
	precBitAnd
	precEquality
	precRelational
	precShift
	precAdditive
	precMultiplicative
	precExponent
	precUnary
	precUpdate
	precNew
	precCall
	precPrimary
)

var binaryPrec = map[string]int{
	"??": precNullish,
	"||": precOr,
	"&&": precAnd,
	"|":  precBitOr,
	"^":  precBitXor,
	"&":  precBitAnd,
	"==": precEquality, "!=": precEquality, "===": precEquality, "!==": precEquality,
	"<": precRelational, ">": precRelational, "<=": precRelational, ">=": precRelational,
	"instanceof": precRelational, "in": precRelational,
	"<<": precShift, ">>": precShift, ">>>": precShift,
	"+": precAdditive, "-": precAdditive,
	"*": precMultiplicative, "/": precMultiplicative, "%": precMultiplicative,
	"**": precExponent,
}

type printer struct {
	strings.Builder
	indent int
}

func (p *printer) newline() {
	p.WriteByte('\n')

	for range p.indent {
		p.WriteString("  ")
	}
}

func (p *printer) node(n Node) {
	switch n := n.(type) {
	case *Program:
		for i, s := range n.Body {
			if i > 0 {
				p.WriteByte('\n')
			}

			p.stmt(s)
		}

	case Stmt:
		p.stmt(n)

	case Expr:
		p.expr(n, precLowest)

	case Pattern:
		p.pattern(n)

	case *VariableDeclarator:
		p.declarator(n)

	case *Property:
		p.property(n)

	case *SwitchCase:
		p.switchCase(n)

	case *CatchClause:
		p.catchClause(n)

	case *MethodDefinition, *PropertyDefinition, *StaticBlock:
		p.classMember(n)

	case *ImportSpecifier, *ImportDefaultSpecifier, *ImportNamespaceSpecifier:
		p.importSpecifiers([]Node{n})

	case *ExportSpecifier:
		p.exportSpecifier(n)

	case nil:
		p.WriteString("<nil>")

	default:
		fmt.Fprintf(p, "<%T>", n)
	}
}

// ----------------------------------------------------------------------------
// Statements

func (p *printer) block(body []Stmt) {
	if len(body) == 0 {
		p.WriteString("{}")
		return
	}

	p.WriteByte('{')
	p.indent++

	for _, s := range body {
		p.newline()
		p.stmt(s)
	}

	p.indent--
	p.newline()
	p.WriteByte('}')
}

// body prints a nested statement after a keyword, e.g. the body of a loop.
func (p *printer) body(s Stmt) {
	p.WriteByte(' ')
	p.stmt(s)
}

func (p *printer) stmt(s Stmt) {
	switch s := s.(type) {
	// keep-sorted start newline_separated=yes
	case *BlockStatement:
		p.block(s.Body)

	case *BreakStatement:
		p.WriteString("break")
		p.label(s.Label)
		p.WriteByte(';')

	case *ClassDeclaration:
		p.class(s.ID, s.SuperClass, s.Body)

	case *ContinueStatement:
		p.WriteString("continue")
		p.label(s.Label)
		p.WriteByte(';')

	case *DebuggerStatement:
		p.WriteString("debugger;")

	case *DoWhileStatement:
		p.WriteString("do")
		p.body(s.Body)
		p.WriteString(" while (")
		p.expr(s.Test, precLowest)
		p.WriteString(");")

	case *EmptyStatement:
		p.WriteByte(';')

	case *ExportDefaultDeclaration:
		p.WriteString("export default ")

		switch d := s.Declaration.(type) {
		case *FunctionDeclaration, *ClassDeclaration:
			p.stmt(d.(Stmt))

		case Expr:
			p.exprStatement(d)
			p.WriteByte(';')
		}

	case *ExportNamedDeclaration:
		p.WriteString("export ")

		if s.Declaration != nil {
			p.stmt(s.Declaration)
			break
		}

		p.WriteByte('{')

		for i, spec := range s.Specifiers {
			if i > 0 {
				p.WriteString(", ")
			}

			p.exportSpecifier(spec)
		}

		p.WriteByte('}')

		if s.Source != nil {
			p.WriteString(" from ")
			p.literal(s.Source)
		}

		p.WriteByte(';')

	case *ExpressionStatement:
		p.exprStatement(s.Expression)
		p.WriteByte(';')

	case *ForInStatement:
		p.WriteString("for (")
		p.forLeft(s.Left)
		p.WriteString(" in ")
		p.expr(s.Right, precLowest)
		p.WriteByte(')')
		p.body(s.Body)

	case *ForOfStatement:
		p.WriteString("for ")

		if s.Await {
			p.WriteString("await ")
		}

		p.WriteByte('(')
		p.forLeft(s.Left)
		p.WriteString(" of ")
		p.expr(s.Right, precAssign)
		p.WriteByte(')')
		p.body(s.Body)

	case *ForStatement:
		p.WriteString("for (")

		switch init := s.Init.(type) {
		case *VariableDeclaration:
			p.declaration(init)

		case Expr:
			p.expr(init, precLowest)
		}

		p.WriteByte(';')

		if s.Test != nil {
			p.WriteByte(' ')
			p.expr(s.Test, precLowest)
		}

		p.WriteByte(';')

		if s.Update != nil {
			p.WriteByte(' ')
			p.expr(s.Update, precLowest)
		}

		p.WriteByte(')')
		p.body(s.Body)

	case *FunctionDeclaration:
		p.function(s.ID, s.Params, s.Body, s.Async, s.Generator)

	case *IfStatement:
		p.WriteString("if (")
		p.expr(s.Test, precLowest)
		p.WriteByte(')')

		consequent := s.Consequent
		if inner, ok := consequent.(*IfStatement); ok && inner.Alternate == nil && s.Alternate != nil {
			consequent = &BlockStatement{Body: []Stmt{inner}} // dangling else
		}

		p.body(consequent)

		if s.Alternate != nil {
			p.WriteString(" else")
			p.body(s.Alternate)
		}

	case *ImportDeclaration:
		p.WriteString("import ")

		if len(s.Specifiers) > 0 {
			p.importSpecifiers(s.Specifiers)
			p.WriteString(" from ")
		}

		p.literal(s.Source)
		p.WriteByte(';')

	case *LabeledStatement:
		p.WriteString(s.Label.Name)
		p.WriteByte(':')
		p.body(s.Body)

	case *ReturnStatement:
		p.WriteString("return")

		if s.Argument != nil {
			p.WriteByte(' ')
			p.expr(s.Argument, precLowest)
		}

		p.WriteByte(';')

	case *SwitchStatement:
		p.WriteString("switch (")
		p.expr(s.Discriminant, precLowest)
		p.WriteString(") {")

		for _, c := range s.Cases {
			p.newline()
			p.switchCase(c)
		}

		p.newline()
		p.WriteByte('}')

	case *ThrowStatement:
		p.WriteString("throw ")
		p.expr(s.Argument, precLowest)
		p.WriteByte(';')

	case *TryStatement:
		p.WriteString("try ")
		p.block(s.Block.Body)

		if s.Handler != nil {
			p.WriteByte(' ')
			p.catchClause(s.Handler)
		}

		if s.Finalizer != nil {
			p.WriteString(" finally ")
			p.block(s.Finalizer.Body)
		}

	case *VariableDeclaration:
		p.declaration(s)
		p.WriteByte(';')

	case *WhileStatement:
		p.WriteString("while (")
		p.expr(s.Test, precLowest)
		p.WriteByte(')')
		p.body(s.Body)

	case *WithStatement:
		p.WriteString("with (")
		p.expr(s.Object, precLowest)
		p.WriteByte(')')
		p.body(s.Body)

		// keep-sorted end
	default:
		fmt.Fprintf(p, "<%T>", s)
	}
}

func (p *printer) label(l *Identifier) {
	if l != nil {
		p.WriteByte(' ')
		p.WriteString(l.Name)
	}
}

// exprStatement prints an expression in statement position, wrapping it when
// it would otherwise be read as a block, declaration or let declaration.
func (p *printer) exprStatement(e Expr) {
	switch first := leftmost(e).(type) {
	case *ObjectExpression, *ObjectPattern, *FunctionExpression, *ClassExpression:
		p.parens(e)
		return

	case *Identifier:
		if first.Name == "let" {
			p.parens(e)
			return
		}
	}

	p.expr(e, precLowest)
}

func (p *printer) parens(e Expr) {
	p.WriteByte('(')
	p.expr(e, precLowest)
	p.WriteByte(')')
}

// leftmost returns the node printed first when printing e.
func leftmost(e Expr) Node {
	for {
		switch n := e.(type) {
		case *MemberExpression:
			e = n.Object
		case *CallExpression:
			e = n.Callee
		case *BinaryExpression:
			e = n.Left
		case *ConditionalExpression:
			e = n.Test
		case *SequenceExpression:
			if len(n.Expressions) == 0 {
				return e
			}

			e = n.Expressions[0]
		case *AssignmentExpression:
			l, ok := n.Left.(Expr)
			if !ok {
				return n.Left
			}

			e = l
		case *UpdateExpression:
			if n.Prefix {
				return e
			}

			e = n.Argument
		case *TaggedTemplateExpression:
			e = n.Tag
		default:
			return e
		}
	}
}

func (p *printer) declaration(d *VariableDeclaration) {
	p.WriteString(d.Kind)
	p.WriteByte(' ')

	for i, decl := range d.Declarations {
		if i > 0 {
			p.WriteString(", ")
		}

		p.declarator(decl)
	}
}

func (p *printer) declarator(d *VariableDeclarator) {
	p.pattern(d.ID)

	if d.Init != nil {
		p.WriteString(" = ")
		p.expr(d.Init, precAssign)
	}
}

func (p *printer) forLeft(left Node) {
	switch l := left.(type) {
	case *VariableDeclaration:
		p.declaration(l)

	case Pattern:
		p.pattern(l)
	}
}

func (p *printer) switchCase(c *SwitchCase) {
	if c.Test != nil {
		p.WriteString("case ")
		p.expr(c.Test, precLowest)
		p.WriteByte(':')
	} else {
		p.WriteString("default:")
	}

	p.indent++

	for _, s := range c.Consequent {
		p.newline()
		p.stmt(s)
	}

	p.indent--
}

func (p *printer) catchClause(c *CatchClause) {
	p.WriteString("catch ")

	if c.Param != nil {
		p.WriteByte('(')
		p.pattern(c.Param)
		p.WriteString(") ")
	}

	p.block(c.Body.Body)
}

func (p *printer) importSpecifiers(specs []Node) {
	var named []*ImportSpecifier

	first := true
	sep := func() {
		if !first {
			p.WriteString(", ")
		}

		first = false
	}

	for _, s := range specs {
		switch s := s.(type) {
		case *ImportDefaultSpecifier:
			sep()
			p.WriteString(s.Local.Name)

		case *ImportNamespaceSpecifier:
			sep()
			p.WriteString("* as ")
			p.WriteString(s.Local.Name)

		case *ImportSpecifier:
			named = append(named, s)
		}
	}

	if len(named) == 0 {
		return
	}

	sep()
	p.WriteByte('{')

	for i, s := range named {
		if i > 0 {
			p.WriteString(", ")
		}

		p.WriteString(s.Imported.Name)

		if s.Local != nil && s.Local.Name != s.Imported.Name {
			p.WriteString(" as ")
			p.WriteString(s.Local.Name)
		}
	}

	p.WriteByte('}')
}

func (p *printer) exportSpecifier(s *ExportSpecifier) {
	p.WriteString(s.Local.Name)

	if s.Exported != nil && s.Exported.Name != s.Local.Name {
		p.WriteString(" as ")
		p.WriteString(s.Exported.Name)
	}
}

// ----------------------------------------------------------------------------
// Functions and classes

func (p *printer) function(id *Identifier, params []Pattern, body *BlockStatement, async, generator bool) {
	if async {
		p.WriteString("async ")
	}

	p.WriteString("function")

	if generator {
		p.WriteByte('*')
	}

	if id != nil {
		p.WriteByte(' ')
		p.WriteString(id.Name)
	}

	p.params(params)
	p.WriteByte(' ')
	p.block(body.Body)
}

func (p *printer) params(params []Pattern) {
	p.WriteByte('(')

	for i, param := range params {
		if i > 0 {
			p.WriteString(", ")
		}

		p.pattern(param)
	}

	p.WriteByte(')')
}

func (p *printer) class(id *Identifier, superClass Expr, body []Node) {
	p.WriteString("class")

	if id != nil {
		p.WriteByte(' ')
		p.WriteString(id.Name)
	}

	if superClass != nil {
		p.WriteString(" extends ")
		p.expr(superClass, precCall)
	}

	if len(body) == 0 {
		p.WriteString(" {}")
		return
	}

	p.WriteString(" {")
	p.indent++

	for _, m := range body {
		p.newline()
		p.classMember(m)
	}

	p.indent--
	p.newline()
	p.WriteByte('}')
}

func (p *printer) classMember(n Node) {
	switch m := n.(type) {
	case *MethodDefinition:
		if m.Static {
			p.WriteString("static ")
		}

		p.method(m.Kind, m.Key, m.Computed, m.Value)

	case *PropertyDefinition:
		if m.Static {
			p.WriteString("static ")
		}

		p.propertyKey(m.Key, m.Computed)

		if m.Value != nil {
			p.WriteString(" = ")
			p.expr(m.Value, precAssign)
		}

		p.WriteByte(';')

	case *StaticBlock:
		p.WriteString("static ")
		p.block(m.Body)
	}
}

// method prints a method-like member of a class body or object literal.
func (p *printer) method(kind string, key Expr, computed bool, fn *FunctionExpression) {
	switch kind {
	case "get", "set":
		p.WriteString(kind)
		p.WriteByte(' ')
	}

	if fn.Async {
		p.WriteString("async ")
	}

	if fn.Generator {
		p.WriteByte('*')
	}

	p.propertyKey(key, computed)
	p.params(fn.Params)
	p.WriteByte(' ')
	p.block(fn.Body.Body)
}

func (p *printer) propertyKey(key Expr, computed bool) {
	if computed {
		p.WriteByte('[')
		p.expr(key, precAssign)
		p.WriteByte(']')

		return
	}

	p.expr(key, precPrimary)
}

func (p *printer) property(prop *Property) {
	if fn, ok := prop.Value.(*FunctionExpression); ok && (prop.Method || prop.Kind == "get" || prop.Kind == "set") {
		p.method(prop.Kind, prop.Key, prop.Computed, fn)
		return
	}

	if prop.Shorthand {
		if ap, ok := prop.Value.(*AssignmentPattern); ok {
			p.pattern(ap)
			return
		}

		if Node(prop.Key) == prop.Value {
			p.propertyKey(prop.Key, false)
			return
		}
	}

	p.propertyKey(prop.Key, prop.Computed)
	p.WriteString(": ")

	switch v := prop.Value.(type) {
	case Expr:
		p.expr(v, precAssign)

	case Pattern:
		p.pattern(v)
	}
}

// ----------------------------------------------------------------------------
// Patterns

func (p *printer) pattern(n Pattern) {
	switch n := n.(type) {
	case *ObjectPattern:
		p.WriteByte('{')

		for i, prop := range n.Properties {
			if i > 0 {
				p.WriteString(", ")
			}

			switch prop := prop.(type) {
			case *Property:
				p.property(prop)

			case *RestElement:
				p.pattern(prop)
			}
		}

		p.WriteByte('}')

	case *ArrayPattern:
		p.WriteByte('[')

		for i, el := range n.Elements {
			if i > 0 {
				p.WriteString(", ")
			}

			if el != nil {
				p.pattern(el)
			}
		}

		if l := len(n.Elements); l > 0 && n.Elements[l-1] == nil {
			p.WriteByte(',')
		}

		p.WriteByte(']')

	case *AssignmentPattern:
		p.pattern(n.Left)
		p.WriteString(" = ")
		p.expr(n.Right, precAssign)

	case *RestElement:
		p.WriteString("...")
		p.pattern(n.Argument)

	case Expr:
		p.expr(n, precCall)

	default:
		fmt.Fprintf(p, "<%T>", n)
	}
}

// ----------------------------------------------------------------------------
// Expressions

func precedence(e Expr) int {
	switch e := e.(type) {
	case *SequenceExpression:
		return precSequence

	case *AssignmentExpression, *ArrowFunctionExpression, *YieldExpression, *SpreadElement:
		return precAssign

	case *ConditionalExpression:
		return precConditional

	case *BinaryExpression:
		if prec, ok := binaryPrec[e.Operator]; ok {
			return prec
		}

		return precLowest

	case *UnaryExpression, *AwaitExpression:
		return precUnary

	case *UpdateExpression:
		return precUpdate

	case *CallExpression, *MemberExpression, *NewExpression, *TaggedTemplateExpression:
		return precCall

	default:
		return precPrimary
	}
}

func (p *printer) expr(e Expr, minPrec int) {
	if precedence(e) < minPrec {
		p.parens(e)
		return
	}

	switch e := e.(type) {
	// keep-sorted start newline_separated=yes
	case *ArrayExpression:
		p.WriteByte('[')

		for i, el := range e.Elements {
			if i > 0 {
				p.WriteString(", ")
			}

			if el != nil {
				p.expr(el, precAssign)
			}
		}

		if l := len(e.Elements); l > 0 && e.Elements[l-1] == nil {
			p.WriteByte(',')
		}

		p.WriteByte(']')

	case *ArrowFunctionExpression:
		if e.Async {
			p.WriteString("async ")
		}

		p.params(e.Params)
		p.WriteString(" => ")

		switch body := e.Body.(type) {
		case *BlockStatement:
			p.block(body.Body)

		case Expr:
			if _, ok := leftmost(body).(*ObjectExpression); ok {
				p.parens(body)
			} else {
				p.expr(body, precAssign)
			}
		}

	case *AssignmentExpression:
		p.pattern(e.Left)
		p.WriteByte(' ')
		p.WriteString(e.Operator)
		p.WriteByte(' ')
		p.expr(e.Right, precAssign)

	case *AwaitExpression:
		p.WriteString("await ")
		p.expr(e.Argument, precUnary)

	case *BinaryExpression:
		prec := precedence(e)
		left, right := prec, prec+1

		if e.Operator == "**" {
			left, right = prec+1, prec
		}

		p.expr(e.Left, left)
		p.WriteByte(' ')
		p.WriteString(e.Operator)
		p.WriteByte(' ')
		p.expr(e.Right, right)

	case *CallExpression:
		p.expr(e.Callee, precCall)

		if e.Optional {
			p.WriteString("?.")
		}

		p.arguments(e.Arguments)

	case *ClassExpression:
		p.class(e.ID, e.SuperClass, e.Body)

	case *ConditionalExpression:
		p.expr(e.Test, precNullish)
		p.WriteString(" ? ")
		p.expr(e.Consequent, precAssign)
		p.WriteString(" : ")
		p.expr(e.Alternate, precAssign)

	case *FunctionExpression:
		p.function(e.ID, e.Params, e.Body, e.Async, e.Generator)

	case *Identifier:
		p.WriteString(e.Name)

	case *Literal:
		p.literal(e)

	case *MemberExpression:
		if lit, ok := e.Object.(*Literal); ok && lit.Kind == LitNumber {
			p.parens(lit)
		} else {
			p.expr(e.Object, precCall)
		}

		switch {
		case e.Computed:
			if e.Optional {
				p.WriteString("?.")
			}

			p.WriteByte('[')
			p.expr(e.Property, precLowest)
			p.WriteByte(']')

		case e.Optional:
			p.WriteString("?.")
			p.expr(e.Property, precPrimary)

		default:
			p.WriteByte('.')
			p.expr(e.Property, precPrimary)
		}

	case *MetaProperty:
		p.WriteString(e.Meta.Name)
		p.WriteByte('.')
		p.WriteString(e.Property.Name)

	case *NewExpression:
		p.WriteString("new ")

		if containsCall(e.Callee) {
			p.parens(e.Callee)
		} else {
			p.expr(e.Callee, precCall)
		}

		p.arguments(e.Arguments)

	case *ObjectExpression:
		if len(e.Properties) == 0 {
			p.WriteString("{}")
			break
		}

		p.WriteString("{")

		for i, prop := range e.Properties {
			if i > 0 {
				p.WriteByte(',')
			}

			p.WriteByte(' ')

			switch prop := prop.(type) {
			case *Property:
				p.property(prop)

			case *SpreadElement:
				p.expr(prop, precAssign)
			}
		}

		p.WriteString(" }")

	case *PrivateIdentifier:
		p.WriteByte('#')
		p.WriteString(e.Name)

	case *SequenceExpression:
		for i, x := range e.Expressions {
			if i > 0 {
				p.WriteString(", ")
			}

			p.expr(x, precAssign)
		}

	case *SpreadElement:
		p.WriteString("...")
		p.expr(e.Argument, precAssign)

	case *Super:
		p.WriteString("super")

	case *TaggedTemplateExpression:
		p.expr(e.Tag, precCall)
		p.template(e.Quasi)

	case *TemplateLiteral:
		p.template(e)

	case *ThisExpression:
		p.WriteString("this")

	case *UnaryExpression:
		p.WriteString(e.Operator)

		switch e.Operator {
		case "typeof", "void", "delete":
			p.WriteByte(' ')

		case "-", "+":
			if needsSpace(e.Operator, e.Argument) {
				p.WriteByte(' ')
			}
		}

		p.expr(e.Argument, precUnary)

	case *UpdateExpression:
		if e.Prefix {
			p.WriteString(e.Operator)
			p.expr(e.Argument, precUnary)
		} else {
			p.expr(e.Argument, precCall)
			p.WriteString(e.Operator)
		}

	case *YieldExpression:
		p.WriteString("yield")

		if e.Delegate {
			p.WriteByte('*')
		}

		if e.Argument != nil {
			p.WriteByte(' ')
			p.expr(e.Argument, precAssign)
		}

		// keep-sorted end
	default:
		fmt.Fprintf(p, "<%T>", e)
	}
}

func (p *printer) arguments(args []Expr) {
	p.WriteByte('(')

	for i, a := range args {
		if i > 0 {
			p.WriteString(", ")
		}

		p.expr(a, precAssign)
	}

	p.WriteByte(')')
}

func (p *printer) template(t *TemplateLiteral) {
	p.WriteByte('`')

	for i, q := range t.Quasis {
		p.WriteString(q)

		if i < len(t.Expressions) {
			p.WriteString("${")
			p.expr(t.Expressions[i], precLowest)
			p.WriteByte('}')
		}
	}

	p.WriteByte('`')
}

func (p *printer) literal(l *Literal) {
	if l.Kind != LitString {
		p.WriteString(l.Value)
		return
	}

	p.WriteString(Quote(l.Value))
}

// needsSpace reports whether a unary + or - must be separated from its
// argument to avoid forming ++, --, or a different token.
func needsSpace(op string, arg Expr) bool {
	switch a := arg.(type) {
	case *UnaryExpression:
		return a.Operator == op

	case *UpdateExpression:
		return a.Prefix && a.Operator[:1] == op
	}

	return false
}

// containsCall reports whether a new callee contains a call that would
// otherwise bind the arguments of the new expression.
func containsCall(e Expr) bool {
	for {
		switch n := e.(type) {
		case *CallExpression:
			return true
		case *MemberExpression:
			e = n.Object
		case *TaggedTemplateExpression:
			e = n.Tag
		default:
			return false
		}
	}
}

// Quote returns s as a double-quoted JavaScript string literal.
func Quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')

	for i, w := 0, 0; i < len(s); i += w {
		r, width := utf8.DecodeRuneInString(s[i:])
		w = width

		switch {
		case r == '"':
			b.WriteString(`\"`)
		case r == '\\':
			b.WriteString(`\\`)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\t':
			b.WriteString(`\t`)
		case r == ' ' || r == ' ':
			fmt.Fprintf(&b, `\u%04x`, r)
		case r < 0x20 || r == 0x7f:
			fmt.Fprintf(&b, `\x%02x`, r)
		case r == utf8.RuneError && width == 1:
			fmt.Fprintf(&b, `\x%02x`, s[i])
		default:
			b.WriteRune(r)
		}
	}

	b.WriteByte('"')

	return b.String()
}
