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

// Package parse lowers JavaScript source text into [jsast] trees.
//
// Parsing is delegated to goja's ECMAScript parser; the result is converted
// into the ESTree-shaped [jsast] model used by the scope analysis. Scripts are
// supported; goja does not parse module syntax, so import and export
// declarations must be built directly with [jsast] nodes.
package parse

import (
	"errors"
	"fmt"

	"github.com/dop251/goja/ast"
	"github.com/dop251/goja/file"
	"github.com/dop251/goja/parser"
	"github.com/dop251/goja/token"

	"fillmore-labs.com/jsscope/jsast"
)

// ErrUnsupported is returned when the source contains syntax that has no
// [jsast] representation.
var ErrUnsupported = errors.New("unsupported syntax")

// Program parses src as a script and returns its syntax tree.
func Program(filename, src string) (*jsast.Program, error) {
	return program(filename, src, nil)
}

// Position is a 1-based line and column in the source text.
type Position struct {
	Line, Column int
}

func (p Position) String() string { return fmt.Sprintf("%d:%d", p.Line, p.Column) }

// Positions maps the identifiers of a parsed program to their source position.
type Positions map[*jsast.Identifier]Position

// File is a parsed script together with the positions of its identifiers.
type File struct {
	Name      string
	Program   *jsast.Program
	Positions Positions
}

// ParseFile parses src as a script, recording identifier positions.
func ParseFile(filename, src string) (*File, error) {
	positions := make(Positions)

	prog, err := program(filename, src, positions)
	if err != nil {
		return nil, err
	}

	return &File{Name: filename, Program: prog, Positions: positions}, nil
}

func program(filename, src string, positions Positions) (*jsast.Program, error) {
	prg, err := parser.ParseFile(nil, filename, src, 0)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}

	c := converter{filename: filename, file: prg.File, positions: positions}

	body, err := c.body(prg.Body)
	if err != nil {
		return nil, err
	}

	return &jsast.Program{Body: body}, nil
}

// Expression parses src as a single expression.
func Expression(src string) (jsast.Expr, error) {
	const filename = "<expression>"

	prg, err := Program(filename, "("+src+"\n);")
	if err != nil {
		return nil, err
	}

	if len(prg.Body) != 1 {
		return nil, fmt.Errorf("parse %s: %q is not a single expression", filename, src)
	}

	stmt, ok := prg.Body[0].(*jsast.ExpressionStatement)
	if !ok {
		return nil, fmt.Errorf("parse %s: %q is not an expression", filename, src)
	}

	return stmt.Expression, nil
}

type converter struct {
	filename  string
	file      *file.File
	positions Positions // optional
}

func (c converter) unsupported(n ast.Node) error {
	if c.file == nil || n == nil {
		return fmt.Errorf("%w: %T", ErrUnsupported, n)
	}

	pos := c.position(n.Idx0())

	return fmt.Errorf("%s:%d:%d: %w: %T", c.filename, pos.Line, pos.Column, ErrUnsupported, n)
}

// position converts a goja index, which is offset by the file base, into a
// line and column.
func (c converter) position(idx file.Idx) file.Position {
	return c.file.Position(int(idx) - c.file.Base())
}

// ----------------------------------------------------------------------------
// Statements

// body converts the statements of a program or function body, marking the
// directive prologue.
func (c converter) body(list []ast.Statement) ([]jsast.Stmt, error) {
	return c.statementList(list, true)
}

func (c converter) statements(list []ast.Statement) ([]jsast.Stmt, error) {
	return c.statementList(list, false)
}

func (c converter) statementList(list []ast.Statement, prologue bool) ([]jsast.Stmt, error) {
	result := make([]jsast.Stmt, 0, len(list))

	for _, s := range list {
		stmt, err := c.statement(s)
		if err != nil {
			return nil, err
		}

		if prologue {
			prologue = markDirective(s, stmt)
		}

		result = append(result, stmt)
	}

	return result, nil
}

// markDirective sets the directive of a string literal statement and reports
// whether the prologue continues.
func markDirective(src ast.Statement, stmt jsast.Stmt) bool {
	es, ok := src.(*ast.ExpressionStatement)
	if !ok {
		return false
	}

	lit, ok := es.Expression.(*ast.StringLiteral)
	if !ok {
		return false
	}

	raw := lit.Literal
	if len(raw) >= 2 {
		raw = raw[1 : len(raw)-1]
	}

	stmt.(*jsast.ExpressionStatement).Directive = raw

	return true
}

func (c converter) block(b *ast.BlockStatement) (*jsast.BlockStatement, error) {
	return c.blockList(b, false)
}

// functionBody converts the body of a function, which may start with directives.
func (c converter) functionBody(b *ast.BlockStatement) (*jsast.BlockStatement, error) {
	return c.blockList(b, true)
}

func (c converter) blockList(b *ast.BlockStatement, prologue bool) (*jsast.BlockStatement, error) {
	if b == nil {
		return nil, nil
	}

	body, err := c.statementList(b.List, prologue)
	if err != nil {
		return nil, err
	}

	return &jsast.BlockStatement{Body: body}, nil
}

func (c converter) optStatement(s ast.Statement) (jsast.Stmt, error) {
	if s == nil {
		return nil, nil
	}

	return c.statement(s)
}

func (c converter) statement(s ast.Statement) (jsast.Stmt, error) {
	switch s := s.(type) {
	// keep-sorted start newline_separated=yes
	case *ast.BlockStatement:
		return c.block(s)

	case *ast.BranchStatement:
		var label *jsast.Identifier
		if s.Label != nil {
			label = c.identifier(s.Label)
		}

		if s.Token == token.CONTINUE {
			return &jsast.ContinueStatement{Label: label}, nil
		}

		return &jsast.BreakStatement{Label: label}, nil

	case *ast.ClassDeclaration:
		cls, err := c.class(s.Class)
		if err != nil {
			return nil, err
		}

		return &jsast.ClassDeclaration{ID: cls.ID, SuperClass: cls.SuperClass, Body: cls.Body}, nil

	case *ast.DebuggerStatement:
		return &jsast.DebuggerStatement{}, nil

	case *ast.DoWhileStatement:
		body, err := c.statement(s.Body)
		if err != nil {
			return nil, err
		}

		test, err := c.expression(s.Test)
		if err != nil {
			return nil, err
		}

		return &jsast.DoWhileStatement{Body: body, Test: test}, nil

	case *ast.EmptyStatement:
		return &jsast.EmptyStatement{}, nil

	case *ast.ExpressionStatement:
		e, err := c.expression(s.Expression)
		if err != nil {
			return nil, err
		}

		return &jsast.ExpressionStatement{Expression: e}, nil

	case *ast.ForInStatement:
		left, err := c.forInto(s.Into)
		if err != nil {
			return nil, err
		}

		right, err := c.expression(s.Source)
		if err != nil {
			return nil, err
		}

		body, err := c.statement(s.Body)
		if err != nil {
			return nil, err
		}

		return &jsast.ForInStatement{Left: left, Right: right, Body: body}, nil

	case *ast.ForOfStatement:
		left, err := c.forInto(s.Into)
		if err != nil {
			return nil, err
		}

		right, err := c.expression(s.Source)
		if err != nil {
			return nil, err
		}

		body, err := c.statement(s.Body)
		if err != nil {
			return nil, err
		}

		return &jsast.ForOfStatement{Left: left, Right: right, Body: body}, nil

	case *ast.ForStatement:
		return c.forStatement(s)

	case *ast.FunctionDeclaration:
		fn, err := c.function(s.Function)
		if err != nil {
			return nil, err
		}

		return &jsast.FunctionDeclaration{
			ID:        fn.ID,
			Params:    fn.Params,
			Body:      fn.Body,
			Async:     fn.Async,
			Generator: fn.Generator,
		}, nil

	case *ast.IfStatement:
		test, err := c.expression(s.Test)
		if err != nil {
			return nil, err
		}

		consequent, err := c.statement(s.Consequent)
		if err != nil {
			return nil, err
		}

		alternate, err := c.optStatement(s.Alternate)
		if err != nil {
			return nil, err
		}

		return &jsast.IfStatement{Test: test, Consequent: consequent, Alternate: alternate}, nil

	case *ast.LabelledStatement:
		body, err := c.statement(s.Statement)
		if err != nil {
			return nil, err
		}

		return &jsast.LabeledStatement{Label: c.identifier(s.Label), Body: body}, nil

	case *ast.LexicalDeclaration:
		kind := "let"
		if s.Token == token.CONST {
			kind = "const"
		}

		return c.declaration(kind, s.List)

	case *ast.ReturnStatement:
		arg, err := c.optExpression(s.Argument)
		if err != nil {
			return nil, err
		}

		return &jsast.ReturnStatement{Argument: arg}, nil

	case *ast.SwitchStatement:
		return c.switchStatement(s)

	case *ast.ThrowStatement:
		arg, err := c.expression(s.Argument)
		if err != nil {
			return nil, err
		}

		return &jsast.ThrowStatement{Argument: arg}, nil

	case *ast.TryStatement:
		return c.tryStatement(s)

	case *ast.VariableStatement:
		return c.declaration("var", s.List)

	case *ast.WhileStatement:
		test, err := c.expression(s.Test)
		if err != nil {
			return nil, err
		}

		body, err := c.statement(s.Body)
		if err != nil {
			return nil, err
		}

		return &jsast.WhileStatement{Test: test, Body: body}, nil

	case *ast.WithStatement:
		object, err := c.expression(s.Object)
		if err != nil {
			return nil, err
		}

		body, err := c.statement(s.Body)
		if err != nil {
			return nil, err
		}

		return &jsast.WithStatement{Object: object, Body: body}, nil

		// keep-sorted end
	default:
		return nil, c.unsupported(s)
	}
}

func (c converter) declaration(kind string, list []*ast.Binding) (*jsast.VariableDeclaration, error) {
	decl := &jsast.VariableDeclaration{Kind: kind, Declarations: make([]*jsast.VariableDeclarator, 0, len(list))}

	for _, b := range list {
		id, err := c.pattern(b.Target)
		if err != nil {
			return nil, err
		}

		init, err := c.optExpression(b.Initializer)
		if err != nil {
			return nil, err
		}

		decl.Declarations = append(decl.Declarations, &jsast.VariableDeclarator{ID: id, Init: init})
	}

	return decl, nil
}

func (c converter) forStatement(s *ast.ForStatement) (*jsast.ForStatement, error) {
	var (
		init jsast.Node
		err  error
	)

	switch i := s.Initializer.(type) {
	case nil:

	case *ast.ForLoopInitializerExpression:
		init, err = c.expression(i.Expression)

	case *ast.ForLoopInitializerVarDeclList:
		init, err = c.declaration("var", i.List)

	case *ast.ForLoopInitializerLexicalDecl:
		kind := "let"
		if i.LexicalDeclaration.Token == token.CONST {
			kind = "const"
		}

		init, err = c.declaration(kind, i.LexicalDeclaration.List)

	default:
		err = c.unsupported(s)
	}

	if err != nil {
		return nil, err
	}

	test, err := c.optExpression(s.Test)
	if err != nil {
		return nil, err
	}

	update, err := c.optExpression(s.Update)
	if err != nil {
		return nil, err
	}

	body, err := c.statement(s.Body)
	if err != nil {
		return nil, err
	}

	return &jsast.ForStatement{Init: init, Test: test, Update: update, Body: body}, nil
}

func (c converter) forInto(into ast.ForInto) (jsast.Node, error) {
	switch i := into.(type) {
	case *ast.ForIntoVar:
		return c.declaration("var", []*ast.Binding{i.Binding})

	case *ast.ForDeclaration:
		kind := "let"
		if i.IsConst {
			kind = "const"
		}

		id, err := c.pattern(i.Target)
		if err != nil {
			return nil, err
		}

		return jsast.Declare(kind, id, nil), nil

	case *ast.ForIntoExpression:
		return c.pattern(i.Expression)

	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupported, into)
	}
}

func (c converter) switchStatement(s *ast.SwitchStatement) (*jsast.SwitchStatement, error) {
	disc, err := c.expression(s.Discriminant)
	if err != nil {
		return nil, err
	}

	sw := &jsast.SwitchStatement{Discriminant: disc, Cases: make([]*jsast.SwitchCase, 0, len(s.Body))}

	for _, cs := range s.Body {
		test, err := c.optExpression(cs.Test)
		if err != nil {
			return nil, err
		}

		consequent, err := c.statements(cs.Consequent)
		if err != nil {
			return nil, err
		}

		sw.Cases = append(sw.Cases, &jsast.SwitchCase{Test: test, Consequent: consequent})
	}

	return sw, nil
}

func (c converter) tryStatement(s *ast.TryStatement) (*jsast.TryStatement, error) {
	block, err := c.block(s.Body)
	if err != nil {
		return nil, err
	}

	try := &jsast.TryStatement{Block: block}

	if s.Catch != nil {
		handler := &jsast.CatchClause{}

		if s.Catch.Parameter != nil {
			if handler.Param, err = c.pattern(s.Catch.Parameter); err != nil {
				return nil, err
			}
		}

		if handler.Body, err = c.block(s.Catch.Body); err != nil {
			return nil, err
		}

		try.Handler = handler
	}

	if try.Finalizer, err = c.block(s.Finally); err != nil {
		return nil, err
	}

	return try, nil
}
