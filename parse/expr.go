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

package parse

import (
	"github.com/dop251/goja/ast"
	"github.com/dop251/goja/token"

	"fillmore-labs.com/jsscope/jsast"
)

func (c converter) identifier(id *ast.Identifier) *jsast.Identifier {
	ident := jsast.Ident(string(id.Name))

	if c.positions != nil && c.file != nil {
		pos := c.position(id.Idx0())
		c.positions[ident] = Position{Line: pos.Line, Column: pos.Column}
	}

	return ident
}

func (c converter) optExpression(e ast.Expression) (jsast.Expr, error) {
	if e == nil {
		return nil, nil
	}

	return c.expression(e)
}

func (c converter) expressions(list []ast.Expression) ([]jsast.Expr, error) {
	result := make([]jsast.Expr, 0, len(list))

	for _, e := range list {
		if e == nil {
			result = append(result, nil)
			continue
		}

		x, err := c.expression(e)
		if err != nil {
			return nil, err
		}

		result = append(result, x)
	}

	return result, nil
}

func (c converter) expression(e ast.Expression) (jsast.Expr, error) {
	switch e := e.(type) {
	// keep-sorted start newline_separated=yes
	case *ast.ArrayLiteral:
		elements, err := c.expressions(e.Value)
		if err != nil {
			return nil, err
		}

		return &jsast.ArrayExpression{Elements: elements}, nil

	case *ast.ArrowFunctionLiteral:
		return c.arrow(e)

	case *ast.AssignExpression:
		left, err := c.pattern(e.Left)
		if err != nil {
			return nil, err
		}

		right, err := c.expression(e.Right)
		if err != nil {
			return nil, err
		}

		return &jsast.AssignmentExpression{Operator: assignOperator(e.Operator), Left: left, Right: right}, nil

	case *ast.AwaitExpression:
		arg, err := c.expression(e.Argument)
		if err != nil {
			return nil, err
		}

		return &jsast.AwaitExpression{Argument: arg}, nil

	case *ast.BinaryExpression:
		left, err := c.expression(e.Left)
		if err != nil {
			return nil, err
		}

		right, err := c.expression(e.Right)
		if err != nil {
			return nil, err
		}

		return &jsast.BinaryExpression{Operator: e.Operator.String(), Left: left, Right: right}, nil

	case *ast.BooleanLiteral:
		return jsast.Bool(e.Value), nil

	case *ast.BracketExpression:
		object, optional, err := c.chainLeft(e.Left)
		if err != nil {
			return nil, err
		}

		member, err := c.expression(e.Member)
		if err != nil {
			return nil, err
		}

		return &jsast.MemberExpression{Object: object, Property: member, Computed: true, Optional: optional}, nil

	case *ast.CallExpression:
		callee, optional, err := c.chainLeft(e.Callee)
		if err != nil {
			return nil, err
		}

		args, err := c.expressions(e.ArgumentList)
		if err != nil {
			return nil, err
		}

		return &jsast.CallExpression{Callee: callee, Arguments: args, Optional: optional}, nil

	case *ast.ClassLiteral:
		return c.class(e)

	case *ast.ConditionalExpression:
		test, err := c.expression(e.Test)
		if err != nil {
			return nil, err
		}

		consequent, err := c.expression(e.Consequent)
		if err != nil {
			return nil, err
		}

		alternate, err := c.expression(e.Alternate)
		if err != nil {
			return nil, err
		}

		return &jsast.ConditionalExpression{Test: test, Consequent: consequent, Alternate: alternate}, nil

	case *ast.DotExpression:
		object, optional, err := c.chainLeft(e.Left)
		if err != nil {
			return nil, err
		}

		return &jsast.MemberExpression{
			Object:   object,
			Property: c.identifier(&e.Identifier),
			Optional: optional,
		}, nil

	case *ast.FunctionLiteral:
		return c.function(e)

	case *ast.Identifier:
		return c.identifier(e), nil

	case *ast.MetaProperty:
		return &jsast.MetaProperty{Meta: c.identifier(e.Meta), Property: c.identifier(e.Property)}, nil

	case *ast.NewExpression:
		callee, err := c.expression(e.Callee)
		if err != nil {
			return nil, err
		}

		args, err := c.expressions(e.ArgumentList)
		if err != nil {
			return nil, err
		}

		return &jsast.NewExpression{Callee: callee, Arguments: args}, nil

	case *ast.NullLiteral:
		return jsast.Null(), nil

	case *ast.NumberLiteral:
		return &jsast.Literal{Kind: jsast.LitNumber, Value: e.Literal}, nil

	case *ast.ObjectLiteral:
		return c.object(e)

	case *ast.OptionalChain:
		return c.expression(e.Expression)

	case *ast.PrivateDotExpression:
		object, err := c.expression(e.Left)
		if err != nil {
			return nil, err
		}

		return &jsast.MemberExpression{
			Object:   object,
			Property: &jsast.PrivateIdentifier{Name: string(e.Identifier.Identifier.Name)},
		}, nil

	case *ast.RegExpLiteral:
		return &jsast.Literal{Kind: jsast.LitRegExp, Value: e.Literal}, nil

	case *ast.SequenceExpression:
		list, err := c.expressions(e.Sequence)
		if err != nil {
			return nil, err
		}

		return &jsast.SequenceExpression{Expressions: list}, nil

	case *ast.SpreadElement:
		arg, err := c.expression(e.Expression)
		if err != nil {
			return nil, err
		}

		return &jsast.SpreadElement{Argument: arg}, nil

	case *ast.StringLiteral:
		return jsast.String(string(e.Value)), nil

	case *ast.SuperExpression:
		return &jsast.Super{}, nil

	case *ast.TemplateLiteral:
		return c.template(e)

	case *ast.ThisExpression:
		return jsast.This(), nil

	case *ast.UnaryExpression:
		arg, err := c.expression(e.Operand)
		if err != nil {
			return nil, err
		}

		switch e.Operator {
		case token.INCREMENT, token.DECREMENT:
			return &jsast.UpdateExpression{Operator: e.Operator.String(), Prefix: !e.Postfix, Argument: arg}, nil
		}

		return &jsast.UnaryExpression{Operator: e.Operator.String(), Argument: arg}, nil

	case *ast.YieldExpression:
		arg, err := c.optExpression(e.Argument)
		if err != nil {
			return nil, err
		}

		return &jsast.YieldExpression{Argument: arg, Delegate: e.Delegate}, nil

		// keep-sorted end
	default:
		return nil, c.unsupported(e)
	}
}

// chainLeft converts the object or callee of a member or call expression,
// reporting whether it is followed by an optional chaining operator.
func (c converter) chainLeft(e ast.Expression) (jsast.Expr, bool, error) {
	optional := false
	if o, ok := e.(*ast.Optional); ok {
		e, optional = o.Expression, true
	}

	x, err := c.expression(e)

	return x, optional, err
}

// assignOperator returns the source form of an assignment operator. Compound
// assignments carry the underlying binary operator.
func assignOperator(op token.Token) string {
	if op == token.ASSIGN {
		return "="
	}

	return op.String() + "="
}

func (c converter) template(e *ast.TemplateLiteral) (jsast.Expr, error) {
	exprs, err := c.expressions(e.Expressions)
	if err != nil {
		return nil, err
	}

	tl := &jsast.TemplateLiteral{Quasis: make([]string, 0, len(e.Elements)), Expressions: exprs}
	for _, el := range e.Elements {
		tl.Quasis = append(tl.Quasis, el.Literal)
	}

	if e.Tag == nil {
		return tl, nil
	}

	tag, err := c.expression(e.Tag)
	if err != nil {
		return nil, err
	}

	return &jsast.TaggedTemplateExpression{Tag: tag, Quasi: tl}, nil
}

// ----------------------------------------------------------------------------
// Functions and classes

func (c converter) params(pl *ast.ParameterList) ([]jsast.Pattern, error) {
	if pl == nil {
		return nil, nil
	}

	params := make([]jsast.Pattern, 0, len(pl.List)+1)

	for _, b := range pl.List {
		p, err := c.binding(b)
		if err != nil {
			return nil, err
		}

		params = append(params, p)
	}

	if pl.Rest != nil {
		rest, err := c.pattern(pl.Rest)
		if err != nil {
			return nil, err
		}

		params = append(params, &jsast.RestElement{Argument: rest})
	}

	return params, nil
}

// binding converts a parameter, turning a default value into an [jsast.AssignmentPattern].
func (c converter) binding(b *ast.Binding) (jsast.Pattern, error) {
	target, err := c.pattern(b.Target)
	if err != nil {
		return nil, err
	}

	if b.Initializer == nil {
		return target, nil
	}

	init, err := c.expression(b.Initializer)
	if err != nil {
		return nil, err
	}

	return &jsast.AssignmentPattern{Left: target, Right: init}, nil
}

func (c converter) function(fn *ast.FunctionLiteral) (*jsast.FunctionExpression, error) {
	params, err := c.params(fn.ParameterList)
	if err != nil {
		return nil, err
	}

	body, err := c.functionBody(fn.Body)
	if err != nil {
		return nil, err
	}

	f := &jsast.FunctionExpression{Params: params, Body: body, Async: fn.Async, Generator: fn.Generator}
	if fn.Name != nil {
		f.ID = c.identifier(fn.Name)
	}

	return f, nil
}

func (c converter) arrow(fn *ast.ArrowFunctionLiteral) (*jsast.ArrowFunctionExpression, error) {
	params, err := c.params(fn.ParameterList)
	if err != nil {
		return nil, err
	}

	a := &jsast.ArrowFunctionExpression{Params: params, Async: fn.Async}

	switch body := fn.Body.(type) {
	case *ast.BlockStatement:
		a.Body, err = c.functionBody(body)

	case *ast.ExpressionBody:
		a.Body, err = c.expression(body.Expression)

	default:
		err = c.unsupported(fn)
	}

	if err != nil {
		return nil, err
	}

	return a, nil
}

func (c converter) class(cls *ast.ClassLiteral) (*jsast.ClassExpression, error) {
	superClass, err := c.optExpression(cls.SuperClass)
	if err != nil {
		return nil, err
	}

	ce := &jsast.ClassExpression{SuperClass: superClass, Body: make([]jsast.Node, 0, len(cls.Body))}
	if cls.Name != nil {
		ce.ID = c.identifier(cls.Name)
	}

	for _, el := range cls.Body {
		member, err := c.classElement(el)
		if err != nil {
			return nil, err
		}

		ce.Body = append(ce.Body, member)
	}

	return ce, nil
}

func (c converter) classElement(el ast.ClassElement) (jsast.Node, error) {
	switch el := el.(type) {
	case *ast.MethodDefinition:
		key, err := c.propertyKey(el.Key, el.Computed)
		if err != nil {
			return nil, err
		}

		fn, err := c.function(el.Body)
		if err != nil {
			return nil, err
		}

		kind := "method"

		switch {
		case el.Kind == ast.PropertyKindGet:
			kind = "get"

		case el.Kind == ast.PropertyKindSet:
			kind = "set"

		case !el.Static && !el.Computed && isName(key, "constructor"):
			kind = "constructor"
		}

		return &jsast.MethodDefinition{Key: key, Value: fn, Kind: kind, Computed: el.Computed, Static: el.Static}, nil

	case *ast.FieldDefinition:
		key, err := c.propertyKey(el.Key, el.Computed)
		if err != nil {
			return nil, err
		}

		value, err := c.optExpression(el.Initializer)
		if err != nil {
			return nil, err
		}

		return &jsast.PropertyDefinition{Key: key, Value: value, Computed: el.Computed, Static: el.Static}, nil

	case *ast.ClassStaticBlock:
		block, err := c.functionBody(el.Block)
		if err != nil {
			return nil, err
		}

		return &jsast.StaticBlock{Body: block.Body}, nil

	default:
		return nil, c.unsupported(el)
	}
}

func isName(e jsast.Expr, name string) bool {
	id, ok := e.(*jsast.Identifier)

	return ok && id.Name == name
}

// propertyKey converts the key of a property or class member. goja represents
// identifier-named keys as string literals without quotes.
func (c converter) propertyKey(key ast.Expression, computed bool) (jsast.Expr, error) {
	if computed {
		return c.expression(key)
	}

	switch k := key.(type) {
	case *ast.StringLiteral:
		if l := k.Literal; l != "" && l[0] != '"' && l[0] != '\'' {
			return jsast.Ident(string(k.Value)), nil
		}

	case *ast.PrivateIdentifier:
		return &jsast.PrivateIdentifier{Name: string(k.Identifier.Name)}, nil
	}

	return c.expression(key)
}

// ----------------------------------------------------------------------------
// Object literals and patterns

func (c converter) object(o *ast.ObjectLiteral) (*jsast.ObjectExpression, error) {
	obj := &jsast.ObjectExpression{Properties: make([]jsast.Node, 0, len(o.Value))}

	for _, p := range o.Value {
		switch p := p.(type) {
		case *ast.PropertyShort:
			key := c.identifier(&p.Name)
			obj.Properties = append(obj.Properties, &jsast.Property{Key: key, Value: key, Kind: "init", Shorthand: true})

		case *ast.PropertyKeyed:
			key, err := c.propertyKey(p.Key, p.Computed)
			if err != nil {
				return nil, err
			}

			value, err := c.expression(p.Value)
			if err != nil {
				return nil, err
			}

			prop := &jsast.Property{Key: key, Value: value, Kind: "init", Computed: p.Computed}

			switch p.Kind {
			case ast.PropertyKindGet:
				prop.Kind = "get"

			case ast.PropertyKindSet:
				prop.Kind = "set"

			case ast.PropertyKindMethod:
				prop.Method = true
			}

			obj.Properties = append(obj.Properties, prop)

		case *ast.SpreadElement:
			arg, err := c.expression(p.Expression)
			if err != nil {
				return nil, err
			}

			obj.Properties = append(obj.Properties, &jsast.SpreadElement{Argument: arg})

		default:
			return nil, c.unsupported(p)
		}
	}

	return obj, nil
}

// pattern converts a binding or assignment target.
func (c converter) pattern(n ast.Node) (jsast.Pattern, error) {
	switch n := n.(type) {
	case *ast.Identifier:
		return c.identifier(n), nil

	case *ast.ObjectPattern:
		return c.objectPattern(n)

	case *ast.ArrayPattern:
		return c.arrayPattern(n)

	case *ast.AssignExpression:
		if n.Operator != token.ASSIGN {
			return nil, c.unsupported(n)
		}

		left, err := c.pattern(n.Left)
		if err != nil {
			return nil, err
		}

		right, err := c.expression(n.Right)
		if err != nil {
			return nil, err
		}

		return &jsast.AssignmentPattern{Left: left, Right: right}, nil

	case *ast.DotExpression, *ast.BracketExpression, *ast.PrivateDotExpression:
		e, err := c.expression(n.(ast.Expression))
		if err != nil {
			return nil, err
		}

		if m, ok := e.(*jsast.MemberExpression); ok {
			return m, nil
		}

		return nil, c.unsupported(n)

	default:
		return nil, c.unsupported(n)
	}
}

func (c converter) objectPattern(o *ast.ObjectPattern) (*jsast.ObjectPattern, error) {
	pat := &jsast.ObjectPattern{Properties: make([]jsast.Node, 0, len(o.Properties)+1)}

	for _, p := range o.Properties {
		switch p := p.(type) {
		case *ast.PropertyShort:
			key := c.identifier(&p.Name)
			prop := &jsast.Property{Key: key, Value: key, Kind: "init", Shorthand: true}

			if p.Initializer != nil {
				init, err := c.expression(p.Initializer)
				if err != nil {
					return nil, err
				}

				prop.Value = &jsast.AssignmentPattern{Left: key, Right: init}
			}

			pat.Properties = append(pat.Properties, prop)

		case *ast.PropertyKeyed:
			key, err := c.propertyKey(p.Key, p.Computed)
			if err != nil {
				return nil, err
			}

			value, err := c.pattern(p.Value)
			if err != nil {
				return nil, err
			}

			pat.Properties = append(pat.Properties, &jsast.Property{Key: key, Value: value, Kind: "init", Computed: p.Computed})

		default:
			return nil, c.unsupported(p)
		}
	}

	if o.Rest != nil {
		rest, err := c.pattern(o.Rest)
		if err != nil {
			return nil, err
		}

		pat.Properties = append(pat.Properties, &jsast.RestElement{Argument: rest})
	}

	return pat, nil
}

func (c converter) arrayPattern(a *ast.ArrayPattern) (*jsast.ArrayPattern, error) {
	pat := &jsast.ArrayPattern{Elements: make([]jsast.Pattern, 0, len(a.Elements)+1)}

	for _, el := range a.Elements {
		if el == nil {
			pat.Elements = append(pat.Elements, nil)
			continue
		}

		p, err := c.pattern(el)
		if err != nil {
			return nil, err
		}

		pat.Elements = append(pat.Elements, p)
	}

	if a.Rest != nil {
		rest, err := c.pattern(a.Rest)
		if err != nil {
			return nil, err
		}

		pat.Elements = append(pat.Elements, &jsast.RestElement{Argument: rest})
	}

	return pat, nil
}
