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

// Package inject introduces fresh names and declarations into the scopes of
// an analyzed program.
//
// An [Injector] mints names that neither capture nor are captured by existing
// code ([Injector.UniqueIdentifier]), declares them at the start of a scope
// ([Injector.InjectVariable]) and shares helper values once per scope
// ([Injector.InjectShared]). Every injection is recorded in the [scope.Tree]
// immediately, so later calls in the same pass observe it.
package inject

import (
	"cmp"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"fillmore-labs.com/jsscope/internal/astutil"
	"fillmore-labs.com/jsscope/jsast"
	"fillmore-labs.com/jsscope/scope"
)

// DefaultPrefix is the prefix of generated names.
const DefaultPrefix = "$__"

// ErrNoDeclarationArea is returned when a scope has no statement list to
// receive declarations, like the head of a for statement.
var ErrNoDeclarationArea = errors.New("scope has no declaration area")

// Injector mutates a program through its scope tree.
//
// Like the tree, an Injector is not safe for concurrent use.
type Injector struct {
	tree   *scope.Tree
	prefix string
	logger *slog.Logger
}

// New creates an [Injector] for the analyzed program of tree.
func New(tree *scope.Tree, opts ...Option) *Injector {
	o := makeOptions(opts)

	return &Injector{tree: tree, prefix: o.prefix, logger: o.logger}
}

// Tree returns the scope tree the injector works on.
func (in *Injector) Tree() *scope.Tree { return in.tree }

// UniqueIdentifier returns a fresh identifier that can be declared in scope
// id. The name is derived from the descriptive name, if given, and is free in
// the scope and all of its ancestors.
//
// The name is not declared; use [Injector.InjectVariable] for that.
func (in *Injector) UniqueIdentifier(id scope.ID, name string) *jsast.Identifier {
	base := in.prefix + sanitize(name)

	if name != "" && in.available(id, base) {
		return in.generated(id, base)
	}

	for i := 0; ; i++ {
		if candidate := base + strconv.Itoa(i); in.available(id, candidate) {
			return in.generated(id, candidate)
		}
	}
}

func (in *Injector) generated(id scope.ID, name string) *jsast.Identifier {
	in.logger.Debug("Generated name", slog.String("name", name), slog.Int("scope", int(id)))

	return jsast.Ident(name)
}

// available reports whether name is free in scope id and every enclosing scope.
func (in *Injector) available(id scope.ID, name string) bool {
	for s := range in.tree.Chain(id) {
		if !in.tree.IsFree(s, name) {
			return false
		}
	}

	return true
}

// sanitize replaces characters not allowed in generated identifiers with '$'.
func sanitize(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case 'a' <= r && r <= 'z', 'A' <= r && r <= 'Z', '0' <= r && r <= '9', r == '_', r == '$':
			return r

		default:
			return '$'
		}
	}, name)
}

// InjectVariable declares ident at the start of scope id, initialized with
// init when it is not nil, and records the name in the scope.
//
// The declaration is placed after a directive prologue and after earlier
// injections. It is located by identity, so replacing the node being visited
// while injecting leaves it in place.
func (in *Injector) InjectVariable(id scope.ID, ident *jsast.Identifier, init jsast.Expr) (*jsast.Identifier, error) {
	if err := in.insert(id, ident, init, false); err != nil {
		return nil, err
	}

	return ident, nil
}

// InjectShared returns an identifier holding value in scope id, injecting a
// declaration the first time key is requested for the scope.
//
// The generated name is derived from key. Shared declarations precede other
// injected declarations and are kept sorted by name.
func (in *Injector) InjectShared(id scope.ID, key string, value jsast.Expr) (*jsast.Identifier, error) {
	if ident, ok := in.tree.Shared(id, key); ok {
		return ident, nil
	}

	ident := in.UniqueIdentifier(id, key)
	if err := in.insert(id, ident, value, true); err != nil {
		return nil, err
	}

	in.tree.StoreShared(id, key, ident)

	return ident, nil
}

func (in *Injector) insert(id scope.ID, ident *jsast.Identifier, init jsast.Expr, shared bool) error {
	if !in.tree.Valid(id) {
		return astutil.InternalError("inject %s: invalid scope %d", ident.Name, id)
	}

	kind := in.tree.Kind(id)

	body, err := declarationArea(in.tree.Anchor(id))
	if err != nil {
		return fmt.Errorf("inject %s into %v scope: %w", ident.Name, kind, err)
	}

	keyword := "var"
	switch kind {
	case scope.Catch, scope.Block:
		keyword = "let"
	}

	decl := jsast.Declare(keyword, ident, init)

	sharedDecls, plainDecls := in.tree.Injected(id)
	rest, sharedDecls, plainDecls := extract(*body, sharedDecls, plainDecls)

	if shared {
		sharedDecls = append(sharedDecls, decl)
		slices.SortStableFunc(sharedDecls, func(a, b jsast.Stmt) int { return cmp.Compare(declaredName(a), declaredName(b)) })
	} else {
		plainDecls = append(plainDecls, decl)
	}

	p := prologue(rest)
	*body = slices.Concat(rest[:p], sharedDecls, plainDecls, rest[p:])

	in.tree.SetInjected(id, sharedDecls, plainDecls)
	in.tree.Declare(id, ident.Name)

	in.logger.Debug("Injected declaration",
		slog.String("name", ident.Name),
		slog.Int("scope", int(id)),
		slog.String("kind", kind.String()),
		slog.Bool("shared", shared))

	return nil
}

// declarationArea returns the statement list receiving declarations for a
// scope anchored at n. Arrow functions with an expression body get a block body.
func declarationArea(n jsast.Node) (*[]jsast.Stmt, error) {
	switch n := n.(type) {
	case *jsast.Program:
		return &n.Body, nil

	case *jsast.FunctionDeclaration:
		return &n.Body.Body, nil

	case *jsast.FunctionExpression:
		return &n.Body.Body, nil

	case *jsast.ArrowFunctionExpression:
		switch body := n.Body.(type) {
		case *jsast.BlockStatement:
			return &body.Body, nil

		case jsast.Expr:
			block := &jsast.BlockStatement{Body: []jsast.Stmt{&jsast.ReturnStatement{Argument: body}}}
			n.Body = block

			return &block.Body, nil
		}

	case *jsast.StaticBlock:
		return &n.Body, nil

	case *jsast.CatchClause:
		return &n.Body.Body, nil

	case *jsast.BlockStatement:
		return &n.Body, nil
	}

	return nil, ErrNoDeclarationArea
}

// extract removes the injected declarations from body. Declarations no longer
// present, because they were replaced or removed, are dropped from the lists.
func extract(body, sharedDecls, plainDecls []jsast.Stmt) (rest, presentShared, presentPlain []jsast.Stmt) {
	injected := make(map[jsast.Stmt]struct{}, len(sharedDecls)+len(plainDecls))
	for _, s := range sharedDecls {
		injected[s] = struct{}{}
	}

	for _, s := range plainDecls {
		injected[s] = struct{}{}
	}

	present := make(map[jsast.Stmt]struct{}, len(injected))
	rest = make([]jsast.Stmt, 0, len(body)+1)

	for _, s := range body {
		if _, ok := injected[s]; ok {
			present[s] = struct{}{}

			continue
		}

		rest = append(rest, s)
	}

	removed := func(s jsast.Stmt) bool {
		_, ok := present[s]

		return !ok
	}

	presentShared = slices.DeleteFunc(slices.Clone(sharedDecls), removed)
	presentPlain = slices.DeleteFunc(slices.Clone(plainDecls), removed)

	return rest, presentShared, presentPlain
}

// prologue returns the length of the directive prologue of body.
func prologue(body []jsast.Stmt) int {
	for i, s := range body {
		if e, ok := s.(*jsast.ExpressionStatement); !ok || e.Directive == "" {
			return i
		}
	}

	return len(body)
}

func declaredName(s jsast.Stmt) string {
	if d, ok := s.(*jsast.VariableDeclaration); ok {
		for id := range astutil.DeclarationNames(d) {
			return id.Name
		}
	}

	return ""
}
