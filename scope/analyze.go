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

package scope

import "fillmore-labs.com/jsscope/jsast"

// Analyze builds the scope tree of a program.
//
// Declarations are attributed as follows:
//   - var declarations to the nearest function or program scope,
//   - let, const and class declarations to the innermost scope,
//   - function declarations to the innermost scope, also inside blocks; in
//     sloppy code block-level functions are also declared in the function scope,
//   - parameters to the function scope, catch parameters to the catch scope,
//   - the name of a named function expression to its own scope,
//   - the name of a named class expression to a class scope around it,
//   - imported names to the program scope.
func Analyze(prog *jsast.Program) *Tree {
	t := &Tree{program: prog, byNode: make(map[jsast.Node]ID)}
	t.newScope(Program, Invalid, prog)

	t.walk(t.Root(), t.collect)

	return t
}

func (t *Tree) collect(f *frame) bool {
	switch n := f.node.(type) {
	case *jsast.FunctionDeclaration, *jsast.FunctionExpression, *jsast.ArrowFunctionExpression, *jsast.StaticBlock:
		id := t.newScope(Function, f.scope, n)

		switch f.edge {
		case jsast.MethodDefinition_Value,
			jsast.PropertyDefinition_Value,
			jsast.ClassDeclaration_Body,
			jsast.ClassExpression_Body:
			t.scopes[id].strict = true // class bodies
		}

	case *jsast.CatchClause:
		t.newScope(Catch, f.scope, n)

	case *jsast.BlockStatement:
		switch f.edge {
		case jsast.FunctionDeclaration_Body,
			jsast.FunctionExpression_Body,
			jsast.ArrowFunctionExpression_Body,
			jsast.CatchClause_Body:
			// part of the enclosing function or catch scope

		default:
			t.newScope(Block, f.scope, n)
		}

	case *jsast.ForStatement, *jsast.ForInStatement, *jsast.ForOfStatement:
		t.newScope(For, f.scope, n)

	case *jsast.SwitchStatement:
		t.newScope(Switch, f.scope, n)

	case *jsast.ClassExpression:
		if n.ID != nil {
			t.newScope(Class, f.scope, n)
		}

	case *jsast.Identifier:
		t.bind(f)
	}

	return true
}

func (t *Tree) bind(f *frame) {
	o, _ := f.occurrence()

	switch Classify(o) {
	case Binding:
		target := f.scope
		if f.hoist {
			target = t.FunctionScope(target)
		}

		t.Declare(target, o.Ident.Name)

		// Functions declared in blocks of sloppy code also bind a var.
		if o.Edge == jsast.FunctionDeclaration_ID && !t.scopes[target].strict {
			if fs := t.FunctionScope(target); fs != target {
				t.Declare(fs, o.Ident.Name)
			}
		}

	case Neither:
		switch o.Edge {
		case jsast.ImportSpecifier_Local,
			jsast.ImportDefaultSpecifier_Local,
			jsast.ImportNamespaceSpecifier_Local:
			t.Declare(t.Root(), o.Ident.Name)
		}
	}
}
