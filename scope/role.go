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

import (
	"fillmore-labs.com/jsscope/jsast"
)

//go:generate go tool stringer -type=Role,PatternKind -output role_string.go

// Role is the part an identifier occurrence plays in the program.
type Role uint8

const (
	// Reference is a read or write of a previously bound (or free) name.
	Reference Role = iota

	// Binding is an occurrence that declares a name.
	Binding

	// Neither is an occurrence that does not name a variable, like a property
	// key or a label.
	Neither
)

// PatternKind tells whether an occurrence sits inside a destructuring target.
type PatternKind uint8

const (
	// NoPattern is an occurrence outside of binding and assignment targets.
	NoPattern PatternKind = iota

	// DeclaringPattern is an occurrence inside a declarator, parameter or catch
	// parameter target.
	DeclaringPattern

	// AssigningPattern is an occurrence inside the target of an assignment or a
	// for-in/of head without declaration.
	AssigningPattern
)

// Occurrence is an identifier at a specific position in the tree: the node,
// its parent, the slot it occupies there and the pattern context it was
// reached through.
//
// Occurrences are transient. Their role depends on the structural context,
// so they are classified on demand.
type Occurrence struct {
	Ident   *jsast.Identifier
	Parent  jsast.Node
	Edge    jsast.Edge
	Pattern PatternKind
}

// Role classifies the occurrence.
func (o Occurrence) Role() Role { return Classify(o) }

// IsReference reports whether the occurrence reads or writes a variable.
func (o Occurrence) IsReference() bool { return Classify(o) == Reference }

// IsReferenceTo reports whether the occurrence is a reference to name.
func (o Occurrence) IsReferenceTo(name string) bool {
	return o.Ident != nil && o.Ident.Name == name && o.IsReference()
}

// Classify decides the role of an identifier occurrence by the slot it
// occupies in its parent. Slots not known to be binding sites or non-variable
// names are references.
func Classify(o Occurrence) Role {
	switch o.Edge {
	case jsast.VariableDeclarator_ID,
		jsast.FunctionDeclaration_Params,
		jsast.FunctionExpression_Params,
		jsast.ArrowFunctionExpression_Params,
		jsast.CatchClause_Param,
		jsast.FunctionDeclaration_ID,
		jsast.FunctionExpression_ID,
		jsast.ClassDeclaration_ID,
		jsast.ClassExpression_ID:
		return Binding

	case jsast.Property_Key,
		jsast.MethodDefinition_Key,
		jsast.PropertyDefinition_Key,
		jsast.MemberExpression_Property:
		if computed(o.Parent) {
			return Reference
		}

		return Neither

	case jsast.Property_Value,
		jsast.ArrayPattern_Elements,
		jsast.RestElement_Argument,
		jsast.AssignmentPattern_Left:
		if o.Pattern == DeclaringPattern {
			return Binding
		}

		return Reference

	case jsast.LabeledStatement_Label,
		jsast.BreakStatement_Label,
		jsast.ContinueStatement_Label,
		jsast.ImportSpecifier_Imported,
		jsast.ImportSpecifier_Local,
		jsast.ImportDefaultSpecifier_Local,
		jsast.ImportNamespaceSpecifier_Local,
		jsast.ExportSpecifier_Exported,
		jsast.MetaProperty_Meta,
		jsast.MetaProperty_Property:
		return Neither

	default:
		return Reference
	}
}

func computed(n jsast.Node) bool {
	switch n := n.(type) {
	case *jsast.Property:
		return n.Computed

	case *jsast.MethodDefinition:
		return n.Computed

	case *jsast.PropertyDefinition:
		return n.Computed

	case *jsast.MemberExpression:
		return n.Computed

	default:
		return false
	}
}

// nextPattern returns the pattern context of a child reached through edge.
// Declaration targets start a declaring pattern, assignment targets an
// assigning one. The context survives only along pattern edges.
func nextPattern(current PatternKind, edge jsast.Edge) PatternKind {
	switch edge {
	case jsast.VariableDeclarator_ID,
		jsast.FunctionDeclaration_Params,
		jsast.FunctionExpression_Params,
		jsast.ArrowFunctionExpression_Params,
		jsast.CatchClause_Param:
		return DeclaringPattern

	case jsast.AssignmentExpression_Left,
		jsast.ForInStatement_Left,
		jsast.ForOfStatement_Left:
		return AssigningPattern

	case jsast.ObjectPattern_Properties,
		jsast.Property_Value,
		jsast.ArrayPattern_Elements,
		jsast.RestElement_Argument,
		jsast.AssignmentPattern_Left:
		return current

	default:
		return NoPattern
	}
}
