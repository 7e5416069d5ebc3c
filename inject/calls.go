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

package inject

import (
	"fillmore-labs.com/jsscope/jsast"
	"fillmore-labs.com/jsscope/scope"
)

// Args are the arguments of a bound function, either an [ArgList] known
// statically or an [ArgArray] evaluated at run time.
type Args interface {
	args()
}

// ArgList is a literal sequence of arguments.
type ArgList []jsast.Expr

// ArgArray is an expression evaluating to an array of arguments.
type ArgArray struct{ Expr jsast.Expr }

func (ArgList) args()  {}
func (ArgArray) args() {}

// Well-known native members, referenced by their path.
const (
	hasOwnProperty           = "Object.prototype.hasOwnProperty"
	getOwnPropertyDescriptor = "Object.getOwnPropertyDescriptor"
	getPrototypeOf           = "Object.getPrototypeOf"
	arraySlice               = "Array.prototype.slice"
	functionBind             = "Function.prototype.bind"
)

// native returns a shared reference to the member at path.
func (in *Injector) native(id scope.ID, path string) (*jsast.Identifier, error) {
	return in.InjectShared(id, path, jsast.Path(path))
}

// CallHasOwnProperty returns Object.prototype.hasOwnProperty.call(obj, prop),
// referencing the method through a shared variable of scope id.
func (in *Injector) CallHasOwnProperty(id scope.ID, obj jsast.Expr, prop string) (*jsast.CallExpression, error) {
	fn, err := in.native(id, hasOwnProperty)
	if err != nil {
		return nil, err
	}

	return jsast.Call(jsast.Member(fn, "call"), obj, jsast.String(prop)), nil
}

// CallGetOwnPropertyDescriptor returns Object.getOwnPropertyDescriptor(obj, prop).
func (in *Injector) CallGetOwnPropertyDescriptor(id scope.ID, obj jsast.Expr, prop string) (*jsast.CallExpression, error) {
	fn, err := in.native(id, getOwnPropertyDescriptor)
	if err != nil {
		return nil, err
	}

	return jsast.Call(fn, obj, jsast.String(prop)), nil
}

// CallGetPrototypeOf returns Object.getPrototypeOf(obj).
func (in *Injector) CallGetPrototypeOf(id scope.ID, obj jsast.Expr) (*jsast.CallExpression, error) {
	fn, err := in.native(id, getPrototypeOf)
	if err != nil {
		return nil, err
	}

	return jsast.Call(fn, obj), nil
}

// CallArraySlice returns Array.prototype.slice.call(obj, bounds...). Missing
// begin and end bounds are omitted.
func (in *Injector) CallArraySlice(id scope.ID, obj jsast.Expr, bounds ...jsast.Expr) (*jsast.CallExpression, error) {
	fn, err := in.native(id, arraySlice)
	if err != nil {
		return nil, err
	}

	return jsast.Call(jsast.Member(fn, "call"), append([]jsast.Expr{obj}, bounds...)...), nil
}

// CallFunctionBind returns Function.prototype.bind applied to fn with the
// receiver this and args.
//
// An [ArgList] yields bind.call(fn, this, args...). An [ArgArray] yields
// bind.apply(fn, [this].concat(args)), as its length is only known at run time.
func (in *Injector) CallFunctionBind(id scope.ID, fn, this jsast.Expr, args Args) (*jsast.CallExpression, error) {
	bind, err := in.native(id, functionBind)
	if err != nil {
		return nil, err
	}

	switch args := args.(type) {
	case ArgArray:
		receiver := jsast.Call(jsast.Member(jsast.Array(this), "concat"), args.Expr)

		return jsast.Call(jsast.Member(bind, "apply"), fn, receiver), nil

	case ArgList:
		return jsast.Call(jsast.Member(bind, "call"), append([]jsast.Expr{fn, this}, args...)...), nil

	default:
		return jsast.Call(jsast.Member(bind, "call"), fn, this), nil
	}
}
