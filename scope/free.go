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

// IsFree reports whether a new binding of name can be introduced in scope id
// without capturing, or being captured by, existing code.
//
// A name is not free when the scope declares it, or when a reference below
// the scope's anchor would bind to the new declaration: it resolves to the
// scope itself or is not declared on its way out of the scope. References
// captured by a declaration in a nested scope do not count.
func (t *Tree) IsFree(id ID, name string) bool {
	if t.Declares(id, name) {
		return false
	}

	for o, s := range t.Occurrences(id) {
		if !o.IsReferenceTo(name) {
			continue
		}

		if !t.capturedBelow(s, id, name) {
			return false
		}
	}

	return true
}

// IsUsed is the negation of [Tree.IsFree].
func (t *Tree) IsUsed(id ID, name string) bool { return !t.IsFree(id, name) }

// capturedBelow reports whether a reference to name located in scope from
// resolves to a scope strictly inside target.
func (t *Tree) capturedBelow(from, target ID, name string) bool {
	for s := range t.Chain(from) {
		if s == target {
			return false
		}

		if t.Declares(s, name) {
			return true
		}
	}

	return false // escapes, and the reference is located outside target
}
