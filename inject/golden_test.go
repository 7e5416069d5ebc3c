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

package inject_test

import (
	"bufio"
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/tools/txtar"

	. "fillmore-labs.com/jsscope/inject"
	"fillmore-labs.com/jsscope/internal/testsource"
	"fillmore-labs.com/jsscope/jsast"
	"fillmore-labs.com/jsscope/parse"
)

// TestGolden runs the injections listed in the comment of each archive in
// testdata against input.js, at the scope of the first IT occurrence, and
// compares the result with output.js.
//
// Commands are
//
//	var NAME [EXPR]
//	shared KEY EXPR
func TestGolden(t *testing.T) {
	t.Parallel()

	files, err := filepath.Glob(filepath.Join("testdata", "*.txtar"))
	if err != nil {
		t.Fatal(err)
	}

	if len(files) == 0 {
		t.Fatal("No test archives found")
	}

	for _, file := range files {
		name := strings.TrimSuffix(filepath.Base(file), ".txtar")

		t.Run(name, func(t *testing.T) {
			t.Parallel()

			ar, err := txtar.ParseFile(file)
			if err != nil {
				t.Fatalf("Failed to read %s: %v", file, err)
			}

			input, output := archiveFile(t, ar, "input.js"), archiveFile(t, ar, "output.js")

			prog, tree := testsource.Parse(t, input)
			_, s := testsource.Find(t, tree, testsource.IT)
			in := New(tree)

			sc := bufio.NewScanner(bytes.NewReader(ar.Comment))
			for sc.Scan() {
				cmd, arg, _ := strings.Cut(strings.TrimSpace(sc.Text()), " ")
				switch cmd {
				case "", "#":
					continue

				case "var":
					ident, expr, _ := strings.Cut(arg, " ")
					if _, err := in.InjectVariable(s, jsast.Ident(ident), optExpression(t, expr)); err != nil {
						t.Fatalf("var %s: %v", arg, err)
					}

				case "shared":
					key, expr, _ := strings.Cut(arg, " ")
					if _, err := in.InjectShared(s, key, optExpression(t, expr)); err != nil {
						t.Fatalf("shared %s: %v", arg, err)
					}

				default:
					t.Fatalf("Unknown command %q", cmd)
				}
			}

			sameSource(t, prog, output)
		})
	}
}

func archiveFile(tb testing.TB, ar *txtar.Archive, name string) string {
	tb.Helper()

	for _, f := range ar.Files {
		if f.Name == name {
			return string(f.Data)
		}
	}

	tb.Fatalf("Archive has no %s", name)

	return ""
}

func optExpression(tb testing.TB, src string) jsast.Expr {
	tb.Helper()

	if src == "" {
		return nil
	}

	e, err := parse.Expression(src)
	if err != nil {
		tb.Fatalf("Failed to parse %q: %v", src, err)
	}

	return e
}
