// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

package astutil

import (
	"bufio"
	"regexp"
	"strings"
)

// jsscope is the name of the tool.
const jsscope = "jsscope"

// maxHeaderLines bounds the lines searched for file markers.
const maxHeaderLines = 5

// CurrentFile holds source file information for analysis.
type CurrentFile struct {
	name      string
	generated bool
	nolint    bool
}

// NewCurrentFile creates a new [CurrentFile] from the file name and the
// leading lines of its source.
func NewCurrentFile(name, src string) CurrentFile {
	c := CurrentFile{name: name, generated: isMinified(name)}

	sc := bufio.NewScanner(strings.NewReader(src))
	for i := 0; i < maxHeaderLines && sc.Scan(); i++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		if !strings.HasPrefix(line, "//") && !strings.HasPrefix(line, "/*") {
			break
		}

		if generatedPattern.MatchString(line) {
			c.generated = true
		}

		if CommentHasNoLint(line) {
			c.nolint = true
		}
	}

	return c
}

// Name returns the file name.
func (c CurrentFile) Name() string { return c.name }

// Generated returns true if the file is a generated or minified file.
func (c CurrentFile) Generated() bool { return c.generated }

// NoLint returns true if the file opts out of the analysis with a
// nolint:jsscope header comment.
func (c CurrentFile) NoLint() bool { return c.nolint }

func isMinified(name string) bool {
	return strings.HasSuffix(name, ".min.js") || strings.HasSuffix(name, ".min.mjs")
}

var generatedPattern = regexp.MustCompile(`^(//|/\*)\s*(Code generated .* DO NOT EDIT\.|@generated\b)`)

var nolintPattern = regexp.MustCompile(`^(?://|/\*)\s*nolint:([a-zA-Z0-9,_-]+)`)

// CommentHasNoLint checks if the comment line contains a nolint:jsscope directive.
func CommentHasNoLint(comment string) bool {
	matches := nolintPattern.FindStringSubmatch(comment)
	if matches == nil {
		return false
	}

	for linter := range strings.SplitSeq(matches[1], ",") {
		if l := strings.ToLower(strings.TrimSpace(linter)); l == jsscope || l == "all" {
			return true
		}
	}

	return false
}
