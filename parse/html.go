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
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Script is the body of an inline <script> element.
type Script struct {
	Index  int // position among the inline scripts of the document
	Source string
}

// HTMLScripts returns the inline JavaScript of an HTML document in document
// order. External scripts (with a src attribute) and scripts of other types,
// like JSON data blocks or templates, are skipped.
func HTMLScripts(r io.Reader) ([]Script, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var scripts []Script

	for n := range doc.Descendants() {
		if n.Type != html.ElementNode || n.DataAtom != atom.Script || !isInlineJavaScript(n) {
			continue
		}

		var src strings.Builder
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.TextNode {
				src.WriteString(c.Data)
			}
		}

		scripts = append(scripts, Script{Index: len(scripts), Source: src.String()})
	}

	return scripts, nil
}

func isInlineJavaScript(n *html.Node) bool {
	for _, a := range n.Attr {
		switch strings.ToLower(a.Key) {
		case "src":
			return false

		case "type":
			if !javaScriptType(a.Val) {
				return false
			}
		}
	}

	return true
}

// javaScriptType reports whether a script type attribute denotes classic JavaScript.
func javaScriptType(typ string) bool {
	typ, _, _ = strings.Cut(typ, ";")

	switch strings.ToLower(strings.TrimSpace(typ)) {
	case "", "text/javascript", "application/javascript", "text/ecmascript",
		"application/ecmascript", "application/x-javascript", "text/jscript":
		return true

	default:
		return false
	}
}
