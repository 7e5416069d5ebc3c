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

package parse_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	. "fillmore-labs.com/jsscope/parse"
)

func TestHTMLScripts(t *testing.T) {
	t.Parallel()

	const doc = `<!DOCTYPE html>
<html>
<head>
<script>var a = 1;</script>
<script src="external.js"></script>
<script type="application/json">{"a": 1}</script>
</head>
<body>
<script type="text/javascript; charset=utf-8">b();</script>
<script type="module">import x from "y";</script>
<script TYPE="TEXT/JAVASCRIPT">c(a < 1);</script>
</body>
</html>`

	got, err := HTMLScripts(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("HTMLScripts failed: %v", err)
	}

	want := []Script{
		{Index: 0, Source: "var a = 1;"},
		{Index: 1, Source: "b();"},
		{Index: 2, Source: "c(a < 1);"},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("HTMLScripts mismatch (-want +got):\n%s", diff)
	}
}

func TestHTMLScriptsEmpty(t *testing.T) {
	t.Parallel()

	got, err := HTMLScripts(strings.NewReader(`<p>no scripts</p>`))
	if err != nil {
		t.Fatalf("HTMLScripts failed: %v", err)
	}

	if len(got) != 0 {
		t.Errorf("HTMLScripts = %v, want none", got)
	}
}
