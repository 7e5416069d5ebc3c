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

package run

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/trace"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"fillmore-labs.com/jsscope/inject"
	"fillmore-labs.com/jsscope/internal/astutil"
	"fillmore-labs.com/jsscope/internal/config"
	"fillmore-labs.com/jsscope/jsast"
	"fillmore-labs.com/jsscope/parse"
	"fillmore-labs.com/jsscope/scope"
)

// ErrFailed is returned when at least one input could not be analyzed.
var ErrFailed = errors.New("analysis failed")

// unit is a script to analyze: a JavaScript file or an inline script of an
// HTML document.
type unit struct {
	name string
	src  string
}

// analysis fills the report of a parsed and analyzed script.
type analysis func(f *parse.File, tree *scope.Tree, r *Report) error

// Globals reports the free globals of files.
func (o *Options) Globals(ctx context.Context, w io.Writer, files []string) error {
	return o.run(ctx, w, "globals", files, o.globals)
}

func (o *Options) globals(f *parse.File, tree *scope.Tree, r *Report) error {
	add := func(id *jsast.Identifier) {
		pos := f.Positions[id]
		r.Globals = append(r.Globals, Global{Name: id.Name, Line: pos.Line, Column: pos.Column})
	}

	if o.Behavior.Enabled(config.AllOccurrences) {
		for occ := range tree.GlobalOccurrences() {
			add(occ.Ident)
		}

		return nil
	}

	for _, id := range tree.Globals() {
		add(id)
	}

	return nil
}

// Unique reports the first name derived from name that is free at the top
// level of each file.
func (o *Options) Unique(ctx context.Context, w io.Writer, name string, files []string) error {
	return o.run(ctx, w, "unique", files, func(_ *parse.File, tree *scope.Tree, r *Report) error {
		in := inject.New(tree, inject.WithPrefix(o.Prefix), inject.WithLogger(o.Logger))
		r.Unique = in.UniqueIdentifier(tree.Root(), name).Name

		return nil
	})
}

// InjectShared writes the program in file with a shared declaration of value
// under key injected at the top level.
func (o *Options) InjectShared(ctx context.Context, w io.Writer, file, key, value string) error {
	ctx, task := trace.NewTask(ctx, "inject-shared")
	defer task.End()

	expr, err := parse.Expression(value)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return err
	}

	prog, err := parse.Program(file, string(data))
	if err != nil {
		return err
	}

	tree := scope.Analyze(prog)
	in := inject.New(tree, inject.WithPrefix(o.Prefix), inject.WithLogger(o.Logger))

	ident, err := in.InjectShared(tree.Root(), key, expr)
	if err != nil {
		return err
	}

	o.Logger.LogAttrs(ctx, slog.LevelInfo, "Injected shared value",
		slog.String("file", file), slog.String("key", key), slog.String("name", ident.Name))

	_, err = io.WriteString(w, jsast.Print(prog)+"\n")

	return err
}

// run analyzes files concurrently and writes the reports in input order.
func (o *Options) run(ctx context.Context, w io.Writer, name string, files []string, fn analysis) error {
	ctx, task := trace.NewTask(ctx, name)
	defer task.End()

	trace.Log(ctx, "files", strconv.Itoa(len(files)))
	o.Logger.LogAttrs(ctx, slog.LevelDebug, "Starting run", slog.String("command", name), slog.Any("options", o))

	results := make([][]Report, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(o.Jobs, 1))

	for i, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			results[i] = o.file(ctx, file, fn)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	var reports []Report
	for _, r := range results {
		reports = append(reports, r...)
	}

	if err := o.write(w, reports); err != nil {
		return err
	}

	failed := 0

	for _, r := range reports {
		if r.err != nil {
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d inputs", ErrFailed, failed, len(reports))
	}

	return nil
}

// file analyzes a single input file, which may hold several scripts.
func (o *Options) file(ctx context.Context, file string, fn analysis) []Report {
	defer trace.StartRegion(ctx, "file").End()

	units, skip, err := o.load(file)
	if err != nil {
		return []Report{failed(file, err)}
	}

	if skip != "" {
		o.Logger.LogAttrs(ctx, slog.LevelDebug, "Skipping file", slog.String("file", file), slog.String("reason", skip))

		return []Report{{File: file, Skipped: skip}}
	}

	reports := make([]Report, 0, len(units))

	for _, u := range units {
		r := Report{File: u.name}

		var (
			f   *parse.File
			err error
		)

		trace.WithRegion(ctx, "parse", func() { f, err = parse.ParseFile(u.name, u.src) })

		if err != nil {
			reports = append(reports, failed(u.name, err))

			continue
		}

		var tree *scope.Tree

		trace.WithRegion(ctx, "analyze", func() { tree = scope.Analyze(f.Program) })

		o.Logger.LogAttrs(ctx, slog.LevelDebug, "Analyzed script", slog.String("file", u.name), slog.Int("scopes", tree.Len()))

		if err := fn(f, tree, &r); err != nil {
			reports = append(reports, failed(u.name, err))

			continue
		}

		reports = append(reports, r)
	}

	return reports
}

// load reads file and splits it into scripts. A non-empty skip reason
// excludes the file from the analysis.
func (o *Options) load(file string) (units []unit, skip string, err error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, "", err
	}

	src := string(data)

	current := astutil.NewCurrentFile(file, src)

	switch {
	case current.NoLint():
		return nil, "nolint", nil

	case current.Generated() && !o.Behavior.Enabled(config.IncludeGenerated):
		return nil, "generated", nil
	}

	switch strings.ToLower(filepath.Ext(file)) {
	case ".html", ".htm":
		if !o.Behavior.Enabled(config.HTMLScripts) {
			return nil, "html", nil
		}

		scripts, err := parse.HTMLScripts(bytes.NewReader(data))
		if err != nil {
			return nil, "", fmt.Errorf("%s: %w", file, err)
		}

		units = make([]unit, 0, len(scripts))
		for _, s := range scripts {
			units = append(units, unit{name: fmt.Sprintf("%s#%d", file, s.Index), src: s.Source})
		}

		return units, "", nil

	default:
		return []unit{{name: file, src: src}}, "", nil
	}
}

func failed(file string, err error) Report {
	return Report{File: file, Error: err.Error(), err: err}
}
