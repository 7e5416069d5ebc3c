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

package main

import (
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"fillmore-labs.com/jsscope/internal/config"
	"fillmore-labs.com/jsscope/internal/run"
)

// rootCmd holds the flag state shared by all subcommands.
type rootCmd struct {
	*cobra.Command

	configFile string
	verbose    int

	behavior config.BitMask[config.Behavior]
	format   run.Format
	jobs     int
	prefix   string

	options *run.Options
}

// behaviorFlags are the boolean flags backed by [config.Behavior] bits.
var behaviorFlags = [...]struct {
	name  string
	flag  config.Behavior
	usage string
}{
	{"all-occurrences", config.AllOccurrences, "report every occurrence of a global"},
	{"generated", config.IncludeGenerated, "include generated and minified files"},
	{"html", config.HTMLScripts, "analyze inline scripts of HTML documents"},
	{"color", config.Color, "highlight text output"},
}

func newRootCmd() *rootCmd {
	r := &rootCmd{
		Command: &cobra.Command{
			Use:           "jsscope",
			Short:         "Scope analysis for JavaScript sources",
			SilenceUsage:  true,
		},
		behavior: config.DefaultBehavior(),
	}

	r.PersistentPreRunE = r.prepare

	fs := r.PersistentFlags()
	fs.StringVarP(&r.configFile, "config", "c", "", "YAML configuration `file`")
	fs.CountVarP(&r.verbose, "verbose", "v", "increase log verbosity")
	fs.StringVar(&r.prefix, "prefix", "", "prefix of generated names")
	fs.IntVarP(&r.jobs, "jobs", "j", 0, "number of files analyzed concurrently (default: number of CPUs)")
	fs.Var(&r.format, "format", "report format: text or json")

	for _, f := range behaviorFlags {
		boolVar(fs, &r.behavior, f.flag, f.name, f.usage)
	}

	r.AddCommand(r.newGlobalsCmd(), r.newUniqueCmd(), r.newInjectSharedCmd())

	return r
}

// prepare builds the run options: defaults, then the configuration file,
// then flags given on the command line.
func (r *rootCmd) prepare(cmd *cobra.Command, _ []string) error {
	opts := run.OptionList{run.WithBehavior(config.Color, !color.NoColor)}

	if r.configFile != "" {
		s, err := loadSettings(r.configFile)
		if err != nil {
			return err
		}

		opts = append(opts, s.Options()...)
	}

	opts = append(opts, r.flagOptions(cmd.Flags())...)

	level := slog.LevelWarn - slog.Level(4*r.verbose)
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	r.options = run.New(append(opts, run.WithLogger(logger))...)

	logger.LogAttrs(cmd.Context(), slog.LevelDebug, "Options", opts.LogAttr())

	return nil
}

// flagOptions returns the options of flags set on the command line.
func (r *rootCmd) flagOptions(fs *pflag.FlagSet) run.OptionList {
	var opts run.OptionList

	for _, f := range behaviorFlags {
		if fs.Changed(f.name) {
			opts = append(opts, run.WithBehavior(f.flag, r.behavior.Enabled(f.flag)))
		}
	}

	if fs.Changed("prefix") {
		opts = append(opts, run.WithPrefix(r.prefix))
	}

	if fs.Changed("jobs") {
		opts = append(opts, run.WithJobs(r.jobs))
	}

	if fs.Changed("format") {
		opts = append(opts, run.WithFormat(r.format))
	}

	return opts
}
