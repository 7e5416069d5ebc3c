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
	"log/slog"
	"runtime"

	"fillmore-labs.com/jsscope/inject"
	"fillmore-labs.com/jsscope/internal/config"
)

// Options represent the configuration of a command line run.
type Options struct {
	// Behavior holds reporting options.
	Behavior config.BitMask[config.Behavior]

	// Format selects the report format.
	Format Format

	// Jobs limits the number of files analyzed concurrently.
	Jobs int

	// Prefix is the prefix of generated names.
	Prefix string

	// Logger receives diagnostic records.
	Logger *slog.Logger
}

// DefaultOptions initializes and returns a new Options instance with default values.
func DefaultOptions() *Options {
	return &Options{
		Behavior: config.DefaultBehavior(),
		Format:   Text,
		Jobs:     runtime.GOMAXPROCS(0),
		Prefix:   inject.DefaultPrefix,
		Logger:   slog.New(slog.DiscardHandler),
	}
}

// New returns the default [Options] with opts applied.
func New(opts ...Option) *Options {
	o := DefaultOptions()
	OptionList(opts).apply(o)

	return o
}

// LogValue implements [slog.LogValuer].
func (o *Options) LogValue() slog.Value {
	behavior := make([]string, 0, 4)
	for flag := range o.Behavior.Flags() {
		behavior = append(behavior, flag.String())
	}

	return slog.GroupValue(
		slog.Any("behavior", behavior),
		slog.String("format", o.Format.String()),
		slog.Int("jobs", o.Jobs),
		slog.String("prefix", o.Prefix),
	)
}

// Option configures a run.
type Option interface {
	apply(o *Options)
	LogAttr() slog.Attr
}

// OptionList is a list of [Option] values that itself satisfies the [Option] interface.
type OptionList []Option

// LogValue implements [slog.LogValuer].
func (s OptionList) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(s))
	for _, opt := range s {
		if opt == nil {
			continue
		}

		as = append(as, opt.LogAttr())
	}

	return slog.GroupValue(as...)
}

func (s OptionList) apply(o *Options) {
	for _, opt := range s {
		if opt == nil {
			continue
		}

		opt.apply(o)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (s OptionList) LogAttr() slog.Attr {
	return slog.Any("options", s)
}

// WithBehavior is an [Option] to enable or disable a behavior flag.
func WithBehavior(flag config.Behavior, enabled bool) Option {
	return behaviorOption{flag: flag, enabled: enabled}
}

type behaviorOption struct {
	flag    config.Behavior
	enabled bool
}

func (b behaviorOption) apply(o *Options) {
	o.Behavior.Set(b.flag, b.enabled)
}

func (b behaviorOption) LogAttr() slog.Attr {
	return slog.Bool(b.flag.String(), b.enabled)
}

// WithFormat is an [Option] to select the report format.
func WithFormat(format Format) Option { return formatOption{format: format} }

type formatOption struct{ format Format }

func (f formatOption) apply(o *Options) {
	o.Format = f.format
}

func (f formatOption) LogAttr() slog.Attr {
	return slog.String("format", f.format.String())
}

// WithJobs is an [Option] to limit concurrency. Values below one mean one job per CPU.
func WithJobs(jobs int) Option { return jobsOption{jobs: jobs} }

type jobsOption struct{ jobs int }

func (j jobsOption) apply(o *Options) {
	if j.jobs < 1 {
		o.Jobs = runtime.GOMAXPROCS(0)

		return
	}

	o.Jobs = j.jobs
}

func (j jobsOption) LogAttr() slog.Attr {
	return slog.Int("jobs", j.jobs)
}

// WithPrefix is an [Option] to configure the prefix of generated names.
func WithPrefix(prefix string) Option { return prefixOption{prefix: prefix} }

type prefixOption struct{ prefix string }

func (p prefixOption) apply(o *Options) {
	o.Prefix = p.prefix
}

func (p prefixOption) LogAttr() slog.Attr {
	return slog.String("prefix", p.prefix)
}

// WithLogger is an [Option] to receive diagnostic records.
func WithLogger(logger *slog.Logger) Option { return loggerOption{logger: logger} }

type loggerOption struct{ logger *slog.Logger }

func (l loggerOption) apply(o *Options) {
	if l.logger != nil {
		o.Logger = l.logger
	}
}

func (l loggerOption) LogAttr() slog.Attr {
	return slog.Bool("logger", l.logger != nil)
}
