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
	"log/slog"
)

// Option configures specific behavior of a [New] injector.
type Option interface {
	apply(o *options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithPrefix is an [Option] to configure the prefix of generated names.
func WithPrefix(prefix string) Option { return prefixOption{prefix: prefix} }

type prefixOption struct{ prefix string }

func (o prefixOption) apply(r *options) {
	r.prefix = o.prefix
}

func (o prefixOption) LogAttr() slog.Attr {
	return slog.String("prefix", o.prefix)
}

// WithLogger is an [Option] to receive debug records of generated names and injected declarations.
func WithLogger(logger *slog.Logger) Option { return loggerOption{logger: logger} }

type loggerOption struct{ logger *slog.Logger }

func (o loggerOption) apply(r *options) {
	if o.logger == nil {
		r.logger = discard

		return
	}

	r.logger = o.logger
}

func (o loggerOption) LogAttr() slog.Attr {
	return slog.Bool("logger", o.logger != nil)
}

// options represent the configuration of an [Injector].
type options struct {
	// prefix is prepended to every generated name.
	prefix string

	// logger receives debug records.
	logger *slog.Logger
}

var discard = slog.New(slog.DiscardHandler)

// makeOptions returns an [options] struct with overriding [Options] applied.
func makeOptions(opts Options) *options {
	o := &options{prefix: DefaultPrefix, logger: discard}
	opts.apply(o)

	return o
}
