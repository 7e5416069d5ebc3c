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

package run

import (
	"errors"
	"fmt"
	"strings"
)

// Format is the output format of reports.
type Format uint8

const (
	// Text reports one line per finding.
	Text Format = iota

	// JSON reports a JSON array of file reports.
	JSON
)

// ErrUnknownFormat is returned for unsupported format names.
var ErrUnknownFormat = errors.New("unknown format")

// ParseFormat returns the format named s.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "text", "":
		return Text, nil

	case "json":
		return JSON, nil

	default:
		return Text, fmt.Errorf("%w %q", ErrUnknownFormat, s)
	}
}

// String implements [fmt.Stringer] and [flag.Value].
func (f Format) String() string {
	switch f {
	case JSON:
		return "json"

	default:
		return "text"
	}
}

// Set implements [flag.Value].
func (f *Format) Set(s string) error {
	v, err := ParseFormat(s)
	if err != nil {
		return err
	}

	*f = v

	return nil
}

// Type names the flag value type in help output.
func (*Format) Type() string { return "format" }

// UnmarshalText implements [encoding.TextUnmarshaler].
func (f *Format) UnmarshalText(text []byte) error { return f.Set(string(text)) }

// MarshalText implements [encoding.TextMarshaler].
func (f Format) MarshalText() ([]byte, error) { return []byte(f.String()), nil }
