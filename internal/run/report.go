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
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"fillmore-labs.com/jsscope/internal/config"
)

// Report is the result for a single script.
type Report struct {
	File    string   `json:"file"`
	Skipped string   `json:"skipped,omitempty"`
	Error   string   `json:"error,omitempty"`
	Globals []Global `json:"globals,omitempty"`
	Unique  string   `json:"unique,omitempty"`

	err error
}

// Global is a free reference.
type Global struct {
	Name   string `json:"name"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

func (o *Options) write(w io.Writer, reports []Report) error {
	switch o.Format {
	case JSON:
		if reports == nil {
			reports = []Report{}
		}

		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(reports)

	default:
		return o.writeText(w, reports)
	}
}

func (o *Options) writeText(w io.Writer, reports []Report) error {
	var (
		file  = o.paint(color.FgCyan)
		name  = o.paint(color.FgYellow, color.Bold)
		fault = o.paint(color.FgRed)
	)

	for _, r := range reports {
		var err error

		switch {
		case r.Skipped != "":
			continue

		case r.Error != "":
			_, err = fmt.Fprintf(w, "%s: %s\n", file.Sprint(r.File), fault.Sprint(r.Error))

		case r.Unique != "":
			_, err = fmt.Fprintf(w, "%s: %s\n", file.Sprint(r.File), name.Sprint(r.Unique))

		default:
			for _, g := range r.Globals {
				if _, err = fmt.Fprintf(w, "%s:%d:%d: %s\n", file.Sprint(r.File), g.Line, g.Column, name.Sprint(g.Name)); err != nil {
					break
				}
			}
		}

		if err != nil {
			return err
		}
	}

	return nil
}

func (o *Options) paint(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)

	if o.Behavior.Enabled(config.Color) {
		c.EnableColor()
	} else {
		c.DisableColor()
	}

	return c
}
