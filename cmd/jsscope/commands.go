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
	"github.com/spf13/cobra"
)

func (r *rootCmd) newGlobalsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "globals file...",
		Short: "Report references to undeclared names",
		Long: `Report references to names declared nowhere in the program.

JavaScript files are analyzed as scripts; HTML documents contribute their
inline scripts. Each name is reported once, at its first occurrence, unless
--all-occurrences is given.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.options.Globals(cmd.Context(), cmd.OutOrStdout(), args)
		},
	}
}

func (r *rootCmd) newUniqueCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "unique file...",
		Short: "Print the first name that can be declared at the top level",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.options.Unique(cmd.Context(), cmd.OutOrStdout(), name, args)
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "descriptive name the generated name is derived from")

	return cmd
}

func (r *rootCmd) newInjectSharedCmd() *cobra.Command {
	var key, value string

	cmd := &cobra.Command{
		Use:   "inject-shared file",
		Short: "Print the program with a shared top-level declaration injected",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.options.InjectShared(cmd.Context(), cmd.OutOrStdout(), args[0], key, value)
		},
	}

	cmd.Flags().StringVarP(&key, "key", "k", "", "cache key, also the descriptive name of the declaration")
	cmd.Flags().StringVar(&value, "value", "", "JavaScript expression to share")

	_ = cmd.MarkFlagRequired("key")
	_ = cmd.MarkFlagRequired("value")

	return cmd
}
