// Copyright 2025 walteh LLC
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

package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/walteh/focustune/cmd/focustune/opts"
	"github.com/walteh/focustune/pkg/rule"
)

// NewRulesCmd creates a command listing the rewrite rules in the order they run
func NewRulesCmd(opts *opts.RootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the rewrite rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for i, r := range rule.Default().Rules() {
				fmt.Fprintf(opts.Console, "%d. %-18s %s\n", i+1, r.Name(), r.Description())
			}
			return nil
		},
	}
}
