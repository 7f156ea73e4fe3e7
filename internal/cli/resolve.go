/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// CallerFlag names the flag identifying the requesting module.
const CallerFlag = "caller"

func newResolve(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve [--caller id] REQUEST...",
		Short: "Resolve requests and print the rewritten paths",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			caller, err := cmd.Flags().GetString(CallerFlag)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, req := range args {
				res, err := a.eng.Resolve(cmd.Context(), caller, req)
				if err != nil {
					return fmt.Errorf("resolve %s: %w", req, err)
				}
				if res.Resolved {
					fmt.Fprintf(out, "%s -> %s\n", req, res.Path)
				} else {
					fmt.Fprintf(out, "%s (unresolved)\n", req)
				}
			}
			return nil
		},
		DisableAutoGenTag: true,
		SilenceUsage:      true,
	}
	cmd.Flags().String(CallerFlag, "cli", "identifier of the requesting module")
	return cmd
}
