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
	"runtime/debug"

	"github.com/spf13/cobra"
)

// BuildVersion is set at link time.
var BuildVersion = "n/a"

func newVersion() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the alx version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ver := BuildVersion
			if ver == "n/a" {
				if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
					ver = info.Main.Version
				}
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "alx %s\n", ver)
			return err
		},
		DisableAutoGenTag: true,
		SilenceUsage:      true,
	}
}
