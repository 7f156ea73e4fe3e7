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
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"dirpx.dev/alx/apis"
	"dirpx.dev/alx/manifest"
)

// FilterFlag names the glob flag of the aliases command.
const FilterFlag = "filter"

func newStats(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats [REQUEST...]",
		Short: "Resolve the given requests and print engine statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, req := range args {
				if _, err := a.eng.Resolve(cmd.Context(), "cli", req); err != nil {
					return fmt.Errorf("resolve %s: %w", req, err)
				}
			}
			renderStats(cmd.OutOrStdout(), a.eng.Stats())
			return nil
		},
		DisableAutoGenTag: true,
		SilenceUsage:      true,
	}
}

func newAliases(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "aliases [--filter glob]",
		Short: "List registered aliases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern, err := cmd.Flags().GetString(FilterFlag)
			if err != nil {
				return err
			}
			entries, err := manifest.Filter(a.eng.Aliases(), pattern)
			if err != nil {
				return err
			}
			renderAliases(cmd.OutOrStdout(), entries)
			return nil
		},
		DisableAutoGenTag: true,
		SilenceUsage:      true,
	}
	cmd.Flags().String(FilterFlag, "", "only list aliases whose prefix matches the glob")
	return cmd
}

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	style := table.StyleLight
	style.Options.DrawBorder = false
	t.SetStyle(style)
	return t
}

func renderStats(w io.Writer, st apis.Stats) {
	t := newTable(w)
	t.AppendHeader(table.Row{"Stat", "Value"})
	t.AppendRows([]table.Row{
		{"Engine", st.ID},
		{"Aliases", st.AliasCount},
		{"Directories", st.DirectoryCount},
		{"Strategy", st.ActiveStrategy},
		{"Forced strategy", st.ForcedStrategy},
		{"Rebuilds", st.Rebuilds},
		{"Minimal", st.Minimal},
		{"Cache size", st.CacheSize},
		{"Cache capacity", st.CacheCapacity},
		{"Cache hits", st.CacheHits},
		{"Cache misses", st.CacheMisses},
		{"Evictions", st.Evictions},
		{"Matches", st.Matches},
		{"Duplicates", st.Duplicates},
		{"Memory (bytes)", st.MemoryEstimate},
	})
	t.Render()
}

func renderAliases(w io.Writer, entries []apis.Entry) {
	t := newTable(w)
	t.AppendHeader(table.Row{"Alias", "Target"})
	for _, e := range entries {
		target := "<dynamic>"
		if s, ok := e.Target.(apis.Static); ok {
			target = string(s)
		}
		t.AppendRow(table.Row{e.Prefix, target})
	}
	t.Render()
}
