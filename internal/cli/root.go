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

// Package cli implements the alx command line.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	slogcontext "github.com/veqryn/slog-context"

	"dirpx.dev/alx"
	"dirpx.dev/alx/apis"
	"dirpx.dev/alx/config"
	"dirpx.dev/alx/internal/logging"
	"dirpx.dev/alx/kind"
	"dirpx.dev/alx/manifest"
	"dirpx.dev/alx/resolver"
)

const (
	// ManifestFlag names the alias manifest flag.
	ManifestFlag = "manifest"
	// RelativeFlag names the flag resolving manifest targets against the
	// manifest directory.
	RelativeFlag = "relative"
	// AliasFlag names the repeatable prefix=target flag.
	AliasFlag = "alias"
	// StrategyFlag names the matching strategy flag.
	StrategyFlag = "strategy"
)

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := New().Execute(); err != nil {
		os.Exit(1)
	}
}

// app is the state shared by the subcommands of one root command.
type app struct {
	eng *resolver.Engine
}

// New returns the root command.
func New() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:   "alx [sub-command]",
		Short: "Resolve alias-prefixed module requests",
		Long: `alx rewrites alias-prefixed requests such as "@models/User" into paths
  using aliases loaded from a manifest or given on the command line.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: a.setup,
		DisableAutoGenTag: true,
		SilenceUsage:      true,
	}

	logging.RegisterFlags(cmd)
	cmd.PersistentFlags().String(ManifestFlag, "", "alias manifest (yaml, json, package.json or hcl), defaults to $ALX_MANIFEST")
	cmd.PersistentFlags().Bool(RelativeFlag, false, "resolve relative manifest targets against the manifest directory")
	cmd.PersistentFlags().StringArray(AliasFlag, nil, "additional alias as prefix=target, may be repeated")
	cmd.PersistentFlags().String(StrategyFlag, "auto", "matching strategy (auto, linear, trie)")

	cmd.AddCommand(newResolve(a))
	cmd.AddCommand(newStats(a))
	cmd.AddCommand(newAliases(a))
	cmd.AddCommand(newVersion())
	return cmd
}

// setup builds the engine from the environment and the persistent flags.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	logger, err := logging.FromCommand(cmd)
	if err != nil {
		return err
	}
	cmd.SetContext(slogcontext.NewCtx(cmd.Context(), logger))

	env, err := config.LoadEnv()
	if err != nil {
		return err
	}
	a.eng = alx.New(resolver.WithConfig(env.Config()), resolver.WithLogger(logger))

	path, _ := cmd.Flags().GetString(ManifestFlag)
	if path == "" {
		path = env.Manifest
	}
	if path != "" {
		relative, _ := cmd.Flags().GetBool(RelativeFlag)
		if err := manifest.Apply(a.eng, path, manifest.Options{ResolveRelative: relative}); err != nil {
			return err
		}
		logger.Debug("manifest loaded", slog.String("path", path))
	}

	aliases, _ := cmd.Flags().GetStringArray(AliasFlag)
	for _, kv := range aliases {
		prefix, target, ok := strings.Cut(kv, "=")
		if !ok {
			return fmt.Errorf("invalid alias %q, expected prefix=target", kv)
		}
		if err := a.eng.Register(prefix, apis.Static(target)); err != nil {
			return err
		}
	}

	strategy, _ := cmd.Flags().GetString(StrategyFlag)
	k, err := kind.Parse(strategy)
	if err != nil {
		return err
	}
	return a.eng.ForceStrategy(k)
}
