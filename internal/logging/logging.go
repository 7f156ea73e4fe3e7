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

// Package logging builds slog loggers from command line flags.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	slogcontext "github.com/veqryn/slog-context"
)

const (
	// LevelFlag names the persistent log level flag.
	LevelFlag = "loglevel"
	// FormatFlag names the persistent log format flag.
	FormatFlag = "logformat"
)

// RegisterFlags adds the log level and format flags to cmd.
func RegisterFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String(LevelFlag, "warn", "set the log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringP(FormatFlag, "f", "text", "set the log format (text, json)")
}

// FromCommand builds a logger from the flags registered by RegisterFlags.
// Logs go to the command's error stream.
func FromCommand(cmd *cobra.Command) (*slog.Logger, error) {
	level, format := "warn", "text"
	if f := cmd.Flag(LevelFlag); f != nil {
		level = f.Value.String()
	}
	if f := cmd.Flag(FormatFlag); f != nil {
		format = f.Value.String()
	}
	return New(cmd.ErrOrStderr(), level, format)
}

// New returns a logger writing to w. The handler is wrapped with
// slog-context so attributes stored in a context are added to each record.
func New(w io.Writer, level, format string) (*slog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: lvl}

	var handler slog.Handler
	switch strings.ToLower(format) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	case "text", "":
		handler = slog.NewTextHandler(w, opts)
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}
	return slog.New(slogcontext.NewHandler(handler, nil)), nil
}

// ParseLevel parses debug, info, warn or error.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelWarn, fmt.Errorf("invalid log level: %s", s)
	}
}
