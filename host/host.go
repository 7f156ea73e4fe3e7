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

// Package host connects an engine to a host module loader: requests are
// resolved first and the loader receives the rewritten path.
package host

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	slogcontext "github.com/veqryn/slog-context"

	"dirpx.dev/alx/apis"
)

// Loader loads the module at path.
type Loader[T any] interface {
	Load(ctx context.Context, path string) (T, error)
}

// LoaderFunc adapts a function to Loader.
type LoaderFunc[T any] func(ctx context.Context, path string) (T, error)

// Load calls f.
func (f LoaderFunc[T]) Load(ctx context.Context, path string) (T, error) {
	return f(ctx, path)
}

// Engine is the part of an engine a Hook needs.
type Engine interface {
	apis.Resolver
	Directories() []string
}

// Hook resolves requests through an engine before delegating to a Loader.
type Hook[T any] struct {
	eng  Engine
	next Loader[T]
}

// NewHook wraps next with eng.
func NewHook[T any](eng Engine, next Loader[T]) *Hook[T] {
	return &Hook[T]{eng: eng, next: next}
}

// Load resolves request issued from caller and loads the result. Aliased
// requests load the rewritten path. Bare requests try the search directories
// in precedence order and fall back to the original request when none holds
// the module. Resolution errors are returned without calling the loader.
func (h *Hook[T]) Load(ctx context.Context, caller, request string) (T, error) {
	var zero T
	logger := slogcontext.FromCtx(ctx).With(slog.String("realm", "alx"))

	res, err := h.eng.Resolve(ctx, caller, request)
	if err != nil {
		return zero, err
	}
	if res.Resolved {
		logger.DebugContext(ctx, "loading aliased module",
			slog.String("request", request),
			slog.String("path", res.Path),
		)
		return h.next.Load(ctx, res.Path)
	}

	for _, c := range h.Candidates(request) {
		v, err := h.next.Load(ctx, c)
		if err == nil {
			logger.DebugContext(ctx, "loaded module from search directory",
				slog.String("request", request),
				slog.String("path", c),
			)
			return v, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return zero, err
		}
	}
	return h.next.Load(ctx, request)
}

// Candidates returns the search directory paths tried for a bare request, in
// precedence order. Relative, absolute and empty requests have none.
func (h *Hook[T]) Candidates(request string) []string {
	if !bare(request) {
		return nil
	}
	dirs := h.eng.Directories()
	out := make([]string, 0, len(dirs))
	for _, d := range dirs {
		out = append(out, filepath.Join(d, request))
	}
	return out
}

func bare(request string) bool {
	return request != "" &&
		!strings.HasPrefix(request, ".") &&
		!strings.HasPrefix(request, "/") &&
		!filepath.IsAbs(request)
}

// NewFileLoader returns a Loader that reads files from the local file system.
func NewFileLoader() Loader[[]byte] {
	return LoaderFunc[[]byte](func(_ context.Context, path string) ([]byte, error) {
		return os.ReadFile(path)
	})
}
