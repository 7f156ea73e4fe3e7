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

package resolver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	slogcontext "github.com/veqryn/slog-context"

	"dirpx.dev/alx/apis"
	"dirpx.dev/alx/builder"
	"dirpx.dev/alx/cache"
	"dirpx.dev/alx/config"
	"dirpx.dev/alx/dirset"
	"dirpx.dev/alx/kind"
	"dirpx.dev/alx/registry"
	"dirpx.dev/alx/validate"
)

// ErrInvalidTargetReturn is returned when a dynamic target fails, or when a
// target yields an empty base path.
var ErrInvalidTargetReturn = errors.New("alx(resolver): invalid dynamic target return")

// Source supplies the aliases and search directories an engine starts with.
type Source interface {
	Entries() []apis.Entry
	Dirs() []string
}

// Option configures an Engine.
type Option func(*Engine)

// WithConfig sets the engine configuration.
func WithConfig(cfg apis.Config) Option {
	return func(e *Engine) {
		e.cfg = config.Sanitize(cfg)
	}
}

// WithLogger sets the logger used for mutations. Resolve logs through the
// logger carried by its context (slog-context), falling back to slog.Default.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithID sets the engine identifier reported in logs and stats.
func WithID(id string) Option {
	return func(e *Engine) {
		if id != "" {
			e.id = id
		}
	}
}

// WithBuilder replaces the matcher builder.
func WithBuilder(b apis.Builder) Option {
	return func(e *Engine) {
		e.bld = b
	}
}

// WithNoticeHandler registers a callback for non-fatal notices such as
// duplicate aliases. It is called after the engine lock is released and may
// call back into the engine.
func WithNoticeHandler(fn func(error)) Option {
	return func(e *Engine) {
		e.onNotice = fn
	}
}

// New constructs an Engine with an empty registry.
func New(opts ...Option) *Engine {
	e := &Engine{
		id:  uuid.NewString(),
		cfg: config.DefaultConfig(),
		log: slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.log = e.log.With(slog.String("realm", "alx"), slog.String("engine", e.id))
	e.reg = registry.New()
	e.dirs = dirset.New()
	e.sel = builder.NewSelector(e.cfg, e.bld)
	e.cache = cache.New(e.sel.Sizing())
	return e
}

// Engine resolves alias-prefixed requests.
//
// Engine state is guarded by a single mutex: resolutions mutate cache recency
// and may rebuild the matcher, so they cannot share a read lock with each
// other. Dynamic targets and the notice handler run without the lock held.
// Engines are independent; a process may run any number of them.
type Engine struct {
	mu sync.Mutex
	// gen increments whenever the alias set or the strategy changes. A result
	// computed outside the lock is cached only if gen did not move meanwhile.
	gen uint64

	id       string
	cfg      apis.Config
	log      *slog.Logger
	bld      apis.Builder
	onNotice func(error)

	reg   *registry.Registry
	sel   *builder.Selector
	cache *cache.Cache
	dirs  *dirset.Set
}

// Ensure Engine implements apis.Resolver.
var _ apis.Resolver = (*Engine)(nil)

// ID returns the engine identifier.
func (e *Engine) ID() string {
	return e.id
}

// Resolve rewrites request issued from caller. When no alias matches the
// result is unresolved and carries the original request. Validation failures
// abort this resolution only and are never cached.
func (e *Engine) Resolve(ctx context.Context, caller, request string) (apis.Result, error) {
	e.mu.Lock()
	e.reconcile()

	key := cache.Key{Caller: caller, Request: request}
	if v, ok := e.cache.Get(key); ok {
		e.mu.Unlock()
		return apis.Result{Path: v.Path, Resolved: v.Resolved, Alias: v.Alias, Cached: true}, nil
	}

	m, ok := e.sel.Find(request)
	if !ok {
		e.cache.Set(key, cache.Value{Path: request})
		e.mu.Unlock()
		return apis.Result{Path: request}, nil
	}
	gen := e.gen
	e.mu.Unlock()

	logger := slogcontext.FromCtx(ctx).With(slog.String("realm", "alx"), slog.String("engine", e.id))

	base, err := target(caller, request, m)
	if err != nil {
		logger.Log(ctx, slog.LevelDebug, "dynamic target failed",
			slog.String("request", request),
			slog.String("alias", m.Prefix),
			slog.Any("error", err),
		)
		return apis.Result{}, err
	}

	resolved := validate.Join(base, request[len(m.Prefix):])
	if err := validate.Path(resolved); err != nil {
		logger.Log(ctx, slog.LevelDebug, "resolved target rejected",
			slog.String("request", request),
			slog.String("alias", m.Prefix),
		)
		return apis.Result{}, fmt.Errorf("resolve %q via %q: %w", request, m.Prefix, err)
	}

	e.mu.Lock()
	if e.gen == gen {
		e.cache.Set(key, cache.Value{Path: resolved, Alias: m.Prefix, Resolved: true})
	}
	e.mu.Unlock()

	logger.Log(ctx, slog.LevelDebug, "resolved alias",
		slog.String("caller", caller),
		slog.String("request", request),
		slog.String("alias", m.Prefix),
		slog.String("path", resolved),
	)
	return apis.Result{Path: resolved, Resolved: true, Alias: m.Prefix}, nil
}

// target computes the base path for m.
func target(caller, request string, m apis.Match) (string, error) {
	switch t := m.Target.(type) {
	case apis.Static:
		if t == "" {
			return "", fmt.Errorf("%w: alias %q has an empty target", ErrInvalidTargetReturn, m.Prefix)
		}
		return string(t), nil
	case apis.Dynamic:
		base, err := t(caller, request, m.Prefix)
		if err != nil {
			return "", fmt.Errorf("%w: alias %q: %w", ErrInvalidTargetReturn, m.Prefix, err)
		}
		if base == "" {
			return "", fmt.Errorf("%w: alias %q returned an empty path", ErrInvalidTargetReturn, m.Prefix)
		}
		return base, nil
	default:
		return "", fmt.Errorf("%w: alias %q has unsupported target %T", ErrInvalidTargetReturn, m.Prefix, m.Target)
	}
}

// reconcile rebuilds the matcher when the registry changed, dropping cached
// results computed against the previous alias set and applying the sizing of
// the new mode. Callers hold e.mu.
func (e *Engine) reconcile() {
	if !e.sel.Ensure(e.reg) {
		return
	}
	e.cache.Clear()
	e.cache.Resize(e.sel.Sizing())
	e.log.Debug("matcher rebuilt",
		slog.String("strategy", e.sel.Kind().String()),
		slog.Int("aliases", e.reg.Count()),
		slog.Bool("minimal", e.sel.Minimal()),
		slog.Int("cache_capacity", e.cache.Cap()),
	)
}

// Register adds or overwrites an alias. Overwrites are reported through the
// log and the notice handler and do not fail the call.
func (e *Engine) Register(prefix string, target apis.Target) error {
	e.mu.Lock()
	notice, err := e.mutated(e.reg.Register(prefix, target))
	e.mu.Unlock()
	e.report(notice)
	return err
}

// RegisterBulk registers entries. An invalid entry aborts the whole call
// before any alias is stored.
func (e *Engine) RegisterBulk(entries []apis.Entry) error {
	e.mu.Lock()
	notice, err := e.mutated(e.reg.RegisterBulk(entries))
	e.mu.Unlock()
	e.report(notice)
	return err
}

// Unregister removes prefix and reports whether it was registered.
func (e *Engine) Unregister(prefix string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	ok := e.reg.Unregister(prefix)
	if ok {
		e.invalidate()
	}
	return ok
}

// mutated splits the result of a registry mutation into a notice to report
// and an error that rejected the mutation. Callers hold e.mu.
func (e *Engine) mutated(err error) (notice, fail error) {
	if err != nil && !registry.IsNotice(err) {
		return nil, err
	}
	e.invalidate()
	return err, nil
}

// invalidate forces a matcher rebuild and discards results computed outside
// the lock. Callers hold e.mu.
func (e *Engine) invalidate() {
	e.sel.MarkDirty()
	e.gen++
}

// report logs notice and passes it to the notice handler. Callers must not
// hold e.mu.
func (e *Engine) report(notice error) {
	if notice == nil {
		return
	}
	e.log.Warn("duplicate alias overwritten", slog.Any("notice", notice))
	if e.onNotice != nil {
		e.onNotice(notice)
	}
}

// AddDirectory adds an extra search directory.
func (e *Engine) AddDirectory(dir string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	changed, err := e.dirs.Add(dir)
	if err != nil {
		return err
	}
	if changed {
		e.log.Debug("search directory added", slog.String("dir", dir))
	}
	return nil
}

// Apply replaces the engine state with src. It fails closed: if any alias or
// directory is invalid the engine is left empty and the error is returned.
// Duplicate aliases within src are reported like those of RegisterBulk.
func (e *Engine) Apply(src Source) error {
	reg := registry.New()
	dirs := dirset.New()
	var notice error
	err := reg.RegisterBulk(src.Entries())
	if registry.IsNotice(err) {
		notice, err = err, nil
	}
	if err == nil {
		for _, d := range src.Dirs() {
			if _, err = dirs.Add(d); err != nil {
				break
			}
		}
	}

	e.mu.Lock()
	e.reset()
	if err != nil {
		e.mu.Unlock()
		e.log.Error("manifest rejected, aliases disabled", slog.Any("error", err))
		return fmt.Errorf("apply manifest: %w", err)
	}
	e.reg, e.dirs = reg, dirs
	e.mu.Unlock()

	e.log.Info("manifest applied", slog.Int("aliases", reg.Count()), slog.Int("directories", dirs.Len()))
	e.report(notice)
	return nil
}

// Reset clears aliases, directories, the cache and strategy state.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.reset()
}

func (e *Engine) reset() {
	e.reg.Reset()
	e.dirs.Clear()
	e.cache.Clear()
	e.sel.Reset()
	e.gen++
}

// ForceStrategy overrides automatic strategy selection. kind.Auto restores it.
func (e *Engine) ForceStrategy(k kind.Kind) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.sel.Force(k); err != nil {
		return err
	}
	e.gen++
	return nil
}

// ClearCache drops all cached resolutions.
func (e *Engine) ClearCache() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cache.Clear()
}

// Aliases returns the registered aliases sorted by prefix.
func (e *Engine) Aliases() []apis.Entry {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.reg.Entries()
}

// Directories returns the search directories in precedence order.
func (e *Engine) Directories() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.dirs.Dirs()
}

// Stats reconciles pending registry changes and returns a snapshot.
func (e *Engine) Stats() apis.Stats {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.reconcile()
	cs := e.cache.Stats()
	return apis.Stats{
		ID:             e.id,
		AliasCount:     e.reg.Count(),
		DirectoryCount: e.dirs.Len(),
		CacheSize:      cs.Entries,
		CacheCapacity:  cs.Capacity,
		ActiveStrategy: e.sel.Kind(),
		ForcedStrategy: e.sel.Forced(),
		Minimal:        e.sel.Minimal(),
		MemoryEstimate: e.memoryEstimate(),
		CacheHits:      cs.Hits,
		CacheMisses:    cs.Misses,
		Evictions:      cs.Evictions,
		Matches:        e.sel.Matches(),
		Rebuilds:       e.sel.Rebuilds(),
		Duplicates:     e.reg.Duplicates(),
	}
}
