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

package builder

import (
	"errors"
	"fmt"

	"dirpx.dev/alx/apis"
	"dirpx.dev/alx/cache"
	"dirpx.dev/alx/config"
	"dirpx.dev/alx/kind"
)

// ErrUnknownKind is returned when forcing a kind that is not defined.
var ErrUnknownKind = errors.New("alx(builder): unknown strategy")

// NewSelector creates a Selector for cfg. A nil bld uses New().
// The selector starts dirty so the first Ensure always builds.
func NewSelector(cfg apis.Config, bld apis.Builder) *Selector {
	if bld == nil {
		bld = New()
	}
	return &Selector{
		cfg:    config.Sanitize(cfg),
		bld:    bld,
		dirty:  true,
		active: kind.None,
	}
}

// Selector owns the active matcher and decides when and how to rebuild it.
//
// It keeps an explicit dirty bit, set by MarkDirty/Force and implied by a
// change of the registry version, and reconciles lazily on Ensure. Between
// rebuilds Find always uses the matcher built from the last observed
// registry contents.
//
// Selector is not safe for concurrent use.
type Selector struct {
	cfg apis.Config
	bld apis.Builder

	dirty   bool
	seen    uint64
	forced  kind.Kind
	active  kind.Kind
	matcher apis.Matcher
	minimal bool
	count   int

	matches  uint64
	rebuilds uint64
}

// MarkDirty forces a rebuild on the next Ensure.
func (s *Selector) MarkDirty() {
	s.dirty = true
}

// Force overrides automatic selection. kind.Auto restores it; kind.None
// disables matching even when aliases exist.
func (s *Selector) Force(k kind.Kind) error {
	if !k.Valid() {
		return fmt.Errorf("%w: %s", ErrUnknownKind, k)
	}
	if k != s.forced {
		s.forced = k
		s.dirty = true
	}
	return nil
}

// Forced returns the forced kind, kind.Auto if none.
func (s *Selector) Forced() kind.Kind {
	return s.forced
}

// Ensure rebuilds the matcher if the selector is dirty or reg changed since
// the last build. It reports whether a rebuild happened.
func (s *Selector) Ensure(reg apis.Registry) bool {
	v := reg.Version()
	if !s.dirty && v == s.seen {
		return false
	}

	entries := reg.Entries()
	s.count = len(entries)
	s.active = s.choose(s.count)
	s.matcher = s.bld.BuildMatcher(s.active, entries)
	if s.matcher == nil {
		s.active = kind.None
	}
	s.minimal = s.cfg.MinimalThreshold > 0 && s.count < s.cfg.MinimalThreshold
	s.seen = v
	s.dirty = false
	s.rebuilds++
	return true
}

// choose picks the kind for n aliases.
func (s *Selector) choose(n int) kind.Kind {
	switch {
	case n == 0:
		return kind.None
	case s.forced != kind.Auto:
		return s.forced
	case n < s.cfg.LinearThreshold:
		return kind.Linear
	default:
		return kind.Trie
	}
}

// Find runs the active matcher and counts the invocation. With no active
// matcher it reports no match without counting.
func (s *Selector) Find(request string) (apis.Match, bool) {
	if s.matcher == nil {
		return apis.Match{}, false
	}
	s.matches++
	return s.matcher.Find(request)
}

// Kind returns the active kind.
func (s *Selector) Kind() kind.Kind {
	return s.active
}

// Minimal reports whether minimal mode is active.
func (s *Selector) Minimal() bool {
	return s.minimal
}

// Sizing returns the cache capacity and eviction batch for the current mode.
func (s *Selector) Sizing() (capacity, batch int) {
	capacity = s.cfg.CacheCapacity
	if s.minimal && capacity > 0 {
		capacity = max(1, capacity/s.cfg.MinimalDivisor)
	}
	return capacity, cache.BatchFor(capacity, s.cfg.EvictionPercent)
}

// Matches returns the number of matcher invocations.
func (s *Selector) Matches() uint64 {
	return s.matches
}

// Rebuilds returns the number of matcher rebuilds.
func (s *Selector) Rebuilds() uint64 {
	return s.rebuilds
}

// Reset drops the matcher, the forced kind and the counters.
func (s *Selector) Reset() {
	s.dirty = true
	s.forced = kind.Auto
	s.active = kind.None
	s.matcher = nil
	s.minimal = false
	s.count = 0
	s.matches = 0
}
