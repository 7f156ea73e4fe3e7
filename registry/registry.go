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

package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"dirpx.dev/alx/apis"
)

var (
	// ErrEmptyPrefix is returned when an empty alias prefix is provided.
	ErrEmptyPrefix = errors.New("alx(registry): empty alias prefix provided")
	// ErrNilTarget is returned when a nil target is provided.
	ErrNilTarget = errors.New("alx(registry): nil target provided")
	// ErrEmptyTarget is returned when a static target is the empty path.
	ErrEmptyTarget = errors.New("alx(registry): empty static target provided")
	// ErrDuplicateAlias reports that a prefix was already registered and has
	// been overwritten. It is a notice, not a failure.
	ErrDuplicateAlias = errors.New("alx(registry): duplicate alias overwritten")
)

// Notice is a non-fatal report returned by Register. The mutation it
// describes has already been applied.
type Notice struct {
	// Prefix is the alias concerned.
	Prefix string
	// Err is the notice kind, e.g. ErrDuplicateAlias.
	Err error
}

func (n *Notice) Error() string {
	return fmt.Sprintf("%v: %q", n.Err, n.Prefix)
}

func (n *Notice) Unwrap() error {
	return n.Err
}

// IsNotice reports whether err only carries non-fatal notices.
func IsNotice(err error) bool {
	if err == nil {
		return false
	}
	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		for _, e := range joined.Unwrap() {
			if !IsNotice(e) {
				return false
			}
		}
		return true
	}
	var n *Notice
	return errors.As(err, &n)
}

// New constructs an empty alias Registry.
func New() *Registry {
	return &Registry{m: make(map[string]apis.Target)}
}

// Registry maps alias prefixes to targets.
type Registry struct {
	// mu guards m, version and duplicates.
	mu sync.RWMutex
	// m maps prefix to target.
	m map[string]apis.Target
	// version increments on every mutation.
	version uint64
	// duplicates counts overwritten registrations since the last Reset.
	duplicates uint64
}

// Ensure Registry implements apis.Registry.
var _ apis.Registry = (*Registry)(nil)

// Register associates prefix with target. When prefix already exists its
// target is replaced and a *Notice wrapping ErrDuplicateAlias is returned.
func (r *Registry) Register(prefix string, target apis.Target) error {
	if err := check(prefix, target); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.store(prefix, target)
}

// RegisterBulk registers all entries. Invalid entries abort the call before
// anything is stored; duplicate notices are collected and joined.
func (r *Registry) RegisterBulk(entries []apis.Entry) error {
	for _, e := range entries {
		if err := check(e.Prefix, e.Target); err != nil {
			return fmt.Errorf("alias %q: %w", e.Prefix, err)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var notices []error
	for _, e := range entries {
		if err := r.store(e.Prefix, e.Target); err != nil {
			notices = append(notices, err)
		}
	}
	return errors.Join(notices...)
}

// store writes under r.mu.
func (r *Registry) store(prefix string, target apis.Target) error {
	_, dup := r.m[prefix]
	r.m[prefix] = target
	r.version++
	if dup {
		r.duplicates++
		return &Notice{Prefix: prefix, Err: ErrDuplicateAlias}
	}
	return nil
}

// Unregister removes prefix and reports whether it was present.
func (r *Registry) Unregister(prefix string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.m[prefix]; !ok {
		return false
	}
	delete(r.m, prefix)
	r.version++
	return true
}

// Lookup returns the target registered for prefix.
func (r *Registry) Lookup(prefix string) (apis.Target, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.m[prefix]
	return t, ok
}

// Entries returns a snapshot sorted by prefix.
func (r *Registry) Entries() []apis.Entry {
	r.mu.RLock()
	entries := make([]apis.Entry, 0, len(r.m))
	for p, t := range r.m {
		entries = append(entries, apis.Entry{Prefix: p, Target: t})
	}
	r.mu.RUnlock()

	sort.Slice(entries, func(i, j int) bool { return entries[i].Prefix < entries[j].Prefix })
	return entries
}

// Count returns the number of registered aliases.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.m)
}

// Version returns the mutation counter.
func (r *Registry) Version() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.version
}

// Duplicates returns the number of overwritten registrations since Reset.
func (r *Registry) Duplicates() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.duplicates
}

// Reset clears all registered aliases.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m = make(map[string]apis.Target)
	r.duplicates = 0
	r.version++
}

func check(prefix string, target apis.Target) error {
	if prefix == "" {
		return ErrEmptyPrefix
	}
	if target == nil {
		return ErrNilTarget
	}
	switch t := target.(type) {
	case apis.Dynamic:
		if t == nil {
			return ErrNilTarget
		}
	case apis.Static:
		if t == "" {
			return ErrEmptyTarget
		}
	}
	return nil
}
