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

// Package dirset keeps the extra search directories a host consults for
// requests that are not aliased.
package dirset

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
)

// ErrEmptyDir is returned when an empty directory is added.
var ErrEmptyDir = errors.New("alx(dirset): empty directory provided")

// New creates an empty Set.
func New() *Set {
	return &Set{seen: make(map[string]struct{})}
}

// Set is an append-only collection of normalized absolute directories kept
// ordered by descending path length, longest (most specific) first.
// Set is not safe for concurrent use.
type Set struct {
	dirs []string
	seen map[string]struct{}
}

// Add normalizes dir and inserts it if absent. It reports whether the set
// changed.
func (s *Set) Add(dir string) (bool, error) {
	if dir == "" {
		return false, ErrEmptyDir
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return false, fmt.Errorf("normalize directory %q: %w", dir, err)
	}
	abs = filepath.Clean(abs)
	if _, ok := s.seen[abs]; ok {
		return false, nil
	}
	s.seen[abs] = struct{}{}
	s.dirs = append(s.dirs, abs)
	slices.SortStableFunc(s.dirs, func(a, b string) int {
		if len(a) != len(b) {
			return len(b) - len(a)
		}
		if a < b {
			return -1
		}
		if a > b {
			return 1
		}
		return 0
	})
	return true, nil
}

// Dirs returns the directories in precedence order. The slice is a copy.
func (s *Set) Dirs() []string {
	return slices.Clone(s.dirs)
}

// Len returns the number of directories.
func (s *Set) Len() int {
	return len(s.dirs)
}

// Clear drops all directories.
func (s *Set) Clear() {
	s.dirs = nil
	clear(s.seen)
}
