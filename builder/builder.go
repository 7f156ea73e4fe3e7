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
	"dirpx.dev/alx/apis"
	"dirpx.dev/alx/kind"
	"dirpx.dev/alx/strategy"
)

// New creates and returns the default apis.Builder.
func New() apis.Builder {
	return &builder{}
}

// builder is an empty struct to be used as a receiver for builder methods.
type builder struct{}

// BuildMatcher builds a Linear or Trie matcher from entries. Any other kind
// yields nil, which disables alias resolution.
func (b *builder) BuildMatcher(k kind.Kind, entries []apis.Entry) apis.Matcher {
	switch k {
	case kind.Linear:
		return strategy.NewLinear(entries)
	case kind.Trie:
		return strategy.NewTrie(entries)
	default:
		return nil
	}
}
