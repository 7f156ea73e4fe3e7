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

package strategy

import (
	"sort"
	"strings"

	"dirpx.dev/alx/apis"
)

// NewLinear creates a matcher that scans entries sorted by descending prefix
// length. The entries slice is copied.
func NewLinear(entries []apis.Entry) apis.Matcher {
	sorted := make([]apis.Entry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool {
		if len(sorted[i].Prefix) != len(sorted[j].Prefix) {
			return len(sorted[i].Prefix) > len(sorted[j].Prefix)
		}
		return sorted[i].Prefix < sorted[j].Prefix
	})
	return &linear{entries: sorted}
}

// linear is an immutable, length-descending alias list.
type linear struct {
	entries []apis.Entry
}

// Ensure linear implements apis.Matcher.
var _ apis.Matcher = (*linear)(nil)

// Find returns the first boundary-respecting alias, which is the longest one
// because of the sort order.
func (l *linear) Find(request string) (apis.Match, bool) {
	for _, e := range l.entries {
		if len(e.Prefix) > len(request) {
			continue
		}
		if strings.HasPrefix(request, e.Prefix) && AtBoundary(request, len(e.Prefix)) {
			return apis.Match{Prefix: e.Prefix, Target: e.Target}, true
		}
	}
	return apis.Match{}, false
}

// Len returns the number of aliases.
func (l *linear) Len() int {
	return len(l.entries)
}
