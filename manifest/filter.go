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

package manifest

import (
	"fmt"

	"github.com/gobwas/glob"

	"dirpx.dev/alx/apis"
)

// Filter returns the entries whose prefix matches the glob pattern. An empty
// pattern matches everything.
func Filter(entries []apis.Entry, pattern string) ([]apis.Entry, error) {
	if pattern == "" {
		return entries, nil
	}
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("compile alias filter %q: %w", pattern, err)
	}
	out := make([]apis.Entry, 0, len(entries))
	for _, e := range entries {
		if g.Match(e.Prefix) {
			out = append(out, e)
		}
	}
	return out, nil
}
