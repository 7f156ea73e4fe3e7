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
	"dirpx.dev/alx/apis"
)

// Rough per-item overheads in bytes: map slot, headers and pointers.
const (
	aliasOverhead = 96
	cacheOverhead = 128
	dirOverhead   = 32
)

// memoryEstimate approximates the heap held by the engine. Aliases are
// counted twice: once in the registry and once in the active matcher.
// Callers hold e.mu.
func (e *Engine) memoryEstimate() int64 {
	var n int64
	for _, en := range e.reg.Entries() {
		n += 2 * int64(len(en.Prefix)+aliasOverhead)
		if s, ok := en.Target.(apis.Static); ok {
			n += int64(len(s))
		}
	}
	n += e.cache.Bytes() + int64(e.cache.Len())*cacheOverhead
	for _, d := range e.dirs.Dirs() {
		n += int64(len(d) + dirOverhead)
	}
	return n
}
