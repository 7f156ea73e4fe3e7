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

package apis

// Config carries the sizing and strategy knobs of an engine.
// It is passed by value and should be treated as immutable by implementations.
type Config struct {
	// CacheCapacity is the maximum number of cached resolutions in full mode.
	// Zero or negative disables the cache.
	CacheCapacity int

	// EvictionPercent is the share of capacity evicted in one batch once the
	// cache grows past capacity.
	EvictionPercent int

	// LinearThreshold is the alias count from which the trie matcher is used.
	// Below it the linear matcher is used.
	LinearThreshold int

	// MinimalThreshold is the alias count below which minimal mode is entered.
	MinimalThreshold int

	// MinimalDivisor shrinks cache capacity and eviction batch in minimal mode.
	MinimalDivisor int
}
