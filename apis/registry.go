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

// Registry is the source of truth for alias definitions.
// Implementations own their entries; callers mutate only via Register/Reset.
type Registry interface {
	// Register associates prefix with target. Re-registering an existing prefix
	// overwrites it and returns a non-fatal duplicate notice.
	Register(prefix string, target Target) error
	// Lookup returns the target registered for prefix.
	Lookup(prefix string) (Target, bool)
	// Entries returns a snapshot sorted by prefix.
	Entries() []Entry
	// Count returns the number of registered aliases.
	Count() int
	// Version returns a counter that changes on every mutation.
	Version() uint64
	// Reset clears all registered aliases.
	Reset()
}
