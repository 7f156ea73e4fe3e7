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

// Target is the right-hand side of an alias: either a Static path or a
// Dynamic resolver evaluated per request.
type Target interface {
	isTarget()
}

// Static is a fixed target path. It is joined with the unmatched remainder
// of the request verbatim. It must not be empty.
type Static string

func (Static) isTarget() {}

// Dynamic computes the target base for a single request. It receives the
// calling context identifier, the raw request and the alias that matched.
// Returning an error or an empty string fails that resolution only. It runs
// without engine locks held, so it may call back into the engine; a Dynamic
// that resolves its own alias recurses without bound.
type Dynamic func(caller, request, alias string) (string, error)

func (Dynamic) isTarget() {}

// Entry is a single (prefix, target) association.
type Entry struct {
	// Prefix is the alias prefix, e.g. "@models".
	Prefix string
	// Target is where the prefix points to.
	Target Target
}
