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

package alx

import (
	"dirpx.dev/alx/apis"
	"dirpx.dev/alx/resolver"
)

type (
	// Engine resolves alias-prefixed requests. See resolver.Engine.
	Engine = resolver.Engine
	// Option configures an Engine.
	Option = resolver.Option
	// Result is the outcome of a resolution.
	Result = apis.Result
	// Stats is a point-in-time view of an Engine.
	Stats = apis.Stats
	// Entry is a single alias.
	Entry = apis.Entry
	// Target is the right-hand side of an alias.
	Target = apis.Target
	// Static is a fixed target path.
	Static = apis.Static
	// Dynamic computes a target per request.
	Dynamic = apis.Dynamic
)

// New constructs an engine with no aliases. Engines share no state; a host
// creates one per resolution context and owns its lifetime.
func New(opts ...Option) *Engine {
	return resolver.New(opts...)
}
