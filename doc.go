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

// Package alx rewrites alias-prefixed import requests into file system paths.
//
// An alias is a prefix such as "@models" or "utils" mapped to a target. A
// request matches an alias when it equals the prefix or continues it with a
// '/' separator, so "@models/User" matches "@models" while "@modelsRoot" does
// not. When several aliases match, the longest one wins and the unmatched
// remainder is appended to the target.
//
// # Design
//
// Each resolver.Engine owns four pieces of state:
//
//   - Registry: the prefix to target mapping. Targets are either static
//     paths (apis.Static) or functions of the caller and the request
//     (apis.Dynamic). Registering an existing prefix overwrites it and is
//     reported as a notice, not an error.
//
//   - Selector: picks and builds the matcher. Small alias sets use a linear
//     scan over prefixes sorted by descending length; larger ones use a
//     radix trie. Fewer than a handful of aliases also shrink the cache
//     ("minimal mode"). The selector is rebuilt lazily, on the first
//     resolution after the registry changed.
//
//   - Cache: an LRU keyed by (caller, request) that evicts a batch of the
//     least recently used entries when full. A rebuild clears it.
//
//   - Directory set: extra search roots kept in descending length order for
//     host integrations.
//
// # Usage
//
// The root package only constructs engines; there is no process-wide
// default. A host creates the engine it needs and passes it around:
//
//	e := alx.New()
//	e.Register("@models", alx.Static("/app/models"))
//	res, err := e.Resolve(ctx, "/app/index.js", "@models/User")
//
// Engines share no state with each other.
//
// # Concurrency model
//
// Engine state is guarded by a per-engine mutex. Dynamic targets and notice
// handlers run without it, so they may call back into the engine.
//
// # Manifests
//
// The manifest package loads aliases from YAML, JSON, package.json or HCL files.
// Applying a manifest fails closed: an invalid or unreadable manifest leaves
// the engine with no aliases at all.
package alx
