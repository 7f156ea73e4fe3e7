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

import (
	"context"

	"dirpx.dev/alx/kind"
)

// Result is the outcome of a resolution.
type Result struct {
	// Path is the resolved path, or the original request when !Resolved.
	Path string
	// Resolved is false when no alias matched (the request passes through).
	Resolved bool
	// Alias is the alias prefix that matched, if any.
	Alias string
	// Cached reports whether the result was served from the cache.
	Cached bool
}

// Resolver is the engine surface a host loader calls from its resolution hook.
type Resolver interface {
	// Resolve rewrites request issued from caller.
	Resolve(ctx context.Context, caller, request string) (Result, error)
}

// Stats is a point-in-time view of an engine.
type Stats struct {
	ID             string
	AliasCount     int
	DirectoryCount int
	CacheSize      int
	CacheCapacity  int
	ActiveStrategy kind.Kind
	ForcedStrategy kind.Kind
	Minimal        bool
	MemoryEstimate int64
	CacheHits      uint64
	CacheMisses    uint64
	Evictions      uint64
	Matches        uint64
	Rebuilds       uint64
	Duplicates     uint64
}
