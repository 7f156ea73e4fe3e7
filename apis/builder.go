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

import "dirpx.dev/alx/kind"

// Builder constructs matchers from a registry snapshot.
type Builder interface {
	// BuildMatcher returns a matcher of the given kind holding entries.
	// kind.None yields a nil matcher.
	BuildMatcher(k kind.Kind, entries []Entry) Matcher
}
