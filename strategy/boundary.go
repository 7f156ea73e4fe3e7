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

// Package strategy implements the longest-prefix matchers: a linear scan for
// small alias sets and a radix trie for large ones.
package strategy

// Separator is the path-segment separator that delimits an alias match.
const Separator = '/'

// AtBoundary reports whether a prefix of length n ends on a segment boundary
// of request: either the request ends there or the next byte is a Separator.
func AtBoundary(request string, n int) bool {
	return n == len(request) || (n < len(request) && request[n] == Separator)
}
