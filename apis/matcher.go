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

// Match is the best alias found for a request.
type Match struct {
	// Prefix is the alias that matched.
	Prefix string
	// Target is the alias target.
	Target Target
}

// Matcher finds the longest registered alias that is a boundary-respecting
// prefix of a request. A prefix p matches request r only when r == p or the
// byte after p in r is a path separator.
type Matcher interface {
	// Find returns the longest valid match, or false if none exists.
	Find(request string) (Match, bool)
	// Len returns the number of aliases the matcher was built from.
	Len() int
}
