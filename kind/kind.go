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

// Package kind enumerates the matching strategies an engine can run with.
package kind

import (
	"fmt"
	"strings"
)

// Kind selects the alias matching algorithm.
//
// # Values
//
//   - Auto: let the selector pick by alias count (only valid as a request).
//   - None: alias resolution disabled; every request passes through.
//   - Linear: length-descending scan, used for small alias sets.
//   - Trie: compressed prefix tree, used for large alias sets.
//
// # Contract
//
//   - Existing values MUST NOT change their semantics; new values may be added.
//   - The textual forms produced by String are stable and used in logs,
//     metrics labels and the CLI.
type Kind int

const (
	// Auto requests automatic selection by alias count.
	//
	// Auto is never reported as the active strategy. Forcing Auto on an engine
	// drops any previously forced kind.
	Auto Kind = iota

	// None disables alias resolution.
	//
	// The selector falls back to None whenever the registry is empty.
	None

	// Linear scans aliases sorted by descending length.
	//
	// The first boundary-respecting hit is the longest one, so the scan
	// stops early. Cost is O(n) per lookup in the number of aliases.
	Linear

	// Trie walks a compressed prefix tree.
	//
	// Cost is O(k) in the matched request length, independent of the alias
	// count; rebuilding is O(total alias length).
	Trie
)

// String returns the stable token for k, or "Unknown(<n>)" for out-of-range
// values. It never panics.
func (k Kind) String() string {
	switch k {
	case Auto:
		return "Auto"
	case None:
		return "None"
	case Linear:
		return "Linear"
	case Trie:
		return "Trie"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// Valid reports whether k is one of the defined values.
func (k Kind) Valid() bool {
	return k >= Auto && k <= Trie
}

// Parse converts a case-insensitive token into a Kind. Surrounding whitespace
// is ignored. On failure it returns Auto and a non-nil error.
//
//	k, err := kind.Parse("trie")
//	if err != nil {
//	    // handle invalid configuration
//	}
func Parse(s string) (Kind, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Auto, fmt.Errorf("kind: empty strategy")
	}

	switch strings.ToUpper(trimmed) {
	case "AUTO":
		return Auto, nil
	case "NONE":
		return None, nil
	case "LINEAR":
		return Linear, nil
	case "TRIE":
		return Trie, nil
	default:
		return Auto, fmt.Errorf("kind: unknown strategy %q", s)
	}
}

// MustParse is like Parse but panics on invalid input.
// Use it for hard-coded values only.
func MustParse(s string) Kind {
	k, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return k
}

// MarshalText implements encoding.TextMarshaler. Unknown values are an error
// rather than being serialized in their diagnostic form.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("kind: cannot marshal unknown strategy %d", int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. On failure *k is left
// unchanged.
func (k *Kind) UnmarshalText(text []byte) error {
	value, err := Parse(string(text))
	if err != nil {
		return err
	}
	*k = value
	return nil
}
