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

// Package validate checks resolved targets and joins them with the unmatched
// remainder of a request.
package validate

import (
	"errors"
	"fmt"
	"strings"
)

// ErrRejectedTarget is returned when a resolved path contains a parent
// directory reference or a NUL byte, or starts with a home directory
// shorthand.
var ErrRejectedTarget = errors.New("alx(validate): rejected target")

// Path returns an error wrapping ErrRejectedTarget when p is not acceptable.
// Both '/' and '\' are treated as separators. "~" and "~user" are only
// rejected as the leading segment; "/src/~backup" is an ordinary path.
func Path(p string) error {
	if strings.IndexByte(p, 0) >= 0 {
		return fmt.Errorf("%w: embedded NUL in %q", ErrRejectedTarget, p)
	}
	if strings.HasPrefix(p, "~") {
		return fmt.Errorf("%w: home directory shorthand in %q", ErrRejectedTarget, p)
	}
	for _, seg := range strings.FieldsFunc(p, isSep) {
		if seg == ".." {
			return fmt.Errorf("%w: parent directory reference in %q", ErrRejectedTarget, p)
		}
	}
	return nil
}

// Join appends remainder to base. remainder is what follows the matched alias
// and is either empty or starts with '/'. A trailing '/' on base is not
// doubled. base is kept verbatim otherwise, so "./routes" stays relative.
func Join(base, remainder string) string {
	if remainder == "" {
		return base
	}
	if strings.HasSuffix(base, "/") {
		return base + remainder[1:]
	}
	return base + remainder
}

func isSep(r rune) bool {
	return r == '/' || r == '\\'
}
