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

import "fmt"

// AccessLevel is the declared visibility of a field.
//
// AccessUnknown is both the zero value and the parse-failure sentinel;
// callers must treat it as its own case rather than assume one of the
// three known levels.
type AccessLevel uint8

const (
	AccessUnknown AccessLevel = iota
	AccessPublic
	AccessProtected
	AccessPrivate
)

const (
	publicSpelling    = "public"
	protectedSpelling = "protected"
	privateSpelling   = "private"
)

// ParseAccess maps an access specifier to its AccessLevel.
// Matching is exact and case-sensitive; anything else yields AccessUnknown.
func ParseAccess(s string) AccessLevel {
	switch s {
	case publicSpelling:
		return AccessPublic
	case protectedSpelling:
		return AccessProtected
	case privateSpelling:
		return AccessPrivate
	default:
		return AccessUnknown
	}
}

// IsKnown reports whether a is one of the three parsed levels.
func (a AccessLevel) IsKnown() bool {
	switch a {
	case AccessPublic, AccessProtected, AccessPrivate:
		return true
	default:
		return false
	}
}

// String returns the specifier spelling, "unknown", or a diagnostic form
// for out-of-range values.
func (a AccessLevel) String() string {
	switch a {
	case AccessUnknown:
		return "unknown"
	case AccessPublic:
		return publicSpelling
	case AccessProtected:
		return protectedSpelling
	case AccessPrivate:
		return privateSpelling
	default:
		return fmt.Sprintf("AccessLevel(%d)", a)
	}
}
