// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package version

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Error types for version parsing failures
var (
	ErrMalformedVersion = errors.New("malformed version")
	ErrNumericOverflow  = errors.New("version component overflows uint64")
)

// Version is a parsed semantic version. The zero value is 0.0.0 without a
// prerelease. Versions are immutable; use Parse, MustParse or NewVersion to
// build one.
type Version struct {
	major uint64
	minor uint64
	patch uint64

	// prerelease is nil when the source had no "-" segment.
	prerelease []Identifier
}

// NewVersion creates a release Version (no prerelease) from its components.
func NewVersion(major, minor, patch uint64) Version {
	return Version{
		major: major,
		minor: minor,
		patch: patch,
	}
}

// Major returns the major component.
func (v Version) Major() uint64 { return v.major }

// Minor returns the minor component.
func (v Version) Minor() uint64 { return v.minor }

// Patch returns the patch component.
func (v Version) Patch() uint64 { return v.patch }

// HasPrerelease reports whether the source string carried a prerelease segment.
func (v Version) HasPrerelease() bool { return v.prerelease != nil }

// Prerelease returns a copy of the prerelease identifiers, or nil when the
// version has no prerelease segment.
func (v Version) Prerelease() []Identifier {
	if v.prerelease == nil {
		return nil
	}
	out := make([]Identifier, len(v.prerelease))
	copy(out, v.prerelease)
	return out
}

// String returns the canonical form major.minor.patch[-prerelease].
// Release components are printed without leading zeros; prerelease
// identifiers are printed as they appeared in the source.
func (v Version) String() string {
	var b strings.Builder
	b.WriteString(strconv.FormatUint(v.major, 10))
	b.WriteByte('.')
	b.WriteString(strconv.FormatUint(v.minor, 10))
	b.WriteByte('.')
	b.WriteString(strconv.FormatUint(v.patch, 10))
	for i, id := range v.prerelease {
		if i == 0 {
			b.WriteByte('-')
		} else {
			b.WriteByte('.')
		}
		b.WriteString(id.raw)
	}
	return b.String()
}

// Parse parses s into a Version. See the package documentation for the
// accepted grammar. The returned error wraps ErrMalformedVersion or
// ErrNumericOverflow.
func Parse(s string) (Version, error) {
	var release [3]string
	rest := s
	for i := range release {
		n := digitPrefix(rest)
		if n == 0 {
			return Version{}, malformed(s, "missing numeric release component")
		}
		release[i], rest = rest[:n], rest[n:]
		if i < len(release)-1 {
			if !strings.HasPrefix(rest, ".") {
				return Version{}, malformed(s, "expected MAJOR.MINOR.PATCH")
			}
			rest = rest[1:]
		}
	}

	var pre []Identifier
	if strings.HasPrefix(rest, "-") {
		segment := rest[1:]
		rest = ""
		if i := strings.IndexByte(segment, '+'); i >= 0 {
			segment, rest = segment[:i], segment[i:]
		}
		ids, err := splitIdentifiers(s, segment)
		if err != nil {
			return Version{}, err
		}
		pre = make([]Identifier, len(ids))
		for i, raw := range ids {
			pre[i] = newIdentifier(raw)
		}
	}

	if strings.HasPrefix(rest, "+") {
		if _, err := splitIdentifiers(s, rest[1:]); err != nil {
			return Version{}, err
		}
		rest = ""
	}

	if rest != "" {
		return Version{}, malformed(s, fmt.Sprintf("unexpected trailing %q", rest))
	}

	var nums [3]uint64
	for i, digits := range release {
		n, err := strconv.ParseUint(digits, 10, 64)
		if err != nil {
			return Version{}, fmt.Errorf("%w: %q", ErrNumericOverflow, digits)
		}
		nums[i] = n
	}

	return Version{
		major:      nums[0],
		minor:      nums[1],
		patch:      nums[2],
		prerelease: pre,
	}, nil
}

// MustParse parses a version string and panics if parsing fails.
// This function is useful for initializing package-level values or test data
// where the version string is known to be valid.
//
// Only use this for hardcoded strings or in tests. For user input or runtime
// data, always use Parse and handle errors explicitly.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse: %v", err))
	}
	return v
}

// splitIdentifiers splits a dot-separated segment and validates every
// identifier against [0-9A-Za-z-]+.
func splitIdentifiers(input, segment string) ([]string, error) {
	ids := strings.Split(segment, ".")
	for _, id := range ids {
		if id == "" {
			return nil, malformed(input, "empty identifier")
		}
		for i := 0; i < len(id); i++ {
			if !isIdentifierChar(id[i]) {
				return nil, malformed(input, fmt.Sprintf("invalid character %q in identifier %q", id[i], id))
			}
		}
	}
	return ids, nil
}

func digitPrefix(s string) int {
	i := 0
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	return i
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isIdentifierChar(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '-'
}

func malformed(input, reason string) error {
	return fmt.Errorf("%w: %q: %s", ErrMalformedVersion, input, reason)
}
