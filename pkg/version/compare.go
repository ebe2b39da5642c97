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
	"fmt"
	"strconv"
	"strings"
)

// Ordering is the result of comparing two versions. Its integer value is
// -1, 0 or 1 so it can be returned directly from a slices.SortFunc callback.
type Ordering int

const (
	// Less means the left version has lower precedence.
	Less Ordering = -1
	// Equal means both versions have the same precedence.
	Equal Ordering = 0
	// Greater means the left version has higher precedence.
	Greater Ordering = 1
)

// String returns "less", "equal" or "greater".
func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	default:
		return fmt.Sprintf("Ordering(%d)", int(o))
	}
}

// Invert returns the ordering seen from the other operand.
func (o Ordering) Invert() Ordering {
	return -o
}

// IdentifierKind classifies a prerelease identifier.
type IdentifierKind uint8

const (
	// Alphanumeric identifiers contain at least one non-digit character.
	Alphanumeric IdentifierKind = iota
	// Numeric identifiers consist solely of ASCII digits.
	Numeric
)

// Identifier is one dot-separated element of a prerelease segment. The kind
// is decided once when the version is parsed.
type Identifier struct {
	kind IdentifierKind
	raw  string
}

func newIdentifier(raw string) Identifier {
	kind := Numeric
	for i := 0; i < len(raw); i++ {
		if !isDigit(raw[i]) {
			kind = Alphanumeric
			break
		}
	}
	return Identifier{kind: kind, raw: raw}
}

// Kind returns whether the identifier is numeric or alphanumeric.
func (id Identifier) Kind() IdentifierKind { return id.kind }

// IsNumeric reports whether the identifier consists solely of digits.
func (id Identifier) IsNumeric() bool { return id.kind == Numeric }

// String returns the identifier exactly as it appeared in the source.
func (id Identifier) String() string { return id.raw }

// Uint64 returns the value of a numeric identifier. ok is false for
// alphanumeric identifiers and for numeric ones that do not fit in a uint64.
func (id Identifier) Uint64() (n uint64, ok bool) {
	if id.kind != Numeric {
		return 0, false
	}
	n, err := strconv.ParseUint(id.raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Compare orders id against other: numeric identifiers by value, numeric
// before alphanumeric, alphanumeric identifiers byte-wise.
func (id Identifier) Compare(other Identifier) Ordering {
	switch {
	case id.kind == Numeric && other.kind == Numeric:
		return compareDigits(id.raw, other.raw)
	case id.kind == Numeric:
		return Less
	case other.kind == Numeric:
		return Greater
	default:
		return Ordering(strings.Compare(id.raw, other.raw))
	}
}

// compareDigits compares two non-empty digit strings by magnitude. Leading
// zeros are ignored and there is no upper bound on length.
func compareDigits(a, b string) Ordering {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		return sign(len(a) - len(b))
	}
	return Ordering(strings.Compare(a, b))
}

// Compare returns the precedence of a relative to b.
func Compare(a, b Version) Ordering {
	if o := compareUint(a.major, b.major); o != Equal {
		return o
	}
	if o := compareUint(a.minor, b.minor); o != Equal {
		return o
	}
	if o := compareUint(a.patch, b.patch); o != Equal {
		return o
	}

	// release beats prerelease
	switch {
	case a.prerelease == nil && b.prerelease == nil:
		return Equal
	case a.prerelease == nil:
		return Greater
	case b.prerelease == nil:
		return Less
	}

	for i, id := range a.prerelease {
		if i >= len(b.prerelease) {
			return Greater
		}
		if o := id.Compare(b.prerelease[i]); o != Equal {
			return o
		}
	}
	if len(a.prerelease) < len(b.prerelease) {
		return Less
	}
	return Equal
}

// Compare returns the precedence of v relative to other.
func (v Version) Compare(other Version) Ordering {
	return Compare(v, other)
}

// GreaterThan returns true if v has higher precedence than other.
func (v Version) GreaterThan(other Version) bool {
	return Compare(v, other) == Greater
}

// LessThan returns true if v has lower precedence than other.
func (v Version) LessThan(other Version) bool {
	return Compare(v, other) == Less
}

// Equal returns true if v and other have the same precedence. Versions that
// differ only in leading zeros of numeric prerelease identifiers are equal.
func (v Version) Equal(other Version) bool {
	return Compare(v, other) == Equal
}

func compareUint(a, b uint64) Ordering {
	switch {
	case a < b:
		return Less
	case a > b:
		return Greater
	default:
		return Equal
	}
}

func sign(n int) Ordering {
	switch {
	case n < 0:
		return Less
	case n > 0:
		return Greater
	default:
		return Equal
	}
}
