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

// Package version parses and orders semantic versions using a strict subset of
// the SemVer 2.0 precedence rules.
//
// # Overview
//
// The package has two pure operations:
//
//   - Parse turns a string into a Version or returns an error
//   - Compare orders two Versions as Less, Equal or Greater
//
// Neither operation performs I/O, logs, or keeps state between calls, so both
// are safe to call from any number of goroutines.
//
// # Grammar
//
// Parse accepts exactly the following grammar, anchored at both ends:
//
//	version    := release ("-" prerelease)? ("+" buildmeta)?
//	release    := digits "." digits "." digits
//	prerelease := identifier ("." identifier)*
//	buildmeta  := identifier ("." identifier)*
//	identifier := one or more of [0-9A-Za-z-]
//	digits     := one or more of [0-9]
//
// A "v" prefix, surrounding whitespace, range operators such as "^" or "~",
// and partial versions such as "1.2" are all rejected. Callers that handle
// decorated strings must extract the bare version token first.
//
// Build metadata is validated and then discarded. It never participates in
// comparison and is not reproduced by String.
//
// # Leading Zeros
//
// Unlike semver.org, leading zeros are accepted in release components and in
// numeric prerelease identifiers: "01.2.3" parses as 1.2.3 and "1.0.0-01"
// orders equal to "1.0.0-1". This permissiveness is intentional and must not
// be tightened.
//
// # Precedence
//
// Compare applies these rules in order:
//
//  1. Major, minor and patch compare numerically.
//  2. A release (no prerelease) is greater than any prerelease of the same
//     major.minor.patch.
//  3. Prerelease identifiers compare left to right. Two numeric identifiers
//     compare by value, a numeric identifier is lower than an alphanumeric
//     one, and two alphanumeric identifiers compare byte-wise.
//  4. When one identifier list is a prefix of the other, the shorter list is
//     lower.
//
// Numeric prerelease identifiers compare by magnitude without a size limit.
// Release components must fit in a uint64.
//
// # Usage
//
//	fixed, err := version.Parse("1.4.0")
//	if err != nil {
//	    // errors.Is(err, version.ErrMalformedVersion) or ErrNumericOverflow
//	}
//	dep := version.MustParse("1.4.0-rc.1")
//	if fixed.Compare(dep) == version.Greater {
//	    fmt.Println("fixed release supersedes the dependency")
//	}
//
// # Error Handling
//
// Parse returns one of two sentinel errors, wrapped with the offending input:
//
//   - ErrMalformedVersion: the input does not match the grammar
//   - ErrNumericOverflow: a release component does not fit in a uint64
//
// Grammar violations are reported before overflow, so "99999999999999999999.1"
// is malformed rather than overflowing.
package version
