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

package manifest

import (
	"regexp"

	"github.com/tidwall/gjson"
)

// Match describes how a dependency was chosen for a package folder.
type Match int

const (
	// MatchExact means a dependency key equals the folder name.
	MatchExact Match = iota
	// MatchSingle means the only dependency was taken although its key
	// differs from the folder name.
	MatchSingle
	// MatchAmbiguous means several dependencies exist and none matches.
	MatchAmbiguous
	// MatchMissing means the dependencies field is absent or not an object.
	MatchMissing
)

// String returns a short lower-case name for the match kind.
func (m Match) String() string {
	switch m {
	case MatchExact:
		return "exact"
	case MatchSingle:
		return "single"
	case MatchAmbiguous:
		return "ambiguous"
	case MatchMissing:
		return "missing"
	default:
		return "unknown"
	}
}

// Mismatched reports whether the selection does not match the folder name.
func (m Match) Mismatched() bool {
	return m != MatchExact
}

// Selection is the dependency chosen for a folder.
type Selection struct {
	Match Match
	// Key is empty for MatchAmbiguous and MatchMissing.
	Key string
	// Value is the dependency value when it is a JSON string.
	Value string
	// IsString is false when the value has another JSON type.
	IsString bool
	// Count is the number of dependency entries.
	Count int
}

// Usable reports whether a dependency key was selected.
func (s Selection) Usable() bool {
	return s.Key != ""
}

// SelectDependency picks the dependency keyed by name. When no key matches
// and exactly one dependency exists, that one is selected instead.
func (m *Manifest) SelectDependency(name string) Selection {
	deps := gjson.GetBytes(m.data, escapePath(m.schema.DependenciesField))
	if !deps.IsObject() {
		return Selection{Match: MatchMissing}
	}

	var (
		exact  *Selection
		single Selection
		count  int
	)
	deps.ForEach(func(key, value gjson.Result) bool {
		count++
		sel := Selection{
			Key:      key.String(),
			IsString: value.Type == gjson.String,
		}
		if sel.IsString {
			sel.Value = value.Str
		}
		if sel.Key == name {
			sel.Match = MatchExact
			exact = &sel
		}
		if count == 1 {
			single = sel
		}
		return true
	})

	switch {
	case exact != nil:
		exact.Count = count
		return *exact
	case count == 1:
		single.Match = MatchSingle
		single.Count = count
		return single
	default:
		return Selection{Match: MatchAmbiguous, Count: count}
	}
}

var (
	versionToken = regexp.MustCompile(`\d+\.\d+\.\d+(?:[-+][0-9A-Za-z.-]+)?`)
	versionShape = regexp.MustCompile(`^\d+\.\d+\.\d+(?:[-+][0-9A-Za-z.-]+)?$`)
)

// ExtractVersion returns the first version-shaped token in a decorated range
// string such as "^1.2.3" or ">=1.0.0-rc.1 <2". The token is not validated;
// pass it to version.Parse.
func ExtractVersion(s string) (string, bool) {
	tok := versionToken.FindString(s)
	return tok, tok != ""
}

// LooksLikeVersion reports whether the whole string has the loose version
// shape accepted for a fixed version before strict parsing.
func LooksLikeVersion(s string) bool {
	return versionShape.MatchString(s)
}
