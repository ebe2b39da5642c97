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
	"testing"

	"golang.org/x/mod/semver"
)

// TestCompareAgreesWithStrictSemver checks that, on inputs that are also
// strict semver (no leading zeros), ordering matches golang.org/x/mod/semver.
func TestCompareAgreesWithStrictSemver(t *testing.T) {
	samples := []string{
		"0.0.0", "0.0.1", "0.1.0", "1.0.0", "1.0.1", "1.1.0", "2.0.0", "10.0.0",
		"1.0.0-0", "1.0.0-1", "1.0.0-2", "1.0.0-10",
		"1.0.0-alpha", "1.0.0-alpha.1", "1.0.0-alpha.beta", "1.0.0-alpha-1",
		"1.0.0-beta", "1.0.0-beta.2", "1.0.0-beta.11", "1.0.0-rc.1",
		"1.0.0-Alpha", "1.0.0-a.b.c", "1.0.0-a.b", "1.0.0-x.7.z.92",
		"1.0.0+build", "1.0.0-rc.1+build.2",
	}

	for _, a := range samples {
		if !semver.IsValid("v" + a) {
			t.Fatalf("sample %q is not strict semver", a)
		}
		for _, b := range samples {
			want := Ordering(semver.Compare("v"+a, "v"+b))
			got := Compare(MustParse(a), MustParse(b))
			if got != want {
				t.Errorf("Compare(%s, %s) = %v, x/mod/semver says %v", a, b, got, want)
			}
		}
	}
}
