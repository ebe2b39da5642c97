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
)

func BenchmarkParse(b *testing.B) {
	tests := []string{
		"1.2.3",
		"1.2.3-alpha",
		"1.2.3-alpha.1",
		"1.2.3+build.7",
		"1.2.3-rc.1+build.7",
		"10.200.3000-x.7.z.92",
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		input := tests[i%len(tests)]
		_, _ = Parse(input)
	}
}

func BenchmarkParseRelease(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Parse("1.2.3")
	}
}

func BenchmarkParseMalformed(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Parse("v1.2")
	}
}

func BenchmarkVersionString(b *testing.B) {
	v := MustParse("1.2.3-alpha.1")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v.String()
	}
}

func BenchmarkCompareRelease(b *testing.B) {
	v1 := NewVersion(1, 2, 3)
	v2 := NewVersion(1, 2, 4)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Compare(v1, v2)
	}
}

func BenchmarkComparePrerelease(b *testing.B) {
	v1 := MustParse("1.0.0-beta.2")
	v2 := MustParse("1.0.0-beta.11")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Compare(v1, v2)
	}
}
