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

package processor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReportMarkFirstFailureWins(t *testing.T) {
	r := NewReport("id", "/base", false)

	assert.True(t, r.Mark("single", CategoryMismatchedDeps))
	assert.False(t, r.Mark("single", CategorySwapError))
	assert.True(t, r.Mark("older", CategoryVersionNotGreater))
	assert.True(t, r.Mark("nopkg", CategoryMissingPackage))

	c, ok := r.Category("single")
	assert.True(t, ok)
	assert.Equal(t, CategoryMismatchedDeps, c)
	assert.Empty(t, r.Categories[CategorySwapError])

	_, ok = r.Category("lodash")
	assert.False(t, ok)

	assert.Equal(t, []string{"nopkg", "single", "older"}, r.Failed())
	assert.Equal(t, []CategoryCount{
		{Category: CategoryMissingPackage, Count: 1},
		{Category: CategoryMismatchedDeps, Count: 1},
		{Category: CategoryVersionNotGreater, Count: 1},
	}, r.Counts())
}

func TestReportSucceeded(t *testing.T) {
	r := NewReport("id", "/base", true)
	r.Scanned = []string{"a", "b", "c"}
	r.Mark("b", CategoryInvalidJSON)
	assert.Equal(t, 2, r.Succeeded())
}

func TestFoldKeepsOutcomeOrder(t *testing.T) {
	r := NewReport("id", "/base", false)
	fold(r, &Outcome{
		Name:         "ambiguous",
		Failures:     []Category{CategoryMismatchedDeps, CategorySwapError},
		Notes:        []string{"no match", "no swap"},
		Materialized: true,
	})
	fold(r, &Outcome{Name: "lodash", Materialized: true})

	assert.Equal(t, CategoryMismatchedDeps, r.Failures["ambiguous"])
	assert.Equal(t, []string{"ambiguous", "lodash"}, r.Processed)
	assert.Equal(t, []Note{
		{Name: "ambiguous", Message: "no match"},
		{Name: "ambiguous", Message: "no swap"},
	}, r.Notes)
}

func TestCategories(t *testing.T) {
	all := Categories()
	assert.Len(t, all, 9)
	assert.Equal(t, CategoryMissingPackage, all[0])
	assert.Equal(t, CategoryVersionNotGreater, all[len(all)-1])

	// the returned slice is a copy
	all[0] = "changed"
	assert.Equal(t, CategoryMissingPackage, Categories()[0])

	for _, c := range Categories() {
		assert.True(t, c.IsKnown())
		assert.NotEqual(t, string(c), c.Description())
	}
	assert.False(t, Category("Other").IsKnown())
	assert.Equal(t, "Other", Category("Other").Description())
}
