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

// Category names the reason a package folder failed. Folders are relocated to
// a subfolder of the failed directory named after their category.
type Category string

const (
	// CategoryMissingPackage means the folder has no manifest.
	CategoryMissingPackage Category = "MissingPackage"
	// CategoryInvalidJSON means the manifest could not be read or parsed.
	CategoryInvalidJSON Category = "InvalidJSON"
	// CategoryInvalidFixed means the fixed version is missing or malformed.
	CategoryInvalidFixed Category = "InvalidFixed"
	// CategoryCopyError means the variant copies could not be created.
	CategoryCopyError Category = "CopyError"
	// CategoryMismatchedDeps means no dependency key matches the folder name.
	CategoryMismatchedDeps Category = "MismatchedDeps"
	// CategorySwapError means the versions could not be swapped in the
	// safe variant.
	CategorySwapError Category = "SwapError"
	// CategoryInvalidDepVersion means the dependency value holds no version.
	CategoryInvalidDepVersion Category = "InvalidDepVersion"
	// CategorySameVersion means the fixed and dependency versions are equal.
	CategorySameVersion Category = "SameVersion"
	// CategoryVersionNotGreater means the fixed version is older than the
	// dependency version.
	CategoryVersionNotGreater Category = "VersionNotGreater"
)

var categories = []Category{
	CategoryMissingPackage,
	CategoryInvalidJSON,
	CategoryInvalidFixed,
	CategoryCopyError,
	CategoryMismatchedDeps,
	CategorySwapError,
	CategoryInvalidDepVersion,
	CategorySameVersion,
	CategoryVersionNotGreater,
}

// Categories returns all categories in reporting order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// IsKnown reports whether c is one of the defined categories.
func (c Category) IsKnown() bool {
	return c.rank() >= 0
}

// Description returns a human readable summary line for the category.
func (c Category) Description() string {
	switch c {
	case CategoryMissingPackage:
		return "manifest not found"
	case CategoryInvalidJSON:
		return "manifest could not be parsed"
	case CategoryInvalidFixed:
		return "fixed version missing or invalid"
	case CategoryCopyError:
		return "variant copy failed"
	case CategoryMismatchedDeps:
		return "dependency key mismatch"
	case CategorySwapError:
		return "version swap failed"
	case CategoryInvalidDepVersion:
		return "invalid dependency version"
	case CategorySameVersion:
		return "fixed version equals dependency version"
	case CategoryVersionNotGreater:
		return "fixed version not greater than dependency version"
	default:
		return string(c)
	}
}

func (c Category) rank() int {
	for i, known := range categories {
		if known == c {
			return i
		}
	}
	return -1
}
