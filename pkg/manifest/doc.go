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

// Package manifest reads and edits package descriptors such as package.json.
//
// The manifest is kept as raw JSON bytes. Reads go through gjson and edits
// through sjson, so swapping two values leaves key order and every unrelated
// field untouched. Output is re-indented with two spaces.
//
// Field names come from a Schema; DefaultSchema uses "fixedVersion" and
// "dependencies". Dependency keys are escaped before being used as paths, so
// scoped names such as "@babel/core" and dotted names such as "lodash.merge"
// address a single key.
//
// SelectDependency picks the dependency for a package folder. An exact key
// match wins; otherwise a lone dependency is used and the selection is marked
// as mismatched.
package manifest
