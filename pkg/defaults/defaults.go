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

package defaults

import "time"

// Layout names inside the base directory and each package folder.
const (
	// ManifestFile is the package descriptor read from every folder.
	ManifestFile = "package.json"

	// SafeDir receives a copy of the folder with the versions swapped.
	SafeDir = "Safe"

	// VulDir receives an unmodified copy of the folder.
	VulDir = "Vul"

	// FailedDir holds failed folders, grouped by failure category.
	FailedDir = "Failed"
)

// Manifest field names.
const (
	// FixedField holds the version that fixes the vulnerability.
	FixedField = "fixedVersion"

	// DependenciesField holds the name -> version range object.
	DependenciesField = "dependencies"
)

// Run limits.
const (
	// ProcessTimeout bounds a whole processing run.
	ProcessTimeout = 30 * time.Minute

	// MaxConcurrency caps the number of folders evaluated at once.
	MaxConcurrency = 64
)

// MetricsNamespace prefixes every exported metric name.
const MetricsNamespace = "safevul"
