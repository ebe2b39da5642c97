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

// Package config holds the settings of a processing run.
//
// A Config starts from pkg/defaults, is optionally overlaid with a YAML file,
// and is finally overlaid with Options built from command-line flags:
//
//	cfg, err := config.Load(".safevul.yaml", config.WithDryRun(true))
//
// Example file (every key is optional):
//
//	manifest: package.json
//	fixedField: fixedVersion
//	dependenciesField: dependencies
//	safeDir: Safe
//	vulDir: Vul
//	failedDir: Failed
//	concurrency: 8
//	dryRun: false
//
// Unknown keys are rejected so that typos do not silently fall back to
// defaults.
package config
