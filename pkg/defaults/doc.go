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

// Package defaults provides centralized configuration constants for safevul.
//
// This package defines the folder and field names, concurrency and timeout
// values used when no configuration file or flag overrides them. Centralizing
// these values keeps pkg/config, pkg/processor, pkg/cli and pkg/server consistent.
//
// # Categories
//
//   - Layout names: manifest file, variant folders, failed folder
//   - Manifest fields: fixed version field, dependencies object
//   - Run limits: whole-run timeout
//   - Metrics: namespace for exported series
//   - Server: HTTP timeouts, rate limits and request size caps for safevuld
//
// # Usage
//
//	import "github.com/NVIDIA/safevul/pkg/defaults"
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.ProcessTimeout)
//	defer cancel()
package defaults
