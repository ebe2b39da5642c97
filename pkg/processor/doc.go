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

// Package processor runs the package folder workflow on a base directory.
//
// Every immediate subfolder of the base directory is a package folder holding
// a manifest with a fixed version and a dependencies object. For each folder
// the processor:
//
//  1. loads the manifest and checks the fixed version shape
//  2. selects the dependency named like the folder, or the only dependency
//  3. compares the fixed version against the dependency version, which must
//     be strictly older
//  4. copies the folder into its Safe and Vul variants
//  5. swaps the fixed and dependency versions in the Safe manifest
//
// The first failure of a folder decides its Category. After all folders are
// handled, failed folders are moved to <failed>/<Category>/<name>, with _1,
// _2, ... appended when the destination is taken. A folder whose dependency
// key does not match its name is still copied and swapped, then relocated.
//
// Folders are examined concurrently, bounded by the configured concurrency,
// and folded into the Report in sorted order:
//
//	p, err := processor.New(osfs.New(base), cfg)
//	if err != nil {
//		return err
//	}
//	report, err := p.Run(ctx)
//
// In a dry run nothing is written and the relocations are reported as
// planned moves.
package processor
