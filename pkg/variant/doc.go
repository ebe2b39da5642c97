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

// Package variant materializes copies of a package folder inside itself.
//
// Create copies the contents of a folder into one subfolder per variant name
// ("Safe" and "Vul" by default). The variant folders themselves are never
// copied, so running Create twice merges into the existing copies instead of
// nesting them.
//
// Copies follow symbolic links, keep permission bits, and overwrite existing
// files. All paths are relative to the billy filesystem passed in.
package variant
