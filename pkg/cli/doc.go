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

// Package cli implements the safevul command-line interface.
//
// # Commands
//
// process - Prepare a directory of vulnerable package folders:
//
//	safevul process --path ./packages [--dry-run] [--config .safevul.yaml]
//
// Every subfolder of --path is a package folder with a package.json holding
// a "fixedVersion" and the vulnerable dependency. Eligible folders get a Safe
// copy, where the fixed and vulnerable versions are swapped, and a Vul copy,
// left as is. Failed folders are moved to Failed/<Category>/. A summary table
// is printed to stderr and the full report is written to --output.
//
// compare - Order two versions:
//
//	safevul compare 1.0.0-alpha 1.0.0
//
// Prints "less", "equal" or "greater". With --loose the first version-shaped
// token of each argument is used, so ranges such as "^1.2.3" are accepted.
//
// parse - Show the components of a version:
//
//	safevul parse 1.2.3-rc.1+build.5 --format yaml
//
// # Global Flags
//
//	--log-level    Log level: debug, info, warn, error (default: info)
//	--debug        Shorthand for --log-level debug
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Output Formats
//
// The report of process and the result of parse can be written as json
// (default), yaml, or a table of flattened fields.
//
// # Environment Variables
//
//	LOG_LEVEL  Set logging verbosity (debug, info, warn, error)
//
// # Exit Codes
//
//	0  Success
//	1  General error (invalid arguments, execution failure)
//	2  Context canceled or timeout
package cli
