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

package api

import (
	"github.com/NVIDIA/safevul/pkg/errors"
	"github.com/NVIDIA/safevul/pkg/manifest"
	"github.com/NVIDIA/safevul/pkg/version"
)

// VersionInfo is the structured form of a parsed version.
type VersionInfo struct {
	Version    string   `json:"version" yaml:"version"`
	Major      uint64   `json:"major" yaml:"major"`
	Minor      uint64   `json:"minor" yaml:"minor"`
	Patch      uint64   `json:"patch" yaml:"patch"`
	Prerelease []string `json:"prerelease,omitempty" yaml:"prerelease,omitempty"`
}

// NewVersionInfo describes v.
func NewVersionInfo(v version.Version) VersionInfo {
	info := VersionInfo{
		Version: v.String(),
		Major:   v.Major(),
		Minor:   v.Minor(),
		Patch:   v.Patch(),
	}
	for _, id := range v.Prerelease() {
		info.Prerelease = append(info.Prerelease, id.String())
	}
	return info
}

// ParseVersion parses s strictly, or, when loose is set, parses the first
// version-shaped token in s so that ranges such as "^1.2.3" are accepted.
// Failures carry ErrCodeInvalidVersion.
func ParseVersion(s string, loose bool) (version.Version, error) {
	input := s
	if loose {
		token, ok := manifest.ExtractVersion(s)
		if !ok {
			return version.Version{}, errors.NewWithContext(errors.ErrCodeInvalidVersion,
				"no version found", map[string]any{"input": s})
		}
		input = token
	}
	v, err := version.Parse(input)
	if err != nil {
		return version.Version{}, errors.WrapWithContext(errors.ErrCodeInvalidVersion,
			"invalid version", err, map[string]any{"input": s})
	}
	return v, nil
}
