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

package manifest

import (
	stderrors "errors"
	"io/fs"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/NVIDIA/safevul/pkg/defaults"
	"github.com/NVIDIA/safevul/pkg/errors"
)

// Schema names the manifest fields the processor reads and rewrites.
type Schema struct {
	FixedField        string
	DependenciesField string
}

// DefaultSchema returns the package.json field names.
func DefaultSchema() Schema {
	return Schema{
		FixedField:        defaults.FixedField,
		DependenciesField: defaults.DependenciesField,
	}
}

// Manifest is a package descriptor held as raw JSON. Edits go through sjson
// so that key order and unrelated values are preserved.
type Manifest struct {
	schema Schema
	data   []byte
}

// Width 0 keeps every array element on its own line.
var prettyOptions = &pretty.Options{
	Width:    0,
	Prefix:   "",
	Indent:   "  ",
	SortKeys: false,
}

// Parse validates data as a JSON object and wraps it in a Manifest.
func Parse(data []byte, schema Schema) (*Manifest, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New(errors.ErrCodeInvalidManifest, "manifest is not valid JSON")
	}
	if !gjson.ParseBytes(data).IsObject() {
		return nil, errors.New(errors.ErrCodeInvalidManifest, "manifest is not a JSON object")
	}
	buf := make([]byte, len(data))
	copy(buf, data)
	return &Manifest{schema: schema, data: buf}, nil
}

// Load reads and parses the manifest at path.
func Load(fsys billy.Basic, path string, schema Schema) (*Manifest, error) {
	data, err := util.ReadFile(fsys, path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.WrapWithContext(errors.ErrCodeNotFound,
				"manifest not found", err, map[string]any{"path": path})
		}
		return nil, errors.WrapWithContext(errors.ErrCodeIO,
			"failed to read manifest", err, map[string]any{"path": path})
	}
	m, err := Parse(data, schema)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeInvalidManifest,
			"failed to parse manifest", err, map[string]any{"path": path})
	}
	return m, nil
}

// Save writes the manifest to path, replacing any existing content.
func Save(fsys billy.Basic, path string, m *Manifest) error {
	if err := util.WriteFile(fsys, path, m.Bytes(), 0o644); err != nil {
		return errors.WrapWithContext(errors.ErrCodeIO,
			"failed to write manifest", err, map[string]any{"path": path})
	}
	return nil
}

// Bytes returns the manifest as JSON indented by two spaces.
func (m *Manifest) Bytes() []byte {
	return pretty.PrettyOptions(m.data, prettyOptions)
}

// FixedVersion returns the fixed version field. ok is false when the field
// is missing or is not a JSON string.
func (m *Manifest) FixedVersion() (string, bool) {
	r := gjson.GetBytes(m.data, escapePath(m.schema.FixedField))
	if r.Type != gjson.String {
		return "", false
	}
	return r.Str, true
}

// Dependency returns the raw value of one dependency entry.
func (m *Manifest) Dependency(key string) (gjson.Result, bool) {
	r := gjson.GetBytes(m.data, m.dependencyPath(key))
	return r, r.Exists()
}

// SwapFixedWithDependency exchanges the fixed version value with the value of
// the dependency named key. Values are swapped verbatim, whatever their JSON
// type.
func (m *Manifest) SwapFixedWithDependency(key string) error {
	deps := gjson.GetBytes(m.data, escapePath(m.schema.DependenciesField))
	if !deps.IsObject() {
		return errors.NewWithContext(errors.ErrCodeInvalidManifest,
			"dependencies field is missing or not an object",
			map[string]any{"field": m.schema.DependenciesField})
	}
	dep, ok := m.Dependency(key)
	if !ok {
		return errors.NewWithContext(errors.ErrCodeInvalidManifest,
			"dependency not present in manifest", map[string]any{"dependency": key})
	}

	fixedPath := escapePath(m.schema.FixedField)
	fixedRaw := "null"
	if fixed := gjson.GetBytes(m.data, fixedPath); fixed.Exists() {
		fixedRaw = fixed.Raw
	}

	data, err := sjson.SetRawBytes(m.data, fixedPath, []byte(dep.Raw))
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, "failed to set fixed version", err)
	}
	data, err = sjson.SetRawBytes(data, m.dependencyPath(key), []byte(fixedRaw))
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, "failed to set dependency version", err)
	}
	m.data = data
	return nil
}

func (m *Manifest) dependencyPath(key string) string {
	return escapePath(m.schema.DependenciesField) + "." + escapePath(key)
}

// escapePath turns a literal object key into a gjson/sjson path component.
// Package names such as "@scope/name" or "lodash.merge" carry characters
// that are path syntax otherwise.
func escapePath(key string) string {
	var b strings.Builder
	for i := 0; i < len(key); i++ {
		c := key[i]
		if !isPlainPathChar(c) {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	return b.String()
}

func isPlainPathChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9') || c == '_' || c == '-'
}
