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

package config

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/NVIDIA/safevul/pkg/defaults"
	"github.com/NVIDIA/safevul/pkg/errors"
)

// Config controls a processing run. Fields are private; use NewConfig or
// Load with Options to build one and the getters to read it.
type Config struct {
	// manifest is the descriptor file name inside each package folder.
	manifest string

	// fixedField is the manifest field holding the fixed version.
	fixedField string

	// dependenciesField is the manifest object mapping names to version ranges.
	dependenciesField string

	// safeDir and vulDir are the variant folder names created per package.
	safeDir string
	vulDir  string

	// failedDir is the folder under the base that receives failed packages.
	failedDir string

	// concurrency bounds how many folders are evaluated at once.
	concurrency int

	// dryRun disables all writes.
	dryRun bool
}

// fileConfig is the on-disk YAML shape. Zero values mean "keep default".
type fileConfig struct {
	Manifest          string `yaml:"manifest"`
	FixedField        string `yaml:"fixedField"`
	DependenciesField string `yaml:"dependenciesField"`
	SafeDir           string `yaml:"safeDir"`
	VulDir            string `yaml:"vulDir"`
	FailedDir         string `yaml:"failedDir"`
	Concurrency       int    `yaml:"concurrency"`
	DryRun            bool   `yaml:"dryRun"`
}

// Manifest returns the manifest file name.
func (c *Config) Manifest() string {
	return c.manifest
}

// FixedField returns the name of the fixed version field.
func (c *Config) FixedField() string {
	return c.fixedField
}

// DependenciesField returns the name of the dependencies object field.
func (c *Config) DependenciesField() string {
	return c.dependenciesField
}

// SafeDir returns the name of the swapped variant folder.
func (c *Config) SafeDir() string {
	return c.safeDir
}

// VulDir returns the name of the unmodified variant folder.
func (c *Config) VulDir() string {
	return c.vulDir
}

// VariantDirs returns the variant folder names in creation order.
func (c *Config) VariantDirs() []string {
	return []string{c.safeDir, c.vulDir}
}

// FailedDir returns the name of the failed folder.
func (c *Config) FailedDir() string {
	return c.failedDir
}

// Concurrency returns the evaluation concurrency.
func (c *Config) Concurrency() int {
	return c.concurrency
}

// DryRun returns whether writes are disabled.
func (c *Config) DryRun() bool {
	return c.dryRun
}

// Validate checks if the Config has valid settings.
func (c *Config) Validate() error {
	names := map[string]string{
		"manifest":          c.manifest,
		"fixedField":        c.fixedField,
		"dependenciesField": c.dependenciesField,
		"safeDir":           c.safeDir,
		"vulDir":            c.vulDir,
		"failedDir":         c.failedDir,
	}
	for key, value := range names {
		if strings.TrimSpace(value) == "" {
			return errors.NewWithContext(errors.ErrCodeInvalidRequest,
				"config value cannot be empty", map[string]any{"key": key})
		}
	}

	for key, value := range map[string]string{
		"manifest":  c.manifest,
		"safeDir":   c.safeDir,
		"vulDir":    c.vulDir,
		"failedDir": c.failedDir,
	} {
		if strings.ContainsAny(value, `/\`) || value == "." || value == ".." {
			return errors.NewWithContext(errors.ErrCodeInvalidRequest,
				"config value must be a plain name", map[string]any{"key": key, "value": value})
		}
	}

	if c.safeDir == c.vulDir || c.safeDir == c.failedDir || c.vulDir == c.failedDir {
		return errors.NewWithContext(errors.ErrCodeInvalidRequest,
			"safeDir, vulDir and failedDir must differ", map[string]any{
				"safeDir":   c.safeDir,
				"vulDir":    c.vulDir,
				"failedDir": c.failedDir,
			})
	}

	if c.concurrency < 1 || c.concurrency > defaults.MaxConcurrency {
		return errors.NewWithContext(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("concurrency must be between 1 and %d", defaults.MaxConcurrency),
			map[string]any{"concurrency": c.concurrency})
	}

	return nil
}

type Option func(*Config)

// WithManifest sets the manifest file name.
func WithManifest(name string) Option {
	return func(c *Config) {
		c.manifest = name
	}
}

// WithFixedField sets the fixed version field name.
func WithFixedField(field string) Option {
	return func(c *Config) {
		c.fixedField = field
	}
}

// WithDependenciesField sets the dependencies object field name.
func WithDependenciesField(field string) Option {
	return func(c *Config) {
		c.dependenciesField = field
	}
}

// WithVariantDirs sets the Safe and Vul folder names.
func WithVariantDirs(safe, vul string) Option {
	return func(c *Config) {
		c.safeDir = safe
		c.vulDir = vul
	}
}

// WithFailedDir sets the failed folder name.
func WithFailedDir(name string) Option {
	return func(c *Config) {
		c.failedDir = name
	}
}

// WithConcurrency sets the evaluation concurrency.
func WithConcurrency(n int) Option {
	return func(c *Config) {
		c.concurrency = n
	}
}

// WithDryRun sets whether writes are disabled.
func WithDryRun(enabled bool) Option {
	return func(c *Config) {
		c.dryRun = enabled
	}
}

// NewConfig returns a Config with default values.
func NewConfig(options ...Option) *Config {
	c := &Config{
		manifest:          defaults.ManifestFile,
		fixedField:        defaults.FixedField,
		dependenciesField: defaults.DependenciesField,
		safeDir:           defaults.SafeDir,
		vulDir:            defaults.VulDir,
		failedDir:         defaults.FailedDir,
		concurrency:       min(runtime.NumCPU(), defaults.MaxConcurrency),
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

// Load reads a YAML config file, applies it over the defaults and then
// applies options, which take precedence over the file. The result is
// validated.
func Load(path string, options ...Option) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.WrapWithContext(errors.ErrCodeNotFound,
				"config file not found", err, map[string]any{"path": path})
		}
		return nil, errors.WrapWithContext(errors.ErrCodeIO,
			"failed to read config file", err, map[string]any{"path": path})
	}

	fc, err := decode(data)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeInvalidRequest,
			"failed to parse config file", err, map[string]any{"path": path})
	}

	c := NewConfig(append(fc.options(), options...)...)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func decode(data []byte) (*fileConfig, error) {
	var fc fileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !stderrors.Is(err, io.EOF) {
		return nil, err
	}
	return &fc, nil
}

func (fc *fileConfig) options() []Option {
	var opts []Option
	if fc.Manifest != "" {
		opts = append(opts, WithManifest(fc.Manifest))
	}
	if fc.FixedField != "" {
		opts = append(opts, WithFixedField(fc.FixedField))
	}
	if fc.DependenciesField != "" {
		opts = append(opts, WithDependenciesField(fc.DependenciesField))
	}
	if fc.SafeDir != "" || fc.VulDir != "" {
		safe, vul := defaults.SafeDir, defaults.VulDir
		if fc.SafeDir != "" {
			safe = fc.SafeDir
		}
		if fc.VulDir != "" {
			vul = fc.VulDir
		}
		opts = append(opts, WithVariantDirs(safe, vul))
	}
	if fc.FailedDir != "" {
		opts = append(opts, WithFailedDir(fc.FailedDir))
	}
	if fc.Concurrency != 0 {
		opts = append(opts, WithConcurrency(fc.Concurrency))
	}
	if fc.DryRun {
		opts = append(opts, WithDryRun(true))
	}
	return opts
}
