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

package processor

import (
	"fmt"
	"log/slog"

	"github.com/NVIDIA/safevul/pkg/errors"
	"github.com/NVIDIA/safevul/pkg/manifest"
	"github.com/NVIDIA/safevul/pkg/variant"
	"github.com/NVIDIA/safevul/pkg/version"
)

// Outcome is the result of examining and materializing one folder.
type Outcome struct {
	// Name is the folder name relative to the base directory.
	Name string

	// Failures lists every failure hit, in the order they were found.
	Failures []Category

	// Notes holds informational messages in the order they were produced.
	Notes []string

	// Dependency is the dependency selected for the folder.
	Dependency manifest.Selection

	// Fixed and DependencyVersion are the version strings compared.
	Fixed             string
	DependencyVersion string

	// Ordering is the result of comparing Fixed against DependencyVersion.
	Ordering version.Ordering

	// Eligible is true when the folder passed every check that gates
	// variant creation.
	Eligible bool

	// Materialized is true when the variants were created, or would have
	// been in a dry run.
	Materialized bool
}

// Failed reports whether any failure was recorded.
func (o *Outcome) Failed() bool {
	return len(o.Failures) > 0
}

func (o *Outcome) fail(c Category, format string, args ...any) {
	o.Failures = append(o.Failures, c)
	o.note(format, args...)
}

func (o *Outcome) note(format string, args ...any) {
	o.Notes = append(o.Notes, fmt.Sprintf(format, args...))
}

// evaluate runs the read-only checks on a folder.
func (p *Processor) evaluate(name string) Outcome {
	out := Outcome{Name: name}

	path := p.fs.Join(name, p.cfg.Manifest())
	m, err := manifest.Load(p.fs, path, p.schema)
	if err != nil {
		if errors.IsCode(err, errors.ErrCodeNotFound) {
			out.fail(CategoryMissingPackage, "%s not found", p.cfg.Manifest())
		} else {
			out.fail(CategoryInvalidJSON, "%s could not be parsed: %v", p.cfg.Manifest(), err)
		}
		return out
	}

	fixed, ok := m.FixedVersion()
	if !ok || !manifest.LooksLikeVersion(fixed) {
		out.fail(CategoryInvalidFixed, "%s missing or invalid (%q)", p.cfg.FixedField(), fixed)
		return out
	}
	out.Fixed = fixed

	sel := m.SelectDependency(name)
	out.Dependency = sel
	switch sel.Match {
	case manifest.MatchSingle:
		out.fail(CategoryMismatchedDeps, "dependency key %q used (does not match folder name)", sel.Key)
	case manifest.MatchAmbiguous:
		out.fail(CategoryMismatchedDeps, "%d dependencies present and none matches folder name; skipping swap", sel.Count)
	case manifest.MatchMissing:
		out.fail(CategoryMismatchedDeps, "%s missing or not an object; skipping swap", p.cfg.DependenciesField())
	}

	if sel.Usable() {
		if !sel.IsString {
			out.fail(CategoryInvalidDepVersion, "dependency version for %q is not a string", sel.Key)
			return out
		}
		token, ok := manifest.ExtractVersion(sel.Value)
		if !ok {
			out.fail(CategoryInvalidDepVersion, "dependency version %q is not a strict semver", sel.Value)
			return out
		}
		out.DependencyVersion = token

		ord, err := compareVersions(fixed, token)
		if err != nil {
			out.fail(CategoryInvalidFixed, "could not compare versions (%q vs %q): %v", fixed, token, err)
			return out
		}
		out.Ordering = ord

		switch ord {
		case version.Equal:
			out.fail(CategorySameVersion, "%s %q equals dependency version %q", p.cfg.FixedField(), fixed, token)
			return out
		case version.Less:
			out.fail(CategoryVersionNotGreater, "%s %q is not greater than dependency version %q",
				p.cfg.FixedField(), fixed, token)
			return out
		}
	}

	out.Eligible = true
	return out
}

// materialize creates the variants of an eligible folder and swaps the
// versions in the safe copy. Nothing is written in a dry run.
func (p *Processor) materialize(out *Outcome) {
	if p.cfg.DryRun() {
		out.Materialized = true
		out.note("dry run: would create %v and swap versions in %s",
			p.cfg.VariantDirs(), p.fs.Join(p.cfg.SafeDir(), p.cfg.Manifest()))
		return
	}

	if err := variant.Create(p.fs, out.Name, p.cfg.VariantDirs()...); err != nil {
		out.fail(CategoryCopyError, "failed to copy contents: %v", err)
		return
	}
	out.Materialized = true
	slog.Debug("created variants",
		slog.String("run", p.runID),
		slog.String("folder", out.Name),
		slog.Any("variants", p.cfg.VariantDirs()))

	path := p.fs.Join(out.Name, p.cfg.SafeDir(), p.cfg.Manifest())
	safe, err := manifest.Load(p.fs, path, p.schema)
	if err != nil {
		out.fail(CategorySwapError, "safe manifest could not be loaded: %v", err)
		return
	}
	if !out.Dependency.Usable() {
		out.fail(CategorySwapError, "no suitable dependency key for swap")
		return
	}
	if err := safe.SwapFixedWithDependency(out.Dependency.Key); err != nil {
		out.fail(CategorySwapError, "failed to swap versions: %v", err)
		return
	}
	if err := manifest.Save(p.fs, path, safe); err != nil {
		out.fail(CategorySwapError, "failed to write safe manifest: %v", err)
		return
	}
	out.note("swapped %s %q with dependency %q (%q) in %s",
		p.cfg.FixedField(), out.Fixed, out.Dependency.Key, out.Dependency.Value, path)
}

func compareVersions(fixed, dependency string) (version.Ordering, error) {
	a, err := version.Parse(fixed)
	if err != nil {
		return version.Equal, err
	}
	b, err := version.Parse(dependency)
	if err != nil {
		return version.Equal, err
	}
	return version.Compare(a, b), nil
}
