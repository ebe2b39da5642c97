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
	"context"
	stderrors "errors"
	"fmt"
	"io/fs"
	"log/slog"
	"slices"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/NVIDIA/safevul/pkg/config"
	"github.com/NVIDIA/safevul/pkg/errors"
	"github.com/NVIDIA/safevul/pkg/manifest"
)

// Processor scans a base directory of package folders, creates the variants
// of every eligible folder and relocates failed folders.
type Processor struct {
	fs     billy.Filesystem
	cfg    *config.Config
	schema manifest.Schema
	runID  string
}

// Option configures a Processor.
type Option func(*Processor)

// WithRunID sets the run identifier. A random UUID is used by default.
func WithRunID(id string) Option {
	return func(p *Processor) {
		p.runID = id
	}
}

// New returns a Processor operating on fsys, whose root is the base
// directory. A nil cfg uses the defaults.
func New(fsys billy.Filesystem, cfg *config.Config, opts ...Option) (*Processor, error) {
	if fsys == nil {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "filesystem is required")
	}
	if cfg == nil {
		cfg = config.NewConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	p := &Processor{
		fs:  fsys,
		cfg: cfg,
		schema: manifest.Schema{
			FixedField:        cfg.FixedField(),
			DependenciesField: cfg.DependenciesField(),
		},
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.runID == "" {
		p.runID = uuid.NewString()
	}
	return p, nil
}

// RunID returns the run identifier.
func (p *Processor) RunID() string {
	return p.runID
}

// Run processes every folder under the base directory. Folders are examined
// concurrently; the report is assembled in sorted folder order so that it
// does not depend on scheduling.
func (p *Processor) Run(ctx context.Context) (*Report, error) {
	start := time.Now()
	report := NewReport(p.runID, p.fs.Root(), p.cfg.DryRun())

	names, err := p.scan()
	if err != nil {
		return nil, err
	}
	report.Scanned = names

	slog.Info("processing package folders",
		slog.String("run", p.runID),
		slog.String("base", p.fs.Root()),
		slog.Int("folders", len(names)),
		slog.Int("concurrency", p.cfg.Concurrency()),
		slog.Bool("dryRun", p.cfg.DryRun()))

	outcomes := make([]Outcome, len(names))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.cfg.Concurrency())

	for i, name := range names {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out := p.evaluate(name)
			if out.Eligible {
				p.materialize(&out)
			}
			outcomes[i] = out
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeCanceled, "processing canceled", err)
	}

	for i := range outcomes {
		fold(report, &outcomes[i])
	}

	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeCanceled, "processing canceled before relocation", err)
	}
	p.relocate(report)

	slog.Info("processing complete",
		slog.String("run", p.runID),
		slog.Int("scanned", len(report.Scanned)),
		slog.Int("processed", len(report.Processed)),
		slog.Int("failed", len(report.Failures)),
		slog.Duration("duration", time.Since(start)))

	return report, nil
}

// fold merges one outcome into the report.
func fold(r *Report, out *Outcome) {
	for _, c := range out.Failures {
		r.Mark(out.Name, c)
	}
	for _, n := range out.Notes {
		r.AddNote(out.Name, n)
	}
	if out.Materialized {
		r.Processed = append(r.Processed, out.Name)
	}
	if c, ok := r.Category(out.Name); ok {
		slog.Debug("folder failed",
			slog.String("folder", out.Name),
			slog.String("category", string(c)))
	}
}

// scan lists the package folders under the base directory, sorted by name.
// The failed directory is never scanned.
func (p *Processor) scan() ([]string, error) {
	entries, err := p.fs.ReadDir(".")
	if err != nil {
		code := errors.ErrCodeIO
		if stderrors.Is(err, fs.ErrNotExist) {
			code = errors.ErrCodeNotFound
		}
		return nil, errors.WrapWithContext(code, "failed to read base directory", err,
			map[string]any{"path": p.fs.Root()})
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if name == p.cfg.FailedDir() {
			continue
		}
		// follow links to directories
		info, err := p.fs.Stat(name)
		if err != nil || !info.IsDir() {
			continue
		}
		names = append(names, name)
	}
	slices.Sort(names)
	return names, nil
}

// relocate moves every failed folder to <failed>/<category>/<name>, adding a
// numeric suffix when the destination already exists. In a dry run the moves
// are only planned.
func (p *Processor) relocate(r *Report) {
	if len(r.Failures) == 0 {
		return
	}

	for _, c := range categories {
		names := r.Categories[c]
		if len(names) == 0 {
			continue
		}
		dir := p.fs.Join(p.cfg.FailedDir(), string(c))
		if !r.DryRun {
			if err := p.fs.MkdirAll(dir, 0o755); err != nil {
				slog.Error("failed to create category directory",
					slog.String("path", dir),
					slog.String("error", err.Error()))
				for _, name := range names {
					r.Moves = append(r.Moves, Move{Name: name, Category: c, Error: err.Error()})
				}
				continue
			}
		}
		for _, name := range names {
			r.Moves = append(r.Moves, p.move(name, c, dir, r.DryRun))
		}
	}
}

func (p *Processor) move(name string, c Category, dir string, dryRun bool) Move {
	m := Move{Name: name, Category: c, Planned: dryRun}

	dest, err := p.destination(dir, name)
	if err != nil {
		m.Error = err.Error()
		return m
	}
	m.Destination = dest

	if dryRun {
		slog.Info("would move folder", slog.String("folder", name), slog.String("destination", dest))
		return m
	}

	if _, err := p.fs.Lstat(name); err != nil {
		m.Error = fmt.Sprintf("source does not exist: %v", err)
		slog.Warn("failed to move folder", slog.String("folder", name), slog.String("error", m.Error))
		return m
	}
	if err := p.fs.Rename(name, dest); err != nil {
		m.Error = err.Error()
		slog.Error("failed to move folder",
			slog.String("folder", name),
			slog.String("destination", dest),
			slog.String("error", err.Error()))
		return m
	}
	slog.Info("moved folder", slog.String("folder", name), slog.String("destination", dest))
	return m
}

// destination returns the first free path among dir/name, dir/name_1, ...
func (p *Processor) destination(dir, name string) (string, error) {
	dest := p.fs.Join(dir, name)
	for i := 1; ; i++ {
		_, err := p.fs.Lstat(dest)
		if stderrors.Is(err, fs.ErrNotExist) {
			return dest, nil
		}
		if err != nil {
			return "", errors.WrapWithContext(errors.ErrCodeIO, "failed to check destination", err,
				map[string]any{"path": dest})
		}
		dest = p.fs.Join(dir, fmt.Sprintf("%s_%d", name, i))
	}
}
