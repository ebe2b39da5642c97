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

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/safevul/pkg/config"
	"github.com/NVIDIA/safevul/pkg/defaults"
	"github.com/NVIDIA/safevul/pkg/errors"
	"github.com/NVIDIA/safevul/pkg/metrics"
	"github.com/NVIDIA/safevul/pkg/processor"
)

func processCmd() *cli.Command {
	return &cli.Command{
		Name:  "process",
		Usage: "Create Safe and Vul variants of every package folder under a directory",
		Description: `Scan the immediate subfolders of --path. For each folder:
  - read package.json and check that fixedVersion is a version
  - pick the dependency named like the folder (or the only dependency)
  - require fixedVersion to be greater than the dependency version
  - copy the folder into Safe/ and Vul/
  - swap fixedVersion and the dependency version in Safe/package.json

Folders that fail a check are moved to Failed/<Category>/ under --path.
A summary is printed to stderr; the full report is written in the
selected format to --output or stdout.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "path",
				Aliases:  []string{"p"},
				Usage:    "Directory containing the package folders",
				Required: true,
			},
			&cli.BoolFlag{
				Name:    "dry-run",
				Aliases: []string{"n"},
				Usage:   "Do not write anything; report the planned actions",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML file overriding layout and field names",
			},
			&cli.IntFlag{
				Name:  "concurrency",
				Usage: fmt.Sprintf("Number of folders examined at once (1-%d)", defaults.MaxConcurrency),
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Value: defaults.ProcessTimeout,
				Usage: "Maximum duration of the run",
			},
			&cli.StringFlag{
				Name:  "metrics-file",
				Usage: "Write run metrics to this file in Prometheus text format",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			base, err := resolveBase(cmd.String("path"))
			if err != nil {
				return err
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(ctx, cmd.Duration("timeout"))
			defer cancel()

			p, err := processor.New(osfs.New(base), cfg)
			if err != nil {
				return err
			}

			start := time.Now()
			report, err := p.Run(ctx)
			if err != nil {
				return err
			}

			if path := cmd.String("metrics-file"); path != "" {
				rec := metrics.NewRecorder()
				rec.Observe(report, time.Since(start))
				if err := rec.WriteTextfile(path); err != nil {
					return err
				}
				slog.Debug("metrics written", slog.String("path", path))
			}

			printSummary(cmd.Root().ErrWriter, report)

			w := newOutputWriter(cmd, outFormat)
			defer func() {
				if err := w.Close(); err != nil {
					slog.Warn("failed to close output", slog.String("error", err.Error()))
				}
			}()
			return w.Serialize(ctx, report)
		},
	}
}

func resolveBase(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.WrapWithContext(errors.ErrCodeInvalidRequest, "invalid path", err,
			map[string]any{"path": path})
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", errors.WrapWithContext(errors.ErrCodeNotFound, "target is not an existing directory", err,
			map[string]any{"path": abs})
	}
	if !info.IsDir() {
		return "", errors.NewWithContext(errors.ErrCodeInvalidRequest, "target is not a directory",
			map[string]any{"path": abs})
	}
	return abs, nil
}

// loadConfig builds the run configuration. Flags override the config file,
// which overrides the defaults.
func loadConfig(cmd *cli.Command) (*config.Config, error) {
	var opts []config.Option
	if cmd.IsSet("dry-run") {
		opts = append(opts, config.WithDryRun(cmd.Bool("dry-run")))
	}
	if cmd.IsSet("concurrency") {
		opts = append(opts, config.WithConcurrency(cmd.Int("concurrency")))
	}

	if path := cmd.String("config"); path != "" {
		return config.Load(path, opts...)
	}
	cfg := config.NewConfig(opts...)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
