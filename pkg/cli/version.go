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

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/safevul/pkg/api"
	"github.com/NVIDIA/safevul/pkg/errors"
	"github.com/NVIDIA/safevul/pkg/version"
)

func compareCmd() *cli.Command {
	return &cli.Command{
		Name:      "compare",
		Usage:     "Compare two semantic versions",
		ArgsUsage: "A B",
		Description: `Print "less", "equal" or "greater" for the precedence of A relative to B.
Build metadata is ignored. Prerelease identifiers made of digits compare
numerically and rank below alphanumeric ones.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "loose",
				Usage: "Use the first version-shaped token of each argument (e.g. ^1.2.3)",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 2 {
				return errors.NewWithContext(errors.ErrCodeInvalidRequest,
					"compare requires exactly two versions", map[string]any{"args": cmd.Args().Slice()})
			}

			a, err := api.ParseVersion(cmd.Args().Get(0), cmd.Bool("loose"))
			if err != nil {
				return err
			}
			b, err := api.ParseVersion(cmd.Args().Get(1), cmd.Bool("loose"))
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.Root().Writer, version.Compare(a, b))
			return err
		},
	}
}

func parseCmd() *cli.Command {
	return &cli.Command{
		Name:      "parse",
		Usage:     "Parse a semantic version and print its components",
		ArgsUsage: "VERSION",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "loose",
				Usage: "Use the first version-shaped token of the argument",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 1 {
				return errors.NewWithContext(errors.ErrCodeInvalidRequest,
					"parse requires exactly one version", map[string]any{"args": cmd.Args().Slice()})
			}

			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			v, err := api.ParseVersion(cmd.Args().First(), cmd.Bool("loose"))
			if err != nil {
				return err
			}

			w := newOutputWriter(cmd, outFormat)
			defer w.Close()
			return w.Serialize(ctx, api.NewVersionInfo(v))
		},
	}
}
