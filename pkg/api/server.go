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
	"context"
	stderrors "errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/NVIDIA/safevul/pkg/errors"
	"github.com/NVIDIA/safevul/pkg/logging"
	"github.com/NVIDIA/safevul/pkg/server"
)

const (
	name           = "safevuld"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	// e.g., -X "github.com/NVIDIA/safevul/pkg/api.buildVersion=1.0.0"
	buildVersion = versionDefault
	commit       = "unknown"
	date         = "unknown"
)

// Serve starts the version API and blocks until ctx is canceled or the
// process is signaled.
func Serve(ctx context.Context) error {
	logging.SetDefaultStructuredLogger(name, buildVersion)
	slog.Info("starting",
		"name", name,
		"version", buildVersion,
		"commit", commit,
		"date", date,
	)

	cfg := server.NewConfig()
	h := NewHandler(cfg.MaxBulkVersions)

	s := server.New(
		server.WithConfig(cfg),
		server.WithName(name),
		server.WithVersion(buildVersion),
		server.WithHandler(h.Routes()),
	)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}
	return nil
}

func readBody(r *http.Request) ([]byte, error) {
	if r.Body == nil {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "request body is required")
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			return nil, errors.NewWithContext(errors.ErrCodeInvalidRequest,
				"request body too large", map[string]any{"limit": tooLarge.Limit})
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidRequest, "failed to read request body", err)
	}
	return body, nil
}
