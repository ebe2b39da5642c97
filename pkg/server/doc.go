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

// Package server hosts the safevul version API over HTTP.
//
// The server itself knows nothing about versions. Callers register handlers
// by path with WithHandler, and each one runs behind a middleware chain:
//
//   - Prometheus request metrics (safevul_http_*), labelled by route
//   - API version negotiation via application/vnd.nvidia.safevul.v1+json
//   - Request ID tracking through X-Request-Id
//   - Panic recovery
//   - Token bucket rate limiting (golang.org/x/time/rate)
//   - Request body size limits
//   - Debug request logging
//
// GET /health, GET /ready and GET /metrics are served outside the chain so
// probes and scrapes are never rate limited.
//
// # Usage
//
//	s := server.New(
//		server.WithName("safevuld"),
//		server.WithVersion(version),
//		server.WithHandler(map[string]http.HandlerFunc{
//			"/v1/compare": api.HandleCompare,
//		}),
//	)
//	if err := s.Run(ctx); err != nil {
//		return err
//	}
//
// Errors are reported as ErrorResponse bodies. WriteErrorFromErr maps a
// pkg/errors StructuredError code to the HTTP status.
//
// # Environment
//
//   - PORT: listen port (default 8080)
//   - SHUTDOWN_TIMEOUT_SECONDS: graceful shutdown window (default 30)
package server
