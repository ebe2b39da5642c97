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

// Package api exposes the version parser and comparator over HTTP.
//
// It is a thin layer over pkg/server: it sets up logging, builds the
// handlers and hands them to the server, which owns middleware, probes,
// metrics and graceful shutdown.
//
// # Endpoints
//
// Application endpoints (rate limited):
//   - GET /v1/compare?a=1.2.3&b=1.3.0[&loose=true] - order two versions
//   - GET /v1/parse?version=1.2.3-rc.1[&loose=true] - parse one version
//   - POST /v1/sort - order a list of versions
//
// System endpoints:
//   - GET /health, GET /ready, GET /metrics
//
// With loose=true the first version-shaped token of each input is used, so
// "^1.2.3" is read as 1.2.3.
//
// # Sort body
//
// JSON by default, YAML when Content-Type is application/yaml:
//
//	versions: ["1.0.0", "1.0.0-rc.1", "bogus"]
//	descending: false
//
// Inputs that do not parse are returned under "rejected" instead of failing
// the request.
//
// Example:
//
//	curl -X POST http://localhost:8080/v1/sort \
//	  -H "Content-Type: application/json" \
//	  -d '{"versions": ["1.0.0", "1.0.0-rc.1"]}'
//
// # Configuration
//
//   - PORT: HTTP server port (default 8080)
//   - SHUTDOWN_TIMEOUT_SECONDS: graceful shutdown window
//   - LOG_LEVEL: debug, info, warn or error
package api
