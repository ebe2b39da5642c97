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

// Package metrics exports processing run statistics in the Prometheus format.
//
// The CLI is short lived, so metrics are not served over HTTP. Instead a
// Recorder collects the statistics of a run into its own registry and writes
// them to a file in the node-exporter textfile collector format:
//
//	rec := metrics.NewRecorder()
//	rec.Observe(report, time.Since(start))
//	if err := rec.WriteTextfile("/var/lib/node_exporter/safevul.prom"); err != nil {
//		return err
//	}
package metrics
