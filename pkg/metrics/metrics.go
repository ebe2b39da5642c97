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

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/NVIDIA/safevul/pkg/defaults"
	"github.com/NVIDIA/safevul/pkg/errors"
	"github.com/NVIDIA/safevul/pkg/processor"
)

// Recorder holds the run metrics in a private registry.
type Recorder struct {
	registry *prometheus.Registry

	foldersScanned   prometheus.Counter
	foldersProcessed prometheus.Counter
	folderFailures   *prometheus.CounterVec
	foldersMoved     prometheus.Counter
	runDuration      prometheus.Histogram
	lastRun          prometheus.Gauge
}

// NewRecorder returns a Recorder with every metric registered. Failure
// counters start at zero for every category.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	r := &Recorder{
		registry: reg,
		foldersScanned: factory.NewCounter(prometheus.CounterOpts{
			Namespace: defaults.MetricsNamespace,
			Name:      "folders_scanned_total",
			Help:      "Total number of package folders examined",
		}),
		foldersProcessed: factory.NewCounter(prometheus.CounterOpts{
			Namespace: defaults.MetricsNamespace,
			Name:      "folders_processed_total",
			Help:      "Total number of package folders whose variants were created",
		}),
		folderFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: defaults.MetricsNamespace,
			Name:      "folder_failures_total",
			Help:      "Total number of failed package folders by category",
		}, []string{"category"}),
		foldersMoved: factory.NewCounter(prometheus.CounterOpts{
			Namespace: defaults.MetricsNamespace,
			Name:      "folders_moved_total",
			Help:      "Total number of failed package folders relocated",
		}),
		runDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: defaults.MetricsNamespace,
			Name:      "run_duration_seconds",
			Help:      "Time taken by a processing run",
			Buckets:   []float64{0.1, 0.5, 1, 5, 10, 30, 60, 300},
		}),
		lastRun: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: defaults.MetricsNamespace,
			Name:      "last_run_timestamp_seconds",
			Help:      "Unix time of the last completed processing run",
		}),
	}

	for _, c := range processor.Categories() {
		r.folderFailures.WithLabelValues(string(c))
	}
	return r
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Observe records the statistics of a completed run. Planned moves of a dry
// run and moves that failed are not counted as moved.
func (r *Recorder) Observe(report *processor.Report, duration time.Duration) {
	if report == nil {
		return
	}
	r.foldersScanned.Add(float64(len(report.Scanned)))
	r.foldersProcessed.Add(float64(len(report.Processed)))
	for _, cc := range report.Counts() {
		r.folderFailures.WithLabelValues(string(cc.Category)).Add(float64(cc.Count))
	}
	for _, m := range report.Moves {
		if !m.Planned && m.Error == "" {
			r.foldersMoved.Inc()
		}
	}
	r.runDuration.Observe(duration.Seconds())
	r.lastRun.SetToCurrentTime()
}

// WriteTextfile writes the current metrics to path atomically.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return errors.WrapWithContext(errors.ErrCodeIO, "failed to write metrics", err,
			map[string]any{"path": path})
	}
	return nil
}
