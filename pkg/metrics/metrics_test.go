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
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/safevul/pkg/errors"
	"github.com/NVIDIA/safevul/pkg/processor"
)

func sampleReport(dryRun bool) *processor.Report {
	r := processor.NewReport("run", "/base", dryRun)
	r.Scanned = []string{"a", "b", "c", "d"}
	r.Processed = []string{"a", "b"}
	r.Mark("b", processor.CategoryMismatchedDeps)
	r.Mark("c", processor.CategorySameVersion)
	r.Mark("d", processor.CategorySameVersion)
	r.Moves = []processor.Move{
		{Name: "b", Category: processor.CategoryMismatchedDeps, Planned: dryRun},
		{Name: "c", Category: processor.CategorySameVersion, Planned: dryRun},
		{Name: "d", Category: processor.CategorySameVersion, Planned: dryRun, Error: "busy"},
	}
	return r
}

func TestObserve(t *testing.T) {
	rec := NewRecorder()
	rec.Observe(sampleReport(false), 2*time.Second)

	assert.InDelta(t, 4, testutil.ToFloat64(rec.foldersScanned), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(rec.foldersProcessed), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(rec.folderFailures.WithLabelValues("MismatchedDeps")), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(rec.folderFailures.WithLabelValues("SameVersion")), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(rec.folderFailures.WithLabelValues("CopyError")), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(rec.foldersMoved), 0)
	assert.Positive(t, testutil.ToFloat64(rec.lastRun))

	// every category is exported even without failures
	assert.Equal(t, len(processor.Categories()), testutil.CollectAndCount(rec.folderFailures))
}

func TestObserveDryRunDoesNotCountMoves(t *testing.T) {
	rec := NewRecorder()
	rec.Observe(sampleReport(true), time.Second)
	assert.InDelta(t, 0, testutil.ToFloat64(rec.foldersMoved), 0)
}

func TestObserveNil(t *testing.T) {
	rec := NewRecorder()
	rec.Observe(nil, time.Second)
	assert.InDelta(t, 0, testutil.ToFloat64(rec.foldersScanned), 0)
}

func TestWriteTextfile(t *testing.T) {
	rec := NewRecorder()
	rec.Observe(sampleReport(false), 1500*time.Millisecond)

	path := filepath.Join(t.TempDir(), "safevul.prom")
	require.NoError(t, rec.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	for _, name := range []string{
		"safevul_folders_scanned_total 4",
		"safevul_folders_processed_total 2",
		`safevul_folder_failures_total{category="SameVersion"} 2`,
		"safevul_folders_moved_total 2",
		"safevul_run_duration_seconds_count 1",
	} {
		assert.True(t, strings.Contains(out, name), "missing %q in:\n%s", name, out)
	}
}

func TestWriteTextfileError(t *testing.T) {
	rec := NewRecorder()
	err := rec.WriteTextfile(filepath.Join(t.TempDir(), "absent", "safevul.prom"))
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeIO, errors.CodeOf(err))
}
