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

// Report accumulates the result of a processing run. It is filled in by a
// single goroutine after every folder has been evaluated.
type Report struct {
	// RunID identifies the run in logs and metrics.
	RunID string `json:"runId" yaml:"runId"`

	// Base is the directory that was scanned.
	Base string `json:"base" yaml:"base"`

	// DryRun is true when no changes were written.
	DryRun bool `json:"dryRun" yaml:"dryRun"`

	// Scanned lists every package folder examined, sorted by name.
	Scanned []string `json:"scanned" yaml:"scanned"`

	// Processed lists the folders whose variants were created, or would
	// have been in a dry run. A processed folder can still fail later.
	Processed []string `json:"processed" yaml:"processed"`

	// Failures maps a folder to its first failure.
	Failures map[string]Category `json:"failures,omitempty" yaml:"failures,omitempty"`

	// Categories lists the failed folders of each category in scan order.
	Categories map[Category][]string `json:"categories,omitempty" yaml:"categories,omitempty"`

	// Moves lists the relocations of failed folders, performed or planned.
	Moves []Move `json:"moves,omitempty" yaml:"moves,omitempty"`

	// Notes holds informational messages per folder.
	Notes []Note `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// Move describes the relocation of one failed folder.
type Move struct {
	Name        string   `json:"name" yaml:"name"`
	Category    Category `json:"category" yaml:"category"`
	Destination string   `json:"destination" yaml:"destination"`
	Planned     bool     `json:"planned,omitempty" yaml:"planned,omitempty"`
	Error       string   `json:"error,omitempty" yaml:"error,omitempty"`
}

// Note is an informational message about a folder.
type Note struct {
	Name    string `json:"name" yaml:"name"`
	Message string `json:"message" yaml:"message"`
}

// CategoryCount is the number of folders that failed with a category.
type CategoryCount struct {
	Category Category `json:"category" yaml:"category"`
	Count    int      `json:"count" yaml:"count"`
}

// NewReport returns an empty report.
func NewReport(runID, base string, dryRun bool) *Report {
	return &Report{
		RunID:      runID,
		Base:       base,
		DryRun:     dryRun,
		Scanned:    []string{},
		Processed:  []string{},
		Failures:   make(map[string]Category),
		Categories: make(map[Category][]string),
	}
}

// Mark records a failure for name. Only the first failure of a folder is
// kept; Mark returns false when one was already recorded.
func (r *Report) Mark(name string, c Category) bool {
	if _, ok := r.Failures[name]; ok {
		return false
	}
	r.Failures[name] = c
	r.Categories[c] = append(r.Categories[c], name)
	return true
}

// AddNote appends an informational message for name.
func (r *Report) AddNote(name, message string) {
	r.Notes = append(r.Notes, Note{Name: name, Message: message})
}

// Category returns the recorded failure of name.
func (r *Report) Category(name string) (Category, bool) {
	c, ok := r.Failures[name]
	return c, ok
}

// Failed returns the failed folders grouped by category in reporting order.
func (r *Report) Failed() []string {
	out := make([]string, 0, len(r.Failures))
	for _, c := range categories {
		out = append(out, r.Categories[c]...)
	}
	return out
}

// Counts returns the number of failed folders per category, in reporting
// order, omitting empty categories.
func (r *Report) Counts() []CategoryCount {
	var out []CategoryCount
	for _, c := range categories {
		if n := len(r.Categories[c]); n > 0 {
			out = append(out, CategoryCount{Category: c, Count: n})
		}
	}
	return out
}

// Succeeded returns the number of scanned folders without a failure.
func (r *Report) Succeeded() int {
	return len(r.Scanned) - len(r.Failures)
}
