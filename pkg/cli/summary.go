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
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/NVIDIA/safevul/pkg/processor"
)

// counts are grouped by thousands since runs can cover large trees.
var countPrinter = message.NewPrinter(language.English)

func formatCount(n int) string {
	return countPrinter.Sprintf("%d", n)
}

// printSummary renders the failure counts of a run as a table.
func printSummary(w io.Writer, r *processor.Report) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)

	title := fmt.Sprintf("Run %s", r.RunID)
	if r.DryRun {
		title += " (dry run)"
	}
	tw.SetTitle(title)
	tw.AppendHeader(table.Row{"Category", "Folders", "Description"})

	for _, cc := range r.Counts() {
		tw.AppendRow(table.Row{cc.Category, formatCount(cc.Count), cc.Category.Description()})
	}
	if len(r.Failures) > 0 {
		tw.AppendSeparator()
	}
	tw.AppendRow(table.Row{"Succeeded", formatCount(r.Succeeded()), "variants created and kept in place"})
	tw.AppendFooter(table.Row{"Scanned", formatCount(len(r.Scanned)), ""})
	tw.Render()

	if len(r.Moves) == 0 {
		return
	}

	mw := table.NewWriter()
	mw.SetOutputMirror(w)
	mw.SetStyle(table.StyleLight)
	mw.AppendHeader(table.Row{"Folder", "Destination", "Status"})
	for _, m := range r.Moves {
		status := "moved"
		switch {
		case m.Error != "":
			status = "error: " + m.Error
		case m.Planned:
			status = "planned"
		}
		mw.AppendRow(table.Row{m.Name, m.Destination, status})
	}
	mw.Render()
}
