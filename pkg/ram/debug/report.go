// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package debug implements an optional pass-tracing facility: a
// Transformer decorator that snapshots a program before and after a
// wrapped pass runs, and prints a highlighted before/after report when
// the pass actually changed something. Terminal presentation is reduced
// here to a plain stream of lines rather than a full interactive widget
// canvas.
package debug

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/uxhg/souffle/pkg/ram/transform"
)

// ReportTransformer wraps another transform.Transformer, printing a
// before/after s-expression snapshot to Out whenever the wrapped pass
// reports a change.
type ReportTransformer struct {
	Inner transform.Transformer
	Out   io.Writer
}

// NewReportTransformer decorates inner, writing reports to os.Stderr.
func NewReportTransformer(inner transform.Transformer) *ReportTransformer {
	return &ReportTransformer{Inner: inner, Out: os.Stderr}
}

// Name delegates to the wrapped pass.
func (r *ReportTransformer) Name() string { return r.Inner.Name() }

// Transform runs the wrapped pass and, if it changed the program, prints
// a before/after report.
func (r *ReportTransformer) Transform(unit *transform.TranslationUnit) bool {
	before := unit.Program().Lisp().String()

	changed := r.Inner.Transform(unit)

	if changed {
		after := unit.Program().Lisp().String()
		r.printReport(before, after)
	}

	return changed
}

func (r *ReportTransformer) printReport(before, after string) {
	out := r.Out
	if out == nil {
		out = os.Stderr
	}

	width := terminalWidth()
	rule := strings.Repeat("-", width)
	reset := ResetAnsiEscape().Build()

	header := BoldAnsiEscape().FgColour(ColourYellow).Build() + UnderlineAnsiEscape().Build() + r.Name() + reset

	fmt.Fprintln(out, header)
	fmt.Fprintln(out, rule)

	for _, line := range diffLines(before, after) {
		switch line.kind {
		case lineRemoved:
			fmt.Fprintln(out, FgColour(ColourRed)+"- "+line.text+reset)
		case lineAdded:
			fmt.Fprintln(out, FgColour(ColourGreen)+"+ "+line.text+reset)
		default:
			fmt.Fprintln(out, "  "+line.text)
		}
	}

	fmt.Fprintln(out, rule)
}

// FgColour is a convenience wrapper building a standalone foreground
// colour escape sequence.
func FgColour(col uint) string {
	return NewAnsiEscape().FgColour(col).Build()
}

type diffKind int

const (
	lineUnchanged diffKind = iota
	lineRemoved
	lineAdded
)

type diffLine struct {
	kind diffKind
	text string
}

// diffLines produces a minimal line-level diff between before and
// after: lines present in both (at any position) print unadorned,
// lines only present in before print as removed, lines only present in
// after print as added. Line count in the s-expression dump of a RAM
// program is small enough that a multiset comparison, rather than a
// full LCS alignment, is all a pass-tracing report needs.
func diffLines(before, after string) []diffLine {
	beforeLines := strings.Split(strings.TrimRight(before, "\n"), "\n")
	afterLines := strings.Split(strings.TrimRight(after, "\n"), "\n")

	afterCount := make(map[string]int, len(afterLines))
	for _, l := range afterLines {
		afterCount[l]++
	}

	beforeCount := make(map[string]int, len(beforeLines))
	for _, l := range beforeLines {
		beforeCount[l]++
	}

	var diff []diffLine

	consumed := make(map[string]int, len(afterLines))
	for _, l := range beforeLines {
		if consumed[l] < afterCount[l] {
			diff = append(diff, diffLine{kind: lineUnchanged, text: l})
			consumed[l]++
		} else {
			diff = append(diff, diffLine{kind: lineRemoved, text: l})
		}
	}

	consumed = make(map[string]int, len(beforeLines))
	for _, l := range afterLines {
		if consumed[l] < beforeCount[l] {
			consumed[l]++
			continue
		}

		diff = append(diff, diffLine{kind: lineAdded, text: l})
	}

	return diff
}

// terminalWidth probes the width of the controlling terminal, falling
// back to a conservative default when stdout is not a terminal (e.g.
// piped output, CI logs).
func terminalWidth() int {
	fd := int(os.Stdout.Fd())

	if w, _, err := term.GetSize(fd); err == nil && w > 0 {
		return w
	}

	return 80
}
