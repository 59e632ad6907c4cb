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
package debug

import "fmt"

// AnsiEscape builds an ANSI terminal escape sequence fluently, for
// highlighting the lines of a before/after snapshot diff.
type AnsiEscape struct {
	escape string
	count  uint
}

// NewAnsiEscape constructs an empty escape to build upon.
func NewAnsiEscape() AnsiEscape { return AnsiEscape{"\033", 0} }

// ResetAnsiEscape constructs a reset escape.
func ResetAnsiEscape() AnsiEscape { return AnsiEscape{"\033[0", 1} }

// BoldAnsiEscape constructs a bold escape.
func BoldAnsiEscape() AnsiEscape { return AnsiEscape{"\033[1", 1} }

// UnderlineAnsiEscape constructs an underline escape.
func UnderlineAnsiEscape() AnsiEscape { return AnsiEscape{"\033[4", 1} }

// FgColour sets the foreground colour (0-7, standard ANSI palette). It
// composes with an already-built escape, so e.g.
// BoldAnsiEscape().FgColour(ColourYellow) produces a single bold+yellow
// sequence rather than two separate ones.
func (p AnsiEscape) FgColour(col uint) AnsiEscape {
	col += 30

	var escape string
	if p.count > 0 {
		escape = fmt.Sprintf("%s;%d", p.escape, col)
	} else {
		escape = fmt.Sprintf("%s[%d", p.escape, col)
	}

	return AnsiEscape{escape, p.count + 1}
}

// Build constructs the final escape sequence.
func (p AnsiEscape) Build() string {
	return fmt.Sprintf("%sm", p.escape)
}

// Colour indices used by the report highlighter: removed lines, added
// lines, and the pass-name banner.
const (
	ColourRed    = uint(1)
	ColourGreen  = uint(2)
	ColourYellow = uint(3)
)
