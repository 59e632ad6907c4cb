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
package transform

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/uxhg/souffle/pkg/ram/sexp"
)

// Severity classifies a Diagnostic. The RAM pipeline has no source
// positions of its own, so a Diagnostic carries an offending node dump
// instead of a file/line reference.
type Severity string

// Diagnostic severities. The RAM pipeline only ever raises Error (an
// invariant violation) or Info (pass tracing); Warning is reserved for
// conditions this module does not currently detect but that a richer
// implementation might (e.g. a pass that fires on every call,
// suggesting a missed fixpoint).
const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Diagnostic is a single structured record accumulated by a
// TranslationUnit's Diagnostics sink.
type Diagnostic struct {
	Severity Severity
	Message  string
	Node     *sexp.Node
}

// String renders the diagnostic for display.
func (d Diagnostic) String() string {
	if d.Node == nil {
		return fmt.Sprintf("[%s] %s", d.Severity, d.Message)
	}

	return fmt.Sprintf("[%s] %s\n%s", d.Severity, d.Message, d.Node.String())
}

// Diagnostics accumulates Diagnostic records and mirrors each one
// through the process logger.
type Diagnostics struct {
	records []Diagnostic
}

// NewDiagnostics constructs an empty sink.
func NewDiagnostics() *Diagnostics {
	return &Diagnostics{}
}

// Records returns every diagnostic accumulated so far, oldest first.
func (d *Diagnostics) Records() []Diagnostic {
	return d.records
}

// report appends a record and emits it through logrus at the level that
// matches its severity.
func (d *Diagnostics) report(diag Diagnostic) {
	d.records = append(d.records, diag)

	switch diag.Severity {
	case SeverityError:
		log.Error(diag.String())
	case SeverityWarning:
		log.Warn(diag.String())
	default:
		log.Debug(diag.String())
	}
}

// Errorf records and logs an internal-consistency-violation diagnostic.
func (d *Diagnostics) Errorf(node *sexp.Node, format string, args ...any) {
	d.report(Diagnostic{Severity: SeverityError, Message: fmt.Sprintf(format, args...), Node: node})
}

// Infof records and logs an informational diagnostic (pass tracing).
func (d *Diagnostics) Infof(format string, args ...any) {
	d.report(Diagnostic{Severity: SeverityInfo, Message: fmt.Sprintf(format, args...)})
}
