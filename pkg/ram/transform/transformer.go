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

import log "github.com/sirupsen/logrus"

// Transformer is a single named pass over a TranslationUnit. Transform
// mutates the unit's program in place and returns whether it changed
// anything; this bool is a fixpoint/scheduling signal, never an error —
// every legal input yields a legal output.
type Transformer interface {
	// Name returns a stable, human-readable label for logging and debug
	// snapshots.
	Name() string
	// Transform applies the pass to unit's current program.
	Transform(unit *TranslationUnit) bool
}

// Pipeline applies a fixed, ordered sequence of transformers to a
// TranslationUnit exactly once each, in order: a later pass observes
// every effect of an earlier one and none of a later one.
type Pipeline struct {
	passes []Transformer
}

// NewPipeline constructs a pipeline that will run passes, in order, when
// Run is called.
func NewPipeline(passes ...Transformer) *Pipeline {
	return &Pipeline{passes: passes}
}

// DefaultPipeline returns the pass manager configured with the fixed
// ordering: HoistConditions -> MakeIndex -> IfConversion ->
// ChoiceConversion. Each later pass depends on the normal form the
// earlier one produces.
func DefaultPipeline() *Pipeline {
	return NewPipeline(
		&HoistConditionsTransformer{},
		&MakeIndexTransformer{},
		&IfConversionTransformer{},
		&ChoiceConversionTransformer{},
	)
}

// Run applies every pass in order against unit, clearing unit's analysis
// cache after any pass that reports a change — the simplest sound
// policy, rather than tracking which results a given pass invalidated.
// It returns whether any pass changed the program.
func (p *Pipeline) Run(unit *TranslationUnit) bool {
	changed := false

	for _, pass := range p.passes {
		log.Debugf("ram: running pass %q", pass.Name())

		if pass.Transform(unit) {
			changed = true

			unit.InvalidateAnalyses()
			log.Debugf("ram: pass %q changed the program", pass.Name())
		}
	}

	return changed
}
