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

// Package executor declares the contract a RAM back end must satisfy to
// consume the optimized program this module produces. No back end ships
// here: code generation, compilation to a binary, and interpreted
// execution are intentionally left to callers. The interface exists so
// those callers can depend on a stable seam rather than reaching into
// pkg/ram/transform directly.
package executor

import "github.com/uxhg/souffle/pkg/ram/transform"

// Executor consumes an optimized TranslationUnit and runs it to
// completion, or fails trying. Every method is free to be a thin
// wrapper over an external toolchain; this package only fixes the
// shape of that handoff.
type Executor interface {
	// GenerateCode emits source code for the translation unit's program
	// in whatever target language/IR the back end understands.
	GenerateCode(unit *transform.TranslationUnit) ([]byte, error)
	// CompileToBinary turns previously generated source into an
	// executable artifact.
	CompileToBinary(source []byte) (binary []byte, err error)
	// Execute runs a compiled binary to completion.
	Execute(binary []byte) error
}
