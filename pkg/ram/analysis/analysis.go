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
// Package analysis implements the three pure, cacheable analyses a
// TranslationUnit exposes over the current RAM program: condition-level,
// expression-level and const-value. Each is a simple recursive function
// of the tree, deriving its result with a single top-down walk.
package analysis

// FreeLevel is the level reported for a condition or expression that
// depends on no tuple binding at all.
const FreeLevel = -1
