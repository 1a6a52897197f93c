// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

// Package syntax is the read-only tree model the rule engine works on.
//
// Host adapters (go/ast with go/types, tree-sitter) expose their trees through [Node].
// A node has a closed [Kind]; call nodes additionally describe their callee as a
// [Symbol], which is either [Resolved] or [Unresolved]. Consumers must handle both
// cases, typically through [MethodName] which falls back to the syntactic spelling.
package syntax
