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

// Package match provides predicates over [syntax.CallSite]s.
//
// A [Method] matcher checks the callee's owner type, name and parameter types:
//
//	match.OnClass("java.util.concurrent.CompletableFuture").Named("runAsync").WithParameters("java.lang.Runnable")
//	match.OnDescendantOf("io.vavr.control.Try").Named("getOrNull")
//
// # Unresolved callees
//
// When the host could not resolve a callee, matching falls back to the syntax:
// the method name is compared with the spelling stripped of its qualifier, an owner
// spelled as a type is compared by simple name, an owner of unknown type is accepted,
// and a parameter constraint only checks the number of arguments.
//
// This never misses an unsafe call because of failed resolution, at the price of
// possible false positives for same-named methods of unrelated types. Rules whose
// method names are common should add further constraints, e.g. [Arity].
package match
