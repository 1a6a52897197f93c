// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

// Package analyzer implements the callguard static analysis pass.
//
// # Overview
//
// CallGuard reports calls that match a rule's signature pattern, optionally only when
// no earlier link of the call chain already handles the concern, and suggests fixes.
//
// # Example
//
// Before:
//
//	c := make(chan os.Signal, 1)
//	signal.Notify(c) // relays every signal, including SIGURG
//
// After applying callguard's suggested fix:
//
//	c := make(chan os.Signal, 1)
//	signal.Notify(c, os.Interrupt)
//
// # Rules
//
//   - SignalNotifyAll: signal.Notify without signals
//   - TemplateMissingKey: text/template or html/template parsed without a missingkey option (-go-template)
//
// Additional rules are loaded from YAML files with -rules; -disable switches rules off by ID.
// Diagnostics carry the rule ID as category and as "(cg:ID)" message suffix.
package analyzer
