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

package catalog

import (
	"fillmore-labs.com/callguard/internal/chain"
	"fillmore-labs.com/callguard/internal/fix"
	"fillmore-labs.com/callguard/internal/match"
	"fillmore-labs.com/callguard/internal/rule"
)

// Java rule IDs.
const (
	MissingExecutorID = "CompletableFutureMissingExecutor"
	TryGetOrNullID    = "VavrTryGetOrNullWithoutOnFailure"
)

const (
	completableFuture = "java.util.concurrent.CompletableFuture"
	vavrTry           = "io.vavr.control.Try"

	// DefaultExecutor is the executor expression appended by the missing executor fix.
	DefaultExecutor = "pools.getYourMoreIsolatedPool()"

	// DefaultExecutorImport is the import added by the missing executor fix.
	DefaultExecutorImport = "com.pear.availabilities.Pools"
)

// MissingExecutor reports CompletableFuture.runAsync and supplyAsync calls running on the common pool.
// The fix appends executor as the last argument and imports executorImport, if not empty.
func MissingExecutor(executor, executorImport string) rule.Rule {
	var imports []string
	if executorImport != "" {
		imports = []string{executorImport}
	}

	return rule.Rule{
		ID:       MissingExecutorID,
		Severity: rule.Error,
		Matcher: match.Or(
			match.OnClass(completableFuture).Named("runAsync").WithParameters("java.lang.Runnable"),
			match.OnClass(completableFuture).Named("supplyAsync").WithParameters("java.util.function.Supplier"),
		),
		Message: "Use the 2-arg overload with an explicit Executor.",
		Fix:     fix.AppendArgument{Text: executor, Imports: imports},
		Doc: "The 1-arg overloads of CompletableFuture.runAsync and supplyAsync use the global common ForkJoin pool, " +
			"which competes with other workloads globally. This can cause inconsistent behavior or even deadlock.",
	}
}

// TryFailureHandling is satisfied by any Try link that observes or handles the failure.
var TryFailureHandling = chain.MustPolicy("TryFailureHandling",
	[]string{"onFailure", "orElseRun", "recover", "recoverWith", "fold", "get", "getOrElseThrow", "failed"},
	[]string{"toEither"},
)

// TryGetOrNull reports Try.getOrNull calls whose chain never handles the failure.
func TryGetOrNull() rule.Rule {
	return rule.Rule{
		ID:       TryGetOrNullID,
		Severity: rule.Warning,
		Matcher:  match.OnDescendantOf(vavrTry).Named("getOrNull"),
		Policy:   TryFailureHandling,
		Message: "Calling Try.getOrNull() without onFailure(...) hides exceptions. " +
			"Prefer get()/getOrElseThrow() or handle via onFailure/orElseRun/recover/fold.",
		Doc: "Try.getOrNull() hides exceptions; call onFailure(...) or use get()/getOrElseThrow(...).",
	}
}

// Java returns the built-in Java rules with the default executor fix.
func Java() []rule.Rule {
	return []rule.Rule{
		MissingExecutor(DefaultExecutor, DefaultExecutorImport),
		TryGetOrNull(),
	}
}
