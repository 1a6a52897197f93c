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

package rules

import (
	"os"
	"strings"
	"time"
)

func wait() {
	time.Sleep(time.Second) // want "time.Sleep blocks the goroutine \\(cg:NoSleep\\)"
}

func closeFile() error {
	f, err := os.Open("rules.yaml")
	if err != nil {
		return err
	}

	return f.Close() // want "Close on a closer"
}

func notACloser() {
	var b strings.Builder
	b.Reset()
}
