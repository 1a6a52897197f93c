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

package template

import (
	htmltemplate "html/template"
	"text/template"
)

var page = template.Must(template.New("page").Parse("{{.Title}}")) // want "text/template.Template parsed without"

func parse() {
	_, _ = template.New("a").Parse("{{.A}}") // want "text/template.Template parsed without"

	_, _ = template.New("b").Option("missingkey=zero").Parse("{{.B}}")

	_, _ = htmltemplate.New("c").Funcs(nil).Parse("{{.C}}") // want "html/template.Template parsed without"

	t := template.New("d")
	_, _ = t.Parse("{{.D}}") // want "text/template.Template parsed without"

	_, _ = (template.New("e").Option("missingkey=default")).Parse("{{.E}}")
}
