// Copyright 2015 Google Inc.
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

package main

import (
	"fmt"
	"os"

	"github.com/pencilapp/cscratch/pkg/clang"
)

func init() {
	register(&formatter{
		name: "tokens",
		help: "lex only, print one line per token (for editor/highlighter use)",
		f:    doTokens,
	})
}

func doTokens(w *os.File, source string) int {
	toks, err := clang.Tokens(source)
	for _, t := range toks {
		fmt.Fprintf(w, "%4d: %-10s %q\n", t.Line, t.Kind, t.Text)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
