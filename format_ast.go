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
	"io/ioutil"
	"os"

	"github.com/kylelemons/godebug/pretty"

	"github.com/pencilapp/cscratch/pkg/clang"
)

// astDiffFile is set by main from --diff; only the "ast" format reads it.
var astDiffFile string

func init() {
	register(&formatter{
		name: "ast",
		help: "parse only, pretty-print the statement tree rooted at main (or --diff FILE against a golden one)",
		f:    doAST,
	})
}

func doAST(w *os.File, source string) int {
	stmts, warnings, err := clang.Parse(clang.Preprocess(source))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	got := pretty.Sprint(stmts)

	if astDiffFile != "" {
		want, err := ioutil.ReadFile(astDiffFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		if diff := pretty.Compare(got, string(want)); diff != "" {
			fmt.Fprintln(os.Stderr, "ast does not match golden file, diff(-got,+want):")
			printIndented(os.Stderr, "  ", diff+"\n")
			return 1
		}
		fmt.Fprintln(w, "ast matches golden file")
		printWarnings(warnings)
		return 0
	}

	fmt.Fprintln(w, got)
	printWarnings(warnings)
	return 0
}
