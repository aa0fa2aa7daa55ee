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
		name: "run",
		help: "run the program and print its output, then its warnings",
		f:    doRun,
	})
}

func doRun(w *os.File, source string) int {
	res := clang.RunString(source)

	if !res.OK() {
		fmt.Fprintln(os.Stderr, res.Err)
		return 1
	}

	fmt.Fprint(w, res.Output)
	printWarnings(res.Warnings)
	return 0
}
