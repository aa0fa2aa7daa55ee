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
	"sort"
	"time"

	"github.com/pencilapp/cscratch/pkg/clang"
)

// timingRepeat is set by main from --repeat before dispatching to a
// formatter; only the "timing" format reads it.
var timingRepeat = 1

func init() {
	register(&formatter{
		name: "timing",
		help: "run the program --repeat times, print min/median/max duration",
		f:    doTiming,
	})
}

func doTiming(w *os.File, source string) int {
	n := timingRepeat
	if n < 1 {
		n = 1
	}
	durations := make([]time.Duration, 0, n)
	for i := 0; i < n; i++ {
		res := clang.RunString(source)
		if !res.OK() {
			fmt.Fprintln(os.Stderr, res.Err)
			return 1
		}
		durations = append(durations, res.Duration)
	}
	sort.Slice(durations, func(i, j int) bool { return durations[i] < durations[j] })

	min := durations[0]
	max := durations[len(durations)-1]
	median := durations[len(durations)/2]
	fmt.Fprintf(w, "runs=%d min=%s median=%s max=%s\n", n, min, median, max)
	return 0
}
