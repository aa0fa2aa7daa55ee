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

// Program cscratch runs a small subset of C and reports its output.
//
// Usage: cscratch [--format FORMAT] [--path FILE] [FORMAT OPTIONS]
//
// If --path names a file it is read as the source program; otherwise
// standard input is read. FORMAT, which defaults to "run", selects what is
// printed. Use "cscratch --help" for the list of available formats.
//
// THIS PROGRAM IS A LOCAL DEVELOPMENT AND GRADING-SCRIPT TOOL; the real
// consumer of package clang is the notes app's embedded code runner.
package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"sort"
	"strings"

	"github.com/pborman/getopt"

	"github.com/pencilapp/cscratch/pkg/indent"
)

// a formatter renders a run's result (or just its source, for formats that
// don't need a full run) to w. Each format self-registers via init() in
// its own file.
type formatter struct {
	name string
	help string
	f    func(w *os.File, source string) int // returns a process exit code
}

var formatters = map[string]*formatter{}

func register(f *formatter) {
	formatters[f.name] = f
}

var stop = os.Exit

func main() {
	var format, path, diff string
	var repeat int
	var help bool

	formats := make([]string, 0, len(formatters))
	for k := range formatters {
		formats = append(formats, k)
	}
	sort.Strings(formats)

	getopt.StringVarLong(&format, "format", 'f', "format to produce: "+strings.Join(formats, ", "), "FORMAT")
	getopt.StringVarLong(&path, "path", 'p', "source file to run; stdin if omitted", "FILE")
	getopt.IntVarLong(&repeat, "repeat", 'n', "number of times to run, for the timing format")
	getopt.StringVarLong(&diff, "diff", 'd', "golden pretty-printed tree to compare against, for the ast format", "FILE")
	getopt.BoolVarLong(&help, "help", 'h', "display help")
	getopt.SetParameters("")

	if err := getopt.Getopt(func(getopt.Option) bool { return true }); err != nil {
		fmt.Fprintln(os.Stderr, err)
		getopt.PrintUsage(os.Stderr)
		stop(1)
	}

	if help {
		getopt.CommandLine.PrintUsage(os.Stderr)
		fmt.Fprintf(os.Stderr, "\nFormats:\n")
		for _, fn := range formats {
			fmt.Fprintf(os.Stderr, "    %s - %s\n", fn, formatters[fn].help)
		}
		stop(0)
	}

	if format == "" {
		format = "run"
	}
	f, ok := formatters[format]
	if !ok {
		fmt.Fprintf(os.Stderr, "%s: invalid format. Choices are %s\n", format, strings.Join(formats, ", "))
		stop(1)
	}

	source, err := readSource(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop(1)
	}

	if repeat < 1 {
		repeat = 1
	}
	timingRepeat = repeat
	astDiffFile = diff

	stop(f.f(os.Stdout, source))
}

// readSource reads the program text from path, or from stdin if path is
// empty or "-".
func readSource(path string) (string, error) {
	if path == "" || path == "-" {
		data, err := ioutil.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := ioutil.ReadFile(path)
	return string(data), err
}

// printIndented writes s to w with prefix in front of every line, using
// pkg/indent rather than manual string surgery.
func printIndented(w *os.File, prefix, s string) {
	iw := indent.NewWriter(w, prefix)
	iw.Write([]byte(s))
}

// printWarnings writes a "warnings:" block to stderr with each warning
// indented under it, shared by every formatter that surfaces warnings
// alongside its main output.
func printWarnings(warnings []string) {
	if len(warnings) == 0 {
		return
	}
	fmt.Fprintln(os.Stderr, "warnings:")
	printIndented(os.Stderr, "  ", strings.Join(warnings, "\n")+"\n")
}
