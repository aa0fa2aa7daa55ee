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

package clang

import "time"

// Result is what Run returns: either a successful run (Err is nil, Output
// and Warnings are meaningful) or a failed one (Err is non-nil, Output and
// Warnings are zero values). Go has no tagged-union type, so this mirrors
// this package's own (value, error) convention — see parse.go's Parse —
// generalized to a named struct because Result also carries a Duration
// that belongs to both outcomes.
type Result struct {
	Output   string
	Warnings []string
	Duration time.Duration
	Err      *Error
}

// OK reports whether the run succeeded.
func (r Result) OK() bool { return r.Err == nil }

// RunString runs source with default Options. It is the zero-configuration
// form external collaborators (editor, notes app) call.
func RunString(source string) Result {
	return Run(source, Options{})
}

// Run composes the four-stage pipeline: preprocess, lex+parse, execute.
// It performs no mutation of source. Any stage's failure aborts the pipeline
// immediately and is returned as Result.Err; Run never panics across
// this boundary for a well-formed *Error failure.
func Run(source string, opts Options) Result {
	start := time.Now()

	sanitized := preprocess(source)

	body, parseWarnings, err := Parse(sanitized)
	if err != nil {
		return Result{Err: asError(err), Duration: time.Since(start)}
	}

	output, runWarnings, err := Execute(body, opts)
	if err != nil {
		return Result{Err: asError(err), Duration: time.Since(start)}
	}

	warnings := make([]string, 0, len(parseWarnings)+len(runWarnings))
	warnings = append(warnings, parseWarnings...)
	warnings = append(warnings, runWarnings...)

	return Result{
		Output:   output,
		Warnings: warnings,
		Duration: time.Since(start),
	}
}

// asError converts any error returned by Parse/Execute into an *Error.
// Every error this package's own stages produce already is one; the
// fallback exists so an unexpected stdlib error never panics the driver.
func asError(err error) *Error {
	if e, ok := err.(*Error); ok {
		return e
	}
	return internalErrorf("%v", err)
}
