// Copyright 2017 Google Inc.
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

// Options controls how Run executes a program, including two bounding
// knobs that are both optional: neither is required for a program to
// run, and both are off (unbounded) by their zero values so existing
// callers see no behavior change.
type Options struct {
	// MaxSteps bounds the number of statement executions and expression
	// evaluations the interpreter will perform before it gives up with a
	// Runtime error. Zero means unbounded. Intended for hostile or
	// accidentally-infinite programs.
	MaxSteps int

	// Deadline bounds wall-clock execution time the same way MaxSteps
	// bounds step count; the interpreter checks it at the same points.
	// Zero means unbounded.
	Deadline time.Duration
}
