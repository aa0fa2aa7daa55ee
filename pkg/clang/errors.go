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

import "fmt"

// Kind tags the stage and nature of a Failure.
type Kind int

const (
	// Syntax means the lexer or parser rejected the input.
	Syntax Kind = iota
	// Runtime means evaluation failed (division by zero, use before
	// declaration, and similar).
	Runtime
	// Unsupported means the construct was recognized but is deliberately
	// unimplemented (an operator other than ++, -- or an assignment after
	// a statement's leading identifier).
	Unsupported
	// Internal means an invariant inside this package was violated.
	Internal
)

func (k Kind) String() string {
	switch k {
	case Syntax:
		return "Syntax"
	case Runtime:
		return "Runtime"
	case Unsupported:
		return "Unsupported"
	case Internal:
		return "Internal"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Error is the tagged failure value the driver returns. Message never
// embeds the kind or line prefix; Error() assembles the user-visible
// string so callers that only log err.Error() still get
// "Syntax error on line 7: Expected ';'"-shaped text.
type Error struct {
	Kind    Kind
	Message string
	Line    int // 0 when HasLine is false
	HasLine bool
}

func (e *Error) Error() string {
	if e.HasLine {
		return fmt.Sprintf("%v error on line %d: %s", e.Kind, e.Line, e.Message)
	}
	return fmt.Sprintf("%v error: %s", e.Kind, e.Message)
}

func syntaxErrorf(line int, format string, v ...interface{}) *Error {
	return &Error{Kind: Syntax, Message: fmt.Sprintf(format, v...), Line: line, HasLine: true}
}

func runtimeErrorf(line int, format string, v ...interface{}) *Error {
	e := &Error{Kind: Runtime, Message: fmt.Sprintf(format, v...)}
	if line > 0 {
		e.Line = line
		e.HasLine = true
	}
	return e
}

func unsupportedErrorf(format string, v ...interface{}) *Error {
	return &Error{Kind: Unsupported, Message: fmt.Sprintf(format, v...)}
}

func internalErrorf(format string, v ...interface{}) *Error {
	return &Error{Kind: Internal, Message: fmt.Sprintf(format, v...)}
}
