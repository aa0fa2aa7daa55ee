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

// TokenInfo is a read-only view of one lexed token, for collaborators
// (an editor's syntax highlighter, this module's own CLI) that want the
// token stream without running the parser.
type TokenInfo struct {
	Kind string
	Text string
	Line int
}

// Tokens preprocesses and lexes source, returning every token in order.
// It stops and returns a Syntax *Error at the first lexical error, the
// same failure Parse would eventually surface.
func Tokens(source string) ([]TokenInfo, error) {
	lx := newLexer(preprocess(source))
	var out []TokenInfo
	for {
		t := lx.NextToken()
		if t == nil {
			return out, nil
		}
		if t.Kind == tError {
			if n := len(lx.errs); n > 0 {
				e := lx.errs[n-1]
				return out, syntaxErrorf(e.line, "%s", e.msg)
			}
			return out, syntaxErrorf(t.Line, "syntax error")
		}
		out = append(out, TokenInfo{Kind: t.Kind.String(), Text: t.Text, Line: t.Line})
	}
}
