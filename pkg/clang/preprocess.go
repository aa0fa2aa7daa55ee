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

import "strings"

// smartQuotes maps the mobile-keyboard punctuation the preprocessor folds
// down to their ASCII equivalents.
var smartQuotes = map[rune]rune{
	'“': '"',
	'”': '"',
	'‘': '\'',
	'’': '\'',
	'–': '-',
	'—': '-',
}

// Preprocess exports the sanitization step of Run for collaborators (this
// module's own CLI "ast" format) that want to feed already-clean source
// straight into Parse without running the interpreter. Tokens applies the
// same step itself.
func Preprocess(source string) string {
	return preprocess(source)
}

// preprocess normalizes line endings, folds smart punctuation to ASCII, and
// drops any line whose first non-whitespace character is '#'. Line numbers
// observed downstream refer to this output, not the caller's original text;
// that drift is documented behavior, not a bug.
func preprocess(source string) string {
	source = strings.ReplaceAll(source, "\r\n", "\n")

	if strings.ContainsAny(source, "“”‘’–—") {
		var sb strings.Builder
		sb.Grow(len(source))
		for _, r := range source {
			if folded, ok := smartQuotes[r]; ok {
				sb.WriteRune(folded)
			} else {
				sb.WriteRune(r)
			}
		}
		source = sb.String()
	}

	lines := strings.Split(source, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if isDirectiveLine(line) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

// isDirectiveLine reports whether line's first non-whitespace character is
// '#' (a preprocessor directive we discard rather than expand).
func isDirectiveLine(line string) bool {
	for _, r := range line {
		switch r {
		case ' ', '\t':
			continue
		case '#':
			return true
		default:
			return false
		}
	}
	return false
}
