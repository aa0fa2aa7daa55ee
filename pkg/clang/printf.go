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

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// formatPrintf renders format against args per the restricted printf
// table below, returning the rendered text and any warnings raised along
// the way (too few/too many arguments, an unrepresentable %c). A warning
// never stops rendering: the format string is always fully consumed.
func formatPrintf(format string, args []int) (string, []string) {
	var out strings.Builder
	var warnings []string
	next := 0

	runes := []rune(format)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != '%' {
			out.WriteRune(r)
			continue
		}
		if i+1 >= len(runes) {
			out.WriteRune('%')
			break
		}
		spec := runes[i+1]
		switch spec {
		case '%':
			out.WriteByte('%')
			i++
		case 'd', 'i', 'u', 'x', 'X', 'c':
			if next >= len(args) {
				warnings = append(warnings, "printf: missing argument for %"+string(spec))
				out.WriteByte('%')
				out.WriteRune(spec)
				i++
				continue
			}
			v := args[next]
			next++
			rendered, warn := renderSpecifier(spec, v)
			out.WriteString(rendered)
			if warn != "" {
				warnings = append(warnings, warn)
			}
			i++
		default:
			// Width/precision/length modifiers and anything else
			// unsupported pass through literally; no argument consumed.
			out.WriteByte('%')
			out.WriteRune(spec)
			i++
		}
	}

	if next < len(args) {
		warnings = append(warnings, "printf: more arguments supplied than format specifiers consumed")
	}

	return out.String(), warnings
}

// renderSpecifier renders one consumed conversion. The %u specifier widens
// to the host int's full width rather than masking to 32 bits.
func renderSpecifier(spec rune, v int) (string, string) {
	switch spec {
	case 'd', 'i':
		return strconv.Itoa(v), ""
	case 'u':
		return strconv.FormatUint(uint64(v), 10), ""
	case 'x':
		return strconv.FormatUint(uint64(v), 16), ""
	case 'X':
		return strings.ToUpper(strconv.FormatUint(uint64(v), 16)), ""
	case 'c':
		// Masked to a byte, so this is always a valid rune (0-255); the
		// check exists for the masking width to change later without
		// silently dropping the warning.
		b := byte(v & 0xff)
		if !utf8.ValidRune(rune(b)) {
			return "", "printf: %c value is not a representable character"
		}
		return string(rune(b)), ""
	}
	return "", ""
}
