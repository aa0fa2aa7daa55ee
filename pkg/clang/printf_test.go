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

import "testing"

func TestFormatPrintfSpecifiers(t *testing.T) {
	tests := []struct {
		descr  string
		format string
		args   []int
		want   string
	}{
		{descr: "decimal", format: "%d", args: []int{42}, want: "42"},
		{descr: "decimal negative", format: "%i", args: []int{-7}, want: "-7"},
		{descr: "unsigned widens negative to full width", format: "%u", args: []int{-1}, want: "18446744073709551615"},
		{descr: "hex lowercase", format: "%x", args: []int{255}, want: "ff"},
		{descr: "hex uppercase", format: "%X", args: []int{255}, want: "FF"},
		{descr: "character", format: "%c", args: []int{65}, want: "A"},
		{descr: "literal percent", format: "100%%", args: nil, want: "100%"},
		{descr: "mixed literal and specifiers", format: "x=%d y=%d\n", args: []int{1, 2}, want: "x=1 y=2\n"},
	}
	for _, tc := range tests {
		t.Run(tc.descr, func(t *testing.T) {
			got, warnings := formatPrintf(tc.format, tc.args)
			if got != tc.want {
				t.Errorf("formatPrintf(%q, %v) = %q, want %q", tc.format, tc.args, got, tc.want)
			}
			if len(warnings) != 0 {
				t.Errorf("unexpected warnings: %v", warnings)
			}
		})
	}
}

func TestFormatPrintfArgumentCountWarnings(t *testing.T) {
	t.Run("too few arguments", func(t *testing.T) {
		_, warnings := formatPrintf("%d %d", []int{1})
		if len(warnings) != 1 {
			t.Fatalf("got %d warnings, want 1: %v", len(warnings), warnings)
		}
	})
	t.Run("too many arguments", func(t *testing.T) {
		_, warnings := formatPrintf("%d", []int{1, 2})
		if len(warnings) != 1 {
			t.Fatalf("got %d warnings, want 1: %v", len(warnings), warnings)
		}
	})
	t.Run("exact match has no warnings", func(t *testing.T) {
		_, warnings := formatPrintf("%d %d", []int{1, 2})
		if len(warnings) != 0 {
			t.Fatalf("unexpected warnings: %v", warnings)
		}
	})
}

func TestFormatPrintfUnsupportedModifierPassesThrough(t *testing.T) {
	// 'l' has no entry in the specifier table, so "%l" passes through
	// literally and consumes no argument; the 'd' that follows is then an
	// ordinary literal character, not a fresh conversion, since no '%'
	// precedes it.
	got, warnings := formatPrintf("%ld", nil)
	if got != "%ld" {
		t.Errorf("formatPrintf(%%ld) = %q, want %q", got, "%ld")
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
}
