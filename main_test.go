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
	"io/ioutil"
	"os"
	"strings"
	"testing"
)

const helloSource = `
int main(void) {
    printf("%d\n", 6 * 7);
    return 0;
}
`

func TestRegisteredFormatters(t *testing.T) {
	for _, name := range []string{"run", "tokens", "ast", "timing"} {
		if _, ok := formatters[name]; !ok {
			t.Errorf("formatter %q was not registered", name)
		}
	}
}

func withCapturedStdout(t *testing.T, fn func(w *os.File)) string {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	fn(w)
	w.Close()
	data, err := ioutil.ReadAll(r)
	if err != nil {
		t.Fatalf("reading captured stdout: %v", err)
	}
	return string(data)
}

func TestRunFormatterPrintsOutput(t *testing.T) {
	got := withCapturedStdout(t, func(w *os.File) {
		if code := formatters["run"].f(w, helloSource); code != 0 {
			t.Errorf("doRun returned exit code %d, want 0", code)
		}
	})
	if got != "42\n" {
		t.Errorf("run formatter wrote %q, want %q", got, "42\n")
	}
}

func TestRunFormatterReportsFailure(t *testing.T) {
	got := withCapturedStdout(t, func(w *os.File) {
		if code := formatters["run"].f(w, "int main(void) { return 1/0; }"); code != 1 {
			t.Errorf("doRun returned exit code %d, want 1 for a runtime error", code)
		}
	})
	if got != "" {
		t.Errorf("run formatter wrote %q on failure, want no stdout output", got)
	}
}

func TestTokensFormatterListsTokens(t *testing.T) {
	got := withCapturedStdout(t, func(w *os.File) {
		if code := formatters["tokens"].f(w, "int x;"); code != 0 {
			t.Errorf("doTokens returned exit code %d, want 0", code)
		}
	})
	if got == "" {
		t.Errorf("tokens formatter produced no output")
	}
}

func TestASTFormatterPrintsTree(t *testing.T) {
	got := withCapturedStdout(t, func(w *os.File) {
		if code := formatters["ast"].f(w, "int main(void) { int x = 1; return x; }"); code != 0 {
			t.Errorf("doAST returned exit code %d, want 0", code)
		}
	})
	if got == "" {
		t.Errorf("ast formatter produced no output")
	}
}

func TestASTFormatterDiffMatchesGolden(t *testing.T) {
	golden := strings.TrimSuffix(astPrettyPrint(t, helloSource), "\n")
	f, err := ioutil.TempFile("", "cscratch-golden-*.txt")
	if err != nil {
		t.Fatalf("TempFile: %v", err)
	}
	defer os.Remove(f.Name())
	if _, err := f.WriteString(golden); err != nil {
		t.Fatalf("WriteString: %v", err)
	}
	f.Close()

	astDiffFile = f.Name()
	defer func() { astDiffFile = "" }()

	got := withCapturedStdout(t, func(w *os.File) {
		if code := formatters["ast"].f(w, helloSource); code != 0 {
			t.Errorf("doAST returned exit code %d, want 0 for a matching golden file", code)
		}
	})
	if got != "ast matches golden file\n" {
		t.Errorf("ast --diff wrote %q, want %q", got, "ast matches golden file\n")
	}
}

func TestASTFormatterDiffReportsMismatch(t *testing.T) {
	f, err := ioutil.TempFile("", "cscratch-golden-*.txt")
	if err != nil {
		t.Fatalf("TempFile: %v", err)
	}
	defer os.Remove(f.Name())
	if _, err := f.WriteString("not a real tree"); err != nil {
		t.Fatalf("WriteString: %v", err)
	}
	f.Close()

	astDiffFile = f.Name()
	defer func() { astDiffFile = "" }()

	got := withCapturedStdout(t, func(w *os.File) {
		if code := formatters["ast"].f(w, helloSource); code != 1 {
			t.Errorf("doAST returned exit code %d, want 1 for a mismatching golden file", code)
		}
	})
	if got != "" {
		t.Errorf("ast --diff wrote %q to stdout on mismatch, want none", got)
	}
}

// astPrettyPrint runs the ast formatter once to capture its own
// pretty-printed tree, so the golden-diff tests don't hand-maintain a
// second copy of the tree shape.
func astPrettyPrint(t *testing.T, source string) string {
	t.Helper()
	return withCapturedStdout(t, func(w *os.File) {
		if code := formatters["ast"].f(w, source); code != 0 {
			t.Fatalf("doAST returned exit code %d building golden fixture", code)
		}
	})
}

func TestPrintIndentedPrefixesEveryLine(t *testing.T) {
	got := withCapturedStdout(t, func(w *os.File) {
		printIndented(w, "  ", "a\nb\n")
	})
	if got != "  a\n  b\n" {
		t.Errorf("printIndented wrote %q, want %q", got, "  a\n  b\n")
	}
}

func TestReadSourceFromFile(t *testing.T) {
	f, err := ioutil.TempFile("", "cscratch-*.c")
	if err != nil {
		t.Fatalf("TempFile: %v", err)
	}
	defer os.Remove(f.Name())
	if _, err := f.WriteString(helloSource); err != nil {
		t.Fatalf("WriteString: %v", err)
	}
	f.Close()

	got, err := readSource(f.Name())
	if err != nil {
		t.Fatalf("readSource: %v", err)
	}
	if got != helloSource {
		t.Errorf("readSource returned %q, want %q", got, helloSource)
	}
}
