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

// Package indent provides an io.Writer that prepends a fixed prefix to
// every line written to it, streaming correctly regardless of how the
// input is chunked across Write calls.
package indent

import (
	"bytes"
	"io"
)

// String returns in with prefix inserted at the start of every line.
func String(prefix, in string) string {
	return string(Bytes([]byte(prefix), []byte(in)))
}

// Bytes returns in with prefix inserted at the start of every line.
func Bytes(prefix, in []byte) []byte {
	var buf bytes.Buffer
	w := NewWriter(&buf, string(prefix))
	w.Write(in)
	return buf.Bytes()
}

// A Writer wraps an underlying io.Writer, inserting prefix at the
// beginning of every line written through it.
type Writer struct {
	w           io.Writer
	prefix      string
	atLineStart bool
}

// NewWriter returns a Writer that indents every line written to it with
// prefix before passing it on to w.
func NewWriter(w io.Writer, prefix string) *Writer {
	return &Writer{w: w, prefix: prefix, atLineStart: true}
}

// Write implements io.Writer. It reports how many bytes of p were fully
// accounted for in what was successfully written to the underlying
// writer: a short or failed underlying write only counts the input bytes
// whose own byte (and any prefix immediately before it) made it through.
func (iw *Writer) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if iw.prefix == "" {
		n, err := iw.w.Write(p)
		return n, err
	}

	var out []byte
	// consumedAt[i] is how many input bytes are fully accounted for once
	// the first i bytes of out have been written.
	consumedAt := make([]int, 0, len(p)+1)
	consumedAt = append(consumedAt, 0)
	atLineStart := iw.atLineStart
	consumed := 0

	for _, b := range p {
		if atLineStart {
			out = append(out, iw.prefix...)
			for range iw.prefix {
				consumedAt = append(consumedAt, consumed)
			}
			atLineStart = false
		}
		out = append(out, b)
		consumed++
		consumedAt = append(consumedAt, consumed)
		if b == '\n' {
			atLineStart = true
		}
	}

	n, err := iw.w.Write(out)
	if n >= len(out) {
		iw.atLineStart = atLineStart
		if err != nil {
			return len(p), err
		}
		return len(p), nil
	}
	if err == nil {
		err = io.ErrShortWrite
	}
	return consumedAt[n], err
}
