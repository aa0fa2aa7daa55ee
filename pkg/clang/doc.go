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

// Package clang implements an offline interpreter for a small subset of C:
// int-typed scalars, one main function, block structure, if/else, while,
// for, return, integer arithmetic and comparison, and a restricted printf.
//
// The pipeline is four stages, leaves first: preprocess, lex, parse,
// execute. Run (or RunString, with default Options) runs the whole
// pipeline; Preprocess, Tokens, Parse and Execute expose single stages:
//
//	res := clang.RunString(`
//	    int main(void) {
//	        printf("%d\n", 6 * 7);
//	        return 0;
//	    }
//	`)
//	if !res.OK() {
//	    // res.Err is a *clang.Error with a Kind, a Message, and
//	    // optionally a Line.
//	}
//	fmt.Print(res.Output)
package clang
