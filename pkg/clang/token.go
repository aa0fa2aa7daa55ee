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

// A kind is a token's lexical class. Every kind is a negative code so it
// never collides with a rune; all punctuation, single or compound, is
// tSymbol with the punctuation itself in the token's Text.
type kind int

const (
	tEOF    = kind(-1 - iota) // reached end of input
	tError                    // lexer could not classify the input
	tInt                      // integer literal
	tString                   // double-quoted string literal, escapes resolved
	tIdent                    // identifier, not a reserved word
	tKeyword                  // reserved word
	tSymbol                   // punctuation, single or compound
)

func (k kind) String() string {
	switch k {
	case tEOF:
		return "EOF"
	case tError:
		return "Error"
	case tInt:
		return "Int"
	case tString:
		return "String"
	case tIdent:
		return "Identifier"
	case tKeyword:
		return "Keyword"
	case tSymbol:
		return "Symbol"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// A token is one lexical unit read from the source. Line is 1's based.
// IVal only carries a meaningful value when Kind is tInt.
type token struct {
	Kind kind
	Text string
	IVal int
	Line int
}

func (t *token) String() string {
	if t == nil {
		return "<nil>"
	}
	if t.Text == "" {
		return fmt.Sprintf("%d: %v", t.Line, t.Kind)
	}
	return fmt.Sprintf("%d: %v %q", t.Line, t.Kind, t.Text)
}

// keywords are the reserved words of the subset. int, long and char are
// all accepted as declaration introducers and collapse to the same integer
// type during evaluation; void is only meaningful in main's parameter list.
var keywords = map[string]bool{
	"return":   true,
	"if":       true,
	"else":     true,
	"while":    true,
	"for":      true,
	"break":    true,
	"continue": true,
	"int":      true,
	"long":     true,
	"char":     true,
	"void":     true,
}

// intTypeKeywords introduce a declaration.
var intTypeKeywords = map[string]bool{
	"int":  true,
	"long": true,
	"char": true,
}

// compoundSymbols must be matched before any of their single-character
// prefixes; order within the list does not matter, only that longer symbols
// are tried first, which lexSymbol in lex.go enforces by length.
var compoundSymbols = []string{
	"<=", ">=", "==", "!=", "&&", "||",
	"++", "--", "+=", "-=", "*=", "/=", "%=",
}

// compoundAssignOps maps a compound-assignment symbol to its Op.
var compoundAssignOps = map[string]AssignOp{
	"=":  AssignSet,
	"+=": AssignAdd,
	"-=": AssignSub,
	"*=": AssignMul,
	"/=": AssignDiv,
	"%=": AssignMod,
}
