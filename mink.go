// File: mink.go
// Title: Mink Front End Facade
// Description: Top-level convenience API over the lexer and parser for
//              callers that do not need custom options.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-01
// Modified: 2025-03-01
//
// Change History:
// - 2025-03-01 v0.1.0: Initial facade

package mink

import (
	"github.com/msto63/mink/ast"
	"github.com/msto63/mink/lexer"
	"github.com/msto63/mink/parser"
	"github.com/msto63/mink/token"
)

// Parse parses Mink source text into an AST using default parser options.
// On failure the returned error aggregates every syntax error found.
func Parse(input string) (*ast.Program, error) {
	return parser.New(parser.Options{}).Parse(input)
}

// Tokenize converts Mink source text into its token stream, including the
// trailing EOF token. Lexing never fails; unknown characters surface as
// Illegal tokens.
func Tokenize(input string) []token.Token {
	return lexer.New(input).Tokenize()
}
