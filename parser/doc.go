// File: doc.go
// Title: Parser Package Documentation
// Description: Package documentation for the Mink parser.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-01
// Modified: 2025-03-01
//
// Change History:
// - 2025-03-01 v0.1.0: Initial documentation

/*
Package parser converts Mink source text into Abstract Syntax Trees.

The parser is a recursive descent parser with one token of lookahead.
Expressions are parsed with operator-precedence climbing, so arithmetic,
comparison, prefix, grouping, and call constructs nest according to the
language's seven precedence levels without any grammar rewriting.

A failed statement does not abort the parse: the parser records the error,
skips ahead to the next statement boundary, and continues, so a single run
reports every syntax error in the program. When any statement failed, Parse
returns a nil program together with an aggregate error; the individual
messages remain available through Errors.

Basic usage:

	p := parser.New(parser.Options{})
	program, err := p.Parse("let x = 5; x + 1;")
	if err != nil {
	    for _, msg := range p.Errors() {
	        fmt.Println(msg)
	    }
	}
*/
package parser
