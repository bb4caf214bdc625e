// File: doc.go
// Title: Token Package Documentation
// Description: Package documentation for the Mink token model.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-01
// Modified: 2025-03-01
//
// Change History:
// - 2025-03-01 v0.1.0: Initial documentation

/*
Package token defines the closed vocabulary of Mink lexical tokens.

Every token carries its source text and 1-based line/column position.
Type.String renders the canonical lexeme for a token type, which the AST
printer uses to render operators, and LookupIdent classifies scanned
identifier-shaped text into keywords, boolean literals, or identifiers.
*/
package token
