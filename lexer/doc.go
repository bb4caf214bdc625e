// File: doc.go
// Title: Lexer Package Documentation
// Description: Package documentation for the Mink lexer.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-01
// Modified: 2025-03-01
//
// Change History:
// - 2025-03-01 v0.1.0: Initial documentation

/*
Package lexer converts Mink source text into a stream of tokens.

The lexer never reports an error: characters outside the language and
integer literals beyond the signed 64-bit range surface as Illegal tokens,
and it is the parser's job to react to them. A Lexer is one-shot; after the
input is exhausted NextToken yields EOF tokens forever.
*/
package lexer
