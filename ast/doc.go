// File: doc.go
// Title: Mink Abstract Syntax Tree Package Documentation
// Description: Defines the Abstract Syntax Tree nodes and structures for
//              representing parsed Mink programs. Provides visitor patterns
//              and the canonical string rendering.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-01
// Modified: 2025-03-01
//
// Change History:
// - 2025-03-01 v0.1.0: Initial AST implementation

/*
Package ast defines the Abstract Syntax Tree structures for Mink programs.

This package provides the node definitions, visitor patterns, and the
canonical string rendering for parsed Mink source. The rendering fully
parenthesizes prefix and infix expressions, so printing a parsed program
unambiguously reflects its structure and serves as the test oracle for
operator precedence.

The AST enables:
  • Structured representation of Mink statements and expressions
  • Deterministic round-trip rendering for verification
  • Tree traversal and analysis through visitors
*/
package ast
