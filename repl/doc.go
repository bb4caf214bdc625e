// File: doc.go
// Title: REPL Package Documentation
// Description: Package documentation for the Mink interactive session.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-01
// Modified: 2025-03-01
//
// Change History:
// - 2025-03-01 v0.1.0: Initial documentation

/*
Package repl implements the Mink interactive session.

Each input line is parsed as a complete program and the canonical AST
rendering printed back, which makes the session a direct window into how
the parser groups expressions. Syntax errors do not end the session; every
recorded error is printed and the loop continues. The :tokens command
switches to lexing lines instead of parsing them.
*/
package repl
