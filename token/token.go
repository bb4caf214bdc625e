// File: token.go
// Title: Mink Token Definitions
// Description: Defines the closed vocabulary of lexical tokens for the Mink
//              scripting language, keyword classification of scanned
//              identifiers, and the canonical lexeme rendering used by the
//              AST printer.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-01
// Modified: 2025-03-01
//
// Change History:
// - 2025-03-01 v0.1.0: Initial token model

package token

import "fmt"

// Type represents the type of a lexical token
type Type int

const (
	// Special tokens
	Illegal Type = iota
	EOF

	// Identifiers and literals
	Ident // add, foobar, x, y
	Int   // 1343456
	Bool  // true, false

	// Operators
	Assign   // =
	Plus     // +
	Minus    // -
	Bang     // !
	Asterisk // *
	Slash    // /
	LT       // <
	GT       // >
	Eq       // ==
	NotEq    // !=

	// Delimiters
	Comma     // ,
	Semicolon // ;
	LParen    // (
	RParen    // )
	LBrace    // {
	RBrace    // }

	// Keywords
	Function // fn
	Let      // let
	If       // if
	Else     // else
	Return   // return
)

// Token represents a lexical token with position information
type Token struct {
	Type    Type   // Token type
	Literal string // Token text as it appeared in the source
	Line    int    // Line number (1-based)
	Column  int    // Column number (1-based)
}

// String returns a string representation of the token
func (t Token) String() string {
	switch t.Type {
	case EOF:
		return "EOF"
	case Illegal:
		return fmt.Sprintf("ILLEGAL(%s)", t.Literal)
	case Ident, Int, Bool:
		return fmt.Sprintf("%s(%s)", t.Type.String(), t.Literal)
	default:
		return t.Type.String()
	}
}

// String returns the canonical lexeme for the token type. Operator and
// keyword types render as their source spelling; variable-content types
// render as their uppercase class name. The result is total and load-bearing
// for the AST printer, which renders operators through it.
func (tt Type) String() string {
	switch tt {
	case Illegal:
		return "ILLEGAL"
	case EOF:
		return "EOF"
	case Ident:
		return "IDENT"
	case Int:
		return "INT"
	case Bool:
		return "BOOL"
	case Assign:
		return "="
	case Plus:
		return "+"
	case Minus:
		return "-"
	case Bang:
		return "!"
	case Asterisk:
		return "*"
	case Slash:
		return "/"
	case LT:
		return "<"
	case GT:
		return ">"
	case Eq:
		return "=="
	case NotEq:
		return "!="
	case Comma:
		return ","
	case Semicolon:
		return ";"
	case LParen:
		return "("
	case RParen:
		return ")"
	case LBrace:
		return "{"
	case RBrace:
		return "}"
	case Function:
		return "fn"
	case Let:
		return "let"
	case If:
		return "if"
	case Else:
		return "else"
	case Return:
		return "return"
	default:
		return "UNKNOWN"
	}
}

// Keywords map for identifier lookup
var keywords = map[string]Type{
	"fn":     Function,
	"let":    Let,
	"true":   Bool,
	"false":  Bool,
	"if":     If,
	"else":   Else,
	"return": Return,
}

// LookupIdent determines whether a scanned identifier-shaped string is a
// keyword, a boolean literal, or a plain identifier. It always succeeds;
// anything not in the keyword table is an identifier.
func LookupIdent(ident string) Type {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return Ident
}

// IsKeyword checks if a string is a Mink keyword or boolean literal
func IsKeyword(s string) bool {
	_, ok := keywords[s]
	return ok
}
