// File: lexer.go
// Title: Mink Lexical Analyzer (Tokenizer)
// Description: Implements the lexical analysis phase of the Mink front end.
//              Converts Mink source text into a lazy, one-shot stream of
//              tokens with position information for error reporting. The
//              lexer never fails; anomalies surface as Illegal tokens.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-01
// Modified: 2025-03-01
//
// Change History:
// - 2025-03-01 v0.1.0: Initial lexer implementation

package lexer

import (
	"strconv"

	"github.com/msto63/mink/token"
)

// Lexer performs lexical analysis of Mink source text. A Lexer is one-shot:
// once the input is exhausted it yields EOF tokens forever, and rescanning
// requires a new instance.
type Lexer struct {
	input    string // Input string
	position int    // Current position in input (points to current char)
	readPos  int    // Current reading position (after current char)
	ch       byte   // Current char under examination
	line     int    // Current line number (1-based)
	column   int    // Current column number (1-based)
}

// New creates a new lexer for the given input
func New(input string) *Lexer {
	l := &Lexer{
		input: input,
		line:  1,
	}
	l.readChar() // Initialize first character
	return l
}

// NextToken returns the next token from the input
func (l *Lexer) NextToken() token.Token {
	var tok token.Token

	l.skipWhitespace()

	// Save current position for token
	line := l.line
	column := l.column

	switch l.ch {
	case '=':
		if l.peekChar() == '=' {
			ch := l.ch
			l.readChar()
			tok = token.Token{Type: token.Eq, Literal: string(ch) + string(l.ch), Line: line, Column: column}
		} else {
			tok = newToken(token.Assign, l.ch, line, column)
		}
	case '!':
		if l.peekChar() == '=' {
			ch := l.ch
			l.readChar()
			tok = token.Token{Type: token.NotEq, Literal: string(ch) + string(l.ch), Line: line, Column: column}
		} else {
			tok = newToken(token.Bang, l.ch, line, column)
		}
	case '+':
		tok = newToken(token.Plus, l.ch, line, column)
	case '-':
		tok = newToken(token.Minus, l.ch, line, column)
	case '*':
		tok = newToken(token.Asterisk, l.ch, line, column)
	case '/':
		tok = newToken(token.Slash, l.ch, line, column)
	case '<':
		tok = newToken(token.LT, l.ch, line, column)
	case '>':
		tok = newToken(token.GT, l.ch, line, column)
	case ',':
		tok = newToken(token.Comma, l.ch, line, column)
	case ';':
		tok = newToken(token.Semicolon, l.ch, line, column)
	case '(':
		tok = newToken(token.LParen, l.ch, line, column)
	case ')':
		tok = newToken(token.RParen, l.ch, line, column)
	case '{':
		tok = newToken(token.LBrace, l.ch, line, column)
	case '}':
		tok = newToken(token.RBrace, l.ch, line, column)
	case 0:
		tok = token.Token{Type: token.EOF, Literal: "", Line: line, Column: column}
	default:
		if isLetter(l.ch) {
			tok.Line = line
			tok.Column = column
			tok.Literal = l.readIdentifier()
			tok.Type = token.LookupIdent(tok.Literal)
			return tok // Early return to avoid readChar()
		} else if isDigit(l.ch) {
			tok.Line = line
			tok.Column = column
			tok.Literal = l.readNumber()
			tok.Type = token.Int
			// Numerals outside the signed 64-bit range degrade to Illegal
			// instead of raising; the parser reacts to the token.
			if _, err := strconv.ParseInt(tok.Literal, 10, 64); err != nil {
				tok.Type = token.Illegal
			}
			return tok // Early return to avoid readChar()
		}
		tok = newToken(token.Illegal, l.ch, line, column)
	}

	l.readChar()
	return tok
}

// Tokenize returns all tokens from the input as a slice, including the
// terminating EOF token. Illegal tokens are included; the lexer itself
// never reports an error.
func (l *Lexer) Tokenize() []token.Token {
	var tokens []token.Token

	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)

		if tok.Type == token.EOF {
			break
		}
	}

	return tokens
}

// readChar reads the next character and advances position
func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0 // ASCII NUL represents end of input
	} else {
		l.ch = l.input[l.readPos]
	}

	l.position = l.readPos
	l.readPos++

	// Update line and column tracking
	if l.ch == '\n' {
		l.line++
		l.column = 0
	} else {
		l.column++
	}
}

// peekChar returns the next character without advancing position
func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

// readIdentifier reads a maximal run of letters and underscores
func (l *Lexer) readIdentifier() string {
	start := l.position
	for isLetter(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

// readNumber reads a maximal run of decimal digits
func (l *Lexer) readNumber() string {
	start := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

// skipWhitespace skips whitespace characters
func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// newToken creates a new single-character token
func newToken(tokenType token.Type, ch byte, line, column int) token.Token {
	return token.Token{
		Type:    tokenType,
		Literal: string(ch),
		Line:    line,
		Column:  column,
	}
}

// isLetter checks if the character can appear in an identifier. Identifiers
// are runs of ASCII letters and underscores; digits are not allowed.
func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

// isDigit checks if the character is a decimal digit
func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
