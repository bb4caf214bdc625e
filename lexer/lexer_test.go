// File: lexer_test.go
// Title: Mink Lexer Unit Tests
// Description: Tests tokenization of all Mink syntax elements, keyword
//              classification, integer range handling, position tracking,
//              and termination behavior of the one-shot token stream.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-01
// Modified: 2025-03-01
//
// Change History:
// - 2025-03-01 v0.1.0: Initial comprehensive test suite

package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msto63/mink/token"
)

type expectedToken struct {
	Type    token.Type
	Literal string
}

func collect(t *testing.T, input string, expected []expectedToken) {
	t.Helper()

	l := New(input)
	for i, exp := range expected {
		tok := l.NextToken()
		assert.Equal(t, exp.Type, tok.Type, "token %d: type for literal %q", i, tok.Literal)
		assert.Equal(t, exp.Literal, tok.Literal, "token %d: literal", i)
	}
}

func TestLexer_NextToken(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []expectedToken
	}{
		{
			name:  "Operators and delimiters",
			input: "=+(){},;",
			expected: []expectedToken{
				{token.Assign, "="},
				{token.Plus, "+"},
				{token.LParen, "("},
				{token.RParen, ")"},
				{token.LBrace, "{"},
				{token.RBrace, "}"},
				{token.Comma, ","},
				{token.Semicolon, ";"},
				{token.EOF, ""},
			},
		},
		{
			name:  "Single and two character operators",
			input: "!-/*5; 5 < 10 > 5; 10 == 10; 10 != 9;",
			expected: []expectedToken{
				{token.Bang, "!"},
				{token.Minus, "-"},
				{token.Slash, "/"},
				{token.Asterisk, "*"},
				{token.Int, "5"},
				{token.Semicolon, ";"},
				{token.Int, "5"},
				{token.LT, "<"},
				{token.Int, "10"},
				{token.GT, ">"},
				{token.Int, "5"},
				{token.Semicolon, ";"},
				{token.Int, "10"},
				{token.Eq, "=="},
				{token.Int, "10"},
				{token.Semicolon, ";"},
				{token.Int, "10"},
				{token.NotEq, "!="},
				{token.Int, "9"},
				{token.Semicolon, ";"},
				{token.EOF, ""},
			},
		},
		{
			name:  "Let bindings",
			input: "let five = 5;\nlet ten = 10;",
			expected: []expectedToken{
				{token.Let, "let"},
				{token.Ident, "five"},
				{token.Assign, "="},
				{token.Int, "5"},
				{token.Semicolon, ";"},
				{token.Let, "let"},
				{token.Ident, "ten"},
				{token.Assign, "="},
				{token.Int, "10"},
				{token.Semicolon, ";"},
				{token.EOF, ""},
			},
		},
		{
			name:  "Function literal and call",
			input: "let add = fn(x, y) { x + y; };\nlet result = add(five, ten);",
			expected: []expectedToken{
				{token.Let, "let"},
				{token.Ident, "add"},
				{token.Assign, "="},
				{token.Function, "fn"},
				{token.LParen, "("},
				{token.Ident, "x"},
				{token.Comma, ","},
				{token.Ident, "y"},
				{token.RParen, ")"},
				{token.LBrace, "{"},
				{token.Ident, "x"},
				{token.Plus, "+"},
				{token.Ident, "y"},
				{token.Semicolon, ";"},
				{token.RBrace, "}"},
				{token.Semicolon, ";"},
				{token.Let, "let"},
				{token.Ident, "result"},
				{token.Assign, "="},
				{token.Ident, "add"},
				{token.LParen, "("},
				{token.Ident, "five"},
				{token.Comma, ","},
				{token.Ident, "ten"},
				{token.RParen, ")"},
				{token.Semicolon, ";"},
				{token.EOF, ""},
			},
		},
		{
			name:  "Conditional with booleans",
			input: "if (5 < 10) { return true; } else { return false; }",
			expected: []expectedToken{
				{token.If, "if"},
				{token.LParen, "("},
				{token.Int, "5"},
				{token.LT, "<"},
				{token.Int, "10"},
				{token.RParen, ")"},
				{token.LBrace, "{"},
				{token.Return, "return"},
				{token.Bool, "true"},
				{token.Semicolon, ";"},
				{token.RBrace, "}"},
				{token.Else, "else"},
				{token.LBrace, "{"},
				{token.Return, "return"},
				{token.Bool, "false"},
				{token.Semicolon, ";"},
				{token.RBrace, "}"},
				{token.EOF, ""},
			},
		},
		{
			name:  "Underscore identifiers",
			input: "let _snake_case = foo_bar;",
			expected: []expectedToken{
				{token.Let, "let"},
				{token.Ident, "_snake_case"},
				{token.Assign, "="},
				{token.Ident, "foo_bar"},
				{token.Semicolon, ";"},
				{token.EOF, ""},
			},
		},
		{
			name:  "Unrecognized characters are Illegal",
			input: "let x = 5 @ 3 # 4;",
			expected: []expectedToken{
				{token.Let, "let"},
				{token.Ident, "x"},
				{token.Assign, "="},
				{token.Int, "5"},
				{token.Illegal, "@"},
				{token.Int, "3"},
				{token.Illegal, "#"},
				{token.Int, "4"},
				{token.Semicolon, ";"},
				{token.EOF, ""},
			},
		},
		{
			name:     "Empty input",
			input:    "",
			expected: []expectedToken{{token.EOF, ""}},
		},
		{
			name:     "Whitespace only",
			input:    "  \t\r\n  ",
			expected: []expectedToken{{token.EOF, ""}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			collect(t, tt.input, tt.expected)
		})
	}
}

func TestLexer_IntegerRange(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected token.Type
	}{
		{name: "Max int64 fits", input: "9223372036854775807", expected: token.Int},
		{name: "Overflow degrades to Illegal", input: "9223372036854775808", expected: token.Illegal},
		{name: "Very long numeral degrades to Illegal", input: "99999999999999999999999999", expected: token.Illegal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(tt.input)
			tok := l.NextToken()
			assert.Equal(t, tt.expected, tok.Type)
			assert.Equal(t, tt.input, tok.Literal)
			assert.Equal(t, token.EOF, l.NextToken().Type)
		})
	}
}

func TestLexer_Termination(t *testing.T) {
	// Once exhausted, the lexer yields EOF forever.
	l := New("let x = 5;")
	for l.NextToken().Type != token.EOF {
	}
	for i := 0; i < 10; i++ {
		require.Equal(t, token.EOF, l.NextToken().Type, "call %d after exhaustion", i)
	}
}

func TestLexer_Positions(t *testing.T) {
	l := New("let x = 10;\nx == 10")

	expected := []token.Token{
		{Type: token.Let, Literal: "let", Line: 1, Column: 1},
		{Type: token.Ident, Literal: "x", Line: 1, Column: 5},
		{Type: token.Assign, Literal: "=", Line: 1, Column: 7},
		{Type: token.Int, Literal: "10", Line: 1, Column: 9},
		{Type: token.Semicolon, Literal: ";", Line: 1, Column: 11},
		{Type: token.Ident, Literal: "x", Line: 2, Column: 1},
		{Type: token.Eq, Literal: "==", Line: 2, Column: 3},
		{Type: token.Int, Literal: "10", Line: 2, Column: 6},
	}

	for i, exp := range expected {
		tok := l.NextToken()
		require.Equal(t, exp, tok, "token %d", i)
	}
}

func TestLexer_Tokenize(t *testing.T) {
	tokens := New("let x = 5;").Tokenize()

	require.Len(t, tokens, 6)
	assert.Equal(t, token.Let, tokens[0].Type)
	assert.Equal(t, token.EOF, tokens[len(tokens)-1].Type)
}
