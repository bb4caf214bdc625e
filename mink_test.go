// File: mink_test.go
// Title: Facade Unit Tests
// Description: Tests the top-level Parse and Tokenize convenience API.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-01
// Modified: 2025-03-01
//
// Change History:
// - 2025-03-01 v0.1.0: Initial test suite

package mink

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msto63/mink/token"
)

func TestParse(t *testing.T) {
	program, err := Parse("let x = 1 + 2 * 3;")
	require.NoError(t, err)
	assert.Equal(t, "let x = (1 + (2 * 3));", program.String())
}

func TestParse_Error(t *testing.T) {
	program, err := Parse("let = 5;")
	require.Error(t, err)
	assert.Nil(t, program)
	assert.Contains(t, err.Error(), "expected identifier")
}

func TestTokenize(t *testing.T) {
	tokens := Tokenize("let x = 5;")

	require.Len(t, tokens, 6)
	assert.Equal(t, token.Let, tokens[0].Type)
	assert.Equal(t, token.Ident, tokens[1].Type)
	assert.Equal(t, token.Assign, tokens[2].Type)
	assert.Equal(t, token.Int, tokens[3].Type)
	assert.Equal(t, token.Semicolon, tokens[4].Type)
	assert.Equal(t, token.EOF, tokens[5].Type)
}
