// File: repl_test.go
// Title: REPL Unit Tests
// Description: Tests the interactive loop against scripted input: parsing,
//              error reporting, token mode, and session commands.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-01
// Modified: 2025-03-01
//
// Change History:
// - 2025-03-01 v0.1.0: Initial test suite

package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msto63/mink/core/config"
)

// runSession runs a scripted session and returns its output. Color is
// disabled so assertions see plain text.
func runSession(t *testing.T, input string) string {
	t.Helper()

	cfg := config.Default()
	cfg.REPL.Color = false

	var out bytes.Buffer
	session := New(Options{
		Input:  strings.NewReader(input),
		Output: &out,
		Config: cfg,
	})

	require.NoError(t, session.Run())
	return out.String()
}

func TestREPL_ParsesLines(t *testing.T) {
	output := runSession(t, "let x = 1 + 2 * 3;\n-a * b;\n")

	assert.Contains(t, output, "let x = (1 + (2 * 3));")
	assert.Contains(t, output, "((-a) * b)")
}

func TestREPL_ReportsAllErrors(t *testing.T) {
	output := runSession(t, "let x 5; let = 10;\n")

	assert.Contains(t, output, "parse error: expected next token to be =")
	assert.Contains(t, output, "parse error: expected identifier")
}

func TestREPL_ReportsOversizedInput(t *testing.T) {
	cfg := config.Default()
	cfg.REPL.Color = false
	cfg.Parser.MaxInputLength = 8

	var out bytes.Buffer
	session := New(Options{
		Input:  strings.NewReader("let x = 12345;\n"),
		Output: &out,
		Config: cfg,
	})
	require.NoError(t, session.Run())

	assert.Contains(t, out.String(), "parse error: input exceeds maximum length")
}

func TestREPL_ContinuesAfterError(t *testing.T) {
	output := runSession(t, "let x 5;\nlet y = 2;\n")

	assert.Contains(t, output, "parse error:")
	assert.Contains(t, output, "let y = 2;")
}

func TestREPL_TokenMode(t *testing.T) {
	output := runSession(t, ":tokens\nlet x = 5;\n")

	assert.Contains(t, output, "Token mode on")
	assert.Contains(t, output, "IDENT(x)")
	assert.Contains(t, output, "INT(5)")
	assert.NotContains(t, output, "let x = 5;")
}

func TestREPL_TokenModeToggle(t *testing.T) {
	output := runSession(t, ":tokens\n:tokens\n5 + 5;\n")

	assert.Contains(t, output, "Token mode off")
	assert.Contains(t, output, "(5 + 5)")
}

func TestREPL_QuitCommand(t *testing.T) {
	output := runSession(t, ":quit\nlet unreached = 1;\n")

	assert.Contains(t, output, "Bye!")
	assert.NotContains(t, output, "unreached")
}

func TestREPL_HelpCommand(t *testing.T) {
	output := runSession(t, ":help\n")

	assert.Contains(t, output, ":tokens")
	assert.Contains(t, output, ":quit")
}

func TestREPL_UnknownCommand(t *testing.T) {
	output := runSession(t, ":bogus\n")

	assert.Contains(t, output, "unknown command :bogus")
}

func TestREPL_SkipsEmptyLines(t *testing.T) {
	output := runSession(t, "\n   \n5;\n")

	assert.Contains(t, output, "5\n")
	assert.NotContains(t, output, "parse error")
}

func TestREPL_Banner(t *testing.T) {
	output := runSession(t, "")

	assert.Contains(t, output, "Mink interactive session")
	assert.Contains(t, output, ":help")
}
