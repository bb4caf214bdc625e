// File: error_test.go
// Title: Core Error Unit Tests
// Description: Tests structured error construction, wrapping, code
//              propagation, and standard library interoperability.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-01
// Modified: 2025-03-01
//
// Change History:
// - 2025-03-01 v0.1.0: Initial test suite

package error

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New("something failed")

	assert.Equal(t, "something failed", err.Error())
	assert.Equal(t, CodeUnknown, err.Code())
	assert.Empty(t, err.Details())
	assert.False(t, err.Timestamp().IsZero())
}

func TestNewf(t *testing.T) {
	err := Newf("expected %s, got %s", ";", ")")
	assert.Equal(t, "expected ;, got )", err.Error())
}

func TestError_WithCode(t *testing.T) {
	err := New("unexpected token").WithCode(CodeUnexpectedToken)

	assert.Equal(t, CodeUnexpectedToken, err.Code())
	assert.Equal(t, CodeUnexpectedToken, GetCode(err))
	assert.True(t, HasCode(err, CodeUnexpectedToken))
	assert.False(t, HasCode(err, CodeUnexpectedEOF))
}

func TestError_WithDetail(t *testing.T) {
	err := New("unexpected token").
		WithCode(CodeUnexpectedToken).
		WithDetail("line", 3).
		WithDetail("column", 14).
		WithOperation("parse-let-statement")

	assert.Equal(t, 3, err.Details()["line"])
	assert.Equal(t, 14, err.Details()["column"])
	assert.Equal(t, "parse-let-statement", err.Operation())
}

func TestWrap(t *testing.T) {
	t.Run("Wrapping nil returns nil", func(t *testing.T) {
		assert.Nil(t, Wrap(nil, "context"))
	})

	t.Run("Wrapping a standard error", func(t *testing.T) {
		base := errors.New("boom")
		err := Wrap(base, "parsing failed")

		assert.Equal(t, "parsing failed: boom", err.Error())
		assert.Equal(t, CodeUnknown, err.Code())
		assert.ErrorIs(t, err, base)
	})

	t.Run("Wrapping preserves code and details", func(t *testing.T) {
		inner := New("bad token").
			WithCode(CodeUnexpectedToken).
			WithDetail("line", 7)
		err := Wrap(inner, "statement 2")

		assert.Equal(t, CodeUnexpectedToken, err.Code())
		assert.Equal(t, 7, err.Details()["line"])
		assert.Equal(t, "statement 2: bad token", err.Error())
	})

	t.Run("errors.As finds the structured error", func(t *testing.T) {
		err := fmt.Errorf("outer: %w", New("inner").WithCode(CodeSyntax))

		var structured *Error
		require.True(t, errors.As(err, &structured))
		assert.Equal(t, CodeSyntax, structured.Code())
		assert.Equal(t, CodeSyntax, GetCode(err))
	})
}

func TestHasCode_Chain(t *testing.T) {
	inner := New("bad token").WithCode(CodeIllegalToken)
	outer := Wrap(inner, "statement 2").WithCode(CodeSyntax)

	// Both the recoded outer error and the buried inner code match.
	assert.True(t, HasCode(outer, CodeSyntax))
	assert.True(t, HasCode(outer, CodeIllegalToken))
	assert.False(t, HasCode(outer, CodeInternal))

	assert.False(t, HasCode(errors.New("plain"), CodeUnknown))
	assert.False(t, HasCode(nil, CodeUnknown))
}

func TestCode_IsValid(t *testing.T) {
	for _, code := range []Code{
		CodeUnknown, CodeInternal, CodeInvalidInput,
		CodeSyntax, CodeUnexpectedToken, CodeUnexpectedEOF,
		CodeExpectedIdentifier, CodeIllegalToken, CodeIntegerRange,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig,
	} {
		assert.True(t, code.IsValid(), "code %s", code)
	}
	assert.False(t, Code("NOPE").IsValid())
}

func TestCode_Category(t *testing.T) {
	tests := []struct {
		code     Code
		expected string
	}{
		{CodeUnexpectedToken, "syntax"},
		{CodeUnexpectedEOF, "syntax"},
		{CodeExpectedIdentifier, "syntax"},
		{CodeInvalidConfig, "configuration"},
		{CodeUnknown, "generic"},
		{CodeInternal, "generic"},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.code.Category())
		})
	}
}
