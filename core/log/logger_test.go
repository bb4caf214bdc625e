// File: logger_test.go
// Title: Core Logger Unit Tests
// Description: Tests level filtering, contextual fields, clone semantics,
//              and the text and JSON output formats.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-01
// Modified: 2025-03-01
//
// Change History:
// - 2025-03-01 v0.1.0: Initial test suite

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{
		Level:  LevelWarn,
		Format: FormatText,
		Output: &buf,
	})

	logger.Debug("not logged")
	logger.Info("not logged either")
	logger.Warn("logged")

	output := buf.String()
	assert.NotContains(t, output, "not logged")
	assert.Contains(t, output, "logged")
	assert.Contains(t, output, "WRN")
}

func TestLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{
		Level:  LevelDebug,
		Format: FormatText,
		Output: &buf,
		Name:   "parser",
	}).WithField("component", "lexer")

	logger.Info("scanning", Fields{"tokens": 12})

	output := buf.String()
	assert.Contains(t, output, "[parser]")
	assert.Contains(t, output, "component=lexer")
	assert.Contains(t, output, "tokens=12")
	assert.Contains(t, output, "scanning")
}

func TestLogger_CloneIsolation(t *testing.T) {
	var buf bytes.Buffer
	parent := NewWithConfig(Config{Level: LevelInfo, Output: &buf})
	child := parent.WithField("child", true).WithLevel(LevelDebug)

	assert.Equal(t, LevelInfo, parent.GetLevel())
	assert.Equal(t, LevelDebug, child.GetLevel())

	parent.Info("parent message")
	assert.NotContains(t, buf.String(), "child=true")
}

func TestLogger_ErrorWithErr(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelDebug, Output: &buf})

	logger.ErrorWithErr("parse failed", errors.New("unexpected token"))

	output := buf.String()
	assert.Contains(t, output, "parse failed")
	assert.Contains(t, output, `error="unexpected token"`)
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{
		Level:  LevelDebug,
		Format: FormatJSON,
		Output: &buf,
		Name:   "repl",
	})

	logger.Info("line parsed", Fields{"statements": 3})

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &payload))
	assert.Equal(t, "info", payload["level"])
	assert.Equal(t, "line parsed", payload["message"])
	assert.Equal(t, "repl", payload["logger"])
	assert.Equal(t, float64(3), payload["statements"])
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
		wantErr  bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{" warn ", LevelWarn, false},
		{"error", LevelError, false},
		{"trace", LevelTrace, false},
		{"fatal", LevelFatal, false},
		{"verbose", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, err := ParseLevel(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, level)
		})
	}
}

func TestParseFormat(t *testing.T) {
	format, err := ParseFormat("json")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, format)

	format, err = ParseFormat("text")
	require.NoError(t, err)
	assert.Equal(t, FormatText, format)

	_, err = ParseFormat("xml")
	require.Error(t, err)
}

func TestLevel_Strings(t *testing.T) {
	assert.Equal(t, "debug", LevelDebug.String())
	assert.Equal(t, "DBG", LevelDebug.ShortString())
	assert.True(t, LevelError.ShouldLog(LevelInfo))
	assert.False(t, LevelDebug.ShouldLog(LevelInfo))
	assert.Len(t, AllLevels(), 6)
}
