// File: format.go
// Title: Log Output Formatters
// Description: Implements text and JSON formatters for log entries. The
//              text formatter targets human consumption on a terminal, the
//              JSON formatter targets machine processing.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-01
// Modified: 2025-03-01
//
// Change History:
// - 2025-03-01 v0.1.0: Initial text and JSON formatters

package log

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Format identifies an output format for log entries
type Format string

const (
	// FormatText renders entries as human-readable lines
	FormatText Format = "text"

	// FormatJSON renders entries as one JSON object per line
	FormatJSON Format = "json"
)

// ParseFormat parses a string into a log format
func ParseFormat(format string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "text", "console":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatText, fmt.Errorf("invalid format: %s", format)
	}
}

// Formatter renders a log entry into bytes ready for output
type Formatter interface {
	Format(entry *Entry) ([]byte, error)
}

// GetFormatter returns the formatter for the given format
func GetFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return NewJSONFormatter()
	default:
		return NewTextFormatter()
	}
}

// TextFormatter renders entries as single human-readable lines
type TextFormatter struct {
	// TimestampFormat controls timestamp rendering (default: RFC3339-like
	// with milliseconds)
	TimestampFormat string
}

// NewTextFormatter creates a text formatter with default settings
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{
		TimestampFormat: "2006-01-02T15:04:05.000",
	}
}

// Format implements the Formatter interface
func (f *TextFormatter) Format(entry *Entry) ([]byte, error) {
	var b strings.Builder

	b.WriteString(entry.Timestamp.Format(f.TimestampFormat))
	b.WriteString(" ")
	b.WriteString(entry.Level.ShortString())

	if entry.Logger != "" {
		b.WriteString(" [")
		b.WriteString(entry.Logger)
		b.WriteString("]")
	}

	b.WriteString(" ")
	b.WriteString(entry.Message)

	// Deterministic field order keeps text output diffable
	if len(entry.Fields) > 0 {
		keys := make([]string, 0, len(entry.Fields))
		for k := range entry.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			b.WriteString(fmt.Sprintf(" %s=%v", k, entry.Fields[k]))
		}
	}

	if entry.Error != nil {
		b.WriteString(fmt.Sprintf(" error=%q", entry.Error.Error()))
	}

	b.WriteString("\n")
	return []byte(b.String()), nil
}

// JSONFormatter renders entries as one JSON object per line
type JSONFormatter struct{}

// NewJSONFormatter creates a JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Format implements the Formatter interface
func (f *JSONFormatter) Format(entry *Entry) ([]byte, error) {
	payload := map[string]interface{}{
		"timestamp": entry.Timestamp.Format("2006-01-02T15:04:05.000Z07:00"),
		"level":     entry.Level.String(),
		"message":   entry.Message,
	}

	if entry.Logger != "" {
		payload["logger"] = entry.Logger
	}
	for k, v := range entry.Fields {
		payload[k] = v
	}
	if entry.Error != nil {
		payload["error"] = entry.Error.Error()
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal log entry: %w", err)
	}

	return append(data, '\n'), nil
}
