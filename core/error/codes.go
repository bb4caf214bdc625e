// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for consistent error
//              classification across the Mink front end. These codes enable
//              structured error handling in the parser, configuration
//              loading, and the surrounding tooling.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-01
// Modified: 2025-03-01
//
// Change History:
// - 2025-03-01 v0.1.0: Initial implementation with core error codes

package error

// Code represents a structured error code for categorizing errors
type Code string

// Core error codes for the Mink front end
const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Syntax codes recorded by the parser
	CodeSyntax             Code = "SYNTAX"
	CodeUnexpectedToken    Code = "UNEXPECTED_TOKEN"
	CodeUnexpectedEOF      Code = "UNEXPECTED_EOF"
	CodeExpectedIdentifier Code = "EXPECTED_IDENTIFIER"
	CodeIllegalToken       Code = "ILLEGAL_TOKEN"
	CodeIntegerRange       Code = "INTEGER_RANGE"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeInvalidInput,
		CodeSyntax, CodeUnexpectedToken, CodeUnexpectedEOF,
		CodeExpectedIdentifier, CodeIllegalToken, CodeIntegerRange,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeSyntax, CodeUnexpectedToken, CodeUnexpectedEOF,
		CodeExpectedIdentifier, CodeIllegalToken, CodeIntegerRange:
		return "syntax"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}
