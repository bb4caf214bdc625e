// File: error.go
// Title: Core Error Implementation
// Description: Implements the main Error type with contextual information
//              and metadata. Provides a structured error handling system that
//              maintains compatibility with Go's standard error interface
//              while carrying codes and details for diagnostics.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-01
// Modified: 2025-03-01
//
// Change History:
// - 2025-03-01 v0.1.0: Initial implementation with contextual errors

package error

import (
	"errors"
	"fmt"
	"time"
)

// Error represents a structured error with a code, details, and metadata
type Error struct {
	// Core error information
	message   string
	cause     error
	code      Code
	timestamp time.Time

	// Context and metadata
	details   map[string]interface{}
	operation string
}

// New creates a new Error with the given message
func New(message string) *Error {
	return &Error{
		message:   message,
		code:      CodeUnknown,
		timestamp: time.Now(),
		details:   make(map[string]interface{}),
	}
}

// Newf creates a new Error with a formatted message
func Newf(format string, args ...interface{}) *Error {
	return New(fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error with additional context. If err is already
// a structured Error its code and details are preserved.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := &Error{
		message:   message,
		cause:     err,
		code:      CodeUnknown,
		timestamp: time.Now(),
		details:   make(map[string]interface{}),
	}

	var structured *Error
	if errors.As(err, &structured) {
		wrapped.code = structured.code
		wrapped.operation = structured.operation
		for k, v := range structured.details {
			wrapped.details[k] = v
		}
	}

	return wrapped
}

// Error implements the standard error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s", e.message, e.cause.Error())
	}
	return e.message
}

// Unwrap returns the underlying cause for error unwrapping
func (e *Error) Unwrap() error {
	return e.cause
}

// WithCode sets the error code
func (e *Error) WithCode(code Code) *Error {
	e.code = code
	return e
}

// WithDetail adds a key-value detail to the error
func (e *Error) WithDetail(key string, value interface{}) *Error {
	e.details[key] = value
	return e
}

// WithOperation records the operation during which the error occurred
func (e *Error) WithOperation(operation string) *Error {
	e.operation = operation
	return e
}

// Code returns the error code
func (e *Error) Code() Code {
	return e.code
}

// Details returns the error details map
func (e *Error) Details() map[string]interface{} {
	return e.details
}

// Operation returns the recorded operation
func (e *Error) Operation() string {
	return e.operation
}

// Timestamp returns the time the error was created
func (e *Error) Timestamp() time.Time {
	return e.timestamp
}

// Message returns the error message without the cause chain
func (e *Error) Message() string {
	return e.message
}

// GetCode extracts the code from any error. Standard errors report
// CodeUnknown.
func GetCode(err error) Code {
	var structured *Error
	if errors.As(err, &structured) {
		return structured.code
	}
	return CodeUnknown
}

// HasCode reports whether the error carries the given code anywhere in
// its chain. Every structured error in the chain is consulted, so an inner
// code survives being wrapped and recoded.
func HasCode(err error, code Code) bool {
	for err != nil {
		var structured *Error
		if !errors.As(err, &structured) {
			return false
		}
		if structured.code == code {
			return true
		}
		err = structured.cause
	}
	return false
}
