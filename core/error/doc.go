// File: doc.go
// Title: Core Error Package Documentation
// Description: Package documentation for the structured error handling
//              used across the Mink front end.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-01
// Modified: 2025-03-01
//
// Change History:
// - 2025-03-01 v0.1.0: Initial documentation

/*
Package error provides structured error handling for the Mink front end.

Errors carry a classification code, optional key-value details (token
positions, expected and actual tokens), and an operation name. They remain
fully compatible with the standard library errors package: Wrap preserves
the chain for errors.Is and errors.As, and GetCode extracts the code from
arbitrary errors.
*/
package error
