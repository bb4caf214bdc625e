// File: doc.go
// Title: Core Log Package Documentation
// Description: Package documentation for the structured logging used across
//              the Mink front end.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-01
// Modified: 2025-03-01
//
// Change History:
// - 2025-03-01 v0.1.0: Initial documentation

/*
Package log provides structured, leveled logging for the Mink front end.

Loggers carry contextual fields and render entries through pluggable text
or JSON formatters. With* methods return clones, so a package can derive a
component-scoped logger (for example WithField("component", "parser"))
without affecting its parent.
*/
package log
