// File: doc.go
// Title: Core Config Package Documentation
// Description: Package documentation for Mink configuration handling.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-01
// Modified: 2025-03-01
//
// Change History:
// - 2025-03-01 v0.1.0: Initial documentation

/*
Package config loads Mink configuration from TOML or YAML files.

Every setting carries a default, so a missing file or an empty path yields
a fully usable configuration. Loaded files merge over the defaults and are
validated before use.
*/
package config
