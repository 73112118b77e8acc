// File: doc.go
// Title: bytex Error Handling Framework
// Description: Structured error type with error codes, severity levels,
//              details and stack traces.
// Author: msto63
// Version: v0.2.1
// Created: 2025-01-24
// Modified: 2025-02-03
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2025-02-03 v0.2.0: Reduced code set to the byte utility domain
// - 2025-02-03 v0.2.1: Package documentation in gofmt doc comment syntax

// Package error provides structured error handling for the bytex library.
//
// Errors returned by the bytex utilities, the configuration loader and the
// command line tool are all built from the Error type defined here.
//
// # Features
//
//   - Error wrapping with additional metadata
//   - Structured error codes for consistent classification
//   - Stack trace capture for debugging
//   - JSON marshaling for structured logging
//   - Error severity levels and categorization
//
// # Usage
//
//	import mdwerror "github.com/msto63/bytex/foundation/core/error"
//
//	err := mdwerror.New("escape sequence is incomplete").
//		WithCode(mdwerror.CodeInvalidEscape).
//		WithOperation("unescape").
//		WithDetail("offset", 12)
//
//	if mdwerror.HasCode(err, mdwerror.CodeInvalidEscape) {
//		// report the offending offset
//	}
package error
