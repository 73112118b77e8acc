// File: doc.go
// Title: Standardized Error Helpers
// Description: Module-scoped error constructors on top of
//              foundation/core/error.
// Author: msto63
// Version: v0.2.1
// Created: 2025-01-25
// Modified: 2025-02-03
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for error standardization
// - 2025-02-03 v0.2.0: Helpers for the bytex, config and cli modules
// - 2025-02-03 v0.2.1: Package documentation in gofmt doc comment syntax

// Package errors provides module-scoped error constructors on top of
// foundation/core/error.
//
// Every error produced by the bytex utilities carries the module and
// operation that raised it as details, plus a code derived from the kind
// of failure. The helpers here keep that shape consistent so the CLI can
// map errors to exit codes and the logger can report them with full
// context.
//
// # Usage
//
//	err := errors.BytexOutOfRange("part", start, 0, len(b))
//	errors.ExtractModule(err)    // "bytex"
//	errors.ExtractOperation(err) // "part"
package errors
