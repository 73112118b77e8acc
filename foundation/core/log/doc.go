// File: doc.go
// Title: bytex Structured Logging
// Description: Leveled, structured logging with JSON, text and colored
//              console output.
// Author: msto63
// Version: v0.2.1
// Created: 2025-01-24
// Modified: 2025-02-03
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2025-02-03 v0.2.0: Console colors via gookit/color, sorted fields, dropped async mode
// - 2025-02-03 v0.2.1: Package documentation in gofmt doc comment syntax

// Package log provides structured logging for the bytex tool.
//
// Loggers are immutable; every With* call returns a configured copy.
// Errors from the bytex error package are logged with their code,
// operation and details.
//
// # Features
//
//   - Structured logging with JSON, text and console formats
//   - Level filtering from trace to fatal
//   - Correlation IDs and persistent context fields
//   - LogError maps error severity to a log level
//   - Timers for per-operation durations
//
// # Usage
//
//	logger := log.New().
//		WithLevel(log.LevelDebug).
//		WithFormat(log.FormatConsole).
//		WithCorrelationID(id)
//
//	logger.Info("input read", log.Int("bytes", n))
//
//	timer := logger.StartTimer("escape")
//	out := bytex.Escape(in, '"')
//	timer.WithField("bytes_out", len(out)).Stop()
package log
