// ============================================================================
// bytex - Byte-Sequence Text Tool
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating the command's loggers
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"

	"github.com/google/uuid"

	mdwlog "github.com/msto63/bytex/foundation/core/log"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Name of the logger, usually the subcommand
	Name string

	// Log level (trace, debug, info, warn, error, fatal)
	Level string

	// Output format: console, text or json (default: console)
	Format string

	// Correlation ID attached to every entry; generated when empty
	CorrelationID string

	// Destination, stderr when nil so stdout carries only results
	Output io.Writer
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(name string) LoggerConfig {
	return LoggerConfig{
		Name:   name,
		Level:  "warn",
		Format: "console",
	}
}

// NewLogger creates a foundation logger from cfg. Unknown levels and
// formats fall back to warn and console.
func NewLogger(cfg LoggerConfig) *mdwlog.Logger {
	level, err := mdwlog.ParseLevel(cfg.Level)
	if err != nil {
		level = mdwlog.DefaultLevel()
	}

	format, _ := mdwlog.ParseFormat(cfg.Format)

	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}

	correlationID := cfg.CorrelationID
	if correlationID == "" {
		correlationID = NewCorrelationID()
	}

	return mdwlog.NewWithConfig(mdwlog.Config{
		Level:  level,
		Format: format,
		Output: output,
		Name:   cfg.Name,
	}).WithCorrelationID(correlationID)
}

// NewSimpleLogger creates a logger with the default configuration
func NewSimpleLogger(name string) *mdwlog.Logger {
	return NewLogger(DefaultLoggerConfig(name))
}

// NewCorrelationID returns a fresh random correlation ID
func NewCorrelationID() string {
	return uuid.NewString()
}
