// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for consistent error
//              classification across the bytex library and its CLI.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-02-03
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2025-02-03 v0.2.0: Added byte utility codes, dropped service codes

package error

// Code represents a structured error code for categorizing errors
type Code string

// Error codes used by bytex
const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Byte utility codes
	CodeOutOfRange     Code = "BYTEX_OUT_OF_RANGE"
	CodeInvalidPattern Code = "BYTEX_INVALID_PATTERN"
	CodeInvalidEscape  Code = "BYTEX_INVALID_ESCAPE"
	CodeLengthExceeded Code = "BYTEX_LENGTH_EXCEEDED"
	CodeEncodingError  Code = "BYTEX_ENCODING_ERROR"

	// Configuration and environment
	CodeConfigError      Code = "CONFIG_ERROR"
	CodeInvalidConfig    Code = "INVALID_CONFIG"
	CodeEnvironmentError Code = "ENVIRONMENT_ERROR"

	// I/O
	CodeReadFailed  Code = "READ_FAILED"
	CodeWriteFailed Code = "WRITE_FAILED"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeOutOfRange, CodeInvalidPattern, CodeInvalidEscape, CodeLengthExceeded, CodeEncodingError,
		CodeConfigError, CodeInvalidConfig, CodeEnvironmentError,
		CodeReadFailed, CodeWriteFailed,
		CodeValidationFailed, CodeInvalidFormat:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeOutOfRange, CodeInvalidPattern, CodeInvalidEscape, CodeLengthExceeded, CodeEncodingError:
		return "bytex"
	case CodeConfigError, CodeInvalidConfig, CodeEnvironmentError:
		return "configuration"
	case CodeReadFailed, CodeWriteFailed:
		return "io"
	case CodeValidationFailed, CodeInvalidFormat, CodeInvalidInput:
		return "validation"
	default:
		return "generic"
	}
}

// ExitCode returns the process exit status the CLI uses for this code
func (c Code) ExitCode() int {
	switch c.Category() {
	case "validation", "bytex":
		return 2
	case "configuration":
		return 3
	case "io":
		return 4
	default:
		return 1
	}
}
