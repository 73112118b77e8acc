// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors so that callers and the
//              logger can decide how loudly to report them.
// Author: msto63
// Version: v0.1.1
// Created: 2025-01-24
// Modified: 2025-02-03
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2025-02-03 v0.1.1: Severity mapping for byte utility codes, dropped alerting helpers

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a minor error such as invalid user input
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	SeverityMedium

	// SeverityHigh indicates a serious error, e.g. an unreadable input file
	SeverityHigh

	// SeverityCritical indicates the program cannot continue
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal, CodeEnvironmentError:
		return SeverityCritical

	case CodeReadFailed, CodeWriteFailed, CodeConfigError:
		return SeverityHigh

	case CodeInvalidInput, CodeNotFound, CodeOutOfRange, CodeInvalidPattern,
		CodeInvalidEscape, CodeLengthExceeded, CodeEncodingError,
		CodeValidationFailed, CodeInvalidFormat, CodeInvalidConfig:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
