// File: utils.go
// Title: Shared Error Handling Utilities
// Description: Fluent error builder and the bytex specific constructors
//              used by the library and the CLI.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-02-03
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation
// - 2025-02-03 v0.2.0: bytex constructors, explicit severity tracking

package errors

import (
	"fmt"

	mdwerror "github.com/msto63/bytex/foundation/core/error"
)

// ErrorBuilder provides a fluent interface for building standardized errors
type ErrorBuilder struct {
	module      string
	operation   string
	message     string
	cause       error
	details     map[string]interface{}
	severity    mdwerror.Severity
	severitySet bool
	code        mdwerror.Code
}

// NewErrorBuilder creates a new error builder for the specified module
func NewErrorBuilder(module string) *ErrorBuilder {
	return &ErrorBuilder{
		module:  module,
		details: make(map[string]interface{}),
	}
}

// Operation sets the operation name for the error
func (eb *ErrorBuilder) Operation(operation string) *ErrorBuilder {
	eb.operation = operation
	return eb
}

// Message sets the error message
func (eb *ErrorBuilder) Message(message string) *ErrorBuilder {
	eb.message = message
	return eb
}

// Messagef sets the error message with formatting
func (eb *ErrorBuilder) Messagef(format string, args ...interface{}) *ErrorBuilder {
	eb.message = fmt.Sprintf(format, args...)
	return eb
}

// Cause sets the underlying cause of the error
func (eb *ErrorBuilder) Cause(cause error) *ErrorBuilder {
	eb.cause = cause
	return eb
}

// Detail adds a detail key-value pair to the error
func (eb *ErrorBuilder) Detail(key string, value interface{}) *ErrorBuilder {
	eb.details[key] = value
	return eb
}

// Details sets multiple details at once
func (eb *ErrorBuilder) Details(details map[string]interface{}) *ErrorBuilder {
	for k, v := range details {
		eb.details[k] = v
	}
	return eb
}

// Severity sets the error severity
func (eb *ErrorBuilder) Severity(severity mdwerror.Severity) *ErrorBuilder {
	eb.severity = severity
	eb.severitySet = true
	return eb
}

// Code sets the error code
func (eb *ErrorBuilder) Code(code mdwerror.Code) *ErrorBuilder {
	eb.code = code
	return eb
}

// Build creates the final error
func (eb *ErrorBuilder) Build() *mdwerror.Error {
	code := eb.code
	if code == "" {
		code = getModuleErrorCode(eb.module, eb.operation)
	}

	message := eb.message
	if message == "" {
		if eb.operation != "" {
			message = fmt.Sprintf("%s.%s failed", eb.module, eb.operation)
		} else {
			message = fmt.Sprintf("%s operation failed", eb.module)
		}
	}

	var err *mdwerror.Error
	if eb.cause != nil {
		err = mdwerror.Wrap(eb.cause, message)
	} else {
		err = mdwerror.New(message)
	}

	err = err.WithCode(code).
		WithDetails(eb.details).
		WithDetail("module", eb.module)
	if eb.operation != "" {
		err = err.WithOperation(eb.operation).WithDetail("operation", eb.operation)
	}
	if eb.severitySet {
		err = err.WithSeverity(eb.severity)
	}
	return err
}

// InvalidInput creates a standardized invalid input error
func InvalidInput(module, operation string, input interface{}, expected string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Code(mdwerror.CodeInvalidInput).
		Messagef("invalid input for %s.%s: expected %s", module, operation, expected).
		Detail("input", input).
		Detail("expected", expected).
		Build()
}

// OutOfRange creates a standardized out-of-range error
func OutOfRange(module, operation string, value, min, max interface{}) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Code(mdwerror.CodeOutOfRange).
		Messagef("value %v out of range [%v, %v]", value, min, max).
		Detail("value", value).
		Detail("min", min).
		Detail("max", max).
		Build()
}

// OperationFailed wraps cause as a failure of module.operation
func OperationFailed(module, operation string, cause error) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Cause(cause).
		Build()
}

// BytexInvalidInput reports an argument the operation cannot accept
func BytexInvalidInput(operation string, input interface{}, expected string) *mdwerror.Error {
	return InvalidInput(ModuleBytex, operation, input, expected)
}

// BytexOutOfRange reports a byte range that does not fit the input
func BytexOutOfRange(operation string, value, min, max int) *mdwerror.Error {
	return OutOfRange(ModuleBytex, operation, value, min, max)
}

// BytexInvalidPattern reports a pattern that could not be compiled
func BytexInvalidPattern(operation, pattern string, cause error) *mdwerror.Error {
	b := NewErrorBuilder(ModuleBytex).
		Operation(operation).
		Code(mdwerror.CodeInvalidPattern).
		Detail("pattern", pattern)
	if cause != nil {
		return b.Cause(cause).Messagef("invalid pattern %q", pattern).Build()
	}
	return b.Messagef("invalid pattern %q", pattern).Build()
}

// BytexInvalidEscape reports a malformed escape sequence at offset
func BytexInvalidEscape(offset int, sequence []byte, reason string) *mdwerror.Error {
	return NewErrorBuilder(ModuleBytex).
		Operation("unescape").
		Code(mdwerror.CodeInvalidEscape).
		Messagef("invalid escape %q at offset %d: %s", sequence, offset, reason).
		Detail("offset", offset).
		Detail("sequence", string(sequence)).
		Build()
}

// BytexLengthExceeded reports a result that would not fit in memory
func BytexLengthExceeded(operation string, size, count int) *mdwerror.Error {
	return NewErrorBuilder(ModuleBytex).
		Operation(operation).
		Code(mdwerror.CodeLengthExceeded).
		Messagef("result of %d x %d bytes exceeds the maximum length", count, size).
		Detail("size", size).
		Detail("count", count).
		Build()
}

// ConfigError wraps a configuration failure for the given file
func ConfigError(operation, path string, cause error) *mdwerror.Error {
	return NewErrorBuilder(ModuleConfig).
		Operation(operation).
		Cause(cause).
		Messagef("config %s failed for %s", operation, path).
		Detail("path", path).
		Build()
}
