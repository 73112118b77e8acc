// File: standards.go
// Title: Error Standards for bytex
// Description: Module identifiers and the mapping from operations to error
//              codes shared by all bytex packages.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-02-03
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for error standardization
// - 2025-02-03 v0.2.0: Reduced to bytex, config and cli modules; errors are built with ErrorBuilder

package errors

import (
	"fmt"
	"strings"

	mdwerror "github.com/msto63/bytex/foundation/core/error"
)

// Module identifiers for error categorization
const (
	ModuleBytex  = "bytex"
	ModuleConfig = "config"
	ModuleCLI    = "cli"
)

// getModuleErrorCode derives a code from the module and operation name
func getModuleErrorCode(module, operation string) mdwerror.Code {
	switch module {
	case ModuleBytex:
		return getBytexErrorCode(operation)
	case ModuleConfig:
		return mdwerror.CodeConfigError
	case ModuleCLI:
		switch {
		case strings.HasPrefix(operation, "read"):
			return mdwerror.CodeReadFailed
		case strings.HasPrefix(operation, "write"):
			return mdwerror.CodeWriteFailed
		}
		return mdwerror.CodeInvalidInput
	default:
		return mdwerror.CodeUnknown
	}
}

func getBytexErrorCode(operation string) mdwerror.Code {
	switch operation {
	case "part", "slice":
		return mdwerror.CodeOutOfRange
	case "unescape":
		return mdwerror.CodeInvalidEscape
	case "compile", "literal", "match":
		return mdwerror.CodeInvalidPattern
	case "repeat":
		return mdwerror.CodeLengthExceeded
	default:
		return mdwerror.CodeInvalidInput
	}
}

// IsModuleError checks if an error belongs to a specific module
func IsModuleError(err error, module string) bool {
	return ExtractModule(err) == module
}

// ExtractModule returns the module recorded on a standardized error
func ExtractModule(err error) string {
	return detailString(err, "module")
}

// ExtractOperation returns the operation recorded on a standardized error
func ExtractOperation(err error) string {
	return detailString(err, "operation")
}

// ExtractDetails returns the details of a standardized error, or nil
func ExtractDetails(err error) map[string]interface{} {
	if e, ok := mdwerror.As(err); ok {
		return e.Details()
	}
	return nil
}

// IsModuleOperation checks module and operation at once
func IsModuleOperation(err error, module, operation string) bool {
	return ExtractModule(err) == module && ExtractOperation(err) == operation
}

func detailString(err error, key string) string {
	e, ok := mdwerror.As(err)
	if !ok {
		return ""
	}
	v, ok := e.Detail(key)
	if !ok {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
