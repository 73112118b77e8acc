// File: utils_test.go
// Title: Shared Error Handling Utilities Tests
// Description: Tests for the error builder and the bytex constructors.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-02-03

package errors

import (
	"errors"
	"strings"
	"testing"

	mdwerror "github.com/msto63/bytex/foundation/core/error"
)

func TestErrorBuilder(t *testing.T) {
	t.Run("basic error creation", func(t *testing.T) {
		err := NewErrorBuilder("testmodule").
			Operation("test_op").
			Message("test error").
			Detail("key", "value").
			Severity(mdwerror.SeverityHigh).
			Build()

		if err == nil {
			t.Fatal("Expected error, got nil")
		}

		details := err.Details()
		if details["module"] != "testmodule" {
			t.Errorf("Expected module 'testmodule', got %v", details["module"])
		}
		if details["operation"] != "test_op" {
			t.Errorf("Expected operation 'test_op', got %v", details["operation"])
		}
		if details["key"] != "value" {
			t.Errorf("Expected detail key 'value', got %v", details["key"])
		}
		if err.Severity() != mdwerror.SeverityHigh {
			t.Errorf("Expected high severity, got %v", err.Severity())
		}
	})

	t.Run("error with cause", func(t *testing.T) {
		cause := errors.New("underlying error")
		err := NewErrorBuilder("testmodule").
			Operation("test_op").
			Cause(cause).
			Build()

		if !errors.Is(err, cause) {
			t.Error("Expected error to wrap the cause")
		}
	})

	t.Run("auto-generated message", func(t *testing.T) {
		err := NewErrorBuilder("testmodule").
			Operation("test_op").
			Build()

		expected := "testmodule.test_op failed"
		if err.Error() != expected {
			t.Errorf("Expected message '%s', got '%s'", expected, err.Error())
		}
	})

	t.Run("code derived from operation", func(t *testing.T) {
		tests := []struct {
			module    string
			operation string
			want      mdwerror.Code
		}{
			{ModuleBytex, "part", mdwerror.CodeOutOfRange},
			{ModuleBytex, "unescape", mdwerror.CodeInvalidEscape},
			{ModuleBytex, "compile", mdwerror.CodeInvalidPattern},
			{ModuleBytex, "repeat", mdwerror.CodeLengthExceeded},
			{ModuleBytex, "split", mdwerror.CodeInvalidInput},
			{ModuleConfig, "load", mdwerror.CodeConfigError},
			{ModuleCLI, "read_input", mdwerror.CodeReadFailed},
			{ModuleCLI, "write_output", mdwerror.CodeWriteFailed},
			{"other", "x", mdwerror.CodeUnknown},
		}
		for _, tt := range tests {
			err := NewErrorBuilder(tt.module).Operation(tt.operation).Build()
			if err.Code() != tt.want {
				t.Errorf("%s.%s code = %v, want %v", tt.module, tt.operation, err.Code(), tt.want)
			}
		}
	})
}

func TestBytexConstructors(t *testing.T) {
	t.Run("out of range", func(t *testing.T) {
		err := BytexOutOfRange("part", 12, 0, 10)
		if !mdwerror.HasCode(err, mdwerror.CodeOutOfRange) {
			t.Errorf("code = %v", err.Code())
		}
		if !IsModuleOperation(err, ModuleBytex, "part") {
			t.Errorf("module/operation = %q/%q", ExtractModule(err), ExtractOperation(err))
		}
		if ExtractDetails(err)["value"] != 12 {
			t.Errorf("value detail = %v", ExtractDetails(err)["value"])
		}
	})

	t.Run("invalid escape", func(t *testing.T) {
		err := BytexInvalidEscape(4, []byte(`\xZZ`), "bad hex digit")
		if err.Code() != mdwerror.CodeInvalidEscape {
			t.Errorf("code = %v", err.Code())
		}
		if !strings.Contains(err.Error(), "offset 4") {
			t.Errorf("message = %q", err.Error())
		}
		if err.Severity() != mdwerror.SeverityLow {
			t.Errorf("severity = %v", err.Severity())
		}
	})

	t.Run("invalid pattern keeps cause", func(t *testing.T) {
		cause := errors.New("missing closing )")
		err := BytexInvalidPattern("compile", "(a", cause)
		if !errors.Is(err, cause) {
			t.Error("cause lost")
		}
		if err.Code() != mdwerror.CodeInvalidPattern {
			t.Errorf("code = %v", err.Code())
		}
	})

	t.Run("length exceeded", func(t *testing.T) {
		err := BytexLengthExceeded("repeat", 8, 1<<60)
		if err.Code() != mdwerror.CodeLengthExceeded {
			t.Errorf("code = %v", err.Code())
		}
	})

	t.Run("config error", func(t *testing.T) {
		err := ConfigError("load", "/tmp/bytex.toml", errors.New("eof"))
		if !IsModuleError(err, ModuleConfig) {
			t.Error("expected config module")
		}
		if err.Code() != mdwerror.CodeConfigError {
			t.Errorf("code = %v", err.Code())
		}
	})
}

func TestOperationFailed(t *testing.T) {
	t.Run("code from module and operation", func(t *testing.T) {
		cause := errors.New("disk full")
		err := OperationFailed(ModuleCLI, "write_output", cause)
		if err.Code() != mdwerror.CodeWriteFailed {
			t.Errorf("code = %v; want %v", err.Code(), mdwerror.CodeWriteFailed)
		}
		if !errors.Is(err, cause) {
			t.Error("cause should be reachable through the chain")
		}
		if !strings.HasPrefix(err.Error(), "cli.write_output failed: ") {
			t.Errorf("message = %q", err.Error())
		}
	})

	t.Run("wrapped bytex error", func(t *testing.T) {
		inner := BytexInvalidEscape(4, []byte(`\xZZ`), "bad hex digit")
		err := OperationFailed(ModuleBytex, "unescape", inner)
		if !mdwerror.HasCode(err, mdwerror.CodeInvalidEscape) {
			t.Errorf("code = %v", mdwerror.GetCode(err))
		}
		if !IsModuleOperation(err, ModuleBytex, "unescape") {
			t.Error("expected bytex.unescape")
		}
	})
}

func TestExtractFromPlainError(t *testing.T) {
	err := errors.New("plain")
	if ExtractModule(err) != "" || ExtractOperation(err) != "" {
		t.Error("plain errors have no module or operation")
	}
	if ExtractDetails(err) != nil {
		t.Error("plain errors have no details")
	}
}
