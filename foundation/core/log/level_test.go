// File: level_test.go
// Title: Log Level Tests
// Description: Tests for log level string forms, parsing and filtering.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-02-03
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive level tests
// - 2025-02-03 v0.2.0: Adjusted to the reduced level set

package log

import (
	"testing"
)

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
		short string
	}{
		{LevelTrace, "trace", "TRC"},
		{LevelDebug, "debug", "DBG"},
		{LevelInfo, "info", "INF"},
		{LevelWarn, "warn", "WRN"},
		{LevelError, "error", "ERR"},
		{LevelFatal, "fatal", "FTL"},
		{Level(999), "unknown", "???"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.level.String(); got != tt.want {
				t.Errorf("Level.String() = %v, want %v", got, tt.want)
			}
			if got := tt.level.ShortString(); got != tt.short {
				t.Errorf("Level.ShortString() = %v, want %v", got, tt.short)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"trace", LevelTrace, false},
		{"DEBUG", LevelDebug, false},
		{" info ", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"err", LevelError, false},
		{"fatal", LevelFatal, false},
		{"verbose", LevelInfo, true},
		{"", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseLevel() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("ParseLevel() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseErrorMessage(t *testing.T) {
	_, err := ParseLevel("loud")
	if err == nil || err.Error() != "invalid level: loud" {
		t.Errorf("ParseLevel() error = %v", err)
	}
}

func TestLevelShouldLog(t *testing.T) {
	if !LevelError.ShouldLog(LevelWarn) {
		t.Error("error should pass a warn threshold")
	}
	if LevelDebug.ShouldLog(LevelInfo) {
		t.Error("debug should not pass an info threshold")
	}
	if !LevelInfo.ShouldLog(LevelInfo) {
		t.Error("a level should pass its own threshold")
	}
}

func TestAllLevelsOrdered(t *testing.T) {
	levels := AllLevels()
	for i := 1; i < len(levels); i++ {
		if levels[i] <= levels[i-1] {
			t.Errorf("AllLevels() not ascending at %d", i)
		}
	}
	if DefaultLevel() != LevelWarn {
		t.Errorf("DefaultLevel() = %v", DefaultLevel())
	}
}
