// File: format.go
// Title: Log Format Definitions
// Description: Defines output formats for log messages: JSON for machine
//              consumption, plain text, and a colored console format for
//              interactive use.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-02-03
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with multiple output formats
// - 2025-02-03 v0.2.0: Deterministic field order, gookit/color console output, dropped logfmt

package log

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/gookit/color"
)

// Format represents the output format for log messages
type Format int

const (
	// FormatJSON outputs one JSON object per line
	FormatJSON Format = iota

	// FormatText outputs human-readable text logs
	FormatText

	// FormatConsole outputs colored text logs
	FormatConsole
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatText:
		return "text"
	case FormatConsole:
		return "console"
	default:
		return "unknown"
	}
}

// ParseFormat parses a string into a log format
func ParseFormat(format string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return FormatJSON, nil
	case "text":
		return FormatText, nil
	case "console":
		return FormatConsole, nil
	default:
		return FormatConsole, &ParseError{
			Input: format,
			Type:  "format",
		}
	}
}

// Formatter defines the interface for log formatters
type Formatter interface {
	Format(entry *Entry) ([]byte, error)
}

// JSONFormatter formats log entries as JSON
type JSONFormatter struct {
	TimestampFormat string
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{TimestampFormat: time.RFC3339}
}

// Format formats a log entry as JSON
func (f *JSONFormatter) Format(entry *Entry) ([]byte, error) {
	data := make(map[string]interface{}, len(entry.Fields)+6)

	for k, v := range entry.Fields {
		if err, ok := v.(error); ok {
			v = err.Error()
		}
		data[k] = v
	}

	data["timestamp"] = entry.Timestamp.Format(f.TimestampFormat)
	data["level"] = entry.Level.String()
	data["message"] = entry.Message

	if entry.Logger != "" {
		data["logger"] = entry.Logger
	}
	if entry.CorrelationID != "" {
		data["correlation_id"] = entry.CorrelationID
	}

	if entry.Error != nil {
		data["error"] = entry.Error.Error()
		// Structured errors contribute their code and details
		if m, ok := entry.Error.(json.Marshaler); ok {
			if raw, err := m.MarshalJSON(); err == nil {
				var obj map[string]interface{}
				if json.Unmarshal(raw, &obj) == nil {
					data["error_details"] = obj
				}
			}
		}
	}

	if entry.Duration > 0 {
		data["duration_ms"] = float64(entry.Duration.Nanoseconds()) / 1e6
	}

	out, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}

// TextFormatter formats log entries as human-readable text
type TextFormatter struct {
	TimestampFormat  string
	DisableTimestamp bool
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{TimestampFormat: "15:04:05.000"}
}

// Format formats a log entry as text
func (f *TextFormatter) Format(entry *Entry) ([]byte, error) {
	return []byte(f.line(entry, plainStyle) + "\n"), nil
}

// lineStyle decorates the individual parts of a text line
type lineStyle struct {
	level func(Level, string) string
	meta  func(string) string
}

var plainStyle = lineStyle{
	level: func(_ Level, s string) string { return s },
	meta:  func(s string) string { return s },
}

func (f *TextFormatter) line(entry *Entry, style lineStyle) string {
	var parts []string

	if !f.DisableTimestamp {
		parts = append(parts, style.meta(entry.Timestamp.Format(f.TimestampFormat)))
	}
	parts = append(parts, style.level(entry.Level, "["+entry.Level.ShortString()+"]"))

	if entry.Logger != "" {
		parts = append(parts, style.meta("{"+entry.Logger+"}"))
	}
	if entry.CorrelationID != "" {
		parts = append(parts, style.meta("("+entry.CorrelationID+")"))
	}

	parts = append(parts, entry.Message)

	for _, k := range entry.Fields.SortedKeys() {
		parts = append(parts, style.meta(fmt.Sprintf("%s=%v", k, entry.Fields[k])))
	}

	if entry.Error != nil {
		parts = append(parts, style.meta(fmt.Sprintf("error=%q", entry.Error.Error())))
	}
	if entry.Duration > 0 {
		parts = append(parts, style.meta("duration="+entry.Duration.String()))
	}

	return strings.Join(parts, " ")
}

// ConsoleFormatter formats log entries for terminals, coloring the level
// tag and dimming metadata
type ConsoleFormatter struct {
	DisableColors bool
	*TextFormatter
}

// NewConsoleFormatter creates a new console formatter
func NewConsoleFormatter() *ConsoleFormatter {
	return &ConsoleFormatter{TextFormatter: NewTextFormatter()}
}

// Format formats a log entry for console output
func (f *ConsoleFormatter) Format(entry *Entry) ([]byte, error) {
	if f.DisableColors {
		return f.TextFormatter.Format(entry)
	}
	style := lineStyle{
		level: func(l Level, s string) string { return l.Color().Render(s) },
		meta:  func(s string) string { return color.FgDarkGray.Render(s) },
	}
	return []byte(f.line(entry, style) + "\n"), nil
}

// GetFormatter returns a formatter for the specified format
func GetFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return NewJSONFormatter()
	case FormatText:
		return NewTextFormatter()
	default:
		return NewConsoleFormatter()
	}
}
