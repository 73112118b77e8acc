// ============================================================================
// bytex - Byte-Sequence Text Tool
// ============================================================================
//
// Package:     config
// Description: Typed settings of the bytex command, resolved from config
//              files, BYTEX_* environment variables and built-in defaults
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package config

import (
	"os"
	"strings"

	fconfig "github.com/msto63/bytex/foundation/core/config"
)

// EnvPrefix is the prefix of all environment overrides
const EnvPrefix = "BYTEX"

// EnvConfigPath names an explicit config file when --config is not given
const EnvConfigPath = "BYTEX_CONFIG"

// Output formats for command results
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputCBOR = "cbor"
	OutputDump = "dump"
)

// Settings holds the complete command configuration
type Settings struct {
	Log       LogSettings
	Output    OutputSettings
	Escape    EscapeSettings
	Printable PrintableSettings

	// Source is the file the settings were read from, empty for defaults
	Source string
}

// LogSettings controls diagnostic output on stderr
type LogSettings struct {
	Level  string `config:"level"`
	Format string `config:"format"`
}

// OutputSettings controls how results are written to stdout
type OutputSettings struct {
	Format string `config:"format"`
}

// EscapeSettings controls the escape command
type EscapeSettings struct {
	Quote string `config:"quote"`
	Wrap  bool   `config:"wrap"`
}

// PrintableSettings controls the printable command
type PrintableSettings struct {
	Limit int `config:"limit"`
}

// Defaults returns the built-in configuration values
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"log": map[string]interface{}{
			"level":  "warn",
			"format": "console",
		},
		"output": map[string]interface{}{
			"format": OutputText,
		},
		"escape": map[string]interface{}{
			"quote": `"`,
			"wrap":  false,
		},
		"printable": map[string]interface{}{
			"limit": 0,
		},
	}
}

func intPtr(n int) *int { return &n }

// Rules returns the validation rules applied to every loaded configuration
func Rules() fconfig.ValidationRules {
	return fconfig.ValidationRules{
		"log.level":       {Type: "string", OneOf: []string{"trace", "debug", "info", "warn", "error", "fatal"}},
		"log.format":      {Type: "string", OneOf: []string{"console", "text", "json"}},
		"output.format":   {Type: "string", OneOf: []string{OutputText, OutputJSON, OutputCBOR, OutputDump}},
		"escape.quote":    {Type: "string", Max: intPtr(1)},
		"escape.wrap":     {Type: "bool"},
		"printable.limit": {Type: "int", Min: intPtr(0)},
	}
}

// Load resolves settings. An explicit path wins, then $BYTEX_CONFIG,
// then file discovery; without any file the defaults are used.
func Load(path string) (*Settings, error) {
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	path = os.ExpandEnv(path)

	var (
		cfg *fconfig.Config
		err error
	)
	if path != "" {
		cfg, err = fconfig.LoadWithOptions(path, fconfig.LoadOptions{
			Format:    fconfig.FormatAuto,
			EnvPrefix: EnvPrefix,
			Defaults:  Defaults(),
		})
	} else {
		opts := fconfig.DefaultDiscoveryOptions()
		opts.Defaults = Defaults()
		cfg, err = fconfig.Discover(opts)
	}
	if err != nil {
		return nil, err
	}
	return FromConfig(cfg)
}

// FromConfig validates cfg and binds it onto Settings
func FromConfig(cfg *fconfig.Config) (*Settings, error) {
	if err := cfg.Validate(Rules()).Err(); err != nil {
		return nil, err
	}

	s := &Settings{Source: cfg.FilePath()}
	sections := []struct {
		prefix string
		target interface{}
	}{
		{"log", &s.Log},
		{"output", &s.Output},
		{"escape", &s.Escape},
		{"printable", &s.Printable},
	}
	for _, sec := range sections {
		if err := cfg.BindToStruct(sec.prefix, sec.target); err != nil {
			return nil, err
		}
	}

	s.Log.Level = strings.ToLower(s.Log.Level)
	s.Log.Format = strings.ToLower(s.Log.Format)
	s.Output.Format = strings.ToLower(s.Output.Format)
	return s, nil
}

// QuoteByte returns the escape delimiter, 0 when none is configured
func (e EscapeSettings) QuoteByte() byte {
	if e.Quote == "" {
		return 0
	}
	return e.Quote[0]
}
