// File: config_test.go
// Title: Configuration Module Tests
// Description: Tests for TOML/YAML parsing, environment overrides, defaults,
//              discovery, validation and struct binding.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-02-03
//
// Change History:
// - 2025-01-25 v0.1.0: Initial test implementation
// - 2025-02-03 v0.2.0: Discovery, rule validation and binding tests

package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	mdwerror "github.com/msto63/bytex/foundation/core/error"
)

const tomlContent = `
[log]
level = "debug"
format = "json"

[output]
format = "cbor"

[escape]
quote = "'"
wrap = true

[printable]
limit = 64
`

const yamlContent = `
log:
  level: info
output:
  format: dump
printable:
  limit: 8
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	t.Run("TOML", func(t *testing.T) {
		cfg, err := Load(writeFile(t, dir, "bytex.toml", tomlContent))
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.Format() != FormatTOML {
			t.Errorf("Format() = %v", cfg.Format())
		}
		if got := cfg.GetString("log.level"); got != "debug" {
			t.Errorf("log.level = %q", got)
		}
		if got := cfg.GetString("escape.quote"); got != "'" {
			t.Errorf("escape.quote = %q", got)
		}
		if got := cfg.GetInt("printable.limit"); got != 64 {
			t.Errorf("printable.limit = %d", got)
		}
		if !cfg.GetBool("escape.wrap") {
			t.Error("escape.wrap should be true")
		}
	})

	t.Run("YAML", func(t *testing.T) {
		cfg, err := Load(writeFile(t, dir, "bytex.yml", yamlContent))
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.Format() != FormatYAML {
			t.Errorf("Format() = %v", cfg.Format())
		}
		if got := cfg.GetString("output.format"); got != "dump" {
			t.Errorf("output.format = %q", got)
		}
		if got := cfg.GetInt("printable.limit"); got != 8 {
			t.Errorf("printable.limit = %d", got)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "absent.toml"))
		if !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
			t.Errorf("Load() error = %v, want CodeNotFound", err)
		}
	})

	t.Run("empty path", func(t *testing.T) {
		_, err := Load("  ")
		if !mdwerror.HasCode(err, mdwerror.CodeValidationFailed) {
			t.Errorf("Load() error = %v", err)
		}
	})

	t.Run("invalid content", func(t *testing.T) {
		_, err := Load(writeFile(t, dir, "broken.toml", "[log\nlevel ="))
		if !mdwerror.HasCode(err, mdwerror.CodeInvalidConfig) {
			t.Errorf("Load() error = %v, want CodeInvalidConfig", err)
		}
	})
}

func TestDefaultsAndGetters(t *testing.T) {
	dir := t.TempDir()
	cfg, err := LoadWithOptions(writeFile(t, dir, "c.toml", tomlContent), LoadOptions{
		Format: FormatAuto,
		Defaults: map[string]interface{}{
			"log":    map[string]interface{}{"level": "warn", "color": true},
			"output": map[string]interface{}{"format": "text"},
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	if got := cfg.GetString("log.level"); got != "debug" {
		t.Errorf("file value should win over default, got %q", got)
	}
	if !cfg.GetBool("log.color") {
		t.Error("nested default should survive the merge")
	}
	if got := cfg.GetString("missing.key", "fallback"); got != "fallback" {
		t.Errorf("GetString default = %q", got)
	}
	if got := cfg.GetInt("log.level", 7); got != 7 {
		t.Errorf("GetInt on a string = %d, want default", got)
	}
	if cfg.Has("missing.key") || !cfg.Has("output.format") {
		t.Error("Has() reports wrong presence")
	}
}

func TestEnvironmentOverride(t *testing.T) {
	cfg, err := LoadFromString(tomlContent, FormatTOML)
	if err != nil {
		t.Fatal(err)
	}
	cfg = cfg.WithEnvPrefix("BYTEX")

	if got := cfg.EnvKey("output.format"); got != "BYTEX_OUTPUT_FORMAT" {
		t.Errorf("EnvKey() = %q", got)
	}

	t.Setenv("BYTEX_OUTPUT_FORMAT", "json")
	t.Setenv("BYTEX_PRINTABLE_LIMIT", "3")
	t.Setenv("BYTEX_ESCAPE_WRAP", "false")

	if got := cfg.GetString("output.format"); got != "json" {
		t.Errorf("output.format = %q, want env override", got)
	}
	if got := cfg.GetInt("printable.limit"); got != 3 {
		t.Errorf("printable.limit = %d, want env override", got)
	}
	if cfg.GetBool("escape.wrap") {
		t.Error("escape.wrap should be overridden to false")
	}

	t.Setenv("BYTEX_NEW_KEY", "x")
	if !cfg.Has("new.key") {
		t.Error("Has() should see environment-only keys")
	}
}

func TestSetAndGetAll(t *testing.T) {
	cfg := New("", nil)
	cfg.Set("a.b.c", 1)
	cfg.Set("a.d", "x")

	all := cfg.GetAll()
	want := map[string]interface{}{
		"a": map[string]interface{}{
			"b": map[string]interface{}{"c": 1},
			"d": "x",
		},
	}
	if !reflect.DeepEqual(all, want) {
		t.Errorf("GetAll() = %v", all)
	}

	all["a"].(map[string]interface{})["d"] = "changed"
	if cfg.GetString("a.d") != "x" {
		t.Error("GetAll() must return a copy")
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	home := filepath.Join(dir, "home")
	if err := os.MkdirAll(home, 0o755); err != nil {
		t.Fatal(err)
	}

	opts := DiscoveryOptions{
		Paths:      []string{dir, home},
		Filenames:  []string{"bytex", "config"},
		Extensions: []string{".toml", ".yaml"},
		EnvPrefix:  "BYTEX",
		Defaults:   map[string]interface{}{"output": map[string]interface{}{"format": "text"}},
	}

	t.Run("nothing found", func(t *testing.T) {
		cfg, err := Discover(opts)
		if err != nil {
			t.Fatalf("Discover() error = %v", err)
		}
		if cfg.FilePath() != "" || cfg.GetString("output.format") != "text" {
			t.Errorf("Discover() = %v", cfg)
		}
	})

	t.Run("required", func(t *testing.T) {
		required := opts
		required.Required = true
		if _, err := Discover(required); !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
			t.Errorf("Discover() error = %v", err)
		}
	})

	t.Run("home directory", func(t *testing.T) {
		path := writeFile(t, home, "config.yaml", yamlContent)
		cfg, err := Discover(opts)
		if err != nil {
			t.Fatal(err)
		}
		if cfg.FilePath() != path || cfg.GetString("output.format") != "dump" {
			t.Errorf("Discover() = %v", cfg)
		}
	})

	t.Run("working directory first", func(t *testing.T) {
		path := writeFile(t, dir, "bytex.toml", tomlContent)
		cfg, err := Discover(opts)
		if err != nil {
			t.Fatal(err)
		}
		if cfg.FilePath() != path {
			t.Errorf("FilePath() = %q, want %q", cfg.FilePath(), path)
		}
	})

	t.Run("broken file", func(t *testing.T) {
		writeFile(t, dir, "bytex.toml", "= nope")
		if _, err := Discover(opts); !mdwerror.HasCode(err, mdwerror.CodeInvalidConfig) {
			t.Errorf("Discover() error = %v", err)
		}
	})
}

func TestListPossibleConfigFiles(t *testing.T) {
	got := ListPossibleConfigFiles(DiscoveryOptions{
		Paths:      []string{"a"},
		Filenames:  []string{"bytex"},
		Extensions: []string{".toml", ".yaml"},
	})
	want := []string{filepath.Join("a", "bytex.toml"), filepath.Join("a", "bytex.yaml")}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ListPossibleConfigFiles() = %v", got)
	}
}

func TestDefaultDiscoveryOptions(t *testing.T) {
	opts := DefaultDiscoveryOptions()
	if opts.EnvPrefix != "BYTEX" || opts.Paths[0] != "." || opts.Required {
		t.Errorf("DefaultDiscoveryOptions() = %+v", opts)
	}
}

func intPtr(n int) *int { return &n }

func TestValidate(t *testing.T) {
	rules := ValidationRules{
		"log.level":       {Type: "string", OneOf: []string{"trace", "debug", "info", "warn", "error"}},
		"output.format":   {Type: "string", OneOf: []string{"text", "json", "cbor", "dump"}},
		"escape.quote":    {Type: "string", Max: intPtr(1)},
		"printable.limit": {Type: "int", Min: intPtr(0)},
		"escape.wrap":     {Type: "bool"},
		"log.format":      {Type: "string", Default: "console"},
	}

	t.Run("valid", func(t *testing.T) {
		cfg, _ := LoadFromString(tomlContent, FormatTOML)
		result := cfg.Validate(rules)
		if !result.Valid || result.Err() != nil {
			t.Errorf("Validate() = %+v", result)
		}
	})

	t.Run("default applied", func(t *testing.T) {
		cfg, _ := LoadFromString("[log]\nlevel = \"info\"\n", FormatTOML)
		cfg.Validate(rules)
		if got := cfg.GetString("log.format"); got != "console" {
			t.Errorf("log.format = %q, want default", got)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		cfg, _ := LoadFromString(`
[log]
level = "loud"
[escape]
quote = "ab"
wrap = 3
[printable]
limit = -1
`, FormatTOML)
		result := cfg.Validate(rules)
		if result.Valid || len(result.Errors) != 4 {
			t.Fatalf("Validate() = %+v", result)
		}
		if !strings.Contains(result.Errors[0], "escape.quote") {
			t.Errorf("errors not sorted by key: %v", result.Errors)
		}
		if !mdwerror.HasCode(result.Err(), mdwerror.CodeInvalidConfig) {
			t.Errorf("Err() = %v", result.Err())
		}
	})

	t.Run("env override validated", func(t *testing.T) {
		cfg := New("BYTEX", nil)
		t.Setenv("BYTEX_OUTPUT_FORMAT", "xml")
		if cfg.Validate(rules).Valid {
			t.Error("invalid environment override should fail validation")
		}
	})

	t.Run("required", func(t *testing.T) {
		cfg := New("", nil)
		result := cfg.Validate(ValidationRules{"log.level": {Required: true}})
		if result.Valid {
			t.Error("missing required key should fail")
		}
	})
}

func TestBindToStruct(t *testing.T) {
	type settings struct {
		Level  string `config:"log.level"`
		Output string `config:"output.format"`
		Limit  int    `config:"printable.limit"`
		Wrap   bool   `config:"escape.wrap"`
		Skip   string `config:"-"`
		hidden string
	}

	cfg, _ := LoadFromString(tomlContent, FormatTOML)
	cfg = cfg.WithEnvPrefix("BYTEX")
	t.Setenv("BYTEX_LOG_LEVEL", "trace")

	s := settings{Skip: "kept", Output: "text"}
	if err := cfg.BindToStruct("", &s); err != nil {
		t.Fatalf("BindToStruct() error = %v", err)
	}

	want := settings{Level: "trace", Output: "cbor", Limit: 64, Wrap: true, Skip: "kept"}
	if s != want {
		t.Errorf("BindToStruct() = %+v, want %+v", s, want)
	}

	type logSection struct {
		Level  string
		Format string
	}
	var ls logSection
	if err := cfg.BindToStruct("log", &ls); err != nil {
		t.Fatal(err)
	}
	if ls.Level != "trace" || ls.Format != "json" {
		t.Errorf("BindToStruct(log) = %+v", ls)
	}

	if err := cfg.BindToStruct("", s); !mdwerror.HasCode(err, mdwerror.CodeValidationFailed) {
		t.Errorf("non-pointer target error = %v", err)
	}

	type badInt struct {
		Level int `config:"log.level"`
	}
	if err := cfg.BindToStruct("", &badInt{}); !mdwerror.HasCode(err, mdwerror.CodeInvalidConfig) {
		t.Errorf("conversion error = %v", err)
	}
}
