package config

import (
	"os"
	"path/filepath"
	"testing"

	fconfig "github.com/msto63/bytex/foundation/core/config"
	mdwerror "github.com/msto63/bytex/foundation/core/error"
)

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv(EnvConfigPath, "")

	s, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if s.Source != "" {
		t.Errorf("Source = %q, want empty", s.Source)
	}
	if s.Log.Level != "warn" || s.Log.Format != "console" {
		t.Errorf("Log = %+v", s.Log)
	}
	if s.Output.Format != OutputText {
		t.Errorf("Output = %+v", s.Output)
	}
	if s.Escape.QuoteByte() != '"' || s.Escape.Wrap {
		t.Errorf("Escape = %+v", s.Escape)
	}
	if s.Printable.Limit != 0 {
		t.Errorf("Printable = %+v", s.Printable)
	}
}

func TestLoad_ExplicitFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	content := "output:\n  format: CBOR\nescape:\n  quote: \"'\"\n  wrap: true\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.Source != path {
		t.Errorf("Source = %q", s.Source)
	}
	if s.Output.Format != OutputCBOR {
		t.Errorf("Output.Format = %q, want lower-cased cbor", s.Output.Format)
	}
	if s.Escape.QuoteByte() != '\'' || !s.Escape.Wrap {
		t.Errorf("Escape = %+v", s.Escape)
	}
	if s.Log.Level != "warn" {
		t.Errorf("defaults should fill unset keys, Log = %+v", s.Log)
	}
}

func TestLoad_EnvConfigPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "env.toml")
	if err := os.WriteFile(path, []byte("[log]\nlevel = \"debug\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvConfigPath, path)

	s, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if s.Log.Level != "debug" || s.Source != path {
		t.Errorf("Load() = %+v", s)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv(EnvConfigPath, "")
	t.Setenv("BYTEX_OUTPUT_FORMAT", "json")

	s, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if s.Output.Format != OutputJSON {
		t.Errorf("Output.Format = %q", s.Output.Format)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		code    mdwerror.Code
	}{
		{"unknown output", "[output]\nformat = \"xml\"\n", mdwerror.CodeInvalidConfig},
		{"long quote", "[escape]\nquote = \"<<\"\n", mdwerror.CodeInvalidConfig},
		{"negative limit", "[printable]\nlimit = -4\n", mdwerror.CodeInvalidConfig},
		{"parse error", "[output\n", mdwerror.CodeInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bytex.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			if !mdwerror.HasCode(err, tt.code) {
				t.Errorf("Load() error = %v, want %v", err, tt.code)
			}
		})
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
		t.Errorf("Load() error = %v", err)
	}
}

func TestFromConfig(t *testing.T) {
	cfg := fconfig.New(EnvPrefix, Defaults())
	cfg.Set("printable.limit", 12)

	s, err := FromConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if s.Printable.Limit != 12 {
		t.Errorf("Printable.Limit = %d", s.Printable.Limit)
	}
}

func TestQuoteByte(t *testing.T) {
	if (EscapeSettings{}).QuoteByte() != 0 {
		t.Error("empty quote should yield 0")
	}
	if (EscapeSettings{Quote: "`"}).QuoteByte() != '`' {
		t.Error("backtick quote not returned")
	}
}

// chdir changes the working directory for the duration of the test,
// mirroring testing.T.Chdir (Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
