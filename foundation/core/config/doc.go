// File: doc.go
// Title: Configuration Management Package Documentation
// Description: Package config loads bytex settings from TOML or YAML files
//              with environment variable overrides.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-02-03
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2025-02-03 v0.2.0: Reduced to the bytex tool, removed hot-reloading

/*
Package config provides configuration management for the bytex tool.

It loads TOML and YAML configuration files, resolves dot-path keys with
environment variable overrides, validates values against rules and binds
sections onto tagged structs.

# Features

  - TOML (BurntSushi/toml) and YAML (gopkg.in/yaml.v3) with detection by extension
  - Environment overrides: key log.level with prefix BYTEX reads BYTEX_LOG_LEVEL
  - Defaults merged underneath file values
  - File discovery in the working directory and the user config directory
  - Rule-based validation and struct binding
  - Thread-safe access

# Loading

	cfg, err := config.Load("bytex.toml")
	if err != nil {
		return err
	}
	level := cfg.GetString("log.level", "warn")

# Discovery

Discover walks DiscoveryOptions.Paths and returns the first matching file.
When nothing is found and the options do not require a file, an empty
configuration is returned that still honours environment overrides:

	cfg, err := config.Discover(config.DefaultDiscoveryOptions())

# Binding

	type Settings struct {
		Level  string `config:"log.level"`
		Output string `config:"output.format"`
	}
	var s Settings
	err := cfg.BindToStruct("", &s)

Errors carry the module "config" and a CONFIG_* code from the error package.
*/
package config
