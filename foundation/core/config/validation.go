// File: validation.go
// Title: Configuration Validation Implementation
// Description: Implements rule-based validation of configuration values and
//              binding of configuration sections onto tagged structs.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-02-03
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of validation
// - 2025-02-03 v0.2.0: OneOf rules, dot-path struct tags with env override

package config

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	mdwerror "github.com/msto63/bytex/foundation/core/error"
)

// ValidationRule defines validation criteria for a configuration value
type ValidationRule struct {
	Required bool        // Whether the key must be present
	Type     string      // Expected type: "string", "int" or "bool"
	OneOf    []string    // Allowed values for strings, compared case-insensitively
	Min      *int        // Minimum for ints, minimum length for strings
	Max      *int        // Maximum for ints, maximum length for strings
	Default  interface{} // Value set when the key is absent
}

// ValidationRules maps configuration keys to their validation rules
type ValidationRules map[string]ValidationRule

// ValidationResult contains the results of configuration validation
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// Err converts a failed result into a structured error; nil when valid
func (r *ValidationResult) Err() error {
	if r.Valid {
		return nil
	}
	return mdwerror.New("invalid configuration: "+strings.Join(r.Errors, "; ")).
		WithCode(mdwerror.CodeInvalidConfig).
		WithOperation("config.Validate").
		WithDetail("errors", r.Errors)
}

// Validate validates the configuration against rules. Keys are checked
// in lexical order so that error lists are stable; environment overrides
// take part in validation.
func (c *Config) Validate(rules ValidationRules) *ValidationResult {
	c.mu.Lock()
	defer c.mu.Unlock()

	result := &ValidationResult{Valid: true}

	keys := make([]string, 0, len(rules))
	for key := range rules {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if err := c.validateField(key, rules[key]); err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, err.Error())
		}
	}
	return result
}

func (c *Config) lookup(key string) interface{} {
	if envValue, ok := c.getEnvValue(key); ok {
		return envValue
	}
	return c.getValue(key)
}

func (c *Config) validateField(key string, rule ValidationRule) error {
	value := c.lookup(key)

	if value == nil {
		if rule.Required {
			return fmt.Errorf("required field '%s' is missing", key)
		}
		if rule.Default != nil {
			c.setLocked(key, rule.Default)
		}
		return nil
	}

	switch rule.Type {
	case "", "string":
		s, ok := value.(string)
		if !ok {
			if rule.Type == "string" {
				return fmt.Errorf("field '%s' must be a string, got %T", key, value)
			}
			break
		}
		if len(rule.OneOf) > 0 && !containsFold(rule.OneOf, s) {
			return fmt.Errorf("field '%s' value '%s' is not one of %s", key, s, strings.Join(rule.OneOf, ", "))
		}
		return checkBounds(key, len(s), rule, "length")
	case "int":
		n, ok := toInt(value)
		if !ok {
			return fmt.Errorf("field '%s' must be an integer, got '%v'", key, value)
		}
		return checkBounds(key, n, rule, "value")
	case "bool":
		switch v := value.(type) {
		case bool:
		case string:
			if _, err := strconv.ParseBool(v); err != nil {
				return fmt.Errorf("field '%s' must be a boolean, got '%s'", key, v)
			}
		default:
			return fmt.Errorf("field '%s' must be a boolean, got %T", key, value)
		}
	default:
		return fmt.Errorf("unknown validation type: %s", rule.Type)
	}
	return nil
}

func checkBounds(key string, n int, rule ValidationRule, what string) error {
	if rule.Min != nil && n < *rule.Min {
		return fmt.Errorf("field '%s' %s %d is less than minimum %d", key, what, n, *rule.Min)
	}
	if rule.Max != nil && n > *rule.Max {
		return fmt.Errorf("field '%s' %s %d is greater than maximum %d", key, what, n, *rule.Max)
	}
	return nil
}

func containsFold(list []string, s string) bool {
	for _, item := range list {
		if strings.EqualFold(item, s) {
			return true
		}
	}
	return false
}

// BindToStruct copies configuration values onto the exported fields of
// target, which must be a pointer to a struct. The `config` tag names
// the dot-path key relative to keyPrefix; untagged fields use their
// lower-cased name and "-" skips a field. Environment overrides apply.
func (c *Config) BindToStruct(keyPrefix string, target interface{}) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	targetValue := reflect.ValueOf(target)
	if targetValue.Kind() != reflect.Ptr || targetValue.Elem().Kind() != reflect.Struct {
		return mdwerror.New("target must be a pointer to struct").
			WithCode(mdwerror.CodeValidationFailed).
			WithOperation("config.BindToStruct")
	}

	targetStruct := targetValue.Elem()
	targetType := targetStruct.Type()

	for i := 0; i < targetStruct.NumField(); i++ {
		field := targetStruct.Field(i)
		fieldType := targetType.Field(i)
		if !field.CanSet() {
			continue
		}

		configKey := fieldType.Tag.Get("config")
		if configKey == "-" {
			continue
		}
		if configKey == "" {
			configKey = strings.ToLower(fieldType.Name)
		}
		if keyPrefix != "" {
			configKey = keyPrefix + "." + configKey
		}

		configValue := c.lookup(configKey)
		if configValue == nil {
			continue
		}

		if err := setFieldValue(field, configValue); err != nil {
			return mdwerror.Wrap(err, fmt.Sprintf("error setting field '%s'", fieldType.Name)).
				WithCode(mdwerror.CodeInvalidConfig).
				WithOperation("config.BindToStruct").
				WithDetail("fieldName", fieldType.Name).
				WithDetail("configKey", configKey)
		}
	}
	return nil
}

func setFieldValue(field reflect.Value, configValue interface{}) error {
	switch field.Kind() {
	case reflect.String:
		if str, ok := configValue.(string); ok {
			field.SetString(str)
		} else {
			field.SetString(fmt.Sprintf("%v", configValue))
		}

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, ok := toInt(configValue)
		if !ok {
			return fmt.Errorf("cannot convert '%v' to integer", configValue)
		}
		field.SetInt(int64(n))

	case reflect.Bool:
		switch v := configValue.(type) {
		case bool:
			field.SetBool(v)
		case string:
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("cannot convert '%v' to boolean", v)
			}
			field.SetBool(b)
		default:
			return fmt.Errorf("cannot convert '%v' to boolean", v)
		}

	default:
		return fmt.Errorf("unsupported field type: %s", field.Kind())
	}
	return nil
}
