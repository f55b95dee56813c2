// File: validation.go
// Title: Configuration Validation Implementation
// Description: Rule based validation of configuration values. The CLI
//              validates its settings file against a fixed rule set before
//              any command runs.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-02-11
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of validation
// - 2025-02-11 v0.2.0: Reduced to the types textkit settings use, OneOf

package config

import (
	"fmt"
	"math"
	"sort"
	"strings"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
)

// ValidationRule defines validation criteria for a configuration value
type ValidationRule struct {
	Required bool
	// Type is one of "string", "int", "bool", "[]string", "tables"
	Type  string
	Min   *int
	Max   *int
	OneOf []string
}

// ValidationRules maps configuration keys to their validation rules
type ValidationRules map[string]ValidationRule

// IntPtr is a helper for ValidationRule bounds
func IntPtr(n int) *int { return &n }

// Validate checks every rule and reports all violations in one error
func (c *Config) Validate(rules ValidationRules) error {
	keys := make([]string, 0, len(rules))
	for k := range rules {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var problems []string
	for _, key := range keys {
		if msg := c.validateField(key, rules[key]); msg != "" {
			problems = append(problems, msg)
		}
	}
	if len(problems) == 0 {
		return nil
	}
	return mdwerror.New("invalid configuration: "+strings.Join(problems, "; ")).
		WithCode(mdwerror.CodeInvalidConfig).
		WithOperation("config.Validate").
		WithDetail("violations", problems).
		WithDetail("filePath", c.filePath)
}

func (c *Config) validateField(key string, rule ValidationRule) string {
	value := c.value(key)
	if env, ok := c.lookupEnv(key); ok {
		value = env
	}
	if value == nil {
		if rule.Required {
			return fmt.Sprintf("%s is required", key)
		}
		return ""
	}

	switch rule.Type {
	case "", "string":
		s, ok := value.(string)
		if rule.Type == "string" && !ok {
			return fmt.Sprintf("%s must be a string", key)
		}
		if ok && len(rule.OneOf) > 0 && !contains(rule.OneOf, s) {
			return fmt.Sprintf("%s must be one of %s", key, strings.Join(rule.OneOf, ", "))
		}
	case "int":
		n, ok := c.intValue(key)
		if !ok {
			return fmt.Sprintf("%s must be an integer", key)
		}
		if rule.Min != nil && n < *rule.Min {
			return fmt.Sprintf("%s must be >= %d", key, *rule.Min)
		}
		if rule.Max != nil && n > *rule.Max {
			return fmt.Sprintf("%s must be <= %d", key, *rule.Max)
		}
	case "bool":
		switch v := value.(type) {
		case bool:
		case string:
			if v != "true" && v != "false" {
				return fmt.Sprintf("%s must be a boolean", key)
			}
		default:
			return fmt.Sprintf("%s must be a boolean", key)
		}
	case "[]string":
		switch value.(type) {
		case []interface{}, []string, string:
		default:
			return fmt.Sprintf("%s must be a list", key)
		}
	case "tables":
		if c.GetTables(key) == nil {
			return fmt.Sprintf("%s must be a list of tables", key)
		}
	default:
		return fmt.Sprintf("%s has unknown rule type %q", key, rule.Type)
	}
	return ""
}

func (c *Config) intValue(key string) (int, bool) {
	n := c.GetInt(key, math.MinInt)
	return n, n != math.MinInt
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
