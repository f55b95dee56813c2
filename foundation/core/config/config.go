// File: config.go
// Title: Core Configuration Management Implementation
// Description: Loads textkit settings and transform profiles from TOML or
//              YAML files, layers TEXTKIT_* environment overrides on top and
//              exposes dotted-key getters.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-02-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2025-02-11 v0.2.0: Table array access for pipeline profiles, fsnotify
//                      based watching, dropped tracing clones
// - 2025-02-14 v0.2.1: Remember load defaults for reloads

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
	mdwstringx "github.com/msto63/textkit/foundation/utils/stringx"
)

// DefaultEnvPrefix is the prefix for environment overrides:
// wrap.width is read from TEXTKIT_WRAP_WIDTH.
const DefaultEnvPrefix = "TEXTKIT"

// Format represents the configuration file format
type Format int

const (
	// FormatAuto detects the format from the file extension
	FormatAuto Format = iota
	FormatTOML
	FormatYAML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Config represents a configuration instance with thread-safe access
type Config struct {
	mu        sync.RWMutex
	data      map[string]interface{}
	filePath  string
	format    Format
	envPrefix string
	defaults  map[string]interface{}
	handlers  []ChangeHandler
	watch     *watchState
}

// ChangeHandler is called after a watched file was reloaded
type ChangeHandler func(oldConfig, newConfig *Config)

// LoadOptions defines options for loading configuration
type LoadOptions struct {
	Format    Format
	EnvPrefix string
	Defaults  map[string]interface{}
}

// Load loads configuration from a file using the default env prefix
func Load(filePath string) (*Config, error) {
	return LoadWithOptions(filePath, LoadOptions{EnvPrefix: DefaultEnvPrefix})
}

// LoadWithOptions loads configuration from a file with custom options
func LoadWithOptions(filePath string, options LoadOptions) (*Config, error) {
	if mdwstringx.IsBlank(filePath) {
		return nil, mdwerror.New("config file path cannot be empty").
			WithCode(mdwerror.CodeMissingConfig).
			WithOperation("config.Load")
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		code := mdwerror.CodeConfigError
		if os.IsNotExist(err) {
			code = mdwerror.CodeNotFound
		}
		return nil, mdwerror.Wrap(err, "failed to read config file").
			WithCode(code).
			WithOperation("config.Load").
			WithDetail("filePath", filePath)
	}

	format := options.Format
	if format == FormatAuto {
		format = detectFormat(filePath)
	}

	data, err := parseContent(content, format)
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse config file").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.Load").
			WithDetail("filePath", filePath)
	}

	return &Config{
		data:      mergeDefaults(data, deepCopyMap(options.Defaults)),
		filePath:  filePath,
		format:    format,
		envPrefix: options.EnvPrefix,
		defaults:  deepCopyMap(options.Defaults),
	}, nil
}

// LoadFromString parses configuration held in memory. FormatAuto means TOML.
func LoadFromString(content string, format Format) (*Config, error) {
	if format == FormatAuto {
		format = FormatTOML
	}
	data, err := parseContent([]byte(content), format)
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse config").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.LoadFromString")
	}
	return &Config{data: data, format: format}, nil
}

// Empty returns a configuration without values. Getters fall back to
// their defaults and to environment overrides under envPrefix.
func Empty(envPrefix string) *Config {
	return &Config{data: map[string]interface{}{}, envPrefix: envPrefix}
}

func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

func parseContent(content []byte, format Format) (map[string]interface{}, error) {
	data := map[string]interface{}{}

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(content, &data); err != nil {
			return nil, mdwerror.Wrap(err, "TOML parse error").WithCode(mdwerror.CodeInvalidConfig)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, &data); err != nil {
			return nil, mdwerror.Wrap(err, "YAML parse error").WithCode(mdwerror.CodeInvalidConfig)
		}
		if data == nil {
			data = map[string]interface{}{}
		}
	default:
		return nil, mdwerror.New(fmt.Sprintf("unsupported format: %s", format)).
			WithCode(mdwerror.CodeInvalidArgument)
	}
	return data, nil
}

func mergeDefaults(data, defaults map[string]interface{}) map[string]interface{} {
	if len(defaults) == 0 {
		return data
	}
	result := make(map[string]interface{}, len(data)+len(defaults))
	for k, v := range defaults {
		result[k] = v
	}
	for k, v := range data {
		if dm, ok := result[k].(map[string]interface{}); ok {
			if vm, ok := v.(map[string]interface{}); ok {
				result[k] = mergeDefaults(vm, dm)
				continue
			}
		}
		result[k] = v
	}
	return result
}

// GetString returns a string value, the env override, or the default
func (c *Config) GetString(key string, defaultValue ...string) string {
	if env, ok := c.lookupEnv(key); ok {
		return env
	}
	value := c.value(key)
	if value == nil {
		return first(defaultValue, "")
	}
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", value)
}

// GetInt returns an integer value, the env override, or the default
func (c *Config) GetInt(key string, defaultValue ...int) int {
	if env, ok := c.lookupEnv(key); ok {
		if n, err := strconv.Atoi(env); err == nil {
			return n
		}
	}
	switch v := c.value(key).(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return first(defaultValue, 0)
}

// GetBool returns a boolean value, the env override, or the default
func (c *Config) GetBool(key string, defaultValue ...bool) bool {
	if env, ok := c.lookupEnv(key); ok {
		if b, err := strconv.ParseBool(env); err == nil {
			return b
		}
	}
	switch v := c.value(key).(type) {
	case bool:
		return v
	case string:
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return first(defaultValue, false)
}

// GetStringSlice returns a list value. A scalar becomes a one element
// list; an env override is split on commas.
func (c *Config) GetStringSlice(key string, defaultValue ...[]string) []string {
	if env, ok := c.lookupEnv(key); ok {
		return strings.Split(env, ",")
	}
	switch v := c.value(key).(type) {
	case []string:
		return append([]string(nil), v...)
	case []interface{}:
		out := make([]string, len(v))
		for i, item := range v {
			out[i] = fmt.Sprintf("%v", item)
		}
		return out
	case string:
		return []string{v}
	}
	return first(defaultValue, nil)
}

// GetTables returns an array of tables ([[steps]] in TOML, a list of
// mappings in YAML). Entries that are not mappings are skipped.
func (c *Config) GetTables(key string) []map[string]interface{} {
	switch v := c.value(key).(type) {
	case []map[string]interface{}:
		out := make([]map[string]interface{}, len(v))
		for i, m := range v {
			out[i] = deepCopyMap(m)
		}
		return out
	case []interface{}:
		var out []map[string]interface{}
		for _, item := range v {
			if m, ok := item.(map[string]interface{}); ok {
				out = append(out, deepCopyMap(m))
			}
		}
		return out
	}
	return nil
}

// Sub returns the table at key as its own Config, or an empty Config.
func (c *Config) Sub(key string) *Config {
	sub := map[string]interface{}{}
	if m, ok := c.value(key).(map[string]interface{}); ok {
		sub = deepCopyMap(m)
	}
	prefix := ""
	if c.envPrefix != "" {
		prefix = c.envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	}
	return &Config{data: sub, format: c.format, envPrefix: prefix}
}

// Has checks if a configuration key exists
func (c *Config) Has(key string) bool {
	return c.value(key) != nil
}

// Keys returns the sorted top-level keys
func (c *Config) Keys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	keys := make([]string, 0, len(c.data))
	for k := range c.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Set sets a configuration value (runtime only, not persisted)
func (c *Config) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := strings.Split(key, ".")
	current := c.data
	for _, k := range keys[:len(keys)-1] {
		next, ok := current[k].(map[string]interface{})
		if !ok {
			next = make(map[string]interface{})
			current[k] = next
		}
		current = next
	}
	current[keys[len(keys)-1]] = value
}

// GetAll returns a deep copy of all configuration data
func (c *Config) GetAll() map[string]interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return deepCopyMap(c.data)
}

// FilePath returns the path of the loaded configuration file
func (c *Config) FilePath() string {
	return c.filePath
}

// Format returns the configuration file format
func (c *Config) Format() Format {
	return c.format
}

// String provides a readable representation of the configuration
func (c *Config) String() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	parts := []string{"Config{format: " + c.format.String()}
	if c.filePath != "" {
		parts = append(parts, "path: "+c.filePath)
	}
	if c.envPrefix != "" {
		parts = append(parts, "envPrefix: "+c.envPrefix)
	}
	parts = append(parts, fmt.Sprintf("keys: %d}", len(c.data)))
	return strings.Join(parts, ", ")
}

func (c *Config) value(key string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	current := c.data
	keys := strings.Split(key, ".")
	for i, k := range keys {
		v, ok := current[k]
		if !ok {
			return nil
		}
		if i == len(keys)-1 {
			return v
		}
		next, ok := v.(map[string]interface{})
		if !ok {
			return nil
		}
		current = next
	}
	return nil
}

func (c *Config) lookupEnv(key string) (string, bool) {
	if c.envPrefix == "" {
		return "", false
	}
	v, ok := os.LookupEnv(envKey(c.envPrefix, key))
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// envKey maps wrap.max_width under prefix TEXTKIT to TEXTKIT_WRAP_MAX_WIDTH
func envKey(prefix, key string) string {
	k := strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	if prefix == "" {
		return k
	}
	return strings.ToUpper(prefix) + "_" + k
}

func deepCopyMap(src map[string]interface{}) map[string]interface{} {
	dst := make(map[string]interface{}, len(src))
	for k, v := range src {
		switch val := v.(type) {
		case map[string]interface{}:
			dst[k] = deepCopyMap(val)
		case []interface{}:
			cp := make([]interface{}, len(val))
			for i, item := range val {
				if m, ok := item.(map[string]interface{}); ok {
					cp[i] = deepCopyMap(m)
				} else {
					cp[i] = item
				}
			}
			dst[k] = cp
		case []map[string]interface{}:
			cp := make([]map[string]interface{}, len(val))
			for i, m := range val {
				cp[i] = deepCopyMap(m)
			}
			dst[k] = cp
		default:
			dst[k] = v
		}
	}
	return dst
}

func first[T any](values []T, fallback T) T {
	if len(values) > 0 {
		return values[0]
	}
	return fallback
}
