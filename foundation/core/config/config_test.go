// File: config_test.go
// Title: Configuration Module Tests
// Description: Tests for TOML/YAML loading, env overrides, table arrays,
//              validation and file watching.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-02-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial test implementation
// - 2025-02-11 v0.2.0: textkit settings, fsnotify watcher
// - 2025-02-14 v0.2.1: Defaults and env prefix across reloads

package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
)

const sampleTOML = `
[log]
level = "debug"

[wrap]
width = 60
prefix = "> "
hyphenate = true

[[pipeline.steps]]
name = "trim"

[[pipeline.steps]]
name = "url-encode"
mode = "path"
`

const sampleYAML = `
log:
  level: debug
wrap:
  width: 60
  prefix: "> "
  hyphenate: true
pipeline:
  steps:
    - name: trim
    - name: url-encode
      mode: path
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestLoadFormats(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		format  Format
	}{
		{"toml", "textkit.toml", sampleTOML, FormatTOML},
		{"yaml", "textkit.yaml", sampleYAML, FormatYAML},
		{"yml", "textkit.yml", sampleYAML, FormatYAML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadWithOptions(writeFile(t, tt.file, tt.content), LoadOptions{})
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if cfg.Format() != tt.format {
				t.Errorf("Format() = %v; want %v", cfg.Format(), tt.format)
			}
			if got := cfg.GetString("log.level"); got != "debug" {
				t.Errorf("log.level = %q; want debug", got)
			}
			if got := cfg.GetInt("wrap.width"); got != 60 {
				t.Errorf("wrap.width = %d; want 60", got)
			}
			if !cfg.GetBool("wrap.hyphenate") {
				t.Error("wrap.hyphenate = false; want true")
			}

			steps := cfg.GetTables("pipeline.steps")
			var names []string
			for _, s := range steps {
				names = append(names, s["name"].(string))
			}
			if diff := cmp.Diff([]string{"trim", "url-encode"}, names); diff != "" {
				t.Errorf("step names mismatch (-want +got):\n%s", diff)
			}
			if steps[1]["mode"] != "path" {
				t.Errorf("steps[1].mode = %v; want path", steps[1]["mode"])
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(""); !mdwerror.HasCode(err, mdwerror.CodeMissingConfig) {
		t.Errorf("Load(\"\") error = %v; want MISSING_CONFIG", err)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
		t.Errorf("Load(absent) error = %v; want NOT_FOUND", err)
	}
	if _, err := Load(writeFile(t, "bad.toml", "[unclosed")); !mdwerror.HasCode(err, mdwerror.CodeInvalidConfig) {
		t.Errorf("Load(bad) error = %v; want INVALID_CONFIG", err)
	}
}

func TestDefaultsAndFallbacks(t *testing.T) {
	path := writeFile(t, "c.toml", "[wrap]\nwidth = 40\n")
	cfg, err := LoadWithOptions(path, LoadOptions{Defaults: map[string]interface{}{
		"wrap": map[string]interface{}{"width": 80, "prefix": "# "},
	}})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.GetInt("wrap.width") != 40 {
		t.Errorf("file value should win over default")
	}
	if cfg.GetString("wrap.prefix") != "# " {
		t.Errorf("nested default not merged: %q", cfg.GetString("wrap.prefix"))
	}
	if cfg.GetInt("missing.key", 7) != 7 {
		t.Error("default not returned for missing key")
	}
	if cfg.Has("missing.key") {
		t.Error("Has(missing.key) = true")
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("TEXTKIT_WRAP_WIDTH", "99")
	t.Setenv("TEXTKIT_WRAP_PREFIX", "| ")

	cfg, err := Load(writeFile(t, "c.toml", sampleTOML))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := cfg.GetInt("wrap.width"); got != 99 {
		t.Errorf("wrap.width = %d; want env override 99", got)
	}
	if got := cfg.Sub("wrap").GetString("prefix"); got != "| " {
		t.Errorf("Sub(wrap).prefix = %q; want env override", got)
	}

	noEnv, _ := LoadFromString(sampleTOML, FormatTOML)
	if got := noEnv.GetInt("wrap.width"); got != 60 {
		t.Errorf("config without prefix read env: %d", got)
	}
}

func TestSetAndGetAll(t *testing.T) {
	cfg := Empty("")
	cfg.Set("a.b.c", 1)
	if cfg.GetInt("a.b.c") != 1 {
		t.Error("Set() value not readable")
	}
	all := cfg.GetAll()
	all["a"].(map[string]interface{})["b"] = "changed"
	if cfg.GetInt("a.b.c") != 1 {
		t.Error("GetAll() exposed internal state")
	}
	if diff := cmp.Diff([]string{"a"}, cfg.Keys()); diff != "" {
		t.Errorf("Keys() mismatch (-want +got):\n%s", diff)
	}
}

func TestGetStringSlice(t *testing.T) {
	cfg, _ := LoadFromString("list = [\"a\", \"b\"]\nsingle = \"x\"\n", FormatTOML)
	if diff := cmp.Diff([]string{"a", "b"}, cfg.GetStringSlice("list")); diff != "" {
		t.Errorf("list mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"x"}, cfg.GetStringSlice("single")); diff != "" {
		t.Errorf("single mismatch (-want +got):\n%s", diff)
	}
}

func TestValidate(t *testing.T) {
	rules := ValidationRules{
		"log.level":      {Type: "string", OneOf: []string{"trace", "debug", "info", "warn", "error", "off"}},
		"wrap.width":     {Type: "int", Min: IntPtr(1), Max: IntPtr(1000)},
		"wrap.hyphenate": {Type: "bool"},
		"pipeline.steps": {Type: "tables"},
	}

	good, _ := LoadFromString(sampleTOML, FormatTOML)
	if err := good.Validate(rules); err != nil {
		t.Errorf("Validate(good) error = %v", err)
	}

	bad, _ := LoadFromString("[log]\nlevel = \"loud\"\n[wrap]\nwidth = 0\n", FormatTOML)
	err := bad.Validate(rules)
	if !mdwerror.HasCode(err, mdwerror.CodeInvalidConfig) {
		t.Fatalf("Validate(bad) error = %v; want INVALID_CONFIG", err)
	}
	e, _ := mdwerror.As(err)
	violations := e.Details()["violations"].([]string)
	want := []string{
		"log.level must be one of trace, debug, info, warn, error, off",
		"wrap.width must be >= 1",
	}
	if diff := cmp.Diff(want, violations); diff != "" {
		t.Errorf("violations mismatch (-want +got):\n%s", diff)
	}

	required := ValidationRules{"wrap.width": {Required: true, Type: "int"}}
	if err := Empty("").Validate(required); err == nil {
		t.Error("missing required key passed validation")
	}
}

func TestWatchReloads(t *testing.T) {
	path := writeFile(t, "watch.toml", "[wrap]\nwidth = 10\n")
	cfg, err := LoadWithOptions(path, LoadOptions{})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	changed := make(chan int, 4)
	cfg.OnChange(func(old, cur *Config) {
		changed <- cur.GetInt("wrap.width")
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := cfg.Watch(ctx); err != nil {
		t.Fatalf("Watch() error = %v", err)
	}
	if !cfg.IsWatching() {
		t.Fatal("IsWatching() = false after Watch()")
	}

	if err := os.WriteFile(path, []byte("[wrap]\nwidth = 20\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	deadline := time.After(5 * time.Second)
	for {
		select {
		case w := <-changed:
			if w == 20 {
				if cfg.GetInt("wrap.width") != 20 {
					t.Errorf("config not updated after reload")
				}
				cfg.StopWatching()
				if cfg.IsWatching() {
					t.Error("IsWatching() = true after StopWatching()")
				}
				return
			}
		case <-deadline:
			t.Fatal("no reload observed within 5s")
		}
	}
}

func TestReloadKeepsDefaults(t *testing.T) {
	t.Setenv("TEXTKIT_LOG_LEVEL", "debug")
	path := writeFile(t, "reload.toml", "[wrap]\nwidth = 10\n")
	cfg, err := LoadWithOptions(path, LoadOptions{
		EnvPrefix: DefaultEnvPrefix,
		Defaults: map[string]interface{}{
			"wrap": map[string]interface{}{"width": 80, "prefix": "# "},
		},
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	var oldCfg, newCfg *Config
	cfg.OnChange(func(old, cur *Config) { oldCfg, newCfg = old, cur })

	if err := os.WriteFile(path, []byte("[wrap]\nwidth = 20\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if err := cfg.reload(); err != nil {
		t.Fatalf("reload() error = %v", err)
	}
	if newCfg == nil {
		t.Fatal("change handler not called")
	}

	tests := []struct {
		name string
		cfg  *Config
		key  string
		want string
	}{
		{"reloaded value", cfg, "wrap.width", "20"},
		{"default after reload", cfg, "wrap.prefix", "# "},
		{"handler default", newCfg, "wrap.prefix", "# "},
		{"old value", oldCfg, "wrap.width", "10"},
		{"old env override", oldCfg, "log.level", "debug"},
		{"new env override", newCfg, "log.level", "debug"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.GetString(tt.key); got != tt.want {
				t.Errorf("GetString(%q) = %q; want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestWatchRequiresFile(t *testing.T) {
	cfg, _ := LoadFromString("", FormatTOML)
	if err := cfg.Watch(context.Background()); !mdwerror.HasCode(err, mdwerror.CodeMissingConfig) {
		t.Errorf("Watch() error = %v; want MISSING_CONFIG", err)
	}
}
