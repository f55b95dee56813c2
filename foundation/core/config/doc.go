// File: doc.go
// Title: Configuration Management Package Documentation
// Description: Package documentation for config.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-02-11
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2025-02-11 v0.2.0: textkit settings and pipeline profiles

/*
Package config loads textkit settings and transform profiles.

Files are TOML or YAML, chosen by extension. Values are read with dotted
keys and every scalar can be overridden from the environment:
wrap.width is read from TEXTKIT_WRAP_WIDTH when it is set.

A settings file used by the textkit CLI:

	[log]
	level = "info"
	format = "text"

	[datasize]
	max_digits = 3
	binary = false

	[wrap]
	width = 72
	prefix = "  "

	[[pipeline.steps]]
	name = "trim"

	[[pipeline.steps]]
	name = "url-encode"
	mode = "query-value"

Usage:

	cfg, err := config.Load("textkit.toml")
	if err != nil {
		return err
	}
	width := cfg.GetInt("wrap.width", 80)
	steps := cfg.GetTables("pipeline.steps")

	cfg.OnChange(func(old, cur *config.Config) { reconfigure(cur) })
	if err := cfg.Watch(ctx); err != nil {
		return err
	}
*/
package config
