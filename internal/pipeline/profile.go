package pipeline

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/msto63/textkit/foundation/core/config"
	"github.com/msto63/textkit/foundation/core/errors"
	mdwlog "github.com/msto63/textkit/foundation/core/log"
)

// FromConfig builds a pipeline from a profile:
//
//	name = "web"
//
//	[[steps]]
//	name = "trim"
//
//	[[steps]]
//	name = "url-encode"
//	mode = "query-value"
//
// Every key of a step table except name and enabled is passed to the
// step factory. Steps with enabled = false are skipped.
func FromConfig(cfg *config.Config, reg *Registry, logger *mdwlog.Logger) (*Pipeline, error) {
	if reg == nil {
		reg = DefaultRegistry()
	}
	name := cfg.GetString("name", "")
	if name == "" && cfg.FilePath() != "" {
		name = strings.TrimSuffix(filepath.Base(cfg.FilePath()), filepath.Ext(cfg.FilePath()))
	}

	tables := cfg.GetTables("steps")
	if len(tables) == 0 {
		return nil, errors.ConfigError("pipeline.FromConfig", "steps", nil, "profile defines no steps")
	}

	p := New(name, logger)
	for i, table := range tables {
		key := fmt.Sprintf("steps[%d]", i)
		stepName, ok := table["name"].(string)
		if !ok || stepName == "" {
			return nil, errors.ConfigError("pipeline.FromConfig", key+".name", table["name"], "missing step name")
		}

		params := make(Params, len(table))
		for k, v := range table {
			if k != "name" && k != "enabled" {
				params[k] = v
			}
		}
		if enabled, err := Params(table).Bool("enabled", true); err != nil {
			return nil, errors.ConfigError("pipeline.FromConfig", key+".enabled", table["enabled"], "not a boolean")
		} else if !enabled {
			continue
		}

		step, err := reg.Build(stepName, params)
		if err != nil {
			return nil, err
		}
		p.Add(step)
	}
	return p, nil
}

// LoadProfile reads a TOML or YAML profile file and builds its pipeline
func LoadProfile(path string, reg *Registry, logger *mdwlog.Logger) (*Pipeline, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	return FromConfig(cfg, reg, logger)
}

// FromNames builds a pipeline of default-configured steps, as given on a
// command line
func FromNames(names []string, reg *Registry, logger *mdwlog.Logger) (*Pipeline, error) {
	if reg == nil {
		reg = DefaultRegistry()
	}
	p := New("inline", logger)
	for _, name := range names {
		step, err := reg.Build(strings.TrimSpace(name), Params{})
		if err != nil {
			return nil, err
		}
		p.Add(step)
	}
	return p, nil
}
