package pipeline

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/msto63/textkit/foundation/core/errors"
)

// Step is one transformation in a pipeline
type Step interface {
	// Name returns the registered step name
	Name() string

	// Apply transforms the input text
	Apply(ctx context.Context, input string) (string, error)
}

// Factory builds a configured step from its parameters
type Factory func(p Params) (Step, error)

// Params holds step parameters as read from a profile
type Params map[string]any

// String returns the parameter as text, or def when unset
func (p Params) String(key, def string) string {
	v, ok := p[key]
	if !ok || v == nil {
		return def
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// Int returns the parameter as an int, or def when unset
func (p Params) Int(key string, def int) (int, error) {
	v, ok := p[key]
	if !ok || v == nil {
		return def, nil
	}
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		if n == float64(int(n)) {
			return int(n), nil
		}
	case string:
		if i, err := strconv.Atoi(n); err == nil {
			return i, nil
		}
	}
	return 0, errors.ArgumentError(errors.ModulePipeline, "Params.Int", key, v, "an integer")
}

// Bool returns the parameter as a bool, or def when unset
func (p Params) Bool(key string, def bool) (bool, error) {
	v, ok := p[key]
	if !ok || v == nil {
		return def, nil
	}
	switch b := v.(type) {
	case bool:
		return b, nil
	case string:
		if parsed, err := strconv.ParseBool(b); err == nil {
			return parsed, nil
		}
	}
	return false, errors.ArgumentError(errors.ModulePipeline, "Params.Bool", key, v, "a boolean")
}

// AuditEntry records a single step execution
type AuditEntry struct {
	Step      string        `json:"step"`
	Duration  time.Duration `json:"duration"`
	Error     error         `json:"-"`
	Modified  bool          `json:"modified"`
	InputLen  int           `json:"input_len"`
	OutputLen int           `json:"output_len"`
}

// Result represents the outcome of a pipeline run
type Result struct {
	RunID    string        `json:"run_id"`
	Pipeline string        `json:"pipeline"`
	Input    string        `json:"input"`
	Output   string        `json:"output"`
	Modified bool          `json:"modified"`
	AuditLog []AuditEntry  `json:"audit_log"`
	Duration time.Duration `json:"duration"`
}

// StepInfo provides metadata about a registered step
type StepInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}
