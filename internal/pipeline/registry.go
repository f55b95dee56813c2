package pipeline

import (
	"sort"
	"sync"

	"github.com/msto63/textkit/foundation/core/errors"
)

type registration struct {
	factory     Factory
	description string
}

// Registry maps step names to factories
type Registry struct {
	factories map[string]registration
	mu        sync.RWMutex
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]registration)}
}

// DefaultRegistry creates a Registry holding every built-in step
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, b := range builtins {
		r.factories[b.name] = registration{factory: b.factory, description: b.description}
	}
	return r
}

// Register adds a factory under name. Names must be unique.
func (r *Registry) Register(name, description string, f Factory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if name == "" || f == nil {
		return errors.ArgumentError(errors.ModulePipeline, "Register", "name", name, "a non-empty name and a factory")
	}
	if _, exists := r.factories[name]; exists {
		return errors.ArgumentError(errors.ModulePipeline, "Register", "name", name, "a name not yet registered")
	}
	r.factories[name] = registration{factory: f, description: description}
	return nil
}

// Build creates the step registered under name
func (r *Registry) Build(name string, p Params) (Step, error) {
	r.mu.RLock()
	reg, ok := r.factories[name]
	r.mu.RUnlock()

	if !ok {
		return nil, errors.NotFound(errors.ModulePipeline, "Build", "step "+name)
	}
	step, err := reg.factory(p)
	if err != nil {
		return nil, errors.NewErrorBuilder(errors.ModulePipeline).
			Operation("Build").
			Messagef("cannot configure step %s", name).
			Cause(err).
			Code(codeOf(err)).
			Detail("step", name).
			Build()
	}
	return step, nil
}

// Has reports whether name is registered
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.factories[name]
	return ok
}

// List returns all registered steps sorted by name
func (r *Registry) List() []StepInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]StepInfo, 0, len(r.factories))
	for name, reg := range r.factories {
		result = append(result, StepInfo{Name: name, Description: reg.description})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}
