package engine

import (
	"fmt"
	"sort"
	"sync"

	"github.com/goliatone/go-anyrender/internal/finder"
)

// Registry stores engines by name and dispatches template files to the best
// matching engine. It is safe for concurrent use; the expected lifecycle is
// registration at startup followed by read-only lookups.
type Registry struct {
	mu      sync.RWMutex
	engines map[string]Engine
	order   []string
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		engines: make(map[string]Engine),
	}
}

// Register adds an engine by its Name(). Duplicate names return an error.
// Registration order breaks priority ties during dispatch.
func (r *Registry) Register(e Engine) error {
	if e == nil {
		return fmt.Errorf("engine: engine is required")
	}
	name := e.Name()
	if name == "" {
		return fmt.Errorf("engine: engine name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.engines[name]; exists {
		return fmt.Errorf("engine: engine %q already registered", name)
	}

	r.engines[name] = e
	r.order = append(r.order, name)
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(e Engine) {
	if err := r.Register(e); err != nil {
		panic(err)
	}
}

// Get retrieves an available engine by name.
func (r *Registry) Get(name string) (Engine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.engines[name]
	if !ok {
		return nil, fmt.Errorf("engine: engine %q not found", name)
	}
	if !e.Supports("") {
		return nil, fmt.Errorf("engine: engine %q is not available", name)
	}
	return e, nil
}

// Has reports whether an engine is registered under name.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.engines[name]
	return ok
}

// List returns the sorted names of all registered engines.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.engines))
	for name := range r.engines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// EnginesFor returns every available engine claiming the file's extension,
// ordered ascending by priority with registration order breaking ties.
func (r *Registry) EnginesFor(path string) []Engine {
	ext := finder.Ext(path)
	if ext == "" {
		return nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	matches := make([]Engine, 0, 2)
	for _, name := range r.order {
		e := r.engines[name]
		if e.Supports(path) {
			matches = append(matches, e)
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Priority() < matches[j].Priority()
	})
	return matches
}

// ForFile returns the highest-precedence available engine claiming the
// file's extension, or an error when no engine matches.
func (r *Registry) ForFile(path string) (Engine, error) {
	matches := r.EnginesFor(path)
	if len(matches) == 0 {
		return nil, fmt.Errorf("engine: no engine for template %q", path)
	}
	return matches[0], nil
}
