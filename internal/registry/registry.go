// Package registry stores named entries behind a read-write lock, providing
// discovery and duplication safeguards for the public factory registries.
package registry

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Registry maps names to entries of type T.
type Registry[T any] struct {
	mu      sync.RWMutex
	scope   string
	noun    string
	entries map[string]T
}

// New creates an empty registry. scope prefixes error messages and noun names
// what is stored, e.g. New[Factory]("render", "renderer").
func New[T any](scope, noun string) *Registry[T] {
	return &Registry[T]{
		scope:   scope,
		noun:    noun,
		entries: make(map[string]T),
	}
}

// Register adds entry under the trimmed name. Blank and duplicate names
// return an error.
func (r *Registry[T]) Register(name string, entry T) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%s: %s name is required", r.scope, r.noun)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[name]; exists {
		return fmt.Errorf("%s: %s %q already registered", r.scope, r.noun, name)
	}
	r.entries[name] = entry
	return nil
}

// Lookup returns the entry registered under name.
func (r *Registry[T]) Lookup(name string) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[name]
	return entry, ok
}

// Has reports whether name is registered.
func (r *Registry[T]) Has(name string) bool {
	_, ok := r.Lookup(name)
	return ok
}

// List returns the registered names in sorted order.
func (r *Registry[T]) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
