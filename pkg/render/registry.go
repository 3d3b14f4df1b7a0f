package render

import (
	"fmt"
	"io"

	"github.com/goliatone/go-patterns/internal/registry"
)

// Factory builds a renderer writing to w.
type Factory func(w io.Writer, opts Options) (Renderer, error)

// Registry stores renderer factories by name, providing discovery and
// duplication safeguards.
type Registry struct {
	factories *registry.Registry[Factory]
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		factories: registry.New[Factory]("render", "renderer"),
	}
}

// Register adds a factory under name. Duplicate names return an error.
func (r *Registry) Register(name string, factory Factory) error {
	if factory == nil {
		return fmt.Errorf("render: factory is required")
	}
	return r.factories.Register(name, factory)
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(name string, factory Factory) {
	if err := r.Register(name, factory); err != nil {
		panic(err)
	}
}

// New builds the renderer registered under name.
func (r *Registry) New(name string, w io.Writer, opts Options) (Renderer, error) {
	factory, ok := r.factories.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRenderer, name)
	}
	return factory(w, opts)
}

// List returns a sorted list of renderer names.
func (r *Registry) List() []string {
	return r.factories.List()
}

// Has reports whether a renderer is registered.
func (r *Registry) Has(name string) bool {
	return r.factories.Has(name)
}
