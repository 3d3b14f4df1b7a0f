package formbuilder

import (
	"fmt"

	"github.com/goliatone/go-patterns/internal/registry"
)

// Built-in builder names.
const (
	BuilderHTML     = "html"
	BuilderTerminal = "terminal"
)

// Factory returns a fresh builder.
type Factory func() Builder

// Registry stores builder factories by name.
type Registry struct {
	factories *registry.Registry[Factory]
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{factories: registry.New[Factory]("formbuilder", "builder")}
}

// Default returns a registry holding the HTML and terminal builders.
func Default() *Registry {
	reg := NewRegistry()
	reg.MustRegister(BuilderHTML, func() Builder { return NewHTMLBuilder() })
	reg.MustRegister(BuilderTerminal, func() Builder { return NewTerminalBuilder() })
	return reg
}

// Register adds a factory under name. Duplicate names return an error.
func (r *Registry) Register(name string, factory Factory) error {
	if factory == nil {
		return fmt.Errorf("formbuilder: factory is required")
	}
	return r.factories.Register(name, factory)
}

// MustRegister panics on registration failure.
func (r *Registry) MustRegister(name string, factory Factory) {
	if err := r.Register(name, factory); err != nil {
		panic(err)
	}
}

// New returns a fresh builder registered under name.
func (r *Registry) New(name string) (Builder, error) {
	factory, ok := r.factories.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBuilder, name)
	}
	return factory(), nil
}

// List returns a sorted list of builder names.
func (r *Registry) List() []string {
	return r.factories.List()
}
