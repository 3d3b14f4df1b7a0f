package render

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-patterns/pkg/capability"
)

// Renderer is the role a Page draws itself through. Any type exposing these
// three operations plugs in; no declaration of conformance is needed.
type Renderer interface {
	Header(title string) error
	Paragraph(body string) error
	Footer() error
}

// Methods is the capability set a renderer candidate must expose.
var Methods = capability.HasMethods("Header", "Paragraph", "Footer")

// IsRenderer reports whether candidate exposes all Renderer operations with
// the expected signatures.
func IsRenderer(candidate any) bool {
	if candidate == nil {
		return false
	}
	_, ok := candidate.(Renderer)
	return ok
}

// MissingMethods names the Renderer operations the candidate lacks.
func MissingMethods(candidate any) []string {
	return Methods.Missing(candidate)
}

// AsRenderer validates candidate and returns it as a Renderer. It fails with
// ErrWrongAdapter naming the absent operations, or noting a signature
// mismatch when every name is present.
func AsRenderer(candidate any) (Renderer, error) {
	if r, ok := candidate.(Renderer); ok && candidate != nil {
		return r, nil
	}
	if candidate == nil {
		return nil, fmt.Errorf("%w: renderer is nil", ErrWrongAdapter)
	}
	missing := MissingMethods(candidate)
	if len(missing) == 0 {
		return nil, fmt.Errorf("%w: %T has incompatible %s signatures", ErrWrongAdapter, candidate, Methods)
	}
	return nil, fmt.Errorf("%w: %T lacks %s", ErrWrongAdapter, candidate, strings.Join(missing, ", "))
}
