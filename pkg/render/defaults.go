package render

import (
	"io"

	"github.com/goliatone/go-patterns/pkg/render/markdown"
	"github.com/goliatone/go-patterns/pkg/render/text"
)

// Built-in renderer names.
const (
	RendererText     = "text"
	RendererMarkdown = "markdown"
)

var (
	_ Renderer = (*text.Renderer)(nil)
	_ Renderer = (*markdown.Renderer)(nil)
)

// Default returns a registry holding the built-in renderers.
func Default() *Registry {
	reg := NewRegistry()
	reg.MustRegister(RendererText, func(w io.Writer, opts Options) (Renderer, error) {
		var options []text.Option
		if opts.Width != 0 {
			options = append(options, text.WithWidth(opts.Width))
		}
		r, err := text.New(w, options...)
		if err != nil {
			return nil, err
		}
		return r, nil
	})
	reg.MustRegister(RendererMarkdown, func(w io.Writer, _ Options) (Renderer, error) {
		r, err := markdown.New(w)
		if err != nil {
			return nil, err
		}
		return r, nil
	})
	return reg
}
