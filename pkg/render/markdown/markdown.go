// Package markdown adapts the goldmark CommonMark converter to the page
// renderer role. Paragraph bodies are treated as Markdown and the page is
// emitted as a standalone HTML5 document.
package markdown

import (
	"errors"
	"fmt"
	"io"

	"github.com/yuin/goldmark"

	"github.com/goliatone/go-patterns/internal/htmlx"
)

// Option configures a Renderer.
type Option func(*Renderer)

// WithMarkdown overrides the goldmark instance used for paragraphs, e.g. to
// enable extensions.
func WithMarkdown(md goldmark.Markdown) Option {
	return func(r *Renderer) {
		if md != nil {
			r.md = md
		}
	}
}

// Renderer writes pages as HTML, converting each paragraph from Markdown.
type Renderer struct {
	w  io.Writer
	md goldmark.Markdown
}

// New constructs a markdown renderer writing to w.
func New(w io.Writer, options ...Option) (*Renderer, error) {
	if w == nil {
		return nil, errors.New("markdown: writer is required")
	}
	r := &Renderer{w: w, md: goldmark.New()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r, nil
}

// Header opens the document and writes the title as a level-one heading.
func (r *Renderer) Header(title string) error {
	escaped := htmlx.Escape(title)
	_, err := fmt.Fprintf(r.w, "<!doctype html>\n<html><head><title>%s</title></head><body>\n<h1>%s</h1>\n", escaped, escaped)
	return err
}

// Paragraph converts body from Markdown and writes the resulting HTML.
func (r *Renderer) Paragraph(body string) error {
	if err := r.md.Convert([]byte(body), r.w); err != nil {
		return fmt.Errorf("markdown: convert paragraph: %w", err)
	}
	return nil
}

// Footer closes the document.
func (r *Renderer) Footer() error {
	_, err := io.WriteString(r.w, "</body></html>\n")
	return err
}
