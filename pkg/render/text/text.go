// Package text renders pages as plain text: a centered, underlined title and
// paragraphs word-wrapped to a fixed width.
package text

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/goliatone/go-patterns/internal/textwrap"
)

// DefaultWidth is used when no width option is supplied.
const DefaultWidth = 80

// ErrInvalidWidth is returned for widths below one column.
var ErrInvalidWidth = errors.New("text: width must be at least 1")

// Option configures a Renderer.
type Option func(*Renderer)

// WithWidth sets the line width in terminal cells.
func WithWidth(width int) Option {
	return func(r *Renderer) {
		r.width = width
	}
}

// Renderer writes pages to an io.Writer as wrapped plain text.
type Renderer struct {
	w        io.Writer
	width    int
	previous bool
}

// New constructs a text renderer writing to w.
func New(w io.Writer, options ...Option) (*Renderer, error) {
	if w == nil {
		return nil, errors.New("text: writer is required")
	}
	r := &Renderer{w: w, width: DefaultWidth}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	if r.width < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWidth, r.width)
	}
	return r, nil
}

// Width reports the configured line width.
func (r *Renderer) Width() int {
	return r.width
}

// Header writes the title and a rule of "=" as long as the title, each
// centered in the page width.
func (r *Renderer) Header(title string) error {
	rule := strings.Repeat("=", textwrap.Width(title))
	_, err := fmt.Fprintf(r.w, "%s\n%s\n", textwrap.Center(title, r.width), textwrap.Center(rule, r.width))
	return err
}

// Paragraph writes body wrapped to the page width. Consecutive paragraphs are
// separated by a blank line.
func (r *Renderer) Paragraph(body string) error {
	var b strings.Builder
	if r.previous {
		b.WriteByte('\n')
	}
	b.WriteString(textwrap.Fill(body, r.width))
	b.WriteByte('\n')
	if _, err := io.WriteString(r.w, b.String()); err != nil {
		return err
	}
	r.previous = true
	return nil
}

// Footer writes nothing.
func (r *Renderer) Footer() error {
	return nil
}
