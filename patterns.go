// Package patterns exposes the most common entry points of the pattern
// packages from the top-level module.
package patterns

import (
	"io"

	"github.com/goliatone/go-patterns/pkg/board"
	"github.com/goliatone/go-patterns/pkg/formbuilder"
	"github.com/goliatone/go-patterns/pkg/render"
)

// Renderer aliases render.Renderer for callers adapting their own renderers.
type Renderer = render.Renderer

// Page aliases render.Page.
type Page = render.Page

// Builder aliases formbuilder.Builder.
type Builder = formbuilder.Builder

// Board aliases board.Board.
type Board = board.Board

// NewPage binds title to any value exposing the Renderer operations.
func NewPage(title string, renderer any) (*Page, error) {
	return render.NewPage(title, renderer)
}

// RenderPage renders title and paragraphs to w through the named built-in
// renderer. Width is ignored by renderers that do not wrap.
func RenderPage(w io.Writer, rendererName string, width int, title string, paragraphs ...string) error {
	r, err := render.Default().New(rendererName, w, render.Options{Width: width})
	if err != nil {
		return err
	}
	page, err := render.NewPage(title, r)
	if err != nil {
		return err
	}
	for _, body := range paragraphs {
		page.AddParagraph(body)
	}
	return page.Render()
}

// LoginForm builds the login form with the named built-in builder.
func LoginForm(builderName string) (string, error) {
	b, err := formbuilder.Default().New(builderName)
	if err != nil {
		return "", err
	}
	return formbuilder.CreateLoginForm(b)
}

// NewBoard builds the named board variant.
func NewBoard(variant string, options ...board.Option) (*Board, error) {
	return board.NewVariant(variant, options...)
}
