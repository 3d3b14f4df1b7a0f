package formbuilder

import (
	"fmt"

	"github.com/flosch/pongo2/v6"
	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-patterns/internal/htmlx"
)

const defaultHTMLTitle = "Form"

// HTMLOption configures an HTMLBuilder.
type HTMLOption func(*HTMLBuilder)

// WithPolicy replaces the cell sanitising policy. A nil policy disables
// sanitising.
func WithPolicy(policy *bluemonday.Policy) HTMLOption {
	return func(b *HTMLBuilder) {
		b.policy = policy
	}
}

// HTMLBuilder emits a standalone HTML5 document holding a single form laid out
// in a borderless table.
type HTMLBuilder struct {
	base
	cells  grid[string]
	policy *bluemonday.Policy
	out    string
}

var _ Builder = (*HTMLBuilder)(nil)

// NewHTMLBuilder constructs an HTML builder with the default cell policy.
func NewHTMLBuilder(options ...HTMLOption) *HTMLBuilder {
	b := &HTMLBuilder{policy: CellPolicy()}
	b.setTitle(defaultHTMLTitle)
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(b)
	}
	return b
}

// AddTitle stores the escaped document title.
func (b *HTMLBuilder) AddTitle(title string) error {
	if err := b.checkOpen(); err != nil {
		return err
	}
	b.setTitle(htmlx.Escape(title))
	return nil
}

// AddLabel places a label bound to the entry named by the Target option.
func (b *HTMLBuilder) AddLabel(text string, row, column int, opts ...Option) error {
	if err := b.checkOpen(); err != nil {
		return err
	}
	attrs, err := collect("label", opts, KeyTarget)
	if err != nil {
		return err
	}
	target, ok := attrs[KeyTarget]
	if !ok {
		return fmt.Errorf("%w: label %q requires %s", ErrMissingOption, text, KeyTarget)
	}
	fragment := fmt.Sprintf(`<td><label for="%s">%s:</label></td>`, htmlx.Escape(target), htmlx.Escape(text))
	return b.cells.put(row, column, fragment)
}

// AddEntry places an input named variable. The Kind option defaults to text.
func (b *HTMLBuilder) AddEntry(variable string, row, column int, opts ...Option) error {
	if err := b.checkOpen(); err != nil {
		return err
	}
	attrs, err := collect("entry", opts, KeyKind)
	if err != nil {
		return err
	}
	kind := attrs[KeyKind]
	if kind == "" {
		kind = KindText
	}
	fragment := fmt.Sprintf(`<td><input name="%s" type="%s" /></td>`, htmlx.Escape(variable), htmlx.Escape(kind))
	return b.cells.put(row, column, fragment)
}

// AddButton places a submit button showing text.
func (b *HTMLBuilder) AddButton(text string, row, column int, opts ...Option) error {
	if err := b.checkOpen(); err != nil {
		return err
	}
	if _, err := collect("button", opts); err != nil {
		return err
	}
	fragment := fmt.Sprintf(`<td><input type="submit" value="%s" /></td>`, htmlx.Escape(text))
	return b.cells.put(row, column, fragment)
}

// Form renders the document. Cells appear in ascending (row, column) order
// with one table row per grid row.
func (b *HTMLBuilder) Form() (string, error) {
	if b.sealed {
		return b.out, nil
	}

	rows := b.cells.rows()
	if b.policy != nil {
		for _, row := range rows {
			for i, cell := range row {
				row[i] = b.policy.Sanitize(cell)
			}
		}
	}

	tpl, err := htmlTemplate()
	if err != nil {
		return "", fmt.Errorf("formbuilder: load template: %w", err)
	}
	out, err := tpl.Execute(pongo2.Context{
		"title": b.title,
		"rows":  rows,
	})
	if err != nil {
		return "", fmt.Errorf("formbuilder: render html: %w", err)
	}

	b.out = out
	b.sealed = true
	return out, nil
}
