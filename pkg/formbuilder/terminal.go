package formbuilder

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

const (
	defaultTerminalTitle = "Form"
	defaultEntryWidth    = 10
)

type widgetKind int

const (
	widgetLabel widgetKind = iota
	widgetEntry
	widgetButton
)

type widget struct {
	kind  widgetKind
	text  string
	input string
}

// TerminalOption configures a TerminalBuilder.
type TerminalOption func(*TerminalBuilder)

// WithColorProfile selects the colour profile used for styling. The default
// is termenv.Ascii, which keeps the output free of escape sequences.
func WithColorProfile(profile termenv.Profile) TerminalOption {
	return func(b *TerminalBuilder) {
		b.profile = profile
	}
}

// WithEntryWidth sets how many columns an entry field occupies.
func WithEntryWidth(width int) TerminalOption {
	return func(b *TerminalBuilder) {
		if width > 0 {
			b.entryWidth = width
		}
	}
}

// TerminalBuilder emits the form as a bordered text panel with aligned
// columns, suitable for printing to a terminal.
type TerminalBuilder struct {
	base
	cells      grid[widget]
	profile    termenv.Profile
	entryWidth int
	out        string
}

var _ Builder = (*TerminalBuilder)(nil)

// NewTerminalBuilder constructs a terminal builder.
func NewTerminalBuilder(options ...TerminalOption) *TerminalBuilder {
	b := &TerminalBuilder{
		profile:    termenv.Ascii,
		entryWidth: defaultEntryWidth,
	}
	b.setTitle(defaultTerminalTitle)
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(b)
	}
	return b
}

// AddTitle stores the panel title verbatim.
func (b *TerminalBuilder) AddTitle(title string) error {
	if err := b.checkOpen(); err != nil {
		return err
	}
	b.setTitle(title)
	return nil
}

// AddLabel places a label. The Target option is accepted for parity with
// other builders but has no visual effect.
func (b *TerminalBuilder) AddLabel(text string, row, column int, opts ...Option) error {
	if err := b.checkOpen(); err != nil {
		return err
	}
	if _, err := collect("label", opts, KeyTarget); err != nil {
		return err
	}
	return b.cells.put(row, column, widget{kind: widgetLabel, text: text})
}

// AddEntry places an input field; password entries are drawn masked.
func (b *TerminalBuilder) AddEntry(variable string, row, column int, opts ...Option) error {
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
	return b.cells.put(row, column, widget{kind: widgetEntry, text: variable, input: kind})
}

// AddButton places a push button.
func (b *TerminalBuilder) AddButton(text string, row, column int, opts ...Option) error {
	if err := b.checkOpen(); err != nil {
		return err
	}
	if _, err := collect("button", opts); err != nil {
		return err
	}
	return b.cells.put(row, column, widget{kind: widgetButton, text: text})
}

// Form lays the widgets out in aligned columns inside a rounded border.
func (b *TerminalBuilder) Form() (string, error) {
	if b.sealed {
		return b.out, nil
	}

	renderer := lipgloss.NewRenderer(io.Discard)
	renderer.SetColorProfile(b.profile)

	columns := b.cells.columns()
	widths := make([]int, columns)
	drawn := make(map[Cell]string, len(b.cells.cells))
	for cell, w := range b.cells.cells {
		text := b.draw(w)
		drawn[cell] = text
		if width := lipgloss.Width(text); width > widths[cell.Column] {
			widths[cell.Column] = width
		}
	}

	lines := []string{renderer.NewStyle().Bold(true).Render(b.title), ""}
	current := -1
	var row []string
	flush := func() {
		if row == nil {
			return
		}
		lines = append(lines, strings.TrimRight(lipgloss.JoinHorizontal(lipgloss.Top, row...), " "))
		row = nil
	}
	for _, cell := range b.cells.sorted() {
		if cell.Row != current {
			flush()
			current = cell.Row
			row = make([]string, 0, 2*columns)
			for col := 0; col < columns; col++ {
				if col > 0 {
					row = append(row, " ")
				}
				row = append(row, strings.Repeat(" ", widths[col]))
			}
		}
		row[2*cell.Column] = renderer.NewStyle().Width(widths[cell.Column]).Render(drawn[cell])
	}
	flush()

	panel := renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))

	b.out = panel + "\n"
	b.sealed = true
	return b.out, nil
}

func (b *TerminalBuilder) draw(w widget) string {
	switch w.kind {
	case widgetLabel:
		return w.text + ":"
	case widgetEntry:
		fill := "_"
		if w.input == KindPassword {
			fill = "*"
		}
		return "[" + strings.Repeat(fill, b.entryWidth) + "]"
	case widgetButton:
		return fmt.Sprintf("< %s >", w.text)
	default:
		return w.text
	}
}
