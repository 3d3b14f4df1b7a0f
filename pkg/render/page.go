package render

// Page is a titled sequence of paragraphs bound to a renderer that was
// validated when the page was created.
type Page struct {
	title      string
	paragraphs []string
	renderer   Renderer
}

// NewPage binds title to renderer. The renderer is accepted structurally; a
// candidate missing any operation fails with ErrWrongAdapter.
func NewPage(title string, renderer any) (*Page, error) {
	r, err := AsRenderer(renderer)
	if err != nil {
		return nil, err
	}
	return &Page{title: title, renderer: r}, nil
}

// Title returns the page title.
func (p *Page) Title() string {
	return p.title
}

// Paragraphs returns a copy of the paragraph bodies in insertion order.
func (p *Page) Paragraphs() []string {
	return append([]string(nil), p.paragraphs...)
}

// AddParagraph appends a paragraph body.
func (p *Page) AddParagraph(body string) {
	p.paragraphs = append(p.paragraphs, body)
}

// Render emits the header, every paragraph in order and the footer. The
// first renderer error stops rendering and is returned unchanged. The page
// itself is not modified.
func (p *Page) Render() error {
	if err := p.renderer.Header(p.title); err != nil {
		return err
	}
	for _, body := range p.paragraphs {
		if err := p.renderer.Paragraph(body); err != nil {
			return err
		}
	}
	return p.renderer.Footer()
}
