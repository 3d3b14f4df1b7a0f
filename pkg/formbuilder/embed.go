package formbuilder

import (
	"embed"
	"io/fs"
	"sync"

	"github.com/flosch/pongo2/v6"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

const formTemplateName = "form.html.tpl"

var (
	formTemplateOnce sync.Once
	formTemplate     *pongo2.Template
	formTemplateErr  error
)

// TemplatesFS exposes the embedded document templates.
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		return embeddedTemplates
	}
	return sub
}

func htmlTemplate() (*pongo2.Template, error) {
	formTemplateOnce.Do(func() {
		set := pongo2.NewSet("formbuilder", pongo2.NewFSLoader(TemplatesFS()))
		formTemplate, formTemplateErr = set.FromFile(formTemplateName)
	})
	return formTemplate, formTemplateErr
}
