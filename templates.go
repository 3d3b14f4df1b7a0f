package patterns

import (
	"io/fs"

	"github.com/goliatone/go-patterns/pkg/formbuilder"
)

// EmbeddedTemplates exposes the built-in form document template so callers
// can inspect or copy it without importing the builder package directly.
func EmbeddedTemplates() fs.FS {
	return formbuilder.TemplatesFS()
}
