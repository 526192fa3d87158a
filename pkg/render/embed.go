package render

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

// DefaultStylesheetHref is the fixed path the document shell links when no
// stylesheet or theme asset is configured. The stylesheet itself is assumed
// to be pre-built and served by the host application (see pkg/assets).
const DefaultStylesheetHref = "/css/styles.css"

// TemplatesFS exposes the embedded shell template bundle for consumers that
// want to extend or inspect the built-in document shell.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
