// Package template defines the renderer-agnostic seam the document shell is
// rendered through, so callers can swap the built-in pongo2 engine for their
// own implementation.
package template

import "io"

// TemplateRenderer is the contract shell template engines satisfy. Render
// decides between a named template and inline content; the other two methods
// are explicit about which they expect.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
}
