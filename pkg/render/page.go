package render

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-uikit/pkg/component"
)

// renderPage assembles a full document: each child renders in input order and
// the concatenated fragments are wrapped in the shell template. An empty
// child list still yields a complete shell with an empty body.
func (r *Renderer) renderPage(p component.Page) (string, error) {
	children := p.Children()
	fragments := make([]string, 0, len(children))
	for _, child := range children {
		fragment, err := r.Render(child)
		if err != nil {
			return "", err
		}
		fragments = append(fragments, fragment)
	}

	out, err := r.templates.RenderTemplate(r.pageTemplate, map[string]any{
		"title":        p.Title(),
		"body":         strings.Join(fragments, "\n"),
		"stylesheets":  r.stylesheets,
		"css_vars":     r.cssVars,
		"body_classes": p.Styling().Resolve(""),
	})
	if err != nil {
		return "", fmt.Errorf("render: page shell: %w", err)
	}
	return out, nil
}
