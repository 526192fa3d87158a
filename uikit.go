package uikit

import (
	"errors"
	"net/http"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-uikit/pkg/component"
	"github.com/goliatone/go-uikit/pkg/render"
)

// Node aliases component.Node so callers can hold mixed component trees
// without importing the component package.
type Node = component.Node

// StyleOption aliases component.StyleOption for styling any constructor.
type StyleOption = component.StyleOption

// NavItem is a single navigation link.
type NavItem = component.NavItem

// SelectOption is a single dropdown entry.
type SelectOption = component.SelectOption

// ValidationError reports a constructor argument that violated a component
// invariant.
type ValidationError = component.ValidationError

// Renderer turns component values into HTML strings.
type Renderer = render.Renderer

// WithExtraClasses appends utility classes after a component's defaults.
func WithExtraClasses(classes string) StyleOption {
	return component.WithExtraClasses(classes)
}

// WithClasses replaces a component's default classes entirely. It wins over
// WithExtraClasses regardless of option order.
func WithClasses(classes string) StyleOption {
	return component.WithClasses(classes)
}

// Heading builds a heading component for levels 1 through 6.
func Heading(text string, level int, options ...StyleOption) (component.Heading, error) {
	return component.NewHeading(text, level, options...)
}

// Text builds a paragraph component.
func Text(text string, options ...StyleOption) component.Text {
	return component.NewText(text, options...)
}

// Button builds a button component.
func Button(text string, options ...StyleOption) component.Button {
	return component.NewButton(text, options...)
}

// NavBar builds a navigation bar with a brand title and link items.
func NavBar(title string, items []NavItem, options ...StyleOption) component.NavBar {
	return component.NewNavBar(title, items, options...)
}

// Dropdown builds a select component. The name must be non-empty and free of
// whitespace since it becomes the form field name.
func Dropdown(name string, options []SelectOption, label string, styleOptions ...StyleOption) (component.Dropdown, error) {
	return component.NewDropdown(name, options, label, styleOptions...)
}

// Slider builds a range input with a live value display. The value must sit
// inside [minValue, maxValue] and step must be positive.
func Slider(name string, minValue, maxValue, step, value float64, label string, options ...StyleOption) (component.Slider, error) {
	return component.NewSlider(name, minValue, maxValue, step, value, label, options...)
}

// Markup wraps raw HTML that is sanitized at render time.
func Markup(html string, options ...StyleOption) component.Markup {
	return component.NewMarkup(html, options...)
}

// Page groups child components under a document title. Rendering a Page
// yields a complete HTML document rather than a fragment.
func Page(title string, children []Node, options ...StyleOption) component.Page {
	return component.NewPage(title, children, options...)
}

// NewRenderer exposes the renderer constructor from the root package.
func NewRenderer(options ...render.Option) (*Renderer, error) {
	return render.New(options...)
}

// WithTheme resolves a theme/variant pair through the selector and applies
// its class tokens, CSS variables, and stylesheet asset to the renderer.
func WithTheme(selector theme.ThemeSelector, name, variant string) render.Option {
	return render.WithTheme(selector, name, variant)
}

// WriteHTML writes html as a 200 response with the text/html content type.
// The markup is written verbatim: it is already escaped by the renderer.
func WriteHTML(w http.ResponseWriter, html string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(html))
}

// Respond renders node and writes the result to w. Rendering runs to
// completion before anything is written, so a failure leaves the response
// untouched and the caller free to emit an error page instead.
func Respond(w http.ResponseWriter, r *Renderer, node Node) error {
	if r == nil {
		return errors.New("uikit: renderer is required")
	}
	html, err := r.Render(node)
	if err != nil {
		return err
	}
	WriteHTML(w, html)
	return nil
}
