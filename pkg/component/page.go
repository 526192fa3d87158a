package component

import "slices"

// Page is a full document: a title plus an ordered sequence of child
// components wrapped in the document shell at render time. Children may be
// empty. Nesting a Page inside a Page is permitted but discouraged, since the
// inner page renders its own complete shell.
type Page struct {
	title    string
	children []Node
	styles   Styles
}

// NewPage constructs a Page. The child slice is copied; the order given here
// is the document's top-to-bottom layout.
func NewPage(title string, children []Node, options ...StyleOption) Page {
	return Page{
		title:    title,
		children: slices.Clone(children),
		styles:   applyStyleOptions(options),
	}
}

func (p Page) Kind() Kind      { return KindPage }
func (p Page) Styling() Styles { return p.styles }
func (p Page) Title() string   { return p.title }

// Children returns the page's components in input order.
func (p Page) Children() []Node {
	return slices.Clone(p.children)
}
