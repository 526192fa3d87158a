package component

// Markup carries a fragment of caller-supplied HTML. The renderer passes it
// through a sanitizer policy instead of entity-escaping it, so it is the one
// escape hatch for embedding pre-built markup inside a page.
type Markup struct {
	html   string
	styles Styles
}

// NewMarkup constructs a Markup fragment.
func NewMarkup(html string, options ...StyleOption) Markup {
	return Markup{
		html:   html,
		styles: applyStyleOptions(options),
	}
}

func (m Markup) Kind() Kind      { return KindMarkup }
func (m Markup) Styling() Styles { return m.styles }
func (m Markup) HTML() string    { return m.html }
