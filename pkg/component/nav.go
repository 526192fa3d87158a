package component

import "slices"

// NavItem is a single navigation link.
type NavItem struct {
	Text string
	Href string
}

// NavBar is a horizontal navigation bar with a brand title and an ordered
// list of links. An empty item list renders an empty nav.
type NavBar struct {
	title  string
	items  []NavItem
	styles Styles
}

// NewNavBar constructs a NavBar. The item slice is copied so later caller
// mutations cannot reach the constructed value.
func NewNavBar(title string, items []NavItem, options ...StyleOption) NavBar {
	return NavBar{
		title:  title,
		items:  slices.Clone(items),
		styles: applyStyleOptions(options),
	}
}

func (n NavBar) Kind() Kind      { return KindNavBar }
func (n NavBar) Styling() Styles { return n.styles }
func (n NavBar) Title() string   { return n.title }

// Items returns the navigation links in input order.
func (n NavBar) Items() []NavItem {
	return slices.Clone(n.items)
}
