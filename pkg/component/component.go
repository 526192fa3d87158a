// Package component defines the immutable building blocks the renderer
// consumes. Every component is constructed once, carries its own styling
// configuration, and is never mutated afterwards, so values can be rendered
// from any number of goroutines without coordination.
package component

// Kind identifies a component variant. The set is closed: the renderer
// dispatches over it exhaustively and treats anything else as an error.
type Kind string

const (
	KindHeading  Kind = "heading"
	KindText     Kind = "text"
	KindButton   Kind = "button"
	KindNavBar   Kind = "navbar"
	KindDropdown Kind = "dropdown"
	KindSlider   Kind = "slider"
	KindMarkup   Kind = "markup"
	KindPage     Kind = "page"
)

// Node is the contract every component variant satisfies. Implementations are
// value types produced by the constructors in this package; rendering a Node
// allocates only local state.
type Node interface {
	Kind() Kind
	Styling() Styles
}
