package render

import "fmt"

// RenderError reports a node the renderer does not recognize. With the closed
// component set this branch should be unreachable; it exists so a foreign Node
// implementation fails loudly instead of rendering nothing.
type RenderError struct {
	Node any
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render: unsupported component %T", e.Node)
}
