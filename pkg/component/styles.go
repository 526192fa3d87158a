package component

import "strings"

// StyleMode enumerates how a component's class attribute is produced. The
// three modes are mutually exclusive, which keeps the "extra vs. override"
// rule structural instead of a convention between two optional strings.
type StyleMode int

const (
	// StyleModeBase emits the component's default class list unchanged.
	StyleModeBase StyleMode = iota
	// StyleModeExtend appends caller classes after the default list.
	StyleModeExtend
	// StyleModeOverride replaces the default list entirely.
	StyleModeOverride
)

// Styles is a component's styling configuration. The zero value means
// "defaults only".
type Styles struct {
	mode    StyleMode
	classes string
}

// StyleOption customises a component's styling at construction time.
type StyleOption func(*Styles)

// WithExtraClasses appends classes to the component's default class list.
// It is ignored when WithClasses has replaced the list outright.
func WithExtraClasses(classes string) StyleOption {
	return func(s *Styles) {
		trimmed := strings.TrimSpace(classes)
		if trimmed == "" || s.mode == StyleModeOverride {
			return
		}
		s.mode = StyleModeExtend
		s.classes = trimmed
	}
}

// WithClasses replaces the component's default class list entirely. It wins
// over WithExtraClasses regardless of option order.
func WithClasses(classes string) StyleOption {
	return func(s *Styles) {
		trimmed := strings.TrimSpace(classes)
		if trimmed == "" {
			return
		}
		s.mode = StyleModeOverride
		s.classes = trimmed
	}
}

// Mode reports the styling mode.
func (s Styles) Mode() StyleMode {
	return s.mode
}

// Resolve produces the final class attribute value for a component whose
// default class list is base. Duplicate class names are left alone; they are
// harmless in CSS and filtering them would make output order-dependent.
func (s Styles) Resolve(base string) string {
	switch s.mode {
	case StyleModeOverride:
		return s.classes
	case StyleModeExtend:
		return strings.TrimSpace(base + " " + s.classes)
	default:
		return strings.TrimSpace(base)
	}
}

func applyStyleOptions(options []StyleOption) Styles {
	var styles Styles
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&styles)
	}
	return styles
}
