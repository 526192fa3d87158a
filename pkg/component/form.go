package component

import (
	"slices"
	"strings"
	"unicode"
)

// SelectOption is a single dropdown entry.
type SelectOption struct {
	Value string
	Label string
}

// Dropdown is a select field with an optional label bound to it.
type Dropdown struct {
	name    string
	label   string
	options []SelectOption
	styles  Styles
}

// NewDropdown constructs a Dropdown. name must be a valid form-field
// identifier: non-empty with no whitespace.
func NewDropdown(name string, options []SelectOption, label string, styleOptions ...StyleOption) (Dropdown, error) {
	if err := validateFieldName(KindDropdown, name); err != nil {
		return Dropdown{}, err
	}
	return Dropdown{
		name:    name,
		label:   label,
		options: slices.Clone(options),
		styles:  applyStyleOptions(styleOptions),
	}, nil
}

func (d Dropdown) Kind() Kind      { return KindDropdown }
func (d Dropdown) Styling() Styles { return d.styles }
func (d Dropdown) Name() string    { return d.name }
func (d Dropdown) Label() string   { return d.label }

// Options returns the dropdown entries in input order.
func (d Dropdown) Options() []SelectOption {
	return slices.Clone(d.options)
}

// Slider is a range input with an optional label and a live value readout.
type Slider struct {
	name     string
	label    string
	minValue float64
	maxValue float64
	step     float64
	value    float64
	styles   Styles
}

// NewSlider constructs a Slider. name follows the form-field identifier rule,
// step must be positive, and value must sit inside [minValue, maxValue].
func NewSlider(name string, minValue, maxValue, step, value float64, label string, styleOptions ...StyleOption) (Slider, error) {
	if err := validateFieldName(KindSlider, name); err != nil {
		return Slider{}, err
	}
	if step <= 0 {
		return Slider{}, newValidationError(KindSlider, "step", "must be greater than zero")
	}
	if minValue > maxValue {
		return Slider{}, newValidationError(KindSlider, "minValue", "must not exceed maxValue")
	}
	if value < minValue || value > maxValue {
		return Slider{}, newValidationError(KindSlider, "value", "must be within [minValue, maxValue]")
	}
	return Slider{
		name:     name,
		label:    label,
		minValue: minValue,
		maxValue: maxValue,
		step:     step,
		value:    value,
		styles:   applyStyleOptions(styleOptions),
	}, nil
}

func (s Slider) Kind() Kind        { return KindSlider }
func (s Slider) Styling() Styles   { return s.styles }
func (s Slider) Name() string      { return s.name }
func (s Slider) Label() string     { return s.label }
func (s Slider) MinValue() float64 { return s.minValue }
func (s Slider) MaxValue() float64 { return s.maxValue }
func (s Slider) Step() float64     { return s.step }
func (s Slider) Value() float64    { return s.value }

func validateFieldName(kind Kind, name string) error {
	if strings.TrimSpace(name) == "" {
		return newValidationError(kind, "name", "is required")
	}
	if strings.ContainsFunc(name, unicode.IsSpace) {
		return newValidationError(kind, "name", "must not contain whitespace")
	}
	return nil
}
