// Package manifest builds component trees from declarative page documents.
// Documents are YAML (JSON parses too, YAML being a superset):
//
//	title: Home
//	components:
//	  - kind: heading
//	    text: Welcome
//	    level: 2
//	  - kind: dropdown
//	    name: city
//	    label: City
//	    options:
//	      - {value: bcn, label: Barcelona}
//
// Component invariants are enforced by the component constructors, so a
// manifest that violates one fails with the same ValidationError a direct
// caller would see.
package manifest

import (
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-uikit/pkg/component"
)

type document struct {
	Title        string    `yaml:"title"`
	Components   []rawNode `yaml:"components"`
	ExtraClasses string    `yaml:"extraClasses"`
	Classes      string    `yaml:"classes"`
}

type rawNode struct {
	Kind string `yaml:"kind"`

	Text  string `yaml:"text"`
	Level *int   `yaml:"level"`

	Title string `yaml:"title"`
	Items []struct {
		Text string `yaml:"text"`
		Href string `yaml:"href"`
	} `yaml:"items"`

	Name    string `yaml:"name"`
	Label   string `yaml:"label"`
	Options []struct {
		Value string `yaml:"value"`
		Label string `yaml:"label"`
	} `yaml:"options"`

	Min   *float64 `yaml:"min"`
	Max   *float64 `yaml:"max"`
	Step  *float64 `yaml:"step"`
	Value *float64 `yaml:"value"`

	HTML string `yaml:"html"`

	Components []rawNode `yaml:"components"`

	ExtraClasses string `yaml:"extraClasses"`
	Classes      string `yaml:"classes"`
}

// Parse decodes a page document into a Page component.
func Parse(data []byte) (component.Page, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return component.Page{}, fmt.Errorf("manifest: decode document: %w", err)
	}

	children, err := buildNodes(doc.Components)
	if err != nil {
		return component.Page{}, err
	}
	return component.NewPage(doc.Title, children, styleOptions(doc.ExtraClasses, doc.Classes)...), nil
}

// Load reads and parses a page document from fsys.
func Load(fsys fs.FS, name string) (component.Page, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return component.Page{}, fmt.Errorf("manifest: read %q: %w", name, err)
	}
	return Parse(data)
}

func buildNodes(raw []rawNode) ([]component.Node, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	nodes := make([]component.Node, 0, len(raw))
	for idx, entry := range raw {
		node, err := buildNode(entry)
		if err != nil {
			return nil, fmt.Errorf("manifest: component %d (%s): %w", idx, entry.Kind, err)
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

func buildNode(raw rawNode) (component.Node, error) {
	styles := styleOptions(raw.ExtraClasses, raw.Classes)

	switch component.Kind(raw.Kind) {
	case component.KindHeading:
		return component.NewHeading(raw.Text, intOrDefault(raw.Level, 1), styles...)
	case component.KindText:
		return component.NewText(raw.Text, styles...), nil
	case component.KindButton:
		return component.NewButton(raw.Text, styles...), nil
	case component.KindNavBar:
		items := make([]component.NavItem, 0, len(raw.Items))
		for _, item := range raw.Items {
			items = append(items, component.NavItem{Text: item.Text, Href: item.Href})
		}
		return component.NewNavBar(raw.Title, items, styles...), nil
	case component.KindDropdown:
		options := make([]component.SelectOption, 0, len(raw.Options))
		for _, option := range raw.Options {
			options = append(options, component.SelectOption{Value: option.Value, Label: option.Label})
		}
		return component.NewDropdown(raw.Name, options, raw.Label, styles...)
	case component.KindSlider:
		return component.NewSlider(
			raw.Name,
			floatOrDefault(raw.Min, 0),
			floatOrDefault(raw.Max, 100),
			floatOrDefault(raw.Step, 1),
			floatOrDefault(raw.Value, 50),
			raw.Label,
			styles...,
		)
	case component.KindMarkup:
		return component.NewMarkup(raw.HTML, styles...), nil
	case component.KindPage:
		children, err := buildNodes(raw.Components)
		if err != nil {
			return nil, err
		}
		return component.NewPage(raw.Title, children, styles...), nil
	default:
		return nil, fmt.Errorf("unknown component kind %q", raw.Kind)
	}
}

func styleOptions(extraClasses, classes string) []component.StyleOption {
	var options []component.StyleOption
	if extraClasses != "" {
		options = append(options, component.WithExtraClasses(extraClasses))
	}
	if classes != "" {
		options = append(options, component.WithClasses(classes))
	}
	return options
}

func intOrDefault(value *int, fallback int) int {
	if value == nil {
		return fallback
	}
	return *value
}

func floatOrDefault(value *float64, fallback float64) float64 {
	if value == nil {
		return fallback
	}
	return *value
}
