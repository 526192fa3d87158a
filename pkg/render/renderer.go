// Package render turns component values into HTML. Fragment markup is built
// directly with escaped string writes; whole pages are wrapped in a document
// shell rendered through the template seam in pkg/render/template.
package render

import (
	"fmt"
	"io/fs"

	theme "github.com/goliatone/go-theme"
	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-uikit/pkg/component"
	rendertemplate "github.com/goliatone/go-uikit/pkg/render/template"
	"github.com/goliatone/go-uikit/pkg/render/template/pongo"
)

// Option configures the renderer before construction.
type Option func(*config)

type config struct {
	stylesheets      []string
	themeConfig      *theme.RendererConfig
	themeErr         error
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	sanitizer        *bluemonday.Policy
}

// WithStylesheets overrides the stylesheet links the document shell emits.
func WithStylesheets(hrefs ...string) Option {
	return func(cfg *config) {
		if len(hrefs) == 0 {
			return
		}
		cfg.stylesheets = append([]string(nil), hrefs...)
	}
}

// WithThemeConfig applies a resolved theme configuration: class tokens
// override the default class lists, tokens surface as CSS custom properties
// in the shell, and the theme's stylesheet asset is linked when present.
func WithThemeConfig(themeConfig *theme.RendererConfig) Option {
	return func(cfg *config) {
		if themeConfig != nil {
			cfg.themeConfig = themeConfig
		}
	}
}

// WithTheme resolves name/variant through the selector and applies the
// resulting configuration. Selection failures surface from New.
func WithTheme(selector theme.ThemeSelector, name, variant string) Option {
	return func(cfg *config) {
		if selector == nil {
			return
		}
		selection, err := selector.Select(name, variant)
		if err != nil {
			cfg.themeErr = fmt.Errorf("render: select theme %q: %w", name, err)
			return
		}
		cfg.themeConfig = ThemeConfig(selection)
	}
}

// WithTemplatesFS supplies an alternate shell template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplateRenderer injects a custom shell template engine.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithSanitizer overrides the policy applied to Markup components.
func WithSanitizer(policy *bluemonday.Policy) Option {
	return func(cfg *config) {
		if policy != nil {
			cfg.sanitizer = policy
		}
	}
}

// Renderer maps component values to HTML strings. All state is fixed in New
// and only read afterwards, so a single Renderer is safe to share across
// concurrent requests.
type Renderer struct {
	classes      map[component.Kind]string
	stylesheets  []string
	cssVars      string
	pageTemplate string
	templates    rendertemplate.TemplateRenderer
	sanitizer    *bluemonday.Policy
}

// New constructs a Renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.themeErr != nil {
		return nil, cfg.themeErr
	}
	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	templates := cfg.templateRenderer
	if templates == nil {
		engine, err := pongo.New(
			pongo.WithFS(cfg.templateFS),
			pongo.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("render: configure template renderer: %w", err)
		}
		templates = engine
	}

	classes := defaultClasses()
	stylesheets := cfg.stylesheets
	if len(stylesheets) == 0 {
		stylesheets = []string{DefaultStylesheetHref}
	}
	cssVars := ""
	pageTemplate := "templates/page"

	if tc := cfg.themeConfig; tc != nil {
		for kind := range classes {
			if override := tc.Tokens[classTokenPrefix+string(kind)]; override != "" {
				classes[kind] = override
			}
		}
		if tc.AssetURL != nil {
			if href := tc.AssetURL("stylesheet"); href != "" {
				stylesheets = append(stylesheets, href)
			}
		}
		cssVars = cssVarsStyle(tc.CSSVars)
		if partial := tc.Partials["page"]; partial != "" {
			pageTemplate = partial
		}
	}

	sanitizer := cfg.sanitizer
	if sanitizer == nil {
		sanitizer = defaultMarkupPolicy()
	}

	return &Renderer{
		classes:      classes,
		stylesheets:  stylesheets,
		cssVars:      cssVars,
		pageTemplate: pageTemplate,
		templates:    templates,
		sanitizer:    sanitizer,
	}, nil
}

func (r *Renderer) Name() string {
	return "uikit"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render produces the HTML for a single component. Every variant yields a
// fragment except Page, which wraps its children in the document shell.
// Rendering either succeeds completely or fails before producing output.
func (r *Renderer) Render(node component.Node) (string, error) {
	switch n := node.(type) {
	case component.Heading:
		return r.renderHeading(n), nil
	case component.Text:
		return r.renderText(n), nil
	case component.Button:
		return r.renderButton(n), nil
	case component.NavBar:
		return r.renderNavBar(n), nil
	case component.Dropdown:
		return r.renderDropdown(n), nil
	case component.Slider:
		return r.renderSlider(n), nil
	case component.Markup:
		return r.renderMarkup(n), nil
	case component.Page:
		return r.renderPage(n)
	default:
		return "", &RenderError{Node: node}
	}
}
