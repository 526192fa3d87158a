package render

import (
	"testing"

	theme "github.com/goliatone/go-theme"
	"github.com/google/go-cmp/cmp"
)

func TestThemeConfigNilSelection(t *testing.T) {
	if got := ThemeConfig(nil); got != nil {
		t.Fatalf("ThemeConfig(nil) = %v, want nil", got)
	}
	if got := ThemeConfig(&theme.Selection{Theme: "base"}); got != nil {
		t.Fatalf("ThemeConfig without manifest = %v, want nil", got)
	}
}

func TestThemeConfigMergesVariant(t *testing.T) {
	selection := &theme.Selection{
		Theme:   "aurora",
		Variant: "dark",
		Manifest: &theme.Manifest{
			Name: "aurora",
			Tokens: map[string]string{
				"accent":         "#3366ff",
				"classes.button": "btn",
			},
			Templates: map[string]string{
				"page": "shells/default",
			},
			Assets: theme.Assets{
				Prefix: "/themes/aurora/",
				Files: map[string]string{
					"stylesheet": "aurora.css",
				},
			},
			Variants: map[string]theme.Variant{
				"dark": {
					Tokens: map[string]string{
						"accent": "#99ccff",
					},
					Assets: theme.Assets{
						Files: map[string]string{
							"stylesheet": "aurora-dark.css",
						},
					},
				},
			},
		},
	}

	cfg := ThemeConfig(selection)
	if cfg == nil {
		t.Fatal("ThemeConfig returned nil")
	}
	if cfg.Theme != "aurora" || cfg.Variant != "dark" {
		t.Fatalf("theme/variant = %q/%q", cfg.Theme, cfg.Variant)
	}

	wantTokens := map[string]string{
		"accent":         "#99ccff",
		"classes.button": "btn",
	}
	if diff := cmp.Diff(wantTokens, cfg.Tokens); diff != "" {
		t.Fatalf("tokens mismatch (-want +got):\n%s", diff)
	}

	wantVars := map[string]string{
		"--accent":         "#99ccff",
		"--classes.button": "btn",
	}
	if diff := cmp.Diff(wantVars, cfg.CSSVars); diff != "" {
		t.Fatalf("css vars mismatch (-want +got):\n%s", diff)
	}

	if got := cfg.AssetURL("stylesheet"); got != "/themes/aurora/aurora-dark.css" {
		t.Fatalf("AssetURL(stylesheet) = %q", got)
	}
	if got := cfg.AssetURL("missing"); got != "" {
		t.Fatalf("AssetURL(missing) = %q, want empty", got)
	}
	if cfg.Partials["page"] != "shells/default" {
		t.Fatalf("partials = %v", cfg.Partials)
	}
}

func TestThemeConfigVariantPrefixOverride(t *testing.T) {
	selection := &theme.Selection{
		Theme:   "aurora",
		Variant: "dark",
		Manifest: &theme.Manifest{
			Assets: theme.Assets{
				Prefix: "/themes/aurora",
				Files:  map[string]string{"stylesheet": "base.css"},
			},
			Variants: map[string]theme.Variant{
				"dark": {
					Assets: theme.Assets{Prefix: "/cdn/aurora-dark"},
				},
			},
		},
	}

	cfg := ThemeConfig(selection)
	if got := cfg.AssetURL("stylesheet"); got != "/cdn/aurora-dark/base.css" {
		t.Fatalf("AssetURL(stylesheet) = %q", got)
	}
}

func TestCSSVarsStyle(t *testing.T) {
	got := cssVarsStyle(map[string]string{
		"--b": "2",
		"--a": "1",
	})
	want := ":root {\n--a: 1;\n--b: 2;\n}"
	if got != want {
		t.Fatalf("cssVarsStyle = %q, want %q", got, want)
	}

	if got := cssVarsStyle(nil); got != "" {
		t.Fatalf("cssVarsStyle(nil) = %q, want empty", got)
	}
}
