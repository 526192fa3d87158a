package uikit

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goliatone/go-uikit/pkg/component"
)

func TestWriteHTML(t *testing.T) {
	recorder := httptest.NewRecorder()
	WriteHTML(recorder, "<h1>hi</h1>")

	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", recorder.Code, http.StatusOK)
	}
	if got := recorder.Header().Get("Content-Type"); got != "text/html; charset=utf-8" {
		t.Fatalf("Content-Type = %q", got)
	}
	if recorder.Body.String() != "<h1>hi</h1>" {
		t.Fatalf("body = %q", recorder.Body.String())
	}
}

func TestRespond(t *testing.T) {
	renderer, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}

	recorder := httptest.NewRecorder()
	if err := Respond(recorder, renderer, Button("Save")); err != nil {
		t.Fatalf("Respond: %v", err)
	}
	if got := recorder.Header().Get("Content-Type"); got != "text/html; charset=utf-8" {
		t.Fatalf("Content-Type = %q", got)
	}
	if !strings.Contains(recorder.Body.String(), ">Save</button>") {
		t.Fatalf("body = %q", recorder.Body.String())
	}
}

type foreignNode struct{}

func (foreignNode) Kind() component.Kind      { return component.Kind("foreign") }
func (foreignNode) Styling() component.Styles { return component.Styles{} }

func TestRespondFailureWritesNothing(t *testing.T) {
	renderer, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}

	recorder := httptest.NewRecorder()
	if err := Respond(recorder, renderer, foreignNode{}); err == nil {
		t.Fatal("Respond with unrenderable node expected error")
	}
	if recorder.Body.Len() != 0 {
		t.Fatalf("failed render wrote %q", recorder.Body.String())
	}
	if got := recorder.Header().Get("Content-Type"); got != "" {
		t.Fatalf("failed render set Content-Type %q", got)
	}
}

func TestRespondNilRenderer(t *testing.T) {
	recorder := httptest.NewRecorder()
	if err := Respond(recorder, nil, Text("hi")); err == nil {
		t.Fatal("nil renderer expected error")
	}
	if recorder.Body.Len() != 0 {
		t.Fatal("nil renderer should not write")
	}
}

func TestPageRoundTripThroughRootHelpers(t *testing.T) {
	renderer, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}

	heading, err := Heading("Welcome", 1)
	if err != nil {
		t.Fatalf("Heading: %v", err)
	}
	dropdown, err := Dropdown("city", []SelectOption{{Value: "bcn", Label: "Barcelona"}}, "City")
	if err != nil {
		t.Fatalf("Dropdown: %v", err)
	}
	slider, err := Slider("volume", 0, 100, 1, 50, "Volume")
	if err != nil {
		t.Fatalf("Slider: %v", err)
	}

	page := Page("Home", []Node{
		NavBar("Demo", []NavItem{{Text: "Home", Href: "/"}}),
		heading,
		Text("Body copy."),
		dropdown,
		slider,
		Markup("<p>extra</p>"),
		Button("Save", WithExtraClasses("mt-4")),
	})

	recorder := httptest.NewRecorder()
	if err := Respond(recorder, renderer, page); err != nil {
		t.Fatalf("Respond: %v", err)
	}
	body := recorder.Body.String()
	for _, fragment := range []string{
		"<title>Home</title>",
		">Welcome</h1>",
		`name="city"`,
		`id="slider_volume"`,
		">Save</button>",
	} {
		if !strings.Contains(body, fragment) {
			t.Errorf("page missing %q", fragment)
		}
	}
}
