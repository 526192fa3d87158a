// Package uikit renders server-side HTML components styled with utility
// classes. Components are immutable values built through constructors that
// validate their arguments; a Renderer turns them into escaped HTML
// fragments, and a Page component wraps fragments in a full document shell.
//
// Quick start:
//
//	heading, _ := uikit.Heading("Welcome", 1)
//	button := uikit.Button("Save", uikit.WithExtraClasses("mt-4"))
//	page := uikit.Page("Home", []uikit.Node{heading, button})
//
//	renderer, _ := uikit.NewRenderer()
//	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
//		_ = uikit.Respond(w, renderer, page)
//	})
//
// Subpackages hold the building blocks: pkg/component defines the component
// values, pkg/render produces HTML and applies go-theme configuration,
// pkg/manifest builds component trees from YAML documents, and pkg/assets
// serves static files with cache headers.
package uikit
