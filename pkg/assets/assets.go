// Package assets serves the pre-built static files a rendered page links,
// typically the utility stylesheet, with an explicit cache policy.
package assets

import (
	"fmt"
	"io/fs"
	"net/http"
	"time"
)

// Handler serves files from fsys and stamps every response with a
// Cache-Control header of the form "max-age=<seconds>, must-revalidate".
// The must-revalidate directive forces clients to reconfirm a stale copy
// with the server instead of reusing it, so a rebuilt stylesheet is picked
// up as soon as the max-age window lapses.
func Handler(fsys fs.FS, maxAge time.Duration) http.Handler {
	fileServer := http.FileServerFS(fsys)
	cacheControl := fmt.Sprintf("max-age=%d, must-revalidate", int64(maxAge/time.Second))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", cacheControl)
		fileServer.ServeHTTP(w, r)
	})
}
