package assets

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"
	"time"
)

func TestHandlerServesFilesWithCacheControl(t *testing.T) {
	fsys := fstest.MapFS{
		"styles.css": &fstest.MapFile{Data: []byte("body { margin: 0; }")},
	}
	handler := Handler(fsys, time.Hour)

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/styles.css", nil))

	response := recorder.Result()
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", response.StatusCode, http.StatusOK)
	}
	if got := response.Header.Get("Cache-Control"); got != "max-age=3600, must-revalidate" {
		t.Fatalf("Cache-Control = %q", got)
	}
	body, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if string(body) != "body { margin: 0; }" {
		t.Fatalf("body = %q", body)
	}
}

func TestHandlerMissingFile(t *testing.T) {
	handler := Handler(fstest.MapFS{}, time.Minute)

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/missing.css", nil))

	if recorder.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", recorder.Code, http.StatusNotFound)
	}
}

func TestHandlerSubSecondMaxAge(t *testing.T) {
	handler := Handler(fstest.MapFS{
		"a.css": &fstest.MapFile{Data: []byte("a")},
	}, 90*time.Second)

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/a.css", nil))

	if got := recorder.Header().Get("Cache-Control"); got != "max-age=90, must-revalidate" {
		t.Fatalf("Cache-Control = %q", got)
	}
}
