package web_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/JaimeStill/penguin/pkg/web"
)

var testFS = fstest.MapFS{
	"layouts/app.html": &fstest.MapFile{Data: []byte(
		`{{ define "app" }}<title>{{ .Title }}</title><base href="{{ .BasePath }}/">{{ template "content" . }}{{ end }}`,
	)},
	"views/home.html": &fstest.MapFile{Data: []byte(
		`{{ define "content" }}<p>{{ .Data }}</p>{{ end }}`,
	)},
	"views/missing.html": &fstest.MapFile{Data: []byte(
		`{{ define "content" }}not found{{ end }}`,
	)},
	"static/app.css": &fstest.MapFile{Data: []byte("body{}")},
}

var (
	homeView    = web.ViewDef{Template: "home.html", Title: "Home"}
	missingView = web.ViewDef{Template: "missing.html", Title: "Not Found"}
)

func newSet(t *testing.T) *web.TemplateSet {
	t.Helper()
	ts, err := web.NewTemplateSet(testFS, testFS, "layouts/*.html", "views", "/app", []web.ViewDef{homeView, missingView})
	if err != nil {
		t.Fatalf("new template set: %v", err)
	}
	return ts
}

func TestRenderEscapesData(t *testing.T) {
	ts := newSet(t)
	rec := httptest.NewRecorder()

	if err := ts.Render(rec, http.StatusAccepted, "app", homeView, "<script>x</script>"); err != nil {
		t.Fatalf("render: %v", err)
	}

	body := rec.Body.String()
	if rec.Code != http.StatusAccepted {
		t.Errorf("status: got %d, want 202", rec.Code)
	}
	if !strings.Contains(body, "&lt;script&gt;") {
		t.Errorf("data not escaped: %s", body)
	}
	if !strings.Contains(body, `<base href="/app/">`) {
		t.Errorf("base path missing: %s", body)
	}
	if !strings.Contains(body, "<title>Home</title>") {
		t.Errorf("title missing: %s", body)
	}
}

func TestRenderUnknownView(t *testing.T) {
	ts := newSet(t)
	rec := httptest.NewRecorder()

	err := ts.Render(rec, http.StatusOK, "app", web.ViewDef{Template: "nope.html"}, nil)
	if err == nil {
		t.Fatal("expected error for unknown view")
	}
	if rec.Body.Len() != 0 {
		t.Errorf("body written on failure: %q", rec.Body.String())
	}
}

func TestRouterFallback(t *testing.T) {
	ts := newSet(t)

	r := web.NewRouter()
	r.HandleFunc("GET /known", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Handle("GET /static/", web.DistServer(testFS, "static", "/static"))
	r.SetFallback(ts.ErrorHandler("app", missingView, http.StatusNotFound))

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantBody   string
	}{
		{"registered", "/known", http.StatusOK, ""},
		{"static asset", "/static/app.css", http.StatusOK, "body{}"},
		{"fallback", "/unknown", http.StatusNotFound, "not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest("GET", tt.path, nil))

			if rec.Code != tt.wantStatus {
				t.Errorf("status: got %d, want %d", rec.Code, tt.wantStatus)
			}
			if !strings.Contains(rec.Body.String(), tt.wantBody) {
				t.Errorf("body: got %q, want to contain %q", rec.Body.String(), tt.wantBody)
			}
		})
	}
}
