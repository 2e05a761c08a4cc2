package web

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSPAHandlerServesIndex(t *testing.T) {
	handler := SPAHandler()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.Contains(ct, "text/html") {
		t.Fatalf("Content-Type = %q, want text/html", ct)
	}
	if !strings.Contains(rec.Body.String(), "<div id=\"app\">") {
		t.Fatal("index.html not served at root")
	}
}

func TestSPAHandlerFallbackForClientRoutes(t *testing.T) {
	handler := SPAHandler()

	for _, route := range []string{"/admin", "/posts/42", "/about/hours"} {
		req := httptest.NewRequest(http.MethodGet, route, nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("route %s: status = %d, want 200", route, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "<div id=\"app\">") {
			t.Fatalf("route %s: expected index.html fallback", route)
		}
	}
}

func TestSPAHandlerMissingAsset(t *testing.T) {
	handler := SPAHandler()

	req := httptest.NewRequest(http.MethodGet, "/assets/missing.js", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestSPAHandlerAssetCaching(t *testing.T) {
	handler := SPAHandler()

	req := httptest.NewRequest(http.MethodGet, "/assets/main.css", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if cc := rec.Header().Get("Cache-Control"); !strings.Contains(cc, "immutable") {
		t.Fatalf("Cache-Control = %q, want immutable for hashed assets", cc)
	}
}

func TestSPAHandlerMethodNotAllowed(t *testing.T) {
	handler := SPAHandler()

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
	if allow := rec.Header().Get("Allow"); !strings.Contains(allow, "GET") {
		t.Fatalf("Allow = %q, want GET", allow)
	}
}
