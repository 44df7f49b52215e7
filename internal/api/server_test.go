package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/fieldgeneral/playcall/pkg/cache"
	"github.com/fieldgeneral/playcall/pkg/playbook"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	lib, err := playbook.Default()
	if err != nil {
		t.Fatal(err)
	}
	logger := log.New(io.Discard)
	return NewServer(lib, cache.NewNullCache(), 0, logger)
}

func doRequest(t *testing.T, s *Server, method, path string, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var got map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return got
}

func TestHealthz(t *testing.T) {
	s := newTestServer(t)
	rec := doRequest(t, s, http.MethodGet, "/healthz", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := decodeBody(t, rec); got["status"] != "ok" {
		t.Errorf("status field = %v, want ok", got["status"])
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("missing X-Request-ID header")
	}
}

func TestListEndpoints(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		path  string
		field string
		want  int
	}{
		{"/api/formations", "formations", 4},
		{"/api/coverages", "coverages", 11},
		{"/api/blitzes", "blitz_packages", 5},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := doRequest(t, s, http.MethodGet, tt.path, "")
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", rec.Code)
			}
			got := decodeBody(t, rec)
			m, ok := got[tt.field].(map[string]any)
			if !ok {
				t.Fatalf("%s field missing or wrong type", tt.field)
			}
			if len(m) != tt.want {
				t.Errorf("len(%s) = %d, want %d", tt.field, len(m), tt.want)
			}
		})
	}
}

func TestPlays(t *testing.T) {
	s := newTestServer(t)
	rec := doRequest(t, s, http.MethodGet, "/api/plays", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	got := decodeBody(t, rec)
	plays, ok := got["plays"].([]any)
	if !ok {
		t.Fatal("plays field missing")
	}
	// 4 formations x 11 coverages x 5 blitz packages.
	if len(plays) != 220 {
		t.Errorf("len(plays) = %d, want 220", len(plays))
	}
	if got["count"] != float64(len(plays)) {
		t.Errorf("count = %v, want %d", got["count"], len(plays))
	}
}

func TestAnalyze(t *testing.T) {
	s := newTestServer(t)
	rec := doRequest(t, s, http.MethodPost, "/api/analyze",
		`{"formation":"nickel","coverage":"cover_2","blitz":"fire_zone"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	got := decodeBody(t, rec)

	defense, ok := got["defense"].(map[string]any)
	if !ok {
		t.Fatal("defense field missing")
	}
	if defense["formation"] != "nickel" || defense["coverage"] != "cover_2" {
		t.Errorf("defense echo wrong: %v", defense)
	}

	offense, ok := got["offense"].(map[string]any)
	if !ok {
		t.Fatal("offense field missing")
	}
	if _, ok := offense["pass_concepts"].([]any); !ok {
		t.Error("pass_concepts missing")
	}

	svg, ok := got["diagram_svg"].(string)
	if !ok || !strings.HasPrefix(svg, "<svg") {
		t.Error("diagram_svg should contain an SVG document")
	}
}

func TestAnalyzeDefaults(t *testing.T) {
	s := newTestServer(t)

	// Empty body falls back to the default look.
	rec := doRequest(t, s, http.MethodPost, "/api/analyze", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	got := decodeBody(t, rec)
	defense := got["defense"].(map[string]any)
	if defense["formation"] != "4-3" || defense["coverage"] != "cover_3" || defense["blitz"] != "base" {
		t.Errorf("defaults not applied: %v", defense)
	}
}

func TestAnalyzeUnknownKeysStillOK(t *testing.T) {
	s := newTestServer(t)
	rec := doRequest(t, s, http.MethodPost, "/api/analyze",
		`{"formation":"wishbone","coverage":"cover_9","blitz":"base"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("unknown keys must not error, status = %d", rec.Code)
	}
	got := decodeBody(t, rec)
	if got["status"] != "ok" {
		t.Errorf("status field = %v, want ok", got["status"])
	}
}

func TestAnalyzeMalformedBody(t *testing.T) {
	s := newTestServer(t)
	rec := doRequest(t, s, http.MethodPost, "/api/analyze", `{"formation":`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	got := decodeBody(t, rec)
	if got["code"] != "INVALID_INPUT" {
		t.Errorf("code = %v, want INVALID_INPUT", got["code"])
	}
}

func TestConcept(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodGet, "/api/concept/pass/mesh", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	got := decodeBody(t, rec)
	concept, ok := got["concept"].(map[string]any)
	if !ok {
		t.Fatal("concept field missing")
	}
	if concept["name"] != "Mesh" {
		t.Errorf("concept name = %v, want Mesh", concept["name"])
	}
	svg := got["diagram_svg"].(string)
	if !strings.Contains(svg, "marker-end") {
		t.Error("pass concept diagram should draw route arrows")
	}
}

func TestConceptRun(t *testing.T) {
	s := newTestServer(t)
	rec := doRequest(t, s, http.MethodGet, "/api/concept/run/inside_zone", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	got := decodeBody(t, rec)
	if got["type"] != "run" || got["key"] != "inside_zone" {
		t.Errorf("echo wrong: type=%v key=%v", got["type"], got["key"])
	}
}

func TestConceptNotFound(t *testing.T) {
	s := newTestServer(t)
	rec := doRequest(t, s, http.MethodGet, "/api/concept/pass/nope", "")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	got := decodeBody(t, rec)
	if got["code"] != "CONCEPT_NOT_FOUND" {
		t.Errorf("code = %v, want CONCEPT_NOT_FOUND", got["code"])
	}
}

func TestConceptBadType(t *testing.T) {
	s := newTestServer(t)
	rec := doRequest(t, s, http.MethodGet, "/api/concept/kick/mesh", "")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestDiagram(t *testing.T) {
	s := newTestServer(t)
	rec := doRequest(t, s, http.MethodGet, "/api/diagram?formation=nickel&coverage=cover_2&concept=four_verticals", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("Content-Type = %q, want image/svg+xml", ct)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `viewBox="0 0 400 250"`) {
		t.Error("diagram missing canvas viewBox")
	}
}

func TestDiagramDefaults(t *testing.T) {
	s := newTestServer(t)

	a := doRequest(t, s, http.MethodGet, "/api/diagram", "")
	b := doRequest(t, s, http.MethodGet, "/api/diagram?formation=4-3&coverage=cover_3", "")
	if a.Body.String() != b.Body.String() {
		t.Error("bare diagram request should equal the default look")
	}
}

func TestDiagramCached(t *testing.T) {
	lib, err := playbook.Default()
	if err != nil {
		t.Fatal(err)
	}
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	s := NewServer(lib, c, 0, log.New(io.Discard))

	a := doRequest(t, s, http.MethodGet, "/api/diagram?formation=dime&coverage=cover_1", "")
	b := doRequest(t, s, http.MethodGet, "/api/diagram?formation=dime&coverage=cover_1", "")
	if a.Body.String() != b.Body.String() {
		t.Error("cached diagram must be byte-identical to the fresh render")
	}
}
