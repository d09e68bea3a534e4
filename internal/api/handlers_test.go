package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fdlang/fdl/fdl"
	"github.com/fdlang/fdl/log"
)

func testServer(t *testing.T) *Server {
	t.Helper()

	doc, err := fdl.ParseString(context.Background(),
		"[flap]\nframes=1\n[/]\n[walk]\nframes=4\nspeed=2\n[/]\n[flap]\nshadowed=x\n[/]\n")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	return NewServer(doc, log.Logger{})
}

func get(t *testing.T, srv *Server, path string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()

	srv.ServeHTTP(rec, req)

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v\n%s", err, rec.Body.String())
	}

	return rec, body
}

func TestHandleHealth(t *testing.T) {
	rec, body := get(t, testServer(t), "/health")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	if body["status"] != "ok" {
		t.Errorf("status field = %v, want ok", body["status"])
	}
}

func TestHandleListSections(t *testing.T) {
	rec, body := get(t, testServer(t), "/api/sections")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	sections, ok := body["sections"].([]any)
	if !ok {
		t.Fatalf("sections = %v, want array", body["sections"])
	}

	want := []string{"flap", "walk", "flap"}
	if len(sections) != len(want) {
		t.Fatalf("sections = %v, want %v", sections, want)
	}

	for i := range want {
		if sections[i] != want[i] {
			t.Errorf("section %d = %v, want %q", i, sections[i], want[i])
		}
	}
}

func TestHandleGetSection(t *testing.T) {
	rec, body := get(t, testServer(t), "/api/sections/walk")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	fields, ok := body["fields"].(map[string]any)
	if !ok {
		t.Fatalf("fields = %v, want object", body["fields"])
	}

	if fields["frames"] != "4" || fields["speed"] != "2" {
		t.Errorf("fields = %v", fields)
	}
}

func TestHandleGetSection_FirstMatch(t *testing.T) {
	// The duplicate [flap] section is shadowed by the first one.
	rec, body := get(t, testServer(t), "/api/sections/flap")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	fields, ok := body["fields"].(map[string]any)
	if !ok {
		t.Fatalf("fields = %v, want object", body["fields"])
	}

	if _, shadowed := fields["shadowed"]; shadowed {
		t.Error("fields include a value from the shadowed duplicate section")
	}

	if fields["frames"] != "1" {
		t.Errorf("frames = %v, want 1", fields["frames"])
	}
}

func TestHandleGetSection_NotFound(t *testing.T) {
	rec, body := get(t, testServer(t), "/api/sections/absent")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}

	if body["error"] == "" {
		t.Error("missing error message")
	}
}

func TestHandleGetField(t *testing.T) {
	rec, body := get(t, testServer(t), "/api/sections/walk/fields/speed")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	if body["value"] != "2" {
		t.Errorf("value = %v, want 2", body["value"])
	}

	if body["section"] != "walk" || body["field"] != "speed" {
		t.Errorf("echoed identifiers = %v.%v", body["section"], body["field"])
	}
}

func TestHandleGetField_NotFound(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{name: "unknown field", path: "/api/sections/walk/fields/absent"},
		{name: "unknown section", path: "/api/sections/absent/fields/speed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, _ := get(t, testServer(t), tt.path)

			if rec.Code != http.StatusNotFound {
				t.Errorf("status = %d, want 404", rec.Code)
			}
		})
	}
}
