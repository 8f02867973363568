package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"journalplot/internal/render"
	"journalplot/pkg/types"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(NewMux(render.NewService()))
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, url string) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("get %s: %v", url, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestListFigures(t *testing.T) {
	srv := newTestServer(t)
	resp := get(t, srv.URL+"/figures")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("content type = %q", ct)
	}
	var body types.FiguresResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Figures) != 5 {
		t.Fatalf("got %d figures, want 5", len(body.Figures))
	}
}

func TestWidthsEndpoint(t *testing.T) {
	srv := newTestServer(t)
	resp := get(t, srv.URL+"/widths")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var body types.WidthsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Widths) != 8 {
		t.Fatalf("got %d widths, want 8", len(body.Widths))
	}
}

func TestRenderSVG(t *testing.T) {
	srv := newTestServer(t)
	resp := get(t, srv.URL+"/figures/basic")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/svg+xml" {
		t.Fatalf("content type = %q", ct)
	}
}

func TestRenderWithJournalWidth(t *testing.T) {
	srv := newTestServer(t)
	resp := get(t, srv.URL+"/figures/widths?journal=elsevier_full")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
}

func TestRenderUnknownFigure(t *testing.T) {
	srv := newTestServer(t)
	resp := get(t, srv.URL+"/figures/nope")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
	var body types.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Code != http.StatusNotFound || body.Error == "" {
		t.Fatalf("unexpected error body: %+v", body)
	}
}

func TestRenderBadParams(t *testing.T) {
	srv := newTestServer(t)
	cases := []string{
		"/figures/basic?format=bmp",
		"/figures/basic?width_mm=abc",
		"/figures/basic?aspect=x",
		"/figures/basic?dpi=x",
		"/figures/widths?journal=prl_double",
	}
	for _, path := range cases {
		resp := get(t, srv.URL+path)
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("%s: status = %d, want 400", path, resp.StatusCode)
		}
	}
}

func TestHealthEndpoints(t *testing.T) {
	srv := newTestServer(t)
	for _, path := range []string{"/healthz", "/readyz", "/metrics"} {
		resp := get(t, srv.URL+path)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("%s: status = %d", path, resp.StatusCode)
		}
	}
}

func TestNosniffHeader(t *testing.T) {
	srv := newTestServer(t)
	resp := get(t, srv.URL+"/figures")
	if got := resp.Header.Get("X-Content-Type-Options"); got != "nosniff" {
		t.Fatalf("nosniff header = %q", got)
	}
}
