package server

import (
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fulldump/chart3d/internal/config"
)

func init() { gin.SetMode(gin.TestMode) }

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	cfg, err := config.Parse([]byte(`
type: bar
width: 160
height: 120
categories: [a, b]
series:
  - {name: s, values: [1, 2]}
`))
	if err != nil {
		t.Fatal(err)
	}
	return New(cfg, nil).Handler()
}

func get(h http.Handler, target string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestHealthz(t *testing.T) {
	w := get(newTestServer(t), "/healthz", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["status"] != "ok" || body["type"] != "bar" {
		t.Errorf("body = %v", body)
	}
}

func TestChartPNG(t *testing.T) {
	h := newTestServer(t)
	tests := []struct {
		name          string
		query         string
		width, height int
	}{
		{"config size", "", 160, 120},
		{"overrides", "?width=90&height=70&theta=10&phi=45&roll=5", 90, 70},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(h, "/chart.png"+tt.query, nil)
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d: %s", w.Code, w.Body.String())
			}
			if ct := w.Header().Get("Content-Type"); ct != "image/png" {
				t.Errorf("Content-Type = %q", ct)
			}
			img, err := png.Decode(w.Body)
			if err != nil {
				t.Fatal(err)
			}
			if b := img.Bounds(); b.Dx() != tt.width || b.Dy() != tt.height {
				t.Errorf("size = %v, want %dx%d", b, tt.width, tt.height)
			}
		})
	}
}

func TestChartPNG_BadRequests(t *testing.T) {
	h := newTestServer(t)
	for _, q := range []string{"width=abc", "phi=north", "width=0", "height=100000"} {
		t.Run(q, func(t *testing.T) {
			w := get(h, "/chart.png?"+q, nil)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d", w.Code)
			}
			var body struct{ Code, Message string }
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatal(err)
			}
			if body.Code != CodeBadRequest || body.Message == "" {
				t.Errorf("body = %+v", body)
			}
		})
	}
}

func TestRequestID(t *testing.T) {
	h := newTestServer(t)

	w := get(h, "/healthz", nil)
	if _, err := uuid.Parse(w.Header().Get(RequestIDHeader)); err != nil {
		t.Errorf("generated id %q: %v", w.Header().Get(RequestIDHeader), err)
	}

	id := uuid.New().String()
	w = get(h, "/healthz", http.Header{RequestIDHeader: {id}})
	if got := w.Header().Get(RequestIDHeader); got != id {
		t.Errorf("id = %q, want the caller's %q", got, id)
	}

	w = get(h, "/healthz", http.Header{RequestIDHeader: {"not-a-uuid"}})
	if got := w.Header().Get(RequestIDHeader); got == "not-a-uuid" {
		t.Error("malformed id echoed back")
	}
}
