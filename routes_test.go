package main

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fintrack/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := &Config{
		Port:        "0",
		CORSOrigins: []string{"http://localhost:4200"},
		JWTSecret:   []byte("test-secret"),
	}
	d, err := loadDependencies(cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("loadDependencies: %v", err)
	}
	return newApp(cfg, zap.NewNop(), d)
}

// performRequest runs a request through the engine with an optional token.
func performRequest(app *App, method, path string, body io.Reader, token string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.engine.ServeHTTP(rec, req)
	return rec
}

func TestHealthNoAuth(t *testing.T) {
	app := newTestApp(t)
	rec := performRequest(app, http.MethodGet, "/api/v1/health", nil, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp["status"] != "OK" {
		t.Fatalf("status field = %q", resp["status"])
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	app := newTestApp(t)
	for _, rb := range app.routes {
		if !rb.Auth {
			continue
		}
		path := strings.ReplaceAll(rb.Path, ":id", "1")
		rec := performRequest(app, rb.Method, path, nil, "")
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s without token: status = %d", rb.Method, rb.Path, rec.Code)
		}
	}
}

func TestInvalidTokenRejected(t *testing.T) {
	app := newTestApp(t)
	rec := performRequest(app, http.MethodGet, "/api/v1/incomes", nil, "not-a-jwt")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestRouteInspectorReportsTable(t *testing.T) {
	app := newTestApp(t)
	rec := performRequest(app, http.MethodGet, "/__routes", nil, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp struct {
		Routes []string `json:"routes"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Routes) != len(app.routes) {
		t.Fatalf("reported %d routes, table has %d", len(resp.Routes), len(app.routes))
	}
	want := []string{
		"POST /api/v1/incomes",
		"GET /api/v1/expenses",
		"DELETE /api/v1/transactions",
		"GET /api/v1/health",
	}
	joined := strings.Join(resp.Routes, "\n")
	for _, w := range want {
		if !strings.Contains(joined, w) {
			t.Fatalf("route %q missing from %s", w, joined)
		}
	}
}

func TestDocsSummaryFromRouteTable(t *testing.T) {
	app := newTestApp(t)
	rec := performRequest(app, http.MethodGet, "/api-docs", nil, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp struct {
		Routes []struct {
			Method string `json:"method"`
			Path   string `json:"path"`
			Auth   bool   `json:"auth"`
		} `json:"routes"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	for _, r := range resp.Routes {
		if r.Path == "/api/v1/health" && r.Auth {
			t.Fatal("health must not be auth-gated")
		}
		if r.Path == "/api/v1/incomes" && !r.Auth {
			t.Fatal("incomes must be auth-gated")
		}
	}
}

func TestStoreUnavailableMapsTo503(t *testing.T) {
	app := newTestApp(t)
	token, err := issueToken(app.cfg.JWTSecret, models.User{ID: 1, Username: "u"})
	if err != nil {
		t.Fatal(err)
	}
	rec := performRequest(app, http.MethodGet, "/api/v1/incomes", nil, token)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503; body = %s", rec.Code, rec.Body.String())
	}
}

func TestValidationRunsBeforePersistence(t *testing.T) {
	// A malformed payload must be rejected as a client error even while the
	// store is down: validation happens at the boundary.
	app := newTestApp(t)
	token, err := issueToken(app.cfg.JWTSecret, models.User{ID: 1, Username: "u"})
	if err != nil {
		t.Fatal(err)
	}
	rec := performRequest(app, http.MethodPost, "/api/v1/incomes",
		strings.NewReader(`{"amount":"not-a-number"}`), token)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400; body = %s", rec.Code, rec.Body.String())
	}
}
