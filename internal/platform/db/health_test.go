package db

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func runHealth(t *testing.T, checks ...Check) (int, map[string]interface{}) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := HealthHandler(checks...)(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return rec.Code, body
}

func TestHealthHandler_Healthy(t *testing.T) {
	ok := func(context.Context) error { return nil }
	code, body := runHealth(t, Check{Name: "postgres", Ping: ok}, Check{Name: "redis", Ping: ok})
	if code != http.StatusOK {
		t.Errorf("expected 200, got %d", code)
	}
	if body["status"] != "healthy" {
		t.Errorf("expected healthy, got %v", body["status"])
	}
	deps := body["dependencies"].(map[string]interface{})
	if deps["postgres"] != "ok" || deps["redis"] != "ok" {
		t.Errorf("unexpected dependencies: %v", deps)
	}
}

func TestHealthHandler_Unhealthy(t *testing.T) {
	ok := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("connection refused") }
	code, body := runHealth(t, Check{Name: "postgres", Ping: ok}, Check{Name: "redis", Ping: down})
	if code != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", code)
	}
	if body["status"] != "unhealthy" {
		t.Errorf("expected unhealthy, got %v", body["status"])
	}
	deps := body["dependencies"].(map[string]interface{})
	if deps["redis"] != "connection refused" {
		t.Errorf("expected redis error in body, got %v", deps["redis"])
	}
}

func TestHealthHandler_NoChecks(t *testing.T) {
	code, _ := runHealth(t)
	if code != http.StatusOK {
		t.Errorf("expected 200 with no checks, got %d", code)
	}
}
