package middleware

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/mentara/mentara/internal/platform/auth"
)

func newContext(method, path string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRequestID_GeneratesNew(t *testing.T) {
	c, rec := newContext(http.MethodGet, "/")

	var fromCtx string
	handler := func(c echo.Context) error {
		rid, _ := c.Get(RequestIDKey).(string)
		if rid == "" {
			t.Error("expected request_id to be generated")
		}
		fromCtx = RequestIDFromContext(c.Request().Context())
		return c.String(http.StatusOK, "ok")
	}

	if err := RequestID()(handler)(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Header().Get(RequestIDHeader) == "" {
		t.Error("expected X-Request-ID response header")
	}
	if fromCtx != rec.Header().Get(RequestIDHeader) {
		t.Errorf("request context id %q does not match header %q", fromCtx, rec.Header().Get(RequestIDHeader))
	}
}

func TestRequestID_PreservesExisting(t *testing.T) {
	c, rec := newContext(http.MethodGet, "/")
	c.Request().Header.Set(RequestIDHeader, "my-custom-id")

	handler := func(c echo.Context) error {
		if rid := c.Get(RequestIDKey).(string); rid != "my-custom-id" {
			t.Errorf("expected my-custom-id, got %s", rid)
		}
		return c.String(http.StatusOK, "ok")
	}
	RequestID()(handler)(c)

	if rec.Header().Get(RequestIDHeader) != "my-custom-id" {
		t.Errorf("expected my-custom-id in response header, got %s", rec.Header().Get(RequestIDHeader))
	}
}

func TestRequestID_RejectsOversized(t *testing.T) {
	c, rec := newContext(http.MethodGet, "/")
	c.Request().Header.Set(RequestIDHeader, strings.Repeat("x", 200))

	RequestID()(func(c echo.Context) error { return nil })(c)

	if got := rec.Header().Get(RequestIDHeader); len(got) != 36 {
		t.Errorf("expected a generated UUID, got %q", got)
	}
}

func TestLogger_LogsRequest(t *testing.T) {
	var buf bytes.Buffer
	c, _ := newContext(http.MethodGet, "/api/v1/scoring/questionnaires")
	c.Set(RequestIDKey, "req-1")

	err := Logger(zerolog.New(&buf))(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{`"request_id":"req-1"`, `"status":200`, `"level":"info"`, `"method":"GET"`} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %s in log line, got %s", want, out)
		}
	}
}

func TestLogger_LevelFromHTTPError(t *testing.T) {
	tests := []struct {
		code  int
		level string
	}{
		{http.StatusBadRequest, `"level":"warn"`},
		{http.StatusInternalServerError, `"level":"error"`},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		c, _ := newContext(http.MethodPost, "/api/v1/scoring/batch")
		Logger(zerolog.New(&buf))(func(c echo.Context) error {
			return echo.NewHTTPError(tt.code, "boom")
		})(c)
		if !strings.Contains(buf.String(), tt.level) {
			t.Errorf("status %d: expected %s, got %s", tt.code, tt.level, buf.String())
		}
	}
}

func TestRecovery_CatchesPanic(t *testing.T) {
	var buf bytes.Buffer
	c, _ := newContext(http.MethodGet, "/panic")

	err := Recovery(zerolog.New(&buf))(func(c echo.Context) error {
		panic("test panic")
	})(c)

	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected echo.HTTPError, got %T", err)
	}
	if httpErr.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", httpErr.Code)
	}
	if !strings.Contains(buf.String(), "test panic") {
		t.Errorf("expected panic value in log, got %s", buf.String())
	}
}

func TestRecovery_PassesThrough(t *testing.T) {
	c, _ := newContext(http.MethodGet, "/ok")
	err := Recovery(zerolog.Nop())(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAudit_LogsAssessmentAccess(t *testing.T) {
	var buf bytes.Buffer
	c, _ := newContext(http.MethodDelete, "/api/v1/pre-assessments/abc")
	c.SetParamNames("id")
	c.SetParamValues("abc")
	ctx := context.WithValue(c.Request().Context(), auth.UserIDKey, "therapist-1")
	c.SetRequest(c.Request().WithContext(ctx))

	err := Audit(zerolog.New(&buf))(func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{`"action":"delete"`, `"assessment_id":"abc"`, `"user_id":"therapist-1"`, `"status":204`} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %s in audit line, got %s", want, out)
		}
	}
}

func TestAudit_SkipsStatelessScoring(t *testing.T) {
	var buf bytes.Buffer
	c, _ := newContext(http.MethodPost, "/api/v1/scoring/batch")
	Audit(zerolog.New(&buf))(func(c echo.Context) error { return nil })(c)
	if buf.Len() != 0 {
		t.Errorf("expected no audit entry, got %s", buf.String())
	}
}
