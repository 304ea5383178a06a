package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"slices"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

var testSigningKey = []byte("test-secret-key-for-unit-tests-only")

func createTestToken(t *testing.T, claims Claims, key []byte) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenStr, err := token.SignedString(key)
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}
	return tokenStr
}

func runJWT(t *testing.T, cfg JWTConfig, path, header string) (context.Context, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetPath(path)

	var seen context.Context
	err := JWTMiddleware(cfg)(func(c echo.Context) error {
		seen = c.Request().Context()
		return c.String(http.StatusOK, "ok")
	})(c)
	return seen, err
}

func expectStatus(t *testing.T, err error, code int) {
	t.Helper()
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected echo.HTTPError, got %T (%v)", err, err)
	}
	if httpErr.Code != code {
		t.Errorf("expected %d, got %d", code, httpErr.Code)
	}
}

func TestJWTMiddleware_MissingOrMalformed(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"missing", ""},
		{"no bearer prefix", "Token abc123"},
		{"missing token", "Bearer"},
		{"empty value", "Bearer "},
		{"basic auth", "Basic dXNlcjpwYXNz"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runJWT(t, JWTConfig{SigningKey: testSigningKey}, "/api/v1/pre-assessments", tt.header)
			expectStatus(t, err, http.StatusUnauthorized)
		})
	}
}

func TestJWTMiddleware_ValidToken(t *testing.T) {
	token := createTestToken(t, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "client-123",
			Issuer:    "https://id.mentara.test",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Roles: []string{RoleClient},
	}, testSigningKey)

	cfg := JWTConfig{SigningKey: testSigningKey, Issuer: "https://id.mentara.test"}
	ctx, err := runJWT(t, cfg, "/api/v1/pre-assessments", "Bearer "+token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := UserIDFromContext(ctx); got != "client-123" {
		t.Errorf("expected client-123, got %q", got)
	}
	if roles := RolesFromContext(ctx); !slices.Equal(roles, []string{RoleClient}) {
		t.Errorf("unexpected roles %v", roles)
	}
}

func TestJWTMiddleware_Rejects(t *testing.T) {
	expired := createTestToken(t, Claims{RegisteredClaims: jwt.RegisteredClaims{
		Subject:   "client-123",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	}}, testSigningKey)
	wrongKey := createTestToken(t, Claims{RegisteredClaims: jwt.RegisteredClaims{
		Subject:   "client-123",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}}, []byte("some-other-key"))
	wrongIssuer := createTestToken(t, Claims{RegisteredClaims: jwt.RegisteredClaims{
		Subject:   "client-123",
		Issuer:    "https://evil.test",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}}, testSigningKey)

	cfg := JWTConfig{SigningKey: testSigningKey, Issuer: "https://id.mentara.test"}
	for name, token := range map[string]string{"expired": expired, "wrong key": wrongKey, "wrong issuer": wrongIssuer} {
		t.Run(name, func(t *testing.T) {
			_, err := runJWT(t, cfg, "/api/v1/pre-assessments", "Bearer "+token)
			expectStatus(t, err, http.StatusUnauthorized)
		})
	}
}

func TestJWTMiddleware_Skipper(t *testing.T) {
	cfg := JWTConfig{SigningKey: testSigningKey, Skipper: AuthSkipper}
	if _, err := runJWT(t, cfg, "/health", ""); err != nil {
		t.Errorf("expected /health to skip auth, got %v", err)
	}
	_, err := runJWT(t, cfg, "/api/v1/scoring/batch", "")
	expectStatus(t, err, http.StatusUnauthorized)
}

func TestDevAuthMiddleware(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	var uid string
	var roles []string
	err := DevAuthMiddleware(nil)(func(c echo.Context) error {
		uid = UserIDFromContext(c.Request().Context())
		roles = RolesFromContext(c.Request().Context())
		return nil
	})(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if uid != "dev-user" || !slices.Equal(roles, []string{RoleAdmin}) {
		t.Errorf("unexpected dev identity %q %v", uid, roles)
	}
}

func TestDevAuthMiddleware_KeepsExistingUser(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(WithUser(req.Context(), "therapist-9", []string{RoleTherapist}))
	c := e.NewContext(req, httptest.NewRecorder())

	DevAuthMiddleware(nil)(func(c echo.Context) error {
		if got := UserIDFromContext(c.Request().Context()); got != "therapist-9" {
			t.Errorf("expected existing user kept, got %q", got)
		}
		return nil
	})(c)
}
