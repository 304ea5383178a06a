package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/mentara/mentara/internal/platform/auth"
)

// auditedPrefixes are the routes that read or write a client's assessment data.
var auditedPrefixes = []string{
	"/api/v1/pre-assessments",
	"/api/v1/treatment-plans",
}

// Audit logs who touched which pre-assessment and how. Entries carry
// type=assessment_access so they can be shipped apart from access logs.
func Audit(logger zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if !isAudited(req.URL.Path) {
				return next(c)
			}

			err := next(c)

			status := c.Response().Status
			if he, ok := err.(*echo.HTTPError); ok {
				status = he.Code
			}
			rid, _ := c.Get(RequestIDKey).(string)
			ctx := req.Context()

			logger.Info().
				Str("type", "assessment_access").
				Str("request_id", rid).
				Str("user_id", auth.UserIDFromContext(ctx)).
				Strs("user_roles", auth.RolesFromContext(ctx)).
				Str("assessment_id", c.Param("id")).
				Str("client_id", c.QueryParam("clientId")).
				Str("action", actionFor(req.Method)).
				Str("path", req.URL.Path).
				Int("status", status).
				Msg("assessment_access")

			return err
		}
	}
}

func isAudited(path string) bool {
	for _, p := range auditedPrefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

func actionFor(method string) string {
	switch method {
	case http.MethodPost:
		return "create"
	case http.MethodPut, http.MethodPatch:
		return "update"
	case http.MethodDelete:
		return "delete"
	}
	return "read"
}
