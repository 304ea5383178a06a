package auth

import (
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/labstack/echo/v4"
)

const (
	RoleClient    = "client"
	RoleTherapist = "therapist"
	RoleModerator = "moderator"
	RoleAdmin     = "admin"
)

// HasRole reports whether roles grants one of want. Admin grants everything.
func HasRole(roles []string, want ...string) bool {
	if slices.Contains(roles, RoleAdmin) {
		return true
	}
	for _, w := range want {
		if slices.Contains(roles, w) {
			return true
		}
	}
	return false
}

// RequireRole returns middleware that checks if the user has at least one of the specified roles.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if HasRole(RolesFromContext(c.Request().Context()), roles...) {
				return next(c)
			}
			return echo.NewHTTPError(http.StatusForbidden,
				fmt.Sprintf("required role: %s", strings.Join(roles, " or ")))
		}
	}
}
