package auth

import (
	"github.com/labstack/echo/v4"
)

// publicPaths bypass authentication and rate limiting.
var publicPaths = map[string]bool{
	"/health":      true,
	"/health/pool": true,
}

// AuthSkipper matches on the registered route, so "/health?x=1" is public too.
func AuthSkipper(c echo.Context) bool {
	return publicPaths[c.Path()]
}

