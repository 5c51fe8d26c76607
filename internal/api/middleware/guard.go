package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/servnect/marketplace-api/internal/core/domain"
)

// RequireAuth rejects anonymous requests with 401. Any resolved principal
// kind passes.
func RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if CurrentIdentity(c).IsAnonymous() {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			return next(c)
		}
	}
}

// RequireKind rejects requests whose identity is not one of the allowed
// principal kinds: 401 for anonymous, 403 for a valid identity of the wrong
// kind. Kinds are mutually exclusive: a user token never satisfies an
// expert guard and vice versa.
func RequireKind(kinds ...domain.PrincipalKind) echo.MiddlewareFunc {
	allowed := make(map[domain.PrincipalKind]struct{}, len(kinds))
	for _, k := range kinds {
		allowed[k] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity := CurrentIdentity(c)
			if identity.IsAnonymous() {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			if _, ok := allowed[identity.Kind]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}
