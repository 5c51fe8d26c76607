package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/servnect/marketplace-api/internal/api/middleware"
	"github.com/servnect/marketplace-api/internal/core/domain"
)

// ctxIdentity extracts the identity resolved by the Session middleware and
// fast-fails with 401 when the request is anonymous. Handlers behind a guard
// still call this so they never trust an unset context slot.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	identity := middleware.CurrentIdentity(c)
	if identity.IsAnonymous() {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	return identity, nil
}
