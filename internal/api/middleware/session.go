package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/servnect/marketplace-api/internal/core/domain"
	"github.com/servnect/marketplace-api/internal/core/ports"
	"github.com/servnect/marketplace-api/internal/core/token"
)

// TokenCookieName is the legacy cookie carrier set on login for browser
// clients that cannot attach an Authorization header.
const TokenCookieName = "token"

const identityContextKey = "identity"

// TokenVerifier is the part of token.Issuer the resolver needs.
type TokenVerifier interface {
	Verify(tokenString string) (*token.Claims, error)
}

// Session resolves the request's credential into an identity and attaches it
// to the echo context. It never rejects: a missing, invalid, or expired
// credential, or a principal that no longer exists, resolves to anonymous
// and the request continues. Authentication is enforced downstream by the
// route guards.
//
// The Authorization header takes precedence over the cookie so cross-origin
// clients that cannot send cookies still win when both are present.
func Session(verifier TokenVerifier, resolver ports.IdentityResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenString := extractToken(c)
			if tokenString == "" {
				c.Set(identityContextKey, domain.Identity{})
				return next(c)
			}

			claims, err := verifier.Verify(tokenString)
			if err != nil {
				c.Set(identityContextKey, domain.Identity{})
				return next(c)
			}

			identity, err := resolver.Resolve(c.Request().Context(), claims.Kind, claims.PrincipalID)
			if err != nil {
				c.Set(identityContextKey, domain.Identity{})
				return next(c)
			}

			c.Set(identityContextKey, identity)
			return next(c)
		}
	}
}

// extractToken pulls the bearer token from the Authorization header, falling
// back to the legacy cookie.
func extractToken(c echo.Context) string {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return parts[1]
		}
		return ""
	}

	if cookie, err := c.Cookie(TokenCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	return ""
}

// CurrentIdentity returns the identity resolved for this request. The zero
// value means anonymous (or the Session middleware did not run).
func CurrentIdentity(c echo.Context) domain.Identity {
	identity, _ := c.Get(identityContextKey).(domain.Identity)
	return identity
}
