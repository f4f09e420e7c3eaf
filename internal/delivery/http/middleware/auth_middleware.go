// Package middleware contains the Echo middlewares shared by the booking
// services.
package middleware

import (
	"strings"

	"booking/internal/delivery/http/response"
	"booking/internal/domain/entity"
	"booking/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// principalContextKey is where Authenticate stores the verified principal.
const principalContextKey = "principal"

// AuthMiddleware validates bearer tokens and enforces authority checks.
// Every service carries its own instance; a token forwarded by the gateway is
// re-verified here rather than trusted.
type AuthMiddleware struct {
	verifier service.TokenVerifier
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(verifier service.TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// Authenticate validates the bearer token and attaches the principal to the
// request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return m.authenticate(next, nil)
}

// AuthenticateUnless behaves like Authenticate but lets requests matched by
// skip pass through anonymously. The gateway uses it to keep the public
// search and lookup routes open.
func (m *AuthMiddleware) AuthenticateUnless(skip func(echo.Context) bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return m.authenticate(next, skip)
	}
}

func (m *AuthMiddleware) authenticate(next echo.HandlerFunc, skip func(echo.Context) bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		if skip != nil && skip(c) {
			return next(c)
		}

		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid token format, must be Bearer token")
		}

		principal, err := m.verifier.Verify(tokenString)
		if err != nil {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid or expired token")
		}

		c.Set(principalContextKey, principal)

		return next(c)
	}
}

// RequireAuthority checks that the principal holds the given authority.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireAuthority(authority entity.Authority) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := PrincipalFrom(c)
			if !ok {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: authentication required")
			}

			if !principal.HasAuthority(authority) {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: require '"+string(authority)+"'")
			}

			return next(c)
		}
	}
}

// PrincipalFrom returns the authenticated principal attached by Authenticate.
func PrincipalFrom(c echo.Context) (*entity.Principal, bool) {
	principal, ok := c.Get(principalContextKey).(*entity.Principal)

	return principal, ok
}
