// Package middleware provides the echo middlewares of the HTTP delivery.
package middleware

import (
	"net/http"
	"strings"

	"wayfinder/internal/domain/constants"
	"wayfinder/internal/domain/entity"
	"wayfinder/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// SessionContextKey is the echo context key holding the *entity.Session of
// the authenticated caller.
const SessionContextKey = "session"

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and stores the session on the
// context. Requests without a valid token are rejected.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		session, errMsg := m.resolveSession(c)
		if session == nil {
			if errMsg == "" {
				errMsg = "Authorization header is missing"
			}

			return c.JSON(http.StatusUnauthorized, map[string]string{"error": errMsg})
		}

		c.Set(SessionContextKey, session)

		return next(c)
	}
}

// OptionalAuthenticate stores the session when a valid token is present and
// lets anonymous requests through. Endpoints whose output depends on the
// caller (POI visibility) use this.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if session, _ := m.resolveSession(c); session != nil {
			c.Set(SessionContextKey, session)
		}

		return next(c)
	}
}

// RequireAdmin rejects callers whose session lacks the admin role. It must be
// used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		session, ok := c.Get(SessionContextKey).(*entity.Session)
		if !ok || session.Role != constants.RoleAdmin {
			return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: require '" + constants.RoleAdmin + "' role"})
		}

		return next(c)
	}
}

// resolveSession parses the Authorization header. A nil session with an
// empty message means the header was absent.
func (m *AuthMiddleware) resolveSession(c echo.Context) (*entity.Session, string) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, ""
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return nil, "Invalid token format, must be Bearer token"
	}

	session, err := m.tokenSvc.ValidateToken(tokenString)
	if err != nil {
		return nil, "Invalid or expired token"
	}

	return session, ""
}
