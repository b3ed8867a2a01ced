package middleware

import (
	"strings"

	"farmhub/internal/delivery/http/response"
	"farmhub/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// ContextKeyUserID is the echo context key holding the authenticated user ID.
const ContextKeyUserID = "userID"

// AuthMiddleware validates the bearer session marker on protected routes.
type AuthMiddleware struct {
	markers service.MarkerService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(markers service.MarkerService) *AuthMiddleware {
	return &AuthMiddleware{markers: markers}
}

// Authenticate validates the session marker and stores the user ID on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "MARKER_MISSING", "Authorization header is missing")
		}

		marker := strings.TrimPrefix(authHeader, "Bearer ")
		if marker == authHeader {
			return response.Unauthorized(c, "MARKER_MALFORMED", "Invalid token format, must be Bearer token")
		}

		userID, err := m.markers.Validate(marker)
		if err != nil {
			return response.Unauthorized(c, "MARKER_INVALID", "Invalid or expired session marker")
		}

		c.Set(ContextKeyUserID, userID)

		return next(c)
	}
}
