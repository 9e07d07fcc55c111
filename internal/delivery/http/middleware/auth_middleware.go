package middleware

import (
	"strings"

	"authgate/internal/delivery/http/response"
	"authgate/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// ContextKeyClaims is the echo context key holding the verified token claims.
const ContextKeyClaims = "claims"

// AuthMiddleware provides middleware for bearer token authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the Authorization header and the bearer token in it.
// The scheme check is case-sensitive: the header must start with exactly
// "Bearer " and the token is the second space-separated segment.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			return response.Unauthorized(c, "UNAUTHORIZED", "Unauthorized")
		}

		tokenString := strings.Split(authHeader, " ")[1]

		claims, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			// All verification failures look the same to the caller.
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token")
		}

		c.Set(ContextKeyClaims, claims)

		return next(c)
	}
}
