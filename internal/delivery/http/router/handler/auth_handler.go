// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"authgate/internal/delivery/http/middleware"
	"authgate/internal/delivery/http/response"
	"authgate/internal/domain/service"
	"authgate/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for the authentication handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// Register handles the user registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var input usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "EMAIL_PASSWORD_REQUIRED", "Email and password are required")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "EMAIL_PASSWORD_REQUIRED", "Email and password are required")
	}

	output, err := h.uc.Register(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "User registered successfully")
}

// Login handles the user login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "EMAIL_PASSWORD_REQUIRED", "Email and password are required")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "EMAIL_PASSWORD_REQUIRED", "Email and password are required")
	}

	output, err := h.uc.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Login successful")
}

// profilePayload is the response body for GetProfile. The identity comes
// straight from the verified token claims; the live user record is not
// re-fetched, so the data is exactly what was embedded at issuance.
type profilePayload struct {
	User profileUser `json:"user"`
}

type profileUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// GetProfile handles the request to get the current user's profile.
// The auth middleware has already verified the token and stored its claims.
func (h *AuthHandler) GetProfile(c echo.Context) error {
	claimsVal := c.Get(middleware.ContextKeyClaims)
	claims, ok := claimsVal.(*service.Claims)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token")
	}

	payload := profilePayload{
		User: profileUser{
			ID:    claims.UserID.String(),
			Email: claims.Email,
		},
	}

	return response.Success(c, http.StatusOK, payload, "Profile retrieved successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
