package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"authgate/internal/delivery/http/middleware"
	"authgate/internal/delivery/http/validator"
	domainerrors "authgate/internal/domain/errors"
	mockUsecase "authgate/internal/mocks/usecase"
	"authgate/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newUnitEcho(t *testing.T, uc usecase.AuthUsecase) *echo.Echo {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	h := NewAuthHandler(uc, logger)
	e.POST("/auth/register", h.Register)
	e.POST("/auth/login", h.Login)

	return e
}

func TestAuthHandler_Register_PassesBoundInput(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	uc.On("Register", mock.Anything, &usecase.RegisterInput{Email: "a@x.com", Password: "pw123"}).
		Return(&usecase.AuthOutput{Token: "signed_token"}, nil)

	e := newUnitEcho(t, uc)

	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(`{"email":"a@x.com","password":"pw123"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "signed_token")
}

func TestAuthHandler_Register_MapsConflictError(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	uc.On("Register", mock.Anything, mock.AnythingOfType("*usecase.RegisterInput")).
		Return(nil, domainerrors.ErrUserAlreadyExists.WrapMessage("email already registered"))

	e := newUnitEcho(t, uc)

	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(`{"email":"a@x.com","password":"pw123"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "User already exists")
	assert.Contains(t, rec.Body.String(), "USER_ALREADY_EXISTS")
}

func TestAuthHandler_Login_MapsNotFoundError(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	uc.On("Login", mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(nil, domainerrors.ErrUserNotFound.WrapMessage("no account for email"))

	e := newUnitEcho(t, uc)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"a@x.com","password":"pw123"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "User not found")
}
