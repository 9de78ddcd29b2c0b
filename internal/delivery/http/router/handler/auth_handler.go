// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"recruitcms/internal/delivery/http/middleware"
	"recruitcms/internal/delivery/http/response"
	"recruitcms/internal/domain/entity"
	domainerrors "recruitcms/internal/domain/errors"
	"recruitcms/internal/usecase"
)

// AuthHandler holds dependencies for the authentication handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, logger: logger}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// authResponse is the fixed success envelope for the auth endpoints:
// {success:true, token?, user}.
type authResponse struct {
	Success bool             `json:"success"`
	Token   string           `json:"token,omitempty"`
	User    *entity.Identity `json:"user"`
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid login input")
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, authResponse{
		Success: true,
		Token:   output.Token,
		User:    output.User,
	})
}

// Verify handles GET /api/auth/verify. It is a pure pass-through of the
// identity the authentication middleware already resolved; no store access,
// no side effects.
func (h *AuthHandler) Verify(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, domainerrors.ErrAuthRequired.ErrorCode(), domainerrors.ErrAuthRequired.Message())
	}

	return c.JSON(http.StatusOK, authResponse{
		Success: true,
		User:    identity,
	})
}

// Register handles POST /api/auth/register. The route is gated to admins by
// the middleware chain; the created account is returned without a token.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid registration input")
	}

	output, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		Username: req.Username,
		Password: req.Password,
		Name:     req.Name,
		Role:     req.Role,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, authResponse{
		Success: true,
		User:    output.User,
	})
}
