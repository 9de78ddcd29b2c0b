// Package middleware contains the echo middleware for the HTTP delivery.
package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"recruitcms/internal/delivery/http/response"
	"recruitcms/internal/domain/entity"
	domainerrors "recruitcms/internal/domain/errors"
	"recruitcms/internal/domain/service"
	"recruitcms/internal/usecase"
)

// identityKey is the echo context key carrying the Resolved Identity.
const identityKey = "identity"

// AuthMiddleware provides middleware for bearer-token authentication and
// role-based authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	authUC   usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, authUC usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, authUC: authUC}
}

// Authenticate validates the bearer token and re-resolves its user from the
// credential store on every request, so a deactivated account is rejected on
// its next request even though the token itself stays cryptographically
// valid. On success the password-free identity is attached to the request
// context; nothing is ever mutated here.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, domainerrors.ErrNoToken.ErrorCode(), domainerrors.ErrNoToken.Message())
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, domainerrors.ErrNoToken.ErrorCode(), domainerrors.ErrNoToken.Message())
		}

		userID, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			return response.Unauthorized(c, domainerrors.ErrInvalidToken.ErrorCode(), domainerrors.ErrInvalidToken.Message())
		}

		identity, err := m.authUC.ResolveIdentity(c.Request().Context(), userID)
		if err != nil {
			return response.Unauthorized(c, domainerrors.ErrTokenUserInvalid.ErrorCode(), domainerrors.ErrTokenUserInvalid.Message())
		}

		c.Set(identityKey, identity)

		return next(c)
	}
}

// RequireRole is a middleware factory that checks the resolved identity's
// role. It must be used AFTER the Authenticate middleware; it is a pure
// predicate over the identity and never touches the credential store.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := GetIdentity(c)
			if !ok {
				return response.Unauthorized(c, domainerrors.ErrAuthRequired.ErrorCode(), domainerrors.ErrAuthRequired.Message())
			}

			if identity.Role != requiredRole {
				return response.Forbidden(c, domainerrors.ErrAdminRequired.ErrorCode(), domainerrors.ErrAdminRequired.Message())
			}

			return next(c)
		}
	}
}

// GetIdentity extracts the Resolved Identity attached by Authenticate.
func GetIdentity(c echo.Context) (*entity.Identity, bool) {
	identity, ok := c.Get(identityKey).(*entity.Identity)

	return identity, ok
}
