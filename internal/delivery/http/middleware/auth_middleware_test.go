package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"recruitcms/internal/domain/entity"
	"recruitcms/internal/domain/service"
	"recruitcms/internal/usecase"
)

type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) Issue(userID uuid.UUID) (string, error) {
	args := m.Called(userID)

	return args.String(0), args.Error(1)
}

func (m *mockTokenService) Verify(token string) (uuid.UUID, error) {
	args := m.Called(token)

	return args.Get(0).(uuid.UUID), args.Error(1)
}

type mockAuthUsecase struct {
	mock.Mock
}

func (m *mockAuthUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.LoginOutput), args.Error(1)
}

func (m *mockAuthUsecase) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.RegisterOutput), args.Error(1)
}

func (m *mockAuthUsecase) ResolveIdentity(ctx context.Context, userID uuid.UUID) (*entity.Identity, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Identity), args.Error(1)
}

func (m *mockAuthUsecase) BootstrapAdmin(ctx context.Context) error {
	args := m.Called(ctx)

	return args.Error(0)
}

type middlewareFixtures struct {
	mw       *AuthMiddleware
	tokenSvc *mockTokenService
	authUC   *mockAuthUsecase
}

func createTestMiddleware(t *testing.T) middlewareFixtures {
	t.Helper()

	tokenSvc := &mockTokenService{}
	authUC := &mockAuthUsecase{}

	t.Cleanup(func() {
		tokenSvc.AssertExpectations(t)
		authUC.AssertExpectations(t)
	})

	return middlewareFixtures{
		mw:       NewAuthMiddleware(tokenSvc, authUC),
		tokenSvc: tokenSvc,
		authUC:   authUC,
	}
}

// doRequest runs a GET through the given middleware chain to a handler that
// records whether it was reached.
func doRequest(t *testing.T, authHeader string, handlerReached *bool, mws ...echo.MiddlewareFunc) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := func(c echo.Context) error {
		*handlerReached = true

		return c.NoContent(http.StatusOK)
	}
	for i := len(mws) - 1; i >= 0; i-- {
		handler = mws[i](handler)
	}

	require.NoError(t, handler(c))

	return rec
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)

	return body.Message
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	fx := createTestMiddleware(t)
	reached := false

	rec := doRequest(t, "", &reached, fx.mw.Authenticate)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Access denied. No token provided", decodeMessage(t, rec))
	assert.False(t, reached)
}

func TestAuthenticate_NonBearerHeader(t *testing.T) {
	fx := createTestMiddleware(t)
	reached := false

	rec := doRequest(t, "Basic dXNlcjpwdw==", &reached, fx.mw.Authenticate)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Access denied. No token provided", decodeMessage(t, rec))
	assert.False(t, reached)
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	fx := createTestMiddleware(t)
	reached := false

	fx.tokenSvc.On("Verify", "bad-token").Return(uuid.Nil, service.ErrInvalidToken)

	rec := doRequest(t, "Bearer bad-token", &reached, fx.mw.Authenticate)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid authentication token", decodeMessage(t, rec))
	assert.False(t, reached)
}

func TestAuthenticate_UnresolvableUser(t *testing.T) {
	fx := createTestMiddleware(t)
	reached := false
	userID := uuid.New()

	fx.tokenSvc.On("Verify", "good-token").Return(userID, nil)
	fx.authUC.On("ResolveIdentity", mock.Anything, userID).Return(nil, assert.AnError)

	rec := doRequest(t, "Bearer good-token", &reached, fx.mw.Authenticate)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Access denied. Invalid token or deactivated account", decodeMessage(t, rec))
	assert.False(t, reached)
}

func TestAuthenticate_Success(t *testing.T) {
	fx := createTestMiddleware(t)
	reached := false
	identity := &entity.Identity{ID: uuid.New(), Username: "alice", Role: entity.RoleAdmin}

	fx.tokenSvc.On("Verify", "good-token").Return(identity.ID, nil)
	fx.authUC.On("ResolveIdentity", mock.Anything, identity.ID).Return(identity, nil)

	rec := doRequest(t, "Bearer good-token", &reached, fx.mw.Authenticate)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, reached)
}

func TestRequireRole_WithoutAuthenticate(t *testing.T) {
	fx := createTestMiddleware(t)
	reached := false

	rec := doRequest(t, "", &reached, fx.mw.RequireRole(entity.RoleAdmin))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Authentication required", decodeMessage(t, rec))
	assert.False(t, reached)
}

func TestRequireRole_InsufficientRole(t *testing.T) {
	fx := createTestMiddleware(t)
	reached := false
	identity := &entity.Identity{ID: uuid.New(), Username: "bob", Role: entity.RoleEditor}

	fx.tokenSvc.On("Verify", "good-token").Return(identity.ID, nil)
	fx.authUC.On("ResolveIdentity", mock.Anything, identity.ID).Return(identity, nil)

	rec := doRequest(t, "Bearer good-token", &reached,
		fx.mw.Authenticate, fx.mw.RequireRole(entity.RoleAdmin))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Access denied. Admin privileges required", decodeMessage(t, rec))
	assert.False(t, reached)
}

func TestRequireRole_AdminPasses(t *testing.T) {
	fx := createTestMiddleware(t)
	reached := false
	identity := &entity.Identity{ID: uuid.New(), Username: "alice", Role: entity.RoleAdmin}

	fx.tokenSvc.On("Verify", "good-token").Return(identity.ID, nil)
	fx.authUC.On("ResolveIdentity", mock.Anything, identity.ID).Return(identity, nil)

	rec := doRequest(t, "Bearer good-token", &reached,
		fx.mw.Authenticate, fx.mw.RequireRole(entity.RoleAdmin))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, reached)
}

func TestGetIdentity(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	_, ok := GetIdentity(c)
	assert.False(t, ok)

	identity := &entity.Identity{ID: uuid.New()}
	c.Set("identity", identity)

	got, ok := GetIdentity(c)
	require.True(t, ok)
	assert.Equal(t, identity, got)
}
