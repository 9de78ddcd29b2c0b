package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"recruitcms/config"
	"recruitcms/internal/domain/entity"
	"recruitcms/internal/usecase"
)

// mockUserRepository is a testify mock for repository.UserRepository.
type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *mockUserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

func (m *mockUserRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	args := m.Called(ctx, id, at)

	return args.Error(0)
}

func (m *mockUserRepository) CountByRole(ctx context.Context, role entity.Role) (int64, error) {
	args := m.Called(ctx, role)

	return args.Get(0).(int64), args.Error(1)
}

// mockPasswordHasher is a testify mock for service.PasswordHasher.
type mockPasswordHasher struct {
	mock.Mock
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *mockPasswordHasher) Check(password, hash string) bool {
	args := m.Called(password, hash)

	return args.Bool(0)
}

// mockTokenService is a testify mock for service.TokenService.
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

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service  usecase.AuthUsecase
	userRepo *mockUserRepository
	hasher   *mockPasswordHasher
	tokenSvc *mockTokenService
}

func createTestAuthService(t *testing.T, bootstrap *config.BootstrapConfig) authServiceFixtures {
	t.Helper()

	userRepo := &mockUserRepository{}
	hasher := &mockPasswordHasher{}
	tokenSvc := &mockTokenService{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{
		Auth: &config.AuthConfig{
			TokenSecret: "test-secret",
			Bootstrap:   bootstrap,
		},
	}

	service := NewAuthService(AuthServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenSvc,
		Config:       cfg,
		Logger:       logger,
	})

	t.Cleanup(func() {
		userRepo.AssertExpectations(t)
		hasher.AssertExpectations(t)
		tokenSvc.AssertExpectations(t)
	})

	return authServiceFixtures{
		service:  service,
		userRepo: userRepo,
		hasher:   hasher,
		tokenSvc: tokenSvc,
	}
}

func activeUser(username, hash string, role entity.Role) *entity.User {
	return &entity.User{
		ID:           uuid.New(),
		Username:     username,
		Name:         "Test User",
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
	}
}
