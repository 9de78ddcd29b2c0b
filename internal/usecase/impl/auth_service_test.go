package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"recruitcms/config"
	"recruitcms/internal/domain/entity"
	domainerrors "recruitcms/internal/domain/errors"
	"recruitcms/internal/domain/repository"
	"recruitcms/internal/usecase"
)

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t, nil)
	ctx := context.Background()
	user := activeUser("alice", "hashed-pw", entity.RoleAdmin)

	fx.userRepo.On("FindByUsername", ctx, "alice").Return(user, nil)
	fx.hasher.On("Check", "s3cret", "hashed-pw").Return(true)
	fx.userRepo.On("UpdateLastLogin", ctx, user.ID, mock.AnythingOfType("time.Time")).Return(nil)
	fx.tokenSvc.On("Issue", user.ID).Return("signed-token", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.Token)
	assert.Equal(t, user.ID, output.User.ID)
	assert.Equal(t, "alice", output.User.Username)
	assert.Equal(t, entity.RoleAdmin, output.User.Role)
}

func TestAuthService_Login_TrimsUsername(t *testing.T) {
	fx := createTestAuthService(t, nil)
	ctx := context.Background()
	user := activeUser("alice", "hashed-pw", entity.RoleEditor)

	fx.userRepo.On("FindByUsername", ctx, "alice").Return(user, nil)
	fx.hasher.On("Check", "s3cret", "hashed-pw").Return(true)
	fx.userRepo.On("UpdateLastLogin", ctx, user.ID, mock.AnythingOfType("time.Time")).Return(nil)
	fx.tokenSvc.On("Issue", user.ID).Return("signed-token", nil)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "  alice  ", Password: "s3cret"})
	require.NoError(t, err)
}

func TestAuthService_Login_MissingCredentials(t *testing.T) {
	fx := createTestAuthService(t, nil)
	ctx := context.Background()

	for _, input := range []*usecase.LoginInput{
		{Username: "", Password: "pw"},
		{Username: "alice", Password: ""},
		{Username: "   ", Password: "pw"},
	} {
		_, err := fx.service.Login(ctx, input)
		assert.ErrorIs(t, err, domainerrors.ErrMissingCredentials)
	}
}

func TestAuthService_Login_UnknownUserAndWrongPasswordFailIdentically(t *testing.T) {
	fx := createTestAuthService(t, nil)
	ctx := context.Background()
	user := activeUser("alice", "hashed-pw", entity.RoleEditor)

	fx.userRepo.On("FindByUsername", ctx, "ghost").Return(nil, repository.ErrUserNotFound)
	fx.userRepo.On("FindByUsername", ctx, "alice").Return(user, nil)
	fx.hasher.On("Check", "wrong", "hashed-pw").Return(false)

	_, unknownErr := fx.service.Login(ctx, &usecase.LoginInput{Username: "ghost", Password: "pw"})
	_, mismatchErr := fx.service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "wrong"})

	assert.ErrorIs(t, unknownErr, domainerrors.ErrInvalidCredentials)
	assert.ErrorIs(t, mismatchErr, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_DeactivatedAccountBeforePasswordCheck(t *testing.T) {
	fx := createTestAuthService(t, nil)
	ctx := context.Background()
	user := activeUser("alice", "hashed-pw", entity.RoleEditor)
	user.IsActive = false

	fx.userRepo.On("FindByUsername", ctx, "alice").Return(user, nil)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "s3cret"})
	assert.ErrorIs(t, err, domainerrors.ErrAccountDeactivated)
	// The password is never checked for a deactivated account.
	fx.hasher.AssertNotCalled(t, "Check", mock.Anything, mock.Anything)
}

func TestAuthService_Login_LastLoginFailureDoesNotFailLogin(t *testing.T) {
	fx := createTestAuthService(t, nil)
	ctx := context.Background()
	user := activeUser("alice", "hashed-pw", entity.RoleEditor)

	fx.userRepo.On("FindByUsername", ctx, "alice").Return(user, nil)
	fx.hasher.On("Check", "s3cret", "hashed-pw").Return(true)
	fx.userRepo.On("UpdateLastLogin", ctx, user.ID, mock.AnythingOfType("time.Time")).
		Return(assert.AnError)
	fx.tokenSvc.On("Issue", user.ID).Return("signed-token", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.Token)
}

func TestAuthService_Register_DefaultsToEditorRole(t *testing.T) {
	fx := createTestAuthService(t, nil)
	ctx := context.Background()

	fx.userRepo.On("FindByUsername", ctx, "bob").Return(nil, repository.ErrUserNotFound)
	fx.hasher.On("Hash", "pw").Return("hashed-pw", nil)
	fx.userRepo.On("Create", ctx, mock.MatchedBy(func(u *entity.User) bool {
		return u.Username == "bob" && u.Role == entity.RoleEditor && u.IsActive
	})).Return(nil)

	output, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Username: "bob",
		Password: "pw",
		Name:     "Bob",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleEditor, output.User.Role)
}

func TestAuthService_Register_ExplicitAdminRole(t *testing.T) {
	fx := createTestAuthService(t, nil)
	ctx := context.Background()

	fx.userRepo.On("FindByUsername", ctx, "bob").Return(nil, repository.ErrUserNotFound)
	fx.hasher.On("Hash", "pw").Return("hashed-pw", nil)
	fx.userRepo.On("Create", ctx, mock.MatchedBy(func(u *entity.User) bool {
		return u.Role == entity.RoleAdmin
	})).Return(nil)

	output, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Username: "bob",
		Password: "pw",
		Name:     "Bob",
		Role:     "admin",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, output.User.Role)
}

func TestAuthService_Register_RejectsUnknownRole(t *testing.T) {
	fx := createTestAuthService(t, nil)

	_, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		Username: "bob",
		Password: "pw",
		Name:     "Bob",
		Role:     "superuser",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidRole)
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	fx := createTestAuthService(t, nil)
	ctx := context.Background()

	for _, input := range []*usecase.RegisterInput{
		{Username: "", Password: "pw", Name: "Bob"},
		{Username: "bob", Password: "", Name: "Bob"},
		{Username: "bob", Password: "pw", Name: ""},
	} {
		_, err := fx.service.Register(ctx, input)
		assert.ErrorIs(t, err, domainerrors.ErrMissingFields)
	}
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	fx := createTestAuthService(t, nil)
	ctx := context.Background()

	fx.userRepo.On("FindByUsername", ctx, "alice").
		Return(activeUser("alice", "hash", entity.RoleEditor), nil)

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Username: "alice",
		Password: "pw",
		Name:     "Alice",
	})
	assert.ErrorIs(t, err, domainerrors.ErrUsernameTaken)
}

func TestAuthService_Register_DuplicateUsernameRace(t *testing.T) {
	fx := createTestAuthService(t, nil)
	ctx := context.Background()

	fx.userRepo.On("FindByUsername", ctx, "alice").Return(nil, repository.ErrUserNotFound)
	fx.hasher.On("Hash", "pw").Return("hashed-pw", nil)
	fx.userRepo.On("Create", ctx, mock.Anything).Return(repository.ErrUsernameExists)

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Username: "alice",
		Password: "pw",
		Name:     "Alice",
	})
	assert.ErrorIs(t, err, domainerrors.ErrUsernameTaken)
}

func TestAuthService_ResolveIdentity(t *testing.T) {
	fx := createTestAuthService(t, nil)
	ctx := context.Background()
	user := activeUser("alice", "hash", entity.RoleEditor)

	fx.userRepo.On("FindByID", ctx, user.ID).Return(user, nil)

	identity, err := fx.service.ResolveIdentity(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, identity.ID)
	assert.Equal(t, "alice", identity.Username)
}

func TestAuthService_ResolveIdentity_MissingAndDeactivatedFailIdentically(t *testing.T) {
	fx := createTestAuthService(t, nil)
	ctx := context.Background()
	deactivated := activeUser("alice", "hash", entity.RoleEditor)
	deactivated.IsActive = false
	missing := activeUser("ghost", "hash", entity.RoleEditor)

	fx.userRepo.On("FindByID", ctx, deactivated.ID).Return(deactivated, nil)
	fx.userRepo.On("FindByID", ctx, missing.ID).Return(nil, repository.ErrUserNotFound)

	_, deactivatedErr := fx.service.ResolveIdentity(ctx, deactivated.ID)
	_, missingErr := fx.service.ResolveIdentity(ctx, missing.ID)

	assert.ErrorIs(t, deactivatedErr, domainerrors.ErrTokenUserInvalid)
	assert.ErrorIs(t, missingErr, domainerrors.ErrTokenUserInvalid)
}

func TestAuthService_BootstrapAdmin_SkipsWithoutCredentials(t *testing.T) {
	fx := createTestAuthService(t, nil)

	err := fx.service.BootstrapAdmin(context.Background())
	assert.NoError(t, err)
	fx.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthService_BootstrapAdmin_SkipsWhenAdminExists(t *testing.T) {
	fx := createTestAuthService(t, &config.BootstrapConfig{Username: "root", Password: "pw"})
	ctx := context.Background()

	fx.userRepo.On("CountByRole", ctx, entity.RoleAdmin).Return(int64(1), nil)

	err := fx.service.BootstrapAdmin(ctx)
	assert.NoError(t, err)
	fx.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthService_BootstrapAdmin_CreatesAdmin(t *testing.T) {
	fx := createTestAuthService(t, &config.BootstrapConfig{Username: "root", Password: "pw"})
	ctx := context.Background()

	fx.userRepo.On("CountByRole", ctx, entity.RoleAdmin).Return(int64(0), nil)
	fx.hasher.On("Hash", "pw").Return("hashed-pw", nil)
	fx.userRepo.On("Create", ctx, mock.MatchedBy(func(u *entity.User) bool {
		return u.Username == "root" && u.Role == entity.RoleAdmin && u.IsActive && u.Name == "root"
	})).Return(nil)

	err := fx.service.BootstrapAdmin(ctx)
	assert.NoError(t, err)
}

func TestAuthService_BootstrapAdmin_ToleratesLostRace(t *testing.T) {
	fx := createTestAuthService(t, &config.BootstrapConfig{Username: "root", Password: "pw"})
	ctx := context.Background()

	fx.userRepo.On("CountByRole", ctx, entity.RoleAdmin).Return(int64(0), nil)
	fx.hasher.On("Hash", "pw").Return("hashed-pw", nil)
	fx.userRepo.On("Create", ctx, mock.Anything).Return(repository.ErrUsernameExists)

	err := fx.service.BootstrapAdmin(ctx)
	assert.NoError(t, err)
}
