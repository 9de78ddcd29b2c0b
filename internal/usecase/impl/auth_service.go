// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	"recruitcms/config"
	"recruitcms/internal/domain/entity"
	domainerrors "recruitcms/internal/domain/errors"
	"recruitcms/internal/domain/repository"
	"recruitcms/internal/domain/service"
	"recruitcms/internal/usecase"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	tokenSvc  service.TokenService
	bootstrap *config.BootstrapConfig
	logger    *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all
// dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	var bootstrap *config.BootstrapConfig
	if params.Config != nil && params.Config.Auth != nil {
		bootstrap = params.Config.Auth.Bootstrap
	}

	return &authService{
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		tokenSvc:  params.TokenService,
		bootstrap: bootstrap,
		logger:    params.Logger,
	}
}

// Login checks credentials and issues a bearer token. The invalid-credentials
// response is identical for unknown usernames and wrong passwords; only a
// deactivated account is reported distinctly. Exactly one store write
// (lastLogin, best-effort) happens on success, none on any failure path.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" || input.Password == "" {
		return nil, errors.Wrap(domainerrors.ErrMissingCredentials, "login rejected")
	}

	user, err := srv.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.logger.Warn("Login failed, unknown username", slog.String("username", username))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to look up user for login")
	}

	if !user.IsActive {
		srv.logger.Warn("Login rejected for deactivated account", slog.Any("userID", user.ID))

		return nil, errors.Wrap(domainerrors.ErrAccountDeactivated, "login rejected")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.logger.Warn("Login failed, password mismatch", slog.Any("userID", user.ID))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	// Best-effort: a failure to persist lastLogin must not fail the login.
	if err := srv.userRepo.UpdateLastLogin(ctx, user.ID, time.Now()); err != nil {
		srv.logger.Warn("Failed to persist last login", slog.Any("userID", user.ID), slog.Any("error", err))
	}

	token, err := srv.tokenSvc.Issue(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}

	srv.logger.Debug("User logged in", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		Token: token,
		User:  user.Identity(),
	}, nil
}

// Register creates a new account. Admin gating happens in the delivery layer;
// this enforces input presence, the uniqueness pre-check and the default
// role. An omitted role gets the lowest privilege, never admin.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" || input.Password == "" || input.Name == "" {
		return nil, errors.Wrap(domainerrors.ErrMissingFields, "registration rejected")
	}

	role := entity.RoleEditor
	if input.Role != "" {
		role = entity.Role(input.Role)
		if !role.IsValid() {
			return nil, errors.Wrap(domainerrors.ErrInvalidRole, "registration rejected")
		}
	}

	// Optimistic pre-check for a friendly error; the store's unique
	// constraint resolves the remaining race window.
	if _, err := srv.userRepo.FindByUsername(ctx, username); err == nil {
		return nil, errors.Wrap(domainerrors.ErrUsernameTaken, "registration rejected")
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check username availability")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	user := &entity.User{
		Username:     username,
		Name:         input.Name,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUsernameExists) {
			return nil, errors.Wrap(domainerrors.ErrUsernameTaken, "registration lost uniqueness race")
		}

		return nil, errors.Wrap(err, "failed to create user during registration")
	}

	srv.logger.Info("Account registered", slog.Any("userID", user.ID), slog.String("role", role.String()))

	return &usecase.RegisterOutput{User: user.Identity()}, nil
}

// ResolveIdentity re-resolves the token's user on every request. Missing and
// deactivated accounts fail identically.
func (srv *authService) ResolveIdentity(ctx context.Context, userID uuid.UUID) (*entity.Identity, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrTokenUserInvalid, "token user not found")
		}

		return nil, errors.Wrap(err, "failed to resolve token user")
	}

	if !user.IsActive {
		return nil, errors.Wrap(domainerrors.ErrTokenUserInvalid, "token user deactivated")
	}

	return user.Identity(), nil
}

// BootstrapAdmin creates the configured initial admin account. It is a no-op
// when bootstrap credentials are absent or any admin already exists, so
// running it on every startup is safe.
func (srv *authService) BootstrapAdmin(ctx context.Context) error {
	if srv.bootstrap == nil || srv.bootstrap.Username == "" || srv.bootstrap.Password == "" {
		srv.logger.Debug("Admin bootstrap skipped, no credentials configured")

		return nil
	}

	count, err := srv.userRepo.CountByRole(ctx, entity.RoleAdmin)
	if err != nil {
		return errors.Wrap(err, "failed to count admin accounts")
	}
	if count > 0 {
		srv.logger.Debug("Admin bootstrap skipped, admin account already exists")

		return nil
	}

	name := srv.bootstrap.Name
	if name == "" {
		name = srv.bootstrap.Username
	}

	hash, err := srv.hasher.Hash(srv.bootstrap.Password)
	if err != nil {
		return errors.Wrap(err, "failed to hash bootstrap password")
	}

	admin := &entity.User{
		Username:     strings.TrimSpace(srv.bootstrap.Username),
		Name:         name,
		PasswordHash: hash,
		Role:         entity.RoleAdmin,
		IsActive:     true,
	}

	if err := srv.userRepo.Create(ctx, admin); err != nil {
		// A concurrent bootstrap may have won the race; that still satisfies
		// "an admin exists".
		if errors.Is(err, repository.ErrUsernameExists) {
			srv.logger.Info("Admin bootstrap found an existing account", slog.String("username", admin.Username))

			return nil
		}

		return errors.Wrap(err, "failed to create bootstrap admin")
	}

	srv.logger.Info("Bootstrap admin account created", slog.Any("userID", admin.ID))

	return nil
}
