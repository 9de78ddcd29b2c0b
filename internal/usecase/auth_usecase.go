// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"github.com/google/uuid"

	"recruitcms/internal/domain/entity"
)

// --- Input DTOs ---

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string
	Password string
}

// RegisterInput defines the data required to create a new account.
// Role is optional; when omitted the account gets the lowest-privilege role.
type RegisterInput struct {
	Username string
	Password string
	Name     string
	Role     string
}

// --- Output DTOs ---

// LoginOutput returns the issued bearer token and the password-free user
// projection after a successful login.
type LoginOutput struct {
	Token string
	User  *entity.Identity
}

// RegisterOutput returns the newly created account's projection.
// Registration does not log the new user in, so there is no token here.
type RegisterOutput struct {
	User *entity.Identity
}

// AuthUsecase defines the interface for authentication business operations.
// This is the contract that the delivery layer (API handlers and the
// authentication middleware) depends on.
type AuthUsecase interface {
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// ResolveIdentity loads the password-free projection for a verified
	// token's user, rejecting missing or deactivated accounts. The
	// authentication middleware calls this on every request, which is what
	// gives stateless tokens revocation-on-next-request semantics.
	ResolveIdentity(ctx context.Context, userID uuid.UUID) (*entity.Identity, error)

	// BootstrapAdmin creates the configured initial admin account if no
	// admin exists yet. It is idempotent and safe to run on every startup.
	BootstrapAdmin(ctx context.Context) error
}
