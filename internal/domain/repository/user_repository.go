// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

import (
	"context"
	"errors"
	"time"

	"recruitcms/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrUsernameExists is returned by Create when the store's uniqueness
// constraint rejects a duplicate username. It is the last-resort guard behind
// the optimistic pre-check in the register flow.
var ErrUsernameExists = errors.New("username already exists")

// UserRepository defines the standard operations for the credential store.
// The application layer depends on this interface, not the concrete
// implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByUsername retrieves a single user by exact, case-sensitive
	// username match. Callers trim surrounding whitespace before lookup.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// UpdateLastLogin records the time of a successful login.
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error

	// CountByRole returns the number of accounts holding the given role.
	CountByRole(ctx context.Context, role entity.Role) (int64, error)
}
