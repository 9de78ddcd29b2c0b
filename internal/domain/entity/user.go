// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account in the credential store. Usernames are unique,
// case-sensitive, and trimmed of surrounding whitespace before any lookup or
// storage. PasswordHash never leaves the domain/persistence layers.
type User struct {
	ID           uuid.UUID  // Stable unique identifier for the account.
	Username     string     // Login name, unique and case-sensitive.
	Name         string     // Display name, free text.
	PasswordHash string     // One-way bcrypt hash; plaintext is never stored.
	Role         Role       // Privilege level; authorization keys off RoleAdmin.
	IsActive     bool       // Inactive accounts never authenticate, even with correct credentials.
	LastLogin    *time.Time // Updated best-effort on every successful login.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Identity is the request-scoped, password-free projection of an
// authenticated user. It is attached to the request context by the
// authentication middleware and consumed by handlers and the role gate.
type Identity struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Name     string    `json:"name"`
	Role     Role      `json:"role"`
}

// Identity returns the password-free projection of the user.
func (u *User) Identity() *Identity {
	return &Identity{
		ID:       u.ID,
		Username: u.Username,
		Name:     u.Name,
		Role:     u.Role,
	}
}
