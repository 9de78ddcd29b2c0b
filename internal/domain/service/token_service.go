package service

import (
	"errors"

	"github.com/google/uuid"
)

// ErrInvalidToken is the single failure returned by Verify. Malformed,
// forged and expired tokens all fail identically so callers cannot
// distinguish them.
var ErrInvalidToken = errors.New("invalid token")

// TokenService defines the interface for issuing and verifying signed,
// time-limited bearer tokens. Tokens are stateless; there is no server-side
// revocation list. Revocation-on-next-request comes from the authentication
// middleware re-resolving the user on every request.
type TokenService interface {
	// Issue produces a signed token for the user with a fixed 24-hour
	// validity window from issuance.
	Issue(userID uuid.UUID) (string, error)

	// Verify checks the signature and expiry of a token and returns the
	// encoded user identifier, or ErrInvalidToken.
	Verify(token string) (uuid.UUID, error)
}
