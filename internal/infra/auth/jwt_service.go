// Package auth provides concrete implementations for authentication-related
// domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"recruitcms/config"
	"recruitcms/internal/domain/service"
)

// tokenTTL is the fixed validity window for issued tokens.
const tokenTTL = 24 * time.Hour

// jwtService is a concrete implementation of the TokenService interface using
// the JWT standard with HMAC signing.
type jwtService struct {
	secret string
	ttl    time.Duration
}

// NewJWTService is the constructor for jwtService. A missing signing secret
// is a startup-fatal condition for any deployment serving authenticated
// routes.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Auth == nil || cfg.Auth.TokenSecret == "" {
		return nil, errors.New("auth.tokenSecret must be provided")
	}

	return &jwtService{
		secret: cfg.Auth.TokenSecret,
		ttl:    tokenTTL,
	}, nil
}

// Issue creates a signed token carrying the user identifier, valid for 24
// hours from issuance.
func (s *jwtService) Issue(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userID.String(),
		"iat": now.Unix(),
		"exp": now.Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Verify checks a token's signature and expiry and returns the encoded user
// identifier. Malformed, forged and expired tokens fail with the same
// service.ErrInvalidToken so callers get no signal about which check failed.
func (s *jwtService) Verify(tokenString string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, service.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, service.ErrInvalidToken
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return uuid.Nil, service.ErrInvalidToken
	}

	userID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, service.ErrInvalidToken
	}

	return userID, nil
}
