package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recruitcms/config"
	"recruitcms/internal/domain/service"
)

func newTestJWTService(t *testing.T, secret string) service.TokenService {
	t.Helper()

	cfg := &config.Config{Auth: &config.AuthConfig{TokenSecret: secret}}
	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)

	_, err = NewJWTService(&config.Config{Auth: &config.AuthConfig{}})
	assert.Error(t, err)
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc := newTestJWTService(t, "test-secret")
	userID := uuid.New()

	token, err := svc.Issue(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestJWTService_TokenExpiresInTwentyFourHours(t *testing.T) {
	svc := newTestJWTService(t, "test-secret")

	token, err := svc.Issue(uuid.New())
	require.NoError(t, err)

	parsed, err := jwt.Parse(token, func(*jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)

	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	iat, err := claims.GetIssuedAt()
	require.NoError(t, err)

	assert.Equal(t, 24*time.Hour, exp.Sub(iat.Time))
	assert.WithinDuration(t, time.Now(), iat.Time, 5*time.Second)
}

func TestJWTService_Verify_RejectsGarbage(t *testing.T) {
	svc := newTestJWTService(t, "test-secret")

	for _, tokenString := range []string{"", "not-a-token", "a.b.c"} {
		got, err := svc.Verify(tokenString)
		assert.ErrorIs(t, err, service.ErrInvalidToken)
		assert.Equal(t, uuid.Nil, got)
	}
}

func TestJWTService_Verify_RejectsWrongSecret(t *testing.T) {
	issuer := newTestJWTService(t, "secret-one")
	verifier := newTestJWTService(t, "secret-two")

	token, err := issuer.Issue(uuid.New())
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestJWTService_Verify_RejectsExpired(t *testing.T) {
	svc := newTestJWTService(t, "test-secret")

	now := time.Now().Add(-48 * time.Hour)
	claims := jwt.MapClaims{
		"sub": uuid.New().String(),
		"iat": now.Unix(),
		"exp": now.Add(24 * time.Hour).Unix(),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.Verify(expired)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestJWTService_Verify_RejectsNonUUIDSubject(t *testing.T) {
	svc := newTestJWTService(t, "test-secret")

	now := time.Now()
	claims := jwt.MapClaims{
		"sub": "not-a-uuid",
		"iat": now.Unix(),
		"exp": now.Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}
