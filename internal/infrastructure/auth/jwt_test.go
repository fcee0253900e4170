package auth

import (
	"testing"
	"time"

	"github.com/comex/backend/internal/infrastructure/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(expiration time.Duration) *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:          "test-secret-key-with-enough-length",
		TokenExpiration: expiration,
		Issuer:          "comex-backend",
	})
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	service := newTestService(time.Hour)
	userID := uuid.New()

	token, err := service.GenerateToken(userID, "maria")
	require.NoError(t, err)
	require.NotEmpty(t, token.Value)
	assert.Equal(t, "Bearer", token.TokenType)
	assert.WithinDuration(t, time.Now().Add(time.Hour), token.ExpiresAt, 5*time.Second)

	claims, err := service.ValidateToken(token.Value)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "maria", claims.Username)
	assert.Equal(t, "comex-backend", claims.Issuer)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	service := newTestService(-time.Minute)
	userID := uuid.New()

	token, err := service.GenerateToken(userID, "maria")
	require.NoError(t, err)

	_, err = service.ValidateToken(token.Value)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestJWTService_RejectsTamperedToken(t *testing.T) {
	service := newTestService(time.Hour)
	other := newTestService(time.Hour)
	other.secret = []byte("a-different-secret-signing-key!!")

	token, err := other.GenerateToken(uuid.New(), "maria")
	require.NoError(t, err)

	_, err = service.ValidateToken(token.Value)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	service := newTestService(time.Hour)

	_, err := service.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
