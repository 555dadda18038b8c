package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gdugdh24/skillswap-backend/internal/domain"
	"github.com/gdugdh24/skillswap-backend/internal/repository/memory"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret-that-is-long-enough-1234"

func newAuthUseCase(t *testing.T) *AuthUseCase {
	t.Helper()
	profiles := memory.NewProfileRepository()
	require.NoError(t, profiles.Create(context.Background(), &domain.Profile{ID: "1", Name: "Marc Demo"}))
	return NewAuthUseCase(profiles, memory.NewSessionRepository(), secret, time.Hour)
}

func TestLoginAndVerify(t *testing.T) {
	uc := newAuthUseCase(t)
	ctx := context.Background()

	resp, err := uc.Login(ctx, &LoginRequest{ProfileID: "1"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "Marc Demo", resp.Profile.Name)

	id, err := uc.VerifyToken(ctx, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "1", id)
}

func TestLoginUnknownProfile(t *testing.T) {
	uc := newAuthUseCase(t)
	_, err := uc.Login(context.Background(), &LoginRequest{ProfileID: "42"})
	assert.True(t, errors.Is(err, domain.ErrProfileNotFound))

	_, err = uc.Login(context.Background(), &LoginRequest{ProfileID: " "})
	assert.True(t, errors.Is(err, domain.ErrValidation))
}

func TestLogoutEndsSession(t *testing.T) {
	uc := newAuthUseCase(t)
	ctx := context.Background()

	resp, err := uc.Login(ctx, &LoginRequest{ProfileID: "1"})
	require.NoError(t, err)
	other, err := uc.Login(ctx, &LoginRequest{ProfileID: "1"})
	require.NoError(t, err)
	require.NotEqual(t, resp.Token, other.Token)

	require.NoError(t, uc.Logout(ctx, resp.Token))
	_, err = uc.VerifyToken(ctx, resp.Token)
	assert.True(t, errors.Is(err, domain.ErrSessionNotFound))

	_, err = uc.VerifyToken(ctx, other.Token)
	assert.NoError(t, err)
}

func TestVerifyRejectsBadTokens(t *testing.T) {
	uc := newAuthUseCase(t)
	ctx := context.Background()

	_, err := uc.VerifyToken(ctx, "not-a-jwt")
	assert.True(t, errors.Is(err, domain.ErrInvalidToken))

	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	s, err := forged.SignedString([]byte("some-other-secret"))
	require.NoError(t, err)
	_, err = uc.VerifyToken(ctx, s)
	assert.True(t, errors.Is(err, domain.ErrInvalidToken))

	// Correctly signed but never issued.
	s, err = forged.SignedString([]byte(secret))
	require.NoError(t, err)
	_, err = uc.VerifyToken(ctx, s)
	assert.True(t, errors.Is(err, domain.ErrSessionNotFound))
}

func TestVerifyExpired(t *testing.T) {
	uc := newAuthUseCase(t)
	ctx := context.Background()

	resp, err := uc.Login(ctx, &LoginRequest{ProfileID: "1"})
	require.NoError(t, err)

	uc.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = uc.VerifyToken(ctx, resp.Token)
	assert.True(t, errors.Is(err, domain.ErrSessionExpired))
}
