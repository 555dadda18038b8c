package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gdugdh24/skillswap-backend/internal/domain"
	"github.com/gdugdh24/skillswap-backend/internal/repository"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultSessionTTL is used when NewAuthUseCase gets a zero ttl.
const DefaultSessionTTL = 7 * 24 * time.Hour

type AuthUseCase struct {
	profileRepo repository.ProfileRepository
	sessionRepo repository.SessionRepository
	jwtSecret   string
	ttl         time.Duration
	now         func() time.Time
}

func NewAuthUseCase(
	profileRepo repository.ProfileRepository,
	sessionRepo repository.SessionRepository,
	jwtSecret string,
	ttl time.Duration,
) *AuthUseCase {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &AuthUseCase{
		profileRepo: profileRepo,
		sessionRepo: sessionRepo,
		jwtSecret:   jwtSecret,
		ttl:         ttl,
		now:         time.Now,
	}
}

type LoginRequest struct {
	ProfileID string `json:"profile_id" binding:"required"`
}

type AuthResponse struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expires_at"`
	Profile   *domain.Profile `json:"profile"`
}

// Login opens a session for an existing profile. There is no credential
// check beyond the profile existing.
func (uc *AuthUseCase) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	profileID := strings.TrimSpace(req.ProfileID)
	if profileID == "" {
		return nil, domain.NewValidationError("profile_id", "is required")
	}
	profile, err := uc.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}

	token, expiresAt, err := uc.createSession(ctx, profile.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return &AuthResponse{Token: token, ExpiresAt: expiresAt, Profile: profile}, nil
}

func (uc *AuthUseCase) createSession(ctx context.Context, profileID string) (string, time.Time, error) {
	now := uc.now()
	expiresAt := now.Add(uc.ttl)
	sessionID := uuid.NewString()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ID:        sessionID,
		Subject:   profileID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	})
	tokenString, err := token.SignedString([]byte(uc.jwtSecret))
	if err != nil {
		return "", time.Time{}, err
	}

	session := &domain.Session{
		ID:        sessionID,
		ProfileID: profileID,
		TokenHash: hashToken(tokenString),
		CreatedAt: now,
		ExpiresAt: expiresAt,
	}
	if err := uc.sessionRepo.Create(ctx, session); err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// VerifyToken checks the signature and expiry of tokenString and that its
// session is still open. It returns the profile id the session belongs to.
func (uc *AuthUseCase) VerifyToken(ctx context.Context, tokenString string) (string, error) {
	var claims jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrInvalidToken
		}
		return []byte(uc.jwtSecret), nil
	}, jwt.WithTimeFunc(uc.now))
	if err != nil || !token.Valid || claims.Subject == "" {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", domain.ErrSessionExpired
		}
		return "", domain.ErrInvalidToken
	}

	session, err := uc.sessionRepo.GetByToken(ctx, hashToken(tokenString))
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return "", domain.ErrSessionNotFound
		}
		return "", err
	}
	if uc.now().After(session.ExpiresAt) {
		return "", domain.ErrSessionExpired
	}
	if session.ProfileID != claims.Subject {
		return "", domain.ErrInvalidToken
	}
	return session.ProfileID, nil
}

// Logout closes the session behind tokenString.
func (uc *AuthUseCase) Logout(ctx context.Context, tokenString string) error {
	return uc.sessionRepo.DeleteByToken(ctx, hashToken(tokenString))
}

// hashToken is the key sessions are stored under.
func hashToken(token string) string {
	h := sha256.Sum256([]byte(token))
	return hex.EncodeToString(h[:])
}
