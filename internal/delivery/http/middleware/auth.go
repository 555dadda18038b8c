package middleware

import (
	"context"

	"github.com/gdugdh24/skillswap-backend/internal/delivery/http/handler"
	"github.com/gdugdh24/skillswap-backend/internal/domain"
	"github.com/gin-gonic/gin"
)

// TokenVerifier resolves a bearer token to the profile it belongs to.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (string, error)
}

type AuthMiddleware struct {
	verifier TokenVerifier
}

func NewAuthMiddleware(verifier TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// RequireAuth rejects requests without a valid session with 401 and a
// pointer to the login endpoint.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := handler.BearerToken(c.GetHeader("Authorization"))
		if token == "" {
			handler.RespondError(c, domain.ErrAuthRequired)
			return
		}
		profileID, err := m.verifier.VerifyToken(c.Request.Context(), token)
		if err != nil {
			handler.RespondError(c, err)
			return
		}
		c.Set(handler.ProfileIDKey, profileID)
		c.Next()
	}
}

// OptionalAuth identifies the caller when a valid token is present and
// lets anonymous requests through otherwise.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := handler.BearerToken(c.GetHeader("Authorization")); token != "" {
			if profileID, err := m.verifier.VerifyToken(c.Request.Context(), token); err == nil {
				c.Set(handler.ProfileIDKey, profileID)
			}
		}
		c.Next()
	}
}
