package handler

import (
	"net/http"
	"strings"

	"github.com/gdugdh24/skillswap-backend/internal/usecase/auth"
	"github.com/gdugdh24/skillswap-backend/internal/usecase/profile"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase    *auth.AuthUseCase
	profileUseCase *profile.ProfileUseCase
}

func NewAuthHandler(authUseCase *auth.AuthUseCase, profileUseCase *profile.ProfileUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase:    authUseCase,
		profileUseCase: profileUseCase,
	}
}

// Login handles POST /auth/login
// @Summary Log in as a profile
// @Tags auth
// @Accept json
// @Produce json
// @Param request body auth.LoginRequest true "Profile to log in as"
// @Success 200 {object} auth.AuthResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	resp, err := h.authUseCase.Login(c.Request.Context(), &req)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Logout handles POST /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	token := BearerToken(c.GetHeader("Authorization"))
	if err := h.authUseCase.Logout(c.Request.Context(), token); err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "logged out"})
}

// Me handles GET /auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	profileID, ok := currentProfileID(c)
	if !ok {
		return
	}
	p, err := h.profileUseCase.GetMyProfile(c.Request.Context(), profileID)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// BearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. It returns "" for anything else.
func BearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
