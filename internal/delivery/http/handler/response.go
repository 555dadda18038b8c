package handler

import (
	"errors"
	"net/http"

	"github.com/gdugdh24/skillswap-backend/internal/domain"
	"github.com/gin-gonic/gin"
)

// LoginURL is where unauthenticated callers are pointed.
const LoginURL = "/api/v1/auth/login"

// ProfileIDKey is the gin context key the auth middleware stores the
// caller's profile id under.
const ProfileIDKey = "profile_id"

// ErrorResponse represents error response
type ErrorResponse struct {
	Error    string `json:"error"`
	LoginURL string `json:"login_url,omitempty"`
}

// SuccessResponse represents success response
type SuccessResponse struct {
	Message string `json:"message"`
}

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrCannotRequestSelf):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrAuthRequired),
		errors.Is(err, domain.ErrInvalidToken),
		errors.Is(err, domain.ErrSessionNotFound),
		errors.Is(err, domain.ErrSessionExpired):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrProfileNotFound),
		errors.Is(err, domain.ErrRequestNotFound),
		errors.Is(err, domain.ErrSwapNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidTransition), errors.Is(err, domain.ErrProfileExists):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// RespondError writes err as an ErrorResponse. Internal errors are
// attached to the context for the request logger and not shown to the
// client.
func RespondError(c *gin.Context, err error) {
	status := statusFor(err)
	resp := ErrorResponse{Error: err.Error()}
	switch status {
	case http.StatusUnauthorized:
		resp.LoginURL = LoginURL
	case http.StatusInternalServerError:
		_ = c.Error(err)
		resp.Error = "internal server error"
	}
	c.AbortWithStatusJSON(status, resp)
}

func badRequest(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()})
}

// currentProfileID returns the authenticated caller. Routes behind
// RequireAuth always have one.
func currentProfileID(c *gin.Context) (string, bool) {
	id := c.GetString(ProfileIDKey)
	if id == "" {
		RespondError(c, domain.ErrAuthRequired)
		return "", false
	}
	return id, true
}
