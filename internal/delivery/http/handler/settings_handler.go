package handler

import (
	"net/http"

	"github.com/gdugdh24/skillswap-backend/internal/usecase/settings"
	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	settingsUseCase *settings.SettingsUseCase
}

func NewSettingsHandler(settingsUseCase *settings.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{settingsUseCase: settingsUseCase}
}

// Get handles GET /settings
func (h *SettingsHandler) Get(c *gin.Context) {
	profileID, ok := currentProfileID(c)
	if !ok {
		return
	}
	s, err := h.settingsUseCase.Get(c.Request.Context(), profileID)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

// Update handles PUT /settings
func (h *SettingsHandler) Update(c *gin.Context) {
	profileID, ok := currentProfileID(c)
	if !ok {
		return
	}
	var req settings.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	s, err := h.settingsUseCase.Update(c.Request.Context(), profileID, &req)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}
