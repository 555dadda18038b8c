package handler

import (
	"net/http"

	"github.com/gdugdh24/skillswap-backend/internal/usecase/bookmark"
	"github.com/gin-gonic/gin"
)

type BookmarkHandler struct {
	bookmarkUseCase *bookmark.BookmarkUseCase
}

func NewBookmarkHandler(bookmarkUseCase *bookmark.BookmarkUseCase) *BookmarkHandler {
	return &BookmarkHandler{bookmarkUseCase: bookmarkUseCase}
}

// List handles GET /bookmarks
func (h *BookmarkHandler) List(c *gin.Context) {
	profileID, ok := currentProfileID(c)
	if !ok {
		return
	}
	resp, err := h.bookmarkUseCase.List(c.Request.Context(), profileID)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Toggle handles POST /bookmarks/:profile_id/toggle
func (h *BookmarkHandler) Toggle(c *gin.Context) {
	profileID, ok := currentProfileID(c)
	if !ok {
		return
	}
	resp, err := h.bookmarkUseCase.Toggle(c.Request.Context(), profileID, c.Param("profile_id"))
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
