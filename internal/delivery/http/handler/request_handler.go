package handler

import (
	"net/http"

	"github.com/gdugdh24/skillswap-backend/internal/usecase/request"
	"github.com/gin-gonic/gin"
)

// RequestHandler serves swap requests and the swaps they turn into.
type RequestHandler struct {
	requestUseCase *request.RequestUseCase
}

func NewRequestHandler(requestUseCase *request.RequestUseCase) *RequestHandler {
	return &RequestHandler{
		requestUseCase: requestUseCase,
	}
}

// CreateRequest handles POST /requests
// @Summary Send a swap request
// @Tags requests
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.CreateRequest true "Swap request"
// @Success 201 {object} domain.SwapRequest
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /requests [post]
func (h *RequestHandler) CreateRequest(c *gin.Context) {
	profileID, ok := currentProfileID(c)
	if !ok {
		return
	}
	var req request.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	created, err := h.requestUseCase.Create(c.Request.Context(), profileID, &req)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListIncoming handles GET /requests/incoming
func (h *RequestHandler) ListIncoming(c *gin.Context) {
	profileID, ok := currentProfileID(c)
	if !ok {
		return
	}
	reqs, err := h.requestUseCase.ListIncoming(c.Request.Context(), profileID)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reqs)
}

// ListOutgoing handles GET /requests/outgoing
func (h *RequestHandler) ListOutgoing(c *gin.Context) {
	profileID, ok := currentProfileID(c)
	if !ok {
		return
	}
	reqs, err := h.requestUseCase.ListOutgoing(c.Request.Context(), profileID)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reqs)
}

// Accept handles POST /requests/:id/accept and returns the new swap as
// the caller sees it.
func (h *RequestHandler) Accept(c *gin.Context) {
	profileID, ok := currentProfileID(c)
	if !ok {
		return
	}
	swap, err := h.requestUseCase.Accept(c.Request.Context(), profileID, c.Param("id"))
	if err != nil {
		RespondError(c, err)
		return
	}
	view, _ := swap.ViewFor(profileID)
	c.JSON(http.StatusOK, view)
}

// Decline handles POST /requests/:id/decline
func (h *RequestHandler) Decline(c *gin.Context) {
	profileID, ok := currentProfileID(c)
	if !ok {
		return
	}
	req, err := h.requestUseCase.Decline(c.Request.Context(), profileID, c.Param("id"))
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, req)
}

// Cancel handles POST /requests/:id/cancel
func (h *RequestHandler) Cancel(c *gin.Context) {
	profileID, ok := currentProfileID(c)
	if !ok {
		return
	}
	req, err := h.requestUseCase.Cancel(c.Request.Context(), profileID, c.Param("id"))
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, req)
}

// ListActive handles GET /swaps/active
func (h *RequestHandler) ListActive(c *gin.Context) {
	profileID, ok := currentProfileID(c)
	if !ok {
		return
	}
	swaps, err := h.requestUseCase.ListActive(c.Request.Context(), profileID)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, swaps)
}

// ListCompleted handles GET /swaps/completed
func (h *RequestHandler) ListCompleted(c *gin.Context) {
	profileID, ok := currentProfileID(c)
	if !ok {
		return
	}
	swaps, err := h.requestUseCase.ListCompleted(c.Request.Context(), profileID)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, swaps)
}

// ProgressRequest is the body of PUT /swaps/:id/progress. Progress is a
// pointer so that 0 is distinguishable from a missing field.
type ProgressRequest struct {
	Progress *int `json:"progress" binding:"required"`
}

// UpdateProgress handles PUT /swaps/:id/progress
func (h *RequestHandler) UpdateProgress(c *gin.Context) {
	profileID, ok := currentProfileID(c)
	if !ok {
		return
	}
	var req ProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	view, err := h.requestUseCase.UpdateProgress(c.Request.Context(), profileID, c.Param("id"), *req.Progress)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Complete handles POST /swaps/:id/complete
func (h *RequestHandler) Complete(c *gin.Context) {
	profileID, ok := currentProfileID(c)
	if !ok {
		return
	}
	view, err := h.requestUseCase.Complete(c.Request.Context(), profileID, c.Param("id"))
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
