package handler

import (
	"net/http"
	"strconv"

	"github.com/gdugdh24/skillswap-backend/internal/domain"
	"github.com/gdugdh24/skillswap-backend/internal/usecase/browse"
	"github.com/gdugdh24/skillswap-backend/internal/usecase/search"
	"github.com/gin-gonic/gin"
)

type BrowseHandler struct {
	browseUseCase *browse.BrowseUseCase
}

func NewBrowseHandler(browseUseCase *browse.BrowseUseCase) *BrowseHandler {
	return &BrowseHandler{
		browseUseCase: browseUseCase,
	}
}

// Query parameters that are not search criteria.
const (
	paramQuery  = "q"
	paramSort   = "sort"
	paramLimit  = "limit"
	paramOffset = "offset"
)

// ListProfiles handles GET /profiles
// @Summary Browse the profile directory
// @Tags profiles
// @Produce json
// @Param q query string false "Free text over name, location and skills"
// @Param skill query string false "Skill name"
// @Param availability query string false "weekends, evenings, flexible or business-hours"
// @Param min_rating query number false "Minimum rating"
// @Param sort query string false "relevance, rating, recent or distance"
// @Success 200 {object} browse.BrowseResponse
// @Failure 400 {object} ErrorResponse
// @Router /profiles [get]
func (h *BrowseHandler) ListProfiles(c *gin.Context) {
	req := browse.BrowseRequest{
		ViewerID: c.GetString(ProfileIDKey),
		Query:    c.Query(paramQuery),
	}

	fields := make(map[string]string)
	for key, values := range c.Request.URL.Query() {
		switch key {
		case paramQuery, paramSort, paramLimit, paramOffset:
			continue
		}
		if len(values) > 0 {
			fields[key] = values[0]
		}
	}
	criteria, err := search.ParseCriteria(fields)
	if err != nil {
		RespondError(c, err)
		return
	}
	req.Criteria = criteria

	if req.Order, err = search.ParseOrder(c.Query(paramSort)); err != nil {
		RespondError(c, err)
		return
	}
	if req.Limit, err = intParam(c, paramLimit); err != nil {
		RespondError(c, err)
		return
	}
	if req.Offset, err = intParam(c, paramOffset); err != nil {
		RespondError(c, err)
		return
	}

	resp, err := h.browseUseCase.Browse(c.Request.Context(), &req)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetProfile handles GET /profiles/:id
func (h *BrowseHandler) GetProfile(c *gin.Context) {
	p, err := h.browseUseCase.GetProfile(c.Request.Context(), c.Param("id"), c.GetString(ProfileIDKey))
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func intParam(c *gin.Context, name string) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.NewValidationError(name, "not an integer: %q", raw)
	}
	return v, nil
}
