package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nekogravitycat/court-booking-planner/internal/auth"
	"github.com/nekogravitycat/court-booking-planner/internal/community"
	"github.com/nekogravitycat/court-booking-planner/internal/pkg/request"
	"github.com/nekogravitycat/court-booking-planner/internal/pkg/response"
)

type Handler struct {
	repo   community.Repository
	logger *zap.Logger
}

func NewHandler(repo community.Repository, logger *zap.Logger) *Handler {
	return &Handler{repo: repo, logger: logger}
}

// List feeds the community selector.
func (h *Handler) List(c *gin.Context) {
	var req ListCommunitiesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	communities, total, err := h.repo.List(auth.RequestContext(c), community.Filter{
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	items := make([]CommunityResponse, len(communities))
	for i, cm := range communities {
		items[i] = NewCommunityResponse(cm)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, req.Page, req.PageSize, total))
}

func (h *Handler) Get(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	cm, err := h.repo.GetByID(auth.RequestContext(c), req.ID)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, NewCommunityResponse(cm))
}
