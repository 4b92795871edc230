package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nekogravitycat/court-booking-planner/internal/auth"
	"github.com/nekogravitycat/court-booking-planner/internal/court"
	"github.com/nekogravitycat/court-booking-planner/internal/pkg/request"
	"github.com/nekogravitycat/court-booking-planner/internal/pkg/response"
)

type Handler struct {
	service court.Service
	logger  *zap.Logger
}

func NewHandler(service court.Service, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

func (h *Handler) List(c *gin.Context) {
	var req ListCourtsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	filter := court.Filter{
		CommunityID: req.CommunityID,
		Page:        req.Page,
		PageSize:    req.PageSize,
	}

	courts, total, err := h.service.List(auth.RequestContext(c), filter)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	items := make([]CourtResponse, len(courts))
	for i, ct := range courts {
		items[i] = NewCourtResponse(ct)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, req.Page, req.PageSize, total))
}

func (h *Handler) Get(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	ct, err := h.service.GetByID(auth.RequestContext(c), req.ID)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, NewCourtResponse(ct))
}
