package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nekogravitycat/court-booking-planner/internal/auth"
	courtHttp "github.com/nekogravitycat/court-booking-planner/internal/court/http"
	"github.com/nekogravitycat/court-booking-planner/internal/pkg/request"
	"github.com/nekogravitycat/court-booking-planner/internal/pkg/response"
	"github.com/nekogravitycat/court-booking-planner/internal/planner"
)

type Handler struct {
	service planner.Service
	logger  *zap.Logger
}

func NewHandler(service planner.Service, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// ------------------------
//   Court planning
// ------------------------

func (h *Handler) Window(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	ct, w, err := h.service.Window(auth.RequestContext(c), req.ID)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, CourtWindowResponse{
		Court:  *courtHttp.NewCourtTag(ct),
		Window: NewWindowResponse(w),
	})
}

func (h *Handler) TimeSlots(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	slots, err := h.service.TimeSlots(auth.RequestContext(c), req.ID)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": newTimeSlotResponses(slots)})
}

func (h *Handler) Availability(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}
	var req AvailabilityRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	a, err := h.service.Availability(auth.RequestContext(c), uri.ID, req.Date)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, NewAvailabilityResponse(a))
}

func (h *Handler) Book(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	res, err := h.service.Book(auth.RequestContext(c), planner.BookRequest{
		CourtID:    req.CourtID,
		Date:       req.Date,
		TimeSlotID: req.TimeSlotID,
	})
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, NewReservationResponse(res))
}

// ------------------------
//   Sessions
// ------------------------

func (h *Handler) CreateSession(c *gin.Context) {
	var req CreateSessionRequest
	// An empty body starts a session without a community.
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
			return
		}
	}

	st, err := h.service.CreateSession(auth.RequestContext(c), req.CommunityID)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, NewSessionResponse(st))
}

func (h *Handler) GetSession(c *gin.Context) {
	var req request.BySessionRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	v, err := h.service.View(auth.RequestContext(c), req.ID)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, NewViewResponse(v))
}

func (h *Handler) Select(c *gin.Context) {
	var uri request.BySessionRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}
	var req SelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	st, err := h.service.Select(auth.RequestContext(c), uri.ID, planner.SelectionChange{
		CommunityID: req.CommunityID,
		CourtID:     req.CourtID,
		Date:        req.Date,
	})
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, NewSessionResponse(st))
}

func (h *Handler) Submit(c *gin.Context) {
	var uri request.BySessionRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	res, err := h.service.Submit(auth.RequestContext(c), uri.ID, req.TimeSlotID)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, NewReservationResponse(res))
}

func (h *Handler) DeleteSession(c *gin.Context) {
	var req request.BySessionRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	if err := h.service.DeleteSession(auth.RequestContext(c), req.ID); err != nil {
		response.Error(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}
