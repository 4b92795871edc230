package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the planner routes. The /courts/:id subroutes share
// the parameter name used by the court module.
func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	courts := g.Group("/courts/:id")
	{
		courts.GET("/window", h.Window)             // Bookable dates
		courts.GET("/timeslots", h.TimeSlots)       // Slot definitions
		courts.GET("/availability", h.Availability) // Free and occupied slots for ?date=
	}

	g.POST("/reservations", h.Book)

	sessions := g.Group("/sessions")
	{
		sessions.POST("", h.CreateSession)
		sessions.GET("/:id", h.GetSession)
		sessions.PATCH("/:id/selection", h.Select)
		sessions.POST("/:id/reservations", h.Submit)
		sessions.DELETE("/:id", h.DeleteSession)
	}
}
