package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers court-related routes.
// Planner routes nested under /courts/:id are registered by the planner module.
func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	group := g.Group("/courts")
	{
		group.GET("", h.List)    // List courts of the selected community
		group.GET("/:id", h.Get) // Get court details
	}
}
