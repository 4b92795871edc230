package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers community-related routes.
func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	group := g.Group("/communities")
	{
		group.GET("", h.List)    // List communities for the selector
		group.GET("/:id", h.Get) // Get community details
	}
}
