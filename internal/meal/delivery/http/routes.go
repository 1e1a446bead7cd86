package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.POST("/chat", h.Chat)

	history := rg.Group("/history")
	{
		history.GET("", h.History)
		history.GET("/:date", h.DaySummary)
	}
}
