package http

import (
	"github.com/gin-gonic/gin"

	"task-intake/internal/middleware"
)

// RegisterRoutes maps the task API under rg. Only the intake route is rate
// limited since it is the one that calls the extraction service.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks")
	{
		tasks.GET("", h.List)
		tasks.GET("/stats", h.Stats)
		tasks.GET("/:id", h.Detail)
		tasks.POST("/parse", mw.RateLimit(), h.Parse)
		tasks.POST("", h.Create)
		tasks.PATCH("/:id", h.Update)
		tasks.DELETE("/:id", h.Delete)
	}
}
