package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps /api/v1/appointments/* routes.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.POST("/refresh", h.Refresh)
}

// RegisterEventsRoute maps the bare GET /api/events backend route.
func RegisterEventsRoute(r gin.IRoutes, h Handler) {
	r.GET("/api/events", h.Events)
}
