package http

import (
	"github.com/gin-gonic/gin"

	"adhd-planner/internal/middleware"
)

// RegisterPageRoutes maps the HTML view at the site root.
func RegisterPageRoutes(r gin.IRoutes, h Handler, mw middleware.Middleware) {
	r.GET("/", h.Page)
	r.POST("/generate", mw.RateLimit(), h.GenerateForm)
	r.POST("/toggle", h.ToggleForm)
}

// RegisterRoutes maps /api/v1 planner and checklist routes.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.GET("/appointments", h.ListAppointments)

	checklists := rg.Group("/checklists")
	{
		checklists.GET("", h.GetChecklist)
		checklists.POST("/generate", mw.RateLimit(), h.GenerateChecklist)
		checklists.POST("/toggle", h.ToggleChecklist)
	}
}
