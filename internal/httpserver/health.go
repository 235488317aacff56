package httpserver

import (
	"adhd-planner/pkg/response"

	"github.com/gin-gonic/gin"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "Appointments planner is up"
	HealthVersion = "1.0.0"
	ServiceName   = "adhd-planner"
)

func (srv HTTPServer) statusBody(status string) gin.H {
	return gin.H{
		"status":  status,
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	}
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, srv.statusBody("healthy"))
}

// readyCheck reports whether the first appointment fetch has succeeded.
// The page still renders before that, showing an empty list.
// @Summary Readiness Check
// @Description Reports readiness and whether appointments have been loaded
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	body := srv.statusBody("ready")
	if srv.appointments != nil {
		out := srv.appointments.List(c.Request.Context())
		body["appointments_loaded"] = out.Loaded
		body["appointments"] = len(out.Appointments)
	}
	response.OK(c, body)
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, srv.statusBody("alive"))
}
