package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"adhd-planner/pkg/response"
)

// Events godoc
// @Summary     List raw upcoming events
// @Description Returns the held appointments as a bare JSON array of {summary, start},
// @Description so this service can be the appointment source of another instance.
// @Tags        Appointments
// @Produce     json
// @Success     200 {array} eventResp
// @Router      /api/events [GET]
func (h *handler) Events(c *gin.Context) {
	output := h.uc.List(c.Request.Context())
	c.JSON(http.StatusOK, h.newEventsResp(output))
}

// Refresh godoc
// @Summary     Reload appointments
// @Description Fetches appointments from the configured source once. The held list is kept on failure.
// @Tags        Appointments
// @Produce     json
// @Success     200 {object} refreshResp
// @Failure     502 {object} response.Resp "Source unreachable or invalid"
// @Router      /api/v1/appointments/refresh [POST]
func (h *handler) Refresh(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Load(ctx); err != nil {
		h.l.Warnf(ctx, "appointment.delivery.http.Refresh: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newRefreshResp(h.uc.List(ctx)))
}
