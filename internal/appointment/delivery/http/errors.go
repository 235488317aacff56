package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"adhd-planner/internal/appointment"
	"adhd-planner/pkg/response"
)

// mapError translates appointment errors into HTTP responses.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, appointment.ErrFetchFailed):
		response.BadGateway(c, appointment.ErrFetchFailed)
	default:
		response.InternalError(c, err)
	}
}
