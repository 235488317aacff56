package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"adhd-planner/internal/checklist"
	"adhd-planner/pkg/response"
)

var (
	errWrongBody          = errors.New("wrong body")
	errWrongQuery         = errors.New("wrong query")
	errMissingAppointment = errors.New("appointment_id is required")
)

// mapError translates planner and checklist errors into HTTP responses.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errWrongBody),
		errors.Is(err, errWrongQuery),
		errors.Is(err, errMissingAppointment),
		errors.Is(err, checklist.ErrEmptyAppointmentID):
		response.Error(c, err, nil)
	case errors.Is(err, checklist.ErrAppointmentNotFound),
		errors.Is(err, checklist.ErrChecklistNotFound):
		response.NotFound(c, err)
	default:
		response.InternalError(c, err)
	}
}
