package http

import (
	"github.com/gin-gonic/gin"

	"adhd-planner/internal/appointment"
	"adhd-planner/pkg/log"
)

// Handler is the public interface for the appointment HTTP delivery layer.
type Handler interface {
	Events(c *gin.Context)
	Refresh(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc appointment.UseCase
}

// New creates a new HTTP handler for the appointment domain.
func New(l log.Logger, uc appointment.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
