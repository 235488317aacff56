package repository

import (
	"context"

	"adhd-planner/internal/model"
)

// Repository reads upcoming appointments from one source.
type Repository interface {
	ListAppointments(ctx context.Context, opt ListOptions) ([]model.Appointment, error)
}
