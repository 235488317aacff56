package appointment

import (
	"time"

	"adhd-planner/internal/model"
)

// ListOutput is a snapshot of the held appointments.
type ListOutput struct {
	Appointments []model.Appointment
	FetchedAt    time.Time // zero until the first successful Load
	Loaded       bool
}
