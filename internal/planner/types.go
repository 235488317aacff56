package planner

import (
	"time"

	"adhd-planner/internal/checklist"
	"adhd-planner/internal/model"
)

// Overview is one render's worth of state.
type Overview struct {
	CurrentDate  string // M/D/YYYY in the planner timezone
	Loaded       bool   // at least one successful fetch
	FetchedAt    time.Time
	Generating   string // appointment ID in flight, "" when idle
	Appointments []AppointmentView
}

// AppointmentView is one row of the page.
type AppointmentView struct {
	Appointment model.Appointment
	Generating  bool
	Checklist   *checklist.GetOutput // nil until a generation succeeded
}
