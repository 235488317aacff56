package model

// Appointment is one upcoming calendar entry.
type Appointment struct {
	ID      string // Equal to Start; used as the checklist key
	Summary string // Free text title, may be empty
	Start   string // Start as reported by the source (RFC3339 or YYYY-MM-DD)
}

// NewAppointment builds an appointment keyed by its start value.
func NewAppointment(summary, start string) Appointment {
	return Appointment{ID: start, Summary: summary, Start: start}
}
