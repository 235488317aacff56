package checklist

import "adhd-planner/internal/model"

// GenerateInput is the input for generating a checklist for one appointment.
type GenerateInput struct {
	AppointmentID string
	Summary       string
	CurrentDate   string // already formatted, e.g. "5/1/2024"
}

// ToggleInput flips one item of an installed checklist.
type ToggleInput struct {
	AppointmentID string
	Index         int
}

// ToggleOutput is the checklist after a toggle. Toggled is false when nothing changed.
type ToggleOutput struct {
	Entry   model.ChecklistEntry
	Stats   Stats
	Toggled bool
}

// GetOutput is an installed checklist with its progress.
type GetOutput struct {
	Entry     model.ChecklistEntry
	Stats     Stats
	Completed bool // every item done
}

// Stats represents checklist progress
type Stats struct {
	Total     int     // Total items
	Completed int     // Checked items
	Pending   int     // Unchecked items
	Progress  float64 // Completion percentage (0-100)
}
