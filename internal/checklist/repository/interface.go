package repository

import (
	"context"

	"adhd-planner/internal/model"
)

// StateRepository holds per-appointment checklists and the in-flight generation marker.
type StateRepository interface {
	// SetGenerating records the appointment being generated. "" means none.
	SetGenerating(ctx context.Context, appointmentID string)

	// FinishGenerating clears the marker only if it still names appointmentID.
	FinishGenerating(ctx context.Context, appointmentID string)

	Generating(ctx context.Context) string

	// Install replaces the entry for appointmentID wholesale.
	Install(ctx context.Context, appointmentID string, entry model.ChecklistEntry)

	// Toggle flips one item. It reports false and changes nothing when the
	// appointment has no entry or the index is out of range.
	Toggle(ctx context.Context, appointmentID string, index int) (model.ChecklistEntry, bool)

	Get(ctx context.Context, appointmentID string) (model.ChecklistEntry, bool)
}
