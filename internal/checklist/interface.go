package checklist

import (
	"context"

	"adhd-planner/internal/model"
)

// UseCase generates checklists for appointments and tracks their completion state.
type UseCase interface {
	// Generate runs one prompt/parse round trip and installs the entry on success.
	// On any failure nothing is written.
	Generate(ctx context.Context, input GenerateInput) (model.ChecklistEntry, error)

	// Start looks up the appointment and runs Generate in the background.
	Start(ctx context.Context, appointmentID string) error

	// Generating returns the appointment ID currently in flight, "" when idle.
	Generating(ctx context.Context) string

	Toggle(ctx context.Context, input ToggleInput) (ToggleOutput, error)
	Get(ctx context.Context, appointmentID string) (GetOutput, error)

	// Wait blocks until background generations have finished.
	Wait()
}
