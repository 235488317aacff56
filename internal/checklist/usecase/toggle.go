package usecase

import (
	"context"

	"adhd-planner/internal/checklist"
)

// Toggle flips one item. Unknown appointments and out-of-range indexes are no-ops.
func (uc *implUseCase) Toggle(ctx context.Context, input checklist.ToggleInput) (checklist.ToggleOutput, error) {
	if input.AppointmentID == "" {
		return checklist.ToggleOutput{}, checklist.ErrEmptyAppointmentID
	}

	entry, toggled := uc.repo.Toggle(ctx, input.AppointmentID, input.Index)
	if !toggled {
		uc.l.Debugf(ctx, "checklist.usecase.Toggle: no-op appointment=%s index=%d", input.AppointmentID, input.Index)
	}

	return checklist.ToggleOutput{
		Entry:   entry,
		Stats:   checklist.GetStats(entry),
		Toggled: toggled,
	}, nil
}

// Get returns the installed checklist for an appointment.
func (uc *implUseCase) Get(ctx context.Context, appointmentID string) (checklist.GetOutput, error) {
	entry, ok := uc.repo.Get(ctx, appointmentID)
	if !ok {
		return checklist.GetOutput{}, checklist.ErrChecklistNotFound
	}

	return checklist.GetOutput{
		Entry:     entry,
		Stats:     checklist.GetStats(entry),
		Completed: checklist.IsFullyCompleted(entry),
	}, nil
}
