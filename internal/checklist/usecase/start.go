package usecase

import (
	"context"

	"adhd-planner/internal/checklist"
)

// Start marks the appointment in flight and generates its checklist on a
// background goroutine. The marker is cleared after the entry is installed.
func (uc *implUseCase) Start(ctx context.Context, appointmentID string) error {
	if appointmentID == "" {
		return checklist.ErrEmptyAppointmentID
	}

	appt, ok := uc.appointments.Get(ctx, appointmentID)
	if !ok {
		return checklist.ErrAppointmentNotFound
	}

	input := checklist.GenerateInput{
		AppointmentID: appt.ID,
		Summary:       appt.Summary,
		CurrentDate:   uc.dateMath.FormatDate(uc.now()),
	}

	uc.repo.SetGenerating(ctx, appt.ID)

	// The request context ends with the response; keep its values only.
	bgCtx := context.WithoutCancel(ctx)

	uc.wg.Add(1)
	go func() {
		defer uc.wg.Done()
		defer uc.repo.FinishGenerating(bgCtx, input.AppointmentID)
		defer func() {
			if r := recover(); r != nil {
				uc.l.Errorf(bgCtx, "checklist.usecase.Start: panic generating %s: %v", input.AppointmentID, r)
			}
		}()

		runCtx := bgCtx
		if uc.timeout > 0 {
			var cancel context.CancelFunc
			runCtx, cancel = context.WithTimeout(bgCtx, uc.timeout)
			defer cancel()
		}

		if _, err := uc.Generate(runCtx, input); err != nil {
			uc.l.Errorf(bgCtx, "checklist.usecase.Start: appointment=%s: %v", input.AppointmentID, err)
		}
	}()

	return nil
}

// Generating returns the appointment ID currently in flight.
func (uc *implUseCase) Generating(ctx context.Context) string {
	return uc.repo.Generating(ctx)
}

// Wait blocks until all background generations return.
func (uc *implUseCase) Wait() {
	uc.wg.Wait()
}
