package usecase

import (
	"context"
	"fmt"

	"adhd-planner/internal/appointment"
	"adhd-planner/internal/appointment/repository"
)

// Load fetches once from the source. No retry.
func (uc *implUseCase) Load(ctx context.Context) error {
	now := uc.now()
	appointments, err := uc.repo.ListAppointments(ctx, repository.ListOptions{
		From:       now,
		MaxResults: uc.maxResults,
	})
	if err != nil {
		uc.l.Errorf(ctx, "appointment.usecase.Load: %v", err)
		return fmt.Errorf("%w: %w", appointment.ErrFetchFailed, err)
	}

	uc.mu.Lock()
	uc.appointments = appointments
	uc.fetchedAt = now
	uc.loaded = true
	uc.mu.Unlock()

	uc.l.Infof(ctx, "appointment.usecase.Load: loaded %d appointment(s)", len(appointments))
	return nil
}
