package usecase

import (
	"context"

	"adhd-planner/internal/appointment"
	"adhd-planner/internal/model"
)

func (uc *implUseCase) List(ctx context.Context) appointment.ListOutput {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	items := make([]model.Appointment, len(uc.appointments))
	copy(items, uc.appointments)
	return appointment.ListOutput{
		Appointments: items,
		FetchedAt:    uc.fetchedAt,
		Loaded:       uc.loaded,
	}
}

func (uc *implUseCase) Get(ctx context.Context, id string) (model.Appointment, bool) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	for i := len(uc.appointments) - 1; i >= 0; i-- {
		if uc.appointments[i].ID == id {
			return uc.appointments[i], true
		}
	}
	return model.Appointment{}, false
}
