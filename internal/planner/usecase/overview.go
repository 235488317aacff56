package usecase

import (
	"context"
	"errors"

	"adhd-planner/internal/checklist"
	"adhd-planner/internal/planner"
)

func (uc *implUseCase) Overview(ctx context.Context) planner.Overview {
	list := uc.appointments.List(ctx)
	generating := uc.checklists.Generating(ctx)

	out := planner.Overview{
		CurrentDate:  uc.dateMath.FormatDate(uc.now()),
		Loaded:       list.Loaded,
		FetchedAt:    list.FetchedAt,
		Generating:   generating,
		Appointments: make([]planner.AppointmentView, 0, len(list.Appointments)),
	}

	for _, a := range list.Appointments {
		view := planner.AppointmentView{
			Appointment: a,
			Generating:  generating != "" && a.ID == generating,
		}

		got, err := uc.checklists.Get(ctx, a.ID)
		switch {
		case err == nil:
			view.Checklist = &got
		case !errors.Is(err, checklist.ErrChecklistNotFound):
			uc.l.Warnf(ctx, "planner.usecase.Overview: checklist %s: %v", a.ID, err)
		}

		out.Appointments = append(out.Appointments, view)
	}

	return out
}
