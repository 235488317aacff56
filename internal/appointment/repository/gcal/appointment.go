package gcal

import (
	"context"
	"fmt"
	"time"

	"adhd-planner/internal/appointment/repository"
	"adhd-planner/internal/model"
	"adhd-planner/pkg/gcalendar"
)

// ListAppointments returns the next events from now, ordered by start time.
func (r *implRepository) ListAppointments(ctx context.Context, opt repository.ListOptions) ([]model.Appointment, error) {
	from := opt.From
	if from.IsZero() {
		from = time.Now()
	}

	events, err := r.client.ListUpcomingEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: r.calendarID,
		TimeMin:    from,
		MaxResults: int64(opt.MaxResults),
	})
	if err != nil {
		return nil, fmt.Errorf("gcal: %w", err)
	}

	appointments := make([]model.Appointment, 0, len(events))
	for _, ev := range events {
		appointments = append(appointments, model.NewAppointment(ev.Summary, ev.Start))
	}
	return appointments, nil
}
