package gcal

import (
	"context"

	"adhd-planner/internal/appointment/repository"
	"adhd-planner/pkg/gcalendar"
)

// EventLister is the part of the Google Calendar client this repository needs.
type EventLister interface {
	ListUpcomingEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
}

type implRepository struct {
	client     EventLister
	calendarID string
}

// New creates a repository backed by Google Calendar.
func New(client EventLister, calendarID string) repository.Repository {
	return &implRepository{
		client:     client,
		calendarID: calendarID,
	}
}
