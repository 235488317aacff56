package gcal

import (
	"context"
	"errors"
	"testing"
	"time"

	"adhd-planner/internal/appointment/repository"
	"adhd-planner/pkg/gcalendar"
)

type mockLister struct {
	events []gcalendar.Event
	err    error
	gotReq gcalendar.ListEventsRequest
}

func (m *mockLister) ListUpcomingEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
	m.gotReq = req
	return m.events, m.err
}

func TestListAppointments(t *testing.T) {
	lister := &mockLister{events: []gcalendar.Event{
		{ID: "1", Summary: "Dentist", Start: "2024-05-01T10:00:00-04:00"},
		{ID: "2", Summary: "Holiday", Start: "2024-05-02", AllDay: true},
	}}
	repo := New(lister, "primary")

	from := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	got, err := repo.ListAppointments(context.Background(), repository.ListOptions{From: from, MaxResults: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if lister.gotReq.CalendarID != "primary" || lister.gotReq.MaxResults != 10 || !lister.gotReq.TimeMin.Equal(from) {
		t.Errorf("unexpected request: %+v", lister.gotReq)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 appointments, got %d", len(got))
	}
	if got[0].ID != "2024-05-01T10:00:00-04:00" || got[0].Summary != "Dentist" {
		t.Errorf("unexpected timed appointment: %+v", got[0])
	}
	if got[1].ID != "2024-05-02" {
		t.Errorf("expected all-day date as ID, got %s", got[1].ID)
	}
}

func TestListAppointments_Error(t *testing.T) {
	repo := New(&mockLister{err: errors.New("quota exceeded")}, "primary")
	if _, err := repo.ListAppointments(context.Background(), repository.ListOptions{}); err == nil {
		t.Fatalf("expected error")
	}
}
