package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"adhd-planner/internal/appointment/repository"
	"adhd-planner/internal/model"
)

// ListAppointments returns the events in the order the endpoint sent them.
func (r *implRepository) ListAppointments(ctx context.Context, opt repository.ListOptions) ([]model.Appointment, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, r.eventsURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build events request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := r.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call events API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("events API error %d: %s", resp.StatusCode, string(raw))
	}

	var events []EventDTO
	if err := json.NewDecoder(resp.Body).Decode(&events); err != nil {
		return nil, fmt.Errorf("failed to decode events response: %w", err)
	}

	appointments := make([]model.Appointment, 0, len(events))
	for _, ev := range events {
		appointments = append(appointments, model.NewAppointment(ev.Summary, ev.Start))
	}
	return appointments, nil
}
