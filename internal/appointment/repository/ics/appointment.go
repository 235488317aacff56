package ics

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"adhd-planner/internal/appointment/repository"
	"adhd-planner/internal/model"
)

// ListAppointments fetches the feed, expands recurrences and returns the
// earliest appointments ordered by start.
func (r *implRepository) ListAppointments(ctx context.Context, opt repository.ListOptions) ([]model.Appointment, error) {
	from := opt.From
	if from.IsZero() {
		from = time.Now()
	}
	maxResults := opt.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	until, err := r.dateMath.Parse(r.lookahead, from)
	if err != nil {
		return nil, fmt.Errorf("ics: invalid lookahead: %w", err)
	}
	until = r.dateMath.EndOfDay(until)

	body, err := r.fetch(ctx)
	if err != nil {
		return nil, err
	}

	events, err := r.parseCalendar(ctx, body)
	if err != nil {
		return nil, fmt.Errorf("ics: %w", err)
	}

	occurrences := r.expand(ctx, events, from, until)
	if len(occurrences) > maxResults {
		occurrences = occurrences[:maxResults]
	}

	loc := r.dateMath.Location()
	appointments := make([]model.Appointment, 0, len(occurrences))
	for _, occ := range occurrences {
		start := occ.Start.In(loc).Format(time.RFC3339)
		if occ.AllDay {
			start = occ.Start.Format(allDayLayout)
		}
		appointments = append(appointments, model.NewAppointment(occ.Summary, start))
	}
	return appointments, nil
}

func (r *implRepository) fetch(ctx context.Context) ([]byte, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, r.feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("ics: failed to build request: %w", err)
	}
	httpReq.Header.Set("Accept", "text/calendar")

	resp, err := r.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("ics: failed to fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ics: feed returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("ics: failed to read feed: %w", err)
	}
	return body, nil
}
