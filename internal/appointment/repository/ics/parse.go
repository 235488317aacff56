package ics

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
)

func (r *implRepository) parseCalendar(ctx context.Context, body []byte) ([]parsedEvent, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, errors.New("empty ICS body")
	}

	cal, err := ical.ParseCalendar(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse ICS: %w", err)
	}

	loc := r.dateMath.Location()
	events := make([]parsedEvent, 0, len(cal.Events()))
	for _, ve := range cal.Events() {
		ev, perr := parseVEvent(ve, loc)
		if perr != nil {
			r.l.Warnf(ctx, "appointment.repository.ics.parseCalendar: skip event: %v", perr)
			continue
		}
		events = append(events, ev)
	}
	return events, nil
}

func parseVEvent(ve *ical.VEvent, loc *time.Location) (parsedEvent, error) {
	var out parsedEvent

	if p := ve.GetProperty(ical.ComponentPropertyUniqueId); p != nil {
		out.UID = p.Value
	}
	if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil {
		out.Summary = p.Value
	}

	dtStart := ve.GetProperty(ical.ComponentPropertyDtStart)
	if dtStart == nil || dtStart.Value == "" {
		return out, fmt.Errorf("event %q has no DTSTART", out.UID)
	}
	out.AllDay = isDateOnly(dtStart)

	if out.AllDay {
		start, err := time.ParseInLocation("20060102", strings.TrimSpace(dtStart.Value), loc)
		if err != nil {
			return out, fmt.Errorf("event %q: bad all-day DTSTART: %w", out.UID, err)
		}
		out.Start = start
		out.End = start.AddDate(0, 0, 1)
	} else {
		start, err := ve.GetStartAt()
		if err != nil {
			return out, fmt.Errorf("event %q: bad DTSTART: %w", out.UID, err)
		}
		out.Start = start
		out.End = start
		if end, err := ve.GetEndAt(); err == nil && end.After(start) {
			out.End = end
		}
	}

	if p := ve.GetProperty(ical.ComponentPropertyRrule); p != nil {
		out.RawRRule = p.Value
	}

	for _, p := range ve.GetProperties(ical.ComponentPropertyExdate) {
		for _, part := range strings.Split(p.Value, ",") {
			if t, err := parseICSTime(part, loc); err == nil {
				out.ExDates = append(out.ExDates, t)
			}
		}
	}

	if p := ve.GetProperty("RECURRENCE-ID"); p != nil {
		if t, err := parseICSTime(p.Value, loc); err == nil {
			out.RecurrenceID = &t
		}
	}

	return out, nil
}

func isDateOnly(p *ical.IANAProperty) bool {
	if vs, ok := p.ICalParameters["VALUE"]; ok && len(vs) > 0 && strings.EqualFold(vs[0], "DATE") {
		return true
	}
	return !strings.Contains(p.Value, "T")
}

// parseICSTime handles the basic DATE, local DATE-TIME and UTC DATE-TIME forms.
func parseICSTime(v string, loc *time.Location) (time.Time, error) {
	v = strings.TrimSpace(v)
	switch {
	case v == "":
		return time.Time{}, errors.New("empty time value")
	case strings.HasSuffix(v, "Z"):
		return time.Parse("20060102T150405Z", v)
	case strings.Contains(v, "T"):
		return time.ParseInLocation("20060102T150405", v, loc)
	default:
		return time.ParseInLocation("20060102", v, loc)
	}
}
