package ics

import (
	"context"
	"sort"
	"time"

	"github.com/teambition/rrule-go"
)

// maxOccurrencesPerEvent caps expansion of unbounded rules.
const maxOccurrencesPerEvent = 500

// expand turns parsed events into concrete occurrences that have not ended
// before from and start no later than until.
func (r *implRepository) expand(ctx context.Context, events []parsedEvent, from, until time.Time) []occurrence {
	overridden := make(map[string][]time.Time)
	for _, ev := range events {
		if ev.RecurrenceID != nil {
			overridden[ev.UID] = append(overridden[ev.UID], *ev.RecurrenceID)
		}
	}

	var out []occurrence
	for _, ev := range events {
		if ev.RawRRule == "" {
			if inWindow(ev.Start, ev.End, from, until) {
				out = append(out, occurrence{Summary: ev.Summary, Start: ev.Start, AllDay: ev.AllDay})
			}
			continue
		}

		starts, err := r.recurrences(ev, overridden[ev.UID], from, until)
		if err != nil {
			r.l.Warnf(ctx, "appointment.repository.ics.expand: bad RRULE for %q: %v", ev.UID, err)
			continue
		}
		dur := ev.End.Sub(ev.Start)
		for _, s := range starts {
			if inWindow(s, s.Add(dur), from, until) {
				out = append(out, occurrence{Summary: ev.Summary, Start: s, AllDay: ev.AllDay})
			}
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Start.Before(out[j].Start)
	})
	return out
}

func (r *implRepository) recurrences(ev parsedEvent, overrides []time.Time, from, until time.Time) ([]time.Time, error) {
	rule, err := rrule.StrToRRule(ev.RawRRule)
	if err != nil {
		return nil, err
	}
	rule.DTStart(ev.Start)

	var set rrule.Set
	set.RRule(rule)
	for _, ex := range ev.ExDates {
		set.ExDate(ex.In(ev.Start.Location()))
	}
	for _, ov := range overrides {
		set.ExDate(ov.In(ev.Start.Location()))
	}

	// Start early enough to catch an instance that is still running at from.
	dur := ev.End.Sub(ev.Start)
	starts := set.Between(from.Add(-dur).In(ev.Start.Location()), until.In(ev.Start.Location()), true)
	if len(starts) > maxOccurrencesPerEvent {
		starts = starts[:maxOccurrencesPerEvent]
	}
	return starts, nil
}

func inWindow(start, end, from, until time.Time) bool {
	if start.After(until) {
		return false
	}
	if end.Equal(start) {
		return !start.Before(from)
	}
	return end.After(from)
}
