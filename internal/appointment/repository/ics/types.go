package ics

import "time"

// parsedEvent is one VEVENT before recurrence expansion.
type parsedEvent struct {
	UID      string
	Summary  string
	Start    time.Time
	End      time.Time
	AllDay   bool
	RawRRule string
	ExDates  []time.Time

	// RecurrenceID is set when this VEVENT overrides one instance of a recurring event.
	RecurrenceID *time.Time
}

// occurrence is a concrete instance inside the window.
type occurrence struct {
	Summary string
	Start   time.Time
	AllDay  bool
}
