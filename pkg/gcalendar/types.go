package gcalendar

import "time"

const (
	// DefaultCalendarID is the authenticated user's main calendar.
	DefaultCalendarID = "primary"

	// DefaultMaxResults matches the "next 10 events" view.
	DefaultMaxResults = 10

	// DefaultTokenPath is where scripts/gcal-auth stores the OAuth token.
	DefaultTokenPath = "token.json"
)

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID      string
	Summary string
	// Start is the raw start value: dateTime for timed events, date for all-day events.
	Start     string
	AllDay    bool
	StartTime time.Time
	Location  string
	HtmlLink  string
}

// ListEventsRequest is the input for listing upcoming events.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	MaxResults int64
}
