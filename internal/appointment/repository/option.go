package repository

import "time"

// ListOptions narrows what a source returns. Sources that cannot filter ignore it.
type ListOptions struct {
	From       time.Time // only appointments that have not ended before From
	MaxResults int       // cap on the number returned, 0 means source default
}
