package appointment

import "errors"

// Domain-specific errors for the appointment package.
var (
	ErrFetchFailed = errors.New("failed to fetch appointments")
)
