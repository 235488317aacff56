package checklist

import "errors"

// Domain-specific errors for the checklist package.
var (
	ErrNoItems             = errors.New("response contains no checklist items")
	ErrMalformedResponse   = errors.New("generation response is malformed")
	ErrGenerationFailed    = errors.New("checklist generation failed")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrChecklistNotFound   = errors.New("no checklist generated for appointment")
	ErrEmptyAppointmentID  = errors.New("appointment id is empty")
)
