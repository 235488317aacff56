package ollama

import "errors"

// ErrMissingResponse is returned when the reply decodes but carries no "response" text.
var ErrMissingResponse = errors.New("ollama: response field missing or empty")
