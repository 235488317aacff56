package http

import (
	"net/http"
	"time"

	"adhd-planner/internal/appointment/repository"
)

const defaultTimeout = 10 * time.Second

type implRepository struct {
	eventsURL  string
	httpClient *http.Client
}

// New creates a repository that reads a JSON array of {summary, start} objects from eventsURL.
func New(eventsURL string, timeout time.Duration) repository.Repository {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &implRepository{
		eventsURL:  eventsURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}
