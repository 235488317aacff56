package ics

import (
	"fmt"
	"net/http"
	"time"

	"adhd-planner/internal/appointment/repository"
	"adhd-planner/pkg/datemath"
	pkgLog "adhd-planner/pkg/log"
)

const (
	defaultTimeout    = 15 * time.Second
	defaultMaxResults = 10
	allDayLayout      = "2006-01-02"
)

type implRepository struct {
	l          pkgLog.Logger
	feedURL    string
	lookahead  string
	dateMath   *datemath.Parser
	httpClient *http.Client
}

// New creates a repository that reads an iCalendar feed and expands recurring
// events inside the window [from, lookahead]. lookahead is a relative expression
// understood by datemath, e.g. "in 30 days".
func New(l pkgLog.Logger, feedURL string, timeout time.Duration, dateMath *datemath.Parser, lookahead string) (repository.Repository, error) {
	if feedURL == "" {
		return nil, fmt.Errorf("ics: feed URL is required")
	}
	if err := validateLookahead(dateMath, lookahead, time.Now()); err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &implRepository{
		l:          l,
		feedURL:    feedURL,
		lookahead:  lookahead,
		dateMath:   dateMath,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// validateLookahead rejects expressions datemath would silently read as today
// and windows that end before the day they start.
func validateLookahead(dateMath *datemath.Parser, lookahead string, now time.Time) error {
	if !dateMath.Recognizes(lookahead) {
		return fmt.Errorf("ics: invalid lookahead %q: expected e.g. \"in 30 days\"", lookahead)
	}
	until, err := dateMath.Parse(lookahead, now)
	if err != nil {
		return fmt.Errorf("ics: invalid lookahead: %w", err)
	}
	today, _ := dateMath.Parse("today", now)
	if until.Before(today) {
		return fmt.Errorf("ics: lookahead %q ends before today", lookahead)
	}
	return nil
}
