package source

import (
	"context"
	"fmt"
	"time"

	"adhd-planner/config"
	"adhd-planner/internal/appointment/repository"
	gcalRepo "adhd-planner/internal/appointment/repository/gcal"
	httpRepo "adhd-planner/internal/appointment/repository/http"
	icsRepo "adhd-planner/internal/appointment/repository/ics"
	"adhd-planner/pkg/datemath"
	"adhd-planner/pkg/gcalendar"
	"adhd-planner/pkg/log"
)

// Source names accepted by appointments.source.
const (
	SourceHTTP = "http"
	SourceGCal = "gcal"
	SourceICS  = "ics"
)

// New builds the repository selected by cfg.Source.
func New(
	ctx context.Context,
	l log.Logger,
	cfg config.AppointmentsConfig,
	gcal config.GoogleCalendarConfig,
	dateMath *datemath.Parser,
) (repository.Repository, error) {
	timeout, err := parseTimeout(cfg.Timeout)
	if err != nil {
		return nil, err
	}

	switch cfg.Source {
	case SourceHTTP, "":
		l.Infof(ctx, "Appointment source: http %s", cfg.URL)
		return httpRepo.New(cfg.URL, timeout), nil

	case SourceICS:
		l.Infof(ctx, "Appointment source: ics %s (lookahead %q)", cfg.URL, cfg.Lookahead)
		return icsRepo.New(l, cfg.URL, timeout, dateMath, cfg.Lookahead)

	case SourceGCal:
		client, err := gcalendar.NewClientFromCredentialsFile(ctx, gcal.CredentialsPath)
		if err != nil {
			return nil, fmt.Errorf("google calendar: %w", err)
		}
		l.Infof(ctx, "Appointment source: google calendar %s", gcal.CalendarID)
		return gcalRepo.New(client, gcal.CalendarID), nil

	default:
		return nil, fmt.Errorf("unknown appointment source: %s", cfg.Source)
	}
}

func parseTimeout(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid appointments.timeout %q: %w", s, err)
	}
	return d, nil
}
