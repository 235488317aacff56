package job

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"

	"adhd-planner/internal/appointment"
	"adhd-planner/pkg/log"
)

// Scheduler re-runs appointment loading on a cron schedule.
type Scheduler struct {
	l    log.Logger
	uc   appointment.UseCase
	cron *cron.Cron
}

// New registers the refresh job. spec is a standard five-field cron expression
// or a descriptor such as "@every 15m".
func New(l log.Logger, uc appointment.UseCase, spec string) (*Scheduler, error) {
	s := &Scheduler{
		l:    l,
		uc:   uc,
		cron: cron.New(),
	}

	if _, err := s.cron.AddFunc(spec, s.refresh); err != nil {
		return nil, fmt.Errorf("invalid refresh schedule %q: %w", spec, err)
	}
	return s, nil
}

// Start runs the scheduler in its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop prevents new runs and waits for a running refresh to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

// refresh keeps the held list on failure, same as a manual refresh.
func (s *Scheduler) refresh() {
	ctx := log.WithTraceID(context.Background(), "cron-refresh")
	if err := s.uc.Load(ctx); err != nil {
		s.l.Warnf(ctx, "appointment.delivery.job.refresh: %v", err)
	}
}
