package usecase

import (
	"sync"
	"time"

	"adhd-planner/internal/appointment"
	"adhd-planner/internal/checklist"
	"adhd-planner/internal/checklist/repository"
	"adhd-planner/pkg/datemath"
	pkgLog "adhd-planner/pkg/log"
)

type implUseCase struct {
	l            pkgLog.Logger
	llm          Generator
	appointments appointment.UseCase
	repo         repository.StateRepository
	dateMath     *datemath.Parser
	timeout      time.Duration
	now          func() time.Time

	wg sync.WaitGroup
}

// New creates a new checklist UseCase instance.
// timeout bounds each background generation; zero means no extra bound.
func New(
	l pkgLog.Logger,
	llm Generator,
	appointments appointment.UseCase,
	repo repository.StateRepository,
	dateMath *datemath.Parser,
	timeout time.Duration,
) checklist.UseCase {
	return &implUseCase{
		l:            l,
		llm:          llm,
		appointments: appointments,
		repo:         repo,
		dateMath:     dateMath,
		timeout:      timeout,
		now:          time.Now,
	}
}
