package usecase

import (
	"time"

	"adhd-planner/internal/appointment"
	"adhd-planner/internal/checklist"
	"adhd-planner/internal/planner"
	"adhd-planner/pkg/datemath"
	pkgLog "adhd-planner/pkg/log"
)

type implUseCase struct {
	l            pkgLog.Logger
	appointments appointment.UseCase
	checklists   checklist.UseCase
	dateMath     *datemath.Parser
	now          func() time.Time
}

// New creates a new planner UseCase instance.
func New(
	l pkgLog.Logger,
	appointments appointment.UseCase,
	checklists checklist.UseCase,
	dateMath *datemath.Parser,
) planner.UseCase {
	return &implUseCase{
		l:            l,
		appointments: appointments,
		checklists:   checklists,
		dateMath:     dateMath,
		now:          time.Now,
	}
}
