package usecase

import (
	"sync"
	"time"

	"adhd-planner/internal/appointment"
	"adhd-planner/internal/appointment/repository"
	"adhd-planner/internal/model"
	pkgLog "adhd-planner/pkg/log"
)

type implUseCase struct {
	l          pkgLog.Logger
	repo       repository.Repository
	maxResults int
	now        func() time.Time

	mu           sync.RWMutex
	appointments []model.Appointment
	fetchedAt    time.Time
	loaded       bool
}

// New creates a new appointment UseCase instance.
func New(l pkgLog.Logger, repo repository.Repository, maxResults int) appointment.UseCase {
	return &implUseCase{
		l:          l,
		repo:       repo,
		maxResults: maxResults,
		now:        time.Now,
	}
}
