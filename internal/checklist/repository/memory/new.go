package memory

import (
	"sync"

	"adhd-planner/internal/checklist/repository"
	"adhd-planner/internal/model"
)

type implRepository struct {
	mu         sync.RWMutex
	entries    map[string]model.ChecklistEntry
	generating string
}

// New creates an empty in-memory checklist state store.
func New() repository.StateRepository {
	return &implRepository{
		entries: make(map[string]model.ChecklistEntry),
	}
}
