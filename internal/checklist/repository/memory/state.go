package memory

import (
	"context"

	"adhd-planner/internal/model"
)

func (r *implRepository) SetGenerating(ctx context.Context, appointmentID string) {
	r.mu.Lock()
	r.generating = appointmentID
	r.mu.Unlock()
}

func (r *implRepository) FinishGenerating(ctx context.Context, appointmentID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.generating == appointmentID {
		r.generating = ""
	}
}

func (r *implRepository) Generating(ctx context.Context) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.generating
}

func (r *implRepository) Install(ctx context.Context, appointmentID string, entry model.ChecklistEntry) {
	r.mu.Lock()
	r.entries[appointmentID] = entry.Clone()
	r.mu.Unlock()
}

func (r *implRepository) Toggle(ctx context.Context, appointmentID string, index int) (model.ChecklistEntry, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[appointmentID]
	if !ok {
		return model.ChecklistEntry{}, false
	}
	if index < 0 || index >= len(entry.Items) {
		return entry.Clone(), false
	}

	entry.Items[index].Completed = !entry.Items[index].Completed
	return entry.Clone(), true
}

func (r *implRepository) Get(ctx context.Context, appointmentID string) (model.ChecklistEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[appointmentID]
	if !ok {
		return model.ChecklistEntry{}, false
	}
	return entry.Clone(), true
}
