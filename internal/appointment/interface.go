package appointment

import (
	"context"

	"adhd-planner/internal/model"
)

// UseCase holds the current appointment list and refreshes it from the configured source.
type UseCase interface {
	// Load fetches appointments once. On success the held list is replaced (even by an
	// empty one); on failure the held list is kept and the wrapped ErrFetchFailed is returned.
	Load(ctx context.Context) error

	// List returns a copy of the held list.
	List(ctx context.Context) ListOutput

	// Get finds an appointment by ID. Duplicate IDs resolve to the last one in the list.
	Get(ctx context.Context, id string) (model.Appointment, bool)
}
