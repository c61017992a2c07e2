package tasks

import "context"

// Store persists tasks. Every method except Create is scoped to owner; tasks owned by
// other users behave exactly like missing ones (ErrNotFound). Implementations:
// PostgresStore and memstore.Store.
type Store interface {
	// Count returns the number of tasks owned by owner.
	Count(ctx context.Context, owner string) (int, error)
	// List returns up to limit of owner's tasks starting at offset, in creation order.
	List(ctx context.Context, owner string, limit, offset int) ([]Task, error)
	Get(ctx context.Context, owner, id string) (*Task, error)
	// Create inserts t. An empty t.ID is replaced by a fresh UUID.
	Create(ctx context.Context, t *Task) error
	// Update applies c to the task and returns the new record. It returns ErrNotFound
	// when no row was affected.
	Update(ctx context.Context, owner, id string, c Changes) (*Task, error)
	// Delete removes the task and returns the record as it was before removal.
	Delete(ctx context.Context, owner, id string) (*Task, error)
}
