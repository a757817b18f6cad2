package store

import "context"

// Repository is the generic base contract satisfied by every entity store.
// Implementations exist for two backends (PostgreSQL and MongoDB); callers
// never branch on which one is active.
//
// Pagination is offset/limit based. A limit of zero yields an empty page,
// never "unlimited". Ordering across pages is stable but otherwise
// backend-defined.
type Repository[T any] interface {
	// Create persists a new entity. If the entity's ID is unset, the
	// implementation generates one. Returns the entity as persisted.
	// Returns an error wrapping ErrDuplicate or ErrInvalidEntity when a
	// uniqueness or referential constraint is violated.
	Create(ctx context.Context, entity *T) (*T, error)

	// GetByID retrieves an entity by its ID.
	// Returns an error wrapping ErrNotFound if the entity does not exist.
	GetByID(ctx context.Context, id string) (*T, error)

	// GetAll retrieves entities with offset/limit pagination in a stable order.
	// A limit of zero (or less) yields an empty slice.
	GetAll(ctx context.Context, skip, limit int) ([]*T, error)

	// Update replaces the mutable fields of the entity with the given ID and
	// refreshes its updated-at timestamp. Returns the updated entity, or an
	// error wrapping ErrNotFound if the ID does not exist, or ErrDuplicate
	// when the update would violate a unique constraint.
	Update(ctx context.Context, id string, entity *T) (*T, error)

	// Delete removes the entity with the given ID. Returns true if a row was
	// removed, false if the ID did not exist. Idempotent: calling twice
	// yields true then false.
	Delete(ctx context.Context, id string) (bool, error)

	// Exists reports whether an entity with the given ID exists.
	Exists(ctx context.Context, id string) (bool, error)
}
