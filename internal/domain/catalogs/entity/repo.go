package entity

import (
	"context"
)

// Repository defines read access to the Entity catalog.
type Repository interface {
	// List returns all entities, ordered by name.
	List(ctx context.Context) ([]Entity, error)

	// GetByID returns one entity. A missing entity is NotFound.
	GetByID(ctx context.Context, id int64) (Entity, error)

	// Exists reports whether the entity exists.
	Exists(ctx context.Context, id int64) (bool, error)
}
