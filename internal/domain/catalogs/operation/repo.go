package operation

import (
	"context"
)

// Repository defines read access to the Operation catalog.
type Repository interface {
	// ListByEntity returns all operations owned by an entity, ordered by code.
	ListByEntity(ctx context.Context, entityID int64) ([]Operation, error)
}
