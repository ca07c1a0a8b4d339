package warehouse

import (
	"context"
)

// Repository defines read access to the Warehouse catalog.
type Repository interface {
	// ListByEntity returns all warehouses owned by an entity, ordered by description.
	ListByEntity(ctx context.Context, entityID int64) ([]Warehouse, error)
}
