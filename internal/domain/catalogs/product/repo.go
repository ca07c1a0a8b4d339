package product

import (
	"context"
)

// Repository defines read access to the Product catalog.
type Repository interface {
	// ListMovedByEntity returns distinct products that appear on at least one
	// line item of a movement touching a warehouse owned by the entity,
	// ordered by description. An entity without warehouses yields an empty list.
	ListMovedByEntity(ctx context.Context, entityID int64) ([]Product, error)
}
