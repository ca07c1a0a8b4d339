package lot

import (
	"context"
)

// Repository defines read access to the Lot catalog.
type Repository interface {
	// ListByEntity returns all lots owned by an entity, ordered by number.
	ListByEntity(ctx context.Context, entityID int64) ([]Lot, error)
}
