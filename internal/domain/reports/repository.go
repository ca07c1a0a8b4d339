package reports

import (
	"context"

	"almoxarifado/internal/core/types"
	"almoxarifado/internal/domain/catalogs/operation"
)

// Repository defines the storage access the reconciliation report needs.
// Implementations must not substitute empty results for failed queries.
type Repository interface {
	// EntityExists reports whether the entity exists at all.
	EntityExists(ctx context.Context, entityID int64) (bool, error)

	// WarehouseIDsForEntity returns the identifiers of all warehouses owned
	// by the entity.
	WarehouseIDsForEntity(ctx context.Context, entityID int64) ([]int64, error)

	// FindMovementIDs returns the de-duplicated identifiers of movements
	// whose origin or destination lies in ownedWarehouseIDs and that satisfy
	// the optional dimensions of the filter. No ordering is guaranteed.
	FindMovementIDs(ctx context.Context, ownedWarehouseIDs []int64, f Filter) ([]int64, error)

	// ExpandLineItems returns one row per line item of the given movements,
	// joined to product, operation direction and (optionally) lot.
	ExpandLineItems(ctx context.Context, movementIDs []int64) ([]LineItemRow, error)

	// SumQuantity aggregates line item quantities over ALL history for a
	// (product, lot) pair whose parent movement affects warehouseID in the
	// given direction: destination matches for inbound, origin for outbound.
	// No matching rows yields zero. A nil lotID matches only NULL-lot items.
	SumQuantity(ctx context.Context, productID int64, lotID *int64, warehouseID int64, direction operation.Direction) (types.Quantity, error)

	// SnapshotBalance returns the stored balance for a (product, lot,
	// warehouse) key. The second result is false when no snapshot row exists.
	SnapshotBalance(ctx context.Context, productID int64, lotID *int64, warehouseID int64) (types.Quantity, bool, error)
}
