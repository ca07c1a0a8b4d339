// Package reports provides the stock reconciliation report: for every line
// item matched by a filter it recomputes the historical balance of the
// item's (product, lot, warehouse) key and compares it against the stored
// snapshot, surfacing drift.
package reports

import (
	"almoxarifado/internal/core/types"
	"almoxarifado/internal/domain/catalogs/operation"
)

// Filter selects which movements get reconciliation rows emitted.
// EntityID is mandatory; every other dimension is optional and AND-combined.
// The filter never narrows the balance computation itself - balances are
// always taken over full history.
type Filter struct {
	EntityID    int64
	WarehouseID *int64
	ProductID   *int64
	LotID       *int64
	OperationID *int64
}

// LineItemRow is one line item expanded with the references the
// reconciliation engine needs: product identity, lot number, the parent
// movement's warehouses and its operation direction.
type LineItemRow struct {
	LineItemID             int64               `db:"line_item_id"`
	MovementID             int64               `db:"movement_id"`
	ProductID              int64               `db:"product_id"`
	LotID                  *int64              `db:"lot_id"`
	Quantity               types.Quantity      `db:"quantity"`
	UnitValue              *types.Quantity     `db:"unit_value"`
	ProductCode            string              `db:"product_code"`
	ProductDescription     *string             `db:"product_description"`
	LotNumber              *string             `db:"lot_number"`
	Direction              operation.Direction `db:"direction"`
	OriginWarehouseID      *int64              `db:"origin_warehouse_id"`
	DestinationWarehouseID *int64              `db:"destination_warehouse_id"`
}

// AffectedWarehouseID returns the warehouse whose balance this row impacts:
// destination for inbound operations, origin for outbound. Nil means the
// movement lacks the warehouse its own direction requires.
func (r LineItemRow) AffectedWarehouseID() *int64 {
	if r.Direction == operation.DirectionInbound {
		return r.DestinationWarehouseID
	}
	return r.OriginWarehouseID
}

// ReconciliationRecord is one report row: a line item together with the
// recomputed balance of its key, the stored snapshot, and the delta.
type ReconciliationRecord struct {
	MovementID         int64           `json:"movementId"`
	ProductCode        string          `json:"productCode"`
	ProductDescription *string         `json:"productDescription"`
	LotNumber          *string         `json:"lotNumber"`
	QuantityMoved      types.Quantity  `json:"quantityMoved"`
	CalculatedBalance  types.Quantity  `json:"calculatedBalance"`
	StoredBalance      types.Quantity  `json:"storedBalance"`
	Difference         types.Quantity  `json:"difference"`
}
