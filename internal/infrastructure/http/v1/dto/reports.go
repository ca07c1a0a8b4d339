package dto

import (
	"almoxarifado/internal/domain/reports"
)

// StockReconciliationRequest carries the report filter. Only entityId is
// mandatory; the other dimensions narrow the selection when present.
type StockReconciliationRequest struct {
	EntityID    int64  `form:"entityId"`
	WarehouseID *int64 `form:"warehouseId"`
	ProductID   *int64 `form:"productId"`
	LotID       *int64 `form:"lotId"`
	OperationID *int64 `form:"operationId"`
}

// ToFilter converts the request to a domain filter.
func (r StockReconciliationRequest) ToFilter() reports.Filter {
	return reports.Filter{
		EntityID:    r.EntityID,
		WarehouseID: r.WarehouseID,
		ProductID:   r.ProductID,
		LotID:       r.LotID,
		OperationID: r.OperationID,
	}
}

// StockReconciliationResponse is the report payload.
type StockReconciliationResponse struct {
	Items      []reports.ReconciliationRecord `json:"items"`
	TotalItems int                            `json:"totalItems"`
}

// FromReconciliationRecords creates the response from report records.
func FromReconciliationRecords(records []reports.ReconciliationRecord) StockReconciliationResponse {
	return StockReconciliationResponse{
		Items:      records,
		TotalItems: len(records),
	}
}
