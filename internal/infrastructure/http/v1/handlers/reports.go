package handlers

import (
	"github.com/gin-gonic/gin"

	"almoxarifado/internal/domain/reports"
	"almoxarifado/internal/infrastructure/http/v1/dto"
)

// ReportsHandler handles HTTP requests for reports.
type ReportsHandler struct {
	*BaseHandler
	service *reports.Service
}

// NewReportsHandler creates a new reports handler.
func NewReportsHandler(base *BaseHandler, service *reports.Service) *ReportsHandler {
	return &ReportsHandler{
		BaseHandler: base,
		service:     service,
	}
}

// GetStockReconciliation handles GET /reports/stock-reconciliation
func (h *ReportsHandler) GetStockReconciliation(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.StockReconciliationRequest
	if !h.BindQuery(c, &req) {
		return
	}

	records, err := h.service.StockReconciliation(ctx, req.ToFilter())
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromReconciliationRecords(records))
}
