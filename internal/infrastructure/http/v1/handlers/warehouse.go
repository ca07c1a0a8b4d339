package handlers

import (
	"github.com/gin-gonic/gin"

	"almoxarifado/internal/domain/catalogs/warehouse"
	"almoxarifado/internal/infrastructure/http/v1/dto"
)

// WarehouseHandler handles HTTP requests for the Warehouse catalog.
type WarehouseHandler struct {
	*BaseHandler
	service *warehouse.Service
}

// NewWarehouseHandler creates a new warehouse handler.
func NewWarehouseHandler(base *BaseHandler, service *warehouse.Service) *WarehouseHandler {
	return &WarehouseHandler{
		BaseHandler: base,
		service:     service,
	}
}

// ListByEntity handles GET /entities/:id/warehouses
func (h *WarehouseHandler) ListByEntity(c *gin.Context) {
	entityID, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	items, err := h.service.ListByEntity(c.Request.Context(), entityID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.NewListResponse(items, len(items)))
}
