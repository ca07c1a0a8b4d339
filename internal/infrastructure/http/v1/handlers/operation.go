package handlers

import (
	"github.com/gin-gonic/gin"

	"almoxarifado/internal/domain/catalogs/operation"
	"almoxarifado/internal/infrastructure/http/v1/dto"
)

// OperationHandler handles HTTP requests for the Operation catalog.
type OperationHandler struct {
	*BaseHandler
	service *operation.Service
}

// NewOperationHandler creates a new operation handler.
func NewOperationHandler(base *BaseHandler, service *operation.Service) *OperationHandler {
	return &OperationHandler{
		BaseHandler: base,
		service:     service,
	}
}

// ListByEntity handles GET /entities/:id/operations
func (h *OperationHandler) ListByEntity(c *gin.Context) {
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
