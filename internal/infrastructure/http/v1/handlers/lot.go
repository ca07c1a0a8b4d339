package handlers

import (
	"github.com/gin-gonic/gin"

	"almoxarifado/internal/domain/catalogs/lot"
	"almoxarifado/internal/infrastructure/http/v1/dto"
)

// LotHandler handles HTTP requests for the Lot catalog.
type LotHandler struct {
	*BaseHandler
	service *lot.Service
}

// NewLotHandler creates a new lot handler.
func NewLotHandler(base *BaseHandler, service *lot.Service) *LotHandler {
	return &LotHandler{
		BaseHandler: base,
		service:     service,
	}
}

// ListByEntity handles GET /entities/:id/lots
func (h *LotHandler) ListByEntity(c *gin.Context) {
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
