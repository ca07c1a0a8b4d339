package handlers

import (
	"github.com/gin-gonic/gin"

	"almoxarifado/internal/domain/catalogs/entity"
	"almoxarifado/internal/infrastructure/http/v1/dto"
)

// EntityHandler handles HTTP requests for the Entity catalog.
type EntityHandler struct {
	*BaseHandler
	service *entity.Service
}

// NewEntityHandler creates a new entity handler.
func NewEntityHandler(base *BaseHandler, service *entity.Service) *EntityHandler {
	return &EntityHandler{
		BaseHandler: base,
		service:     service,
	}
}

// List handles GET /entities
func (h *EntityHandler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.NewListResponse(items, len(items)))
}

// GetByID handles GET /entities/:id
func (h *EntityHandler) GetByID(c *gin.Context) {
	entityID, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	item, err := h.service.GetByID(c.Request.Context(), entityID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, item)
}
