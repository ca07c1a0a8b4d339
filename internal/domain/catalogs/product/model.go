// Package product provides the Product catalog.
package product

import (
	"almoxarifado/internal/core/types"
)

// Product represents a catalog entry identified by a unique code.
type Product struct {
	ID          int64           `db:"id" json:"id"`
	Code        string          `db:"codigo" json:"code"`
	Description *string         `db:"descricao" json:"description,omitempty"`
	Status      bool            `db:"status" json:"status"`
	MinStock    *types.Quantity `db:"estoque_minimo" json:"minStock,omitempty"`
	MaxStock    *types.Quantity `db:"estoque_maximo" json:"maxStock,omitempty"`
}
