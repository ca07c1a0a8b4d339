// Package lot provides the Lot catalog (manufacturing batches).
package lot

import (
	"time"
)

// Lot represents a manufacturing batch owned by an entity.
// Line items may reference a lot; lot-less stock is tracked under a NULL lot.
type Lot struct {
	ID               int64      `db:"id" json:"id"`
	ManufacturerName *string    `db:"nome_fabricante" json:"manufacturerName,omitempty"`
	Number           *string    `db:"numero" json:"number,omitempty"`
	ManufactureDate  *time.Time `db:"data_fabricacao" json:"manufactureDate,omitempty"`
	ExpiryDate       *time.Time `db:"data_validade" json:"expiryDate,omitempty"`
	EntityID         int64      `db:"fk_entidade" json:"entityId"`
}
