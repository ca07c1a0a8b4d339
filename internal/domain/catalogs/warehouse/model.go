// Package warehouse provides the Warehouse catalog. Each warehouse belongs
// to exactly one entity and is the unit stock balances are kept against.
package warehouse

// Warehouse represents a physical or logical stock location.
type Warehouse struct {
	ID          int64   `db:"id" json:"id"`
	Description string  `db:"descricao" json:"description"`
	Address     *string `db:"endereco" json:"address,omitempty"`
	EntityID    int64   `db:"fk_entidade" json:"entityId"`
}
