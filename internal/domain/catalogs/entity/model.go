// Package entity provides the Entity catalog. Entities are the legal or
// organizational owners of warehouses, operations and lots; every report
// is scoped to one of them.
package entity

// Entity represents an organizational unit that owns warehouses.
type Entity struct {
	ID     int64  `db:"id" json:"id"`
	Name   string `db:"nome" json:"name"`
	Status bool   `db:"status" json:"status"`
}
