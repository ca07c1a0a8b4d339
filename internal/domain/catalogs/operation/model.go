// Package operation provides the Operation catalog (movement types).
// An operation's direction decides which side of a movement - origin or
// destination - carries the balance effect.
package operation

// Direction is the stock effect of an operation.
type Direction int16

const (
	// DirectionInbound increases the destination warehouse balance.
	DirectionInbound Direction = 0
	// DirectionOutbound decreases the origin warehouse balance.
	DirectionOutbound Direction = 1
)

// IsValid reports whether d is a known direction.
func (d Direction) IsValid() bool {
	return d == DirectionInbound || d == DirectionOutbound
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case DirectionInbound:
		return "inbound"
	case DirectionOutbound:
		return "outbound"
	}
	return "unknown"
}

// Operation represents a named movement type owned by an entity.
type Operation struct {
	ID          int64     `db:"id" json:"id"`
	Code        string    `db:"codigo" json:"code"`
	Description *string   `db:"descricao" json:"description,omitempty"`
	Direction   Direction `db:"tipo" json:"direction"`
	EntityID    int64     `db:"fk_entidade" json:"entityId"`
}
