// Package types provides common type aliases and utilities.
package types

import (
	"github.com/shopspring/decimal"
)

func init() {
	// Quantities go over the wire as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Quantity is a fixed-point stock quantity with 3 decimal places.
// Uses decimal.Decimal to avoid floating-point errors; matches the legacy
// NUMERIC(10,3) columns.
type Quantity = decimal.Decimal

// QuantityPlaces is the fractional precision of stock quantities.
const QuantityPlaces int32 = 3

// ZeroQuantity returns a zero quantity.
func ZeroQuantity() Quantity {
	return decimal.Zero
}

// NewQuantityFromString parses a quantity string.
// This is the preferred constructor; float conversions lose precision.
func NewQuantityFromString(s string) (Quantity, error) {
	return decimal.NewFromString(s)
}

// MustQuantity parses a quantity string, panics on error.
// Use only for constants and tests.
func MustQuantity(s string) Quantity {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// NewQuantityFromInt creates a whole-unit quantity.
func NewQuantityFromInt(n int64) Quantity {
	return decimal.NewFromInt(n)
}

// RoundQuantity truncates a value to quantity precision.
func RoundQuantity(d decimal.Decimal) Quantity {
	return d.Round(QuantityPlaces)
}
