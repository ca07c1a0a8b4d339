package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuantityArithmeticIsExact(t *testing.T) {
	// 0.1 + 0.2 is the classic float trap; decimals must not fall into it.
	sum := MustQuantity("0.1").Add(MustQuantity("0.2"))
	assert.True(t, sum.Equal(MustQuantity("0.3")), "got %s", sum)
}

func TestNewQuantityFromString(t *testing.T) {
	q, err := NewQuantityFromString("10.500")
	require.NoError(t, err)
	assert.True(t, q.Equal(MustQuantity("10.5")))

	_, err = NewQuantityFromString("ten")
	assert.Error(t, err)
}

func TestRoundQuantity(t *testing.T) {
	assert.Equal(t, "2.333", RoundQuantity(MustQuantity("2.33349")).StringFixed(QuantityPlaces))
	assert.Equal(t, "2.334", RoundQuantity(MustQuantity("2.3335")).StringFixed(QuantityPlaces))
}
