package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalog "github.com/tair/duka-storefront/internal/catalog/domain"
)

func headphones() catalog.Product {
	return catalog.Product{ID: "1", Name: "Headphones", Price: 100}
}

func speaker() catalog.Product {
	return catalog.Product{ID: "2", Name: "Speaker", Price: 50}
}

func TestCart_AddMergesQuantities(t *testing.T) {
	cart := NewCart()
	cart.Add(headphones(), 1)
	cart.Add(headphones(), 2)

	require.Equal(t, 1, cart.Len())
	assert.Equal(t, 3, cart.Items()[0].Quantity)
	assert.Equal(t, 3, cart.TotalItems())
}

func TestCart_AddClampsQuantityToOne(t *testing.T) {
	cart := NewCart()
	cart.Add(headphones(), 0)

	require.Equal(t, 1, cart.Len())
	assert.Equal(t, 1, cart.Items()[0].Quantity)
}

func TestCart_KeepsInsertionOrder(t *testing.T) {
	cart := NewCart()
	cart.Add(headphones(), 1)
	cart.Add(speaker(), 1)
	cart.Add(headphones(), 1)

	items := cart.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "1", items[0].Product.ID)
	assert.Equal(t, "2", items[1].Product.ID)
}

func TestCart_SetQuantity(t *testing.T) {
	cart := NewCart()
	cart.Add(headphones(), 1)

	cart.SetQuantity("1", 5)
	assert.Equal(t, 5, cart.Items()[0].Quantity)

	// Zero removes the line
	cart.SetQuantity("1", 0)
	assert.Equal(t, 0, cart.Len())

	// Absent product is a silent no-op
	cart.SetQuantity("missing", 3)
	assert.Equal(t, 0, cart.Len())
}

func TestCart_RemoveAbsentIsNoOp(t *testing.T) {
	cart := NewCart()
	cart.Add(headphones(), 2)

	cart.Remove("missing")
	assert.Equal(t, 1, cart.Len())

	cart.Remove("1")
	assert.Equal(t, 0, cart.Len())
}

func TestCart_Totals(t *testing.T) {
	cart := NewCart()
	cart.Add(headphones(), 2) // 200
	cart.Add(speaker(), 3)    // 150

	assert.Equal(t, 5, cart.TotalItems())
	assert.InDelta(t, 350.0, cart.TotalPrice(), 0.001)

	cart.Clear()
	assert.Equal(t, 0, cart.TotalItems())
	assert.InDelta(t, 0.0, cart.TotalPrice(), 0.001)
}

func TestCart_ItemsReturnsCopy(t *testing.T) {
	cart := NewCart()
	cart.Add(headphones(), 1)

	items := cart.Items()
	items[0].Quantity = 99

	assert.Equal(t, 1, cart.Items()[0].Quantity)
}

func TestRestore_CopiesInput(t *testing.T) {
	saved := []CartItem{{Product: headphones(), Quantity: 2}}
	cart := Restore(saved)

	saved[0].Quantity = 99
	assert.Equal(t, 2, cart.Items()[0].Quantity)
}
