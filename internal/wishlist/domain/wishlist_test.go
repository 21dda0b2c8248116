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

func TestWishlist_AddIsIdempotent(t *testing.T) {
	w := NewWishlist()
	w.Add(headphones())
	w.Add(headphones())

	assert.Equal(t, 1, w.Len())
	assert.True(t, w.Contains("1"))
}

func TestWishlist_AddKeepsFirstSnapshot(t *testing.T) {
	w := NewWishlist()
	w.Add(headphones())

	changed := headphones()
	changed.Price = 999
	w.Add(changed)

	assert.InDelta(t, 100.0, w.Products()[0].Price, 0.001)
}

func TestWishlist_KeepsInsertionOrder(t *testing.T) {
	w := NewWishlist()
	w.Add(speaker())
	w.Add(headphones())

	products := w.Products()
	require.Len(t, products, 2)
	assert.Equal(t, "2", products[0].ID)
	assert.Equal(t, "1", products[1].ID)
}

func TestWishlist_RemoveAbsentIsNoOp(t *testing.T) {
	w := NewWishlist()
	w.Add(headphones())

	w.Remove("missing")
	assert.Equal(t, 1, w.Len())

	w.Remove("1")
	assert.Equal(t, 0, w.Len())
	assert.False(t, w.Contains("1"))
}

func TestWishlist_Clear(t *testing.T) {
	w := NewWishlist()
	w.Add(headphones())
	w.Add(speaker())

	w.Clear()
	assert.Equal(t, 0, w.Len())
	assert.Empty(t, w.Products())
}

func TestWishlist_ProductsReturnsCopy(t *testing.T) {
	w := NewWishlist()
	w.Add(headphones())

	products := w.Products()
	products[0].Price = 999

	assert.InDelta(t, 100.0, w.Products()[0].Price, 0.001)
}
