package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/duka-storefront/internal/cart/domain"
	catalog "github.com/tair/duka-storefront/internal/catalog/domain"
	"github.com/tair/duka-storefront/pkg/localstore"
)

func newTestLocalStore(t *testing.T) *LocalStore {
	t.Helper()
	store, err := localstore.New(t.TempDir())
	require.NoError(t, err)
	return NewLocalStore(store)
}

func TestLocalStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestLocalStore(t)

	items := []domain.CartItem{
		{Product: catalog.Product{ID: "1", Name: "Headphones", Price: 100}, Quantity: 2},
	}
	require.NoError(t, store.Save(ctx, "device:abc", items))

	got, found, err := store.Fetch(ctx, "device:abc")
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].Product.ID)
	assert.Equal(t, 2, got[0].Quantity)
}

func TestLocalStore_MissingOwner(t *testing.T) {
	ctx := context.Background()
	store := newTestLocalStore(t)

	_, found, err := store.Fetch(ctx, "device:never-seen")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestLocalStore_EmptySaveIsFound(t *testing.T) {
	ctx := context.Background()
	store := newTestLocalStore(t)

	// An explicitly saved empty cart is distinct from a missing one
	require.NoError(t, store.Save(ctx, "device:abc", nil))

	got, found, err := store.Fetch(ctx, "device:abc")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Empty(t, got)
}

func TestLocalStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := newTestLocalStore(t)

	require.NoError(t, store.Save(ctx, "device:abc", []domain.CartItem{
		{Product: catalog.Product{ID: "1"}, Quantity: 1},
	}))
	require.NoError(t, store.Delete(ctx, "device:abc"))

	_, found, err := store.Fetch(ctx, "device:abc")
	require.NoError(t, err)
	assert.False(t, found)

	// Deleting again is not an error
	assert.NoError(t, store.Delete(ctx, "device:abc"))
}
