package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/duka-storefront/internal/catalog/domain"
)

// stubRepository serves a fixed product list
type stubRepository struct {
	domain.CatalogRepository
	products []domain.Product
}

func (s stubRepository) ListProducts() ([]domain.Product, error) {
	return s.products, nil
}

func electronicsCatalog() []domain.Product {
	return []domain.Product{
		{ID: "1", Name: "Headphones", Category: "electronics", Price: 299, Rating: 4.8},
		{ID: "2", Name: "Jacket", Category: "clothing", Price: 189, Rating: 4.4},
		{ID: "3", Name: "Watch", Category: "electronics", Price: 249, Rating: 4.6},
		{ID: "4", Name: "Cookbook", Category: "books", Price: 25, Rating: 4.9},
		{ID: "5", Name: "Speaker", Category: "electronics", Price: 89, Rating: 4.2},
		{ID: "6", Name: "Yoga Mat", Category: "sports", Price: 35, Rating: 3.9},
	}
}

func TestListProducts_CategorySelection(t *testing.T) {
	h := NewListProductsHandler(stubRepository{products: electronicsCatalog()})

	got, err := h.Handle(ListProductsQuery{Selection: domain.Selection{
		Filter: domain.FilterOptions{Category: "electronics", MaxPrice: 9999},
		SortBy: domain.SortByPrice,
	}})
	require.NoError(t, err)

	require.Len(t, got, 3)
	assert.Equal(t, "5", got[0].ID)
	assert.Equal(t, "3", got[1].ID)
	assert.Equal(t, "1", got[2].ID)
}

func TestListDeals_OnlyActiveUnexpired(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	future := now.Add(24 * time.Hour)
	past := now.Add(-24 * time.Hour)

	products := []domain.Product{
		{ID: "active", Discount: &domain.Discount{Percentage: 25, EndDate: future, IsActive: true}},
		{ID: "expired", Discount: &domain.Discount{Percentage: 25, EndDate: past, IsActive: true}},
		{ID: "inactive", Discount: &domain.Discount{Percentage: 25, EndDate: future, IsActive: false}},
		{ID: "plain"},
	}

	h := NewListDealsHandler(stubRepository{products: products})
	got, err := h.Handle(ListDealsQuery{Now: now})
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, "active", got[0].ID)
}
