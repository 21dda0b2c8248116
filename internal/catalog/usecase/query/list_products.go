package query

import (
	"fmt"

	"github.com/tair/duka-storefront/internal/catalog/domain"
)

// ListProductsQuery represents the query to list products with filtering and
// sorting applied
type ListProductsQuery struct {
	Selection domain.Selection
}

// ListProductsHandler handles list products query
type ListProductsHandler struct {
	repo domain.CatalogRepository
}

// NewListProductsHandler creates a new list products handler
func NewListProductsHandler(repo domain.CatalogRepository) *ListProductsHandler {
	return &ListProductsHandler{repo: repo}
}

// Handle executes the list products query. The whole catalog is fetched and
// the selection is applied in memory; at storefront scale this is cheap and
// keeps the filter/sort engine free of backend concerns.
func (h *ListProductsHandler) Handle(query ListProductsQuery) ([]domain.Product, error) {
	products, err := h.repo.ListProducts()
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return query.Selection.Apply(products), nil
}
