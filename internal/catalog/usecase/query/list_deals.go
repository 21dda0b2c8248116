package query

import (
	"fmt"
	"time"

	"github.com/tair/duka-storefront/internal/catalog/domain"
)

// ListDealsQuery represents the query to list products with an active,
// unexpired discount
type ListDealsQuery struct {
	Now time.Time
}

// ListDealsHandler handles list deals query
type ListDealsHandler struct {
	repo domain.CatalogRepository
}

// NewListDealsHandler creates a new list deals handler
func NewListDealsHandler(repo domain.CatalogRepository) *ListDealsHandler {
	return &ListDealsHandler{repo: repo}
}

// Handle executes the list deals query
func (h *ListDealsHandler) Handle(query ListDealsQuery) ([]domain.Product, error) {
	now := query.Now
	if now.IsZero() {
		now = time.Now()
	}

	products, err := h.repo.ListProducts()
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	deals := make([]domain.Product, 0)
	for i := range products {
		if products[i].HasActiveDiscount(now) {
			deals = append(deals, products[i])
		}
	}
	return deals, nil
}
