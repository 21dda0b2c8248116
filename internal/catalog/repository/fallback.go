package repository

import (
	"errors"

	"github.com/tair/duka-storefront/internal/catalog/domain"

	"github.com/tair/duka-storefront/pkg/logger"
)

// FallbackRepository wraps a catalog repository and degrades reads to the
// bundled default catalog when the backend errors or returns no products.
// Writes pass straight through.
type FallbackRepository struct {
	domain.CatalogRepository
}

func NewFallbackRepository(primary domain.CatalogRepository) *FallbackRepository {
	return &FallbackRepository{CatalogRepository: primary}
}

func (r *FallbackRepository) ListProducts() ([]domain.Product, error) {
	products, err := r.CatalogRepository.ListProducts()
	if err != nil {
		logger.Logger.Warn().Err(err).Msg("Catalog backend unavailable, serving bundled products")
		return DefaultProducts(), nil
	}
	if len(products) == 0 {
		return DefaultProducts(), nil
	}
	return products, nil
}

func (r *FallbackRepository) ListCategories() ([]domain.Category, error) {
	categories, err := r.CatalogRepository.ListCategories()
	if err != nil {
		logger.Logger.Warn().Err(err).Msg("Catalog backend unavailable, serving bundled categories")
		return DefaultCategories(), nil
	}
	if len(categories) == 0 {
		return DefaultCategories(), nil
	}
	return categories, nil
}

func (r *FallbackRepository) FindProduct(id string) (*domain.Product, error) {
	product, err := r.CatalogRepository.FindProduct(id)
	if err == nil {
		return product, nil
	}
	if errors.Is(err, domain.ErrProductNotFound) {
		return nil, err
	}

	logger.Logger.Warn().Err(err).Str("product_id", id).Msg("Catalog backend unavailable, checking bundled products")
	for _, p := range DefaultProducts() {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	return nil, domain.ErrProductNotFound
}
