package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/duka-storefront/internal/catalog/domain"
	"github.com/tair/duka-storefront/pkg/logger"
)

func init() {
	logger.Init("catalog-test", false)
}

// failingRepository simulates a catalog backend that is down
type failingRepository struct {
	domain.CatalogRepository
}

var errBackendDown = errors.New("connection refused")

func (failingRepository) ListProducts() ([]domain.Product, error)   { return nil, errBackendDown }
func (failingRepository) ListCategories() ([]domain.Category, error) { return nil, errBackendDown }
func (failingRepository) FindProduct(string) (*domain.Product, error) {
	return nil, errBackendDown
}

// emptyRepository simulates a reachable but unseeded backend
type emptyRepository struct {
	domain.CatalogRepository
}

func (emptyRepository) ListProducts() ([]domain.Product, error)    { return nil, nil }
func (emptyRepository) ListCategories() ([]domain.Category, error) { return nil, nil }
func (emptyRepository) FindProduct(string) (*domain.Product, error) {
	return nil, domain.ErrProductNotFound
}

func TestFallback_BackendDown(t *testing.T) {
	repo := NewFallbackRepository(failingRepository{})

	products, err := repo.ListProducts()
	require.NoError(t, err)
	assert.Len(t, products, len(DefaultProducts()))

	categories, err := repo.ListCategories()
	require.NoError(t, err)
	assert.Len(t, categories, len(DefaultCategories()))

	p, err := repo.FindProduct("1")
	require.NoError(t, err)
	assert.Equal(t, "Premium Wireless Headphones", p.Name)

	_, err = repo.FindProduct("no-such-id")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestFallback_EmptyBackendServesBundledCatalog(t *testing.T) {
	repo := NewFallbackRepository(emptyRepository{})

	products, err := repo.ListProducts()
	require.NoError(t, err)
	assert.NotEmpty(t, products)

	// A genuine not-found is surfaced, not masked by the fallback
	_, err = repo.FindProduct("no-such-id")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}
