package repository

import (
	"context"
	"errors"
	"time"

	"github.com/tair/duka-storefront/internal/catalog/client"
	"github.com/tair/duka-storefront/internal/catalog/domain"
)

// ErrReadOnlyBackend is returned for write operations against the remote
// catalog backend, which only exposes a read API
var ErrReadOnlyBackend = errors.New("remote catalog backend is read-only")

// HTTPCatalogRepository adapts the remote catalog read client to the
// repository contract, so the service can run against a remote catalog
// backend instead of its own database. Selected by CATALOG_DRIVER=http.
type HTTPCatalogRepository struct {
	client  *client.CatalogClient
	timeout time.Duration
}

// NewHTTPCatalogRepository creates an HTTP-backed catalog repository
func NewHTTPCatalogRepository(c *client.CatalogClient) *HTTPCatalogRepository {
	return &HTTPCatalogRepository{
		client:  c,
		timeout: 10 * time.Second,
	}
}

func (r *HTTPCatalogRepository) callContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), r.timeout)
}

// ListProducts fetches the full product list from the remote backend
func (r *HTTPCatalogRepository) ListProducts() ([]domain.Product, error) {
	ctx, cancel := r.callContext()
	defer cancel()
	return r.client.ListProducts(ctx)
}

// FindProduct fetches a single product; a missing product surfaces as
// domain.ErrProductNotFound
func (r *HTTPCatalogRepository) FindProduct(id string) (*domain.Product, error) {
	ctx, cancel := r.callContext()
	defer cancel()
	return r.client.GetProduct(ctx, id)
}

// CountProducts counts products via the list endpoint; the read API has no
// dedicated count route
func (r *HTTPCatalogRepository) CountProducts() (int64, error) {
	products, err := r.ListProducts()
	if err != nil {
		return 0, err
	}
	return int64(len(products)), nil
}

// ListCategories fetches the full category list from the remote backend
func (r *HTTPCatalogRepository) ListCategories() ([]domain.Category, error) {
	ctx, cancel := r.callContext()
	defer cancel()
	return r.client.ListCategories(ctx)
}

// CreateProduct is rejected: the remote backend exposes no write surface
func (r *HTTPCatalogRepository) CreateProduct(*domain.Product) error {
	return ErrReadOnlyBackend
}

// UpdateProduct is rejected: the remote backend exposes no write surface
func (r *HTTPCatalogRepository) UpdateProduct(*domain.Product) error {
	return ErrReadOnlyBackend
}

// DeleteProduct is rejected: the remote backend exposes no write surface
func (r *HTTPCatalogRepository) DeleteProduct(string) error {
	return ErrReadOnlyBackend
}

// CreateCategory is rejected: the remote backend exposes no write surface
func (r *HTTPCatalogRepository) CreateCategory(*domain.Category) error {
	return ErrReadOnlyBackend
}

// UpdateCategory is rejected: the remote backend exposes no write surface
func (r *HTTPCatalogRepository) UpdateCategory(*domain.Category) error {
	return ErrReadOnlyBackend
}

// DeleteCategory is rejected: the remote backend exposes no write surface
func (r *HTTPCatalogRepository) DeleteCategory(string) error {
	return ErrReadOnlyBackend
}
