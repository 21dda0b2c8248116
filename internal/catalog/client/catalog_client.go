// Package client implements the HTTP read API consumer for a remote catalog
// backend: health check, list products, list categories, and single-product
// fetch with an explicit not-found result.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/tair/duka-storefront/internal/catalog/domain"
	"github.com/tair/duka-storefront/pkg/logger"
)

// CatalogClient is a read-only client for a remote catalog service
type CatalogClient struct {
	baseURL string
	client  *http.Client
}

// NewCatalogClient creates a catalog read client for the given base URL
func NewCatalogClient(baseURL string) *CatalogClient {
	return &CatalogClient{
		baseURL: baseURL,
		client: &http.Client{
			Timeout:   10 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

func (c *CatalogClient) get(ctx context.Context, path string, out interface{}) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to reach catalog backend: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 && out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return resp.StatusCode, nil
}

// Healthy reports whether the remote catalog backend is reachable
func (c *CatalogClient) Healthy(ctx context.Context) bool {
	status, err := c.get(ctx, "/health", nil)
	if err != nil {
		logger.Debug(ctx).Err(err).Str("base_url", c.baseURL).Msg("Catalog health check failed")
		return false
	}
	return status == http.StatusOK
}

// ListProducts fetches the full product list
func (c *CatalogClient) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	status, err := c.get(ctx, "/api/products", &products)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("catalog backend returned status %d", status)
	}
	return products, nil
}

// ListCategories fetches the full category list
func (c *CatalogClient) ListCategories(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	status, err := c.get(ctx, "/api/categories", &categories)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("catalog backend returned status %d", status)
	}
	return categories, nil
}

// GetProduct fetches a single product by id. A missing product is returned
// as domain.ErrProductNotFound, not a transport error.
func (c *CatalogClient) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	var product domain.Product
	status, err := c.get(ctx, "/api/products/"+id, &product)
	if err != nil {
		return nil, err
	}
	switch status {
	case http.StatusOK:
		return &product, nil
	case http.StatusNotFound:
		return nil, domain.ErrProductNotFound
	default:
		return nil, fmt.Errorf("catalog backend returned status %d", status)
	}
}
