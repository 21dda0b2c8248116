package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/duka-storefront/internal/catalog/domain"
	"github.com/tair/duka-storefront/pkg/logger"
)

func init() {
	logger.Init("catalog-client-test", false)
}

func newTestBackend(t *testing.T) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/api/products", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]domain.Product{
			{ID: "1", Name: "Headphones", Price: 299},
			{ID: "2", Name: "Watch", Price: 249},
		})
	})
	mux.HandleFunc("/api/products/1", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(domain.Product{ID: "1", Name: "Headphones", Price: 299})
	})
	mux.HandleFunc("/api/products/", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
	})
	mux.HandleFunc("/api/categories", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]domain.Category{{ID: "electronics", Name: "Electronics"}})
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestCatalogClient_Reads(t *testing.T) {
	server := newTestBackend(t)
	c := NewCatalogClient(server.URL)
	ctx := context.Background()

	assert.True(t, c.Healthy(ctx))

	products, err := c.ListProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 2)

	categories, err := c.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "Electronics", categories[0].Name)

	p, err := c.GetProduct(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Headphones", p.Name)
}

func TestCatalogClient_NotFound(t *testing.T) {
	server := newTestBackend(t)
	c := NewCatalogClient(server.URL)

	_, err := c.GetProduct(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestCatalogClient_BackendDown(t *testing.T) {
	c := NewCatalogClient("http://127.0.0.1:1")

	assert.False(t, c.Healthy(context.Background()))

	_, err := c.ListProducts(context.Background())
	assert.Error(t, err)
}
