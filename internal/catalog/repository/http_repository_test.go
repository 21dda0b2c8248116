package repository

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/duka-storefront/internal/catalog/client"
	"github.com/tair/duka-storefront/internal/catalog/domain"
)

func newHTTPBackend(t *testing.T) *httptest.Server {
	mux := http.NewServeMux()
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

func TestHTTPCatalogRepository_Reads(t *testing.T) {
	server := newHTTPBackend(t)
	repo := NewHTTPCatalogRepository(client.NewCatalogClient(server.URL))

	products, err := repo.ListProducts()
	require.NoError(t, err)
	assert.Len(t, products, 2)

	count, err := repo.CountProducts()
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	product, err := repo.FindProduct("1")
	require.NoError(t, err)
	assert.Equal(t, "Headphones", product.Name)

	_, err = repo.FindProduct("missing")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	categories, err := repo.ListCategories()
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "Electronics", categories[0].Name)
}

func TestHTTPCatalogRepository_WritesAreRejected(t *testing.T) {
	server := newHTTPBackend(t)
	repo := NewHTTPCatalogRepository(client.NewCatalogClient(server.URL))

	assert.ErrorIs(t, repo.CreateProduct(&domain.Product{ID: "3"}), ErrReadOnlyBackend)
	assert.ErrorIs(t, repo.UpdateProduct(&domain.Product{ID: "1"}), ErrReadOnlyBackend)
	assert.ErrorIs(t, repo.DeleteProduct("1"), ErrReadOnlyBackend)
	assert.ErrorIs(t, repo.CreateCategory(&domain.Category{ID: "books"}), ErrReadOnlyBackend)
	assert.ErrorIs(t, repo.UpdateCategory(&domain.Category{ID: "electronics"}), ErrReadOnlyBackend)
	assert.ErrorIs(t, repo.DeleteCategory("electronics"), ErrReadOnlyBackend)
}
