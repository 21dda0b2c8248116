package repository

import (
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/duka-storefront/internal/catalog/domain"
)

func newMockRepo(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *PostgresCatalogRepository) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err, "failed to create sqlmock")
	return db, mock, NewPostgresCatalogRepository(db)
}

func productRows(now time.Time) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "brand", "description", "price", "original_price",
		"discount", "image", "images", "category", "rating", "reviews",
		"in_stock", "features", "created_at", "updated_at",
	}).AddRow(
		"p-1", "Headphones", "AudioTech", "Noise cancelling", 299.0, 399.0,
		[]byte(`{"percentage":25,"end_date":"2025-02-15T23:59:59Z","is_active":true}`),
		"img.jpg", []byte(`["img.jpg"]`), "electronics", 4.8, 1247,
		true, []byte(`["ANC","30hr Battery"]`), now, now,
	)
}

func TestPostgresRepository_FindProduct(t *testing.T) {
	db, mock, repo := newMockRepo(t)
	defer db.Close()

	query := regexp.QuoteMeta(`SELECT ` + productColumns + ` FROM products WHERE id = $1`)
	mock.ExpectQuery(query).WithArgs("p-1").WillReturnRows(productRows(time.Now()))

	p, err := repo.FindProduct("p-1")
	require.NoError(t, err)
	assert.Equal(t, "Headphones", p.Name)
	assert.Equal(t, "AudioTech", p.Brand)
	require.NotNil(t, p.OriginalPrice)
	assert.Equal(t, 399.0, *p.OriginalPrice)
	require.NotNil(t, p.Discount)
	assert.Equal(t, 25, p.Discount.Percentage)
	assert.True(t, p.Discount.IsActive)
	assert.Equal(t, []string{"ANC", "30hr Battery"}, p.Features)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_FindProduct_NotFound(t *testing.T) {
	db, mock, repo := newMockRepo(t)
	defer db.Close()

	query := regexp.QuoteMeta(`SELECT ` + productColumns + ` FROM products WHERE id = $1`)
	mock.ExpectQuery(query).WithArgs("missing").WillReturnError(sql.ErrNoRows)

	_, err := repo.FindProduct("missing")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_ListProducts(t *testing.T) {
	db, mock, repo := newMockRepo(t)
	defer db.Close()

	query := regexp.QuoteMeta(`SELECT ` + productColumns + ` FROM products`)
	mock.ExpectQuery(query).WillReturnRows(productRows(time.Now()))

	products, err := repo.ListProducts()
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "p-1", products[0].ID)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_CreateProduct(t *testing.T) {
	db, mock, repo := newMockRepo(t)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO products`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.CreateProduct(&domain.Product{
		ID:       "p-2",
		Name:     "Yoga Mat",
		Brand:    "FitTech",
		Price:    35,
		Category: "sports",
		InStock:  true,
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_UpdateProduct_NotFound(t *testing.T) {
	db, mock, repo := newMockRepo(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE products SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateProduct(&domain.Product{ID: "missing", Name: "X"})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_Categories(t *testing.T) {
	db, mock, repo := newMockRepo(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, icon, count FROM categories`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "icon", "count"}).
			AddRow("electronics", "Electronics", "Smartphone", 156))

	categories, err := repo.ListCategories()
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "Electronics", categories[0].Name)

	require.NoError(t, mock.ExpectationsWereMet())
}
