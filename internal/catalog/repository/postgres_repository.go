package repository

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/tair/duka-storefront/internal/catalog/domain"
)

// PostgresCatalogRepository is the raw database/sql variant of the catalog
// store. It shares the table layout with the GORM repository (images,
// features and discount stored as JSON text columns).
type PostgresCatalogRepository struct {
	db *sql.DB
}

func NewPostgresCatalogRepository(db *sql.DB) *PostgresCatalogRepository {
	return &PostgresCatalogRepository{db: db}
}

const productColumns = `id, name, brand, description, price, original_price, discount, image, images, category, rating, reviews, in_stock, features, created_at, updated_at`

func scanProduct(row interface{ Scan(...interface{}) error }) (*domain.Product, error) {
	var (
		p             domain.Product
		originalPrice sql.NullFloat64
		discountJSON  []byte
		imagesJSON    []byte
		featuresJSON  []byte
	)

	err := row.Scan(
		&p.ID, &p.Name, &p.Brand, &p.Description, &p.Price, &originalPrice,
		&discountJSON, &p.Image, &imagesJSON, &p.Category, &p.Rating,
		&p.Reviews, &p.InStock, &featuresJSON, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if originalPrice.Valid {
		p.OriginalPrice = &originalPrice.Float64
	}
	if len(discountJSON) > 0 {
		var d domain.Discount
		if err := json.Unmarshal(discountJSON, &d); err != nil {
			return nil, fmt.Errorf("failed to decode discount: %w", err)
		}
		p.Discount = &d
	}
	if len(imagesJSON) > 0 {
		if err := json.Unmarshal(imagesJSON, &p.Images); err != nil {
			return nil, fmt.Errorf("failed to decode images: %w", err)
		}
	}
	if len(featuresJSON) > 0 {
		if err := json.Unmarshal(featuresJSON, &p.Features); err != nil {
			return nil, fmt.Errorf("failed to decode features: %w", err)
		}
	}

	return &p, nil
}

func productArgs(p *domain.Product) ([]interface{}, error) {
	var originalPrice interface{}
	if p.OriginalPrice != nil {
		originalPrice = *p.OriginalPrice
	}

	var discountJSON interface{}
	if p.Discount != nil {
		data, err := json.Marshal(p.Discount)
		if err != nil {
			return nil, fmt.Errorf("failed to encode discount: %w", err)
		}
		discountJSON = data
	}

	imagesJSON, err := json.Marshal(p.Images)
	if err != nil {
		return nil, fmt.Errorf("failed to encode images: %w", err)
	}
	featuresJSON, err := json.Marshal(p.Features)
	if err != nil {
		return nil, fmt.Errorf("failed to encode features: %w", err)
	}

	return []interface{}{
		p.ID, p.Name, p.Brand, p.Description, p.Price, originalPrice,
		discountJSON, p.Image, imagesJSON, p.Category, p.Rating,
		p.Reviews, p.InStock, featuresJSON,
	}, nil
}

func (r *PostgresCatalogRepository) ListProducts() ([]domain.Product, error) {
	rows, err := r.db.Query(`SELECT ` + productColumns + ` FROM products`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	return products, rows.Err()
}

func (r *PostgresCatalogRepository) FindProduct(id string) (*domain.Product, error) {
	row := r.db.QueryRow(`SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *PostgresCatalogRepository) CreateProduct(product *domain.Product) error {
	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now

	args, err := productArgs(product)
	if err != nil {
		return err
	}
	args = append(args, product.CreatedAt, product.UpdatedAt)

	_, err = r.db.Exec(`
		INSERT INTO products (`+productColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
		args...,
	)
	return err
}

func (r *PostgresCatalogRepository) UpdateProduct(product *domain.Product) error {
	product.UpdatedAt = time.Now()

	args, err := productArgs(product)
	if err != nil {
		return err
	}
	// Shift id to the end for the WHERE clause
	args = append(args[1:], product.UpdatedAt, product.ID)

	res, err := r.db.Exec(`
		UPDATE products SET name = $1, brand = $2, description = $3, price = $4,
			original_price = $5, discount = $6, image = $7, images = $8,
			category = $9, rating = $10, reviews = $11, in_stock = $12,
			features = $13, updated_at = $14
		WHERE id = $15`,
		args...,
	)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *PostgresCatalogRepository) DeleteProduct(id string) error {
	_, err := r.db.Exec(`DELETE FROM products WHERE id = $1`, id)
	return err
}

func (r *PostgresCatalogRepository) CountProducts() (int64, error) {
	var count int64
	err := r.db.QueryRow(`SELECT COUNT(*) FROM products`).Scan(&count)
	return count, err
}

func (r *PostgresCatalogRepository) ListCategories() ([]domain.Category, error) {
	rows, err := r.db.Query(`SELECT id, name, icon, count FROM categories`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Icon, &c.Count); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *PostgresCatalogRepository) CreateCategory(category *domain.Category) error {
	_, err := r.db.Exec(
		`INSERT INTO categories (id, name, icon, count) VALUES ($1, $2, $3, $4)`,
		category.ID, category.Name, category.Icon, category.Count,
	)
	return err
}

func (r *PostgresCatalogRepository) UpdateCategory(category *domain.Category) error {
	_, err := r.db.Exec(
		`UPDATE categories SET name = $1, icon = $2, count = $3 WHERE id = $4`,
		category.Name, category.Icon, category.Count, category.ID,
	)
	return err
}

func (r *PostgresCatalogRepository) DeleteCategory(id string) error {
	_, err := r.db.Exec(`DELETE FROM categories WHERE id = $1`, id)
	return err
}
